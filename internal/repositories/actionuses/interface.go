package actionuses

import (
	"context"
	"time"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/KirkDiggler/crucible-engine/internal/repositories/actionuses Repository,TimeProvider

// Record is a stored use waiting to be confirmed, or kept for reversal
type Record struct {
	Summary   *action.Summary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ID returns the use ID the record is keyed by
func (r *Record) ID() string {
	if r == nil || r.Summary == nil {
		return ""
	}
	return r.Summary.UseID
}

// Repository defines the interface for action use storage
type Repository interface {
	Create(ctx context.Context, record *Record) error
	Get(ctx context.Context, useID string) (*Record, error)
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, useID string) error
	ListByActor(ctx context.Context, actorID string) ([]*Record, error)
}

type TimeProvider interface {
	Now() time.Time
}

// SystemTime is the wall clock TimeProvider
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now().UTC()
}
