package actionuses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	records      map[string]*Record
	byActor      map[string]map[string]struct{}
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory action use repository
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = SystemTime{}
	}
	return &inMemoryRepository{
		records:      make(map[string]*Record),
		byActor:      make(map[string]map[string]struct{}),
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, record *Record) error {
	if err := validate(record); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID()]; exists {
		return fmt.Errorf("action use with ID %s already exists", record.ID())
	}

	now := r.timeProvider.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	return r.store(record)
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, errors.New("use ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, NewActionUseNotFoundError(id)
	}
	return copyRecord(record)
}

func (r *inMemoryRepository) Update(ctx context.Context, record *Record) error {
	if err := validate(record); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[record.ID()]; !exists {
		return NewActionUseNotFoundError(record.ID())
	}

	record.UpdatedAt = r.timeProvider.Now()
	return r.store(record)
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, exists := r.records[id]
	if !exists {
		return NewActionUseNotFoundError(id)
	}
	delete(r.records, id)
	delete(r.byActor[record.Summary.ActorID], id)
	return nil
}

func (r *inMemoryRepository) ListByActor(ctx context.Context, actorID string) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*Record, 0, len(r.byActor[actorID]))
	for id := range r.byActor[actorID] {
		record, err := copyRecord(r.records[id])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	sortRecords(records)
	return records, nil
}

// store must be called with the lock held
func (r *inMemoryRepository) store(record *Record) error {
	stored, err := copyRecord(record)
	if err != nil {
		return err
	}
	r.records[record.ID()] = stored

	actorID := record.Summary.ActorID
	if r.byActor[actorID] == nil {
		r.byActor[actorID] = make(map[string]struct{})
	}
	r.byActor[actorID][record.ID()] = struct{}{}
	return nil
}

// copyRecord round-trips the summary through JSON so callers never share
// state with the store, matching what the redis repository returns
func copyRecord(record *Record) (*Record, error) {
	data, err := json.Marshal(record.Summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal action use: %w", err)
	}
	var summary action.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal action use: %w", err)
	}
	return &Record{
		Summary:   &summary,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}
