package actionuses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

// Data is the JSON stored under action_use:<id>
type Data struct {
	UseID     string          `json:"use_id"`
	ActorID   string          `json:"actor_id"`
	State     action.State    `json:"state"`
	Summary   *action.Summary `json:"summary"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func useKey(id string) string {
	return fmt.Sprintf("action_use:%s", id)
}

func actorKey(actorID string) string {
	return fmt.Sprintf("actor:%s:action_uses", actorID)
}

type redisRepo struct {
	client       redis.Cmdable
	timeProvider TimeProvider
}

func NewRedis(redisClient redis.Cmdable, timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = SystemTime{}
	}
	return &redisRepo{
		client:       redisClient,
		timeProvider: timeProvider,
	}
}

func (r *redisRepo) set(ctx context.Context, record *Record) error {
	jsonData, err := json.Marshal(toData(record))
	if err != nil {
		return fmt.Errorf("failed to marshal action use data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, useKey(record.ID()), string(jsonData), 0)
	pipe.SAdd(ctx, actorKey(record.Summary.ActorID), record.ID())
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set action use in Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) Create(ctx context.Context, record *Record) error {
	if err := validate(record); err != nil {
		return err
	}

	now := r.timeProvider.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	return r.set(ctx, record)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, errors.New("use ID cannot be empty")
	}

	jsonData, err := r.client.Get(ctx, useKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, NewActionUseNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get action use from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal action use data: %w", err)
	}

	return toRecord(&data), nil
}

func (r *redisRepo) Update(ctx context.Context, record *Record) error {
	if err := validate(record); err != nil {
		return err
	}

	record.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, record)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	record, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, useKey(id))
	pipe.SRem(ctx, actorKey(record.Summary.ActorID), id)
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete action use from Redis: %w", err)
	}

	return nil
}

// ListByActor loads every stored use of an actor, oldest first
func (r *redisRepo) ListByActor(ctx context.Context, actorID string) ([]*Record, error) {
	useIDs, err := r.client.SMembers(ctx, actorKey(actorID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get actor action uses from Redis: %w", err)
	}

	records := make([]*Record, len(useIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range useIDs {
		g.Go(func() error {
			record, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get action use %s: %w", id, err)
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortRecords(records)
	return records, nil
}

func validate(record *Record) error {
	if record == nil || record.Summary == nil {
		return errors.New("action use cannot be nil")
	}
	if record.Summary.UseID == "" {
		return errors.New("action use must have a use ID")
	}
	if record.Summary.ActorID == "" {
		return errors.New("action use must have an actor ID")
	}
	return nil
}

func sortRecords(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID() < records[j].ID()
	})
}

func toData(record *Record) *Data {
	if record == nil {
		return nil
	}

	return &Data{
		UseID:     record.Summary.UseID,
		ActorID:   record.Summary.ActorID,
		State:     record.Summary.State,
		Summary:   record.Summary,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func toRecord(data *Data) *Record {
	if data == nil {
		return nil
	}

	return &Record{
		Summary:   data.Summary,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
