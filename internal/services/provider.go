package services

import (
	"fmt"

	"github.com/KirkDiggler/crucible-engine/internal/dice"
	engine "github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/domain/events"
	"github.com/KirkDiggler/crucible-engine/internal/domain/rulebook/crucible/tags"
	"github.com/KirkDiggler/crucible-engine/internal/observe"
	"github.com/KirkDiggler/crucible-engine/internal/repositories/actionuses"
	"github.com/KirkDiggler/crucible-engine/internal/repositories/actors"
	actionService "github.com/KirkDiggler/crucible-engine/internal/services/action"
	"github.com/KirkDiggler/crucible-engine/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	ActionService actionService.Service
	Engine        *engine.Engine
	Actors        actors.Repository
	EventBus      events.Bus
	Heroism       *events.HeroismTally
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Definitions   actionService.DefinitionSource
	UseRepository actionuses.Repository
	Roller        dice.Roller
	Metrics       *observe.Metrics
	RangeFunc     engine.RangeFunc
	StrictTargets bool
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg.Definitions == nil {
		return nil, fmt.Errorf("definition source is required")
	}

	registry, err := tags.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build tag registry: %w", err)
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	// Use in-memory repository if none provided
	useRepo := cfg.UseRepository
	if useRepo == nil {
		useRepo = actionuses.NewInMemoryRepository(nil)
	}

	bus := events.NewEventBus()
	heroism := events.NewHeroismTally()
	heroism.Attach(bus)

	eng := engine.NewEngine(&engine.EngineConfig{
		Registry:      registry,
		Roller:        roller,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		EventBus:      bus,
		Metrics:       cfg.Metrics,
	})

	actorRepo := actors.NewInMemoryRepository()
	svc := actionService.NewService(&actionService.ServiceConfig{
		Engine:        eng,
		Actors:        actorRepo,
		Uses:          useRepo,
		Definitions:   cfg.Definitions,
		RangeFunc:     cfg.RangeFunc,
		StrictTargets: cfg.StrictTargets,
	})

	return &Provider{
		ActionService: svc,
		Engine:        eng,
		Actors:        actorRepo,
		EventBus:      bus,
		Heroism:       heroism,
	}, nil
}
