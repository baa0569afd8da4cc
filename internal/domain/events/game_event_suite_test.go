package events_test

import (
	"testing"

	"github.com/KirkDiggler/crucible-engine/internal/domain/events"
	"github.com/stretchr/testify/suite"
)

type GameEventSuite struct {
	suite.Suite
}

func TestGameEventSuite(t *testing.T) {
	suite.Run(t, new(GameEventSuite))
}

func (s *GameEventSuite) TestNewGameEvent() {
	event := events.NewGameEvent(events.OnActionUsed)

	s.Equal(events.OnActionUsed, event.Type)
	s.NotNil(event.Context)
	s.False(event.Cancelled)
	s.Empty(event.ActorID)
}

func (s *GameEventSuite) TestTypedContext() {
	event := events.NewGameEvent(events.OnActionConfirmed).
		WithActor("hero").
		WithContext(events.ContextActionID, "strike").
		WithContext(events.ContextHeroism, 2).
		WithContext(events.ContextReverse, false).
		WithContext(events.ContextTargetIDs, []string{"goblin", "ogre"})

	s.Equal("hero", event.ActorID)

	id, ok := event.GetStringContext(events.ContextActionID)
	s.True(ok)
	s.Equal("strike", id)

	heroism, ok := event.GetIntContext(events.ContextHeroism)
	s.True(ok)
	s.Equal(2, heroism)

	reverse, ok := event.GetBoolContext(events.ContextReverse)
	s.True(ok)
	s.False(reverse)

	targets, ok := event.GetStringsContext(events.ContextTargetIDs)
	s.True(ok)
	s.Equal([]string{"goblin", "ogre"}, targets)

	_, ok = event.GetIntContext(events.ContextActionID)
	s.False(ok)
	_, ok = event.GetStringContext("missing")
	s.False(ok)
}

func (s *GameEventSuite) TestEventTypeString() {
	s.Equal("OnActionConfirmed", events.OnActionConfirmed.String())
	s.Equal("Unknown", events.EventType(99).String())
}
