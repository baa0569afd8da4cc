package actors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/crucible-engine/internal/domain/actor"
	dnderr "github.com/KirkDiggler/crucible-engine/internal/errors"
	"github.com/KirkDiggler/crucible-engine/internal/repositories/actors"
)

type InMemorySuite struct {
	suite.Suite
	ctx  context.Context
	repo actors.Repository
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = actors.NewInMemoryRepository()
}

func (s *InMemorySuite) add(id string) *actor.Actor {
	a, err := actor.New(actor.Sheet{ID: id, Name: id})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Add(s.ctx, a))
	return a
}

func (s *InMemorySuite) TestAddAndGet() {
	hero := s.add("hero")

	got, err := s.repo.Get(s.ctx, "hero")
	s.Require().NoError(err)
	s.Same(hero, got)

	s.Error(s.repo.Add(s.ctx, hero), "duplicate")
	s.Error(s.repo.Add(s.ctx, nil))

	_, err = s.repo.Get(s.ctx, "nobody")
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemorySuite) TestListIsOrdered() {
	s.add("zombie")
	s.add("archer")
	s.add("mage")

	list, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("archer", list[0].ID())
	s.Equal("mage", list[1].ID())
	s.Equal("zombie", list[2].ID())
}

func (s *InMemorySuite) TestRemove() {
	s.add("hero")

	s.NoError(s.repo.Remove(s.ctx, "hero"))
	s.True(dnderr.IsNotFound(s.repo.Remove(s.ctx, "hero")))
}

func (s *InMemorySuite) TestResolveActor() {
	hero := s.add("hero")

	resolved, err := s.repo.ResolveActor(s.ctx, "hero")
	s.Require().NoError(err)
	s.Equal(hero.ID(), resolved.ID())

	_, err = s.repo.ResolveActor(s.ctx, "nobody")
	s.True(dnderr.IsNotFound(err))
}
