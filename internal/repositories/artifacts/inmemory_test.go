package artifacts_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/repositories/artifacts"
)

type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	return c.now
}

type InMemoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *steppingClock
	repo  *artifacts.InMemoryRepository
}

func (s *InMemoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &steppingClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := artifacts.NewInMemory(s.clock, time.Minute)
	s.Require().NoError(err)
	s.repo = repo
}

func (s *InMemoryTestSuite) save(id string) {
	_, err := s.repo.Save(s.ctx, &artifacts.SaveInput{Artifact: &artifacts.Artifact{
		ID:   id,
		Data: []byte("pdf"),
	}})
	s.Require().NoError(err)
}

func (s *InMemoryTestSuite) TestSaveGetDelete() {
	s.save("exp_1")

	got, err := s.repo.Get(s.ctx, &artifacts.GetInput{ID: "exp_1"})
	s.Require().NoError(err)
	s.Equal([]byte("pdf"), got.Artifact.Data)

	got.Artifact.Data[0] = 'x'
	again, err := s.repo.Get(s.ctx, &artifacts.GetInput{ID: "exp_1"})
	s.Require().NoError(err)
	s.Equal([]byte("pdf"), again.Artifact.Data)

	_, err = s.repo.Delete(s.ctx, &artifacts.DeleteInput{ID: "exp_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &artifacts.GetInput{ID: "exp_1"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestExpiry() {
	s.save("exp_1")

	s.clock.now = s.clock.now.Add(59 * time.Second)
	_, err := s.repo.Get(s.ctx, &artifacts.GetInput{ID: "exp_1"})
	s.Require().NoError(err)

	s.clock.now = s.clock.now.Add(2 * time.Second)
	_, err = s.repo.Get(s.ctx, &artifacts.GetInput{ID: "exp_1"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestSaveSweepsExpired() {
	s.save("exp_old")
	s.clock.now = s.clock.now.Add(2 * time.Minute)
	s.save("exp_new")

	_, err := s.repo.Delete(s.ctx, &artifacts.DeleteInput{ID: "exp_old"})
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryTestSuite) TestSweep() {
	s.save("exp_b")
	s.save("exp_a")
	s.clock.now = s.clock.now.Add(30 * time.Second)
	s.save("exp_fresh")
	s.clock.now = s.clock.now.Add(45 * time.Second)

	dry, err := s.repo.Sweep(s.ctx, &artifacts.SweepInput{DryRun: true})
	s.Require().NoError(err)
	s.Equal(3, dry.Checked)
	s.Equal([]string{"exp_a", "exp_b"}, dry.Stale)

	out, err := s.repo.Sweep(s.ctx, &artifacts.SweepInput{})
	s.Require().NoError(err)
	s.Equal([]string{"exp_a", "exp_b"}, out.Stale)

	again, err := s.repo.Sweep(s.ctx, &artifacts.SweepInput{})
	s.Require().NoError(err)
	s.Equal(1, again.Checked)
	s.Empty(again.Stale)

	_, err = s.repo.Sweep(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryTestSuite) TestNewInMemory() {
	_, err := artifacts.NewInMemory(nil, 0)
	s.True(errors.IsInvalidArgument(err))

	_, err = artifacts.NewInMemory(s.clock, -time.Second)
	s.True(errors.IsInvalidArgument(err))
}

func TestInMemoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryTestSuite))
}
