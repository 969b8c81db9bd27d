package artifacts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/pkg/clock"
)

// InMemoryRepository is used when no Redis URL is configured. Expired
// artifacts are dropped when read and swept on every save.
type InMemoryRepository struct {
	mu    sync.Mutex
	clock clock.Clock
	ttl   time.Duration
	store map[string]*Artifact
}

// NewInMemory creates an in-memory repository
func NewInMemory(c clock.Clock, ttl time.Duration) (*InMemoryRepository, error) {
	if c == nil {
		return nil, errors.InvalidArgument("clock is required")
	}
	if ttl < 0 {
		return nil, errors.InvalidArgument("ttl must not be negative")
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &InMemoryRepository{
		clock: c,
		ttl:   ttl,
		store: make(map[string]*Artifact),
	}, nil
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores the artifact
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, invalid(errInputNil)
	}
	if err := validateArtifact(input.Artifact); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	artifact := copyArtifact(input.Artifact)
	artifact.CreatedAt = now
	artifact.ExpiresAt = now.Add(r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked(now, false)
	r.store[artifact.ID] = artifact

	return &SaveOutput{Artifact: copyArtifact(artifact)}, nil
}

// Get retrieves an artifact by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, invalid(errInputNil)
	}
	if input.ID == "" {
		return nil, invalid(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	artifact, exists := r.store[input.ID]
	if !exists {
		return nil, notFound(input.ID)
	}
	if r.clock.Now().After(artifact.ExpiresAt) {
		delete(r.store, input.ID)
		return nil, notFound(input.ID)
	}

	return &GetOutput{Artifact: copyArtifact(artifact)}, nil
}

// Delete removes an artifact
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, invalid(errInputNil)
	}
	if input.ID == "" {
		return nil, invalid(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, notFound(input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// Sweep drops expired artifacts
func (r *InMemoryRepository) Sweep(_ context.Context, input *SweepInput) (*SweepOutput, error) {
	if input == nil {
		return nil, invalid(errInputNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	checked := len(r.store)
	stale := r.sweepLocked(r.clock.Now(), input.DryRun)

	return &SweepOutput{Checked: checked, Stale: stale}, nil
}

func (r *InMemoryRepository) sweepLocked(now time.Time, dryRun bool) []string {
	var stale []string
	for id, a := range r.store {
		if now.After(a.ExpiresAt) {
			stale = append(stale, id)
			if !dryRun {
				delete(r.store, id)
			}
		}
	}
	sort.Strings(stale)
	return stale
}
