// Package artifacts keeps finished exports around long enough for a client
// to download them.
package artifacts

//go:generate mockgen -destination=mock/mock_repository.go -package=artifactsmock github.com/KirkDiggler/cardgen/internal/repositories/artifacts Repository

import (
	"context"
	"time"
)

// DefaultTTL is how long an artifact stays downloadable
const DefaultTTL = 10 * time.Minute

// Artifact is one exported file
type Artifact struct {
	ID          string    `json:"id"`
	CardID      string    `json:"card_id"`
	Format      string    `json:"format"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Repository defines the storage interface for export artifacts
type Repository interface {
	// Save stores an artifact; CreatedAt and ExpiresAt are set by the store
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves an artifact that has not expired
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes an artifact
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Sweep removes artifacts that are expired, unreadable or stored
	// without a TTL
	Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error)
}

// SaveInput defines the request for saving an artifact
type SaveInput struct {
	Artifact *Artifact
}

// SaveOutput defines the response for saving an artifact
type SaveOutput struct {
	Artifact *Artifact
}

// GetInput defines the request for retrieving an artifact
type GetInput struct {
	ID string
}

// GetOutput defines the response for retrieving an artifact
type GetOutput struct {
	Artifact *Artifact
}

// DeleteInput defines the request for deleting an artifact
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting an artifact
type DeleteOutput struct{}

// SweepInput defines the request for sweeping stale artifacts
type SweepInput struct {
	DryRun bool // Report what would be removed without removing it
}

// SweepOutput defines the response for sweeping stale artifacts
type SweepOutput struct {
	Checked int
	Stale   []string // Artifact IDs, sorted
}

func validateArtifact(a *Artifact) error {
	switch {
	case a == nil:
		return invalid(errArtifactNil)
	case a.ID == "":
		return invalid(errIDEmpty)
	case len(a.Data) == 0:
		return invalid(errDataEmpty)
	}
	return nil
}

func copyArtifact(a *Artifact) *Artifact {
	out := *a
	out.Data = append([]byte(nil), a.Data...)
	return &out
}
