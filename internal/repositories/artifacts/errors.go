package artifacts

import "github.com/KirkDiggler/cardgen/internal/errors"

const (
	errInputNil    = "input is required"
	errArtifactNil = "artifact is required"
	errIDEmpty     = "artifact ID is required"
	errDataEmpty   = "artifact data is empty"
)

func invalid(message string) error {
	return errors.InvalidArgument(message)
}

func notFound(id string) error {
	return errors.NotFound("artifact not found").WithMeta("artifact_id", id)
}
