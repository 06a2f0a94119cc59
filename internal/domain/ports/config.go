package ports

import (
	"context"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// ConfigLoader loads application configuration merged over defaults.
type ConfigLoader interface {
	Load(ctx context.Context, path string) (*entities.Config, error)
}
