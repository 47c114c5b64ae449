package storage

import (
	"context"
	"fmt"

	"marketdash/internal/config"
)

// DeploymentMode represents the deployment environment
type DeploymentMode string

const (
	DeploymentLocal DeploymentMode = "local"
	DeploymentGCS   DeploymentMode = "gcs"
)

// NewClient creates a storage client based on the configured deployment mode
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	switch DeploymentMode(cfg.DeploymentMode) {
	case DeploymentLocal, "":
		dir := cfg.OutputDir
		if dir == "" {
			dir = "dist"
		}
		localClient, err := NewLocalClient(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
		}
		return localClient, nil

	case DeploymentGCS:
		gcsClient, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return gcsClient, nil

	default:
		return nil, fmt.Errorf("unsupported deployment mode: %s", cfg.DeploymentMode)
	}
}
