// Package cli holds the startup steps shared by the subcommands.
package cli

import (
	"fmt"

	"github.com/corycamp/support-ticket-backend/internal/infrastructure/config"
	"github.com/corycamp/support-ticket-backend/internal/shared/biztime"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

// Bootstrap loads the configuration and initializes the process logger and
// the business timezone.
func Bootstrap(env, configPath string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = MapEnvToGinMode(cfg.Server.Mode)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// MapEnvToGinMode accepts either an environment name or a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	case "development", "dev", "debug":
		return "debug"
	default:
		return "release"
	}
}
