package dbmigrate

import (
	"fmt"

	"github.com/rsantiago76/BetterMe-sub000/internal/config"
)

// SelectDatabaseURL picks the connection string to use. Migrations must run
// against the direct (non-pooled) connection when one is configured, since
// transaction poolers break DDL; the runtime URL is only a fallback. Returns
// the URL plus the name of the env var it came from, for logging.
func SelectDatabaseURL(cfg *config.Config, forMigrations bool) (string, string, error) {
	if forMigrations {
		if cfg.DatabaseURLDirect != "" {
			return cfg.DatabaseURLDirect, "DATABASE_URL_DIRECT", nil
		}
		if cfg.DatabaseURL != "" {
			return cfg.DatabaseURL, "DATABASE_URL", nil
		}
		return "", "", fmt.Errorf("no database URL configured for migrations (set DATABASE_URL_DIRECT)")
	}

	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL, "DATABASE_URL", nil
	}
	return "", "", fmt.Errorf("no database URL configured")
}
