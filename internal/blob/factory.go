package blob

import (
	"fmt"

	appcfg "github.com/rsantiago76/BetterMe-sub000/internal/config"
)

type Logger interface {
	Printf(format string, v ...any)
}

// NewBlobStore builds a blob store using mode local|s3|auto. Auto picks S3
// when fully configured and quietly falls back to the local directory
// otherwise; forced s3 mode fails hard on incomplete config.
func NewBlobStore(cfg appcfg.BlobConfig, logger Logger) (Store, string, error) {
	switch cfg.Mode {
	case appcfg.BlobModeLocal, "":
		logf(logger, "INFO blob: mode=local dir=%s", cfg.LocalDir)
		store, err := NewLocalStore(cfg.LocalDir)
		return store, appcfg.BlobModeLocal, err

	case appcfg.BlobModeAuto:
		if !cfg.S3.IsConfigured() {
			logf(logger, "INFO blob: mode=local (auto, S3 not configured)")
			store, err := NewLocalStore(cfg.LocalDir)
			return store, appcfg.BlobModeLocal, err
		}

		store, err := NewS3Store(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.Bucket, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey)
		if err != nil {
			logf(logger, "WARN blob.s3: init_failed=%q, fallback=local", err.Error())
			local, lerr := NewLocalStore(cfg.LocalDir)
			return local, appcfg.BlobModeLocal, lerr
		}

		logf(logger, "INFO blob: mode=s3 (auto) %s", cfg.S3.DiagnosticsSummary())
		return store, appcfg.BlobModeS3, nil

	case appcfg.BlobModeS3:
		if !cfg.S3.IsConfigured() {
			missing := cfg.S3.MissingRequired()
			return nil, "", fmt.Errorf("BLOB_MODE=s3 requested but missing required config: %v", missing)
		}

		store, err := NewS3Store(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.Bucket, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey)
		if err != nil {
			return nil, "", fmt.Errorf("BLOB_MODE=s3 init failed: %w", err)
		}

		logf(logger, "INFO blob: mode=s3 (forced) %s", cfg.S3.DiagnosticsSummary())
		return store, appcfg.BlobModeS3, nil

	default:
		return nil, "", fmt.Errorf("unsupported blob mode: %s", cfg.Mode)
	}
}

func logf(logger Logger, format string, v ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, v...)
}
