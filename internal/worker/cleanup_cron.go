package worker

// cleanup_cron.go
// Background goroutine that periodically removes export artifacts older than
// the configured TTL. The matching Redis status hashes expire on their own;
// this keeps the disk in step with them.

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

const cleanupTickInterval = 1 * time.Hour

// CleanupCronConfig holds the parameters for the artifact sweeper.
type CleanupCronConfig struct {
	StoragePath string
	MaxAge      time.Duration
}

// StartCleanupCron launches a goroutine that ticks hourly and deletes aged
// files under StoragePath. It respects the context for graceful shutdown.
func StartCleanupCron(ctx context.Context, cfg CleanupCronConfig) {
	go func() {
		ticker := time.NewTicker(cleanupTickInterval)
		defer ticker.Stop()

		log.Info().Msg("cleanup_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("cleanup_cron: shutting down")
				return
			case <-ticker.C:
				sweepArtifacts(cfg)
			}
		}
	}()
}

func sweepArtifacts(cfg CleanupCronConfig) {
	entries, err := os.ReadDir(cfg.StoragePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Str("path", cfg.StoragePath).Msg("cleanup_cron: failed to read storage dir")
		}
		return
	}

	limite := time.Now().Add(-cfg.MaxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(limite) {
			continue
		}
		path := filepath.Join(cfg.StoragePath, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("file", path).Msg("cleanup_cron: failed to remove artifact")
			continue
		}
		removed++
	}
	if removed > 0 {
		log.Info().Int("removed", removed).Msg("cleanup_cron: aged artifacts removed")
	}
}
