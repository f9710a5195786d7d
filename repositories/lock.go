package repositories

import (
	"ClinicRecords/database"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// withLock runs fn under a Redis distributed lock. Deployments without Redis
// wired run fn directly and rely on the storage engine's isolation.
func withLock(ctx context.Context, key string, fn func() error) error {
	if database.RedisClient == nil {
		return fn()
	}

	lockValue := uuid.New().String()

	// Retry logic for acquiring lock
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, key, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}

	defer func() {
		if err := database.ReleaseLock(ctx, key, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	return fn()
}
