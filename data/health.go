package data

import (
	"context"
	"time"
)

// Health checks the data layer dependencies
func (d *Data) Health(ctx context.Context) map[string]any {
	health := map[string]any{
		"timestamp": time.Now(),
		"services":  make(map[string]any),
	}

	services := health["services"].(map[string]any)
	overallHealthy := true

	if healthy := d.checkRedisHealth(ctx, services); !healthy {
		overallHealthy = false
	}

	if overallHealthy {
		health["status"] = "healthy"
	} else {
		health["status"] = "degraded"
	}

	return health
}

// checkRedisHealth checks Redis health
func (d *Data) checkRedisHealth(ctx context.Context, services map[string]any) bool {
	rc := d.GetRedis()
	if rc == nil {
		return true // No Redis configured
	}

	start := time.Now()
	err := rc.Ping(ctx).Err()
	duration := time.Since(start)

	healthy := err == nil
	services["redis"] = map[string]any{
		"healthy":     healthy,
		"response_ms": duration.Milliseconds(),
		"error":       getErrorString(err),
	}

	return healthy
}

// getErrorString returns error string
func getErrorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
