package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	mongo *mongo.Client
	redis *redis.Client
}

func NewHealthHandler(mongoClient *mongo.Client, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{mongo: mongoClient, redis: redisClient}
}

// Liveness answers 200 as long as the process is serving requests.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness pings both backing stores and reports per-dependency status.
// Any failing dependency turns the response into a 503.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	status := http.StatusOK
	deps := map[string]string{"mongo": "ok", "redis": "ok"}

	if err := h.mongo.Ping(ctx, nil); err != nil {
		deps["mongo"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := h.redis.Ping(ctx).Err(); err != nil {
		deps["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":       http.StatusText(status),
		"dependencies": deps,
	})
}
