package health

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthChecker struct {
	db *pgxpool.Pool
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
}

func NewHealthChecker(db *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{db: db}
}

// CheckBasic pings the database with a short timeout
func (h *HealthChecker) CheckBasic() HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	elapsed := time.Since(start).Milliseconds()

	status := HealthStatus{
		Status: "healthy",
		Database: DatabaseHealth{
			Status:       "connected",
			ResponseTime: elapsed,
		},
	}
	if err != nil {
		status.Status = "unhealthy"
		status.Database.Status = "disconnected"
	}
	return status
}
