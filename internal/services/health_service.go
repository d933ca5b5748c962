package services

import (
	"context"
	"log/slog"
	"time"
)

// Version information, set at build time via -ldflags
var (
	Version   = "v1.0.0"
	BuildTime = ""
)

// HealthStatus is the health endpoint response
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// VersionInfo is the version endpoint response
type VersionInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time,omitempty"`
}

// HealthService reports process health and readiness
type HealthService struct {
	logger     *slog.Logger
	startedAt  time.Time
	classifier string
}

// NewHealthService creates a health service. classifierModel is reported in
// readiness so operators can see which model the process is bound to.
func NewHealthService(classifierModel string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		logger:     logger.With(slog.String("service", "health")),
		startedAt:  time.Now(),
		classifier: classifierModel,
	}
}

// HealthCheck reports liveness
func (s *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	return HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	}
}

// ReadinessCheck reports whether the service can take traffic
func (s *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	checks := map[string]string{
		"classifier": "configured",
		"uptime":     time.Since(s.startedAt).Truncate(time.Second).String(),
	}
	if s.classifier == "" {
		checks["classifier"] = "missing"
		return HealthStatus{Status: "degraded", Timestamp: time.Now().UTC(), Checks: checks}
	}
	checks["model"] = s.classifier
	return HealthStatus{Status: "ok", Timestamp: time.Now().UTC(), Checks: checks}
}

// VersionInfo returns build version information
func (s *HealthService) Version() VersionInfo {
	return VersionInfo{
		Version:   Version,
		BuildTime: BuildTime,
	}
}
