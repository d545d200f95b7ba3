package usecase

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-directory/internal/usecase/dto"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

// HealthChecker - зависимость, которую можно пропинговать (PostgreSQL, Redis)
type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthUseCase struct {
	checks  map[string]HealthChecker
	timeout time.Duration
	logger  *zap.Logger
}

func NewHealthUseCase(checks map[string]HealthChecker, logger *zap.Logger) *HealthUseCase {
	return &HealthUseCase{
		checks:  checks,
		timeout: 2 * time.Second,
		logger:  logger,
	}
}

// Check pings every dependency; one failure makes the service degraded.
func (uc *HealthUseCase) Check(ctx context.Context) *dto.HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	names := make([]string, 0, len(uc.checks))
	for name := range uc.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := &dto.HealthResponse{Status: HealthStatusOK, Services: make(map[string]string, len(names))}
	for _, name := range names {
		if err := uc.checks[name].Health(ctx); err != nil {
			uc.logger.Warn("Health check failed", zap.String("service", name), zap.Error(err))
			resp.Services[name] = "unavailable"
			resp.Status = HealthStatusDegraded
			continue
		}
		resp.Services[name] = HealthStatusOK
	}
	return resp
}
