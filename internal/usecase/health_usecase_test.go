package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/usecase"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Health(ctx context.Context) error { return f(ctx) }

func TestHealthUseCase_Check(t *testing.T) {
	ok := checkerFunc(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	})
	down := checkerFunc(func(context.Context) error { return errors.ErrCacheError })

	t.Run("all healthy", func(t *testing.T) {
		uc := usecase.NewHealthUseCase(map[string]usecase.HealthChecker{"postgres": ok, "redis": ok}, zap.NewNop())
		resp := uc.Check(context.Background())
		assert.Equal(t, usecase.HealthStatusOK, resp.Status)
		assert.Equal(t, map[string]string{"postgres": "ok", "redis": "ok"}, resp.Services)
	})

	t.Run("one dependency down", func(t *testing.T) {
		uc := usecase.NewHealthUseCase(map[string]usecase.HealthChecker{"postgres": ok, "redis": down}, zap.NewNop())
		resp := uc.Check(context.Background())
		assert.Equal(t, usecase.HealthStatusDegraded, resp.Status)
		assert.Equal(t, "ok", resp.Services["postgres"])
		assert.Equal(t, "unavailable", resp.Services["redis"])
	})

	t.Run("no dependencies", func(t *testing.T) {
		resp := usecase.NewHealthUseCase(nil, zap.NewNop()).Check(context.Background())
		assert.Equal(t, usecase.HealthStatusOK, resp.Status)
		assert.Empty(t, resp.Services)
	})
}
