// Package worker runs background consumers of Redis Streams.
package worker

import (
	"context"
)

// Worker - фоновый обработчик. Start блокируется до Stop или отмены ctx.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
