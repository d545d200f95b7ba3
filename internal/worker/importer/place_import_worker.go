package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourism-directory/internal/domain"
	"github.com/tourism-directory/internal/domain/repository"
	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/worker"
)

const (
	defaultBatchSize = 20
	emptyQueueSleep  = 100 * time.Millisecond
	errorSleep       = time.Second
	retryDelay       = 200 * time.Millisecond
)

// PlaceImporter - use case импорта одного места
type PlaceImporter interface {
	ImportPlace(ctx context.Context, ev domain.PlaceImportEvent) (*domain.Business, bool, error)
}

// PlaceImportWorker читает stream:places:import, создаёт или обновляет заведения
// и публикует результат в stream:places:imported
type PlaceImportWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	importer     PlaceImporter
	consumerName string
	batchSize    int
	maxRetries   int
	retryDelay   time.Duration
}

func NewPlaceImportWorker(
	streamRepo repository.StreamRepository,
	importer PlaceImporter,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	logger *zap.Logger,
) *PlaceImportWorker {
	hostname, _ := os.Hostname()
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &PlaceImportWorker{
		BaseWorker:   worker.NewBaseWorker("place-import", consumerGroup, logger),
		streamRepo:   streamRepo,
		importer:     importer,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		batchSize:    batchSize,
		maxRetries:   maxRetries,
		retryDelay:   retryDelay,
	}
}

func (w *PlaceImportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting place import worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPlacesImport, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Sleep(ctx, errorSleep)
			continue
		}
		if processed == 0 {
			w.Sleep(ctx, emptyQueueSleep)
		}
	}
}

// ProcessBatch читает до batchSize сообщений и обрабатывает их по одному.
// Каждое прочитанное сообщение ACK-ается: битое сразу, остальные после
// публикации результата. Возвращает число прочитанных сообщений.
func (w *PlaceImportWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(ctx, domain.StreamPlacesImport, w.ConsumerGroup(), w.consumerName, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(messages))
	created, updated, failed := 0, 0, 0
	for _, msg := range messages {
		ids = append(ids, msg.ID)

		var ev domain.PlaceImportEvent
		if err := json.Unmarshal([]byte(msg.Data), &ev); err != nil {
			logger.Warn("Malformed import message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}
		if ev.RequestID == uuid.Nil {
			ev.RequestID = uuid.New()
		}

		done := w.importOne(ctx, ev)
		switch {
		case done.Error != "":
			failed++
		case done.Created:
			created++
		default:
			updated++
		}

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamPlacesImported, done); err != nil {
			logger.Error("Failed to publish import result",
				zap.String("external_place_id", ev.ExternalPlaceID),
				zap.Error(err))
		}
	}

	// без ACK сообщения остаются в pending и повторно группой не читаются
	if err := w.streamRepo.AckMessages(ctx, domain.StreamPlacesImport, w.ConsumerGroup(), ids); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Import batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("created", created),
		zap.Int("updated", updated),
		zap.Int("failed", failed))
	return len(messages), nil
}

// importOne повторяет импорт при внутренних ошибках; ошибки данных не повторяются
func (w *PlaceImportWorker) importOne(ctx context.Context, ev domain.PlaceImportEvent) domain.PlaceImportDoneEvent {
	done := domain.PlaceImportDoneEvent{
		RequestID:       ev.RequestID,
		ExternalPlaceID: ev.ExternalPlaceID,
	}

	var err error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		var b *domain.Business
		b, done.Created, err = w.importer.ImportPlace(ctx, ev)
		if err == nil {
			done.BusinessID = b.ID
			return done
		}
		if !retryable(err) || attempt == w.maxRetries {
			break
		}
		w.Logger().Warn("Import failed, retrying",
			zap.String("external_place_id", ev.ExternalPlaceID),
			zap.Int("attempt", attempt+1),
			zap.Error(err))
		if !w.Sleep(ctx, w.retryDelay) {
			break
		}
	}

	done.Created = false
	done.Error = err.Error()
	return done
}

func retryable(err error) bool {
	appErr, ok := errors.As(err)
	return !ok || appErr.StatusCode >= 500
}
