package repository

import (
	"context"

	"github.com/picomenu/picomenu/internal/domain"
)

type HistoryRepository interface {
	Record(ctx context.Context, rec *domain.LaunchRecord) error
	// Recent returns the most recent launches, newest first, deduplicated by
	// ROM path.
	Recent(ctx context.Context, limit int) ([]domain.LaunchRecord, error)
}
