package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/picomenu/picomenu/internal/domain"
	"github.com/picomenu/picomenu/internal/repository"
)

type historyRepo struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) Record(ctx context.Context, rec *domain.LaunchRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *historyRepo) Recent(ctx context.Context, limit int) ([]domain.LaunchRecord, error) {
	var records []domain.LaunchRecord
	err := r.db.WithContext(ctx).
		Order("launched_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.NoHistoryError{}
	}

	// Keep only the newest launch of each ROM.
	seen := make(map[string]bool)
	var out []domain.LaunchRecord
	for _, rec := range records {
		if seen[rec.Path] {
			continue
		}
		seen[rec.Path] = true
		out = append(out, rec)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
