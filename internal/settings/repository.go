package settings

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Get(ctx context.Context) (*AppSettings, error)
	Save(ctx context.Context, settings *AppSettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*AppSettings, error) {
	settings := AppSettings{ID: 1}
	if err := r.db.WithContext(ctx).FirstOrCreate(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repository) Save(ctx context.Context, settings *AppSettings) error {
	settings.ID = 1
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(settings).Error
}
