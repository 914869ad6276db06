package catalog

import (
	"context"

	"github.com/sweetlayers/sweetlayers-backend/pkg/db/models"
	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the cake catalog.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*models.Cake, error)
	ListActive(ctx context.Context) ([]models.Cake, error)
	ListByCategory(ctx context.Context, category enums.CakeCategory) ([]models.Cake, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Cake, error) {
	var cake models.Cake
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active", id).
		First(&cake).Error
	if err != nil {
		return nil, err
	}
	return &cake, nil
}

func (r *repository) ListActive(ctx context.Context) ([]models.Cake, error) {
	var cakes []models.Cake
	err := r.db.WithContext(ctx).
		Where("is_active").
		Order("id ASC").
		Find(&cakes).Error
	if err != nil {
		return nil, err
	}
	return cakes, nil
}

func (r *repository) ListByCategory(ctx context.Context, category enums.CakeCategory) ([]models.Cake, error) {
	var cakes []models.Cake
	err := r.db.WithContext(ctx).
		Where("category = ? AND is_active", category).
		Order("id ASC").
		Find(&cakes).Error
	if err != nil {
		return nil, err
	}
	return cakes, nil
}
