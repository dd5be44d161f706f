package repository

import (
	"context"

	"advocate-directory/internal/domain/entity"

	"gorm.io/gorm"
)

type AdvocateRepository interface {
	// Search returns one page of advocates matching filter, ordered by id,
	// together with the number of matches across all pages.
	Search(ctx context.Context, db *gorm.DB, filter *entity.AdvocateFilter) ([]entity.Advocate, int64, error)
}
