package usecase

import (
	"context"
	"strings"

	"advocate-directory/config"
	"advocate-directory/internal/converter"
	"advocate-directory/internal/delivery/dto"
	"advocate-directory/internal/domain/entity"
	"advocate-directory/internal/domain/repository"
	"advocate-directory/internal/infrastructure/metrics"
	"advocate-directory/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AdvocateUsecase interface {
	SearchAdvocates(ctx context.Context, query *dto.SearchAdvocatesQuery) (*dto.AdvocateListResponse, error)
}

type advocateUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.SearchConfig
	advocateRepo repository.AdvocateRepository
}

func NewAdvocateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.SearchConfig,
	advocateRepo repository.AdvocateRepository,
) AdvocateUsecase {
	return &advocateUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		advocateRepo: advocateRepo,
	}
}

// SearchAdvocates never fails for an out-of-range page: it returns an empty
// page with the real totals.
func (u *advocateUsecase) SearchAdvocates(ctx context.Context, query *dto.SearchAdvocatesQuery) (*dto.AdvocateListResponse, error) {
	search := strings.TrimSpace(query.Search)

	params := pagination.Normalize(query.Page, query.Limit, pagination.Defaults{
		Limit:    u.cfg.DefaultLimit,
		MaxLimit: u.cfg.MaxLimit,
	})

	filter := &entity.AdvocateFilter{
		Search: search,
		Limit:  params.Limit,
		Offset: params.Offset(),
	}

	advocates, total, err := u.advocateRepo.Search(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to search advocates: %+v", err)
		return nil, err
	}

	metrics.AdvocateSearchMatches.Observe(float64(total))

	return &dto.AdvocateListResponse{
		Advocates:  converter.AdvocatesToResponses(advocates),
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: pagination.TotalPages(total, params.Limit),
	}, nil
}
