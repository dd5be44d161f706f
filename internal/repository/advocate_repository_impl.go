package repository

import (
	"context"
	"math"
	"strconv"
	"strings"

	"advocate-directory/internal/domain/entity"
	domainRepo "advocate-directory/internal/domain/repository"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type advocatePage struct {
	advocates []entity.Advocate
	total     int64
}

type advocateRepository struct {
	breaker *gobreaker.CircuitBreaker[advocatePage]
}

func NewAdvocateRepository(settings gobreaker.Settings) domainRepo.AdvocateRepository {
	return &advocateRepository{
		breaker: gobreaker.NewCircuitBreaker[advocatePage](settings),
	}
}

func (r *advocateRepository) Search(ctx context.Context, db *gorm.DB, filter *entity.AdvocateFilter) ([]entity.Advocate, int64, error) {
	page, err := r.breaker.Execute(func() (advocatePage, error) {
		return r.search(ctx, db, filter)
	})
	if err != nil {
		return nil, 0, err
	}
	return page.advocates, page.total, nil
}

// search runs the count and the page query concurrently. Each goroutine
// starts its own session so the two statements never share state.
func (r *advocateRepository) search(ctx context.Context, db *gorm.DB, filter *entity.AdvocateFilter) (advocatePage, error) {
	var advocates []entity.Advocate
	var total int64

	scope := matchAdvocates(filter.Search)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).
			Model(&entity.Advocate{}).
			Scopes(scope).
			Count(&total).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).
			Scopes(scope).
			Order("id ASC").
			Limit(filter.Limit).
			Offset(filter.Offset).
			Find(&advocates).Error
	})
	if err := g.Wait(); err != nil {
		return advocatePage{}, err
	}

	if advocates == nil {
		advocates = []entity.Advocate{}
	}

	return advocatePage{advocates: advocates, total: total}, nil
}

// matchAdvocates builds the search predicate. Text columns match on a
// case-insensitive substring; LOWER(...) LIKE keeps the predicate portable
// between PostgreSQL and SQLite. A term with an integral numeric value also
// matches years_of_experience exactly.
func matchAdvocates(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}

		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"

		conditions := []string{
			`LOWER(first_name) LIKE ? ESCAPE '\'`,
			`LOWER(last_name) LIKE ? ESCAPE '\'`,
			`LOWER(city) LIKE ? ESCAPE '\'`,
			`LOWER(degree) LIKE ? ESCAPE '\'`,
			`LOWER(CAST(payload AS TEXT)) LIKE ? ESCAPE '\'`,
		}
		args := []interface{}{pattern, pattern, pattern, pattern, pattern}

		if years, ok := parseYears(search); ok {
			conditions = append(conditions, "years_of_experience = ?")
			args = append(args, years)
		}

		return db.Where("("+strings.Join(conditions, " OR ")+")", args...)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// parseYears accepts any numeric term whose value is a whole number that
// fits the integer column, so "5" and "5.0" both match 5 years. Unsigned
// 0x, 0o and 0b integer literals are numbers too ("0x10" is 16).
func parseYears(search string) (int, bool) {
	n, err := strconv.ParseFloat(search, 64)
	if err != nil {
		prefixed, ok := parsePrefixedInt(search)
		if !ok {
			return 0, false
		}
		n = float64(prefixed)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

func parsePrefixedInt(search string) (int64, bool) {
	lower := strings.ToLower(search)
	if len(lower) < 3 || strings.Contains(lower, "_") {
		return 0, false
	}
	switch lower[:2] {
	case "0x", "0o", "0b":
	default:
		return 0, false
	}

	n, err := strconv.ParseInt(lower, 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
