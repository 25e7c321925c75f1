package services

import (
	"errors"

	"github.com/assaka/aurareach/internal/database"
	"github.com/assaka/aurareach/internal/models"
	"github.com/assaka/aurareach/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KeywordService struct {
	db   *database.DB
	repo *repository.Repository[models.Keyword]
}

func NewKeywordService(db *database.DB) *KeywordService {
	return &KeywordService{
		db:   db,
		repo: repository.NewRepository[models.Keyword](db, models.KeywordColumns),
	}
}

// Repo exposes the generic CRUD path for the keyword routes.
func (s *KeywordService) Repo() *repository.Repository[models.Keyword] {
	return s.repo
}

// KeywordStats is one GROUP BY status bucket with its averages. Averages are
// nullable because a bucket may hold only rows without scores.
type KeywordStats struct {
	Status              string   `json:"status"`
	Count               int64    `json:"count"`
	AvgSearchVolume     *float64 `json:"avg_search_volume"`
	AvgCPC              *float64 `json:"avg_cpc"`
	AvgOpportunityScore *float64 `json:"avg_opportunity_score"`
}

// Search does a case-insensitive substring match across the keyword text,
// category and notes, with the same pagination semantics as the generic list.
func (s *KeywordService) Search(term string, opts repository.ListOptions) (*repository.Page[models.Keyword], error) {
	opts = opts.Normalized()
	pattern := "%" + term + "%"

	query := s.db.Model(&models.Keyword{}).
		Where("keyword ILIKE ? OR category ILIKE ? OR notes ILIKE ?", pattern, pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	direction := "DESC"
	if opts.Sort == "asc" {
		direction = "ASC"
	}

	rows := make([]models.Keyword, 0, opts.Limit)
	err := query.
		Order(s.repo.SortColumn(opts.SortBy) + " " + direction).
		Offset(opts.Offset()).
		Limit(opts.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &repository.Page[models.Keyword]{
		Data:       rows,
		Pagination: repository.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

func (s *KeywordService) FindByStatus(status string, opts repository.ListOptions) (*repository.Page[models.Keyword], error) {
	opts.Where = map[string]any{"status": status}
	return s.repo.List(opts)
}

func (s *KeywordService) FindByCategory(category string, opts repository.ListOptions) (*repository.Page[models.Keyword], error) {
	opts.Where = map[string]any{"category": category}
	return s.repo.List(opts)
}

// Stats groups keywords by status with count and averages. Bounded by the
// number of distinct statuses, so no pagination.
func (s *KeywordService) Stats() ([]KeywordStats, error) {
	var stats []KeywordStats
	err := s.db.Model(&models.Keyword{}).
		Select("status, COUNT(*) AS count, AVG(search_volume) AS avg_search_volume, AVG(cpc) AS avg_cpc, AVG(opportunity_score) AS avg_opportunity_score").
		Group("status").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// TopOpportunities returns the highest-scored active keywords. The secondary
// sort on id makes ordering deterministic for equal scores.
func (s *KeywordService) TopOpportunities(limit int) ([]models.Keyword, error) {
	if limit < 1 {
		limit = repository.DefaultLimit
	}

	rows := make([]models.Keyword, 0, limit)
	err := s.db.
		Where("status = ? AND opportunity_score IS NOT NULL", "active").
		Order("opportunity_score DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateLastUpdated stamps last_updated with the database clock and returns
// the row, or (nil, nil) when the keyword is gone.
func (s *KeywordService) UpdateLastUpdated(id uuid.UUID) (*models.Keyword, error) {
	var row models.Keyword
	result := s.db.Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("last_updated", gorm.Expr("CURRENT_TIMESTAMP"))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}
