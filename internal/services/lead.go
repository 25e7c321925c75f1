package services

import (
	"github.com/assaka/aurareach/internal/database"
	"github.com/assaka/aurareach/internal/models"
	"github.com/assaka/aurareach/internal/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeadService struct {
	db   *database.DB
	repo *repository.Repository[models.Lead]
}

func NewLeadService(db *database.DB) *LeadService {
	return &LeadService{
		db:   db,
		repo: repository.NewRepository[models.Lead](db, models.LeadColumns),
	}
}

// Repo exposes the generic CRUD path for the lead routes.
func (s *LeadService) Repo() *repository.Repository[models.Lead] {
	return s.repo
}

// LeadStats is one GROUP BY status bucket.
type LeadStats struct {
	Status         string   `json:"status"`
	Count          int64    `json:"count"`
	AvgIntentScore *float64 `json:"avg_intent_score"`
}

// IndustryDistribution is one GROUP BY industry bucket.
type IndustryDistribution struct {
	Industry       string   `json:"industry"`
	Count          int64    `json:"count"`
	AvgIntentScore *float64 `json:"avg_intent_score"`
}

// Search matches the term case-insensitively across company, contact and
// location columns; pagination semantics match the generic list.
func (s *LeadService) Search(term string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	opts = opts.Normalized()
	pattern := "%" + term + "%"

	query := s.db.Model(&models.Lead{}).
		Where("company_name ILIKE ? OR contact_name ILIKE ? OR contact_email ILIKE ? OR industry ILIKE ? OR location ILIKE ?",
			pattern, pattern, pattern, pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	direction := "DESC"
	if opts.Sort == "asc" {
		direction = "ASC"
	}

	rows := make([]models.Lead, 0, opts.Limit)
	err := query.
		Order(s.repo.SortColumn(opts.SortBy) + " " + direction).
		Offset(opts.Offset()).
		Limit(opts.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &repository.Page[models.Lead]{
		Data:       rows,
		Pagination: repository.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

func (s *LeadService) FindByStatus(status string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	opts.Where = map[string]any{"status": status}
	return s.repo.List(opts)
}

func (s *LeadService) FindByIndustry(industry string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	opts.Where = map[string]any{"industry": industry}
	return s.repo.List(opts)
}

func (s *LeadService) FindByCompanySize(size string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	opts.Where = map[string]any{"company_size": size}
	return s.repo.List(opts)
}

// FindByTechStack returns leads whose tech_stack array overlaps the given
// set. The && operator is the one query here not expressible as equality.
func (s *LeadService) FindByTechStack(techs []string, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	opts = opts.Normalized()

	query := s.db.Model(&models.Lead{}).
		Where("tech_stack && ?", pq.StringArray(techs))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	direction := "DESC"
	if opts.Sort == "asc" {
		direction = "ASC"
	}

	rows := make([]models.Lead, 0, opts.Limit)
	err := query.
		Order(s.repo.SortColumn(opts.SortBy) + " " + direction).
		Offset(opts.Offset()).
		Limit(opts.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &repository.Page[models.Lead]{
		Data:       rows,
		Pagination: repository.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

// Stats groups leads by status, most populous bucket first.
func (s *LeadService) Stats() ([]LeadStats, error) {
	var stats []LeadStats
	err := s.db.Model(&models.Lead{}).
		Select("status, COUNT(*) AS count, AVG(intent_score) AS avg_intent_score").
		Group("status").
		Order("count DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// HighIntent lists leads at or above minScore that are still early in the
// funnel, highest intent first.
func (s *LeadService) HighIntent(minScore int, opts repository.ListOptions) (*repository.Page[models.Lead], error) {
	opts = opts.Normalized()

	query := s.db.Model(&models.Lead{}).
		Where("intent_score >= ? AND status IN ?", minScore, []string{"new", "contacted"})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	rows := make([]models.Lead, 0, opts.Limit)
	err := query.
		Order("intent_score DESC, created_at DESC").
		Offset(opts.Offset()).
		Limit(opts.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return &repository.Page[models.Lead]{
		Data:       rows,
		Pagination: repository.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

// IndustryDistributions groups leads by non-null industry, largest first.
func (s *LeadService) IndustryDistributions() ([]IndustryDistribution, error) {
	var dist []IndustryDistribution
	err := s.db.Model(&models.Lead{}).
		Select("industry, COUNT(*) AS count, AVG(intent_score) AS avg_intent_score").
		Where("industry IS NOT NULL").
		Group("industry").
		Order("count DESC").
		Scan(&dist).Error
	if err != nil {
		return nil, err
	}
	return dist, nil
}

// UpdateLastActivity stamps last_activity with the database clock and returns
// the row, or (nil, nil) when the lead is gone.
func (s *LeadService) UpdateLastActivity(id uuid.UUID) (*models.Lead, error) {
	var row models.Lead
	result := s.db.Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("last_activity", gorm.Expr("CURRENT_TIMESTAMP"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}
