package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/egeorganic/site-api/internal/models"
)

// LeadRepository persists learn-more lead inquiries.
type LeadRepository interface {
	Create(ctx context.Context, lead *models.LeadInquiry) error
	MarkNotified(ctx context.Context, id uint, status string, notifyErr string) error
	List(ctx context.Context, filter SubmissionFilter) ([]models.LeadInquiry, int64, error)
	GetByID(ctx context.Context, id uint) (models.LeadInquiry, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository constructs a repository backed by GORM.
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *models.LeadInquiry) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) MarkNotified(ctx context.Context, id uint, status string, notifyErr string) error {
	return r.db.WithContext(ctx).
		Model(&models.LeadInquiry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "notification_error": notifyErr}).
		Error
}

func (r *leadRepository) List(ctx context.Context, filter SubmissionFilter) ([]models.LeadInquiry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.LeadInquiry{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR mobile LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []models.LeadInquiry
	if err := query.Order(filter.order()).Limit(filter.limit()).Offset(filter.offset()).Find(&leads).Error; err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

func (r *leadRepository) GetByID(ctx context.Context, id uint) (models.LeadInquiry, error) {
	var lead models.LeadInquiry
	err := r.db.WithContext(ctx).First(&lead, id).Error
	return lead, err
}

func (r *leadRepository) CountByStatus(ctx context.Context) (StatusCounts, error) {
	return countByStatus(r.db.WithContext(ctx).Model(&models.LeadInquiry{}))
}
