package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/egeorganic/site-api/internal/models"
)

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	MarkNotified(ctx context.Context, id uint, status string, notifyErr string) error
	List(ctx context.Context, filter SubmissionFilter) ([]models.ContactMessage, int64, error)
	GetByID(ctx context.Context, id uint) (models.ContactMessage, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository constructs a repository backed by GORM.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactRepository) MarkNotified(ctx context.Context, id uint, status string, notifyErr string) error {
	return r.db.WithContext(ctx).
		Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "notification_error": notifyErr}).
		Error
}

func (r *contactRepository) List(ctx context.Context, filter SubmissionFilter) ([]models.ContactMessage, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ContactMessage{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR subject LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.ContactMessage
	if err := query.Order(filter.order()).Limit(filter.limit()).Offset(filter.offset()).Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (models.ContactMessage, error) {
	var message models.ContactMessage
	err := r.db.WithContext(ctx).First(&message, id).Error
	return message, err
}

func (r *contactRepository) CountByStatus(ctx context.Context) (StatusCounts, error) {
	return countByStatus(r.db.WithContext(ctx).Model(&models.ContactMessage{}))
}

func countByStatus(query *gorm.DB) (StatusCounts, error) {
	var counts StatusCounts

	if err := query.Session(&gorm.Session{}).Count(&counts.Total).Error; err != nil {
		return StatusCounts{}, err
	}
	if err := query.Session(&gorm.Session{}).Where("status = ?", models.StatusNotificationSent).Count(&counts.Notified).Error; err != nil {
		return StatusCounts{}, err
	}
	if err := query.Session(&gorm.Session{}).Where("status = ?", models.StatusNotificationFailed).Count(&counts.NotifyFailed).Error; err != nil {
		return StatusCounts{}, err
	}

	return counts, nil
}
