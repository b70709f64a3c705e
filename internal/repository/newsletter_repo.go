package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/egeorganic/site-api/internal/models"
)

// NewsletterRepository persists newsletter subscriptions.
type NewsletterRepository interface {
	Create(ctx context.Context, subscription *models.NewsletterSubscription) error
	// FindActiveByEmail returns the existing active subscription for the
	// address, or nil when none exists. At most one match is returned.
	FindActiveByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error)
	MarkNotified(ctx context.Context, id uint, status string, notifyErr string) error
	List(ctx context.Context, filter SubmissionFilter) ([]models.NewsletterSubscription, int64, error)
	GetByID(ctx context.Context, id uint) (models.NewsletterSubscription, error)
	CountByStatus(ctx context.Context) (StatusCounts, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository constructs a repository backed by GORM.
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(ctx context.Context, subscription *models.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *newsletterRepository) FindActiveByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var subscription models.NewsletterSubscription
	err := r.db.WithContext(ctx).
		Where("email = ? AND active = ?", email, true).
		Limit(1).
		First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

func (r *newsletterRepository) MarkNotified(ctx context.Context, id uint, status string, notifyErr string) error {
	return r.db.WithContext(ctx).
		Model(&models.NewsletterSubscription{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "notification_error": notifyErr}).
		Error
}

func (r *newsletterRepository) List(ctx context.Context, filter SubmissionFilter) ([]models.NewsletterSubscription, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.NewsletterSubscription{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		query = query.Where("email LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subscriptions []models.NewsletterSubscription
	if err := query.Order(filter.order()).Limit(filter.limit()).Offset(filter.offset()).Find(&subscriptions).Error; err != nil {
		return nil, 0, err
	}

	return subscriptions, total, nil
}

func (r *newsletterRepository) GetByID(ctx context.Context, id uint) (models.NewsletterSubscription, error) {
	var subscription models.NewsletterSubscription
	err := r.db.WithContext(ctx).First(&subscription, id).Error
	return subscription, err
}

func (r *newsletterRepository) CountByStatus(ctx context.Context) (StatusCounts, error) {
	return countByStatus(r.db.WithContext(ctx).Model(&models.NewsletterSubscription{}))
}
