package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/egeorganic/site-api/internal/dto"
	"github.com/egeorganic/site-api/internal/models"
	"github.com/egeorganic/site-api/internal/repository"
)

// ErrSubmissionNotFound indicates the requested submission does not exist.
var ErrSubmissionNotFound = errors.New("submission not found")

const statsCacheKey = "ege:admin:submission_stats"

// AdminSubmissionService exposes operator read access over stored
// submissions, for follow-up on unresolved leads and failed notifications.
type AdminSubmissionService interface {
	ListContacts(ctx context.Context, req dto.AdminListRequest) (dto.AdminContactListResponse, error)
	GetContact(ctx context.Context, id uint) (dto.AdminContactItem, error)
	ListNewsletter(ctx context.Context, req dto.AdminListRequest) (dto.AdminNewsletterListResponse, error)
	ListLeads(ctx context.Context, req dto.AdminListRequest) (dto.AdminLeadListResponse, error)
	GetLead(ctx context.Context, id uint) (dto.AdminLeadItem, error)
	Stats(ctx context.Context) (dto.AdminStatsResponse, error)
}

type adminSubmissionService struct {
	contacts   repository.ContactRepository
	newsletter repository.NewsletterRepository
	leads      repository.LeadRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     zerolog.Logger
}

// NewAdminSubmissionService constructs the operator read service. A nil
// cache disables stats caching.
func NewAdminSubmissionService(contacts repository.ContactRepository, newsletter repository.NewsletterRepository, leads repository.LeadRepository, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) AdminSubmissionService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &adminSubmissionService{
		contacts:   contacts,
		newsletter: newsletter,
		leads:      leads,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger.With().Str("component", "admin_submission_service").Logger(),
	}
}

func (s *adminSubmissionService) ListContacts(ctx context.Context, req dto.AdminListRequest) (dto.AdminContactListResponse, error) {
	filter := buildFilter(req)

	messages, total, err := s.contacts.List(ctx, filter)
	if err != nil {
		return dto.AdminContactListResponse{}, err
	}

	items := make([]dto.AdminContactItem, 0, len(messages))
	for _, message := range messages {
		items = append(items, toAdminContactItem(message))
	}

	return dto.AdminContactListResponse{
		Items:      items,
		Pagination: buildPagination(filter, total),
	}, nil
}

func (s *adminSubmissionService) GetContact(ctx context.Context, id uint) (dto.AdminContactItem, error) {
	message, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AdminContactItem{}, ErrSubmissionNotFound
		}
		return dto.AdminContactItem{}, err
	}
	return toAdminContactItem(message), nil
}

func (s *adminSubmissionService) ListNewsletter(ctx context.Context, req dto.AdminListRequest) (dto.AdminNewsletterListResponse, error) {
	filter := buildFilter(req)

	subscriptions, total, err := s.newsletter.List(ctx, filter)
	if err != nil {
		return dto.AdminNewsletterListResponse{}, err
	}

	items := make([]dto.AdminNewsletterItem, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		items = append(items, dto.AdminNewsletterItem{
			ID:          subscription.ID,
			ReferenceID: subscription.ReferenceID,
			Email:       maskEmailAddress(subscription.Email),
			Active:      subscription.Active,
			Source:      subscription.Source,
			Status:      subscription.Status,
			CreatedAt:   subscription.CreatedAt,
		})
	}

	return dto.AdminNewsletterListResponse{
		Items:      items,
		Pagination: buildPagination(filter, total),
	}, nil
}

func (s *adminSubmissionService) ListLeads(ctx context.Context, req dto.AdminListRequest) (dto.AdminLeadListResponse, error) {
	filter := buildFilter(req)

	leads, total, err := s.leads.List(ctx, filter)
	if err != nil {
		return dto.AdminLeadListResponse{}, err
	}

	items := make([]dto.AdminLeadItem, 0, len(leads))
	for _, lead := range leads {
		items = append(items, toAdminLeadItem(lead))
	}

	return dto.AdminLeadListResponse{
		Items:      items,
		Pagination: buildPagination(filter, total),
	}, nil
}

func (s *adminSubmissionService) GetLead(ctx context.Context, id uint) (dto.AdminLeadItem, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AdminLeadItem{}, ErrSubmissionNotFound
		}
		return dto.AdminLeadItem{}, err
	}
	return toAdminLeadItem(lead), nil
}

// Stats aggregates per-kind submission counts, served from a short-lived
// redis cache when available.
func (s *adminSubmissionService) Stats(ctx context.Context) (dto.AdminStatsResponse, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var cached dto.AdminStatsResponse
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				cached.CacheHit = true
				return cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		}
	}

	contactCounts, err := s.contacts.CountByStatus(ctx)
	if err != nil {
		return dto.AdminStatsResponse{}, err
	}
	newsletterCounts, err := s.newsletter.CountByStatus(ctx)
	if err != nil {
		return dto.AdminStatsResponse{}, err
	}
	leadCounts, err := s.leads.CountByStatus(ctx)
	if err != nil {
		return dto.AdminStatsResponse{}, err
	}

	stats := dto.AdminStatsResponse{
		Contacts:    toKindStats(contactCounts),
		Newsletter:  toKindStats(newsletterCounts),
		Leads:       toKindStats(leadCounts),
		GeneratedAt: time.Now().UTC(),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("stats cache write failed")
			}
		}
	}

	return stats, nil
}

func buildFilter(req dto.AdminListRequest) repository.SubmissionFilter {
	filter := repository.SubmissionFilter{
		Search:   strings.TrimSpace(req.Search),
		Status:   strings.TrimSpace(req.Status),
		Sort:     strings.TrimSpace(req.Sort),
		Page:     normalizePage(req.Page),
		PageSize: clampPageSize(req.PageSize),
	}
	if filter.Sort == "" {
		filter.Sort = "created_at DESC"
	}
	return filter
}

func buildPagination(filter repository.SubmissionFilter, total int64) dto.PaginationMeta {
	return dto.PaginationMeta{
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalItems: total,
		TotalPages: calculateTotalPages(total, filter.PageSize),
	}
}

func toAdminContactItem(message models.ContactMessage) dto.AdminContactItem {
	return dto.AdminContactItem{
		ID:                message.ID,
		ReferenceID:       message.ReferenceID,
		Name:              message.Name,
		Email:             maskEmailAddress(message.Email),
		Subject:           message.Subject,
		Message:           message.Message,
		Status:            message.Status,
		NotificationError: message.NotificationError,
		CreatedAt:         message.CreatedAt,
	}
}

func toAdminLeadItem(lead models.LeadInquiry) dto.AdminLeadItem {
	return dto.AdminLeadItem{
		ID:                lead.ID,
		ReferenceID:       lead.ReferenceID,
		Name:              lead.Name,
		Email:             lead.Email,
		Mobile:            lead.Mobile,
		UserType:          lead.UserType,
		Source:            lead.Source,
		Status:            lead.Status,
		NotificationError: lead.NotificationError,
		CreatedAt:         lead.CreatedAt,
	}
}

func toKindStats(counts repository.StatusCounts) dto.KindStats {
	return dto.KindStats{
		Total:        counts.Total,
		Notified:     counts.Notified,
		NotifyFailed: counts.NotifyFailed,
	}
}
