package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/egeorganic/site-api/internal/service"
	"github.com/egeorganic/site-api/internal/utils"
)

// AdminSubmissionHandler exposes operator read endpoints over stored submissions.
type AdminSubmissionHandler struct {
	service service.AdminSubmissionService
	logger  zerolog.Logger
}

// NewAdminSubmissionHandler constructs the handler.
func NewAdminSubmissionHandler(service service.AdminSubmissionService, logger zerolog.Logger) *AdminSubmissionHandler {
	return &AdminSubmissionHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_submission_handler").Logger(),
	}
}

// Register attaches routes.
func (h *AdminSubmissionHandler) Register(router fiber.Router) {
	router.Get("/contacts", h.listContacts)
	router.Get("/contacts/:id", h.getContact)
	router.Get("/newsletter", h.listNewsletter)
	router.Get("/leads", h.listLeads)
	router.Get("/leads/:id", h.getLead)
	router.Get("/stats", h.stats)
}

func (h *AdminSubmissionHandler) listContacts(c *fiber.Ctx) error {
	req, err := adminListRequest(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.service.ListContacts(c.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list contact messages")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list contact messages")
	}

	return utils.SendSuccess(c, "contact messages retrieved", result)
}

func (h *AdminSubmissionHandler) getContact(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	item, err := h.service.GetContact(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "contact message not found")
		}
		h.logger.Error().Err(err).Uint("contact_id", id).Msg("failed to fetch contact message")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch contact message")
	}

	return utils.SendSuccess(c, "contact message retrieved", item)
}

func (h *AdminSubmissionHandler) listNewsletter(c *fiber.Ctx) error {
	req, err := adminListRequest(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.service.ListNewsletter(c.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list newsletter subscriptions")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list newsletter subscriptions")
	}

	return utils.SendSuccess(c, "newsletter subscriptions retrieved", result)
}

func (h *AdminSubmissionHandler) listLeads(c *fiber.Ctx) error {
	req, err := adminListRequest(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.service.ListLeads(c.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list lead inquiries")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list lead inquiries")
	}

	return utils.SendSuccess(c, "lead inquiries retrieved", result)
}

func (h *AdminSubmissionHandler) getLead(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	item, err := h.service.GetLead(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "lead inquiry not found")
		}
		h.logger.Error().Err(err).Uint("lead_id", id).Msg("failed to fetch lead inquiry")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch lead inquiry")
	}

	return utils.SendSuccess(c, "lead inquiry retrieved", item)
}

func (h *AdminSubmissionHandler) stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to compute submission stats")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to compute submission stats")
	}

	return utils.SendSuccess(c, "submission stats retrieved", stats)
}
