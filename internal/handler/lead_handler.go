package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/egeorganic/site-api/internal/dto"
	"github.com/egeorganic/site-api/internal/service"
	"github.com/egeorganic/site-api/internal/utils"
)

// LeadHandler handles learn-more lead capture submissions.
type LeadHandler struct {
	service service.LeadService
	logger  zerolog.Logger
}

// NewLeadHandler constructs a lead handler.
func NewLeadHandler(service service.LeadService, logger zerolog.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		logger:  logger.With().Str("component", "lead_handler").Logger(),
	}
}

// Register wires lead capture routes.
func (h *LeadHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *LeadHandler) submit(c *fiber.Ctx) error {
	var payload dto.LeadRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendErrorCode(c, fiber.StatusBadRequest, utils.CodeInvalidArgument, "invalid payload")
	}

	response, err := h.service.Submit(c.Context(), payload)
	if err != nil {
		if invalid, ok := isInvalidInput(err); ok {
			return sendInvalidInput(c, invalid)
		}
		h.logger.Error().Err(err).Msg("failed to process lead inquiry")
		return utils.SendErrorCode(c, fiber.StatusInternalServerError, utils.CodeInternal, "Failed to process form submission")
	}

	return utils.SendSuccess(c, "Thank you for your interest! We will contact you soon.", response)
}
