package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/egeorganic/site-api/internal/dto"
	"github.com/egeorganic/site-api/internal/service"
	"github.com/egeorganic/site-api/internal/utils"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler constructs a contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("component", "contact_handler").Logger(),
	}
}

// Register wires contact routes.
func (h *ContactHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *ContactHandler) submit(c *fiber.Ctx) error {
	var payload dto.ContactRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendErrorCode(c, fiber.StatusBadRequest, utils.CodeInvalidArgument, "invalid payload")
	}

	response, err := h.service.Submit(c.Context(), payload)
	if err != nil {
		if invalid, ok := isInvalidInput(err); ok {
			return sendInvalidInput(c, invalid)
		}
		switch {
		case errors.Is(err, service.ErrContactSpam):
			return utils.SendErrorCode(c, fiber.StatusBadRequest, utils.CodeInvalidArgument, "invalid payload")
		case errors.Is(err, service.ErrNotifyFailed):
			h.logger.Error().Err(err).Msg("contact notification could not be delivered")
			return utils.SendErrorCode(c, fiber.StatusInternalServerError, utils.CodeInternal, "Failed to send your message. Please try again later.")
		default:
			h.logger.Error().Err(err).Msg("failed to process contact submission")
			return utils.SendErrorCode(c, fiber.StatusInternalServerError, utils.CodeInternal, "Failed to process contact form")
		}
	}

	return utils.SendSuccess(c, "Your message has been sent successfully!", response)
}
