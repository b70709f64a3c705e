package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/egeorganic/site-api/internal/dto"
	"github.com/egeorganic/site-api/internal/service"
	"github.com/egeorganic/site-api/internal/utils"
)

// NewsletterHandler handles newsletter signups.
type NewsletterHandler struct {
	service service.NewsletterService
	logger  zerolog.Logger
}

// NewNewsletterHandler constructs a newsletter handler.
func NewNewsletterHandler(service service.NewsletterService, logger zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		logger:  logger.With().Str("component", "newsletter_handler").Logger(),
	}
}

// Register wires newsletter routes.
func (h *NewsletterHandler) Register(router fiber.Router) {
	router.Post("", h.subscribe)
}

func (h *NewsletterHandler) subscribe(c *fiber.Ctx) error {
	var payload dto.NewsletterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendErrorCode(c, fiber.StatusBadRequest, utils.CodeInvalidArgument, "invalid payload")
	}

	response, err := h.service.Subscribe(c.Context(), payload)
	if err != nil {
		if invalid, ok := isInvalidInput(err); ok {
			return sendInvalidInput(c, invalid)
		}
		h.logger.Error().Err(err).Msg("failed to process newsletter signup")
		return utils.SendErrorCode(c, fiber.StatusInternalServerError, utils.CodeInternal, "Failed to process subscription")
	}

	message := "Thank you for subscribing to our newsletter!"
	if response.AlreadySubscribed {
		message = "You are already subscribed to our newsletter!"
	}

	return utils.SendSuccess(c, message, response)
}
