package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/egeorganic/site-api/internal/dto"
	"github.com/egeorganic/site-api/internal/service"
	"github.com/egeorganic/site-api/internal/utils"
)

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(parsed), nil
}

func adminListRequest(c *fiber.Ctx) (dto.AdminListRequest, error) {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return dto.AdminListRequest{}, fmt.Errorf("invalid page")
	}
	pageSize, err := parseQueryInt(c, "pageSize")
	if err != nil {
		return dto.AdminListRequest{}, fmt.Errorf("invalid page size")
	}

	return dto.AdminListRequest{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}, nil
}

// sendInvalidInput maps a validation rejection onto the wire contract: HTTP
// 400 with the invalid-argument code and the service's actionable message.
func sendInvalidInput(c *fiber.Ctx, err *service.InvalidInputError) error {
	return utils.SendErrorCode(c, fiber.StatusBadRequest, utils.CodeInvalidArgument, err.Message)
}

func isInvalidInput(err error) (*service.InvalidInputError, bool) {
	var invalid *service.InvalidInputError
	if errors.As(err, &invalid) {
		return invalid, true
	}
	return nil, false
}
