package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"menuapi/internal/service"
)

// menuRequest is the JSON body of menu create/update calls.
type menuRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// menuWriteResponse is the create/update payload: no derived counts,
// matching the read/write asymmetry of the API.
type menuWriteResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// pageParams parses the skip/limit pagination query parameters.
// On failure the error response has already been written and ok is false.
func pageParams(c *fiber.Ctx) (limit, skip int, ok bool) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		return 0, 0, false
	}
	skip, err = strconv.Atoi(c.Query("skip", "0"))
	if err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_SKIP", "invalid skip")
		return 0, 0, false
	}
	return limit, skip, true
}

// pathID validates a UUID path parameter.
// On failure the error response has already been written and ok is false.
func pathID(c *fiber.Ctx, name string) (string, bool) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		return "", false
	}
	return id, true
}

// CreateMenu handles POST /api/v1/menus.
func CreateMenu(svc service.MenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body menuRequest
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		m, err := svc.Create(c.UserContext(), body.Title, body.Description)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(menuWriteResponse{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
		})
	}
}

// ListMenus handles GET /api/v1/menus.
func ListMenus(svc service.MenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, skip, ok := pageParams(c)
		if !ok {
			return nil
		}
		menus, err := svc.List(c.UserContext(), limit, skip)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(menus)
	}
}

// GetMenu handles GET /api/v1/menus/:menu_id.
func GetMenu(svc service.MenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "menu_id")
		if !ok {
			return nil
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(m)
	}
}

// UpdateMenu handles PATCH /api/v1/menus/:menu_id.
func UpdateMenu(svc service.MenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "menu_id")
		if !ok {
			return nil
		}
		var body menuRequest
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		m, err := svc.Update(c.UserContext(), id, body.Title, body.Description)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(menuWriteResponse{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
		})
	}
}

// DeleteMenu handles DELETE /api/v1/menus/:menu_id.
func DeleteMenu(svc service.MenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "menu_id")
		if !ok {
			return nil
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{})
	}
}
