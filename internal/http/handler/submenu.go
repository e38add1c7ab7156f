package handler

import (
	"github.com/gofiber/fiber/v2"

	"menuapi/internal/service"
)

// subMenuRequest is the JSON body of submenu create/update calls.
type subMenuRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type subMenuWriteResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CreateSubMenu handles POST /api/v1/menus/:menu_id/submenus.
func CreateSubMenu(svc service.SubMenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, ok := pathID(c, "menu_id")
		if !ok {
			return nil
		}
		var body subMenuRequest
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sm, err := svc.Create(c.UserContext(), menuID, body.Title, body.Description)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(subMenuWriteResponse{
			ID:          sm.ID,
			Title:       sm.Title,
			Description: sm.Description,
		})
	}
}

// ListSubMenus handles GET /api/v1/menus/:menu_id/submenus.
func ListSubMenus(svc service.SubMenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, ok := pathID(c, "menu_id")
		if !ok {
			return nil
		}
		limit, skip, ok := pageParams(c)
		if !ok {
			return nil
		}
		submenus, err := svc.List(c.UserContext(), menuID, limit, skip)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(submenus)
	}
}

// GetSubMenu handles GET /api/v1/menus/:menu_id/submenus/:submenu_id.
func GetSubMenu(svc service.SubMenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, ok := pathID(c, "menu_id")
		if !ok {
			return nil
		}
		id, ok := pathID(c, "submenu_id")
		if !ok {
			return nil
		}
		sm, err := svc.Get(c.UserContext(), menuID, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sm)
	}
}

// UpdateSubMenu handles PATCH /api/v1/menus/:menu_id/submenus/:submenu_id.
func UpdateSubMenu(svc service.SubMenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, ok := pathID(c, "menu_id")
		if !ok {
			return nil
		}
		id, ok := pathID(c, "submenu_id")
		if !ok {
			return nil
		}
		var body subMenuRequest
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sm, err := svc.Update(c.UserContext(), menuID, id, body.Title, body.Description)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(subMenuWriteResponse{
			ID:          sm.ID,
			Title:       sm.Title,
			Description: sm.Description,
		})
	}
}

// DeleteSubMenu handles DELETE /api/v1/menus/:menu_id/submenus/:submenu_id.
func DeleteSubMenu(svc service.SubMenuService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, ok := pathID(c, "menu_id")
		if !ok {
			return nil
		}
		id, ok := pathID(c, "submenu_id")
		if !ok {
			return nil
		}
		if err := svc.Delete(c.UserContext(), menuID, id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{})
	}
}
