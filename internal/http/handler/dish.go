package handler

import (
	"github.com/gofiber/fiber/v2"

	"menuapi/internal/service"
)

// dishRequest is the JSON body of dish create/update calls. Price is a
// decimal string ("12.50").
type dishRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type dishWriteResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// CreateDish handles POST /api/v1/menus/:menu_id/submenus/:submenu_id/dishes.
func CreateDish(svc service.DishService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		menuID, ok := pathID(c, "menu_id")
		if !ok {
			return nil
		}
		submenuID, ok := pathID(c, "submenu_id")
		if !ok {
			return nil
		}
		var body dishRequest
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		d, err := svc.Create(c.UserContext(), menuID, submenuID, body.Title, body.Description, body.Price)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dishWriteResponse{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Price:       d.Price,
		})
	}
}

// ListDishes handles GET /api/v1/menus/:menu_id/submenus/:submenu_id/dishes.
func ListDishes(svc service.DishService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		submenuID, ok := pathID(c, "submenu_id")
		if !ok {
			return nil
		}
		limit, skip, ok := pageParams(c)
		if !ok {
			return nil
		}
		dishes, err := svc.List(c.UserContext(), submenuID, limit, skip)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dishes)
	}
}

// GetDish handles GET .../dishes/:dish_id.
func GetDish(svc service.DishService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		submenuID, ok := pathID(c, "submenu_id")
		if !ok {
			return nil
		}
		id, ok := pathID(c, "dish_id")
		if !ok {
			return nil
		}
		d, err := svc.Get(c.UserContext(), submenuID, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// UpdateDish handles PATCH .../dishes/:dish_id.
func UpdateDish(svc service.DishService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		submenuID, ok := pathID(c, "submenu_id")
		if !ok {
			return nil
		}
		id, ok := pathID(c, "dish_id")
		if !ok {
			return nil
		}
		var body dishRequest
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		d, err := svc.Update(c.UserContext(), submenuID, id, body.Title, body.Description, body.Price)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(dishWriteResponse{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Price:       d.Price,
		})
	}
}

// DeleteDish handles DELETE .../dishes/:dish_id.
func DeleteDish(svc service.DishService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		submenuID, ok := pathID(c, "submenu_id")
		if !ok {
			return nil
		}
		id, ok := pathID(c, "dish_id")
		if !ok {
			return nil
		}
		if err := svc.Delete(c.UserContext(), submenuID, id); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{})
	}
}

// UploadDishImage handles POST .../dishes/:dish_id/image (multipart/form-data, field name: file).
func UploadDishImage(svc service.DishService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		submenuID, ok := pathID(c, "submenu_id")
		if !ok {
			return nil
		}
		id, ok := pathID(c, "dish_id")
		if !ok {
			return nil
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		d, err := svc.AttachImage(c.UserContext(), submenuID, id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(dishWriteResponse{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Price:       d.Price,
		})
	}
}

// GetDishImageURL handles GET .../dishes/:dish_id/image and returns a
// presigned download URL instead of proxying the bytes.
func GetDishImageURL(svc service.DishService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		submenuID, ok := pathID(c, "submenu_id")
		if !ok {
			return nil
		}
		id, ok := pathID(c, "dish_id")
		if !ok {
			return nil
		}
		url, err := svc.ImageURL(c.UserContext(), submenuID, id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}
