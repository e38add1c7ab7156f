package handler

import (
	"github.com/gofiber/fiber/v2"

	"menuapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Both entry
// points call it with their own repository backends behind the services, so
// the route table is identical across the sync and async binaries.
func RegisterRoutes(app *fiber.App, db Pinger, menuSvc service.MenuService, subSvc service.SubMenuService, dishSvc service.DishService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api/v1")

	menus := api.Group("/menus")
	menus.Post("/", CreateMenu(menuSvc))
	menus.Get("/", ListMenus(menuSvc))
	menus.Get("/:menu_id", GetMenu(menuSvc))
	menus.Patch("/:menu_id", UpdateMenu(menuSvc))
	menus.Delete("/:menu_id", DeleteMenu(menuSvc))

	submenus := menus.Group("/:menu_id/submenus")
	submenus.Post("/", CreateSubMenu(subSvc))
	submenus.Get("/", ListSubMenus(subSvc))
	submenus.Get("/:submenu_id", GetSubMenu(subSvc))
	submenus.Patch("/:submenu_id", UpdateSubMenu(subSvc))
	submenus.Delete("/:submenu_id", DeleteSubMenu(subSvc))

	dishes := submenus.Group("/:submenu_id/dishes")
	dishes.Post("/", CreateDish(dishSvc))
	dishes.Get("/", ListDishes(dishSvc))
	dishes.Get("/:dish_id", GetDish(dishSvc))
	dishes.Patch("/:dish_id", UpdateDish(dishSvc))
	dishes.Delete("/:dish_id", DeleteDish(dishSvc))
	dishes.Post("/:dish_id/image", UploadDishImage(dishSvc))
	dishes.Get("/:dish_id/image", GetDishImageURL(dishSvc))
}
