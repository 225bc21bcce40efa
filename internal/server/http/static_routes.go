package httpserver

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterStaticRoutes 指定了目录才挂到 /，/web 跳转到 /
func RegisterStaticRoutes(app *fiber.App, dir string) {
	if app == nil || dir == "" {
		return
	}
	app.Get("/web", func(c *fiber.Ctx) error {
		return c.Redirect("/", fiber.StatusFound)
	})
	app.Static("/", dir, fiber.Static{
		Index: "index.html",
	})
}
