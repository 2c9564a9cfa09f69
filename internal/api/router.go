package api

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the account and image routes plus static serving
// of the upload directory.
func SetupRoutes(app *fiber.App, accountHandler *AccountHandler, imageHandler *ImageHandler, uploadDir string) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "account-service"})
	})

	app.Get("/user", accountHandler.List)
	app.Get("/user/:id", accountHandler.Get)
	app.Post("/add_user", accountHandler.Register)
	app.Post("/login", accountHandler.Login)
	app.Put("/user/:id", accountHandler.Update)

	app.Post("/upload_image/:userId", imageHandler.Upload)
	app.Static("/uploads", uploadDir)
}
