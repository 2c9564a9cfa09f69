package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Phutanet200102/api-mongoDB/internal/service"
)

type ImageHandler struct {
	imageService service.ImageService
}

func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	userID, err := bson.ObjectIDFromHex(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	src, err := file.Open()
	if err != nil {
		slog.Error("Failed to open uploaded file", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error uploading image"})
	}
	defer src.Close()

	imagePath, err := h.imageService.Attach(
		c.Context(),
		userID,
		c.FormValue("name"),
		c.FormValue("description"),
		file.Filename,
		src,
	)
	if err != nil {
		slog.Error("Failed to attach image", "userId", userID.Hex(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error uploading image"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Image uploaded successfully",
		"imagePath": imagePath,
	})
}
