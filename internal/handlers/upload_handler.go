package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blogfeed/dto"
	"blogfeed/internal/storage"
)

// UploadImage stores a post image from the multipart "image" field. An
// optional "oldPath" form value names a replaced image to delete.
func UploadImage(images *storage.Images) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return c.Status(fiber.StatusUnprocessableEntity).
				JSON(dto.ErrorResponse{Message: "No image provided!"})
		}

		if old := c.FormValue("oldPath"); old != "" {
			if err := images.Remove(old); err != nil {
				return c.Status(fiber.StatusInternalServerError).
					JSON(dto.ErrorResponse{Message: "Could not replace image."})
			}
		}

		path, err := images.Save(file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Message: "Storing image failed."})
		}

		return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
			Message:  "File stored.",
			FilePath: path,
		})
	}
}
