package courseController

import (
	"edtech/database"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

func CreateTag(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTag").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("name = ?", reqData.Name).First(&models.Tag{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Tag already exists!", nil)
	}

	tag := models.Tag{
		Name:        reqData.Name,
		Description: reqData.Description,
	}
	if err := db.Create(&tag).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create tag!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Tag created successfully.", tag)
}

func GetAllTags(c *fiber.Ctx) error {
	var tags []models.Tag
	if err := database.Database.Db.Find(&tags).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tags!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All tags fetched successfully.", tags)
}
