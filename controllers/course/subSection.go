package courseController

import (
	"edtech/database"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

// loadSection returns the refreshed section with its subsections
func loadSection(sectionID uint) (*models.Section, error) {
	var section models.Section
	err := database.Database.Db.
		Preload("SubSections").
		First(&section, sectionID).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func CreateSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubSection").(*struct {
		SectionID    uint   `json:"sectionId"`
		Title        string `json:"title"`
		TimeDuration string `json:"timeDuration"`
		Description  string `json:"description"`
		VideoURL     string `json:"videoUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.First(&section, reqData.SectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	subSection := models.SubSection{
		SectionID:    section.ID,
		Title:        reqData.Title,
		TimeDuration: reqData.TimeDuration,
		Description:  reqData.Description,
		VideoURL:     reqData.VideoURL,
	}
	if err := db.Create(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to create subsection. Please try again later.", nil)
	}

	updatedSection, err := loadSection(section.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subsection created successfully.", updatedSection)
}

func UpdateSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubSectionUpdate").(*struct {
		SectionID    uint    `json:"sectionId"`
		SubSectionID uint    `json:"subSectionId"`
		Title        *string `json:"title"`
		TimeDuration *string `json:"timeDuration"`
		Description  *string `json:"description"`
		VideoURL     *string `json:"videoUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subSection models.SubSection
	if err := db.Where("id = ? AND section_id = ?", reqData.SubSectionID, reqData.SectionID).First(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subsection not found!", nil)
	}

	if reqData.Title != nil {
		subSection.Title = *reqData.Title
	}
	if reqData.TimeDuration != nil {
		subSection.TimeDuration = *reqData.TimeDuration
	}
	if reqData.Description != nil {
		subSection.Description = *reqData.Description
	}
	if reqData.VideoURL != nil {
		subSection.VideoURL = *reqData.VideoURL
	}

	if err := db.Save(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to update subsection. Please try again later.", nil)
	}

	updatedSection, err := loadSection(reqData.SectionID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subsection updated successfully.", updatedSection)
}

func DeleteSubSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubSectionDelete").(*struct {
		SectionID    uint `json:"sectionId"`
		SubSectionID uint `json:"subSectionId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var subSection models.SubSection
	if err := db.Where("id = ? AND section_id = ?", reqData.SubSectionID, reqData.SectionID).First(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subsection not found!", nil)
	}

	if err := db.Delete(&subSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to delete subsection. Please try again later.", nil)
	}

	updatedSection, err := loadSection(reqData.SectionID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subsection deleted successfully.", updatedSection)
}
