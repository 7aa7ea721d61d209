package courseController

import (
	"edtech/database"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

// loadCourseContent returns the refreshed course with its full content tree
func loadCourseContent(courseID uint) (*models.Course, error) {
	var course models.Course
	err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", courseID, false).
		Preload("Sections.SubSections").
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func CreateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSection").(*struct {
		SectionName string `json:"sectionName"`
		CourseID    uint   `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	newSection := models.Section{
		SectionName: reqData.SectionName,
		CourseID:    course.ID,
	}
	if err := db.Create(&newSection).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to create section. Please try again later.", nil)
	}

	updatedCourse, err := loadCourseContent(course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully.", updatedCourse)
}

func UpdateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSectionUpdate").(*struct {
		SectionID   uint   `json:"sectionId"`
		SectionName string `json:"sectionName"`
		CourseID    uint   `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ? AND course_id = ?", reqData.SectionID, reqData.CourseID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	section.SectionName = reqData.SectionName
	if err := db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Unable to update section. Please try again later.", nil)
	}

	updatedCourse, err := loadCourseContent(reqData.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully.", updatedCourse)
}

func DeleteSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSectionDelete").(*struct {
		SectionID uint `json:"sectionId"`
		CourseID  uint `json:"courseId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ? AND course_id = ?", reqData.SectionID, reqData.CourseID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	// Section delete cascades to its subsections
	tx := db.Begin()
	if err := tx.Where("section_id = ?", section.ID).Delete(&models.SubSection{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}
	if err := tx.Delete(&section).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}
	tx.Commit()

	updatedCourse, err := loadCourseContent(reqData.CourseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted.", updatedCourse)
}
