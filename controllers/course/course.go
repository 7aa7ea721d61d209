package courseController

import (
	"edtech/database"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		CourseName        string  `json:"courseName"`
		CourseDescription string  `json:"courseDescription"`
		WhatYouWillLearn  string  `json:"whatYouWillLearn"`
		Price             float64 `json:"price"`
		TagID             uint    `json:"tagId"`
		Thumbnail         string  `json:"thumbnail"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// The instructor must be an approved account
	var instructor models.User
	if err := db.Where("id = ? AND account_type = ? AND approved = ? AND is_deleted = ?",
		userId, models.AccountTypeInstructor, true, false).First(&instructor).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Instructor account not found or not approved!", nil)
	}

	var tag models.Tag
	if err := db.First(&tag, reqData.TagID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tag not found!", nil)
	}

	newCourse := models.Course{
		CourseName:        reqData.CourseName,
		CourseDescription: reqData.CourseDescription,
		InstructorID:      instructor.ID,
		WhatYouWillLearn:  reqData.WhatYouWillLearn,
		Price:             reqData.Price,
		TagID:             tag.ID,
		Thumbnail:         reqData.Thumbnail,
	}

	if err := db.Create(&newCourse).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", newCourse)
}

func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Preload("Tag").
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All courses fetched successfully.", courses)
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).
		Preload("Tag").
		Preload("Sections.SubSections").
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrolledCount int64
	db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrolledCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully.", fiber.Map{
		"course":           course,
		"studentsEnrolled": enrolledCount,
	})
}
