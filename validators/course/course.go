package courseValidator

import (
	"edtech/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseName        string  `json:"courseName"`
			CourseDescription string  `json:"courseDescription"`
			WhatYouWillLearn  string  `json:"whatYouWillLearn"`
			Price             float64 `json:"price"`
			TagID             uint    `json:"tagId"`
			Thumbnail         string  `json:"thumbnail"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CourseName) == "" {
			errors["courseName"] = "Course name is required!"
		}
		if strings.TrimSpace(reqData.CourseDescription) == "" {
			errors["courseDescription"] = "Course description is required!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.TagID == 0 {
			errors["tagId"] = "Tag is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// GetCourseDetail validator middleware for the :id route param
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := c.ParamsInt("id")
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateSection validator middleware
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionName string `json:"sectionName"`
			CourseID    uint   `json:"courseId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.SectionName) == "" {
			errors["sectionName"] = "Section name is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// UpdateSection validator middleware
func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID   uint   `json:"sectionId"`
			SectionName string `json:"sectionName"`
			CourseID    uint   `json:"courseId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section id is required!"
		}
		if strings.TrimSpace(reqData.SectionName) == "" {
			errors["sectionName"] = "Section name is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSectionUpdate", reqData)
		return c.Next()
	}
}

// DeleteSection validator middleware
func DeleteSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID uint `json:"sectionId"`
			CourseID  uint `json:"courseId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section id is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSectionDelete", reqData)
		return c.Next()
	}
}

// CreateSubSection validator middleware
func CreateSubSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID    uint   `json:"sectionId"`
			Title        string `json:"title"`
			TimeDuration string `json:"timeDuration"`
			Description  string `json:"description"`
			VideoURL     string `json:"videoUrl"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section id is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.TimeDuration) == "" {
			errors["timeDuration"] = "Time duration is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.VideoURL) == "" {
			errors["videoUrl"] = "Video URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubSection", reqData)
		return c.Next()
	}
}

// UpdateSubSection validator middleware
func UpdateSubSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID    uint    `json:"sectionId"`
			SubSectionID uint    `json:"subSectionId"`
			Title        *string `json:"title"`
			TimeDuration *string `json:"timeDuration"`
			Description  *string `json:"description"`
			VideoURL     *string `json:"videoUrl"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section id is required!"
		}
		if reqData.SubSectionID == 0 {
			errors["subSectionId"] = "Subsection id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubSectionUpdate", reqData)
		return c.Next()
	}
}

// DeleteSubSection validator middleware
func DeleteSubSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SectionID    uint `json:"sectionId"`
			SubSectionID uint `json:"subSectionId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section id is required!"
		}
		if reqData.SubSectionID == 0 {
			errors["subSectionId"] = "Subsection id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubSectionDelete", reqData)
		return c.Next()
	}
}

// CreateTag validator middleware
func CreateTag() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Tag name is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Tag description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTag", reqData)
		return c.Next()
	}
}
