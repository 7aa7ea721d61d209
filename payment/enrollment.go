package payment

import (
	"edtech/models"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnrollmentResult reports the outcome for a single course in an
// enrollment batch, in the order the caller supplied the courses.
type EnrollmentResult struct {
	CourseID uint  `json:"course_id"`
	Enrolled bool  `json:"enrolled"`
	Err      error `json:"-"`
}

// Enroller records paid enrollments: the enrollment row, a fresh progress
// record, and a best-effort email to the student.
type Enroller struct {
	db     *gorm.DB
	notify Notifier
}

func NewEnroller(db *gorm.DB, notify Notifier) *Enroller {
	return &Enroller{db: db, notify: notify}
}

// Enroll adds the user to a single course. The enrollment insert is
// conditional on the (user, course) unique index, so a concurrent or
// replayed confirmation cannot enroll twice or leave a duplicate progress
// record.
func (e *Enroller) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	var course models.Course
	if err := e.db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   "ENROLLED",
	}
	progress := models.CourseProgress{
		CourseID: courseID,
		UserID:   userID,
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollment)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyEnrolled
		}
		// Exactly one progress record per enrollment, starting empty
		return tx.Create(&progress).Error
	})
	if err != nil {
		return nil, err
	}

	// Email failures are logged, never surfaced to the payer
	go func() {
		var user models.User
		if err := e.db.Select("first_name, last_name, email").First(&user, userID).Error; err != nil {
			log.Printf("Enrollment email skipped, user %d not found: %v", userID, err)
			return
		}
		if err := e.notify.EnrollmentConfirmed(user.Email, user.FirstName+" "+user.LastName, course.CourseName); err != nil {
			log.Printf("Error sending enrollment email to %s: %v", user.Email, err)
		}
	}()

	return &enrollment, nil
}

// EnrollAll enrolls the user in each course sequentially, in caller order,
// and short-circuits on the first failure. The returned results list what
// succeeded before the failure so callers can reconcile partial state.
func (e *Enroller) EnrollAll(userID uint, courseIDs []uint) ([]EnrollmentResult, error) {
	results := make([]EnrollmentResult, 0, len(courseIDs))

	for _, courseID := range courseIDs {
		_, err := e.Enroll(userID, courseID)
		results = append(results, EnrollmentResult{
			CourseID: courseID,
			Enrolled: err == nil,
			Err:      err,
		})
		if err != nil {
			return results, err
		}
	}

	return results, nil
}
