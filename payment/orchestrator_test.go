package payment_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"edtech/models"
	"edtech/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeProvider struct {
	calls        int
	lastAmount   int64
	lastCurrency string
	err          error
}

func (f *fakeProvider) CreateOrder(amount int64, currency, receipt string, notes map[string]string) (*payment.Order, error) {
	f.calls++
	f.lastAmount = amount
	f.lastCurrency = currency
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Order{ID: "order_test123", Amount: amount, Currency: currency, Receipt: receipt, Status: "created"}, nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeNotifier) EnrollmentConfirmed(email, userName, courseName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, courseName)
	return nil
}

var dbSeq int

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:payment_test_%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Course{},
		&models.Enrollment{},
		&models.CourseProgress{},
		&models.Section{},
		&models.SubSection{},
		&models.Tag{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		FirstName:   "Asha",
		LastName:    "Verma",
		Email:       "asha@example.com",
		Password:    "hashed",
		AccountType: models.AccountTypeStudent,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, name string, price float64) models.Course {
	t.Helper()
	course := models.Course{
		CourseName:   name,
		InstructorID: 99,
		Price:        price,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func newService(db *gorm.DB, provider *fakeProvider) *payment.Service {
	enroller := payment.NewEnroller(db, &fakeNotifier{})
	return payment.NewService(
		db,
		provider,
		payment.NewVerifier("key-secret"),
		payment.NewVerifier("webhook-secret"),
		enroller,
	)
}

func TestInitiateTotalsCoursePrices(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	a := seedCourse(t, db, "Go Basics", 10)
	b := seedCourse(t, db, "Advanced Go", 20)

	provider := &fakeProvider{}
	svc := newService(db, provider)

	order, err := svc.Initiate(user.ID, []uint{a.ID, b.ID})
	require.NoError(t, err)

	// 10 + 20 rupees in paise
	assert.Equal(t, int64(3000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "order_test123", order.OrderID)
	assert.Len(t, order.Courses, 2)
	assert.Equal(t, 1, provider.calls)

	// No state changes before confirmation
	var enrollments int64
	db.Model(&models.Enrollment{}).Count(&enrollments)
	assert.Zero(t, enrollments)
}

func TestInitiateAllowsFreeCourseInPaidBundle(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	free := seedCourse(t, db, "Freebie", 0)
	paid := seedCourse(t, db, "Go Basics", 10)

	provider := &fakeProvider{}
	svc := newService(db, provider)

	// A zero-price course rides along as long as the set totals above zero
	order, err := svc.Initiate(user.ID, []uint{free.ID, paid.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), order.Amount)
	assert.Len(t, order.Courses, 2)
	assert.Equal(t, 1, provider.calls)
}

func TestInitiateRejectsWithoutCallingProvider(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, "Go Basics", 10)
	free := seedCourse(t, db, "Freebie", 0)

	provider := &fakeProvider{}
	svc := newService(db, provider)

	_, err := svc.Initiate(user.ID, nil)
	assert.ErrorIs(t, err, payment.ErrNoCourses)

	_, err = svc.Initiate(user.ID, []uint{course.ID, 9999})
	assert.ErrorIs(t, err, payment.ErrCourseNotFound)

	_, err = svc.Initiate(user.ID, []uint{free.ID})
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)

	require.NoError(t, db.Create(&models.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ENROLLED"}).Error)
	_, err = svc.Initiate(user.ID, []uint{course.ID})
	assert.ErrorIs(t, err, payment.ErrAlreadyEnrolled)

	assert.Zero(t, provider.calls)
}

func TestInitiateWrapsProviderFailure(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, "Go Basics", 10)

	provider := &fakeProvider{err: errors.New("gateway timeout")}
	svc := newService(db, provider)

	_, err := svc.Initiate(user.ID, []uint{course.ID})
	assert.ErrorIs(t, err, payment.ErrProvider)
}

func TestConfirmEnrollsOnValidSignature(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	a := seedCourse(t, db, "Go Basics", 10)
	b := seedCourse(t, db, "Advanced Go", 20)

	svc := newService(db, &fakeProvider{})

	signature := sign("key-secret", "order_test123|pay_test456")
	results, err := svc.Confirm(user.ID, []uint{a.ID, b.ID}, "order_test123", "pay_test456", signature)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, a.ID, results[0].CourseID)
	assert.Equal(t, b.ID, results[1].CourseID)
	assert.True(t, results[0].Enrolled)
	assert.True(t, results[1].Enrolled)

	var enrollments int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollments)
	assert.Equal(t, int64(2), enrollments)

	// Exactly one progress record per course, starting empty
	for _, courseID := range []uint{a.ID, b.ID} {
		var progress []models.CourseProgress
		db.Where("user_id = ? AND course_id = ?", user.ID, courseID).Find(&progress)
		require.Len(t, progress, 1)

		var completed int64
		db.Table("course_progress_completed_videos").Where("course_progress_id = ?", progress[0].ID).Count(&completed)
		assert.Zero(t, completed)
	}
}

func TestConfirmRejectsBadSignature(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, "Go Basics", 10)

	svc := newService(db, &fakeProvider{})

	_, err := svc.Confirm(user.ID, []uint{course.ID}, "order_test123", "pay_test456", sign("wrong-secret", "order_test123|pay_test456"))
	assert.ErrorIs(t, err, payment.ErrSignatureMismatch)

	var enrollments, progresses int64
	db.Model(&models.Enrollment{}).Count(&enrollments)
	db.Model(&models.CourseProgress{}).Count(&progresses)
	assert.Zero(t, enrollments)
	assert.Zero(t, progresses)
}

func TestConfirmReplayDoesNotDoubleEnroll(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	course := seedCourse(t, db, "Go Basics", 10)

	svc := newService(db, &fakeProvider{})
	signature := sign("key-secret", "order_test123|pay_test456")

	_, err := svc.Confirm(user.ID, []uint{course.ID}, "order_test123", "pay_test456", signature)
	require.NoError(t, err)

	// Replaying the same confirmation hits the conditional insert
	results, err := svc.Confirm(user.ID, []uint{course.ID}, "order_test123", "pay_test456", signature)
	assert.ErrorIs(t, err, payment.ErrAlreadyEnrolled)
	require.Len(t, results, 1)
	assert.False(t, results[0].Enrolled)

	var enrollments, progresses int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollments)
	db.Model(&models.CourseProgress{}).Where("user_id = ?", user.ID).Count(&progresses)
	assert.Equal(t, int64(1), enrollments)
	assert.Equal(t, int64(1), progresses)
}

func TestEnrollAllShortCircuitsInCallerOrder(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	a := seedCourse(t, db, "Go Basics", 10)
	b := seedCourse(t, db, "Advanced Go", 20)

	enroller := payment.NewEnroller(db, &fakeNotifier{})

	// The missing course sits between two valid ones
	results, err := enroller.EnrollAll(user.ID, []uint{a.ID, 9999, b.ID})
	assert.ErrorIs(t, err, payment.ErrCourseNotFound)
	require.Len(t, results, 2)

	assert.Equal(t, a.ID, results[0].CourseID)
	assert.True(t, results[0].Enrolled)
	assert.Equal(t, uint(9999), results[1].CourseID)
	assert.False(t, results[1].Enrolled)

	// The course after the failure was never reached
	var enrolled int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, b.ID).Count(&enrolled)
	assert.Zero(t, enrolled)
}
