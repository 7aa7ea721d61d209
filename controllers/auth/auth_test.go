package authController_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"edtech/config"
	authController "edtech/controllers/auth"
	"edtech/database"
	"edtech/models"
	authValidator "edtech/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int

func setupAuthTest(t *testing.T) *gorm.DB {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:auth_test_%d?mode=memory&cache=shared", dbSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}, &models.OTP{}))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}
	return db
}

func newSignupApp() *fiber.App {
	app := fiber.New()
	app.Post("/signup", authValidator.Signup(), authController.Signup)
	return app
}

func postSignup(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope.Message
}

func seedOTP(t *testing.T, db *gorm.DB, email, code string, createdAt time.Time, expiresAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.OTP{
		Model:     gorm.Model{CreatedAt: createdAt},
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
	}).Error)
}

func signupBody(email, accountType, otp string) string {
	return fmt.Sprintf(`{
		"firstName": "Asha",
		"lastName": "Verma",
		"email": %q,
		"password": "secret-pass-123",
		"confirmPassword": "secret-pass-123",
		"accountType": %q,
		"contactNumber": "9876543210",
		"otp": %q
	}`, email, accountType, otp)
}

func TestSignupRejectsExpiredOTP(t *testing.T) {
	db := setupAuthTest(t)
	app := newSignupApp()

	seedOTP(t, db, "asha@example.com", "123456", time.Now().Add(-10*time.Minute), time.Now().Add(-5*time.Minute))

	status, message := postSignup(t, app, signupBody("asha@example.com", "Student", "123456"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "The OTP has expired", message)

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Zero(t, users)
}

func TestSignupComparesAgainstLatestOTP(t *testing.T) {
	db := setupAuthTest(t)
	app := newSignupApp()

	// A superseded code must not work even while still unexpired
	seedOTP(t, db, "asha@example.com", "111111", time.Now().Add(-2*time.Minute), time.Now().Add(3*time.Minute))
	seedOTP(t, db, "asha@example.com", "222222", time.Now().Add(-1*time.Minute), time.Now().Add(4*time.Minute))

	status, message := postSignup(t, app, signupBody("asha@example.com", "Student", "111111"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "The OTP is not valid", message)

	status, _ = postSignup(t, app, signupBody("asha@example.com", "Student", "222222"))
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestSignupBurnsOTP(t *testing.T) {
	db := setupAuthTest(t)
	app := newSignupApp()

	seedOTP(t, db, "asha@example.com", "123456", time.Now(), time.Now().Add(5*time.Minute))

	status, _ := postSignup(t, app, signupBody("asha@example.com", "Student", "123456"))
	require.Equal(t, fiber.StatusCreated, status)

	var otp models.OTP
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&otp).Error)
	assert.True(t, otp.IsUsed)
}

func TestSignupInstructorStartsUnapproved(t *testing.T) {
	db := setupAuthTest(t)
	app := newSignupApp()

	seedOTP(t, db, "guru@example.com", "654321", time.Now(), time.Now().Add(5*time.Minute))
	seedOTP(t, db, "asha@example.com", "123456", time.Now(), time.Now().Add(5*time.Minute))

	status, _ := postSignup(t, app, signupBody("guru@example.com", "Instructor", "654321"))
	require.Equal(t, fiber.StatusCreated, status)

	var instructor models.User
	require.NoError(t, db.Where("email = ?", "guru@example.com").First(&instructor).Error)
	assert.False(t, instructor.Approved)

	status, _ = postSignup(t, app, signupBody("asha@example.com", "Student", "123456"))
	require.Equal(t, fiber.StatusCreated, status)

	var student models.User
	require.NoError(t, db.Where("email = ?", "asha@example.com").First(&student).Error)
	assert.True(t, student.Approved)
}
