package authController

import (
	"edtech/config"
	"edtech/database"
	"edtech/middleware"
	"edtech/models"
	"edtech/utils"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func SendOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOTP").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Signup OTPs are only for addresses without an account
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already exists", nil)
	}

	// Generate OTP, retrying until the code is not already live
	otp := utils.GenerateOTP()
	for {
		var existing models.OTP
		if err := db.Where("code = ? AND is_used = ? AND is_deleted = ?", otp, false, false).First(&existing).Error; err != nil {
			break
		}
		otp = utils.GenerateOTP()
	}

	otpRecord := models.OTP{
		Email:     reqData.Email,
		Code:      otp,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	if err := utils.SendOTPEmail(otp, reqData.Email); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP to email!", nil)
	}

	if err := db.Create(&otpRecord).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create OTP!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		AccountType     string `json:"accountType"`
		ContactNumber   string `json:"contactNumber"`
		OTP             string `json:"otp"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists. Please sign in to continue.", nil)
	}

	// Compare against the most recent OTP issued for this email
	var otpRecord models.OTP
	if err := db.Where("email = ? AND is_used = ? AND is_deleted = ?", reqData.Email, false, false).
		Order("created_at desc").
		First(&otpRecord).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "The OTP is not valid", nil)
	}

	if otpRecord.Code != reqData.OTP {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "The OTP is not valid", nil)
	}

	if otpRecord.ExpiresAt.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "The OTP has expired", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Instructor accounts wait for admin approval
	approved := reqData.AccountType != models.AccountTypeInstructor

	newUser := models.User{
		FirstName:     reqData.FirstName,
		LastName:      reqData.LastName,
		Email:         reqData.Email,
		Password:      string(hashedPassword),
		AccountType:   reqData.AccountType,
		Approved:      approved,
		ContactNumber: reqData.ContactNumber,
		Profile: models.Profile{
			ContactNumber: reqData.ContactNumber,
		},
		Image: fmt.Sprintf("https://api.dicebear.com/6.x/initials/svg?seed=%s %s", reqData.FirstName, reqData.LastName),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "User cannot be registered. Please try again later.", nil)
	}

	// Burn the OTP
	otpRecord.IsUsed = true
	if err := db.Save(&otpRecord).Error; err != nil {
		log.Printf("Error marking OTP as used: %v", err)
	}

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	result := database.Database.Db.
		Where("email = ? AND is_deleted = ?", reqData.Email, false).
		Preload("Profile").
		First(&user)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User is not registered with us. Please signup to continue.", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Password is incorrect", nil)
	}

	// Generate JWT token
	token, err := middleware.GenerateJWT(user.ID, user.Email, user.AccountType)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(3 * 24 * time.Hour),
		HTTPOnly: true,
	})

	// Sanitize user data
	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User login success.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func ChangePassword(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Validate old password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.OldPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "The password is incorrect", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error occurred while updating password", nil)
	}

	go func(u models.User) {
		if err := utils.SendPasswordUpdatedEmail(u.Email, u.FirstName+" "+u.LastName); err != nil {
			log.Printf("Error sending password update email to %s: %v", u.Email, err)
		}
	}(user)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully.", nil)
}
