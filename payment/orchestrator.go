package payment

import (
	"edtech/models"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Currency is the only settlement currency the platform charges in
const Currency = "INR"

var (
	ErrNoCourses         = errors.New("no courses supplied")
	ErrCourseNotFound    = errors.New("course not found")
	ErrAlreadyEnrolled   = errors.New("student already enrolled in course")
	ErrInvalidAmount     = errors.New("order amount must be positive")
	ErrProvider          = errors.New("payment provider request failed")
	ErrSignatureMismatch = errors.New("payment signature mismatch")
)

// OrderCreator requests orders from the payment provider
type OrderCreator interface {
	CreateOrder(amount int64, currency, receipt string, notes map[string]string) (*Order, error)
}

// OrderInfo is returned to the client so checkout can proceed. Nothing is
// persisted locally at this stage.
type OrderInfo struct {
	OrderID  string          `json:"orderId"`
	Amount   int64           `json:"amount"`
	Currency string          `json:"currency"`
	Courses  []models.Course `json:"courses"`
}

// Service orchestrates the capture -> verify -> enroll workflow. All
// collaborators are constructed at startup and injected; the service keeps
// no ambient state.
type Service struct {
	db              *gorm.DB
	provider        OrderCreator
	clientVerifier  *Verifier // keyed by the API key secret
	webhookVerifier *Verifier // keyed by the webhook shared secret
	enroller        *Enroller
}

func NewService(db *gorm.DB, provider OrderCreator, clientVerifier, webhookVerifier *Verifier, enroller *Enroller) *Service {
	return &Service{
		db:              db,
		provider:        provider,
		clientVerifier:  clientVerifier,
		webhookVerifier: webhookVerifier,
		enroller:        enroller,
	}
}

// Initiate totals the course prices and creates a provider order for the
// sum in paise. No state changes until the payment is confirmed.
func (s *Service) Initiate(userID uint, courseIDs []uint) (*OrderInfo, error) {
	if len(courseIDs) == 0 {
		return nil, ErrNoCourses
	}

	var total float64
	courses := make([]models.Course, 0, len(courseIDs))

	for _, courseID := range courseIDs {
		var course models.Course
		if err := s.db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCourseNotFound
			}
			return nil, err
		}

		// Membership check happens before charging, not after
		var enrolled int64
		if err := s.db.Model(&models.Enrollment{}).
			Where("user_id = ? AND course_id = ?", userID, courseID).
			Count(&enrolled).Error; err != nil {
			return nil, err
		}
		if enrolled > 0 {
			return nil, ErrAlreadyEnrolled
		}

		if course.Price < 0 {
			return nil, ErrInvalidAmount
		}

		total += course.Price
		courses = append(courses, course)
	}

	if total <= 0 {
		return nil, ErrInvalidAmount
	}

	amount := int64(math.Round(total * 100)) // paise

	ids := make([]string, 0, len(courseIDs))
	for _, courseID := range courseIDs {
		ids = append(ids, strconv.FormatUint(uint64(courseID), 10))
	}
	notes := map[string]string{
		"userId":    strconv.FormatUint(uint64(userID), 10),
		"course_id": strings.Join(ids, ","),
	}

	order, err := s.provider.CreateOrder(amount, Currency, uuid.NewString(), notes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	return &OrderInfo{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Courses:  courses,
	}, nil
}

// Confirm verifies the client confirmation signature, then enrolls the user
// in every listed course. On mismatch nothing is mutated. A replayed
// confirmation hits the enrollment unique index and comes back as
// ErrAlreadyEnrolled rather than enrolling twice.
func (s *Service) Confirm(userID uint, courseIDs []uint, orderID, paymentID, signature string) ([]EnrollmentResult, error) {
	if len(courseIDs) == 0 {
		return nil, ErrNoCourses
	}

	if !s.clientVerifier.VerifyPayment(orderID, paymentID, signature) {
		return nil, ErrSignatureMismatch
	}

	return s.enroller.EnrollAll(userID, courseIDs)
}

// VerifyWebhook authenticates a provider webhook against the raw body
func (s *Service) VerifyWebhook(rawBody []byte, signature string) bool {
	return s.webhookVerifier.VerifyWebhook(rawBody, signature)
}

// Enroll records a single enrollment, used by the webhook path
func (s *Service) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	return s.enroller.Enroll(userID, courseID)
}
