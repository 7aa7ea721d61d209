package payment

import "edtech/utils"

// Notifier delivers enrollment confirmations. Implementations must treat
// delivery as best-effort; the enrollment workflow never rolls back on a
// failed send.
type Notifier interface {
	EnrollmentConfirmed(email, userName, courseName string) error
}

// EmailNotifier sends confirmations through the SMTP mail service
type EmailNotifier struct{}

func (EmailNotifier) EnrollmentConfirmed(email, userName, courseName string) error {
	return utils.SendEnrollmentEmail(email, userName, courseName)
}
