package utils

import (
	"edtech/config"
	"fmt"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Techie EdTech <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A40; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A40; line-height: 1.6; }
			.content h2 { color: #1A1A40; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.otp { text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #FFD663; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>TECHIE EDTECH</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Techie EdTech. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Email verification OTP
func SendOTPEmail(otp, email string) error {
	subject := "Verification Email from Techie EdTech"
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<h1 class="otp">%s</h1>
		<p>The OTP is valid for 5 minutes. Do not share it with anyone.</p>
	`, otp)

	return SendEmail([]string{email}, subject, getEmailTemplate("OTP Verification", body))
}

// 2. Course enrollment confirmation
func SendEnrollmentEmail(email, userName, courseName string) error {
	subject := fmt.Sprintf("Successfully Enrolled into %s", courseName)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congrats from Techie EdTech! You have been successfully enrolled in the course: <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Head over to your dashboard to start learning.
		</div>
	`, userName, courseName)

	return SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Confirmed", body))
}

// 3. Payment received
func SendPaymentSuccessEmail(email, userName string, amount float64, orderID, paymentID string) error {
	subject := "Payment Received"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your payment of <strong>Rs. %.2f</strong>.</p>
		<div class="info-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Order ID:</strong> %s</li>
				<li><strong>Payment ID:</strong> %s</li>
			</ul>
		</div>
	`, userName, amount, orderID, paymentID)

	return SendEmail([]string{email}, subject, getEmailTemplate("Payment Successful", body))
}

// 4. Password reset link
func SendResetPasswordEmail(email, resetURL string) error {
	subject := "Password Reset Request"
	body := fmt.Sprintf(`
		<p>Click on the link below to reset your password. The link is valid for 1 hour.</p>
		<p><a href="%s">%s</a></p>
		<p>If you did not request a password reset, you can safely ignore this email.</p>
	`, resetURL, resetURL)

	return SendEmail([]string{email}, subject, getEmailTemplate("Reset Your Password", body))
}

// 5. Password changed notification
func SendPasswordUpdatedEmail(email, userName string) error {
	subject := "Password for your account has been updated"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The password for your account <strong>%s</strong> was just changed.</p>
		<p style="color: #DC3545; font-weight: bold;">If you did not make this change, please contact support immediately.</p>
	`, userName, email)

	return SendEmail([]string{email}, subject, getEmailTemplate("Password Updated", body))
}
