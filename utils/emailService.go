package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"wealthgenius/config"
	"wealthgenius/models"
)

// SendEmail delivers one message over the configured SMTP relay. It never
// panics past this boundary: any failure is logged and reported as false.
// htmlBody is optional; when empty only the plain part is sent.
func SendEmail(to []string, subject, plainBody, htmlBody string) bool {
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	var msg string
	if htmlBody != "" {
		boundary := "wg-alt-boundary"
		msg = fmt.Sprintf("MIME-version: 1.0;\nContent-Type: multipart/alternative; boundary=\"%s\";\n", boundary)
		msg += fmt.Sprintf("From: Wealth Genius <%s>\r\n", from)
		msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
		msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
		msg += fmt.Sprintf("--%s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n", boundary, plainBody)
		msg += fmt.Sprintf("--%s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n", boundary, htmlBody)
		msg += fmt.Sprintf("--%s--\r\n", boundary)
	} else {
		msg = "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\n"
		msg += fmt.Sprintf("From: Wealth Genius <%s>\r\n", from)
		msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
		msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
		msg += plainBody
	}

	auth := smtp.PlainAuth("", from, password, smtpHost)

	fmt.Printf("--- Sending Email ---\nTo: %v\nSubject: %s\nFrom: %s\n", to, subject, from)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return false
	}
	fmt.Println("--- Email Sent Successfully ---")
	return true
}

// HTML wrapper for all transactional mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background: linear-gradient(135deg, #1e40af, #059669); padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #333333; line-height: 1.6; }
			.content h2 { color: #1e40af; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.details-box { background: #f9fafb; padding: 15px; border-radius: 4px; border-left: 4px solid #3b82f6; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>WEALTH GENIUS</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Wealth Genius Trading Education Platform.<br>
				Your Gateway to Financial Success.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, fullName, username string) {
	subject := "Welcome to Wealth Genius Trading Education Platform"
	plain := fmt.Sprintf(`Welcome to Wealth Genius, %s!

Thank you for joining our trading education platform.

Your account details:
- Username: %s
- Email: %s

Get started by exploring our courses.

Best regards,
The Wealth Genius Team`, fullName, username, email)

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Wealth Genius</strong>! We are thrilled to have you onboard.</p>
		<div class="details-box">
			<strong>Username:</strong> %s<br>
			<strong>Email:</strong> %s
		</div>
		<p>Get started by exploring our courses and joining our community.</p>
	`, fullName, username, email)

	go SendEmail([]string{email}, subject, plain, getEmailTemplate("Welcome Onboard!", body))
}

// 2. Enrollment confirmation (to the student)
func SendEnrollmentConfirmationEmail(studentName, studentEmail, courseTitle, coursePrice string, enrollmentID uint) {
	subject := fmt.Sprintf("Enrollment Confirmation - %s | Wealth Genius", courseTitle)
	plain := fmt.Sprintf(`Dear %s,

Thank you for enrolling in %s with Wealth Genius!

Enrollment Details:
Course: %s
Course Fee: %s
Enrollment ID: #%d

What Happens Next?
- Our team will review your enrollment request
- You will receive a call from our team within 24-48 hours
- We will guide you through the payment process
- Once payment is confirmed, you'll get access to course materials

Best regards,
The Wealth Genius Team`, studentName, courseTitle, courseTitle, coursePrice, enrollmentID)

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for enrolling in <strong>%s</strong>!</p>
		<div class="details-box">
			<strong>Course:</strong> %s<br>
			<strong>Course Fee:</strong> %s<br>
			<strong>Enrollment ID:</strong> #%d
		</div>
		<p>Our team will review your enrollment request and call you within 24-48 hours to guide you through the payment process.</p>
	`, studentName, courseTitle, courseTitle, coursePrice, enrollmentID)

	SendEmail([]string{studentEmail}, subject, plain, getEmailTemplate("Enrollment Received", body))
}

// 3. Enrollment alert (to the admin inbox)
func SendEnrollmentAdminAlert(e models.Enrollment) {
	subject := fmt.Sprintf("New Enrollment #%d: %s", e.ID, e.CourseTitle)
	plain := fmt.Sprintf(`New enrollment received:

Name: %s
Email: %s
Phone: %s
City: %s
Course: %s
Quoted Price: %s
Enrollment ID: #%d`, e.StudentName, e.StudentEmail, e.StudentPhone, e.StudentCity, e.CourseTitle, e.CoursePrice, e.ID)

	SendEmail([]string{config.AppConfig.AdminEmail}, subject, plain, "")
}

// 4. Consultation confirmation (to the requester)
func SendConsultationConfirmationEmail(cs models.ConsultationSchedule) {
	subject := "Consultation Scheduled | Wealth Genius"
	plain := fmt.Sprintf(`Dear %s,

Your free consultation has been scheduled.

Date: %s
Time: %s

Our team will call you at %s at the scheduled time.

Best regards,
The Wealth Genius Team`, cs.Name, cs.PreferredDate, cs.PreferredTime, cs.Phone)

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your free consultation has been scheduled.</p>
		<div class="details-box">
			<strong>Date:</strong> %s<br>
			<strong>Time:</strong> %s
		</div>
		<p>Our team will call you at <strong>%s</strong> at the scheduled time.</p>
	`, cs.Name, cs.PreferredDate, cs.PreferredTime, cs.Phone)

	go SendEmail([]string{cs.Email}, subject, plain, getEmailTemplate("Consultation Scheduled", body))
}

// 5. Consultation alert (to the admin inbox)
func SendConsultationAdminAlert(cs models.ConsultationSchedule) {
	subject := fmt.Sprintf("New Consultation Request: %s on %s", cs.Name, cs.PreferredDate)
	plain := fmt.Sprintf(`New consultation request:

Name: %s
Email: %s
Phone: %s
Preferred Date: %s
Preferred Time: %s
Message: %s`, cs.Name, cs.Email, cs.Phone, cs.PreferredDate, cs.PreferredTime, cs.Message)

	go SendEmail([]string{config.AppConfig.AdminEmail}, subject, plain, "")
}

// 6. Contact inquiry alert (to the admin inbox)
func SendContactNotificationEmail(inquiry models.ContactInquiry) {
	subject := "New Contact Inquiry: " + inquiry.Subject
	courseInterest := inquiry.CourseInterest
	if courseInterest == "" {
		courseInterest = "Not specified"
	}
	phone := inquiry.Phone
	if phone == "" {
		phone = "Not provided"
	}
	plain := fmt.Sprintf(`New contact inquiry received:

Name: %s
Email: %s
Phone: %s
Subject: %s
Message: %s
Course Interest: %s`, inquiry.Name, inquiry.Email, phone, inquiry.Subject, inquiry.Message, courseInterest)

	go SendEmail([]string{config.AppConfig.AdminEmail}, subject, plain, "")
}

// 7. Payment reminder (scheduler)
func SendPaymentReminderEmail(e models.Enrollment) {
	subject := fmt.Sprintf("Complete Your Enrollment - %s | Wealth Genius", e.CourseTitle)
	plain := fmt.Sprintf(`Dear %s,

Your enrollment in %s (Enrollment ID #%d) is still awaiting payment.

Complete the payment to unlock your course materials. If you have any
questions, just reply to this email.

Best regards,
The Wealth Genius Team`, e.StudentName, e.CourseTitle, e.ID)

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your enrollment in <strong>%s</strong> (Enrollment ID #%d) is still awaiting payment.</p>
		<p>Complete the payment to unlock your course materials.</p>
	`, e.StudentName, e.CourseTitle, e.ID)

	SendEmail([]string{e.StudentEmail}, subject, plain, getEmailTemplate("Payment Pending", body))
}
