package auth

import (
	"fmt"
	"net/smtp"

	"soapworks/config"
)

func sendMail(to, subject, body string) error {
	from := config.SMTP_FROM
	host := config.SMTP_HOST
	if from == "" || host == "" {
		return fmt.Errorf("smtp not configured")
	}

	auth := smtp.PlainAuth("", from, config.SMTP_PASSWORD, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	return smtp.SendMail(host+":"+config.SMTP_PORT, auth, from, []string{to}, message)
}

func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", config.PUBLIC_URL, token)
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)
	return sendMail(to, "Verify Your Account", body)
}

func SendOrderConfirmation(to string, orderID uint, total float64) error {
	body := fmt.Sprintf(
		"Thanks for your order with Herbal Soap Works!\n\nOrder #%d, total %.2f.\n\nWe'll confirm your payment shortly and email you when it ships.",
		orderID, total)
	return sendMail(to, fmt.Sprintf("Order #%d received", orderID), body)
}
