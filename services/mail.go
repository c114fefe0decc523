package services

import (
	"fmt"
	"net/smtp"
	"net/url"

	"farmpro/config"
)

// stubbed in tests
var sendMail = smtp.SendMail

// SendSignInEmail delivers the single-use verification URL for passwordless
// sign-in. Delivery failure propagates as a hard error; there is no retry
// and no fallback channel.
func SendSignInEmail(email string, signInURL string) error {
	host := config.GetEnv("EMAIL_SERVER_HOST")
	port := config.GetEnvDefault("EMAIL_SERVER_PORT", "587")
	user := config.GetEnv("EMAIL_SERVER_USER")
	password := config.GetEnv("EMAIL_SERVER_PASSWORD")
	from := config.GetEnv("EMAIL_FROM")

	linkHost := ""
	if u, err := url.Parse(signInURL); err == nil {
		linkHost = u.Host
	}

	to := []string{email}
	subject := fmt.Sprintf("Subject: Sign in to %s\n", linkHost)
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Sign in</title>
		</head>
		<body>
			<p>Sign in to <strong>%s</strong></p>
			<p><a href="%s">Click here to sign in</a></p>
			<p>If you did not request this email you can safely ignore it.</p>
		</body>
		</html>
	`, linkHost, signInURL)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", user, password, host)

	return sendMail(host+":"+port, auth, from, to, msg)
}
