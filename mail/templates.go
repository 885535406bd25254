package mail

import "fmt"

// WelcomeBody is the account creation confirmation message.
func WelcomeBody(name string) string {
	return fmt.Sprintf(`
      <h1>Welcome to AgriWise, %s!</h1>
      <p>Your account has been successfully created.</p>
      <p>If this wasn't you, please contact our support immediately.</p>
    `, name)
}

// ResetBody wraps the reset link the raw token is embedded in.
func ResetBody(resetURL string) string {
	return fmt.Sprintf(`
      <h1>Password Reset Request</h1>
      <p>You have requested to reset your password.</p>
      <p>Please click the link below to reset your password:</p>
      <a href="%s"
         style="background-color: #4CAF50; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">
         Reset My Password
      </a>
      <p>This link will expire in 10 minutes.</p>`, resetURL)
}
