package domain

// Mailer sends transactional notifications. Implementations must be safe for
// concurrent use; callers treat delivery as fire-and-forget.
type Mailer interface {
	SendWelcome(to, firstName, userType string) error
	SendNewApplication(to, candidateName, jobTitle string) error
	IsConfigured() bool
}
