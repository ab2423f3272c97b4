package services

import (
	"errors"
	"regexp"
	"strings"
)

// ContactMessage is the contact form payload.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

var (
	ErrMissingFields = errors.New("Please fill in all required fields.")
	ErrInvalidEmail  = errors.New("Please enter a valid email address.")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService validates and accepts contact form submissions. Submission
// is simulated: a valid message only produces the thank-you toast and a
// form-reset directive, invalid input produces an error toast and mutates
// nothing.
type ContactService struct {
	notifier *NotificationService
}

func NewContactService(notifier *NotificationService) *ContactService {
	return &ContactService{notifier: notifier}
}

// Validate checks the required fields and the email shape.
func (s *ContactService) Validate(msg ContactMessage) error {
	name := strings.TrimSpace(msg.Name)
	email := strings.TrimSpace(msg.Email)
	subject := strings.TrimSpace(msg.Subject)
	message := strings.TrimSpace(msg.Message)

	if name == "" || email == "" || subject == "" || message == "" {
		return ErrMissingFields
	}

	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// Submit validates the message and raises the matching toast. The returned
// bool directs the caller to reset the form on success.
func (s *ContactService) Submit(sessionID string, msg ContactMessage) (bool, error) {
	if err := s.Validate(msg); err != nil {
		s.notifier.NotifyFor(sessionID, err.Error(), DefaultToastDuration, KindError, nil)
		return false, err
	}

	s.notifier.Notify(sessionID, "Thank you for your message! We will get back to you soon.")
	return true, nil
}
