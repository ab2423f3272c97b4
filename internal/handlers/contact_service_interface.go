package handlers

import "dcreative-storefront/internal/services"

// ContactServiceInterface defines the contract for the contact form service
type ContactServiceInterface interface {
	Submit(sessionID string, msg services.ContactMessage) (bool, error)
}
