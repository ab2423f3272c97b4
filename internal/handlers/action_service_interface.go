package handlers

import (
	"context"

	"dcreative-storefront/internal/services"
)

// ActionServiceInterface defines the contract for the tagged-action router
type ActionServiceInterface interface {
	Dispatch(ctx context.Context, sessionID string, action services.Action) (*services.Outcome, error)
	State(ctx context.Context, sessionID string) (*services.Outcome, error)
}
