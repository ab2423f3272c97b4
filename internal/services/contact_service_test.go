package services_test

import (
	"testing"

	"dcreative-storefront/internal/services"
	"dcreative-storefront/pkg/messaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactMessage() services.ContactMessage {
	return services.ContactMessage{
		Name:    "Maria Santos",
		Email:   "maria@example.com",
		Subject: "Bulk order",
		Message: "Do you deliver to Cebu?",
	}
}

func TestContactValidate(t *testing.T) {
	svc := services.NewContactService(nil)

	tests := []struct {
		name    string
		mutate  func(*services.ContactMessage)
		wantErr error
	}{
		{name: "valid", mutate: func(m *services.ContactMessage) {}},
		{name: "missing name", mutate: func(m *services.ContactMessage) { m.Name = "" }, wantErr: services.ErrMissingFields},
		{name: "whitespace name", mutate: func(m *services.ContactMessage) { m.Name = "   " }, wantErr: services.ErrMissingFields},
		{name: "missing email", mutate: func(m *services.ContactMessage) { m.Email = "" }, wantErr: services.ErrMissingFields},
		{name: "missing subject", mutate: func(m *services.ContactMessage) { m.Subject = "" }, wantErr: services.ErrMissingFields},
		{name: "missing message", mutate: func(m *services.ContactMessage) { m.Message = "" }, wantErr: services.ErrMissingFields},
		{name: "email without at", mutate: func(m *services.ContactMessage) { m.Email = "maria.example.com" }, wantErr: services.ErrInvalidEmail},
		{name: "email without domain dot", mutate: func(m *services.ContactMessage) { m.Email = "maria@example" }, wantErr: services.ErrInvalidEmail},
		{name: "email with spaces", mutate: func(m *services.ContactMessage) { m.Email = "maria santos@example.com" }, wantErr: services.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validContactMessage()
			tt.mutate(&msg)

			err := svc.Validate(msg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestContactSubmitSuccess(t *testing.T) {
	events := &recordingPublisher{}
	notifier := services.NewNotificationService(events, testToastTopic)
	defer notifier.Shutdown()
	svc := services.NewContactService(notifier)

	reset, err := svc.Submit("s1", validContactMessage())
	require.NoError(t, err)
	assert.True(t, reset)

	messages := events.captured()
	require.Len(t, messages, 1)
	toast := messages[0].Value.(messaging.ToastEvent)
	assert.Equal(t, "Thank you for your message! We will get back to you soon.", toast.Message)
	assert.Equal(t, string(services.KindSuccess), toast.Kind)
}

func TestContactSubmitInvalid(t *testing.T) {
	events := &recordingPublisher{}
	notifier := services.NewNotificationService(events, testToastTopic)
	defer notifier.Shutdown()
	svc := services.NewContactService(notifier)

	reset, err := svc.Submit("s1", services.ContactMessage{Email: "maria@example.com"})
	require.ErrorIs(t, err, services.ErrMissingFields)
	assert.False(t, reset)

	messages := events.captured()
	require.Len(t, messages, 1)
	toast := messages[0].Value.(messaging.ToastEvent)
	assert.Equal(t, services.ErrMissingFields.Error(), toast.Message)
	assert.Equal(t, string(services.KindError), toast.Kind)
}
