package services

import (
	"sync"
	"time"

	"dcreative-storefront/pkg/messaging"

	"github.com/google/uuid"
)

// Kind is the toast flavor the widget renders.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// DefaultToastDuration matches the widget's default auto-dismiss delay.
const DefaultToastDuration = 3 * time.Second

// NotificationService implements the toast collaborator contract: enqueue a
// dismissable message that auto-dismisses after its duration unless closed
// earlier. The onDismiss callback runs exactly once, at dismissal time,
// whether dismissal was manual or automatic. Closing or replacing a toast
// cancels its pending timer so no stale callback fires later.
type NotificationService struct {
	mu      sync.Mutex
	pending map[string]*pendingToast

	events EventPublisher
	topic  string
}

type pendingToast struct {
	sessionID string
	message   string
	kind      Kind
	duration  time.Duration
	timer     *time.Timer
	onDismiss func()
}

func NewNotificationService(events EventPublisher, topic string) *NotificationService {
	return &NotificationService{
		pending: make(map[string]*pendingToast),
		events:  events,
		topic:   topic,
	}
}

// Notify enqueues a success toast with the default duration.
func (s *NotificationService) Notify(sessionID, message string) string {
	return s.NotifyFor(sessionID, message, DefaultToastDuration, KindSuccess, nil)
}

// NotifyFor enqueues a toast with explicit duration, kind and dismissal
// callback, returning the toast id.
func (s *NotificationService) NotifyFor(sessionID, message string, duration time.Duration, kind Kind, onDismiss func()) string {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	if kind == "" {
		kind = KindSuccess
	}

	id := uuid.NewString()
	toast := &pendingToast{
		sessionID: sessionID,
		message:   message,
		kind:      kind,
		duration:  duration,
		onDismiss: onDismiss,
	}

	s.mu.Lock()
	s.pending[id] = toast
	toast.timer = time.AfterFunc(duration, func() {
		s.dismiss(id)
	})
	s.mu.Unlock()

	s.publish("shown", id, toast)
	return id
}

// Close dismisses a toast before its timer fires. Reports whether the toast
// was still pending.
func (s *NotificationService) Close(id string) bool {
	return s.dismiss(id)
}

// Shutdown cancels every pending timer without firing callbacks. Used on
// server stop so no callback mutates already-gone state.
func (s *NotificationService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, toast := range s.pending {
		toast.timer.Stop()
		delete(s.pending, id)
	}
}

func (s *NotificationService) dismiss(id string) bool {
	s.mu.Lock()
	toast, ok := s.pending[id]
	if !ok {
		// Already dismissed; the map entry is the exactly-once guard.
		s.mu.Unlock()
		return false
	}
	delete(s.pending, id)
	toast.timer.Stop()
	s.mu.Unlock()

	s.publish("dismissed", id, toast)

	if toast.onDismiss != nil {
		toast.onDismiss()
	}
	return true
}

func (s *NotificationService) publish(eventType, id string, toast *pendingToast) {
	if s.events == nil {
		return
	}

	_ = s.events.SendMessage(s.topic, toast.sessionID, messaging.ToastEvent{
		Type:       eventType,
		ToastID:    id,
		SessionID:  toast.sessionID,
		Message:    toast.message,
		Kind:       string(toast.kind),
		DurationMs: toast.duration.Milliseconds(),
	})
}
