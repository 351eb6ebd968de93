// Package events carries theme switch notifications over NATS core pub/sub.
//
// Subjects follow themeswitch.{scope}.{event}, so every widget and page that
// shares a scope sees the same open requests and selection changes.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/mark3labs/themeswitch/internal/logger"
	inats "github.com/mark3labs/themeswitch/internal/nats"
)

// Event names, appended to the scope subject.
const (
	EventDialogOpen   = "dialog.open"
	EventThemeChanged = "theme.changed"
)

// DialogOpen asks the dialog to open on behalf of an element.
type DialogOpen struct {
	OpenerID  string    `json:"opener_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ThemeChanged announces a new selection.
type ThemeChanged struct {
	ThemeName string    `json:"theme_name"`
	Timestamp time.Time `json:"timestamp"`
}

// Bus publishes and subscribes to the events of one scope.
type Bus struct {
	nc    *nats.Conn
	scope string
}

// NewBus returns a Bus for scope on nc.
func NewBus(nc *nats.Conn, scope string) *Bus {
	return &Bus{nc: nc, scope: scope}
}

// Scope returns the bus scope.
func (b *Bus) Scope() string { return b.scope }

// PublishOpen publishes an open request for openerID.
func (b *Bus) PublishOpen(openerID string) error {
	return b.publish(EventDialogOpen, DialogOpen{OpenerID: openerID, Timestamp: time.Now()})
}

// PublishThemeChanged publishes a selection change.
func (b *Bus) PublishThemeChanged(name string) error {
	return b.publish(EventThemeChanged, ThemeChanged{ThemeName: name, Timestamp: time.Now()})
}

// SelectionChanged publishes name, logging rather than returning failures.
func (b *Bus) SelectionChanged(name string) {
	if err := b.PublishThemeChanged(name); err != nil {
		logger.Warn("Failed to announce theme change: %v", err)
	}
}

// SubscribeOpen calls fn for every open request in the scope. fn runs on
// the NATS delivery goroutine.
func (b *Bus) SubscribeOpen(fn func(DialogOpen)) (*nats.Subscription, error) {
	return subscribe(b, EventDialogOpen, fn)
}

// SubscribeThemeChanged calls fn for every selection change in the scope.
func (b *Bus) SubscribeThemeChanged(fn func(ThemeChanged)) (*nats.Subscription, error) {
	return subscribe(b, EventThemeChanged, fn)
}

// Flush waits until the server has processed everything published so far.
func (b *Bus) Flush() error {
	return b.nc.Flush()
}

func (b *Bus) publish(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}

	subject := inats.SubjectForEvent(b.scope, event)
	logger.Debug("Publishing %s", subject)

	if err := b.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}

func subscribe[T any](b *Bus, event string, fn func(T)) (*nats.Subscription, error) {
	subject := inats.SubjectForEvent(b.scope, event)
	sub, err := b.nc.Subscribe(subject, func(msg *nats.Msg) {
		var payload T
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			logger.Warn("Dropping malformed %s event: %v", event, err)
			return
		}
		fn(payload)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}
	return sub, nil
}
