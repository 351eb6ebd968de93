package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	// PreferenceBucket is the JetStream key-value bucket holding stored preferences.
	PreferenceBucket = "themeswitch_prefs"

	subjectRoot = "themeswitch"
)

// SubjectForScope returns the wildcard subject pattern for all events in a scope.
// Example: "themeswitch.docs.>"
func SubjectForScope(scope string) string {
	return fmt.Sprintf("%s.%s.>", subjectRoot, scope)
}

// SubjectForEvent returns the specific subject for an event type in a scope.
// Example: "themeswitch.docs.theme.changed"
func SubjectForEvent(scope, eventType string) string {
	return fmt.Sprintf("%s.%s.%s", subjectRoot, scope, eventType)
}

// SetupPreferenceBucket creates or updates the key-value bucket for preferences.
// Only the latest value per key is kept; preferences have no useful history.
func SetupPreferenceBucket(ctx context.Context, js jetstream.JetStream) (jetstream.KeyValue, error) {
	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      PreferenceBucket,
		Description: "themeswitch stored preferences",
		History:     1,
		Storage:     jetstream.FileStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("creating preference bucket: %w", err)
	}
	return kv, nil
}
