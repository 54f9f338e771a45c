package logging

import (
	"context"

	"github.com/umltranslator/translator-go/internal/ports"
)

// WithCorrelationID stores the provided correlation identifier inside the
// context. The CLI generates one identifier per invocation and attaches it
// before driving the Deserializer Facade, so every entry a translation
// emits shares it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return ports.WithCorrelationID(ctx, id)
}

// GetCorrelationID retrieves the correlation identifier from the context,
// returning an empty string when none is present.
func GetCorrelationID(ctx context.Context) string {
	return ports.GetCorrelationID(ctx)
}

// GenerateCorrelationID creates a new correlation identifier for one
// translation.
func GenerateCorrelationID() string {
	return ports.GenerateCorrelationID()
}
