package helpers

import (
	"context"

	"github.com/adrinata/go-catalog/app/models"
)

type contextKey string

const ContextKeyActorID contextKey = "actorID"

// WithActor stores the acting user id on the request context.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ContextKeyActorID, actorID)
}

// ActorID returns the acting user for provenance stamping, falling back to
// the reserved system actor when the request carried none.
func ActorID(ctx context.Context) string {
	if id, ok := ctx.Value(ContextKeyActorID).(string); ok && id != "" {
		return id
	}
	return models.SystemUserID
}
