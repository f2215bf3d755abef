package auth

import "context"

type contextKey string

const userIDContextKey contextKey = "user_id"

// WithUserID stores the authenticated user ID on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// GetUserID returns the authenticated user ID, if any.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok
}

// OwnerUserID returns the authenticated user ID, falling back to the shared
// "default" owner when auth is disabled.
func OwnerUserID(ctx context.Context) string {
	if userID, ok := GetUserID(ctx); ok {
		return userID
	}
	return "default"
}
