package shared

import "context"

type userIDContextKey struct{}

// ContextWithUserID stores the authenticated user identifier in context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// UserIDFromContext extracts the authenticated user identifier from context.
// It returns the empty string when no identity was attached.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDContextKey{}).(string)
	return userID
}
