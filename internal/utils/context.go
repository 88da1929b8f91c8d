package utils

import "context"

type ctxKey string

const (
	UserIDKey    ctxKey = "user_id"
	UserEmailKey ctxKey = "email"
	SessionIDKey ctxKey = "session_id"
)

func WithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, UserEmailKey, email)
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(UserIDKey).(string)
	return v, ok && v != ""
}

func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(UserEmailKey).(string)
	return v, ok && v != ""
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}

func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(SessionIDKey).(string)
	return v, ok && v != ""
}
