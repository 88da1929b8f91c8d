package utils

import (
	"context"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-\d{8}-\d{6}-\d{3}-\d{4}$`)

	n1 := GenerateOrderNumber()
	n2 := GenerateOrderNumber()

	assert.Regexp(t, pattern, n1)
	assert.Regexp(t, pattern, n2)
	assert.NotEqual(t, n1, n2)
}

func TestGenerateTrackingID(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^TRK-\d{8}-\d{6}-\d{3}-\d{4}$`), GenerateTrackingID())
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "something broke", 500)

	assert.Equal(t, 500, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"something broke"}`, w.Body.String())
}

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)

	ctx = WithUser(ctx, "user-1", "farmer@example.com")

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", id)

	email, ok := GetUserEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "farmer@example.com", email)
}

func TestSessionContext(t *testing.T) {
	ctx := WithSessionID(context.Background(), "sess-1")

	sid, ok := GetSessionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "sess-1", sid)
}
