package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebhookNotifier_SendOrderConfirmation(t *testing.T) {
	ctx := context.Background()

	confirmation := Confirmation{
		CustomerName: "Ravi",
		OrderNumber:  "ORD-1",
		TrackingID:   "TRK-1",
		Items:        []ConfirmationItem{{Name: "Tomatoes", Quantity: 2, UnitPrice: 25, TotalPrice: 50}},
		Total:        50,
		Address:      "Pune",
	}

	t.Run("Success", func(t *testing.T) {
		var received Confirmation
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		}))
		defer srv.Close()

		n := NewWebhookNotifier(srv.URL)
		err := n.SendOrderConfirmation(ctx, confirmation)

		assert.NoError(t, err)
		assert.Equal(t, "ORD-1", received.OrderNumber)
		assert.Len(t, received.Items, 1)
	})

	t.Run("UpstreamError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		n := NewWebhookNotifier(srv.URL)
		err := n.SendOrderConfirmation(ctx, confirmation)

		assert.Error(t, err)
	})

	t.Run("EmptyURLDropsSilently", func(t *testing.T) {
		n := NewWebhookNotifier("")
		assert.NoError(t, n.SendOrderConfirmation(ctx, confirmation))
	})
}
