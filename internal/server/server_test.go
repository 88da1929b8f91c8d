package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agriconnect-be/internal/cart"
	"agriconnect-be/internal/chat"
	"agriconnect-be/internal/order"
	"agriconnect-be/internal/product"
	"agriconnect-be/internal/tracking"
	"agriconnect-be/internal/user"
	"agriconnect-be/internal/utils"
	"agriconnect-be/internal/vendor"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, name, email, phone, password string) (string, user.User, error) {
	args := m.Called(ctx, name, email, phone, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]product.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) Get(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*product.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID, productID string) (string, error) {
	args := m.Called(ctx, sessionID, productID)
	return args.String(0), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID, productID string) error {
	args := m.Called(ctx, sessionID, productID)
	return args.Error(0)
}

func (m *MockCartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	args := m.Called(ctx, sessionID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockCartService) Get(ctx context.Context, sessionID string) (*cart.View, error) {
	args := m.Called(ctx, sessionID)
	if v, ok := args.Get(0).(*cart.View); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) Snapshot(sessionID string) ([]cart.Line, float64) {
	args := m.Called(sessionID)
	if l, ok := args.Get(0).([]cart.Line); ok {
		return l, args.Get(1).(float64)
	}
	return nil, args.Get(1).(float64)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, params order.PlaceOrderParams) (*order.Order, error) {
	args := m.Called(ctx, params)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) GetOrders(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if o, ok := args.Get(0).([]order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID string, status order.Status) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) List(ctx context.Context) []vendor.Vendor {
	args := m.Called(ctx)
	return args.Get(0).([]vendor.Vendor)
}

func (m *MockVendorService) Refresh(ctx context.Context) ([]vendor.Vendor, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]vendor.Vendor); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Chat(ctx context.Context, messages []chat.Message) (*chat.Reply, error) {
	args := m.Called(ctx, messages)
	if r, ok := args.Get(0).(*chat.Reply); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type serverMocks struct {
	users    *MockUserService
	products *MockProductService
	carts    *MockCartService
	orders   *MockOrderService
	vendors  *MockVendorService
	chats    *MockChatService
}

func newTestServer() (*Server, *serverMocks) {
	m := &serverMocks{
		users:    new(MockUserService),
		products: new(MockProductService),
		carts:    new(MockCartService),
		orders:   new(MockOrderService),
		vendors:  new(MockVendorService),
		chats:    new(MockChatService),
	}
	srv := NewServer(m.users, m.products, m.carts, m.orders, m.vendors, m.chats, tracking.NewSimulator(time.Hour))
	return srv, m
}

func sessionRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(utils.WithSessionID(req.Context(), "sess-1"))
}

func TestHandleChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv, m := newTestServer()
		m.chats.On("Chat", mock.Anything, []chat.Message{{Role: "user", Content: "hi"}}).
			Return(&chat.Reply{Message: "hello"}, nil)

		req := sessionRequest("POST", "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`)
		rec := httptest.NewRecorder()
		srv.handleChat(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var reply chat.Reply
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
		assert.Equal(t, "hello", reply.Message)
	})

	t.Run("NavigationIncluded", func(t *testing.T) {
		srv, m := newTestServer()
		m.chats.On("Chat", mock.Anything, mock.Anything).
			Return(&chat.Reply{
				Message:    "Taking you there!",
				Navigation: &chat.Navigation{Action: "navigate", Page: "/marketplace", Success: true},
			}, nil)

		req := sessionRequest("POST", "/api/chat", `{"messages":[{"role":"user","content":"go to marketplace"}]}`)
		rec := httptest.NewRecorder()
		srv.handleChat(rec, req)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		nav := body["navigation"].(map[string]interface{})
		assert.Equal(t, "navigate", nav["action"])
		assert.Equal(t, "/marketplace", nav["page"])
		assert.Equal(t, true, nav["success"])
	})

	t.Run("RateLimited", func(t *testing.T) {
		srv, m := newTestServer()
		m.chats.On("Chat", mock.Anything, mock.Anything).Return(nil, chat.ErrRateLimited)

		req := sessionRequest("POST", "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`)
		rec := httptest.NewRecorder()
		srv.handleChat(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("PaymentRequired", func(t *testing.T) {
		srv, m := newTestServer()
		m.chats.On("Chat", mock.Anything, mock.Anything).Return(nil, chat.ErrPaymentRequired)

		req := sessionRequest("POST", "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`)
		rec := httptest.NewRecorder()
		srv.handleChat(rec, req)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		srv, m := newTestServer()
		m.chats.On("Chat", mock.Anything, mock.Anything).Return(nil, chat.ErrNotConfigured)

		req := sessionRequest("POST", "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`)
		rec := httptest.NewRecorder()
		srv.handleChat(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("BadBody", func(t *testing.T) {
		srv, _ := newTestServer()

		req := sessionRequest("POST", "/api/chat", `{"messages":"nope"`)
		rec := httptest.NewRecorder()
		srv.handleChat(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleAddToCart(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv, m := newTestServer()
		m.carts.On("AddItem", mock.Anything, "sess-1", "p1").
			Return("Fresh Tomatoes added to your cart", nil)
		m.carts.On("Get", mock.Anything, "sess-1").
			Return(&cart.View{Lines: []cart.Line{}, TotalPrice: 0, TotalItems: 0}, nil)

		req := sessionRequest("POST", "/api/cart", `{"product_id":"p1"}`)
		rec := httptest.NewRecorder()
		srv.handleAddToCart(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Fresh Tomatoes added to your cart", body["message"])
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		srv, m := newTestServer()
		m.carts.On("AddItem", mock.Anything, "sess-1", "missing").
			Return("", cart.ErrProductNotFound)

		req := sessionRequest("POST", "/api/cart", `{"product_id":"missing"}`)
		rec := httptest.NewRecorder()
		srv.handleAddToCart(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("MissingProductID", func(t *testing.T) {
		srv, _ := newTestServer()

		req := sessionRequest("POST", "/api/cart", `{}`)
		rec := httptest.NewRecorder()
		srv.handleAddToCart(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleCheckout(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		srv, m := newTestServer()
		m.orders.On("PlaceOrder", mock.Anything, mock.Anything).
			Return(nil, order.ErrUserNotAuthenticated)

		req := sessionRequest("POST", "/api/checkout", `{"name":"Ravi","email":"r@x.com","phone":"1","address":"a"}`)
		rec := httptest.NewRecorder()
		srv.handleCheckout(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		srv, m := newTestServer()
		placed := &order.Order{ID: "o-1", OrderNumber: "ORD-1", TotalAmount: 150}
		m.orders.On("PlaceOrder", mock.Anything, order.PlaceOrderParams{
			Name: "Ravi", Email: "r@x.com", Phone: "1", Address: "a",
		}).Return(placed, nil)

		req := sessionRequest("POST", "/api/checkout", `{"name":"Ravi","email":"r@x.com","phone":"1","address":"a"}`)
		rec := httptest.NewRecorder()
		srv.handleCheckout(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var o order.Order
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &o))
		assert.Equal(t, "o-1", o.ID)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		srv, m := newTestServer()
		m.orders.On("PlaceOrder", mock.Anything, mock.Anything).
			Return(nil, order.ErrCartEmpty)

		req := sessionRequest("POST", "/api/checkout", `{"name":"Ravi","email":"r@x.com","phone":"1","address":"a"}`)
		rec := httptest.NewRecorder()
		srv.handleCheckout(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleOrderHistory(t *testing.T) {
	history := []order.Order{
		{ID: "o-1", OrderNumber: "ORD-1", Status: order.StatusDelivered, TotalAmount: 2450, CreatedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "o-2", OrderNumber: "ORD-2", Status: order.StatusPending, TotalAmount: 1850, CreatedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
	}

	t.Run("StatusFilterWithStats", func(t *testing.T) {
		srv, m := newTestServer()
		m.orders.On("GetOrders", mock.Anything).Return(history, nil)

		req := sessionRequest("GET", "/api/orders/history?status=delivered", "")
		rec := httptest.NewRecorder()
		srv.handleOrderHistory(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Orders []order.Order `json:"orders"`
			Stats  order.Stats   `json:"stats"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Orders, 1)
		assert.Equal(t, 1, body.Stats.Count)
		assert.Equal(t, 2450.0, body.Stats.TotalSpent)
	})

	t.Run("AmountRange", func(t *testing.T) {
		srv, m := newTestServer()
		m.orders.On("GetOrders", mock.Anything).Return(history, nil)

		req := sessionRequest("GET", "/api/orders/history?min_amount=2000", "")
		rec := httptest.NewRecorder()
		srv.handleOrderHistory(rec, req)

		var body struct {
			Orders []order.Order `json:"orders"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Orders, 1)
		assert.Equal(t, "ORD-1", body.Orders[0].OrderNumber)
	})
}

func TestHandleExportHistory(t *testing.T) {
	srv, m := newTestServer()
	m.orders.On("GetOrders", mock.Anything).Return([]order.Order{
		{OrderNumber: "ORD-1", Status: order.StatusDelivered, TotalAmount: 2450,
			CreatedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			Items:     []order.Item{{ProductName: "Tomatoes", Quantity: 2}}},
	}, nil)

	req := sessionRequest("GET", "/api/orders/history/export", "")
	rec := httptest.NewRecorder()
	srv.handleExportHistory(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Order Number")
	assert.Contains(t, lines[1], "₹2450.00")
}

func TestHandleTracking(t *testing.T) {
	t.Run("ShippedShowsSteps", func(t *testing.T) {
		srv, m := newTestServer()
		m.orders.On("GetOrder", mock.Anything, "o-1").Return(&order.Order{
			ID: "o-1", OrderNumber: "ORD-1", TrackingID: "TRK-1", Status: order.StatusShipped,
		}, nil)

		req := mux.SetURLVars(sessionRequest("GET", "/api/orders/o-1/tracking", ""), map[string]string{"id": "o-1"})
		rec := httptest.NewRecorder()
		srv.handleTracking(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp trackingResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 70, resp.Progress)
		assert.True(t, resp.ShowSteps)
		assert.Equal(t, tracking.Steps, resp.Steps)
	})

	t.Run("DeliveredHidesSteps", func(t *testing.T) {
		srv, m := newTestServer()
		m.orders.On("GetOrder", mock.Anything, "o-2").Return(&order.Order{
			ID: "o-2", Status: order.StatusDelivered,
		}, nil)

		req := mux.SetURLVars(sessionRequest("GET", "/api/orders/o-2/tracking", ""), map[string]string{"id": "o-2"})
		rec := httptest.NewRecorder()
		srv.handleTracking(rec, req)

		var resp trackingResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 100, resp.Progress)
		assert.False(t, resp.ShowSteps)
		assert.Empty(t, resp.Steps)
	})

	t.Run("NotFound", func(t *testing.T) {
		srv, m := newTestServer()
		m.orders.On("GetOrder", mock.Anything, "missing").Return(nil, order.ErrOrderNotFound)

		req := mux.SetURLVars(sessionRequest("GET", "/api/orders/missing/tracking", ""), map[string]string{"id": "missing"})
		rec := httptest.NewRecorder()
		srv.handleTracking(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleListVendors(t *testing.T) {
	srv, m := newTestServer()
	m.vendors.On("List", mock.Anything).Return(vendor.SampleVendors())

	req := sessionRequest("GET", "/api/vendors", "")
	rec := httptest.NewRecorder()
	srv.handleListVendors(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Vendors []vendor.Vendor `json:"vendors"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Vendors, 30)
}

func TestSessionMiddleware(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = utils.GetSessionIDFromContext(r.Context())
	})

	t.Run("IssuesCookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cart", nil)
		rec := httptest.NewRecorder()

		SessionMiddleware(next).ServeHTTP(rec, req)

		assert.NotEmpty(t, captured)

		cookies := rec.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, sessionCookie, cookies[0].Name)
		assert.Equal(t, captured, cookies[0].Value)
	})

	t.Run("ReusesCookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cart", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "existing"})
		rec := httptest.NewRecorder()

		SessionMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, "existing", captured)
		assert.Empty(t, rec.Result().Cookies())
	})
}
