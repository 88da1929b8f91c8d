package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"agriconnect-be/internal/order"
	"agriconnect-be/internal/tracking"
	"agriconnect-be/internal/utils"

	"github.com/gorilla/mux"
)

type checkoutRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	DeliveryTime *string `json:"delivery_time,omitempty"`
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := s.orders.PlaceOrder(r.Context(), order.PlaceOrderParams{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		DeliveryTime: req.DeliveryTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUserNotAuthenticated):
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, order.ErrCartEmpty), errors.Is(err, order.ErrMissingCheckoutFields):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			utils.WriteJSONError(w, "failed to place order", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, o)
}

func (s *Server) handleGetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.GetOrders(r.Context())
	if err != nil {
		if errors.Is(err, order.ErrUserNotAuthenticated) {
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		utils.WriteJSONError(w, "failed to get orders", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// historyFilter translates query parameters into an order.Filter. Dates
// use the 2006-01-02 form; unparseable values are ignored.
func historyFilter(r *http.Request) order.Filter {
	q := r.URL.Query()
	f := order.Filter{
		Search: q.Get("search"),
		Status: order.Status(q.Get("status")),
		SortBy: order.SortField(q.Get("sort_by")),
	}

	if v := q.Get("date_from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.DateFrom = &t
		}
	}
	if v := q.Get("date_to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.DateTo = &t
		}
	}
	if v := q.Get("min_amount"); v != "" {
		if amt, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinAmount = &amt
		}
	}
	if v := q.Get("max_amount"); v != "" {
		if amt, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxAmount = &amt
		}
	}
	if f.SortBy == "" {
		f.SortBy = order.SortByDate
	}
	f.Ascending = q.Get("order") == "asc"

	return f
}

func (s *Server) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.GetOrders(r.Context())
	if err != nil {
		if errors.Is(err, order.ErrUserNotAuthenticated) {
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		utils.WriteJSONError(w, "failed to get orders", http.StatusInternalServerError)
		return
	}

	filtered := order.ApplyFilter(orders, historyFilter(r))

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"orders": filtered,
		"stats":  order.Summarize(filtered),
	})
}

func (s *Server) handleExportHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.GetOrders(r.Context())
	if err != nil {
		if errors.Is(err, order.ErrUserNotAuthenticated) {
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		utils.WriteJSONError(w, "failed to get orders", http.StatusInternalServerError)
		return
	}

	filtered := order.ApplyFilter(orders, historyFilter(r))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+order.ExportFilename(time.Now())+`"`)

	if err := order.WriteCSV(w, filtered); err != nil {
		utils.WriteJSONError(w, "failed to export orders", http.StatusInternalServerError)
	}
}

type trackingResponse struct {
	OrderNumber string       `json:"order_number"`
	TrackingID  string       `json:"tracking_id"`
	Status      order.Status `json:"status"`
	Progress    int          `json:"progress"`
	ShowSteps   bool         `json:"show_steps"`
	Steps       []string     `json:"steps,omitempty"`
	CurrentStep int          `json:"current_step,omitempty"`
}

func (s *Server) handleTracking(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	o, err := s.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUserNotAuthenticated):
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
		case errors.Is(err, order.ErrOrderNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		default:
			utils.WriteJSONError(w, "failed to get order", http.StatusInternalServerError)
		}
		return
	}

	resp := trackingResponse{
		OrderNumber: o.OrderNumber,
		TrackingID:  o.TrackingID,
		Status:      o.Status,
		Progress:    tracking.Progress(o.Status),
		ShowSteps:   tracking.ShowsSteps(o.Status),
	}
	if resp.ShowSteps {
		resp.Steps = tracking.Steps
		resp.CurrentStep = s.simulator.Current()
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
