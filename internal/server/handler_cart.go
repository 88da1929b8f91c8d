package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"agriconnect-be/internal/cart"
	"agriconnect-be/internal/utils"
)

type cartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) sessionID(r *http.Request) string {
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())
	return sessionID
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	view, err := s.carts.Get(r.Context(), s.sessionID(r))
	if err != nil {
		utils.WriteJSONError(w, "failed to get cart", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, view)
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		utils.WriteJSONError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	ack, err := s.carts.AddItem(r.Context(), s.sessionID(r), req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrProductNotFound):
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, cart.ErrOutOfStock):
			utils.WriteJSONError(w, err.Error(), http.StatusConflict)
		default:
			utils.WriteJSONError(w, "failed to add to cart", http.StatusInternalServerError)
		}
		return
	}

	view, _ := s.carts.Get(r.Context(), s.sessionID(r))
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": ack,
		"cart":    view,
	})
}

func (s *Server) handleSetCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		utils.WriteJSONError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	if err := s.carts.SetQuantity(r.Context(), s.sessionID(r), req.ProductID, req.Quantity); err != nil {
		utils.WriteJSONError(w, "failed to update cart", http.StatusInternalServerError)
		return
	}

	view, _ := s.carts.Get(r.Context(), s.sessionID(r))
	utils.WriteJSON(w, http.StatusOK, view)
}

// handleRemoveFromCart removes one product when product_id is given, or
// clears the whole cart when it is not.
func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")

	var err error
	if productID != "" {
		err = s.carts.RemoveItem(r.Context(), s.sessionID(r), productID)
	} else {
		err = s.carts.Clear(r.Context(), s.sessionID(r))
	}
	if err != nil {
		utils.WriteJSONError(w, "failed to update cart", http.StatusInternalServerError)
		return
	}

	view, _ := s.carts.Get(r.Context(), s.sessionID(r))
	utils.WriteJSON(w, http.StatusOK, view)
}
