package server

import (
	"errors"
	"net/http"

	"agriconnect-be/internal/product"
	"agriconnect-be/internal/utils"

	"github.com/gorilla/mux"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.List(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to list products", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := s.products.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to get product", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	vendors := s.vendors.List(r.Context())
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"vendors": vendors})
}
