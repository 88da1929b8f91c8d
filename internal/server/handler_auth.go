package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"agriconnect-be/internal/user"
	"agriconnect-be/internal/utils"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := s.users.Register(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingFields):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, user.ErrEmailExists):
			utils.WriteJSONError(w, err.Error(), http.StatusConflict)
		default:
			utils.WriteJSONError(w, "failed to register", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, authResponse{
		Token: token,
		User:  userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)},
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
			return
		}
		utils.WriteJSONError(w, "failed to log in", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, authResponse{
		Token: token,
		User:  userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)},
	})
}
