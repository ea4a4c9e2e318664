package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketx/internal/domain"
)

type AuthHandler struct {
	svc domain.AuthService
}

func NewAuthHandler(svc domain.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	if err := h.svc.Register(r.Context(), req); err != nil {
		JSONError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	JSONMessage(w, http.StatusOK, "User registered successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.svc.Login(r.Context(), req)
	if err != nil {
		// One message for unknown email and wrong password, so a caller
		// cannot probe which addresses are registered.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			JSONMessage(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		JSONError(w, http.StatusInternalServerError, "Server error")
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   res.AccessToken,
		"user":    res.User,
	})
}
