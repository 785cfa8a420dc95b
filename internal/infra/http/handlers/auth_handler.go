package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/crm-backend/internal/infra/http/middleware"
	"github.com/xavierca1/crm-backend/internal/usecase"
)

type AuthHandler struct {
	LoginUC  *usecase.LoginUseCase
	SignupUC *usecase.SignupUseCase
}

func NewAuthHandler(loginUC *usecase.LoginUseCase, signupUC *usecase.SignupUseCase) *AuthHandler {
	return &AuthHandler{LoginUC: loginUC, SignupUC: signupUC}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in usecase.Credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	out, err := h.LoginUC.Execute(r.Context(), in)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			middleware.RecordLogin("rejected")
		} else {
			middleware.RecordLogin("error")
		}
		writeError(w, err, "Server error during login")
		return
	}

	middleware.RecordLogin("accepted")
	writeJSON(w, http.StatusOK, out)
}

func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var in usecase.Credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	out, err := h.SignupUC.Execute(r.Context(), in)
	if err != nil {
		writeError(w, err, "Server error during signup")
		return
	}

	writeJSON(w, http.StatusCreated, out)
}
