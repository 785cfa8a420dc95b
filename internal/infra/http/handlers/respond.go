package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/crm-backend/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps usecase errors onto the HTTP taxonomy. DomainError and
// TechnicalError messages are safe to surface; anything else is logged and
// replaced with the route's generic message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	if de, ok := err.(*usecase.DomainError); ok {
		writeMessage(w, statusForCode(de.Code), de.Message)
		return
	}
	if te, ok := err.(*usecase.TechnicalError); ok {
		log.Printf("configuration error: %s", te.Message)
		writeMessage(w, http.StatusInternalServerError, te.Message)
		return
	}

	log.Printf("%s: %v", fallback, err)
	writeMessage(w, http.StatusInternalServerError, fallback)
}

func statusForCode(code string) int {
	switch code {
	case "credentials_required":
		return http.StatusBadRequest
	case "invalid_credentials":
		return http.StatusUnauthorized
	case "lead_not_found":
		return http.StatusNotFound
	case "email_taken":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
