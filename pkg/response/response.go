// Package response holds the JSON helpers shared by every handler so the
// API speaks one error shape: {"error": "..."} for plain failures and
// {"error": [{"field","message"},...]} for validation failures.
package response

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/trynex/lifestyle-backend/models"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode failed: %v", err)
	}
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}

func ValidationFailed(w http.ResponseWriter, ve *models.ValidationError) {
	JSON(w, http.StatusBadRequest, map[string]any{"error": ve.Fields})
}
