package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aligreat689-stack/Retlcommerce-Final/internal/relay"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/store"
)

// Handler serves the site API on top of the state store. All mutations
// go through the store's operation set; the notifier is the detached
// best-effort lead relay.
type Handler struct {
	store       *store.Store
	notifier    *relay.Notifier
	jwtSecret   []byte
	recoveryKey string
}

func New(st *store.Store, notifier *relay.Notifier, jwtSecret []byte, recoveryKey string) *Handler {
	return &Handler{
		store:       st,
		notifier:    notifier,
		jwtSecret:   jwtSecret,
		recoveryKey: recoveryKey,
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return false
	}
	return true
}
