package www

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mescore/store"
)

func (h *Handlers) jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (h *Handlers) jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}

func (h *Handlers) jsonMessage(w http.ResponseWriter, msg string) {
	h.jsonOK(w, map[string]string{"message": msg})
}

// resource carries the client-facing messages for one collection.
type resource struct {
	notFound string
	conflict string
	deleted  string
}

var (
	orderResource   = resource{"Production order not found", "Order number already exists", "Production order deleted"}
	stationResource = resource{"Workstation not found", "Workstation name already exists", "Workstation deleted"}
	checkResource   = resource{"Quality check not found", "Quality check already exists", "Quality check deleted"}
)

// writeError maps an engine or store error onto a status code.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error, res resource) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		h.jsonError(w, ve.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, store.ErrNotFound):
		h.jsonError(w, res.notFound, http.StatusNotFound)
	case errors.Is(err, store.ErrConflict):
		h.jsonError(w, res.conflict, http.StatusConflict)
	default:
		log.Printf("www: %s %s [%s]: %v", r.Method, r.URL.Path, middleware.GetReqID(r.Context()), err)
		h.jsonError(w, "internal server error", http.StatusInternalServerError)
	}
}

// urlID parses the {id} path parameter.
func urlID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: "id", Msg: fmt.Sprintf("invalid integer %q", raw)}
	}
	return id, nil
}

// decodeBody reads a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ValidationError{Field: "body", Msg: err.Error()}
	}
	return nil
}
