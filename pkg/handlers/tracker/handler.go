package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/wakestate/pkg/models/api"
	"github.com/de-tools/wakestate/pkg/runtime/app"
	"github.com/de-tools/wakestate/pkg/services/medication"
	"github.com/de-tools/wakestate/pkg/services/report"
	"github.com/de-tools/wakestate/pkg/services/validation"
	"github.com/de-tools/wakestate/pkg/store/collections"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies, imports included.
const maxBodyBytes = 16 << 20

var (
	errBadRequest = errors.New("bad request")
	errNotFound   = errors.New("not found")
	errDisabled   = errors.New("not configured")
)

type Handler struct {
	app *app.App
	now func() time.Time
}

// NewHandler serves the tracker API from a. now defaults to time.Now.
func NewHandler(a *app.App, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		app: a,
		now: now,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}

// fail maps err onto a status code. Client errors echo err; server errors
// answer with msg and log the cause.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger := zerolog.Ctx(r.Context())

	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Msg(msg)
		h.writeJSON(w, r, status, api.Error{Error: msg})
		return
	}

	logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	h.writeJSON(w, r, status, api.Error{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, validation.ErrInvalid),
		errors.Is(err, collections.ErrImportFailed),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, medication.ErrNotFound),
		errors.Is(err, medication.ErrUnknownMedication),
		errors.Is(err, report.ErrUnknownKind),
		errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, medication.ErrUndoExpired):
		return http.StatusConflict
	case errors.Is(err, errDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", errBadRequest, err)
	}
	return nil
}
