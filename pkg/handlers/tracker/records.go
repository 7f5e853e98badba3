package tracker

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/api"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ListCheckIns answers newest first. ?limit=n keeps the first n.
func (h *Handler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.fail(w, r, err, "failed to list check-ins")
		return
	}

	checkIns := h.app.Store.GetCheckIns(r.Context())
	if limit > 0 && len(checkIns) > limit {
		checkIns = checkIns[:limit]
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapCheckInsDomainToApi(checkIns))
}

func (h *Handler) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CheckInRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "failed to save check-in")
		return
	}

	checkIn, err := adapters.MapCheckInRequestApiToDomain(req, uuid.NewString(), h.now())
	if err != nil {
		h.fail(w, r, err, "failed to save check-in")
		return
	}
	if err := h.app.Store.SaveCheckIn(ctx, checkIn); err != nil {
		h.fail(w, r, err, "failed to save check-in")
		return
	}

	zerolog.Ctx(ctx).Info().Str("checkin", checkIn.ID).Msg("check-in saved")
	h.writeJSON(w, r, http.StatusCreated, adapters.MapCheckInDomainToApi(checkIn))
}

func (h *Handler) UpdateCheckIn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req api.CheckInPatch
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "failed to update check-in")
		return
	}
	patch, err := adapters.MapCheckInPatchApiToDomain(req)
	if err != nil {
		h.fail(w, r, err, "failed to update check-in")
		return
	}

	updated, found, err := h.app.Store.UpdateCheckIn(r.Context(), id, patch)
	if err != nil {
		h.fail(w, r, err, "failed to update check-in")
		return
	}
	if !found {
		h.fail(w, r, fmt.Errorf("%w: check-in %s", errNotFound, id), "failed to update check-in")
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapCheckInDomainToApi(updated))
}

func (h *Handler) DeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Store.DeleteCheckIn(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err, "failed to delete check-in")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.fail(w, r, err, "failed to list events")
		return
	}

	events := h.app.Store.GetEvents(r.Context())
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapEventsDomainToApi(events))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.EventRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "failed to save event")
		return
	}

	event := adapters.MapEventRequestApiToDomain(req, uuid.NewString(), h.now())
	if err := h.app.Store.SaveEvent(ctx, event); err != nil {
		h.fail(w, r, err, "failed to save event")
		return
	}

	zerolog.Ctx(ctx).Info().Str("event", event.ID).Str("type", string(event.Type)).Msg("event saved")
	h.writeJSON(w, r, http.StatusCreated, adapters.MapEventDomainToApi(event))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Store.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err, "failed to delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, adapters.MapSettingsDomainToApi(h.app.Store.GetSettings(r.Context())))
}

func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var req api.Settings
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "failed to save settings")
		return
	}

	settings := adapters.MapSettingsApiToDomain(req)
	if err := h.app.Store.SaveSettings(r.Context(), settings); err != nil {
		h.fail(w, r, err, "failed to save settings")
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapSettingsDomainToApi(settings))
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", errBadRequest, name)
	}
	return v, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", errBadRequest, name)
	}
	return v, nil
}
