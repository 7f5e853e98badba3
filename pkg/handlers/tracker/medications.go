package tracker

import (
	"fmt"
	"net/http"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/api"
	"github.com/de-tools/wakestate/pkg/services/medication"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetMedicationConfig(w http.ResponseWriter, r *http.Request) {
	cfg := adapters.MapMedicationConfigDomainToApi(h.app.Store.GetMedicationConfig(r.Context()))
	if cfg == nil {
		cfg = &api.MedicationConfig{Regimen: []api.MedicationRegimen{}}
	}
	h.writeJSON(w, r, http.StatusOK, cfg)
}

// PutMedicationConfig replaces the regimen and marks medications as
// configured.
func (h *Handler) PutMedicationConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.MedicationConfig
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "failed to save medication config")
		return
	}
	req.IsConfigured = true
	req.LastUpdated = h.now()

	if err := h.app.Store.SaveMedicationConfig(ctx, adapters.MapMedicationConfigApiToDomain(req)); err != nil {
		h.fail(w, r, err, "failed to save medication config")
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapMedicationConfigDomainToApi(h.app.Store.GetMedicationConfig(ctx)))
}

func (h *Handler) ListMedicationEntries(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, adapters.MapMedicationEntriesDomainToApi(h.app.Store.GetUserMedications(r.Context())))
}

// PutMedicationEntry inserts or replaces one entry keyed by its id.
func (h *Handler) PutMedicationEntry(w http.ResponseWriter, r *http.Request) {
	var req api.MedicationEntry
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err, "failed to save medication")
		return
	}
	req.LastUpdated = h.now()

	entry := adapters.MapMedicationEntryApiToDomain(req)
	if err := h.app.Store.SaveMedicationEntry(r.Context(), entry); err != nil {
		h.fail(w, r, err, "failed to save medication")
		return
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapMedicationEntryDomainToApi(entry))
}

func (h *Handler) DeleteMedicationEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Store.RemoveMedicationEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err, "failed to delete medication")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) TodayDoses(w http.ResponseWriter, r *http.Request) {
	statuses := h.app.Tracker.Today(r.Context(), h.now())
	out := make([]api.DoseStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, mapDoseStatus(s))
	}
	h.writeJSON(w, r, http.StatusOK, out)
}

// ListAdministrations answers newest first, filtered by ?medicationId.
func (h *Handler) ListAdministrations(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		h.fail(w, r, err, "failed to list doses")
		return
	}

	history := h.app.Tracker.History(r.Context(), r.URL.Query().Get("medicationId"))
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	h.writeJSON(w, r, http.StatusOK, adapters.MapAdministrationsDomainToApi(history))
}

func (h *Handler) LogTaken(w http.ResponseWriter, r *http.Request) {
	logged, err := h.app.Tracker.LogTaken(r.Context(), chi.URLParam(r, "medicationID"), h.now())
	if err != nil {
		h.fail(w, r, err, "failed to log dose")
		return
	}
	h.writeJSON(w, r, http.StatusCreated, api.LoggedDose{
		Administration: adapters.MapAdministrationDomainToApi(logged.Administration),
		UndoUntil:      logged.UndoUntil,
	})
}

// UndoAdministration removes a dose inside the undo window and answers 409
// once the window has passed.
func (h *Handler) UndoAdministration(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Tracker.Undo(r.Context(), chi.URLParam(r, "id"), h.now()); err != nil {
		h.fail(w, r, err, "failed to undo dose")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAdministration removes a dose regardless of its age.
func (h *Handler) DeleteAdministration(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.app.Store.RemoveMedicationAdministration(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "failed to delete dose")
		return
	}
	if !removed {
		h.fail(w, r, fmt.Errorf("%w: %s", medication.ErrNotFound, id), "failed to delete dose")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func mapDoseStatus(s medication.DoseStatus) api.DoseStatus {
	return api.DoseStatus{
		MedicationID: s.MedicationID,
		BrandName:    s.BrandName,
		GenericName:  s.GenericName,
		DefaultDose:  s.DefaultDose,
		Taken:        s.Taken,
		Target:       s.Target,
		Complete:     s.Complete,
		Doses:        adapters.MapAdministrationsDomainToApi(s.Doses),
	}
}
