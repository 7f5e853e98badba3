package tracker

import (
	"fmt"
	"io"
	"net/http"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/api"
	"github.com/de-tools/wakestate/pkg/store/collections"
	"github.com/rs/zerolog"
)

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	data, err := h.app.Store.ExportAllData(r.Context(), now)
	if err != nil {
		h.fail(w, r, err, "failed to export data")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", collections.ExportFilename(now)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	csv := collections.ExportToCSV(h.app.Store.GetCheckIns(r.Context()))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", collections.CSVFilename(h.now())))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, csv)
}

// Import takes an export document as the request body.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.fail(w, r, fmt.Errorf("%w: %v", errBadRequest, err), "failed to import data")
		return
	}

	result, err := h.app.Store.ImportData(ctx, body)
	if err != nil {
		h.fail(w, r, err, "failed to import data")
		return
	}
	h.writeJSON(w, r, http.StatusOK, api.ImportResult{
		CheckIns: result.CheckIns,
		Events:   result.Events,
	})
}

// ListBackups answers the most recent backup runs, ?limit (default 20).
func (h *Handler) ListBackups(w http.ResponseWriter, r *http.Request) {
	if h.app.Backups == nil {
		h.fail(w, r, fmt.Errorf("backups are %w", errDisabled), "failed to list backups")
		return
	}
	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		h.fail(w, r, err, "failed to list backups")
		return
	}

	runs, err := h.app.Backups.History(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err, "failed to list backups")
		return
	}
	out := make([]api.BackupRun, 0, len(runs))
	for _, run := range runs {
		out = append(out, adapters.MapBackupRunStoreToApi(run))
	}
	h.writeJSON(w, r, http.StatusOK, out)
}

// RunBackup archives an export right away, outside the schedule.
func (h *Handler) RunBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.app.Backups == nil {
		h.fail(w, r, fmt.Errorf("backups are %w", errDisabled), "backup failed")
		return
	}

	run, err := h.app.Backups.RunNow(ctx)
	if err != nil {
		h.fail(w, r, err, "backup failed")
		return
	}
	zerolog.Ctx(ctx).Info().Str("run", run.ID).Msg("backup archived")
	h.writeJSON(w, r, http.StatusCreated, adapters.MapBackupRunStoreToApi(run))
}
