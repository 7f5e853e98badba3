package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/wakestate/pkg/handlers/tracker"
	"github.com/de-tools/wakestate/pkg/runtime/app"

	wakestatemiddleware "github.com/de-tools/wakestate/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          http.Handler
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	App *app.App
	// Now stamps new records and anchors reports. Defaults to time.Now.
	Now func() time.Time
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: timeout,
	}
}

// ConfigureRouter mounts every tracker route under /api/v1.
func ConfigureRouter(logger zerolog.Logger, config Config) http.Handler {
	h := handlers.NewHandler(config.Dependencies.App, config.Dependencies.Now)

	router := chi.NewRouter()

	router.Use(wakestatemiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/checkins", h.ListCheckIns)
		r.Post("/checkins", h.CreateCheckIn)
		r.Patch("/checkins/{id}", h.UpdateCheckIn)
		r.Delete("/checkins/{id}", h.DeleteCheckIn)

		r.Get("/events", h.ListEvents)
		r.Post("/events", h.CreateEvent)
		r.Delete("/events/{id}", h.DeleteEvent)

		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.PutSettings)

		r.Route("/medications", func(r chi.Router) {
			r.Get("/config", h.GetMedicationConfig)
			r.Put("/config", h.PutMedicationConfig)
			r.Get("/entries", h.ListMedicationEntries)
			r.Put("/entries", h.PutMedicationEntry)
			r.Delete("/entries/{id}", h.DeleteMedicationEntry)
			r.Get("/today", h.TodayDoses)
			r.Get("/administrations", h.ListAdministrations)
			r.Post("/administrations/{id}/undo", h.UndoAdministration)
			r.Delete("/administrations/{id}", h.DeleteAdministration)
			r.Post("/{medicationID}/taken", h.LogTaken)
		})

		r.Get("/export", h.Export)
		r.Get("/export/csv", h.ExportCSV)
		r.Post("/import", h.Import)

		r.Get("/reports/{kind}", h.GetReport)
		r.Get("/trends", h.GetTrends)

		r.Get("/backups", h.ListBackups)
		r.Post("/backups", h.RunBackup)
	})

	return router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
