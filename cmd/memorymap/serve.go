package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-memorymap/pkg/placemark"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rendered marker document over HTTP",
		Long: `Serve answers GET / with the rendered kml_url document and GET /healthz
with a liveness probe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.settings.KMLURL == "" {
				return errors.New("no document URL: set kml_url or pass --kml-url")
			}
			viewer, err := a.viewer()
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              a.settings.Listen,
				Handler:           newRouter(viewer, a.settings.KMLURL, a.logger),
				ReadHeaderTimeout: 5 * time.Second,
			}
			return serve(cmd.Context(), srv, a.logger)
		},
	}
	cmd.Flags().String("kml-url", "", "marker document to serve")
	cmd.Flags().String("listen", "", "listen address (default "+defaultListen+")")
	cmd.Flags().String("templates", "", "directory whose templates replace the built-in ones")
	return cmd
}

func newRouter(viewer *placemark.Viewer, kmlURL string, logger *log.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := viewer.Load(r.Context(), kmlURL, &buf); err != nil {
			logger.Printf("serve: [%s] %v", middleware.GetReqID(r.Context()), err)
			http.Error(w, "marker document unavailable", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	})
	return router
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *log.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on http://%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Printf("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
