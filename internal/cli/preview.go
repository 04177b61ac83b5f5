package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/diagraph/diagraph/pkg/config"
	apperrors "github.com/diagraph/diagraph/pkg/errors"
	"github.com/diagraph/diagraph/pkg/manifest"
	"github.com/diagraph/diagraph/pkg/render"
	"github.com/diagraph/diagraph/pkg/render/dot"
)

// newPreviewCmd creates the preview command: a local HTTP server that
// re-renders the manifest on every request, so editing the file and
// reloading the browser shows the current diagram.
func newPreviewCmd(cfg config.Config) *cobra.Command {
	var (
		addr      string
		direction string
	)

	cmd := &cobra.Command{
		Use:   "preview [manifest.yaml]",
		Short: "Serve a live-rendered view of a manifest over HTTP",
		Long: `Serve a live-rendered view of a manifest over HTTP.

The server renders the manifest fresh on every request - edit the file and
reload the browser to see changes. Rendering happens per request, so no
cache is involved and errors show up in the page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), args[0], addr, direction)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7878", "listen address")
	cmd.Flags().StringVarP(&direction, "direction", "d", cfg.Direction, "layout direction override (TB, LR, BT, RL)")

	return cmd
}

func runPreview(ctx context.Context, manifestPath, addr, direction string) error {
	logger := loggerFromContext(ctx)

	// Render once up front so configuration errors fail fast instead of
	// surfacing on the first page load.
	if _, err := renderManifestSVG(ctx, manifestPath, direction); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, previewPage, manifestPath)
	})

	r.Get("/diagram.svg", func(w http.ResponseWriter, req *http.Request) {
		svg, err := renderManifestSVG(req.Context(), manifestPath, direction)
		if err != nil {
			logger.Errorf("Render failed: %v", err)
			status := http.StatusInternalServerError
			if apperrors.Is(err, apperrors.ErrCodeInvalidManifest) {
				status = http.StatusUnprocessableEntity
			}
			http.Error(w, apperrors.UserMessage(err), status)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(svg)
	})

	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Previewing %s at http://%s", manifestPath, addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// renderManifestSVG loads, builds, and lays out the manifest.
func renderManifestSVG(ctx context.Context, manifestPath, direction string) ([]byte, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	if direction != "" {
		m.Direction = direction
	}
	d, err := m.Build()
	if err != nil {
		return nil, err
	}
	return render.SVG(ctx, dot.Marshal(d))
}

const previewPage = `<!DOCTYPE html>
<html>
<head>
<title>diagraph preview</title>
<style>
  body { margin: 2rem; font-family: sans-serif; background: #fafafa; }
  header { color: #555; margin-bottom: 1rem; }
  img { max-width: 100%%; background: white; border: 1px solid #ddd; }
</style>
</head>
<body>
<header>Previewing <code>%s</code> - edit the manifest and reload.</header>
<img src="/diagram.svg" alt="diagram">
</body>
</html>
`
