// Package web implementa el front-end web de MatePR: un formulario mínimo
// que dispara el mismo pipeline de resumen que usa la CLI.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mate-labs/matepr/internal/i18n"
	"github.com/mate-labs/matepr/internal/services"
)

// SummaryPipeline arma el servicio de resumen para un repo y proveedor dados.
// El contenedor de dependencias la satisface.
type SummaryPipeline interface {
	CreateSummaryService(ctx context.Context, repo, provider string, opts ...services.SummaryOption) (*services.SummaryService, error)
}

// Server atiende el formulario y la API JSON del front-end.
type Server struct {
	pipeline     SummaryPipeline
	translations *i18n.Translations
	version      string
	httpServer   *http.Server
}

// NewServer crea el servidor escuchando en el puerto indicado.
func NewServer(pipeline SummaryPipeline, translations *i18n.Translations, port int, version string) *Server {
	s := &Server{
		pipeline:     pipeline,
		translations: translations,
		version:      version,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /summarize", s.handleSummarize)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// Handler expone el router. Los tests lo montan sobre httptest.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run levanta el servidor y lo apaga de forma ordenada cuando el contexto se
// cancela. El drenaje de conexiones tiene un tope de 5 segundos.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
