// internal/server/routes.go
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter собирает HTTP-поверхность: здоровье, снапшот по запросу
// и websocket-апгрейд для команд и рассылки состояния.
func NewRouter(hub *Hub, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(10 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Снапшот по требованию: внешний инструмент сам решает, писать ли его
	// на диск. Ядро файлов не трогает.
	r.Get("/snapshot", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(hub.Snapshot()); err != nil {
			log.Warn().Err(err).Msg("snapshot encode failed")
		}
	})

	r.Get("/ws", hub.HandleWS)

	return r
}
