package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/graceware/prayerdeck/internal/scripture"
	"github.com/graceware/prayerdeck/internal/service"
)

type Server struct {
	mx         *chi.Mux
	deck       *service.Deck
	jwtService JWTServiceI
	scripture  scripture.ClientI
}

type ServicesList struct {
	Deck       *service.Deck
	JwtService JWTServiceI
	Scripture  scripture.ClientI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:         chi.NewMux(),
		deck:       servicesOptions.Deck,
		jwtService: servicesOptions.JwtService,
		scripture:  servicesOptions.Scripture,
	}
}

func (s *Server) Run(address string) error {
	s.registerRoutes()
	return http.ListenAndServe(address, s.mx)
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.MetricsMiddleware)

	s.mx.Get("/healthz", s.Healthz)
	s.mx.Handle("/metrics", promhttp.Handler())

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.OptionalAuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)

		r.Get("/categories", s.GetCategories)
		r.Post("/categories", s.CreateCategory)

		r.Get("/prayer-cards", s.GetCards)
		r.Get("/prayer-cards/due", s.GetDueCards)
		r.Post("/prayer-cards", s.CreateCard)
		r.Get("/prayer-cards/{id}", s.GetCard)
		r.Put("/prayer-cards/{id}", s.UpdateCard)
		r.Delete("/prayer-cards/{id}", s.DeleteCard)

		r.Get("/prayer-cards/{id}/requests", s.GetRequests)
		r.Post("/prayer-cards/{id}/requests", s.CreateRequest)
		r.Put("/prayer-requests/{id}", s.UpdateRequest)
		r.Post("/prayer-requests/{id}/archive", s.ArchiveRequest)
		r.Delete("/prayer-requests/{id}", s.DeleteRequest)

		r.Post("/prayer-cards/{id}/pray", s.MarkPrayed)
		r.Post("/prayer-cards/{id}/undo", s.UndoPrayer)
		r.Get("/prayer-cards/{id}/prayed-today", s.HasPrayedToday)
		r.Post("/prayer-cards/status", s.BatchStatus)
		r.Get("/stats", s.GetStats)

		r.Get("/reminder-settings", s.GetReminderSettings)
		r.Put("/reminder-settings", s.UpdateReminderSettings)

		r.Get("/scripture/search", s.SearchScripture)
		r.Get("/scripture/text", s.GetScriptureText)

		r.Post("/transfer", s.TransferGuestData)
	})
}

// Mux exposes the router for handler tests.
func (s *Server) Mux() *chi.Mux {
	s.registerRoutes()
	return s.mx
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
