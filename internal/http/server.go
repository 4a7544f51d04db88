package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"tolujohn-backend-go/internal/config"
	"tolujohn-backend-go/internal/services"
	"tolujohn-backend-go/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
)

type Server struct {
	Store  store.Store
	Config config.Config
	Tokens services.TokenService
	Log    zerolog.Logger
}

func NewServer(st store.Store, cfg config.Config, log zerolog.Logger) *Server {
	return &Server{
		Store:  st,
		Config: cfg,
		Tokens: services.TokenService{
			Secret: []byte(cfg.JWTSecret),
			TTL:    cfg.TokenTTL(),
		},
		Log: log,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(s.Log))

	corsOptions := cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}
	if len(s.Config.AllowedOrigins) > 0 {
		corsOptions.AllowedOrigins = s.Config.AllowedOrigins
		corsOptions.AllowCredentials = true
	} else {
		corsOptions.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOptions))

	r.Get("/healthz", s.Health)

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/login", s.Login)
			auth.Group(func(me chi.Router) {
				me.Use(s.RequireAdmin)
				me.Get("/me", s.Profile)
				me.Put("/me", s.UpdateProfile)
			})
		})

		api.Route("/public", func(pub chi.Router) {
			pub.Get("/home", s.HomeContent)
			pub.Get("/music", s.Music)
			pub.Get("/videos", s.Videos)
			pub.Get("/tour-dates", s.TourDates)
			pub.Get("/merch", s.Merch)

			// Unauthenticated writes get per-IP throttling.
			pub.Group(func(writes chi.Router) {
				writes.Use(httprate.LimitByIP(10, time.Minute))
				writes.Post("/subscribe", s.Subscribe)
				writes.Post("/contact", s.SubmitContactMessage)
			})
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(s.RequireAdmin)
			admin.Get("/dashboard", s.DashboardSummary)

			admin.Get("/hero", s.GetHero)
			admin.Put("/hero", s.PutHero)
			admin.Get("/about", s.GetAbout)
			admin.Put("/about", s.PutAbout)

			admin.Get("/tracks", s.AdminListTracks)
			admin.Post("/tracks", s.CreateTrack)
			admin.Put("/tracks/{id}", s.UpdateTrack)
			admin.Delete("/tracks/{id}", s.DeleteTrack)

			admin.Get("/videos", s.AdminListVideos)
			admin.Post("/videos", s.CreateVideo)
			admin.Put("/videos/{id}", s.UpdateVideo)
			admin.Delete("/videos/{id}", s.DeleteVideo)

			admin.Get("/tours", s.AdminListTours)
			admin.Post("/tours", s.CreateTour)
			admin.Put("/tours/{id}", s.UpdateTour)
			admin.Delete("/tours/{id}", s.DeleteTour)

			admin.Get("/merch", s.AdminListMerch)
			admin.Post("/merch", s.CreateMerch)
			admin.Put("/merch/{id}", s.UpdateMerch)
			admin.Delete("/merch/{id}", s.DeleteMerch)

			admin.Get("/subscribers", s.ListSubscribers)
			admin.Get("/messages", s.ListContactMessages)
			admin.Put("/messages/{id}/status", s.UpdateContactStatus)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusNotFound, Envelope{Message: fmt.Sprintf("Not Found - %s", r.URL.Path)})
	})

	return r
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
