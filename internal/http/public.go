package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"tolujohn-backend-go/internal/models"
	"tolujohn-backend-go/internal/store"

	"golang.org/x/sync/errgroup"
)

// HomePayload aggregates everything the landing page renders in one request.
type HomePayload struct {
	Hero        *models.HeroHighlight `json:"hero"`
	About       *models.About         `json:"about"`
	TourDates   []models.TourDate     `json:"tourDates"`
	LatestVideo *models.Video         `json:"latestVideo"`
	Music       []models.Track        `json:"music"`
	Merch       []models.MerchItem    `json:"merch"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

func ignoreNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// HomeContent runs the independent lookups concurrently, then applies the
// featured-content fallbacks: the most recent video when none is featured,
// the six most recent tracks when none are featured. Missing content is
// never an error here.
func (s *Server) HomeContent(w http.ResponseWriter, r *http.Request) {
	var payload HomePayload
	now := time.Now()

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		hero, err := s.Store.LatestHero(ctx)
		payload.Hero = hero
		return ignoreNotFound(err)
	})
	g.Go(func() error {
		about, err := s.Store.LatestAbout(ctx)
		payload.About = about
		return ignoreNotFound(err)
	})
	g.Go(func() error {
		tours, err := s.Store.ListTours(ctx, &now, 6)
		payload.TourDates = tours
		return err
	})
	g.Go(func() error {
		video, err := s.Store.FeaturedVideo(ctx)
		payload.LatestVideo = video
		return ignoreNotFound(err)
	})
	g.Go(func() error {
		tracks, err := s.Store.ListTracks(ctx, true, 6)
		payload.Music = tracks
		return err
	})
	g.Go(func() error {
		merch, err := s.Store.ListMerch(ctx, 4)
		payload.Merch = merch
		return err
	})
	if err := g.Wait(); err != nil {
		s.Error(w, r, err)
		return
	}

	if payload.LatestVideo == nil {
		video, err := s.Store.LatestVideo(r.Context())
		if err := ignoreNotFound(err); err != nil {
			s.Error(w, r, err)
			return
		}
		payload.LatestVideo = video
	}
	if len(payload.Music) == 0 {
		tracks, err := s.Store.ListTracks(r.Context(), false, 6)
		if err != nil {
			s.Error(w, r, err)
			return
		}
		payload.Music = tracks
	}

	WriteData(w, http.StatusOK, payload)
}

func (s *Server) Music(w http.ResponseWriter, r *http.Request) {
	tracks, err := s.Store.ListTracks(r.Context(), false, 0)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, tracks)
}

func (s *Server) Videos(w http.ResponseWriter, r *http.Request) {
	videos, err := s.Store.ListVideos(r.Context(), 0)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, videos)
}

func (s *Server) TourDates(w http.ResponseWriter, r *http.Request) {
	var from *time.Time
	if r.URL.Query().Get("includePast") == "" {
		now := time.Now()
		from = &now
	}
	tours, err := s.Store.ListTours(r.Context(), from, 0)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, tours)
}

func (s *Server) Merch(w http.ResponseWriter, r *http.Request) {
	merch, err := s.Store.ListMerch(r.Context(), 0)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, merch)
}

// Subscribe is idempotent on email: repeats succeed without inserting a
// second row.
func (s *Server) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if !s.bind(w, r, &req) {
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	_, err := s.Store.SubscriberByEmail(r.Context(), email)
	if err == nil {
		WriteMessage(w, http.StatusOK, "You are already subscribed. Thank you!")
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		s.Error(w, r, err)
		return
	}
	sub := models.Subscriber{Email: email, Source: "website"}
	if err := s.Store.InsertSubscriber(r.Context(), &sub); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteMessage(w, http.StatusCreated, "Thank you for subscribing!")
}

func (s *Server) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !s.bind(w, r, &req) {
		return
	}
	msg := models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Message: req.Message,
		Status:  models.MessageStatusNew,
	}
	if err := s.Store.InsertMessage(r.Context(), &msg); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteMessage(w, http.StatusCreated, "Thank you for reaching out. A member of the team will be in touch soon.")
}
