package httpapi

import (
	"errors"
	"net/http"
	"time"

	"tolujohn-backend-go/internal/models"
	"tolujohn-backend-go/internal/store"
)

type DashboardSummary struct {
	Tracks        int64 `json:"tracks"`
	Videos        int64 `json:"videos"`
	UpcomingTours int64 `json:"upcomingTours"`
	Subscribers   int64 `json:"subscribers"`
	NewMessages   int64 `json:"newMessages"`
}

type HeroRequest struct {
	SongTitle       string                `json:"songTitle" validate:"required"`
	Tagline         string                `json:"tagline" validate:"required"`
	Description     *string               `json:"description"`
	CtaLabel        *string               `json:"ctaLabel"`
	CtaURL          string                `json:"ctaUrl" validate:"required,url"`
	BackgroundImage *string               `json:"backgroundImage"`
	ReleaseDate     *string               `json:"releaseDate" validate:"omitempty,isodate"`
	AudioPreviewURL *string               `json:"audioPreviewUrl"`
	Platforms       []models.PlatformLink `json:"platforms" validate:"omitempty,dive"`
}

type AboutRequest struct {
	Heading       string               `json:"heading" validate:"required"`
	Subheading    *string              `json:"subheading"`
	Content       string               `json:"content" validate:"required"`
	Achievements  []models.Achievement `json:"achievements" validate:"omitempty,dive"`
	FeaturedImage *string              `json:"featuredImage"`
	Quote         *models.Quote        `json:"quote"`
}

// DashboardSummary reports five independent entity counts; no joins.
func (s *Server) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := time.Now()
	var summary DashboardSummary
	var err error
	if summary.Tracks, err = s.Store.CountTracks(ctx); err != nil {
		s.Error(w, r, err)
		return
	}
	if summary.Videos, err = s.Store.CountVideos(ctx); err != nil {
		s.Error(w, r, err)
		return
	}
	if summary.UpcomingTours, err = s.Store.CountUpcomingTours(ctx, now); err != nil {
		s.Error(w, r, err)
		return
	}
	if summary.Subscribers, err = s.Store.CountSubscribers(ctx); err != nil {
		s.Error(w, r, err)
		return
	}
	if summary.NewMessages, err = s.Store.CountNewMessages(ctx); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, summary)
}

func (s *Server) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, err := s.Store.LatestHero(r.Context())
	if err := ignoreNotFound(err); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, hero)
}

func (hr HeroRequest) apply(hero *models.HeroHighlight) {
	hero.SongTitle = hr.SongTitle
	hero.Tagline = hr.Tagline
	hero.CtaURL = hr.CtaURL
	setString(&hero.Description, hr.Description)
	setString(&hero.CtaLabel, hr.CtaLabel)
	setString(&hero.BackgroundImage, hr.BackgroundImage)
	setString(&hero.AudioPreviewURL, hr.AudioPreviewURL)
	if hr.ReleaseDate != nil {
		hero.ReleaseDate = parseDatePtr(hr.ReleaseDate)
	}
	if hr.Platforms != nil {
		hero.Platforms = hr.Platforms
	}
}

// PutHero is the upsert-by-convention write: merge into the most recently
// modified row, or create the first one. Two concurrent first-time writes
// can both insert; that matches the original behavior.
func (s *Server) PutHero(w http.ResponseWriter, r *http.Request) {
	var req HeroRequest
	if !s.bind(w, r, &req) {
		return
	}
	hero, err := s.Store.LatestHero(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		created := models.HeroHighlight{
			CtaLabel:  "Listen Now",
			Platforms: []models.PlatformLink{},
		}
		req.apply(&created)
		if err := s.Store.InsertHero(r.Context(), &created); err != nil {
			s.Error(w, r, err)
			return
		}
		WriteData(w, http.StatusCreated, created)
		return
	}
	if err != nil {
		s.Error(w, r, err)
		return
	}
	req.apply(hero)
	if err := s.Store.SaveHero(r.Context(), hero); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, hero)
}

func (s *Server) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := s.Store.LatestAbout(r.Context())
	if err := ignoreNotFound(err); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, about)
}

func (ar AboutRequest) apply(about *models.About) {
	about.Heading = ar.Heading
	about.Content = ar.Content
	setString(&about.Subheading, ar.Subheading)
	setString(&about.FeaturedImage, ar.FeaturedImage)
	if ar.Achievements != nil {
		about.Achievements = ar.Achievements
	}
	if ar.Quote != nil {
		about.Quote = *ar.Quote
	}
}

func (s *Server) PutAbout(w http.ResponseWriter, r *http.Request) {
	var req AboutRequest
	if !s.bind(w, r, &req) {
		return
	}
	about, err := s.Store.LatestAbout(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		created := models.About{Achievements: []models.Achievement{}}
		req.apply(&created)
		if err := s.Store.InsertAbout(r.Context(), &created); err != nil {
			s.Error(w, r, err)
			return
		}
		WriteData(w, http.StatusCreated, created)
		return
	}
	if err != nil {
		s.Error(w, r, err)
		return
	}
	req.apply(about)
	if err := s.Store.SaveAbout(r.Context(), about); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, about)
}
