package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tolujohn-backend-go/internal/models"
	"tolujohn-backend-go/internal/services"
	"tolujohn-backend-go/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrackCreateRequest struct {
	Title       string                `json:"title" validate:"required"`
	Description *string               `json:"description"`
	CoverImage  *string               `json:"coverImage"`
	AudioURL    *string               `json:"audioUrl"`
	ReleaseDate *string               `json:"releaseDate" validate:"omitempty,isodate"`
	IsFeatured  *bool                 `json:"isFeatured"`
	Platforms   []models.PlatformLink `json:"platforms" validate:"omitempty,dive"`
	Genres      []string              `json:"genres"`
	Mood        *string               `json:"mood"`
}

type TrackUpdateRequest struct {
	Title       *string               `json:"title" validate:"omitempty,min=1"`
	Description *string               `json:"description"`
	CoverImage  *string               `json:"coverImage"`
	AudioURL    *string               `json:"audioUrl"`
	ReleaseDate *string               `json:"releaseDate" validate:"omitempty,isodate"`
	IsFeatured  *bool                 `json:"isFeatured"`
	Platforms   []models.PlatformLink `json:"platforms" validate:"omitempty,dive"`
	Genres      []string              `json:"genres"`
	Mood        *string               `json:"mood"`
}

type VideoCreateRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	VideoURL     string  `json:"videoUrl" validate:"required,url"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	ReleaseDate  *string `json:"releaseDate" validate:"omitempty,isodate"`
	IsFeatured   *bool   `json:"isFeatured"`
}

type VideoUpdateRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	VideoURL     *string `json:"videoUrl" validate:"omitempty,url"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	ReleaseDate  *string `json:"releaseDate" validate:"omitempty,isodate"`
	IsFeatured   *bool   `json:"isFeatured"`
}

type TourCreateRequest struct {
	Title     string  `json:"title" validate:"required"`
	Venue     string  `json:"venue" validate:"required"`
	City      string  `json:"city" validate:"required"`
	Country   string  `json:"country" validate:"required"`
	Date      string  `json:"date" validate:"required,isodate"`
	TicketURL *string `json:"ticketUrl" validate:"omitempty,url"`
	VipURL    *string `json:"vipUrl" validate:"omitempty,url"`
	IsSoldOut *bool   `json:"isSoldOut"`
}

type TourUpdateRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1"`
	Venue     *string `json:"venue" validate:"omitempty,min=1"`
	City      *string `json:"city" validate:"omitempty,min=1"`
	Country   *string `json:"country" validate:"omitempty,min=1"`
	Date      *string `json:"date" validate:"omitempty,isodate"`
	TicketURL *string `json:"ticketUrl" validate:"omitempty,url"`
	VipURL    *string `json:"vipUrl" validate:"omitempty,url"`
	IsSoldOut *bool   `json:"isSoldOut"`
}

type MerchCreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    *string  `json:"imageUrl"`
	ProductURL  string   `json:"productUrl" validate:"required,url"`
	InStock     *bool    `json:"inStock"`
	Tags        []string `json:"tags"`
}

type MerchUpdateRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"imageUrl"`
	ProductURL  *string  `json:"productUrl" validate:"omitempty,url"`
	InStock     *bool    `json:"inStock"`
	Tags        []string `json:"tags"`
}

func (s *Server) AdminListTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := s.Store.ListTracks(r.Context(), false, 0)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, tracks)
}

func (s *Server) CreateTrack(w http.ResponseWriter, r *http.Request) {
	var req TrackCreateRequest
	if !s.bind(w, r, &req) {
		return
	}
	track := models.Track{
		Title:       req.Title,
		ReleaseDate: parseDatePtr(req.ReleaseDate),
		Platforms:   []models.PlatformLink{},
		Genres:      []string{},
	}
	setString(&track.Description, req.Description)
	setString(&track.CoverImage, req.CoverImage)
	setString(&track.AudioURL, req.AudioURL)
	setString(&track.Mood, req.Mood)
	setBool(&track.IsFeatured, req.IsFeatured)
	if req.Platforms != nil {
		track.Platforms = req.Platforms
	}
	if req.Genres != nil {
		track.Genres = req.Genres
	}
	if err := s.Store.InsertTrack(r.Context(), &track); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusCreated, track)
}

func (s *Server) UpdateTrack(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.Error(w, r, services.ErrNotFound("Track not found"))
		return
	}
	var req TrackUpdateRequest
	if !s.bind(w, r, &req) {
		return
	}
	track, err := s.Store.TrackByID(r.Context(), id)
	if err != nil {
		s.Error(w, r, trackErr(err))
		return
	}
	setString(&track.Title, req.Title)
	setString(&track.Description, req.Description)
	setString(&track.CoverImage, req.CoverImage)
	setString(&track.AudioURL, req.AudioURL)
	setString(&track.Mood, req.Mood)
	setBool(&track.IsFeatured, req.IsFeatured)
	if req.ReleaseDate != nil {
		track.ReleaseDate = parseDatePtr(req.ReleaseDate)
	}
	if req.Platforms != nil {
		track.Platforms = req.Platforms
	}
	if req.Genres != nil {
		track.Genres = req.Genres
	}
	if err := s.Store.SaveTrack(r.Context(), track); err != nil {
		s.Error(w, r, trackErr(err))
		return
	}
	WriteData(w, http.StatusOK, track)
}

func (s *Server) DeleteTrack(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.Store.DeleteTrack, "Track not found")
}

func (s *Server) AdminListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := s.Store.ListVideos(r.Context(), 0)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, videos)
}

func (s *Server) CreateVideo(w http.ResponseWriter, r *http.Request) {
	var req VideoCreateRequest
	if !s.bind(w, r, &req) {
		return
	}
	video := models.Video{
		Title:       req.Title,
		VideoURL:    req.VideoURL,
		ReleaseDate: parseDatePtr(req.ReleaseDate),
	}
	setString(&video.Description, req.Description)
	setString(&video.ThumbnailURL, req.ThumbnailURL)
	setBool(&video.IsFeatured, req.IsFeatured)
	if err := s.Store.InsertVideo(r.Context(), &video); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusCreated, video)
}

func (s *Server) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.Error(w, r, services.ErrNotFound("Video not found"))
		return
	}
	var req VideoUpdateRequest
	if !s.bind(w, r, &req) {
		return
	}
	video, err := s.Store.VideoByID(r.Context(), id)
	if err != nil {
		s.Error(w, r, videoErr(err))
		return
	}
	setString(&video.Title, req.Title)
	setString(&video.Description, req.Description)
	setString(&video.VideoURL, req.VideoURL)
	setString(&video.ThumbnailURL, req.ThumbnailURL)
	setBool(&video.IsFeatured, req.IsFeatured)
	if req.ReleaseDate != nil {
		video.ReleaseDate = parseDatePtr(req.ReleaseDate)
	}
	if err := s.Store.SaveVideo(r.Context(), video); err != nil {
		s.Error(w, r, videoErr(err))
		return
	}
	WriteData(w, http.StatusOK, video)
}

func (s *Server) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.Store.DeleteVideo, "Video not found")
}

func (s *Server) AdminListTours(w http.ResponseWriter, r *http.Request) {
	tours, err := s.Store.ListTours(r.Context(), nil, 0)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, tours)
}

func (s *Server) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req TourCreateRequest
	if !s.bind(w, r, &req) {
		return
	}
	var date time.Time
	if parsed := parseDatePtr(&req.Date); parsed != nil {
		date = *parsed
	}
	tour := models.TourDate{
		Title:   req.Title,
		Venue:   req.Venue,
		City:    req.City,
		Country: req.Country,
		Date:    date,
	}
	setString(&tour.TicketURL, req.TicketURL)
	setString(&tour.VipURL, req.VipURL)
	setBool(&tour.IsSoldOut, req.IsSoldOut)
	if err := s.Store.InsertTour(r.Context(), &tour); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusCreated, tour)
}

func (s *Server) UpdateTour(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.Error(w, r, services.ErrNotFound("Tour date not found"))
		return
	}
	var req TourUpdateRequest
	if !s.bind(w, r, &req) {
		return
	}
	tour, err := s.Store.TourByID(r.Context(), id)
	if err != nil {
		s.Error(w, r, tourErr(err))
		return
	}
	setString(&tour.Title, req.Title)
	setString(&tour.Venue, req.Venue)
	setString(&tour.City, req.City)
	setString(&tour.Country, req.Country)
	setString(&tour.TicketURL, req.TicketURL)
	setString(&tour.VipURL, req.VipURL)
	setBool(&tour.IsSoldOut, req.IsSoldOut)
	if parsed := parseDatePtr(req.Date); parsed != nil {
		tour.Date = *parsed
	}
	if err := s.Store.SaveTour(r.Context(), tour); err != nil {
		s.Error(w, r, tourErr(err))
		return
	}
	WriteData(w, http.StatusOK, tour)
}

func (s *Server) DeleteTour(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.Store.DeleteTour, "Tour date not found")
}

func (s *Server) AdminListMerch(w http.ResponseWriter, r *http.Request) {
	merch, err := s.Store.ListMerch(r.Context(), 0)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, merch)
}

func (s *Server) CreateMerch(w http.ResponseWriter, r *http.Request) {
	var req MerchCreateRequest
	if !s.bind(w, r, &req) {
		return
	}
	item := models.MerchItem{
		Title:      req.Title,
		Price:      *req.Price,
		ProductURL: req.ProductURL,
		InStock:    true,
		Tags:       []string{},
	}
	setString(&item.Description, req.Description)
	setString(&item.ImageURL, req.ImageURL)
	setBool(&item.InStock, req.InStock)
	if req.Tags != nil {
		item.Tags = req.Tags
	}
	if err := s.Store.InsertMerch(r.Context(), &item); err != nil {
		s.Error(w, r, err)
		return
	}
	WriteData(w, http.StatusCreated, item)
}

func (s *Server) UpdateMerch(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		s.Error(w, r, services.ErrNotFound("Merch item not found"))
		return
	}
	var req MerchUpdateRequest
	if !s.bind(w, r, &req) {
		return
	}
	item, err := s.Store.MerchByID(r.Context(), id)
	if err != nil {
		s.Error(w, r, merchErr(err))
		return
	}
	setString(&item.Title, req.Title)
	setString(&item.Description, req.Description)
	setString(&item.ImageURL, req.ImageURL)
	setString(&item.ProductURL, req.ProductURL)
	setBool(&item.InStock, req.InStock)
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Tags != nil {
		item.Tags = req.Tags
	}
	if err := s.Store.SaveMerch(r.Context(), item); err != nil {
		s.Error(w, r, merchErr(err))
		return
	}
	WriteData(w, http.StatusOK, item)
}

func (s *Server) DeleteMerch(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, s.Store.DeleteMerch, "Merch item not found")
}

func (s *Server) deleteByID(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id primitive.ObjectID) error, notFoundMsg string) {
	id, err := idParam(r)
	if err != nil {
		s.Error(w, r, services.ErrNotFound(notFoundMsg))
		return
	}
	if err := del(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Error(w, r, services.ErrNotFound(notFoundMsg))
			return
		}
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func trackErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return services.ErrNotFound("Track not found")
	}
	return err
}

func videoErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return services.ErrNotFound("Video not found")
	}
	return err
}

func tourErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return services.ErrNotFound("Tour date not found")
	}
	return err
}

func merchErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return services.ErrNotFound("Merch item not found")
	}
	return err
}
