package store

import (
	"context"
	"errors"
	"time"

	"tolujohn-backend-go/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a lookup resolves no document.
var ErrNotFound = errors.New("document not found")

// Store is the persistence surface the HTTP layer depends on. One collection
// per entity; lookups that miss return ErrNotFound, list methods return empty
// slices. Saves replace the whole document (last write wins, per-document
// atomicity is the document store's concern).
type Store interface {
	AdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	AdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	InsertAdmin(ctx context.Context, admin *models.Admin) error
	SaveAdmin(ctx context.Context, admin *models.Admin) error

	// LatestHero is the singleton-by-convention read: the most recently
	// modified row wins. Same for LatestAbout.
	LatestHero(ctx context.Context) (*models.HeroHighlight, error)
	InsertHero(ctx context.Context, hero *models.HeroHighlight) error
	SaveHero(ctx context.Context, hero *models.HeroHighlight) error

	LatestAbout(ctx context.Context) (*models.About, error)
	InsertAbout(ctx context.Context, about *models.About) error
	SaveAbout(ctx context.Context, about *models.About) error

	// ListTracks sorts by releaseDate descending. A zero limit means all.
	ListTracks(ctx context.Context, featuredOnly bool, limit int64) ([]models.Track, error)
	TrackByID(ctx context.Context, id primitive.ObjectID) (*models.Track, error)
	InsertTrack(ctx context.Context, track *models.Track) error
	SaveTrack(ctx context.Context, track *models.Track) error
	DeleteTrack(ctx context.Context, id primitive.ObjectID) error
	CountTracks(ctx context.Context) (int64, error)

	// ListVideos sorts by releaseDate descending.
	ListVideos(ctx context.Context, limit int64) ([]models.Video, error)
	FeaturedVideo(ctx context.Context) (*models.Video, error)
	LatestVideo(ctx context.Context) (*models.Video, error)
	VideoByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	InsertVideo(ctx context.Context, video *models.Video) error
	SaveVideo(ctx context.Context, video *models.Video) error
	DeleteVideo(ctx context.Context, id primitive.ObjectID) error
	CountVideos(ctx context.Context) (int64, error)

	// ListTours sorts by date ascending; a non-nil from keeps only dates at
	// or after it.
	ListTours(ctx context.Context, from *time.Time, limit int64) ([]models.TourDate, error)
	TourByID(ctx context.Context, id primitive.ObjectID) (*models.TourDate, error)
	InsertTour(ctx context.Context, tour *models.TourDate) error
	SaveTour(ctx context.Context, tour *models.TourDate) error
	DeleteTour(ctx context.Context, id primitive.ObjectID) error
	CountUpcomingTours(ctx context.Context, now time.Time) (int64, error)

	// ListMerch sorts by creation time descending.
	ListMerch(ctx context.Context, limit int64) ([]models.MerchItem, error)
	MerchByID(ctx context.Context, id primitive.ObjectID) (*models.MerchItem, error)
	InsertMerch(ctx context.Context, item *models.MerchItem) error
	SaveMerch(ctx context.Context, item *models.MerchItem) error
	DeleteMerch(ctx context.Context, id primitive.ObjectID) error

	SubscriberByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	InsertSubscriber(ctx context.Context, sub *models.Subscriber) error
	ListSubscribers(ctx context.Context) ([]models.Subscriber, error)
	CountSubscribers(ctx context.Context) (int64, error)

	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	MessageByID(ctx context.Context, id primitive.ObjectID) (*models.ContactMessage, error)
	InsertMessage(ctx context.Context, msg *models.ContactMessage) error
	SaveMessage(ctx context.Context, msg *models.ContactMessage) error
	CountNewMessages(ctx context.Context) (int64, error)
}
