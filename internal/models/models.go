package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleSuperadmin = "superadmin"
	RoleEditor     = "editor"
)

const (
	MessageStatusNew        = "new"
	MessageStatusInProgress = "in-progress"
	MessageStatusResolved   = "resolved"
)

// PlatformLink points at a track or single on a streaming platform.
type PlatformLink struct {
	Name string `bson:"name" json:"name" validate:"required"`
	URL  string `bson:"url" json:"url" validate:"required,url"`
}

type Achievement struct {
	Label string `bson:"label" json:"label" validate:"required"`
	Value string `bson:"value" json:"value" validate:"required"`
}

type Quote struct {
	Text        string `bson:"text,omitempty" json:"text,omitempty"`
	Attribution string `bson:"attribution,omitempty" json:"attribution,omitempty"`
}

// Admin is an authenticated operator. The password hash never leaves the
// server; JSON marshalling skips it.
type Admin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HeroHighlight is the banner content for the home page. The collection may
// hold several rows; "the" hero is the most recently modified one.
type HeroHighlight struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SongTitle       string             `bson:"songTitle" json:"songTitle"`
	Tagline         string             `bson:"tagline" json:"tagline"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	CtaLabel        string             `bson:"ctaLabel" json:"ctaLabel"`
	CtaURL          string             `bson:"ctaUrl" json:"ctaUrl"`
	BackgroundImage string             `bson:"backgroundImage,omitempty" json:"backgroundImage,omitempty"`
	ReleaseDate     *time.Time         `bson:"releaseDate,omitempty" json:"releaseDate,omitempty"`
	AudioPreviewURL string             `bson:"audioPreviewUrl,omitempty" json:"audioPreviewUrl,omitempty"`
	Platforms       []PlatformLink     `bson:"platforms" json:"platforms"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// About follows the same most-recently-modified singleton convention as
// HeroHighlight.
type About struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Heading       string             `bson:"heading" json:"heading"`
	Subheading    string             `bson:"subheading,omitempty" json:"subheading,omitempty"`
	Content       string             `bson:"content" json:"content"`
	Achievements  []Achievement      `bson:"achievements" json:"achievements"`
	FeaturedImage string             `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Quote         Quote              `bson:"quote,omitempty" json:"quote,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Track struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CoverImage  string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	AudioURL    string             `bson:"audioUrl,omitempty" json:"audioUrl,omitempty"`
	ReleaseDate *time.Time         `bson:"releaseDate,omitempty" json:"releaseDate,omitempty"`
	IsFeatured  bool               `bson:"isFeatured" json:"isFeatured"`
	Platforms   []PlatformLink     `bson:"platforms" json:"platforms"`
	Genres      []string           `bson:"genres" json:"genres"`
	Mood        string             `bson:"mood,omitempty" json:"mood,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Video struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	VideoURL     string             `bson:"videoUrl" json:"videoUrl"`
	ThumbnailURL string             `bson:"thumbnailUrl,omitempty" json:"thumbnailUrl,omitempty"`
	ReleaseDate  *time.Time         `bson:"releaseDate,omitempty" json:"releaseDate,omitempty"`
	IsFeatured   bool               `bson:"isFeatured" json:"isFeatured"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// TourDate is upcoming or past depending on request time; that split is
// never stored.
type TourDate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Venue     string             `bson:"venue" json:"venue"`
	City      string             `bson:"city" json:"city"`
	Country   string             `bson:"country" json:"country"`
	Date      time.Time          `bson:"date" json:"date"`
	TicketURL string             `bson:"ticketUrl,omitempty" json:"ticketUrl,omitempty"`
	VipURL    string             `bson:"vipUrl,omitempty" json:"vipUrl,omitempty"`
	IsSoldOut bool               `bson:"isSoldOut" json:"isSoldOut"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type MerchItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ProductURL  string             `bson:"productUrl" json:"productUrl"`
	InStock     bool               `bson:"inStock" json:"inStock"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Subscriber struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Source    string             `bson:"source" json:"source"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
