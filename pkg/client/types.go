package client

import "time"

type PlatformLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Achievement struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Quote struct {
	Text        string `json:"text,omitempty"`
	Attribution string `json:"attribution,omitempty"`
}

type HeroHighlight struct {
	ID              string         `json:"id"`
	SongTitle       string         `json:"songTitle"`
	Tagline         string         `json:"tagline"`
	Description     string         `json:"description,omitempty"`
	CtaLabel        string         `json:"ctaLabel"`
	CtaURL          string         `json:"ctaUrl"`
	BackgroundImage string         `json:"backgroundImage,omitempty"`
	ReleaseDate     *time.Time     `json:"releaseDate,omitempty"`
	AudioPreviewURL string         `json:"audioPreviewUrl,omitempty"`
	Platforms       []PlatformLink `json:"platforms"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

type About struct {
	ID            string        `json:"id"`
	Heading       string        `json:"heading"`
	Subheading    string        `json:"subheading,omitempty"`
	Content       string        `json:"content"`
	Achievements  []Achievement `json:"achievements"`
	FeaturedImage string        `json:"featuredImage,omitempty"`
	Quote         Quote         `json:"quote,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type Track struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	CoverImage  string         `json:"coverImage,omitempty"`
	AudioURL    string         `json:"audioUrl,omitempty"`
	ReleaseDate *time.Time     `json:"releaseDate,omitempty"`
	IsFeatured  bool           `json:"isFeatured"`
	Platforms   []PlatformLink `json:"platforms"`
	Genres      []string       `json:"genres"`
	Mood        string         `json:"mood,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type Video struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	VideoURL     string     `json:"videoUrl"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	ReleaseDate  *time.Time `json:"releaseDate,omitempty"`
	IsFeatured   bool       `json:"isFeatured"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type TourDate struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Venue     string    `json:"venue"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Date      time.Time `json:"date"`
	TicketURL string    `json:"ticketUrl,omitempty"`
	VipURL    string    `json:"vipUrl,omitempty"`
	IsSoldOut bool      `json:"isSoldOut"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MerchItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	ProductURL  string    `json:"productUrl"`
	InStock     bool      `json:"inStock"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AdminProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResult struct {
	Token string       `json:"token"`
	Admin AdminProfile `json:"admin"`
}

type HomeContent struct {
	Hero        *HeroHighlight `json:"hero"`
	About       *About         `json:"about"`
	TourDates   []TourDate     `json:"tourDates"`
	LatestVideo *Video         `json:"latestVideo"`
	Music       []Track        `json:"music"`
	Merch       []MerchItem    `json:"merch"`
}

type DashboardSummary struct {
	Tracks        int64 `json:"tracks"`
	Videos        int64 `json:"videos"`
	UpcomingTours int64 `json:"upcomingTours"`
	Subscribers   int64 `json:"subscribers"`
	NewMessages   int64 `json:"newMessages"`
}

type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Payload types for writes. Optional fields are pointers so the admin forms
// can submit only what they intend to change on an edit.

type HeroPayload struct {
	SongTitle       string         `json:"songTitle"`
	Tagline         string         `json:"tagline"`
	Description     *string        `json:"description,omitempty"`
	CtaLabel        *string        `json:"ctaLabel,omitempty"`
	CtaURL          string         `json:"ctaUrl"`
	BackgroundImage *string        `json:"backgroundImage,omitempty"`
	ReleaseDate     *string        `json:"releaseDate,omitempty"`
	AudioPreviewURL *string        `json:"audioPreviewUrl,omitempty"`
	Platforms       []PlatformLink `json:"platforms,omitempty"`
}

type AboutPayload struct {
	Heading       string        `json:"heading"`
	Subheading    *string       `json:"subheading,omitempty"`
	Content       string        `json:"content"`
	Achievements  []Achievement `json:"achievements,omitempty"`
	FeaturedImage *string       `json:"featuredImage,omitempty"`
	Quote         *Quote        `json:"quote,omitempty"`
}

type TrackPayload struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	CoverImage  *string        `json:"coverImage,omitempty"`
	AudioURL    *string        `json:"audioUrl,omitempty"`
	ReleaseDate *string        `json:"releaseDate,omitempty"`
	IsFeatured  *bool          `json:"isFeatured,omitempty"`
	Platforms   []PlatformLink `json:"platforms,omitempty"`
	Genres      []string       `json:"genres,omitempty"`
	Mood        *string        `json:"mood,omitempty"`
}

type VideoPayload struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	VideoURL     *string `json:"videoUrl,omitempty"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
	ReleaseDate  *string `json:"releaseDate,omitempty"`
	IsFeatured   *bool   `json:"isFeatured,omitempty"`
}

type TourPayload struct {
	Title     *string `json:"title,omitempty"`
	Venue     *string `json:"venue,omitempty"`
	City      *string `json:"city,omitempty"`
	Country   *string `json:"country,omitempty"`
	Date      *string `json:"date,omitempty"`
	TicketURL *string `json:"ticketUrl,omitempty"`
	VipURL    *string `json:"vipUrl,omitempty"`
	IsSoldOut *bool   `json:"isSoldOut,omitempty"`
}

type MerchPayload struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	ProductURL  *string  `json:"productUrl,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type ProfilePayload struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
}
