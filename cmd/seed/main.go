// Command seed wipes the content database and loads sample data, including
// a default admin account. Intended for local development only.
package main

import (
	"context"
	"os"
	"time"

	"tolujohn-backend-go/internal/config"
	"tolujohn-backend-go/internal/models"
	"tolujohn-backend-go/internal/services"
	"tolujohn-backend-go/internal/store"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect")
	}
	defer db.Close(context.Background())

	if err := db.Reset(ctx); err != nil {
		log.Fatal().Err(err).Msg("reset collections")
	}
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	tokens := services.TokenService{}
	password, err := tokens.HashPassword("ChangeMe123!")
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}
	admin := models.Admin{
		Name:     "Site Administrator",
		Email:    "admin@tolujohnmusic.com",
		Password: password,
		Role:     models.RoleSuperadmin,
	}
	if err := db.InsertAdmin(ctx, &admin); err != nil {
		log.Fatal().Err(err).Msg("insert admin")
	}

	releaseDate := time.Date(2024, 8, 30, 0, 0, 0, 0, time.UTC)
	hero := models.HeroHighlight{
		SongTitle:       "Heaven on Earth",
		Tagline:         "Experience the new sound of worship",
		Description:     "Tolu John invites you into an atmosphere of hope with the latest single, Heaven on Earth.",
		CtaLabel:        "Stream the single",
		CtaURL:          "https://open.spotify.com/track/example",
		BackgroundImage: "https://images.unsplash.com/photo-1511379938547-c1f69419868d?auto=format&fit=crop&w=1400&q=80",
		ReleaseDate:     &releaseDate,
		Platforms: []models.PlatformLink{
			{Name: "Spotify", URL: "https://open.spotify.com/track/example"},
			{Name: "Apple Music", URL: "https://music.apple.com/album/example"},
			{Name: "YouTube Music", URL: "https://music.youtube.com/watch?v=example"},
		},
	}
	if err := db.InsertHero(ctx, &hero); err != nil {
		log.Fatal().Err(err).Msg("insert hero")
	}

	about := models.About{
		Heading:    "The Sound of Purpose",
		Subheading: "Award-winning gospel & inspirational artist",
		Content: "Tolu John is a Nigerian-born, global music minister crafting heartfelt worship experiences " +
			"that draw people closer to the presence of God. With a voice that carries both power and " +
			"tenderness, Tolu blends modern gospel, afro-fusion, and soul to create a sound that feels both " +
			"timeless and refreshing.",
		Achievements: []models.Achievement{
			{Label: "Streams", Value: "25M+"},
			{Label: "Awards", Value: "6 International"},
			{Label: "Tours", Value: "18 Countries"},
		},
		FeaturedImage: "https://images.unsplash.com/photo-1483412033650-1015ddeb83d1?auto=format&fit=crop&w=1200&q=80",
		Quote: models.Quote{
			Text:        "My mission is to guide souls into moments where heaven feels near.",
			Attribution: "Tolu John",
		},
	}
	if err := db.InsertAbout(ctx, &about); err != nil {
		log.Fatal().Err(err).Msg("insert about")
	}

	tracks := []models.Track{
		{
			Title:       "Heaven on Earth",
			Description: "A soaring anthem of faith recorded live in Lagos.",
			ReleaseDate: &releaseDate,
			IsFeatured:  true,
			CoverImage:  "https://images.unsplash.com/photo-1485579149621-3123dd979885?auto=format&fit=crop&w=1200&q=80",
			Platforms: []models.PlatformLink{
				{Name: "Spotify", URL: "https://open.spotify.com/track/example"},
			},
			Genres: []string{"Gospel", "Afro-fusion"},
		},
		{
			Title:       "Still Waters",
			Description: "A quiet moment of surrender.",
			ReleaseDate: timePtr(time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC)),
			Genres:      []string{"Worship"},
			Platforms:   []models.PlatformLink{},
		},
	}
	for i := range tracks {
		if err := db.InsertTrack(ctx, &tracks[i]); err != nil {
			log.Fatal().Err(err).Msg("insert track")
		}
	}

	video := models.Video{
		Title:        "Heaven on Earth (Official Video)",
		VideoURL:     "https://www.youtube.com/watch?v=example",
		ThumbnailURL: "https://images.unsplash.com/photo-1516280440614-37939bbacd81?auto=format&fit=crop&w=1200&q=80",
		ReleaseDate:  &releaseDate,
		IsFeatured:   true,
	}
	if err := db.InsertVideo(ctx, &video); err != nil {
		log.Fatal().Err(err).Msg("insert video")
	}

	tour := models.TourDate{
		Title:     "Heaven on Earth Live",
		Venue:     "Eko Convention Centre",
		City:      "Lagos",
		Country:   "Nigeria",
		Date:      time.Now().AddDate(0, 2, 0),
		TicketURL: "https://tickets.example.com/lagos",
	}
	if err := db.InsertTour(ctx, &tour); err != nil {
		log.Fatal().Err(err).Msg("insert tour")
	}

	merch := models.MerchItem{
		Title:      "Heaven on Earth Tour Tee",
		Price:      35,
		ImageURL:   "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=1200&q=80",
		ProductURL: "https://shop.example.com/tour-tee",
		InStock:    true,
		Tags:       []string{"apparel", "tour"},
	}
	if err := db.InsertMerch(ctx, &merch); err != nil {
		log.Fatal().Err(err).Msg("insert merch")
	}

	log.Info().Str("admin", admin.Email).Msg("seed complete")
}

func timePtr(t time.Time) *time.Time {
	return &t
}
