package httpapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tolujohn-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func dayPtr(offset int) *time.Time {
	d := day(offset)
	return &d
}

func TestHomeContentFeaturedSelection(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.store.InsertHero(ctx, &models.HeroHighlight{SongTitle: "Heaven on Earth", Tagline: "t", CtaURL: "https://x"}))
	require.NoError(t, h.store.InsertAbout(ctx, &models.About{Heading: "About", Content: "c"}))
	require.NoError(t, h.store.InsertTrack(ctx, &models.Track{Title: "Featured", IsFeatured: true, ReleaseDate: dayPtr(0)}))
	require.NoError(t, h.store.InsertTrack(ctx, &models.Track{Title: "Plain", ReleaseDate: dayPtr(1)}))
	require.NoError(t, h.store.InsertVideo(ctx, &models.Video{Title: "Old Featured", VideoURL: "https://v1", IsFeatured: true, ReleaseDate: dayPtr(-5)}))
	require.NoError(t, h.store.InsertVideo(ctx, &models.Video{Title: "Newer Plain", VideoURL: "https://v2", ReleaseDate: dayPtr(0)}))

	rec, env := h.do(t, http.MethodGet, "/api/public/home", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var home HomePayload
	decodeData(t, env, &home)
	require.NotNil(t, home.Hero)
	assert.Equal(t, "Heaven on Earth", home.Hero.SongTitle)
	require.NotNil(t, home.About)

	// Featured content wins even when something newer exists.
	require.Len(t, home.Music, 1)
	assert.Equal(t, "Featured", home.Music[0].Title)
	require.NotNil(t, home.LatestVideo)
	assert.Equal(t, "Old Featured", home.LatestVideo.Title)
}

func TestHomeContentFallbacks(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// Eight unflagged tracks, newest first by release date.
	titles := []string{"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7"}
	for i, title := range titles {
		require.NoError(t, h.store.InsertTrack(ctx, &models.Track{Title: title, ReleaseDate: dayPtr(i)}))
	}
	require.NoError(t, h.store.InsertVideo(ctx, &models.Video{Title: "older", VideoURL: "https://v1", ReleaseDate: dayPtr(0)}))
	require.NoError(t, h.store.InsertVideo(ctx, &models.Video{Title: "newest", VideoURL: "https://v2", ReleaseDate: dayPtr(3)}))

	rec, env := h.do(t, http.MethodGet, "/api/public/home", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var home HomePayload
	decodeData(t, env, &home)
	assert.Nil(t, home.Hero)
	assert.Nil(t, home.About)

	require.Len(t, home.Music, 6)
	assert.Equal(t, "t7", home.Music[0].Title)
	assert.Equal(t, "t2", home.Music[5].Title)

	require.NotNil(t, home.LatestVideo)
	assert.Equal(t, "newest", home.LatestVideo.Title)
}

func TestTourDatesFilter(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	past := time.Now().AddDate(0, 0, -30)
	soon := time.Now().AddDate(0, 0, 7)
	later := time.Now().AddDate(0, 0, 60)
	require.NoError(t, h.store.InsertTour(ctx, &models.TourDate{Title: "Later", Venue: "v", City: "c", Country: "n", Date: later}))
	require.NoError(t, h.store.InsertTour(ctx, &models.TourDate{Title: "Past", Venue: "v", City: "c", Country: "n", Date: past}))
	require.NoError(t, h.store.InsertTour(ctx, &models.TourDate{Title: "Soon", Venue: "v", City: "c", Country: "n", Date: soon}))

	rec, env := h.do(t, http.MethodGet, "/api/public/tour-dates", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tours []models.TourDate
	decodeData(t, env, &tours)
	require.Len(t, tours, 2)
	assert.Equal(t, "Soon", tours[0].Title)
	assert.Equal(t, "Later", tours[1].Title)

	rec, env = h.do(t, http.MethodGet, "/api/public/tour-dates?includePast=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, env, &tours)
	require.Len(t, tours, 3)
	assert.Equal(t, "Past", tours[0].Title)
}

func TestSubscribeIsIdempotent(t *testing.T) {
	h := newHarness(t)

	rec, env := h.do(t, http.MethodPost, "/api/public/subscribe", "", map[string]string{"email": "Fan@Example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Thank you for subscribing!", env.Message)

	// Same address, different casing: no second row.
	rec, env = h.do(t, http.MethodPost, "/api/public/subscribe", "", map[string]string{"email": "fan@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "You are already subscribed. Thank you!", env.Message)

	subs, err := h.store.ListSubscribers(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "fan@example.com", subs[0].Email)
	assert.Equal(t, "website", subs[0].Source)
}

func TestSubscribeValidation(t *testing.T) {
	h := newHarness(t)

	rec, env := h.do(t, http.MethodPost, "/api/public/subscribe", "", map[string]string{"email": "nope"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.ElementsMatch(t, []string{"email"}, fieldNames(env.Errors))
}

func TestContactMessage(t *testing.T) {
	h := newHarness(t)

	rec, env := h.do(t, http.MethodPost, "/api/public/contact", "", map[string]string{
		"name":    "A Fan",
		"email":   "Fan@Example.com",
		"message": "Loved the show in Lagos, please come back soon!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Thank you for reaching out. A member of the team will be in touch soon.", env.Message)

	msgs, err := h.store.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "fan@example.com", msgs[0].Email)
	assert.Equal(t, models.MessageStatusNew, msgs[0].Status)
}

func TestContactValidationListsEveryField(t *testing.T) {
	h := newHarness(t)

	rec, env := h.do(t, http.MethodPost, "/api/public/contact", "", map[string]string{
		"name":    "A",
		"email":   "nope",
		"message": "short",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Validation error", env.Message)
	assert.ElementsMatch(t, []string{"name", "email", "message"}, fieldNames(env.Errors))
}
