package httpapi

import (
	"context"
	"sort"
	"time"

	"tolujohn-backend-go/internal/models"
	"tolujohn-backend-go/internal/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory store.Store with the same ordering and not-found
// semantics as the MongoDB implementation.
type memStore struct {
	clock time.Time

	admins      []models.Admin
	heroes      []models.HeroHighlight
	abouts      []models.About
	tracks      []models.Track
	videos      []models.Video
	tours       []models.TourDate
	merch       []models.MerchItem
	subscribers []models.Subscriber
	messages    []models.ContactMessage
}

func newMemStore() *memStore {
	return &memStore{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// tick returns a strictly increasing timestamp so createdAt/updatedAt
// ordering is deterministic.
func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) stamp(id *primitive.ObjectID, created, updated *time.Time) {
	now := m.tick()
	*id = primitive.NewObjectID()
	*created = now
	*updated = now
}

func (m *memStore) AdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	for i := range m.admins {
		if m.admins[i].Email == email {
			copied := m.admins[i]
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) AdminByID(_ context.Context, id primitive.ObjectID) (*models.Admin, error) {
	for i := range m.admins {
		if m.admins[i].ID == id {
			copied := m.admins[i]
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) InsertAdmin(_ context.Context, admin *models.Admin) error {
	m.stamp(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	m.admins = append(m.admins, *admin)
	return nil
}

func (m *memStore) SaveAdmin(_ context.Context, admin *models.Admin) error {
	for i := range m.admins {
		if m.admins[i].ID == admin.ID {
			admin.UpdatedAt = m.tick()
			m.admins[i] = *admin
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) LatestHero(_ context.Context) (*models.HeroHighlight, error) {
	if len(m.heroes) == 0 {
		return nil, store.ErrNotFound
	}
	latest := m.heroes[0]
	for _, hero := range m.heroes[1:] {
		if hero.UpdatedAt.After(latest.UpdatedAt) {
			latest = hero
		}
	}
	return &latest, nil
}

func (m *memStore) InsertHero(_ context.Context, hero *models.HeroHighlight) error {
	m.stamp(&hero.ID, &hero.CreatedAt, &hero.UpdatedAt)
	m.heroes = append(m.heroes, *hero)
	return nil
}

func (m *memStore) SaveHero(_ context.Context, hero *models.HeroHighlight) error {
	for i := range m.heroes {
		if m.heroes[i].ID == hero.ID {
			hero.UpdatedAt = m.tick()
			m.heroes[i] = *hero
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) LatestAbout(_ context.Context) (*models.About, error) {
	if len(m.abouts) == 0 {
		return nil, store.ErrNotFound
	}
	latest := m.abouts[0]
	for _, about := range m.abouts[1:] {
		if about.UpdatedAt.After(latest.UpdatedAt) {
			latest = about
		}
	}
	return &latest, nil
}

func (m *memStore) InsertAbout(_ context.Context, about *models.About) error {
	m.stamp(&about.ID, &about.CreatedAt, &about.UpdatedAt)
	m.abouts = append(m.abouts, *about)
	return nil
}

func (m *memStore) SaveAbout(_ context.Context, about *models.About) error {
	for i := range m.abouts {
		if m.abouts[i].ID == about.ID {
			about.UpdatedAt = m.tick()
			m.abouts[i] = *about
			return nil
		}
	}
	return store.ErrNotFound
}

func releaseOf(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func (m *memStore) ListTracks(_ context.Context, featuredOnly bool, limit int64) ([]models.Track, error) {
	out := []models.Track{}
	for _, track := range m.tracks {
		if featuredOnly && !track.IsFeatured {
			continue
		}
		out = append(out, track)
	}
	sort.Slice(out, func(i, j int) bool {
		return releaseOf(out[i].ReleaseDate).After(releaseOf(out[j].ReleaseDate))
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) TrackByID(_ context.Context, id primitive.ObjectID) (*models.Track, error) {
	for i := range m.tracks {
		if m.tracks[i].ID == id {
			copied := m.tracks[i]
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) InsertTrack(_ context.Context, track *models.Track) error {
	m.stamp(&track.ID, &track.CreatedAt, &track.UpdatedAt)
	m.tracks = append(m.tracks, *track)
	return nil
}

func (m *memStore) SaveTrack(_ context.Context, track *models.Track) error {
	for i := range m.tracks {
		if m.tracks[i].ID == track.ID {
			track.UpdatedAt = m.tick()
			m.tracks[i] = *track
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) DeleteTrack(_ context.Context, id primitive.ObjectID) error {
	for i := range m.tracks {
		if m.tracks[i].ID == id {
			m.tracks = append(m.tracks[:i], m.tracks[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) CountTracks(_ context.Context) (int64, error) {
	return int64(len(m.tracks)), nil
}

func (m *memStore) ListVideos(_ context.Context, limit int64) ([]models.Video, error) {
	out := append([]models.Video{}, m.videos...)
	sort.Slice(out, func(i, j int) bool {
		return releaseOf(out[i].ReleaseDate).After(releaseOf(out[j].ReleaseDate))
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) FeaturedVideo(_ context.Context) (*models.Video, error) {
	var found *models.Video
	for i := range m.videos {
		video := m.videos[i]
		if !video.IsFeatured {
			continue
		}
		if found == nil || releaseOf(video.ReleaseDate).After(releaseOf(found.ReleaseDate)) {
			found = &video
		}
	}
	if found == nil {
		return nil, store.ErrNotFound
	}
	copied := *found
	return &copied, nil
}

func (m *memStore) LatestVideo(_ context.Context) (*models.Video, error) {
	videos, _ := m.ListVideos(context.Background(), 1)
	if len(videos) == 0 {
		return nil, store.ErrNotFound
	}
	return &videos[0], nil
}

func (m *memStore) VideoByID(_ context.Context, id primitive.ObjectID) (*models.Video, error) {
	for i := range m.videos {
		if m.videos[i].ID == id {
			copied := m.videos[i]
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) InsertVideo(_ context.Context, video *models.Video) error {
	m.stamp(&video.ID, &video.CreatedAt, &video.UpdatedAt)
	m.videos = append(m.videos, *video)
	return nil
}

func (m *memStore) SaveVideo(_ context.Context, video *models.Video) error {
	for i := range m.videos {
		if m.videos[i].ID == video.ID {
			video.UpdatedAt = m.tick()
			m.videos[i] = *video
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) DeleteVideo(_ context.Context, id primitive.ObjectID) error {
	for i := range m.videos {
		if m.videos[i].ID == id {
			m.videos = append(m.videos[:i], m.videos[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) CountVideos(_ context.Context) (int64, error) {
	return int64(len(m.videos)), nil
}

func (m *memStore) ListTours(_ context.Context, from *time.Time, limit int64) ([]models.TourDate, error) {
	out := []models.TourDate{}
	for _, tour := range m.tours {
		if from != nil && tour.Date.Before(*from) {
			continue
		}
		out = append(out, tour)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) TourByID(_ context.Context, id primitive.ObjectID) (*models.TourDate, error) {
	for i := range m.tours {
		if m.tours[i].ID == id {
			copied := m.tours[i]
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) InsertTour(_ context.Context, tour *models.TourDate) error {
	m.stamp(&tour.ID, &tour.CreatedAt, &tour.UpdatedAt)
	m.tours = append(m.tours, *tour)
	return nil
}

func (m *memStore) SaveTour(_ context.Context, tour *models.TourDate) error {
	for i := range m.tours {
		if m.tours[i].ID == tour.ID {
			tour.UpdatedAt = m.tick()
			m.tours[i] = *tour
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) DeleteTour(_ context.Context, id primitive.ObjectID) error {
	for i := range m.tours {
		if m.tours[i].ID == id {
			m.tours = append(m.tours[:i], m.tours[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) CountUpcomingTours(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, tour := range m.tours {
		if !tour.Date.Before(now) {
			count++
		}
	}
	return count, nil
}

func (m *memStore) ListMerch(_ context.Context, limit int64) ([]models.MerchItem, error) {
	out := append([]models.MerchItem{}, m.merch...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) MerchByID(_ context.Context, id primitive.ObjectID) (*models.MerchItem, error) {
	for i := range m.merch {
		if m.merch[i].ID == id {
			copied := m.merch[i]
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) InsertMerch(_ context.Context, item *models.MerchItem) error {
	m.stamp(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	m.merch = append(m.merch, *item)
	return nil
}

func (m *memStore) SaveMerch(_ context.Context, item *models.MerchItem) error {
	for i := range m.merch {
		if m.merch[i].ID == item.ID {
			item.UpdatedAt = m.tick()
			m.merch[i] = *item
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) DeleteMerch(_ context.Context, id primitive.ObjectID) error {
	for i := range m.merch {
		if m.merch[i].ID == id {
			m.merch = append(m.merch[:i], m.merch[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) SubscriberByEmail(_ context.Context, email string) (*models.Subscriber, error) {
	for i := range m.subscribers {
		if m.subscribers[i].Email == email {
			copied := m.subscribers[i]
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) InsertSubscriber(_ context.Context, sub *models.Subscriber) error {
	m.stamp(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	m.subscribers = append(m.subscribers, *sub)
	return nil
}

func (m *memStore) ListSubscribers(_ context.Context) ([]models.Subscriber, error) {
	out := append([]models.Subscriber{}, m.subscribers...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memStore) CountSubscribers(_ context.Context) (int64, error) {
	return int64(len(m.subscribers)), nil
}

func (m *memStore) ListMessages(_ context.Context) ([]models.ContactMessage, error) {
	out := append([]models.ContactMessage{}, m.messages...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memStore) MessageByID(_ context.Context, id primitive.ObjectID) (*models.ContactMessage, error) {
	for i := range m.messages {
		if m.messages[i].ID == id {
			copied := m.messages[i]
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) InsertMessage(_ context.Context, msg *models.ContactMessage) error {
	m.stamp(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *memStore) SaveMessage(_ context.Context, msg *models.ContactMessage) error {
	for i := range m.messages {
		if m.messages[i].ID == msg.ID {
			msg.UpdatedAt = m.tick()
			m.messages[i] = *msg
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) CountNewMessages(_ context.Context) (int64, error) {
	var count int64
	for _, msg := range m.messages {
		if msg.Status == models.MessageStatusNew {
			count++
		}
	}
	return count, nil
}

var _ store.Store = (*memStore)(nil)
