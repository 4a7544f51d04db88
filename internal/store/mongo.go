package store

import (
	"context"
	"errors"
	"time"

	"tolujohn-backend-go/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names match what the original deployment's ODM generated, so
// the server can point at an existing database.
const (
	colAdmins      = "admins"
	colHeroes      = "herohighlights"
	colAbouts      = "abouts"
	colTracks      = "tracks"
	colVideos      = "videos"
	colTours       = "tourdates"
	colMerch       = "merchitems"
	colSubscribers = "subscribers"
	colMessages    = "contactmessages"
)

// Mongo implements Store on top of a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &Mongo{client: client, db: client.Database(database)}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique email indexes and the sort indexes the
// read paths rely on. Safe to run on every startup.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	_, err := m.db.Collection(colAdmins).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	})
	if err != nil {
		return err
	}
	_, err = m.db.Collection(colSubscribers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: unique,
	})
	if err != nil {
		return err
	}
	_, err = m.db.Collection(colTours).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}},
	})
	if err != nil {
		return err
	}
	_, err = m.db.Collection(colTracks).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "releaseDate", Value: -1}}},
		{Keys: bson.D{{Key: "isFeatured", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = m.db.Collection(colVideos).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "releaseDate", Value: -1}},
	})
	return err
}

// Reset drops every collection. Used by the seeder, never by the server.
func (m *Mongo) Reset(ctx context.Context) error {
	for _, name := range []string{
		colAdmins, colHeroes, colAbouts, colTracks, colVideos,
		colTours, colMerch, colSubscribers, colMessages,
	} {
		if err := m.db.Collection(name).Drop(ctx); err != nil {
			return err
		}
	}
	return nil
}

func findOne[T any](ctx context.Context, c *mongo.Collection, filter any, opts ...*options.FindOneOptions) (*T, error) {
	var out T
	err := c.FindOne(ctx, filter, opts...).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func findMany[T any](ctx context.Context, c *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func insertOne(ctx context.Context, c *mongo.Collection, id *primitive.ObjectID, created, updated *time.Time, doc any) error {
	now := time.Now().UTC()
	*id = primitive.NewObjectID()
	*created = now
	*updated = now
	_, err := c.InsertOne(ctx, doc)
	return err
}

func replaceOne(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, updated *time.Time, doc any) error {
	*updated = time.Now().UTC()
	result, err := c.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteOne(ctx context.Context, c *mongo.Collection, id primitive.ObjectID) error {
	result, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func sortDesc(field string) *options.FindOneOptions {
	return options.FindOne().SetSort(bson.D{{Key: field, Value: -1}})
}

func listOpts(sort bson.D, limit int64) *options.FindOptions {
	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	return opts
}

func (m *Mongo) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return findOne[models.Admin](ctx, m.db.Collection(colAdmins), bson.M{"email": email})
}

func (m *Mongo) AdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	return findOne[models.Admin](ctx, m.db.Collection(colAdmins), bson.M{"_id": id})
}

func (m *Mongo) InsertAdmin(ctx context.Context, admin *models.Admin) error {
	return insertOne(ctx, m.db.Collection(colAdmins), &admin.ID, &admin.CreatedAt, &admin.UpdatedAt, admin)
}

func (m *Mongo) SaveAdmin(ctx context.Context, admin *models.Admin) error {
	return replaceOne(ctx, m.db.Collection(colAdmins), admin.ID, &admin.UpdatedAt, admin)
}

func (m *Mongo) LatestHero(ctx context.Context) (*models.HeroHighlight, error) {
	return findOne[models.HeroHighlight](ctx, m.db.Collection(colHeroes), bson.M{}, sortDesc("updatedAt"))
}

func (m *Mongo) InsertHero(ctx context.Context, hero *models.HeroHighlight) error {
	return insertOne(ctx, m.db.Collection(colHeroes), &hero.ID, &hero.CreatedAt, &hero.UpdatedAt, hero)
}

func (m *Mongo) SaveHero(ctx context.Context, hero *models.HeroHighlight) error {
	return replaceOne(ctx, m.db.Collection(colHeroes), hero.ID, &hero.UpdatedAt, hero)
}

func (m *Mongo) LatestAbout(ctx context.Context) (*models.About, error) {
	return findOne[models.About](ctx, m.db.Collection(colAbouts), bson.M{}, sortDesc("updatedAt"))
}

func (m *Mongo) InsertAbout(ctx context.Context, about *models.About) error {
	return insertOne(ctx, m.db.Collection(colAbouts), &about.ID, &about.CreatedAt, &about.UpdatedAt, about)
}

func (m *Mongo) SaveAbout(ctx context.Context, about *models.About) error {
	return replaceOne(ctx, m.db.Collection(colAbouts), about.ID, &about.UpdatedAt, about)
}

func (m *Mongo) ListTracks(ctx context.Context, featuredOnly bool, limit int64) ([]models.Track, error) {
	filter := bson.M{}
	if featuredOnly {
		filter["isFeatured"] = true
	}
	return findMany[models.Track](ctx, m.db.Collection(colTracks), filter,
		listOpts(bson.D{{Key: "releaseDate", Value: -1}}, limit))
}

func (m *Mongo) TrackByID(ctx context.Context, id primitive.ObjectID) (*models.Track, error) {
	return findOne[models.Track](ctx, m.db.Collection(colTracks), bson.M{"_id": id})
}

func (m *Mongo) InsertTrack(ctx context.Context, track *models.Track) error {
	return insertOne(ctx, m.db.Collection(colTracks), &track.ID, &track.CreatedAt, &track.UpdatedAt, track)
}

func (m *Mongo) SaveTrack(ctx context.Context, track *models.Track) error {
	return replaceOne(ctx, m.db.Collection(colTracks), track.ID, &track.UpdatedAt, track)
}

func (m *Mongo) DeleteTrack(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, m.db.Collection(colTracks), id)
}

func (m *Mongo) CountTracks(ctx context.Context) (int64, error) {
	return m.db.Collection(colTracks).CountDocuments(ctx, bson.M{})
}

func (m *Mongo) ListVideos(ctx context.Context, limit int64) ([]models.Video, error) {
	return findMany[models.Video](ctx, m.db.Collection(colVideos), bson.M{},
		listOpts(bson.D{{Key: "releaseDate", Value: -1}}, limit))
}

func (m *Mongo) FeaturedVideo(ctx context.Context) (*models.Video, error) {
	return findOne[models.Video](ctx, m.db.Collection(colVideos), bson.M{"isFeatured": true}, sortDesc("releaseDate"))
}

func (m *Mongo) LatestVideo(ctx context.Context) (*models.Video, error) {
	return findOne[models.Video](ctx, m.db.Collection(colVideos), bson.M{}, sortDesc("releaseDate"))
}

func (m *Mongo) VideoByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	return findOne[models.Video](ctx, m.db.Collection(colVideos), bson.M{"_id": id})
}

func (m *Mongo) InsertVideo(ctx context.Context, video *models.Video) error {
	return insertOne(ctx, m.db.Collection(colVideos), &video.ID, &video.CreatedAt, &video.UpdatedAt, video)
}

func (m *Mongo) SaveVideo(ctx context.Context, video *models.Video) error {
	return replaceOne(ctx, m.db.Collection(colVideos), video.ID, &video.UpdatedAt, video)
}

func (m *Mongo) DeleteVideo(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, m.db.Collection(colVideos), id)
}

func (m *Mongo) CountVideos(ctx context.Context) (int64, error) {
	return m.db.Collection(colVideos).CountDocuments(ctx, bson.M{})
}

func (m *Mongo) ListTours(ctx context.Context, from *time.Time, limit int64) ([]models.TourDate, error) {
	filter := bson.M{}
	if from != nil {
		filter["date"] = bson.M{"$gte": *from}
	}
	return findMany[models.TourDate](ctx, m.db.Collection(colTours), filter,
		listOpts(bson.D{{Key: "date", Value: 1}}, limit))
}

func (m *Mongo) TourByID(ctx context.Context, id primitive.ObjectID) (*models.TourDate, error) {
	return findOne[models.TourDate](ctx, m.db.Collection(colTours), bson.M{"_id": id})
}

func (m *Mongo) InsertTour(ctx context.Context, tour *models.TourDate) error {
	return insertOne(ctx, m.db.Collection(colTours), &tour.ID, &tour.CreatedAt, &tour.UpdatedAt, tour)
}

func (m *Mongo) SaveTour(ctx context.Context, tour *models.TourDate) error {
	return replaceOne(ctx, m.db.Collection(colTours), tour.ID, &tour.UpdatedAt, tour)
}

func (m *Mongo) DeleteTour(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, m.db.Collection(colTours), id)
}

func (m *Mongo) CountUpcomingTours(ctx context.Context, now time.Time) (int64, error) {
	return m.db.Collection(colTours).CountDocuments(ctx, bson.M{"date": bson.M{"$gte": now}})
}

func (m *Mongo) ListMerch(ctx context.Context, limit int64) ([]models.MerchItem, error) {
	return findMany[models.MerchItem](ctx, m.db.Collection(colMerch), bson.M{},
		listOpts(bson.D{{Key: "createdAt", Value: -1}}, limit))
}

func (m *Mongo) MerchByID(ctx context.Context, id primitive.ObjectID) (*models.MerchItem, error) {
	return findOne[models.MerchItem](ctx, m.db.Collection(colMerch), bson.M{"_id": id})
}

func (m *Mongo) InsertMerch(ctx context.Context, item *models.MerchItem) error {
	return insertOne(ctx, m.db.Collection(colMerch), &item.ID, &item.CreatedAt, &item.UpdatedAt, item)
}

func (m *Mongo) SaveMerch(ctx context.Context, item *models.MerchItem) error {
	return replaceOne(ctx, m.db.Collection(colMerch), item.ID, &item.UpdatedAt, item)
}

func (m *Mongo) DeleteMerch(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, m.db.Collection(colMerch), id)
}

func (m *Mongo) SubscriberByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	return findOne[models.Subscriber](ctx, m.db.Collection(colSubscribers), bson.M{"email": email})
}

func (m *Mongo) InsertSubscriber(ctx context.Context, sub *models.Subscriber) error {
	return insertOne(ctx, m.db.Collection(colSubscribers), &sub.ID, &sub.CreatedAt, &sub.UpdatedAt, sub)
}

func (m *Mongo) ListSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	return findMany[models.Subscriber](ctx, m.db.Collection(colSubscribers), bson.M{},
		listOpts(bson.D{{Key: "createdAt", Value: -1}}, 0))
}

func (m *Mongo) CountSubscribers(ctx context.Context) (int64, error) {
	return m.db.Collection(colSubscribers).CountDocuments(ctx, bson.M{})
}

func (m *Mongo) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return findMany[models.ContactMessage](ctx, m.db.Collection(colMessages), bson.M{},
		listOpts(bson.D{{Key: "createdAt", Value: -1}}, 0))
}

func (m *Mongo) MessageByID(ctx context.Context, id primitive.ObjectID) (*models.ContactMessage, error) {
	return findOne[models.ContactMessage](ctx, m.db.Collection(colMessages), bson.M{"_id": id})
}

func (m *Mongo) InsertMessage(ctx context.Context, msg *models.ContactMessage) error {
	return insertOne(ctx, m.db.Collection(colMessages), &msg.ID, &msg.CreatedAt, &msg.UpdatedAt, msg)
}

func (m *Mongo) SaveMessage(ctx context.Context, msg *models.ContactMessage) error {
	return replaceOne(ctx, m.db.Collection(colMessages), msg.ID, &msg.UpdatedAt, msg)
}

func (m *Mongo) CountNewMessages(ctx context.Context) (int64, error) {
	return m.db.Collection(colMessages).CountDocuments(ctx, bson.M{"status": models.MessageStatusNew})
}

var _ Store = (*Mongo)(nil)
