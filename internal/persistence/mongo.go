package persistence

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/spec-kit/user-service/internal/config"
)

// UsersCollection is the collection holding user documents.
const UsersCollection = "users"

// Mongo wraps access to the document store.
type Mongo struct {
	Client   *mongo.Client
	database *mongo.Database
}

// NewMongo connects to MongoDB and verifies the connection.
func NewMongo(ctx context.Context, cfg config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("connected to mongodb", zap.String("database", cfg.Database))
	return &Mongo{Client: client, database: client.Database(cfg.Database)}, nil
}

// Users returns the users collection handle.
func (m *Mongo) Users() *mongo.Collection {
	if m == nil || m.database == nil {
		return nil
	}
	return m.database.Collection(UsersCollection)
}

// Ping verifies the store is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return errors.New("mongodb not connected")
	}
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close releases client resources.
func (m *Mongo) Close(ctx context.Context) {
	if m != nil && m.Client != nil {
		_ = m.Client.Disconnect(ctx)
	}
}

// EnsureIndexes creates the unique indexes backing the alternate lookup keys.
// Replaces schema migrations for the document store.
func EnsureIndexes(ctx context.Context, store *Mongo, logger *zap.Logger) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "documentNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phoneNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	names, err := store.Users().Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return err
	}

	logger.Info("ensured unique indexes", zap.Strings("indexes", names))
	return nil
}
