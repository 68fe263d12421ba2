package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mayank/campustrack/internal/config"
	"github.com/mayank/campustrack/internal/pkg/helpers"
)

// Collection names.
const (
	BatchCollection      = "batches"
	StudentCollection    = "students"
	AttendanceCollection = "attendance"
	UserCollection       = "users"
)

// MongoDB wraps the client and the application database handle. The
// underlying client is pooled and safe for concurrent use.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects to MongoDB using the application configuration and
// verifies the connection with a ping.
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	connectTimeout := helpers.ParseDuration(cfg.Mongo.ConnectTimeout, 0)
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetMaxPoolSize(uint64(cfg.Mongo.MaxPoolSize))

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Mongo.Database),
	}, nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes that back the data model's
// uniqueness invariants: batch year, student roll number, one attendance
// record per (rollNumber, date), and user mobile number.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		BatchCollection: {
			{Keys: bson.D{{Key: "year", Value: 1}}, Options: unique},
		},
		StudentCollection: {
			{Keys: bson.D{{Key: "rollNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "batch", Value: 1}, {Key: "department", Value: 1}}},
		},
		AttendanceCollection: {
			{Keys: bson.D{{Key: "rollNumber", Value: 1}, {Key: "date", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "date", Value: 1}}},
		},
		UserCollection: {
			{Keys: bson.D{{Key: "mobileNumber", Value: 1}}, Options: unique},
		},
	}

	for name, models := range indexes {
		if _, err := m.Database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", name, err)
		}
	}

	return nil
}
