package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"cityresponse/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Migration struct {
	Version     int
	Description string
	Up          func(*mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
}

func NewMigrator(db *mongo.Database) *Migrator {
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
	}
}

func (m *Migrator) Up() error {
	currentVersion, err := m.getCurrentVersion()
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version > currentVersion {
			log.Printf("Running migration %d: %s", migration.Version, migration.Description)

			err := migration.Up(m.db)
			if err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			err = m.updateVersion(migration.Version)
			if err != nil {
				return fmt.Errorf("failed to update migration version: %w", err)
			}

			log.Printf("Migration %d completed successfully", migration.Version)
		}
	}

	return nil
}

func (m *Migrator) getCurrentVersion() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var doc struct {
		Version int `bson:"version"`
	}
	err := m.db.Collection("migrations").
		FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "version", Value: -1}})).
		Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.Version, nil
}

func (m *Migrator) updateVersion(version int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := m.db.Collection("migrations").InsertOne(ctx, bson.M{
		"version":    version,
		"applied_at": time.Now(),
	})
	return err
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "create core indexes",
			Up:          createCoreIndexes,
		},
		{
			Version:     2,
			Description: "seed barangay zones",
			Up:          seedZones,
		},
	}
}

func createCoreIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := db.Collection("incidents").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "zone_name", Value: 1}}},
		{Keys: bson.D{{Key: "reporter_id", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("response_routes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "incident_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return err
	}

	// The partial unique index is the durable backstop for the scheduler's
	// at-most-once eta_reminder guarantee.
	_, err = db.Collection("notifications").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "recipient_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{
			Keys: bson.D{{Key: "related_report_id", Value: 1}, {Key: "trigger_type", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"trigger_type": string(models.TriggerETAReminder)}),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("zones").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "order", Value: 1}}},
	})
	return err
}

func seedZones(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := db.Collection("zones")

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	zones := models.DefaultZones()
	docs := make([]interface{}, len(zones))
	for i, zone := range zones {
		zone.CreatedAt = time.Now()
		docs[i] = zone
	}

	_, err = collection.InsertMany(ctx, docs)
	return err
}
