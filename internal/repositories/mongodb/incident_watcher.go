package mongodb

import (
	"context"
	"fmt"
	"time"

	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type incidentWatcher struct {
	collection *mongo.Collection
}

// NewIncidentWatcher wraps a Mongo change stream on the incidents
// collection. Requires a replica set deployment.
func NewIncidentWatcher(db *mongo.Database) interfaces.IncidentWatcher {
	return &incidentWatcher{
		collection: db.Collection("incidents"),
	}
}

func (w *incidentWatcher) Watch(ctx context.Context) (<-chan models.IncidentEvent, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": []string{"insert", "update", "replace", "delete"}},
		}}},
	}

	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := w.collection.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open incident change stream: %w", err)
	}

	events := make(chan models.IncidentEvent)

	go func() {
		defer close(events)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var change struct {
				OperationType string `bson:"operationType"`
				DocumentKey   struct {
					ID primitive.ObjectID `bson:"_id"`
				} `bson:"documentKey"`
				FullDocument *models.IncidentReport `bson:"fullDocument"`
			}

			if err := stream.Decode(&change); err != nil {
				continue
			}

			event := models.IncidentEvent{
				Incident:  change.FullDocument,
				Timestamp: time.Now(),
			}

			switch change.OperationType {
			case "insert":
				event.Type = models.IncidentEventCreated
			case "delete":
				event.Type = models.IncidentEventDeleted
			default:
				event.Type = models.IncidentEventUpdated
			}

			event.IncidentID = change.DocumentKey.ID

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
