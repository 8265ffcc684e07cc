package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/menuhub/menu-server/internal/core/domain"
)

const statusEventCollection = "status_events"

// StatusEventRepository is an append-only log of restaurant status changes.
type StatusEventRepository struct {
	coll *mongo.Collection
}

func NewStatusEventRepository(db *mongo.Database) *StatusEventRepository {
	return &StatusEventRepository{coll: db.Collection(statusEventCollection)}
}

type mongoStatusEvent struct {
	RestaurantID string    `bson:"restaurant_id"`
	AdminID      string    `bson:"admin_id"`
	From         string    `bson:"from"`
	To           string    `bson:"to"`
	At           time.Time `bson:"at"`
}

func (r *StatusEventRepository) Insert(ctx context.Context, e *domain.StatusEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, mongoStatusEvent{
		RestaurantID: e.RestaurantID,
		AdminID:      e.AdminID,
		From:         string(e.From),
		To:           string(e.To),
		At:           e.At,
	})
	if err != nil {
		return fmt.Errorf("insert status event: %w", err)
	}
	return nil
}

func (r *StatusEventRepository) EnsureIndexes(ctx context.Context) error {
	return createIndexes(ctx, r.coll, []mongo.IndexModel{
		{Keys: bson.D{{Key: "restaurant_id", Value: 1}, {Key: "at", Value: -1}}},
	})
}
