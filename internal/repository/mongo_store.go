package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/floramar/flower-service/internal/domain/model"
)

// cartSnapshot is the document shape for a persisted cart.
type cartSnapshot struct {
	CartID    string           `bson:"_id"`
	Lines     []model.CartLine `bson:"lines"`
	UpdatedAt time.Time        `bson:"updated_at"`
}

// MongoStore implements SnapshotStore on a MongoDB carts collection with
// one document per cart, upserted on every save.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a MongoStore over the given connection.
func NewMongoStore(db *MongoDB) *MongoStore {
	return &MongoStore{collection: db.Carts}
}

// Load returns the stored cart, or nil when no snapshot exists.
func (s *MongoStore) Load(ctx context.Context, cartID string) (*model.Cart, error) {
	var doc cartSnapshot
	err := s.collection.FindOne(ctx, bson.M{"_id": cartID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cart := model.Cart{Lines: doc.Lines}
	if cart.Lines == nil {
		cart.Lines = []model.CartLine{}
	}
	return &cart, nil
}

// Save upserts the full cart snapshot.
func (s *MongoStore) Save(ctx context.Context, cartID string, cart *model.Cart) error {
	doc := cartSnapshot{
		CartID:    cartID,
		Lines:     cart.Lines,
		UpdatedAt: time.Now(),
	}

	_, err := s.collection.ReplaceOne(
		ctx,
		bson.M{"_id": cartID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Delete removes the snapshot if present.
func (s *MongoStore) Delete(ctx context.Context, cartID string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": cartID})
	return err
}
