package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/happythoughts/thoughts-api/internal/core/domain"
	"github.com/happythoughts/thoughts-api/internal/core/ports"
)

const thoughtsCollection = "thoughts"

// ThoughtRepository persists thoughts in the thoughts collection.
type ThoughtRepository struct {
	coll *mongo.Collection
}

func NewThoughtRepository(db *mongo.Database) *ThoughtRepository {
	return &ThoughtRepository{coll: db.Collection(thoughtsCollection)}
}

type thoughtDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Message   string             `bson:"message"`
	Hearts    int                `bson:"hearts"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d thoughtDoc) toDomain() *domain.Thought {
	return &domain.Thought{
		ID:        d.ID.Hex(),
		Message:   d.Message,
		Hearts:    d.Hearts,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (r *ThoughtRepository) Insert(ctx context.Context, t *domain.Thought) (*domain.Thought, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := thoughtDoc{
		Message:   t.Message,
		Hearts:    t.Hearts,
		CreatedAt: t.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert thought: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert thought: unexpected id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *ThoughtRepository) FindByID(ctx context.Context, id string) (*domain.Thought, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidThoughtID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc thoughtDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrThoughtNotFound
		}
		return nil, fmt.Errorf("find thought: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns thoughts newest first, capped at filter.Limit. LikedOnly
// restricts to hearts > 0; Search matches the message case-insensitively,
// with the term quoted so user input is never interpreted as a pattern.
func (r *ThoughtRepository) List(ctx context.Context, filter ports.ListThoughtsFilter) ([]*domain.Thought, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.LikedOnly {
		query["hearts"] = bson.M{"$gt": 0}
	}
	if filter.Search != "" {
		query["message"] = bson.M{
			"$regex":   regexp.QuoteMeta(filter.Search),
			"$options": "i",
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list thoughts: %w", err)
	}
	defer cursor.Close(ctx)

	var thoughts []*domain.Thought
	for cursor.Next(ctx) {
		var doc thoughtDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode thought: %w", err)
		}
		thoughts = append(thoughts, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list thoughts: %w", err)
	}
	return thoughts, nil
}

// IncrementHearts applies an atomic $inc so concurrent likes never lose
// updates, and returns the post-increment document.
func (r *ThoughtRepository) IncrementHearts(ctx context.Context, id string) (*domain.Thought, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidThoughtID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc thoughtDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"hearts": 1}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrThoughtNotFound
		}
		return nil, fmt.Errorf("like thought: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the index backing the newest-first list queries.
func (r *ThoughtRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "hearts", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
