package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spellnotes/notes-api/internal/core/domain"
)

const notesCollection = "notes"

type MongoNoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *MongoNoteRepository {
	return &MongoNoteRepository{coll: db.Collection(notesCollection)}
}

type mongoNote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Content   string             `bson:"content"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoNoteRepository) Insert(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	doc := mongoNote{
		UserID:    note.UserID,
		Content:   note.Content,
		CreatedAt: note.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	created := *note
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByUserID returns the notes owned by userID in creation order. The owner
// filter is applied here, at the query: there is no unscoped variant.
func (r *MongoNoteRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}
	defer cur.Close(ctx)

	var notes []*domain.Note
	for cur.Next(ctx) {
		var mn mongoNote
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, &domain.Note{
			ID:        mn.ID.Hex(),
			UserID:    mn.UserID,
			Content:   mn.Content,
			CreatedAt: unixToTime(mn.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}
