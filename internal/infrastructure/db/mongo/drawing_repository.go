package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campus-compass/campus-api/internal/core/domain"
	"github.com/campus-compass/campus-api/internal/core/ports"
)

const collectionDrawings = "drawings"

type DrawingRepository struct {
	col *mongo.Collection
}

func NewDrawingRepository(db *mongo.Database) *DrawingRepository {
	return &DrawingRepository{col: db.Collection(collectionDrawings)}
}

type mongoDrawing struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"userId"`
	PdfURL     string             `bson:"pdfUrl"`
	PageNumber int                `bson:"pageNumber"`
	Drawing    string             `bson:"drawing"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt  time.Time          `bson:"updatedAt,omitempty"`
}

func (md mongoDrawing) toDomain() domain.Drawing {
	return domain.Drawing{
		ID:         md.ID.Hex(),
		UserID:     md.UserID,
		PdfURL:     md.PdfURL,
		PageNumber: md.PageNumber,
		Drawing:    md.Drawing,
		CreatedAt:  md.CreatedAt,
		UpdatedAt:  md.UpdatedAt,
	}
}

func (r *DrawingRepository) Insert(ctx context.Context, d *domain.Drawing) (*domain.Drawing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoDrawing{
		UserID:     d.UserID,
		PdfURL:     d.PdfURL,
		PageNumber: d.PageNumber,
		Drawing:    d.Drawing,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert drawing: %w", err)
	}

	created := *d
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *DrawingRepository) Find(ctx context.Context, userID, pdfURL string) ([]domain.Drawing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"userId": userID, "pdfUrl": pdfURL})
	if err != nil {
		return nil, fmt.Errorf("find drawings: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoDrawing
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode drawings: %w", err)
	}

	drawings := make([]domain.Drawing, 0, len(docs))
	for _, md := range docs {
		drawings = append(drawings, md.toDomain())
	}
	return drawings, nil
}

// Upsert replaces the drawing payload for key, creating the document when it
// does not exist yet. The write is atomic on the server.
func (r *DrawingRepository) Upsert(ctx context.Context, key ports.DrawingKey, payload string) (*domain.Drawing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{
		"userId":     key.UserID,
		"pdfUrl":     key.PdfURL,
		"pageNumber": key.PageNumber,
	}
	update := bson.M{
		"$set":         bson.M{"drawing": payload, "updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var md mongoDrawing
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&md); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDrawingNotFound
		}
		return nil, fmt.Errorf("upsert drawing: %w", err)
	}

	drawing := md.toDomain()
	return &drawing, nil
}

// EnsureIndexes creates the compound key index used by Upsert.
func (r *DrawingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "pdfUrl", Value: 1},
			{Key: "pageNumber", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
