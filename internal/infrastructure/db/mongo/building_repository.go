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
)

const collectionBuildings = "buildings"

type BuildingRepository struct {
	col *mongo.Collection
}

func NewBuildingRepository(db *mongo.Database) *BuildingRepository {
	return &BuildingRepository{col: db.Collection(collectionBuildings)}
}

// mongoBuilding wraps the domain type with an ObjectID. Floors and rooms are
// stored embedded, exactly as the domain models them.
type mongoBuilding struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Location  domain.Location    `bson:"location"`
	Floors    []domain.Floor     `bson:"floors"`
	Amenities []string           `bson:"amenities"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

func fromDomainBuilding(b *domain.Building) mongoBuilding {
	return mongoBuilding{
		Name:      b.Name,
		Location:  b.Location,
		Floors:    b.Floors,
		Amenities: b.Amenities,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (mb mongoBuilding) toDomain() domain.Building {
	return domain.Building{
		ID:        mb.ID.Hex(),
		Name:      mb.Name,
		Location:  mb.Location,
		Floors:    mb.Floors,
		Amenities: mb.Amenities,
		CreatedAt: mb.CreatedAt,
		UpdatedAt: mb.UpdatedAt,
	}
}

func (r *BuildingRepository) Insert(ctx context.Context, b *domain.Building) (*domain.Building, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, fromDomainBuilding(b))
	if err != nil {
		return nil, fmt.Errorf("insert building: %w", err)
	}

	created := *b
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *BuildingRepository) FindAll(ctx context.Context) ([]domain.Building, error) {
	return r.find(ctx, bson.M{})
}

// FindByAmenities matches buildings whose amenities contain every element of
// the list ($all, the contains-all filter).
func (r *BuildingRepository) FindByAmenities(ctx context.Context, amenities []string) ([]domain.Building, error) {
	return r.find(ctx, bson.M{"amenities": bson.M{"$all": amenities}})
}

func (r *BuildingRepository) find(ctx context.Context, query bson.M) ([]domain.Building, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find buildings: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoBuilding
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode buildings: %w", err)
	}

	buildings := make([]domain.Building, 0, len(docs))
	for _, mb := range docs {
		buildings = append(buildings, mb.toDomain())
	}
	return buildings, nil
}

func (r *BuildingRepository) FindByID(ctx context.Context, id string) (*domain.Building, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBuildingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBuilding
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("find building: %w", err)
	}

	building := mb.toDomain()
	return &building, nil
}

// Replace overwrites the whole document and returns the stored result.
func (r *BuildingRepository) Replace(ctx context.Context, id string, b *domain.Building) (*domain.Building, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBuildingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var mb mongoBuilding
	err = r.col.FindOneAndReplace(ctx, bson.M{"_id": oid}, fromDomainBuilding(b), opts).Decode(&mb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBuildingNotFound
		}
		return nil, fmt.Errorf("replace building: %w", err)
	}

	building := mb.toDomain()
	return &building, nil
}

func (r *BuildingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBuildingNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete building: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBuildingNotFound
	}
	return nil
}

// Seed resets the collection to the demo dataset. Development only; callers
// must not run this against a real environment.
func (r *BuildingRepository) Seed(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("seed buildings: clear: %w", err)
	}

	now := time.Now().UTC()
	demo := mongoBuilding{
		Name:      "Building 1",
		Location:  domain.Location{Longitude: -120.65, Latitude: 35.3},
		Amenities: []string{"Library", "Cafe"},
		Floors: []domain.Floor{
			{
				Number: 1,
				Rooms: []domain.Room{
					{Name: "Room 101", Coordinates: domain.Location{Longitude: -120.65, Latitude: 35.3}, Floor: 1, Occupancy: false},
					{Name: "Room 102", Coordinates: domain.Location{Longitude: -120.651, Latitude: 35.301}, Floor: 1, Occupancy: true},
				},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.col.InsertOne(ctx, demo); err != nil {
		return fmt.Errorf("seed buildings: insert: %w", err)
	}
	return nil
}
