package mongo

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// Create inserts a new catalog exercise. Used by the seeding process
// only; the catalog is read-only at runtime.
func (r *mongoExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" {
		return primitive.NilObjectID, errors.New("exercise name is required")
	}

	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, exercise)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted exercise ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single catalog exercise.
func (r *mongoExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// GetByIDs retrieves all catalog exercises matching the given IDs in
// one batch. Missing IDs are simply absent from the result; callers
// compare against their input to detect them.
func (r *mongoExerciseRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var exercises []domain.Exercise
	filter := bson.M{"_id": bson.M{"$in": ids}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// GetByName retrieves a catalog exercise by its exact name.
func (r *mongoExerciseRepository) GetByName(ctx context.Context, name string) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// List retrieves the whole catalog, sorted by name.
func (r *mongoExerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Seeding is keyed by name, so names must stay unique.
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
