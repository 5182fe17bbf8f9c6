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

const userWorkoutCollectionName = "user_workouts"

// mongoUserWorkoutRepository implements repository.UserWorkoutRepository
type mongoUserWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoUserWorkoutRepository creates a new UserWorkout repository backed by MongoDB.
func NewMongoUserWorkoutRepository(db *mongo.Database) repository.UserWorkoutRepository {
	return &mongoUserWorkoutRepository{
		collection: db.Collection(userWorkoutCollectionName),
	}
}

// Create inserts a day assignment. The unique (userId, assignedDay)
// index makes the insert the atomic check-then-insert: when two
// writers race for the same day, exactly one insert succeeds and the
// other gets ErrDuplicateKey.
func (r *mongoUserWorkoutRepository) Create(ctx context.Context, uw *domain.UserWorkout) (primitive.ObjectID, error) {
	if uw.UserID == primitive.NilObjectID || uw.WorkoutID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("user workout requires userId and workoutId")
	}
	if !uw.AssignedDay.Valid() {
		return primitive.NilObjectID, errors.New("user workout requires a valid assigned day")
	}

	uw.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	uw.CreatedAt = now
	uw.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, uw)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted user workout ID")
	}
	return insertedID, nil
}

// GetByUserID retrieves all day assignments for a user.
func (r *mongoUserWorkoutRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.UserWorkout, error) {
	var assignments []domain.UserWorkout
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Delete removes the assignment a user has on the given day.
func (r *mongoUserWorkoutRepository) Delete(ctx context.Context, userID primitive.ObjectID, day domain.Weekday) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "assignedDay": day})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByWorkoutID removes every assignment referencing a workout.
// Called when a workout is deleted so no schedule keeps pointing at a
// routine that no longer exists.
func (r *mongoUserWorkoutRepository) DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"workoutId": workoutID})
	return err
}

// EnsureUserWorkoutIndexes creates necessary indexes for the user_workouts collection.
func EnsureUserWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// The enforcement mechanism of record for the
			// one-workout-per-weekday invariant.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "assignedDay", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "workoutId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
