package repository

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// UserConfigRepository stores the per-user biometric configuration.
// Upsert replaces the existing document for the user or inserts a new
// one; there is never more than one per user.
type UserConfigRepository interface {
	Upsert(ctx context.Context, cfg *domain.UserConfig) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserConfig, error)
}

// UserGoalRepository stores the per-user fitness goal, upserted.
type UserGoalRepository interface {
	Upsert(ctx context.Context, goal *domain.UserGoal) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserGoal, error)
}

// TrainingConfigRepository stores the per-user training preferences,
// upserted. Tag-set fields round-trip through their persisted
// comma-joined form.
type TrainingConfigRepository interface {
	Upsert(ctx context.Context, cfg *domain.TrainingConfig) error
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.TrainingConfig, error)
}

// ExerciseRepository defines the interface for the exercise catalog.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error)
	GetByName(ctx context.Context, name string) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
}

// WorkoutRepository defines the interface for workout routines.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserWorkoutRepository defines the interface for day assignments.
// Create returns ErrDuplicateKey when the (userId, assignedDay) pair
// is already taken; that index is the enforcement mechanism of record
// for the one-workout-per-day invariant.
type UserWorkoutRepository interface {
	Create(ctx context.Context, uw *domain.UserWorkout) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.UserWorkout, error)
	Delete(ctx context.Context, userID primitive.ObjectID, day domain.Weekday) error
	DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error
}
