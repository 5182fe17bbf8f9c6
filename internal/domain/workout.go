package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bounds for workout validation.
const (
	MinWorkoutDuration = 15  // minutes
	MaxWorkoutDuration = 120 // minutes
	MinSets            = 1
	MaxSets            = 10
	MinReps            = 1
	MaxReps            = 100
)

// WorkoutExercise is one entry of a workout routine. Name is a
// snapshot of the catalog exercise's name taken at creation time; it
// does not track later catalog renames.
type WorkoutExercise struct {
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Name       string             `bson:"name" json:"name"`
	Sets       int                `bson:"sets" json:"sets"`
	Reps       int                `bson:"reps" json:"reps"`
}

// Workout is a named, reusable routine with an ordered exercise list.
// The exercises are embedded in the workout document so header and
// entries are always created and deleted together.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Duration  int                `bson:"duration" json:"duration"` // minutes
	Exercises []WorkoutExercise  `bson:"exercises" json:"exercises"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
