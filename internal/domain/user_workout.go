package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Weekday is one of the 7 canonical day keys used to schedule
// assignments. The set is closed; keys are lowercase and
// case-sensitive.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays returns the full weekday set in canonical Monday-first
// order. Callers get a fresh slice they may modify.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// Label returns the display label for the day key.
func (d Weekday) Label() string {
	switch d {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	}
	return ""
}

// UserWorkout binds a workout routine to a user on a weekday. For any
// user there is at most one assignment per day; the storage layer
// enforces this with a unique (userId, assignedDay) index.
type UserWorkout struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	WorkoutID   primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	AssignedDay Weekday            `bson:"assignedDay" json:"assignedDay"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
