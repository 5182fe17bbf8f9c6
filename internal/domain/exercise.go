package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise represents a single entry in the exercise catalog. The
// catalog is seeded once and read-only afterwards; regular users never
// modify it. Image and VideoURL hold either absolute URLs or S3 object
// keys that the service layer resolves to presigned URLs.
type Exercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Image        string             `bson:"image" json:"image"`
	VideoURL     string             `bson:"videoUrl" json:"videoUrl"`
	MuscleGroups string             `bson:"muscleGroups" json:"muscleGroups"` // comma-delimited tag set, e.g. "chest,triceps"
	Equipment    string             `bson:"equipment" json:"equipment"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
