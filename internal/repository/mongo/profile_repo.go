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

const (
	userConfigCollectionName     = "user_configs"
	userGoalCollectionName       = "user_goals"
	trainingConfigCollectionName = "training_configs"
)

// The three profile collections share the same shape of access: one
// document per user, replaced in place on every save. A unique index
// on userId guarantees the zero-or-one invariant even under concurrent
// saves.

// --- UserConfig ---

type mongoUserConfigRepository struct {
	collection *mongo.Collection
}

// NewMongoUserConfigRepository creates a UserConfig repository backed by MongoDB.
func NewMongoUserConfigRepository(db *mongo.Database) repository.UserConfigRepository {
	return &mongoUserConfigRepository{collection: db.Collection(userConfigCollectionName)}
}

func (r *mongoUserConfigRepository) Upsert(ctx context.Context, cfg *domain.UserConfig) error {
	if cfg.UserID == primitive.NilObjectID {
		return errors.New("user config requires userId")
	}
	cfg.UpdatedAt = time.Now().UTC()

	filter := bson.M{"userId": cfg.UserID}
	update := bson.M{
		"$set": bson.M{
			"age":           cfg.Age,
			"gender":        cfg.Gender,
			"weight":        cfg.Weight,
			"weightUnit":    cfg.WeightUnit,
			"height":        cfg.Height,
			"heightUnit":    cfg.HeightUnit,
			"activityLevel": cfg.ActivityLevel,
			"lang":          cfg.Language,
			"updatedAt":     cfg.UpdatedAt,
		},
		"$setOnInsert": bson.M{"userId": cfg.UserID},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoUserConfigRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserConfig, error) {
	var cfg domain.UserConfig
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// EnsureUserConfigIndexes creates necessary indexes for the user_configs collection.
func EnsureUserConfigIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}

// --- UserGoal ---

type mongoUserGoalRepository struct {
	collection *mongo.Collection
}

// NewMongoUserGoalRepository creates a UserGoal repository backed by MongoDB.
func NewMongoUserGoalRepository(db *mongo.Database) repository.UserGoalRepository {
	return &mongoUserGoalRepository{collection: db.Collection(userGoalCollectionName)}
}

func (r *mongoUserGoalRepository) Upsert(ctx context.Context, goal *domain.UserGoal) error {
	if goal.UserID == primitive.NilObjectID {
		return errors.New("user goal requires userId")
	}
	goal.UpdatedAt = time.Now().UTC()

	filter := bson.M{"userId": goal.UserID}
	update := bson.M{
		"$set": bson.M{
			"primaryGoal":  goal.PrimaryGoal,
			"targetWeight": goal.TargetWeight,
			"targetDate":   goal.TargetDate,
			"updatedAt":    goal.UpdatedAt,
		},
		"$setOnInsert": bson.M{"userId": goal.UserID},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoUserGoalRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserGoal, error) {
	var goal domain.UserGoal
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&goal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// EnsureUserGoalIndexes creates necessary indexes for the user_goals collection.
func EnsureUserGoalIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}

// --- TrainingConfig ---

// trainingConfigDoc is the persisted form of domain.TrainingConfig:
// the tag-set fields are stored as comma-joined strings.
type trainingConfigDoc struct {
	ID                    primitive.ObjectID     `bson:"_id,omitempty"`
	UserID                primitive.ObjectID     `bson:"userId"`
	TrainingFrequency     int                    `bson:"trainingFrequency"`
	WorkoutDuration       int                    `bson:"workoutDuration"`
	ExperienceLevel       domain.ExperienceLevel `bson:"experienceLevel"`
	TimePreference        domain.TimePreference  `bson:"timePreference"`
	PreferredWorkoutTypes string                 `bson:"preferredWorkoutTypes"`
	AvailableEquipment    string                 `bson:"availableEquipment"`
	UpdatedAt             time.Time              `bson:"updatedAt"`
}

func (d *trainingConfigDoc) toDomain() *domain.TrainingConfig {
	return &domain.TrainingConfig{
		ID:                    d.ID,
		UserID:                d.UserID,
		TrainingFrequency:     d.TrainingFrequency,
		WorkoutDuration:       d.WorkoutDuration,
		ExperienceLevel:       d.ExperienceLevel,
		TimePreference:        d.TimePreference,
		PreferredWorkoutTypes: domain.SplitTagSet(d.PreferredWorkoutTypes),
		AvailableEquipment:    domain.SplitTagSet(d.AvailableEquipment),
		UpdatedAt:             d.UpdatedAt,
	}
}

type mongoTrainingConfigRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainingConfigRepository creates a TrainingConfig repository backed by MongoDB.
func NewMongoTrainingConfigRepository(db *mongo.Database) repository.TrainingConfigRepository {
	return &mongoTrainingConfigRepository{collection: db.Collection(trainingConfigCollectionName)}
}

func (r *mongoTrainingConfigRepository) Upsert(ctx context.Context, cfg *domain.TrainingConfig) error {
	if cfg.UserID == primitive.NilObjectID {
		return errors.New("training config requires userId")
	}
	cfg.UpdatedAt = time.Now().UTC()

	filter := bson.M{"userId": cfg.UserID}
	update := bson.M{
		"$set": bson.M{
			"trainingFrequency":     cfg.TrainingFrequency,
			"workoutDuration":       cfg.WorkoutDuration,
			"experienceLevel":       cfg.ExperienceLevel,
			"timePreference":        cfg.TimePreference,
			"preferredWorkoutTypes": domain.JoinTagSet(cfg.PreferredWorkoutTypes),
			"availableEquipment":    domain.JoinTagSet(cfg.AvailableEquipment),
			"updatedAt":             cfg.UpdatedAt,
		},
		"$setOnInsert": bson.M{"userId": cfg.UserID},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (r *mongoTrainingConfigRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.TrainingConfig, error) {
	var doc trainingConfigDoc
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// EnsureTrainingConfigIndexes creates necessary indexes for the training_configs collection.
func EnsureTrainingConfigIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
