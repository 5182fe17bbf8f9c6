package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound = errors.New("user not found")
)

// Profile bundles the three per-user settings documents. Any of them
// may be nil when the user has not saved that form yet.
type Profile struct {
	Config   *domain.UserConfig     `json:"config"`
	Goal     *domain.UserGoal       `json:"goal"`
	Training *domain.TrainingConfig `json:"training"`
}

// UserOverview is a user together with their profile, used by the
// admin assignment view.
type UserOverview struct {
	User    domain.User `json:"user"`
	Profile Profile     `json:"profile"`
}

// --- Service Interface ---
type ProfileService interface {
	UpsertUserConfig(ctx context.Context, userID primitive.ObjectID, cfg domain.UserConfig) (*domain.UserConfig, error)
	UpsertUserGoal(ctx context.Context, userID primitive.ObjectID, goal domain.UserGoal) (*domain.UserGoal, error)
	UpsertTrainingConfig(ctx context.Context, userID primitive.ObjectID, cfg domain.TrainingConfig) (*domain.TrainingConfig, error)
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error)
	ListUserOverviews(ctx context.Context) ([]UserOverview, error)
}

// --- Service Implementation ---

type profileService struct {
	userRepo           repository.UserRepository
	userConfigRepo     repository.UserConfigRepository
	userGoalRepo       repository.UserGoalRepository
	trainingConfigRepo repository.TrainingConfigRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	userConfigRepo repository.UserConfigRepository,
	userGoalRepo repository.UserGoalRepository,
	trainingConfigRepo repository.TrainingConfigRepository,
) ProfileService {
	return &profileService{
		userRepo:           userRepo,
		userConfigRepo:     userConfigRepo,
		userGoalRepo:       userGoalRepo,
		trainingConfigRepo: trainingConfigRepo,
	}
}

// UpsertUserConfig validates and saves the biometric configuration.
// The first save inserts, every later save updates in place.
func (s *profileService) UpsertUserConfig(ctx context.Context, userID primitive.ObjectID, cfg domain.UserConfig) (*domain.UserConfig, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if cfg.Age <= 0 {
		return nil, invalidField("age", "must be a positive integer")
	}
	if !cfg.Gender.Valid() {
		return nil, invalidField("gender", "must be one of male, female, other")
	}
	if cfg.Weight <= 0 {
		return nil, invalidField("weight", "must be greater than 0")
	}
	if !cfg.WeightUnit.Valid() {
		return nil, invalidField("weightUnit", "must be kg or lbs")
	}
	if cfg.Height <= 0 {
		return nil, invalidField("height", "must be greater than 0")
	}
	if !cfg.HeightUnit.Valid() {
		return nil, invalidField("heightUnit", "must be cm or ft")
	}
	if !cfg.ActivityLevel.Valid() {
		return nil, invalidField("activityLevel", "unknown activity level %q", cfg.ActivityLevel)
	}

	cfg.UserID = userID
	if err := s.userConfigRepo.Upsert(ctx, &cfg); err != nil {
		return nil, err
	}
	return s.userConfigRepo.GetByUserID(ctx, userID)
}

// defaultTargetWeight fills in for goals that do not target a weight
// change (maintain, endurance, general fitness) when the user leaves
// the field empty.
const defaultTargetWeight = 70 // kg

// UpsertUserGoal validates and saves the fitness goal. A target weight
// is required only for goals that imply a weight change; otherwise an
// empty value falls back to a default. A zero target date defaults to
// one year out.
func (s *profileService) UpsertUserGoal(ctx context.Context, userID primitive.ObjectID, goal domain.UserGoal) (*domain.UserGoal, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if !goal.PrimaryGoal.Valid() {
		return nil, invalidField("primaryGoal", "unknown goal %q", goal.PrimaryGoal)
	}
	if goal.TargetWeight <= 0 {
		if goal.PrimaryGoal.ImpliesWeightChange() {
			return nil, invalidField("targetWeight", "must be greater than 0 for goal %q", goal.PrimaryGoal)
		}
		goal.TargetWeight = defaultTargetWeight
	}
	if goal.TargetDate.IsZero() {
		goal.TargetDate = time.Now().UTC().AddDate(0, 0, 365)
	}

	goal.UserID = userID
	if err := s.userGoalRepo.Upsert(ctx, &goal); err != nil {
		return nil, err
	}
	return s.userGoalRepo.GetByUserID(ctx, userID)
}

// UpsertTrainingConfig validates and saves the training preferences.
// The tag-set fields must be non-empty and drawn from the allowed
// tags; they persist as comma-joined strings and read back as sets.
func (s *profileService) UpsertTrainingConfig(ctx context.Context, userID primitive.ObjectID, cfg domain.TrainingConfig) (*domain.TrainingConfig, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if cfg.TrainingFrequency < 1 || cfg.TrainingFrequency > 7 {
		return nil, invalidField("trainingFrequency", "must be between 1 and 7 sessions per week")
	}
	if cfg.WorkoutDuration < domain.MinWorkoutDuration || cfg.WorkoutDuration > domain.MaxWorkoutDuration {
		return nil, invalidField("workoutDuration", "must be between %d and %d minutes", domain.MinWorkoutDuration, domain.MaxWorkoutDuration)
	}
	if !cfg.ExperienceLevel.Valid() {
		return nil, invalidField("experienceLevel", "unknown experience level %q", cfg.ExperienceLevel)
	}
	if !cfg.TimePreference.Valid() {
		return nil, invalidField("timePreference", "unknown time preference %q", cfg.TimePreference)
	}
	if len(cfg.PreferredWorkoutTypes) == 0 {
		return nil, invalidField("preferredWorkoutTypes", "at least one workout type is required")
	}
	if !domain.ValidTagSet(cfg.PreferredWorkoutTypes, domain.WorkoutTypeTags) {
		return nil, invalidField("preferredWorkoutTypes", "contains an unknown workout type")
	}
	if len(cfg.AvailableEquipment) == 0 {
		return nil, invalidField("availableEquipment", "at least one equipment tag is required")
	}
	if !domain.ValidTagSet(cfg.AvailableEquipment, domain.EquipmentTags) {
		return nil, invalidField("availableEquipment", "contains an unknown equipment tag")
	}

	cfg.UserID = userID
	if err := s.trainingConfigRepo.Upsert(ctx, &cfg); err != nil {
		return nil, err
	}
	return s.trainingConfigRepo.GetByUserID(ctx, userID)
}

// GetProfile returns the user's three settings documents. Documents
// the user has not saved yet come back nil.
func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}

	profile := &Profile{}

	cfg, err := s.userConfigRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	profile.Config = cfg

	goal, err := s.userGoalRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	profile.Goal = goal

	training, err := s.trainingConfigRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	profile.Training = training

	return profile, nil
}

// ListUserOverviews returns every user with their profile attached.
// Feeds the admin view that assigns routines.
func (s *profileService) ListUserOverviews(ctx context.Context) ([]UserOverview, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]UserOverview, 0, len(users))
	for _, u := range users {
		u.PasswordHash = ""
		profile, err := s.GetProfile(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, UserOverview{User: u, Profile: *profile})
	}
	return overviews, nil
}
