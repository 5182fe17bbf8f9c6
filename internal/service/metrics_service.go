package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Unit conversion factors.
const (
	lbsToKg = 0.453592
	ftToCm  = 30.48
)

// Metrics is the result of the metabolic calculation. All values are
// rounded to the nearest integer except WeeklyWeightChange, which
// keeps its fractional kg/week value.
type Metrics struct {
	BMR                 int     `json:"bmr"`
	TDEE                int     `json:"tdee"`
	RecommendedCalories int     `json:"recommendedCalories"`
	WeeklyWeightChange  float64 `json:"weeklyWeightChange"`
	EstimatedTimeToGoal int     `json:"estimatedTimeToGoal"` // weeks
}

// CalculateMetrics derives energy-expenditure and goal-progress
// recommendations from the user's profile. It is pure and
// deterministic: identical inputs always produce identical outputs.
// When any of the three profile documents is absent the zero result is
// returned; an incomplete profile is not an error.
//
// BMR uses the Mifflin-St Jeor equation; TDEE scales it by the
// activity multiplier; the calorie recommendation and weekly weight
// change follow the primary goal (lose_weight: -500 kcal / -0.5 kg,
// gain_muscle: +300 kcal / +0.25 kg, anything else: maintain).
func CalculateMetrics(cfg *domain.UserConfig, goal *domain.UserGoal, training *domain.TrainingConfig) Metrics {
	if cfg == nil || goal == nil || training == nil {
		return Metrics{}
	}

	weightKg := cfg.Weight
	if cfg.WeightUnit == domain.WeightUnitLbs {
		weightKg = cfg.Weight * lbsToKg
	}
	heightCm := cfg.Height
	if cfg.HeightUnit == domain.HeightUnitFt {
		heightCm = cfg.Height * ftToCm
	}

	var bmr float64
	if cfg.Gender == domain.GenderMale {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(cfg.Age) + 5
	} else {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(cfg.Age) - 161
	}

	tdee := bmr * cfg.ActivityLevel.Multiplier()

	recommended := tdee
	weeklyChange := 0.0
	switch goal.PrimaryGoal {
	case domain.GoalLoseWeight:
		recommended = tdee - 500
		weeklyChange = -0.5
	case domain.GoalGainMuscle:
		recommended = tdee + 300
		weeklyChange = 0.25
	}

	// Weeks to goal, in the user's weight unit on both sides of the
	// division. Zero when the goal implies no weight change.
	weeks := 0.0
	if weeklyChange != 0 {
		weeks = math.Abs(goal.TargetWeight-cfg.Weight) / math.Abs(weeklyChange)
	}

	return Metrics{
		BMR:                 int(math.Round(bmr)),
		TDEE:                int(math.Round(tdee)),
		RecommendedCalories: int(math.Round(recommended)),
		WeeklyWeightChange:  weeklyChange,
		EstimatedTimeToGoal: int(math.Round(weeks)),
	}
}

// --- Service wrapper ---

// MetricsService loads a user's profile and runs the calculation over
// it. Read-only, no persistence of results.
type MetricsService interface {
	GetMetricsForUser(ctx context.Context, userID primitive.ObjectID) (Metrics, error)
}

type metricsService struct {
	userConfigRepo     repository.UserConfigRepository
	userGoalRepo       repository.UserGoalRepository
	trainingConfigRepo repository.TrainingConfigRepository
}

// NewMetricsService creates a new instance of metricsService.
func NewMetricsService(
	userConfigRepo repository.UserConfigRepository,
	userGoalRepo repository.UserGoalRepository,
	trainingConfigRepo repository.TrainingConfigRepository,
) MetricsService {
	return &metricsService{
		userConfigRepo:     userConfigRepo,
		userGoalRepo:       userGoalRepo,
		trainingConfigRepo: trainingConfigRepo,
	}
}

// GetMetricsForUser fetches the three profile documents and calculates
// the metrics. Missing documents yield the zero result rather than an
// error, so the endpoint is safe to call before settings are complete.
func (s *metricsService) GetMetricsForUser(ctx context.Context, userID primitive.ObjectID) (Metrics, error) {
	if userID == primitive.NilObjectID {
		return Metrics{}, errors.New("user ID is required")
	}

	cfg, err := s.userConfigRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return Metrics{}, err
	}
	goal, err := s.userGoalRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return Metrics{}, err
	}
	training, err := s.trainingConfigRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return Metrics{}, err
	}

	return CalculateMetrics(cfg, goal, training), nil
}
