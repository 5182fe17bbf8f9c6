package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func maleConfig() *domain.UserConfig {
	return &domain.UserConfig{
		Age:           30,
		Gender:        domain.GenderMale,
		Weight:        70,
		WeightUnit:    domain.WeightUnitKg,
		Height:        175,
		HeightUnit:    domain.HeightUnitCm,
		ActivityLevel: domain.ActivitySedentary,
	}
}

func maintainGoal() *domain.UserGoal {
	return &domain.UserGoal{PrimaryGoal: domain.GoalMaintain, TargetWeight: 70}
}

func anyTraining() *domain.TrainingConfig {
	return &domain.TrainingConfig{TrainingFrequency: 3, WorkoutDuration: 60}
}

func TestCalculateMetricsMaleSedentary(t *testing.T) {
	got := CalculateMetrics(maleConfig(), maintainGoal(), anyTraining())

	if got.BMR != 1649 {
		t.Errorf("BMR = %d, want 1649", got.BMR)
	}
	if got.TDEE != 1979 {
		t.Errorf("TDEE = %d, want 1979", got.TDEE)
	}
	if got.RecommendedCalories != 1979 {
		t.Errorf("RecommendedCalories = %d, want 1979 (maintain)", got.RecommendedCalories)
	}
	if got.WeeklyWeightChange != 0 {
		t.Errorf("WeeklyWeightChange = %v, want 0", got.WeeklyWeightChange)
	}
	if got.EstimatedTimeToGoal != 0 {
		t.Errorf("EstimatedTimeToGoal = %d, want 0", got.EstimatedTimeToGoal)
	}
}

func TestCalculateMetricsFemaleGainMuscle(t *testing.T) {
	cfg := &domain.UserConfig{
		Age:           25,
		Gender:        domain.GenderFemale,
		Weight:        60,
		WeightUnit:    domain.WeightUnitKg,
		Height:        165,
		HeightUnit:    domain.HeightUnitCm,
		ActivityLevel: domain.ActivityModeratelyActive,
	}
	goal := &domain.UserGoal{PrimaryGoal: domain.GoalGainMuscle, TargetWeight: 65}

	got := CalculateMetrics(cfg, goal, anyTraining())

	if got.BMR != 1345 {
		t.Errorf("BMR = %d, want 1345", got.BMR)
	}
	if got.TDEE != 2085 {
		t.Errorf("TDEE = %d, want 2085", got.TDEE)
	}
	if got.RecommendedCalories != 2385 {
		t.Errorf("RecommendedCalories = %d, want 2385", got.RecommendedCalories)
	}
	if got.WeeklyWeightChange != 0.25 {
		t.Errorf("WeeklyWeightChange = %v, want 0.25", got.WeeklyWeightChange)
	}
	if got.EstimatedTimeToGoal != 20 {
		t.Errorf("EstimatedTimeToGoal = %d, want 20 weeks", got.EstimatedTimeToGoal)
	}
}

func TestCalculateMetricsGoalAdjustments(t *testing.T) {
	tests := []struct {
		goal         domain.PrimaryGoal
		wantCalories int
		wantChange   float64
	}{
		{domain.GoalLoseWeight, 1479, -0.5},
		{domain.GoalGainMuscle, 2279, 0.25},
		{domain.GoalMaintain, 1979, 0},
		{domain.GoalImproveEndurance, 1979, 0},
		{domain.GoalGeneralFitness, 1979, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			goal := &domain.UserGoal{PrimaryGoal: tt.goal, TargetWeight: 65}
			got := CalculateMetrics(maleConfig(), goal, anyTraining())
			if got.RecommendedCalories != tt.wantCalories {
				t.Errorf("RecommendedCalories = %d, want %d", got.RecommendedCalories, tt.wantCalories)
			}
			if got.WeeklyWeightChange != tt.wantChange {
				t.Errorf("WeeklyWeightChange = %v, want %v", got.WeeklyWeightChange, tt.wantChange)
			}
		})
	}
}

func TestCalculateMetricsImperialUnits(t *testing.T) {
	cfg := &domain.UserConfig{
		Age:           40,
		Gender:        domain.GenderMale,
		Weight:        200,
		WeightUnit:    domain.WeightUnitLbs,
		Height:        6,
		HeightUnit:    domain.HeightUnitFt,
		ActivityLevel: domain.ActivityLightlyActive,
	}
	goal := &domain.UserGoal{PrimaryGoal: domain.GoalLoseWeight, TargetWeight: 180}

	got := CalculateMetrics(cfg, goal, anyTraining())

	// 200 lbs = 90.7184 kg, 6 ft = 182.88 cm:
	// BMR = 907.184 + 1143 - 200 + 5 = 1855.184
	if got.BMR != 1855 {
		t.Errorf("BMR = %d, want 1855", got.BMR)
	}
	if got.TDEE != 2551 {
		t.Errorf("TDEE = %d, want 2551", got.TDEE)
	}
	if got.RecommendedCalories != 2051 {
		t.Errorf("RecommendedCalories = %d, want 2051", got.RecommendedCalories)
	}
	// Time to goal divides raw stored weights: |180-200| / 0.5 = 40.
	if got.EstimatedTimeToGoal != 40 {
		t.Errorf("EstimatedTimeToGoal = %d, want 40 weeks", got.EstimatedTimeToGoal)
	}
}

func TestCalculateMetricsUnknownActivityFallsBackToSedentary(t *testing.T) {
	cfg := maleConfig()
	cfg.ActivityLevel = "couch_potato"

	got := CalculateMetrics(cfg, maintainGoal(), anyTraining())
	if got.TDEE != 1979 {
		t.Errorf("TDEE = %d, want 1979 (sedentary multiplier)", got.TDEE)
	}
}

func TestCalculateMetricsNilInputs(t *testing.T) {
	cfg, goal, training := maleConfig(), maintainGoal(), anyTraining()

	tests := []struct {
		name     string
		cfg      *domain.UserConfig
		goal     *domain.UserGoal
		training *domain.TrainingConfig
	}{
		{"nil config", nil, goal, training},
		{"nil goal", cfg, nil, training},
		{"nil training", cfg, goal, nil},
		{"all nil", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateMetrics(tt.cfg, tt.goal, tt.training); got != (Metrics{}) {
				t.Errorf("CalculateMetrics = %+v, want zero value", got)
			}
		})
	}
}

func TestCalculateMetricsIsPure(t *testing.T) {
	cfg, goal, training := maleConfig(), maintainGoal(), anyTraining()
	cfgBefore, goalBefore := *cfg, *goal

	first := CalculateMetrics(cfg, goal, training)
	second := CalculateMetrics(cfg, goal, training)

	if first != second {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
	if *cfg != cfgBefore {
		t.Errorf("config mutated: %+v", *cfg)
	}
	if *goal != goalBefore {
		t.Errorf("goal mutated: %+v", *goal)
	}
}

func TestGetMetricsForUserIncompleteProfile(t *testing.T) {
	configRepo := newFakeUserConfigRepo()
	goalRepo := newFakeUserGoalRepo()
	trainingRepo := newFakeTrainingConfigRepo()
	svc := NewMetricsService(configRepo, goalRepo, trainingRepo)

	userID := primitive.NewObjectID()
	cfg := maleConfig()
	cfg.UserID = userID
	if err := configRepo.Upsert(context.Background(), cfg); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	// Goal and training are missing.

	got, err := svc.GetMetricsForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetMetricsForUser: %v", err)
	}
	if got != (Metrics{}) {
		t.Errorf("metrics = %+v, want zero value for incomplete profile", got)
	}
}

func TestGetMetricsForUserCompleteProfile(t *testing.T) {
	configRepo := newFakeUserConfigRepo()
	goalRepo := newFakeUserGoalRepo()
	trainingRepo := newFakeTrainingConfigRepo()
	svc := NewMetricsService(configRepo, goalRepo, trainingRepo)

	ctx := context.Background()
	userID := primitive.NewObjectID()

	cfg := maleConfig()
	cfg.UserID = userID
	goal := maintainGoal()
	goal.UserID = userID
	training := anyTraining()
	training.UserID = userID
	training.PreferredWorkoutTypes = []string{"strength"}
	training.AvailableEquipment = []string{"none"}

	if err := configRepo.Upsert(ctx, cfg); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	if err := goalRepo.Upsert(ctx, goal); err != nil {
		t.Fatalf("seed goal: %v", err)
	}
	if err := trainingRepo.Upsert(ctx, training); err != nil {
		t.Fatalf("seed training: %v", err)
	}

	got, err := svc.GetMetricsForUser(ctx, userID)
	if err != nil {
		t.Fatalf("GetMetricsForUser: %v", err)
	}
	if got.BMR != 1649 || got.TDEE != 1979 {
		t.Errorf("metrics = %+v, want BMR 1649 / TDEE 1979", got)
	}
}
