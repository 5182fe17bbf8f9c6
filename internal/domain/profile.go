package domain

import (
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender enum for the user configuration.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Units for weight and height. Stored values keep the unit the user
// entered; conversion to metric happens only inside calculations.
type WeightUnit string

const (
	WeightUnitKg  WeightUnit = "kg"
	WeightUnitLbs WeightUnit = "lbs"
)

func (u WeightUnit) Valid() bool {
	return u == WeightUnitKg || u == WeightUnitLbs
}

type HeightUnit string

const (
	HeightUnitCm HeightUnit = "cm"
	HeightUnitFt HeightUnit = "ft"
)

func (u HeightUnit) Valid() bool {
	return u == HeightUnitCm || u == HeightUnitFt
}

// ActivityLevel describes habitual daily activity, used to scale BMR
// into TDEE.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
		ActivityVeryActive, ActivityExtremelyActive:
		return true
	}
	return false
}

// Multiplier returns the TDEE activity multiplier. Unknown or empty
// levels fall back to the sedentary multiplier.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivityLightlyActive:
		return 1.375
	case ActivityModeratelyActive:
		return 1.55
	case ActivityVeryActive:
		return 1.725
	case ActivityExtremelyActive:
		return 1.9
	default:
		return 1.2
	}
}

// UserConfig holds the biometric settings for a user. There is at most
// one per user; saves are upserts.
type UserConfig struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Age           int                `bson:"age" json:"age"`
	Gender        Gender             `bson:"gender" json:"gender"`
	Weight        float64            `bson:"weight" json:"weight"`
	WeightUnit    WeightUnit         `bson:"weightUnit" json:"weightUnit"`
	Height        float64            `bson:"height" json:"height"`
	HeightUnit    HeightUnit         `bson:"heightUnit" json:"heightUnit"`
	ActivityLevel ActivityLevel      `bson:"activityLevel" json:"activityLevel"`
	Language      string             `bson:"lang" json:"lang"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PrimaryGoal enum for the user's fitness goal.
type PrimaryGoal string

const (
	GoalLoseWeight       PrimaryGoal = "lose_weight"
	GoalGainMuscle       PrimaryGoal = "gain_muscle"
	GoalMaintain         PrimaryGoal = "maintain"
	GoalImproveEndurance PrimaryGoal = "improve_endurance"
	GoalGeneralFitness   PrimaryGoal = "general_fitness"
)

func (g PrimaryGoal) Valid() bool {
	switch g {
	case GoalLoseWeight, GoalGainMuscle, GoalMaintain, GoalImproveEndurance, GoalGeneralFitness:
		return true
	}
	return false
}

// ImpliesWeightChange reports whether the goal targets a body-weight
// change, which is when a target weight is meaningful.
func (g PrimaryGoal) ImpliesWeightChange() bool {
	return g == GoalLoseWeight || g == GoalGainMuscle
}

// UserGoal holds the target the user is working towards. At most one
// per user; saves are upserts.
type UserGoal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	PrimaryGoal  PrimaryGoal        `bson:"primaryGoal" json:"primaryGoal"`
	TargetWeight float64            `bson:"targetWeight" json:"targetWeight"`
	TargetDate   time.Time          `bson:"targetDate" json:"targetDate"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ExperienceLevel enum for the training configuration.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// TimePreference enum for when the user prefers to train.
type TimePreference string

const (
	TimeMorning   TimePreference = "morning"
	TimeAfternoon TimePreference = "afternoon"
	TimeEvening   TimePreference = "evening"
	TimeFlexible  TimePreference = "flexible"
)

func (t TimePreference) Valid() bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeFlexible:
		return true
	}
	return false
}

// TrainingConfig holds training preferences for a user. At most one
// per user; saves are upserts. The tag-set fields are persisted as
// comma-joined strings and must round-trip as sets.
type TrainingConfig struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID                primitive.ObjectID `bson:"userId" json:"userId"`
	TrainingFrequency     int                `bson:"trainingFrequency" json:"trainingFrequency"` // sessions per week, 1-7
	WorkoutDuration       int                `bson:"workoutDuration" json:"workoutDuration"`     // minutes, 15-120
	ExperienceLevel       ExperienceLevel    `bson:"experienceLevel" json:"experienceLevel"`
	TimePreference        TimePreference     `bson:"timePreference" json:"timePreference"`
	PreferredWorkoutTypes []string           `bson:"-" json:"preferredWorkoutTypes"`
	AvailableEquipment    []string           `bson:"-" json:"availableEquipment"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Allowed values for the two tag-set fields.
var (
	WorkoutTypeTags = []string{
		"strength", "cardio", "hiit", "yoga", "pilates", "crossfit", "bodyweight", "stretching",
	}
	EquipmentTags = []string{
		"dumbbells", "barbell", "kettlebells", "resistance_bands", "pull_up_bar", "bench", "treadmill", "none",
	}
)

// ValidTagSet reports whether every tag in the set is present in the
// allowed list.
func ValidTagSet(tags, allowed []string) bool {
	for _, t := range tags {
		found := false
		for _, a := range allowed {
			if t == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// JoinTagSet normalizes a tag set into its persisted comma-joined
// form: trimmed, deduplicated and sorted so equal sets always produce
// the same string.
func JoinTagSet(tags []string) string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}

// SplitTagSet parses the persisted comma-joined form back into a tag
// set, dropping empty entries.
func SplitTagSet(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
