package domain

import "testing"

func TestJoinTagSetNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"sorted dedup", []string{"yoga", "strength", "yoga"}, "strength,yoga"},
		{"trims whitespace", []string{" cardio ", "hiit"}, "cardio,hiit"},
		{"drops empties", []string{"", "  ", "pilates"}, "pilates"},
		{"empty set", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinTagSet(tt.in); got != tt.want {
				t.Errorf("JoinTagSet(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTagSetRoundTrip(t *testing.T) {
	// Equal sets in different order must produce the same persisted
	// form and read back identically.
	a := JoinTagSet([]string{"dumbbells", "bench", "none"})
	b := JoinTagSet([]string{"none", "dumbbells", "bench"})
	if a != b {
		t.Fatalf("order-sensitive persisted form: %q vs %q", a, b)
	}

	got := SplitTagSet(a)
	want := []string{"bench", "dumbbells", "none"}
	if len(got) != len(want) {
		t.Fatalf("SplitTagSet(%q) = %v, want %v", a, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SplitTagSet(%q) = %v, want %v", a, got, want)
		}
	}
}

func TestSplitTagSetEmpty(t *testing.T) {
	if got := SplitTagSet(""); got != nil {
		t.Errorf("SplitTagSet(\"\") = %v, want nil", got)
	}
}

func TestValidTagSet(t *testing.T) {
	if !ValidTagSet([]string{"strength", "cardio"}, WorkoutTypeTags) {
		t.Error("known workout types rejected")
	}
	if ValidTagSet([]string{"strength", "juggling"}, WorkoutTypeTags) {
		t.Error("unknown workout type accepted")
	}
	if !ValidTagSet(nil, EquipmentTags) {
		t.Error("empty set should be valid at this layer")
	}
}

func TestPrimaryGoalImpliesWeightChange(t *testing.T) {
	weightGoals := []PrimaryGoal{GoalLoseWeight, GoalGainMuscle}
	for _, g := range weightGoals {
		if !g.ImpliesWeightChange() {
			t.Errorf("ImpliesWeightChange(%q) = false, want true", g)
		}
	}
	otherGoals := []PrimaryGoal{GoalMaintain, GoalImproveEndurance, GoalGeneralFitness}
	for _, g := range otherGoals {
		if g.ImpliesWeightChange() {
			t.Errorf("ImpliesWeightChange(%q) = true, want false", g)
		}
	}
}

func TestActivityLevelMultiplier(t *testing.T) {
	tests := []struct {
		level ActivityLevel
		want  float64
	}{
		{ActivitySedentary, 1.2},
		{ActivityLightlyActive, 1.375},
		{ActivityModeratelyActive, 1.55},
		{ActivityVeryActive, 1.725},
		{ActivityExtremelyActive, 1.9},
		{"", 1.2},
		{"unknown", 1.2},
	}
	for _, tt := range tests {
		if got := tt.level.Multiplier(); got != tt.want {
			t.Errorf("Multiplier(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
