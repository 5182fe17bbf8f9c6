package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type scheduleFixture struct {
	svc       ScheduleService
	userRepo  *fakeUserRepo
	workouts  *fakeWorkoutRepo
	userID    primitive.ObjectID
	workoutID primitive.ObjectID
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()
	userRepo := newFakeUserRepo()
	workoutRepo := newFakeWorkoutRepo()
	userWorkoutRepo := newFakeUserWorkoutRepo()

	userID := userRepo.add(domain.User{Name: "Sam", Email: "sam@example.com", Role: domain.RoleMember})
	workoutID := workoutRepo.add(domain.Workout{Name: "Push Day", Duration: 60})

	return &scheduleFixture{
		svc:       NewScheduleService(userRepo, workoutRepo, userWorkoutRepo),
		userRepo:  userRepo,
		workouts:  workoutRepo,
		userID:    userID,
		workoutID: workoutID,
	}
}

func TestAssignAndConflict(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	assignment, err := f.svc.Assign(ctx, f.userID, f.workoutID, domain.Monday)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if assignment.AssignedDay != domain.Monday {
		t.Errorf("AssignedDay = %q, want monday", assignment.AssignedDay)
	}
	if assignment.ID == primitive.NilObjectID {
		t.Error("assignment ID not set")
	}

	// Same day again, even with a different workout, must conflict.
	otherWorkout := f.workouts.add(domain.Workout{Name: "Pull Day", Duration: 45})
	if _, err := f.svc.Assign(ctx, f.userID, otherWorkout, domain.Monday); !errors.Is(err, ErrDayOccupied) {
		t.Errorf("second Assign error = %v, want ErrDayOccupied", err)
	}
}

func TestAssignInvalidWeekday(t *testing.T) {
	f := newScheduleFixture(t)

	for _, day := range []domain.Weekday{"Monday", "MONDAY", "mon", "funday", ""} {
		if _, err := f.svc.Assign(context.Background(), f.userID, f.workoutID, day); !errors.Is(err, ErrInvalidWeekday) {
			t.Errorf("Assign(%q) error = %v, want ErrInvalidWeekday", day, err)
		}
	}
}

func TestAssignMissingUserOrWorkout(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Assign(ctx, primitive.NewObjectID(), f.workoutID, domain.Monday); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user error = %v, want ErrUserNotFound", err)
	}
	if _, err := f.svc.Assign(ctx, f.userID, primitive.NewObjectID(), domain.Monday); !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("unknown workout error = %v, want ErrWorkoutNotFound", err)
	}
}

func TestDayPartitionInvariant(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	check := func(wantOccupied int) {
		t.Helper()
		occupied, err := f.svc.OccupiedDays(ctx, f.userID)
		if err != nil {
			t.Fatalf("OccupiedDays: %v", err)
		}
		available, err := f.svc.AvailableDays(ctx, f.userID)
		if err != nil {
			t.Fatalf("AvailableDays: %v", err)
		}
		if len(occupied) != wantOccupied {
			t.Errorf("len(occupied) = %d, want %d", len(occupied), wantOccupied)
		}
		if len(occupied)+len(available) != 7 {
			t.Errorf("partition broken: %d occupied + %d available != 7", len(occupied), len(available))
		}
		seen := make(map[domain.Weekday]bool)
		for _, d := range occupied {
			seen[d] = true
		}
		for _, d := range available {
			if seen[d] {
				t.Errorf("day %q in both occupied and available", d)
			}
			seen[d] = true
		}
		for _, d := range domain.Weekdays() {
			if !seen[d] {
				t.Errorf("day %q in neither set", d)
			}
		}
	}

	check(0)

	for i, day := range []domain.Weekday{domain.Wednesday, domain.Monday, domain.Saturday} {
		if _, err := f.svc.Assign(ctx, f.userID, f.workoutID, day); err != nil {
			t.Fatalf("Assign(%q): %v", day, err)
		}
		check(i + 1)
	}

	// Occupied days come back in canonical Monday-first order
	// regardless of assignment order.
	occupied, err := f.svc.OccupiedDays(ctx, f.userID)
	if err != nil {
		t.Fatalf("OccupiedDays: %v", err)
	}
	want := []domain.Weekday{domain.Monday, domain.Wednesday, domain.Saturday}
	for i, d := range want {
		if occupied[i] != d {
			t.Fatalf("occupied = %v, want %v", occupied, want)
		}
	}
}

func TestUnassignFreesDay(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Assign(ctx, f.userID, f.workoutID, domain.Friday); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := f.svc.Unassign(ctx, f.userID, domain.Friday); err != nil {
		t.Fatalf("Unassign: %v", err)
	}

	// The freed day accepts a new assignment.
	if _, err := f.svc.Assign(ctx, f.userID, f.workoutID, domain.Friday); err != nil {
		t.Errorf("re-Assign after Unassign: %v", err)
	}
}

func TestUnassignErrors(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	if err := f.svc.Unassign(ctx, f.userID, "someday"); !errors.Is(err, ErrInvalidWeekday) {
		t.Errorf("invalid day error = %v, want ErrInvalidWeekday", err)
	}
	if err := f.svc.Unassign(ctx, f.userID, domain.Tuesday); !errors.Is(err, ErrAssignmentMissing) {
		t.Errorf("empty day error = %v, want ErrAssignmentMissing", err)
	}
}

func TestAssignmentsForUser(t *testing.T) {
	f := newScheduleFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Assign(ctx, f.userID, f.workoutID, domain.Monday); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if _, err := f.svc.Assign(ctx, f.userID, f.workoutID, domain.Thursday); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	assignments, err := f.svc.AssignmentsForUser(ctx, f.userID)
	if err != nil {
		t.Fatalf("AssignmentsForUser: %v", err)
	}
	if len(assignments) != 2 {
		t.Errorf("len(assignments) = %d, want 2", len(assignments))
	}

	if _, err := f.svc.AssignmentsForUser(ctx, primitive.NewObjectID()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user error = %v, want ErrUserNotFound", err)
	}
}
