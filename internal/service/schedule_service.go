package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrDayOccupied       = errors.New("a workout is already assigned to this day")
	ErrInvalidWeekday    = errors.New("not a valid weekday key")
	ErrAssignmentMissing = errors.New("no workout assigned to this day")
)

// --- Service Interface ---
type ScheduleService interface {
	OccupiedDays(ctx context.Context, userID primitive.ObjectID) ([]domain.Weekday, error)
	AvailableDays(ctx context.Context, userID primitive.ObjectID) ([]domain.Weekday, error)
	Assign(ctx context.Context, userID, workoutID primitive.ObjectID, day domain.Weekday) (*domain.UserWorkout, error)
	Unassign(ctx context.Context, userID primitive.ObjectID, day domain.Weekday) error
	AssignmentsForUser(ctx context.Context, userID primitive.ObjectID) ([]domain.UserWorkout, error)
}

// --- Service Implementation ---

type scheduleService struct {
	userRepo        repository.UserRepository
	workoutRepo     repository.WorkoutRepository
	userWorkoutRepo repository.UserWorkoutRepository
}

// NewScheduleService creates a new instance of scheduleService.
func NewScheduleService(
	userRepo repository.UserRepository,
	workoutRepo repository.WorkoutRepository,
	userWorkoutRepo repository.UserWorkoutRepository,
) ScheduleService {
	return &scheduleService{
		userRepo:        userRepo,
		workoutRepo:     workoutRepo,
		userWorkoutRepo: userWorkoutRepo,
	}
}

// OccupiedDays returns the weekday keys that already carry an
// assignment for the user, in canonical Monday-first order.
func (s *scheduleService) OccupiedDays(ctx context.Context, userID primitive.ObjectID) ([]domain.Weekday, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}

	assignments, err := s.userWorkoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	taken := make(map[domain.Weekday]bool, len(assignments))
	for _, a := range assignments {
		taken[a.AssignedDay] = true
	}

	occupied := make([]domain.Weekday, 0, len(taken))
	for _, day := range domain.Weekdays() {
		if taken[day] {
			occupied = append(occupied, day)
		}
	}
	return occupied, nil
}

// AvailableDays returns the complement of OccupiedDays within the
// 7-day set. The two together always partition the full week.
func (s *scheduleService) AvailableDays(ctx context.Context, userID primitive.ObjectID) ([]domain.Weekday, error) {
	occupied, err := s.OccupiedDays(ctx, userID)
	if err != nil {
		return nil, err
	}

	taken := make(map[domain.Weekday]bool, len(occupied))
	for _, day := range occupied {
		taken[day] = true
	}

	available := make([]domain.Weekday, 0, 7-len(occupied))
	for _, day := range domain.Weekdays() {
		if !taken[day] {
			available = append(available, day)
		}
	}
	return available, nil
}

// Assign binds a workout to a user on a weekday. The service checks
// the day is free before writing, but the unique (userId, assignedDay)
// index is what actually decides a race: a concurrent writer that
// loses the insert gets ErrDayOccupied here.
func (s *scheduleService) Assign(ctx context.Context, userID, workoutID primitive.ObjectID, day domain.Weekday) (*domain.UserWorkout, error) {
	if userID == primitive.NilObjectID || workoutID == primitive.NilObjectID {
		return nil, errors.New("user ID and workout ID are required")
	}
	if !day.Valid() {
		return nil, ErrInvalidWeekday
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.workoutRepo.GetByID(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	// Advisory pre-check for a clean error on the common path.
	occupied, err := s.OccupiedDays(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, d := range occupied {
		if d == day {
			return nil, ErrDayOccupied
		}
	}

	assignment := &domain.UserWorkout{
		UserID:      userID,
		WorkoutID:   workoutID,
		AssignedDay: day,
	}

	assignmentID, err := s.userWorkoutRepo.Create(ctx, assignment)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDayOccupied
		}
		return nil, err
	}
	assignment.ID = assignmentID
	return assignment, nil
}

// Unassign removes the user's assignment on the given day. Moving a
// workout to another day is unassign followed by a fresh Assign.
func (s *scheduleService) Unassign(ctx context.Context, userID primitive.ObjectID, day domain.Weekday) error {
	if userID == primitive.NilObjectID {
		return errors.New("user ID is required")
	}
	if !day.Valid() {
		return ErrInvalidWeekday
	}

	err := s.userWorkoutRepo.Delete(ctx, userID, day)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentMissing
		}
		return err
	}
	return nil
}

// AssignmentsForUser returns the user's weekly schedule.
func (s *scheduleService) AssignmentsForUser(ctx context.Context, userID primitive.ObjectID) ([]domain.UserWorkout, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.userWorkoutRepo.GetByUserID(ctx, userID)
}
