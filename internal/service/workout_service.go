package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

// MissingExercisesError is returned when a workout references catalog
// exercises that do not exist. It lists every missing ID so the caller
// can report them all at once; no write has happened when it is raised.
type MissingExercisesError struct {
	IDs []primitive.ObjectID
}

func (e *MissingExercisesError) Error() string {
	hexIDs := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		hexIDs[i] = id.Hex()
	}
	return fmt.Sprintf("exercises not found with IDs: %s", strings.Join(hexIDs, ", "))
}

// WorkoutExerciseInput is one requested entry of a new workout.
type WorkoutExerciseInput struct {
	ExerciseID primitive.ObjectID
	Sets       int
	Reps       int
}

// CreateWorkoutInput is the full contract for composing a workout.
type CreateWorkoutInput struct {
	Name      string
	Duration  int // minutes
	Exercises []WorkoutExerciseInput
}

// --- Service Interface ---
type WorkoutService interface {
	Create(ctx context.Context, input CreateWorkoutInput) (*domain.Workout, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// --- Service Implementation ---

type workoutService struct {
	workoutRepo     repository.WorkoutRepository
	exerciseRepo    repository.ExerciseRepository
	userWorkoutRepo repository.UserWorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(
	workoutRepo repository.WorkoutRepository,
	exerciseRepo repository.ExerciseRepository,
	userWorkoutRepo repository.UserWorkoutRepository,
) WorkoutService {
	return &workoutService{
		workoutRepo:     workoutRepo,
		exerciseRepo:    exerciseRepo,
		userWorkoutRepo: userWorkoutRepo,
	}
}

// Create validates and persists a workout with its exercise list as a
// single unit. Shape validation runs first, then the whole exercise
// list is checked against the catalog in one batch; only when every
// referenced exercise exists is anything written. Each entry snapshots
// the catalog exercise's name at creation time.
func (s *workoutService) Create(ctx context.Context, input CreateWorkoutInput) (*domain.Workout, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, invalidField("name", "workout name is required")
	}
	if input.Duration < domain.MinWorkoutDuration || input.Duration > domain.MaxWorkoutDuration {
		return nil, invalidField("duration", "must be between %d and %d minutes", domain.MinWorkoutDuration, domain.MaxWorkoutDuration)
	}
	if len(input.Exercises) == 0 {
		return nil, invalidField("exercises", "at least one exercise is required")
	}
	for i, e := range input.Exercises {
		if e.ExerciseID == primitive.NilObjectID {
			return nil, invalidField(fmt.Sprintf("exercises[%d].exerciseId", i), "exercise ID is required")
		}
		if e.Sets < domain.MinSets || e.Sets > domain.MaxSets {
			return nil, invalidField(fmt.Sprintf("exercises[%d].sets", i), "must be between %d and %d", domain.MinSets, domain.MaxSets)
		}
		if e.Reps < domain.MinReps || e.Reps > domain.MaxReps {
			return nil, invalidField(fmt.Sprintf("exercises[%d].reps", i), "must be between %d and %d", domain.MinReps, domain.MaxReps)
		}
	}

	// Batch existence check against the catalog.
	distinct := make([]primitive.ObjectID, 0, len(input.Exercises))
	seen := make(map[primitive.ObjectID]struct{}, len(input.Exercises))
	for _, e := range input.Exercises {
		if _, ok := seen[e.ExerciseID]; ok {
			continue
		}
		seen[e.ExerciseID] = struct{}{}
		distinct = append(distinct, e.ExerciseID)
	}

	found, err := s.exerciseRepo.GetByIDs(ctx, distinct)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]domain.Exercise, len(found))
	for _, ex := range found {
		byID[ex.ID] = ex
	}

	var missing []primitive.ObjectID
	for _, id := range distinct {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i].Hex() < missing[j].Hex() })
		return nil, &MissingExercisesError{IDs: missing}
	}

	entries := make([]domain.WorkoutExercise, len(input.Exercises))
	for i, e := range input.Exercises {
		entries[i] = domain.WorkoutExercise{
			ExerciseID: e.ExerciseID,
			Name:       byID[e.ExerciseID].Name,
			Sets:       e.Sets,
			Reps:       e.Reps,
		}
	}

	workout := &domain.Workout{
		Name:      strings.TrimSpace(input.Name),
		Duration:  input.Duration,
		Exercises: entries,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID
	return workout, nil
}

// GetByID retrieves a single workout with its exercise list.
func (s *workoutService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// List retrieves all workouts with their exercise lists.
func (s *workoutService) List(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.List(ctx)
}

// Delete removes a workout and cascade-deletes every day assignment
// that references it, so no user schedule keeps a dangling routine.
// Assignments go first: if the process dies between the two deletes
// the workout still exists and the operation can be retried.
func (s *workoutService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.workoutRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}

	if err := s.userWorkoutRepo.DeleteByWorkoutID(ctx, id); err != nil {
		return err
	}

	err := s.workoutRepo.Delete(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}
