package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the service tests. They honor the
// same error contracts as the Mongo implementations: ErrNotFound on
// misses and ErrDuplicateKey on unique-index violations.

type fakeUserRepo struct {
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *fakeUserRepo) add(user domain.User) primitive.ObjectID {
	if user.ID == primitive.NilObjectID {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return user.ID
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	id := primitive.NewObjectID()
	user.ID = id
	r.users[id] = *user
	return id, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := u
	return &user, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeUserConfigRepo struct {
	configs map[primitive.ObjectID]domain.UserConfig
}

func newFakeUserConfigRepo() *fakeUserConfigRepo {
	return &fakeUserConfigRepo{configs: make(map[primitive.ObjectID]domain.UserConfig)}
}

func (r *fakeUserConfigRepo) Upsert(ctx context.Context, cfg *domain.UserConfig) error {
	existing, ok := r.configs[cfg.UserID]
	if ok {
		cfg.ID = existing.ID
	} else {
		cfg.ID = primitive.NewObjectID()
	}
	r.configs[cfg.UserID] = *cfg
	return nil
}

func (r *fakeUserConfigRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserConfig, error) {
	cfg, ok := r.configs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cfg
	return &out, nil
}

type fakeUserGoalRepo struct {
	goals map[primitive.ObjectID]domain.UserGoal
}

func newFakeUserGoalRepo() *fakeUserGoalRepo {
	return &fakeUserGoalRepo{goals: make(map[primitive.ObjectID]domain.UserGoal)}
}

func (r *fakeUserGoalRepo) Upsert(ctx context.Context, goal *domain.UserGoal) error {
	existing, ok := r.goals[goal.UserID]
	if ok {
		goal.ID = existing.ID
	} else {
		goal.ID = primitive.NewObjectID()
	}
	r.goals[goal.UserID] = *goal
	return nil
}

func (r *fakeUserGoalRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.UserGoal, error) {
	goal, ok := r.goals[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := goal
	return &out, nil
}

// fakeTrainingConfigRepo mimics the persisted comma-joined tag form so
// round-trip behavior matches the Mongo repository.
type fakeTrainingConfigRepo struct {
	configs map[primitive.ObjectID]domain.TrainingConfig
	types   map[primitive.ObjectID]string
	equip   map[primitive.ObjectID]string
}

func newFakeTrainingConfigRepo() *fakeTrainingConfigRepo {
	return &fakeTrainingConfigRepo{
		configs: make(map[primitive.ObjectID]domain.TrainingConfig),
		types:   make(map[primitive.ObjectID]string),
		equip:   make(map[primitive.ObjectID]string),
	}
}

func (r *fakeTrainingConfigRepo) Upsert(ctx context.Context, cfg *domain.TrainingConfig) error {
	existing, ok := r.configs[cfg.UserID]
	if ok {
		cfg.ID = existing.ID
	} else {
		cfg.ID = primitive.NewObjectID()
	}
	r.configs[cfg.UserID] = *cfg
	r.types[cfg.UserID] = domain.JoinTagSet(cfg.PreferredWorkoutTypes)
	r.equip[cfg.UserID] = domain.JoinTagSet(cfg.AvailableEquipment)
	return nil
}

func (r *fakeTrainingConfigRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.TrainingConfig, error) {
	cfg, ok := r.configs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cfg
	out.PreferredWorkoutTypes = domain.SplitTagSet(r.types[userID])
	out.AvailableEquipment = domain.SplitTagSet(r.equip[userID])
	return &out, nil
}

type fakeExerciseRepo struct {
	exercises map[primitive.ObjectID]domain.Exercise
}

func newFakeExerciseRepo() *fakeExerciseRepo {
	return &fakeExerciseRepo{exercises: make(map[primitive.ObjectID]domain.Exercise)}
}

func (r *fakeExerciseRepo) add(name string) primitive.ObjectID {
	id := primitive.NewObjectID()
	r.exercises[id] = domain.Exercise{ID: id, Name: name}
	return id
}

func (r *fakeExerciseRepo) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	for _, e := range r.exercises {
		if e.Name == exercise.Name {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	id := primitive.NewObjectID()
	exercise.ID = id
	r.exercises[id] = *exercise
	return id, nil
}

func (r *fakeExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	e, ok := r.exercises[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := e
	return &out, nil
}

func (r *fakeExerciseRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	var out []domain.Exercise
	for _, id := range ids {
		if e, ok := r.exercises[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExerciseRepo) GetByName(ctx context.Context, name string) (*domain.Exercise, error) {
	for _, e := range r.exercises {
		if e.Name == name {
			out := e
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExerciseRepo) List(ctx context.Context) ([]domain.Exercise, error) {
	out := make([]domain.Exercise, 0, len(r.exercises))
	for _, e := range r.exercises {
		out = append(out, e)
	}
	return out, nil
}

type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]domain.Workout
	creates  int
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]domain.Workout)}
}

func (r *fakeWorkoutRepo) add(workout domain.Workout) primitive.ObjectID {
	if workout.ID == primitive.NilObjectID {
		workout.ID = primitive.NewObjectID()
	}
	r.workouts[workout.ID] = workout
	return workout.ID
}

func (r *fakeWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	r.creates++
	id := primitive.NewObjectID()
	workout.ID = id
	r.workouts[id] = *workout
	return id, nil
}

func (r *fakeWorkoutRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := w
	return &out, nil
}

func (r *fakeWorkoutRepo) List(ctx context.Context) ([]domain.Workout, error) {
	out := make([]domain.Workout, 0, len(r.workouts))
	for _, w := range r.workouts {
		out = append(out, w)
	}
	return out, nil
}

func (r *fakeWorkoutRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

type fakeUserWorkoutRepo struct {
	assignments map[primitive.ObjectID]domain.UserWorkout
}

func newFakeUserWorkoutRepo() *fakeUserWorkoutRepo {
	return &fakeUserWorkoutRepo{assignments: make(map[primitive.ObjectID]domain.UserWorkout)}
}

func (r *fakeUserWorkoutRepo) Create(ctx context.Context, uw *domain.UserWorkout) (primitive.ObjectID, error) {
	for _, a := range r.assignments {
		if a.UserID == uw.UserID && a.AssignedDay == uw.AssignedDay {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
	}
	id := primitive.NewObjectID()
	uw.ID = id
	r.assignments[id] = *uw
	return id, nil
}

func (r *fakeUserWorkoutRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.UserWorkout, error) {
	var out []domain.UserWorkout
	for _, a := range r.assignments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeUserWorkoutRepo) Delete(ctx context.Context, userID primitive.ObjectID, day domain.Weekday) error {
	for id, a := range r.assignments {
		if a.UserID == userID && a.AssignedDay == day {
			delete(r.assignments, id)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeUserWorkoutRepo) DeleteByWorkoutID(ctx context.Context, workoutID primitive.ObjectID) error {
	for id, a := range r.assignments {
		if a.WorkoutID == workoutID {
			delete(r.assignments, id)
		}
	}
	return nil
}
