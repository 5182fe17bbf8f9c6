package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/storage"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

// SeedExercise is one catalog entry read from the seed file.
type SeedExercise struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	VideoURL     string `json:"videoUrl"`
	MuscleGroups string `json:"muscleGroups"`
	Equipment    string `json:"equipment"`
}

// --- Service Interface ---
type ExerciseService interface {
	List(ctx context.Context) ([]domain.Exercise, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	Seed(ctx context.Context, entries []SeedExercise) (inserted int, err error)
	GenerateMediaUploadURL(ctx context.Context, exerciseID primitive.ObjectID, contentType string) (uploadURL, objectKey string, err error)
}

// --- Service Implementation ---

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.FileStorage
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.FileStorage) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		fileStorage:  fileStorage,
	}
}

// List returns the whole catalog with media references resolved to
// fetchable URLs.
func (s *exerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		s.resolveMedia(ctx, &exercises[i])
	}
	return exercises, nil
}

// GetByID returns a single catalog exercise with resolved media URLs.
func (s *exerciseService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	s.resolveMedia(ctx, exercise)
	return exercise, nil
}

// resolveMedia swaps S3 object keys for presigned download URLs.
// Values that are already absolute URLs pass through unchanged, and a
// failed presign leaves the raw key in place rather than failing the
// whole read.
func (s *exerciseService) resolveMedia(ctx context.Context, exercise *domain.Exercise) {
	if s.fileStorage == nil {
		return
	}
	exercise.Image = s.presignIfKey(ctx, exercise.Image)
	exercise.VideoURL = s.presignIfKey(ctx, exercise.VideoURL)
}

func (s *exerciseService) presignIfKey(ctx context.Context, ref string) string {
	if ref == "" || strings.Contains(ref, "://") {
		return ref
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, ref, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.Printf("WARN: Failed to presign media key '%s': %v", ref, err)
		return ref
	}
	return url
}

// Seed inserts every entry that is not already in the catalog, keyed
// by name. Existing entries are left untouched; the catalog is
// immutable once seeded.
func (s *exerciseService) Seed(ctx context.Context, entries []SeedExercise) (int, error) {
	inserted := 0
	for _, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			return inserted, invalidField("name", "seed entry is missing a name")
		}

		_, err := s.exerciseRepo.GetByName(ctx, entry.Name)
		if err == nil {
			continue // already seeded
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return inserted, err
		}

		exercise := &domain.Exercise{
			Name:         entry.Name,
			Image:        entry.Image,
			VideoURL:     entry.VideoURL,
			MuscleGroups: entry.MuscleGroups,
			Equipment:    entry.Equipment,
		}
		if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
			// A concurrent seeder may have won the name index race.
			if errors.Is(err, repository.ErrDuplicateKey) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// GenerateMediaUploadURL creates a presigned PUT URL for replacing an
// exercise's media object. The catalog row itself stays immutable; the
// object behind its key is what changes.
func (s *exerciseService) GenerateMediaUploadURL(ctx context.Context, exerciseID primitive.ObjectID, contentType string) (string, string, error) {
	if s.fileStorage == nil {
		return "", "", errors.New("file storage is not configured")
	}
	if contentType == "" {
		return "", "", invalidField("contentType", "content type is required")
	}

	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", "", ErrExerciseNotFound
		}
		return "", "", err
	}

	objectKey := fmt.Sprintf("exercises/%s/%s", exercise.ID.Hex(), uuid.NewString())
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", "", err
	}
	return uploadURL, objectKey, nil
}
