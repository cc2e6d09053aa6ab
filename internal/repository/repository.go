package repository

import (
	"context"
	"fmt"

	"fitplan/internal/models"
)

// ExerciseCatalog — read-only доступ к каталогу упражнений.
// Search — единственный примитив; остальные методы — тонкие пресеты
// без собственной логики.
type ExerciseCatalog interface {
	Search(ctx context.Context, criteria models.FilterCriteria) ([]models.ExerciseRecord, error)
	ByMuscleGroup(ctx context.Context, muscleGroup, difficulty string, equipment []string, limit int) ([]models.ExerciseRecord, error)
	WarmupExercises(ctx context.Context, muscleFocus string, equipment []string, limit int) ([]models.ExerciseRecord, error)
	CooldownExercises(ctx context.Context, muscleFocus string, limit int) ([]models.ExerciseRecord, error)
	CardioExercises(ctx context.Context, difficulty string, equipment []string, limit int) ([]models.ExerciseRecord, error)
	RecoveryExercises(ctx context.Context, limit int) ([]models.ExerciseRecord, error)
}

// CatalogError — ошибка запроса к каталогу. Не ретраится: указывает на
// дефект запроса или недоступность хранилища, а не на временный сбой.
type CatalogError struct {
	Op  string
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("каталог: %s: %v", e.Op, e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }
