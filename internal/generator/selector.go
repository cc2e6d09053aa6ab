package generator

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fitplan/internal/models"
	"fitplan/internal/repository"
)

// Лимиты промежуточных выборок (до дедупликации и финальной обрезки)
const (
	compoundQueryLimit = 30
	muscleQueryLimit   = 20
	cardioExtraLimit   = 10
	recoveryExtraLimit = 15
	cooldownMinResults = 5
)

// Selector подбирает инвентарь упражнений на тренировочный день:
// разминка, основной блок и заминка, каждый со своим лимитом.
type Selector struct {
	catalog repository.ExerciseCatalog
	log     *zap.SugaredLogger
}

// NewSelector создаёт селектор упражнений
func NewSelector(catalog repository.ExerciseCatalog, log *zap.SugaredLogger) *Selector {
	return &Selector{catalog: catalog, log: log}
}

// SelectForDay собирает инвентарь для одного дня сплита.
// Ошибки каталога поднимаются наверх: без инвентаря план невозможен.
func (s *Selector) SelectForDay(ctx context.Context, day models.DayDescriptor, difficulty string, equipment []string, strategy models.Strategy) (models.DayInventory, error) {
	var inv models.DayInventory

	// Разминка: фокус на первую конкретную мышечную группу дня
	warmup, err := s.catalog.WarmupExercises(ctx, firstConcreteGroup(day.MuscleGroups), equipment, models.WarmupCap)
	if err != nil {
		return inv, err
	}

	// Основной блок: по мышечным группам дня, с дедупликацией по ID
	// в порядке первого появления
	var main []models.ExerciseRecord
	seen := make(map[int]bool)

	for _, muscle := range day.MuscleGroups {
		var found []models.ExerciseRecord
		if muscle == models.MuscleGroupFullBody {
			// Базовые движения по стратегии вместо фильтра по группе
			found, err = s.catalog.Search(ctx, models.FilterCriteria{
				Difficulty: difficulty,
				Mechanics:  strategy.Mechanics,
				Equipment:  equipment,
				Goals:      strategy.Goals,
				Limit:      compoundQueryLimit,
			})
		} else {
			found, err = s.catalog.ByMuscleGroup(ctx, muscle, difficulty, equipment, muscleQueryLimit)
		}
		if err != nil {
			return inv, err
		}
		for _, ex := range found {
			if !seen[ex.ID] {
				main = append(main, ex)
				seen[ex.ID] = true
			}
		}
	}

	// Дополнения по фокусу дня
	focus := strings.ToLower(day.Focus)
	if strings.Contains(focus, "cardio") || strings.Contains(focus, "hiit") {
		cardio, err := s.catalog.CardioExercises(ctx, difficulty, equipment, cardioExtraLimit)
		if err != nil {
			return inv, err
		}
		for _, ex := range cardio {
			if !seen[ex.ID] {
				main = append(main, ex)
				seen[ex.ID] = true
			}
		}
	}
	if strings.Contains(focus, "recovery") || strings.Contains(focus, "flexibility") {
		recovery, err := s.catalog.RecoveryExercises(ctx, recoveryExtraLimit)
		if err != nil {
			return inv, err
		}
		for _, ex := range recovery {
			if !seen[ex.ID] {
				main = append(main, ex)
				seen[ex.ID] = true
			}
		}
	}

	// Заминка: при недоборе дополняется общей выборкой растяжки.
	// Дополнение намеренно НЕ дедуплицируется с основной заминкой —
	// поведение сохранено как в исходной системе, финальный лимит
	// всё равно ограничивает список.
	cooldown, err := s.catalog.CooldownExercises(ctx, firstConcreteGroup(day.MuscleGroups), models.CooldownCap)
	if err != nil {
		return inv, err
	}
	if len(cooldown) < cooldownMinResults {
		generic, err := s.catalog.Search(ctx, models.FilterCriteria{
			Styles: []string{"Stretches", "Recovery"},
			Limit:  models.CooldownCap,
		})
		if err != nil {
			return inv, err
		}
		cooldown = append(cooldown, generic...)
	}

	inv.Warmup = truncate(warmup, models.WarmupCap)
	inv.Main = truncate(main, models.MainCap)
	inv.Cooldown = truncate(cooldown, models.CooldownCap)

	s.log.Debugf("день %d (%s): разминка %d, основные %d, заминка %d",
		day.Day, day.Focus, len(inv.Warmup), len(inv.Main), len(inv.Cooldown))

	return inv, nil
}

// SelectWeek собирает инвентари для всех дней сплита. Дни независимы,
// поэтому выборка идёт параллельно; результат сохраняет порядок дней.
func (s *Selector) SelectWeek(ctx context.Context, days []models.DayDescriptor, difficulty string, equipment []string, strategy models.Strategy) ([]models.DayInventory, error) {
	inventories := make([]models.DayInventory, len(days))

	g, gctx := errgroup.WithContext(ctx)
	for i, day := range days {
		i, day := i, day
		g.Go(func() error {
			inv, err := s.SelectForDay(gctx, day, difficulty, equipment, strategy)
			if err != nil {
				return err
			}
			inventories[i] = inv
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inventories, nil
}

// firstConcreteGroup возвращает первую мышечную группу дня, если она
// не сентинел Full Body
func firstConcreteGroup(groups []string) string {
	if len(groups) > 0 && groups[0] != models.MuscleGroupFullBody {
		return groups[0]
	}
	return ""
}

func truncate(list []models.ExerciseRecord, limit int) []models.ExerciseRecord {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
