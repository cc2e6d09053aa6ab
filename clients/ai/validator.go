package ai

import (
	"fmt"

	"fitplan/internal/models"
)

// PlanValidator проверяет структурные инварианты плана, возвращённого
// моделью, относительно инвентаря упражнений по дням.
type PlanValidator struct{}

// Validate возвращает список нарушений; пустой список — план корректен.
// Проверяется полнота дней, то, что каждый день ссылается только на
// упражнения из инвентаря этого же дня, и разумность объёмов
// (подходы, отдых, длительность заминки).
func (v PlanValidator) Validate(plan []models.PlanDay, split []models.DayDescriptor, inventories []models.DayInventory) []string {
	var errs []string

	if len(plan) != len(split) {
		errs = append(errs, fmt.Sprintf("в плане %d дней, ожидалось %d", len(plan), len(split)))
	}

	byDay := make(map[int]map[int]bool, len(split))
	for i, desc := range split {
		if i >= len(inventories) {
			break
		}
		byDay[desc.Day] = inventoryIDs(inventories[i])
	}

	seen := make(map[int]bool, len(plan))
	for _, day := range plan {
		if seen[day.Day] {
			errs = append(errs, fmt.Sprintf("день %d встречается в плане дважды", day.Day))
			continue
		}
		seen[day.Day] = true

		ids, ok := byDay[day.Day]
		if !ok {
			errs = append(errs, fmt.Sprintf("день %d отсутствует в расписании", day.Day))
			continue
		}

		for _, e := range day.Warmup {
			if !ids[e.ID] {
				errs = append(errs, fmt.Sprintf("день %d: разминка ссылается на чужое упражнение %d", day.Day, e.ID))
			}
			if e.Sets < 1 {
				errs = append(errs, fmt.Sprintf("день %d: разминка %d: подходов %d, ожидалось >= 1", day.Day, e.ID, e.Sets))
			}
		}
		for _, e := range day.Exercises {
			if !ids[e.ID] {
				errs = append(errs, fmt.Sprintf("день %d: упражнение %d не из инвентаря этого дня", day.Day, e.ID))
			}
			if e.Sets < 1 {
				errs = append(errs, fmt.Sprintf("день %d: упражнение %d: подходов %d, ожидалось >= 1", day.Day, e.ID, e.Sets))
			}
			if e.RestSeconds < 0 {
				errs = append(errs, fmt.Sprintf("день %d: упражнение %d: отрицательный отдых %d с", day.Day, e.ID, e.RestSeconds))
			}
		}
		for _, e := range day.Cooldown {
			if !ids[e.ID] {
				errs = append(errs, fmt.Sprintf("день %d: заминка ссылается на чужое упражнение %d", day.Day, e.ID))
			}
			if e.DurationMinutes < 1 {
				errs = append(errs, fmt.Sprintf("день %d: заминка %d: длительность %d мин, ожидалось >= 1", day.Day, e.ID, e.DurationMinutes))
			}
		}
	}

	for _, desc := range split {
		if !seen[desc.Day] {
			errs = append(errs, fmt.Sprintf("в плане нет дня %d (%s)", desc.Day, desc.Focus))
		}
	}

	return errs
}

// inventoryIDs собирает идентификаторы всех упражнений дня
func inventoryIDs(inv models.DayInventory) map[int]bool {
	ids := make(map[int]bool, len(inv.Warmup)+len(inv.Main)+len(inv.Cooldown))
	for _, ex := range inv.Warmup {
		ids[ex.ID] = true
	}
	for _, ex := range inv.Main {
		ids[ex.ID] = true
	}
	for _, ex := range inv.Cooldown {
		ids[ex.ID] = true
	}
	return ids
}
