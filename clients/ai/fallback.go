package ai

import (
	"fmt"

	"fitplan/internal/models"
)

// FallbackPlan строит недельный план детерминированно из уже отобранных
// упражнений, без участия модели. Используется когда сервис генерации
// недоступен или его ответ не прошёл валидацию.
func FallbackPlan(split []models.DayDescriptor, inventories []models.DayInventory) []models.PlanDay {
	days := make([]models.PlanDay, 0, len(split))

	for i, desc := range split {
		var inv models.DayInventory
		if i < len(inventories) {
			inv = inventories[i]
		}

		day := models.PlanDay{
			Day:   desc.Day,
			Focus: desc.Focus,
			Note:  fmt.Sprintf("Базовый план: %s", desc.Focus),
		}

		for _, ex := range take(inv.Warmup, 3) {
			day.Warmup = append(day.Warmup, models.WarmupEntry{
				ID:   ex.ID,
				Name: ex.Name,
				Sets: 1,
				Reps: models.Reps(10),
			})
		}
		for _, ex := range take(inv.Main, 6) {
			day.Exercises = append(day.Exercises, models.MainEntry{
				ID:          ex.ID,
				Name:        ex.Name,
				Sets:        3,
				Reps:        models.Reps(10),
				RestSeconds: 60,
			})
		}
		for _, ex := range take(inv.Cooldown, 3) {
			day.Cooldown = append(day.Cooldown, models.CooldownEntry{
				ID:              ex.ID,
				Name:            ex.Name,
				DurationMinutes: 2,
			})
		}

		days = append(days, day)
	}

	return days
}

func take(list []models.ExerciseRecord, n int) []models.ExerciseRecord {
	if len(list) <= n {
		return list
	}
	return list[:n]
}
