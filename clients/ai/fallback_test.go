package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitplan/internal/models"
)

func TestFallbackPlan_Shape(t *testing.T) {
	split := []models.DayDescriptor{
		{Day: 1, Focus: "Upper Body", MuscleGroups: []string{"Chest"}},
	}
	inventories := []models.DayInventory{
		{
			Warmup:   []models.ExerciseRecord{{ID: 1, Name: "Arm Circles"}, {ID: 2}, {ID: 3}, {ID: 4}},
			Main:     []models.ExerciseRecord{{ID: 10, Name: "Bench Press"}, {ID: 11}, {ID: 12}, {ID: 13}, {ID: 14}, {ID: 15}, {ID: 16}},
			Cooldown: []models.ExerciseRecord{{ID: 20, Name: "Chest Stretch"}, {ID: 21}, {ID: 22}, {ID: 23}},
		},
	}

	plan := FallbackPlan(split, inventories)
	require.Len(t, plan, 1)

	day := plan[0]
	assert.Equal(t, 1, day.Day)
	assert.Equal(t, "Upper Body", day.Focus)
	assert.NotEmpty(t, day.Note)

	// Первые 3 разминки: 1 подход по 10
	require.Len(t, day.Warmup, 3)
	assert.Equal(t, 1, day.Warmup[0].ID)
	assert.Equal(t, 1, day.Warmup[0].Sets)
	assert.Equal(t, models.Reps(10), day.Warmup[0].Reps)

	// Первые 6 основных: 3x10, отдых 60 секунд
	require.Len(t, day.Exercises, 6)
	assert.Equal(t, 10, day.Exercises[0].ID)
	assert.Equal(t, 3, day.Exercises[0].Sets)
	assert.Equal(t, 60, day.Exercises[0].RestSeconds)

	// Первые 3 заминки по 2 минуты
	require.Len(t, day.Cooldown, 3)
	assert.Equal(t, 2, day.Cooldown[0].DurationMinutes)
}

func TestFallbackPlan_ShortInventory(t *testing.T) {
	split := []models.DayDescriptor{
		{Day: 1, Focus: "Full Body", MuscleGroups: []string{"Full Body"}},
	}
	inventories := []models.DayInventory{
		{Main: []models.ExerciseRecord{{ID: 1}, {ID: 2}}},
	}

	plan := FallbackPlan(split, inventories)
	require.Len(t, plan, 1)

	assert.Empty(t, plan[0].Warmup)
	assert.Len(t, plan[0].Exercises, 2)
	assert.Empty(t, plan[0].Cooldown)
}

func TestFallbackPlan_MoreDaysThanInventories(t *testing.T) {
	// Недостающий инвентарь даёт пустой, но присутствующий день
	split := []models.DayDescriptor{
		{Day: 1, Focus: "A"},
		{Day: 2, Focus: "B"},
	}
	inventories := []models.DayInventory{
		{Main: []models.ExerciseRecord{{ID: 1}}},
	}

	plan := FallbackPlan(split, inventories)
	require.Len(t, plan, 2)
	assert.Len(t, plan[0].Exercises, 1)
	assert.Empty(t, plan[1].Exercises)
	assert.Equal(t, 2, plan[1].Day)
}
