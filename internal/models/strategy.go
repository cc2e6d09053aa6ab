package models

import "strings"

// Strategy — набор параметров подбора, выведенный из цели пользователя:
// фокусные зоны недели, целевые мышечные группы, тренировочные цели и
// предпочтительная механика упражнений.
type Strategy struct {
	FocusAreas   []string
	MuscleGroups []string
	Goals        []string
	Mechanics    []string
	Styles       []string // дополнительные стили (кардио и т.п.), может быть пустым
}

// goalStrategies — стратегии по целям тренировок
var goalStrategies = map[string]Strategy{
	"lose_weight": {
		FocusAreas:   []string{"Full Body", "Core"},
		MuscleGroups: []string{"Glutes", "Quads", "Core", "Back"},
		Goals:        []string{"Endurance", "Full Body", "Core Strength"},
		Mechanics:    []string{"Compound", "Dynamic"},
		Styles:       []string{"Cardio"},
	},
	"build_muscle": {
		FocusAreas:   []string{"Chest", "Back", "Legs", "Shoulders", "Arms"},
		MuscleGroups: []string{"Chest", "Back", "Quads", "Shoulders", "Arms"},
		Goals:        []string{"Strength", "Hypertrophy", "Muscle Building"},
		Mechanics:    []string{"Compound", "Isolation"},
	},
	"improve_endurance": {
		FocusAreas:   []string{"Full Body", "Core", "Legs"},
		MuscleGroups: []string{"Glutes", "Quads", "Core", "Back"},
		Goals:        []string{"Endurance", "Muscle Endurance", "Stamina"},
		Mechanics:    []string{"Dynamic", "Compound"},
		Styles:       []string{"Cardio"},
	},
	"general_fitness": {
		FocusAreas:   []string{"Full Body", "Core"},
		MuscleGroups: []string{"Glutes", "Quads", "Core", "Back", "Chest"},
		Goals:        []string{"Full Body", "Core Strength"},
		Mechanics:    []string{"Compound", "Dynamic"},
	},
	"increase_strength": {
		FocusAreas:   []string{"Compound movements", "Full Body"},
		MuscleGroups: []string{"Back", "Chest", "Quads", "Glutes"},
		Goals:        []string{"Strength", "Power"},
		Mechanics:    []string{"Compound"},
	},
}

// StrategyForGoal возвращает стратегию для цели. Неизвестная цель
// трактуется как general_fitness.
func StrategyForGoal(goal string) Strategy {
	if s, ok := goalStrategies[strings.ToLower(strings.TrimSpace(goal))]; ok {
		return s
	}
	return goalStrategies["general_fitness"]
}
