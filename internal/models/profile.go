package models

import "strings"

// UserProfile — входной профиль пользователя. Движок никогда его не
// изменяет.
type UserProfile struct {
	UserID             string   `json:"user_id"`
	Age                int      `json:"age"`
	Weight             float64  `json:"weight"` // кг
	Height             float64  `json:"height"` // см
	Gender             string   `json:"gender"`
	Goal               string   `json:"goal"`       // lose_weight, build_muscle, ...
	Experience         string   `json:"experience"` // beginner, intermediate, advanced, expert
	TrainingDays       int      `json:"trainingDays"`
	WorkoutLimitations string   `json:"workoutLimitations"`
	SpecializedSport   string   `json:"specializedSport"`
	TrainingLocation   string   `json:"trainingLocation"`
	HomeEquipment      []string `json:"homeEquipment"`
}

// difficultyByExperience — отображение уровня пользователя на метку
// сложности каталога. Метки каталога сдвинуты на один шаг вниз:
// "intermediate" пользователь получает упражнения уровня "Novice".
var difficultyByExperience = map[string]string{
	"beginner":     "Beginner",
	"intermediate": "Novice",
	"advanced":     "Intermediate",
	"expert":       "Advanced",
}

// DifficultyForExperience возвращает метку сложности каталога для
// уровня пользователя. Неизвестный уровень трактуется как beginner.
func DifficultyForExperience(experience string) string {
	if d, ok := difficultyByExperience[strings.ToLower(strings.TrimSpace(experience))]; ok {
		return d
	}
	return "Beginner"
}
