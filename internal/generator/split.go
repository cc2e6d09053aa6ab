package generator

import (
	"strings"

	"fitplan/internal/models"
)

// sportKeywords — словарь видов спорта, переключающих сплит на
// спортивно-специфичную таблицу (подстрочное совпадение)
var sportKeywords = []string{"marathon", "running"}

// Стандартные архетипы сплитов по числу тренировочных дней.
// Таблица длиннее запрошенного числа дней обрезается с сохранением
// первых дней и порядка.
var standardSplits = map[int][]models.DayDescriptor{
	3: {
		{Day: 1, Focus: "Full Body Strength", MuscleGroups: []string{"Chest", "Back", "Quads"}},
		{Day: 2, Focus: "Upper Body", MuscleGroups: []string{"Chest", "Back", "Shoulders", "Arms"}},
		{Day: 3, Focus: "Lower Body + Core", MuscleGroups: []string{"Quads", "Glutes", "Core"}},
	},
	4: {
		{Day: 1, Focus: "Upper Push (Chest & Triceps)", MuscleGroups: []string{"Chest", "Arms", "Shoulders"}},
		{Day: 2, Focus: "Lower Body (Legs & Glutes)", MuscleGroups: []string{"Quads", "Glutes", "Calves"}},
		{Day: 3, Focus: "Upper Pull (Back & Biceps)", MuscleGroups: []string{"Back", "Arms"}},
		{Day: 4, Focus: "Core + Cardio", MuscleGroups: []string{"Core", "Full Body"}},
	},
	5: {
		{Day: 1, Focus: "Chest & Triceps", MuscleGroups: []string{"Chest", "Arms"}},
		{Day: 2, Focus: "Back & Biceps", MuscleGroups: []string{"Back", "Arms"}},
		{Day: 3, Focus: "Legs & Glutes", MuscleGroups: []string{"Quads", "Glutes", "Hamstrings"}},
		{Day: 4, Focus: "Shoulders & Core", MuscleGroups: []string{"Shoulders", "Core"}},
		{Day: 5, Focus: "Full Body + Cardio", MuscleGroups: []string{"Full Body"}},
	},
	7: {
		{Day: 1, Focus: "Chest", MuscleGroups: []string{"Chest", "Arms"}},
		{Day: 2, Focus: "Back", MuscleGroups: []string{"Back", "Arms"}},
		{Day: 3, Focus: "Legs", MuscleGroups: []string{"Quads", "Glutes", "Hamstrings"}},
		{Day: 4, Focus: "Shoulders", MuscleGroups: []string{"Shoulders"}},
		{Day: 5, Focus: "Arms + Core", MuscleGroups: []string{"Arms", "Core"}},
		{Day: 6, Focus: "Full Body + Cardio", MuscleGroups: []string{"Full Body"}},
		{Day: 7, Focus: "Recovery + Flexibility", MuscleGroups: []string{"Full Body"}},
	},
}

// Спортивно-специфичные сплиты (бег/марафон)
var sportSplits = map[int][]models.DayDescriptor{
	3: {
		{Day: 1, Focus: "Running + Core", MuscleGroups: []string{"Core", "Quads"}},
		{Day: 2, Focus: "Leg Strength", MuscleGroups: []string{"Quads", "Glutes"}},
		{Day: 3, Focus: "Recovery + Flexibility", MuscleGroups: []string{"Full Body"}},
	},
	4: {
		{Day: 1, Focus: "Running + Core", MuscleGroups: []string{"Core", "Quads"}},
		{Day: 2, Focus: "Leg Strength", MuscleGroups: []string{"Quads", "Glutes"}},
		{Day: 3, Focus: "Upper Body", MuscleGroups: []string{"Chest", "Back", "Arms"}},
		{Day: 4, Focus: "Recovery + Flexibility", MuscleGroups: []string{"Full Body"}},
	},
	7: {
		{Day: 1, Focus: "Running + Cardio", MuscleGroups: []string{"Quads", "Core"}},
		{Day: 2, Focus: "Leg Strength", MuscleGroups: []string{"Quads", "Glutes"}},
		{Day: 3, Focus: "Core + Stability", MuscleGroups: []string{"Core", "Back"}},
		{Day: 4, Focus: "Upper Body", MuscleGroups: []string{"Chest", "Back", "Shoulders"}},
		{Day: 5, Focus: "Running + Intervals", MuscleGroups: []string{"Quads", "Core"}},
		{Day: 6, Focus: "Full Body", MuscleGroups: []string{"Full Body"}},
		{Day: 7, Focus: "Recovery + Flexibility", MuscleGroups: []string{"Full Body"}},
	},
}

// PlanWeeklySplit строит недельный сплит: ровно trainingDays дней с
// возрастающими индексами 1..n. Детерминированная чистая функция:
// одинаковый вход всегда даёт одинаковый сплит. Параметр strategy
// зарезервирован контрактом (архетипы фиксированы и от стратегии не
// зависят).
func PlanWeeklySplit(trainingDays int, specializedSport string, _ models.Strategy) []models.DayDescriptor {
	if trainingDays < 1 {
		trainingDays = 1
	}
	if trainingDays > 7 {
		trainingDays = 7
	}

	tables := standardSplits
	if isSportSpecific(specializedSport) {
		tables = sportSplits
	}

	var split []models.DayDescriptor
	switch {
	case trainingDays <= 3:
		split = tables[3]
	case trainingDays == 4:
		split = tables[4]
	default:
		// В спортивной таблице нет отдельного 5-дневного архетипа:
		// 5+ дней режутся из 7-дневного
		if s, ok := tables[trainingDays]; ok {
			split = s
		} else {
			split = tables[7]
		}
	}

	if trainingDays < len(split) {
		split = split[:trainingDays]
	}

	// Глубокая копия: таблицы архетипов общие, мутация результата
	// вызывающим не должна их портить
	out := make([]models.DayDescriptor, len(split))
	for i, d := range split {
		d.MuscleGroups = append([]string(nil), d.MuscleGroups...)
		out[i] = d
	}
	return out
}

// isSportSpecific проверяет, упомянут ли в профиле вид спорта из словаря
func isSportSpecific(sport string) bool {
	s := strings.ToLower(sport)
	for _, kw := range sportKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
