package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MuscleGroupFullBody — сентинел "вся группа мышц не задана":
// день собирается из базовых (compound) движений по стратегии.
const MuscleGroupFullBody = "Full Body"

// Лимиты инвентаря на категорию в рамках одного дня
const (
	WarmupCap   = 15
	MainCap     = 50
	CooldownCap = 15
)

// DayDescriptor — описание одного тренировочного дня недельного сплита
type DayDescriptor struct {
	Day          int      `json:"day"` // 1..7
	Focus        string   `json:"focus"`
	MuscleGroups []string `json:"muscle_groups"`
}

// DayInventory — отобранные кандидаты упражнений на один день.
// Main дедуплицирован по ID, все три списка ограничены лимитами.
type DayInventory struct {
	Warmup   []ExerciseRecord `json:"warmup"`
	Main     []ExerciseRecord `json:"main"`
	Cooldown []ExerciseRecord `json:"cooldown"`
}

// RepSpec — количество повторений. Модель может ответить числом (10)
// или диапазоном ("8-12"), поэтому поле принимает оба варианта.
type RepSpec string

// UnmarshalJSON принимает строку или число
func (r *RepSpec) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*r = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*r = RepSpec(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = RepSpec(n.String())
	return nil
}

// Reps создаёт RepSpec из числа
func Reps(n int) RepSpec { return RepSpec(strconv.Itoa(n)) }

// WarmupEntry — разминочное упражнение в структурированном плане
type WarmupEntry struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Sets int     `json:"sets"`
	Reps RepSpec `json:"reps"`
}

// MainEntry — основное упражнение в структурированном плане
type MainEntry struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Sets        int     `json:"sets"`
	Reps        RepSpec `json:"reps"`
	RestSeconds int     `json:"rest_seconds"`
}

// CooldownEntry — заминочное упражнение в структурированном плане
type CooldownEntry struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
}

// PlanDay — один день структурированного недельного плана.
// Инвариант: каждый ID внутри дня обязан существовать в инвентаре
// этого же дня (проверяется валидатором).
type PlanDay struct {
	Day       int             `json:"day"`
	Focus     string          `json:"focus"`
	Warmup    []WarmupEntry   `json:"warmup"`
	Exercises []MainEntry     `json:"exercises"`
	Cooldown  []CooldownEntry `json:"cooldown"`
	Note      string          `json:"note"`
}

// WeeklyPlanResult — итог генерации недельного плана
type WeeklyPlanResult struct {
	PlanID       string    `json:"plan_id"`
	UserID       string    `json:"user_id"`
	PlanType     string    `json:"plan_type"` // всегда "weekly"
	TrainingDays int       `json:"training_days"`
	Difficulty   string    `json:"difficulty"`
	Goal         string    `json:"goal"`
	Plan         []PlanDay `json:"workout_plan"`
	GeneratedBy  string    `json:"generated_by"` // "ai" или "fallback"
}

// TrainingStrategy — текстовая 12-недельная стратегия тренировок
type TrainingStrategy struct {
	DetailedStrategy string `json:"detailed_strategy"` // техническая, для планировщика
	UserSummary      string `json:"user_summary"`      // краткая, для пользователя
	Expectations     string `json:"expectations"`      // реалистичные ожидания
}
