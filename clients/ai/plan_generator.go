package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitplan/internal/generator"
	"fitplan/internal/models"
)

// TextGenerator — клиент сервиса генерации текста
type TextGenerator interface {
	Generate(ctx context.Context, systemInstructions, userMessage string) (string, error)
}

// InventorySelector отбирает кандидатов упражнений на неделю
type InventorySelector interface {
	SelectWeek(ctx context.Context, days []models.DayDescriptor, difficulty string, equipment []string, strategy models.Strategy) ([]models.DayInventory, error)
}

// PlanGenerator — оркестратор генерации недельного плана: сплит,
// отбор упражнений, структурирование моделью, валидация, запасной
// план при любом сбое после отбора.
type PlanGenerator struct {
	ai        TextGenerator
	selector  InventorySelector
	validator PlanValidator
	log       *zap.SugaredLogger
}

// NewPlanGenerator создаёт оркестратор генерации планов
func NewPlanGenerator(ai TextGenerator, selector InventorySelector, log *zap.SugaredLogger) *PlanGenerator {
	return &PlanGenerator{ai: ai, selector: selector, log: log}
}

// GenerateWeeklyPlan строит недельный план тренировок по профилю.
// Ошибки каталога (до отбора инвентаря) возвращаются вызывающему;
// любой сбой сервиса генерации или валидации заменяется запасным
// планом и ошибкой не является.
func (g *PlanGenerator) GenerateWeeklyPlan(ctx context.Context, profile models.UserProfile) (*models.WeeklyPlanResult, error) {
	difficulty := models.DifficultyForExperience(profile.Experience)
	strategy := models.StrategyForGoal(profile.Goal)

	equipment := profile.HomeEquipment
	if len(equipment) == 0 {
		equipment = []string{models.EquipmentBodyweight}
	}

	g.log.Infof("🎯 Генерация плана для %s: цель %s, уровень %s, дней %d",
		profile.UserID, profile.Goal, profile.Experience, profile.TrainingDays)

	split := generator.PlanWeeklySplit(profile.TrainingDays, profile.SpecializedSport, strategy)

	g.log.Info("🔍 Отбор упражнений из каталога...")
	inventories, err := g.selector.SelectWeek(ctx, split, difficulty, equipment, strategy)
	if err != nil {
		return nil, fmt.Errorf("отбор упражнений: %w", err)
	}

	plan, generatedBy := g.structurePlan(ctx, profile, split, inventories, strategy, difficulty)

	g.log.Infof("✅ План готов (источник: %s)", generatedBy)

	return &models.WeeklyPlanResult{
		PlanID:       uuid.NewString(),
		UserID:       profile.UserID,
		PlanType:     "weekly",
		TrainingDays: len(split),
		Difficulty:   difficulty,
		Goal:         profile.Goal,
		Plan:         plan,
		GeneratedBy:  generatedBy,
	}, nil
}

// structurePlan структурирует инвентарь моделью, при сбое возвращает
// запасной план. Никогда не возвращает ошибку.
func (g *PlanGenerator) structurePlan(ctx context.Context, profile models.UserProfile, split []models.DayDescriptor, inventories []models.DayInventory, strategy models.Strategy, difficulty string) ([]models.PlanDay, string) {
	userMessage := buildPlanPrompt(profile, split, inventories, strategy, difficulty)

	raw, err := g.ai.Generate(ctx, planSystemPrompt, userMessage)
	if err != nil {
		g.log.Warnf("⚠️ Сервис генерации недоступен: %v, используется запасной план", err)
		return FallbackPlan(split, inventories), "fallback"
	}

	doc, err := ExtractJSON(raw)
	if err != nil {
		g.log.Warnf("⚠️ В ответе модели нет JSON: %v, используется запасной план", err)
		return FallbackPlan(split, inventories), "fallback"
	}

	var plan []models.PlanDay
	if err := json.Unmarshal([]byte(doc), &plan); err != nil {
		g.log.Warnf("⚠️ Ответ модели не разбирается: %v, используется запасной план", err)
		return FallbackPlan(split, inventories), "fallback"
	}

	if errs := g.validator.Validate(plan, split, inventories); len(errs) > 0 {
		g.log.Warnf("⚠️ План не прошёл валидацию (%d нарушений): %s", len(errs), strings.Join(errs, "; "))
		return FallbackPlan(split, inventories), "fallback"
	}

	return plan, "ai"
}

// planSystemPrompt — системная инструкция для структурирования плана.
// Промпт на английском: модель стабильнее следует формату.
const planSystemPrompt = `You are an expert personal trainer and exercise scientist with deep knowledge in sports science, biomechanics, and periodization.

Create a personalized weekly workout plan using ONLY the exercises provided. Each exercise has been pre-filtered for the user's profile.

RESPONSE FORMAT - CRITICAL:
Return ONLY a valid JSON array. No markdown, no code blocks, no explanations.

Each day object must contain:
- day (number): training day index (1, 2, 3, ...)
- focus (string): main training goal for that day
- warmup (array): 2-4 dynamic warmup exercises with fields: id, name, sets, reps
- exercises (array): 4-8 main exercises with fields: id, name, sets, reps, rest_seconds
- cooldown (array): 2-4 cooldown exercises with fields: id, name, duration_minutes
- note (string): personalized coaching tip for that day (2-3 sentences)

EXERCISE SELECTION GUIDELINES:
1. Volume by experience level:
   - Beginner: 3 sets, 10-12 reps, 4-5 main exercises
   - Novice: 3-4 sets, 8-12 reps, 5-6 main exercises
   - Intermediate: 4 sets, 6-12 reps, 6-7 main exercises
   - Advanced: 4-5 sets, 6-10 reps, 7-8 main exercises
2. Exercise order: compound movements first, then isolation
3. Rep ranges by goal: strength 4-6 reps / 2-3 min rest, hypertrophy 8-12 reps / 60-90 sec rest, endurance 12-15+ reps / 30-60 sec rest
4. Respect user limitations and provide modifications in notes
5. Use exercise IDs exactly as given for that day - never reference exercises from another day

OUTPUT: Pure JSON array only, starting with [ and ending with ]`

// Лимиты превью инвентаря в промпте: полный инвентарь не нужен
// модели и раздувает контекст
const (
	promptWarmupPreview   = 10
	promptMainPreview     = 30
	promptCooldownPreview = 10
)

// buildPlanPrompt собирает пользовательское сообщение: профиль,
// стратегия и инвентарь упражнений по дням
func buildPlanPrompt(profile models.UserProfile, split []models.DayDescriptor, inventories []models.DayInventory, strategy models.Strategy, difficulty string) string {
	var b strings.Builder

	limitations := profile.WorkoutLimitations
	if limitations == "" {
		limitations = "No limitations"
	}
	sport := profile.SpecializedSport
	if sport == "" {
		sport = "None"
	}

	fmt.Fprintf(&b, "User Profile:\n")
	fmt.Fprintf(&b, "- Age: %d years\n", profile.Age)
	fmt.Fprintf(&b, "- Weight: %.0f kg\n", profile.Weight)
	fmt.Fprintf(&b, "- Height: %.0f cm\n", profile.Height)
	fmt.Fprintf(&b, "- Gender: %s\n", profile.Gender)
	fmt.Fprintf(&b, "- Goal: %s\n", profile.Goal)
	fmt.Fprintf(&b, "- Experience: %s (Difficulty: %s)\n", profile.Experience, difficulty)
	fmt.Fprintf(&b, "- Training Days: %d days/week\n", len(split))
	fmt.Fprintf(&b, "- Limitations: %s\n", limitations)
	fmt.Fprintf(&b, "- Specialized Sport: %s\n", sport)
	fmt.Fprintf(&b, "- Location: %s\n", profile.TrainingLocation)
	fmt.Fprintf(&b, "- Equipment: %s\n", strings.Join(profile.HomeEquipment, ", "))

	b.WriteString("\nTraining Strategy:\n")
	fmt.Fprintf(&b, "- Focus Areas: %s\n", strings.Join(strategy.FocusAreas, ", "))
	fmt.Fprintf(&b, "- Target Muscle Groups: %s\n", strings.Join(strategy.MuscleGroups, ", "))
	fmt.Fprintf(&b, "- Training Goals: %s\n", strings.Join(strategy.Goals, ", "))
	fmt.Fprintf(&b, "- Preferred Mechanics: %s\n", strings.Join(strategy.Mechanics, ", "))

	b.WriteString("\nAvailable Exercises by Day:\n")
	for i, desc := range split {
		var inv models.DayInventory
		if i < len(inventories) {
			inv = inventories[i]
		}

		fmt.Fprintf(&b, "\n=== DAY %d: %s ===\n", desc.Day, desc.Focus)
		fmt.Fprintf(&b, "Target Muscles: %s\n\n", strings.Join(desc.MuscleGroups, ", "))

		b.WriteString("WARMUP OPTIONS:\n")
		for _, ex := range take(inv.Warmup, promptWarmupPreview) {
			fmt.Fprintf(&b, "  - ID %d: %s (%s)\n", ex.ID, ex.Name, ex.Equipment)
		}

		b.WriteString("\nMAIN EXERCISE OPTIONS:\n")
		for _, ex := range take(inv.Main, promptMainPreview) {
			fmt.Fprintf(&b, "  - ID %d: %s\n", ex.ID, ex.Name)
			fmt.Fprintf(&b, "    Equipment: %s, Mechanics: %s\n", ex.Equipment, ex.Mechanics)
			fmt.Fprintf(&b, "    Muscles: %s\n", ex.MuscleGroups)
		}

		b.WriteString("\nCOOLDOWN OPTIONS:\n")
		for _, ex := range take(inv.Cooldown, promptCooldownPreview) {
			fmt.Fprintf(&b, "  - ID %d: %s (%s)\n", ex.ID, ex.Name, ex.Equipment)
		}
	}

	b.WriteString("\nNow create a complete weekly workout plan following the format specified. Select the most appropriate exercises for each day based on the user's profile and goals. Return ONLY valid JSON.")

	return b.String()
}
