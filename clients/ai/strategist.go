package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"fitplan/internal/models"
)

// Strategist генерирует текстовую 12-недельную стратегию тренировок:
// детальный план для планировщика, краткое резюме и реалистичные
// ожидания для пользователя. При любом сбое деградирует до
// детерминированной стратегии без ошибки.
type Strategist struct {
	ai  TextGenerator
	log *zap.SugaredLogger
}

// NewStrategist создаёт генератор стратегий
func NewStrategist(ai TextGenerator, log *zap.SugaredLogger) *Strategist {
	return &Strategist{ai: ai, log: log}
}

// GenerateStrategy строит 12-недельную стратегию по профилю
func (s *Strategist) GenerateStrategy(ctx context.Context, profile models.UserProfile) (*models.TrainingStrategy, error) {
	s.log.Infof("🧭 Генерация стратегии для %s (цель %s)", profile.UserID, profile.Goal)

	raw, err := s.ai.Generate(ctx, strategySystemPrompt, buildStrategyPrompt(profile))
	if err != nil {
		s.log.Warnf("⚠️ Сервис генерации недоступен: %v, используется базовая стратегия", err)
		return fallbackStrategy(profile), nil
	}

	doc, err := ExtractJSON(raw)
	if err != nil {
		s.log.Warnf("⚠️ В ответе модели нет JSON: %v, используется базовая стратегия", err)
		return fallbackStrategy(profile), nil
	}

	var st models.TrainingStrategy
	if err := json.Unmarshal([]byte(doc), &st); err != nil {
		s.log.Warnf("⚠️ Ответ модели не разбирается: %v, используется базовая стратегия", err)
		return fallbackStrategy(profile), nil
	}

	st.DetailedStrategy = cleanMarkdown(st.DetailedStrategy)
	st.UserSummary = cleanMarkdown(st.UserSummary)
	st.Expectations = cleanMarkdown(st.Expectations)

	if err := validateStrategy(st); err != nil {
		s.log.Warnf("⚠️ Стратегия не прошла валидацию: %v, используется базовая", err)
		return fallbackStrategy(profile), nil
	}

	return &st, nil
}

const strategySystemPrompt = `You are a professional fitness strategist and coach with years of experience.
Design a comprehensive 12-week training strategy for the user.

Your responsibilities:
1. Analyze the user profile (age, weight, height, gender, fitness level, goal)
2. Phase the 12 weeks logically (e.g. weeks 1-4 foundation, 5-8 growth, 9-12 strength)
3. Apply progressive overload and plan recovery/deload periods
4. Adapt to available equipment and user limitations

Your output must contain 3 distinct sections:

1. detailed_strategy: technical strategy for the weekly plan generator.
   For every phase specify: focus, split type (Full Body / Upper-Lower / PPL),
   intensity, volume (sets x reps), progression method, rest times.
   Technical and precise, minimum 200 characters.

2. user_summary: concise user-facing explanation of the phases and keys to
   success. Simple and motivating, 50-500 characters.

3. expectations: realistic, positive outcomes and milestones over the 12
   weeks, with rough timing of visible changes. 50-500 characters.

Text format rules: plain text only, no markdown symbols, use "-" for lists.

IMPORTANT: respond with valid JSON only, with this exact structure:
{
  "detailed_strategy": "...",
  "user_summary": "...",
  "expectations": "..."
}`

func buildStrategyPrompt(profile models.UserProfile) string {
	var b strings.Builder

	limitations := profile.WorkoutLimitations
	if limitations == "" {
		limitations = "No limitations"
	}
	sport := profile.SpecializedSport
	if sport == "" {
		sport = "None"
	}

	b.WriteString("Design a comprehensive 12-week strategy for this user:\n\n")
	fmt.Fprintf(&b, "- Age: %d years\n", profile.Age)
	fmt.Fprintf(&b, "- Weight: %.0f kg\n", profile.Weight)
	fmt.Fprintf(&b, "- Height: %.0f cm\n", profile.Height)
	fmt.Fprintf(&b, "- Gender: %s\n", profile.Gender)
	fmt.Fprintf(&b, "- Fitness level: %s\n", profile.Experience)
	fmt.Fprintf(&b, "- Training goal: %s\n", profile.Goal)
	fmt.Fprintf(&b, "- Current sport: %s\n", sport)
	fmt.Fprintf(&b, "- Training days per week: %d\n", profile.TrainingDays)
	fmt.Fprintf(&b, "- Physical limitations: %s\n", limitations)
	fmt.Fprintf(&b, "- Training location: %s\n", profile.TrainingLocation)
	b.WriteString("\nRequirements: 12 weeks, logical phasing (e.g. three 4-week phases), progressive overload, recovery periods, matched to the user's level.\n")
	b.WriteString("\nReturn only the JSON, no extra commentary.")

	return b.String()
}

var (
	mdBold     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic   = regexp.MustCompile(`\*([^*]+)\*`)
	mdUBold    = regexp.MustCompile(`__([^_]+)__`)
	mdUItalic  = regexp.MustCompile(`_([^_]+)_`)
	manyBlank  = regexp.MustCompile(`\n{3,}`)
	spaceAtEOL = regexp.MustCompile(` +\n`)
	spaceAtBOL = regexp.MustCompile(`\n +`)
)

// cleanMarkdown убирает markdown-разметку: модель игнорирует запрет
// на форматирование достаточно часто, чтобы чистить всегда
func cleanMarkdown(text string) string {
	if text == "" {
		return text
	}
	text = mdBold.ReplaceAllString(text, "$1")
	text = mdItalic.ReplaceAllString(text, "$1")
	text = mdUBold.ReplaceAllString(text, "$1")
	text = mdUItalic.ReplaceAllString(text, "$1")
	text = manyBlank.ReplaceAllString(text, "\n\n")
	text = spaceAtEOL.ReplaceAllString(text, "\n")
	text = spaceAtBOL.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// validateStrategy проверяет полноту и разумную длину полей.
// Длины считаются в рунах: текст может быть не только латиницей.
func validateStrategy(st models.TrainingStrategy) error {
	if n := utf8.RuneCountInString(st.DetailedStrategy); n < 200 {
		return fmt.Errorf("detailed_strategy слишком короткая: %d символов", n)
	}
	if n := utf8.RuneCountInString(st.UserSummary); n < 50 || n > 1000 {
		return fmt.Errorf("user_summary недопустимой длины: %d символов", n)
	}
	if n := utf8.RuneCountInString(st.Expectations); n < 50 || n > 1000 {
		return fmt.Errorf("expectations недопустимой длины: %d символов", n)
	}
	return nil
}

// fallbackStrategy — стандартная трёхфазная стратегия, не зависящая
// от сервиса генерации
func fallbackStrategy(profile models.UserProfile) *models.TrainingStrategy {
	goal := profile.Goal
	if goal == "" {
		goal = "general_fitness"
	}
	level := profile.Experience
	if level == "" {
		level = "beginner"
	}

	return &models.TrainingStrategy{
		DetailedStrategy: fmt.Sprintf(`Standard 12-week program for goal %q:

Weeks 1-4: foundation phase
- Focus: learning correct form on the basic movements
- Split: Full Body or Upper/Lower
- Intensity: 60-70%% of capacity (for %s level)
- Volume: 3 sets x 8-12 reps, rest 60-90 seconds
- Progression: add 2.5-5%% load or 1-2 reps per week

Weeks 5-8: growth phase
- Focus: increasing volume and muscular stimulus
- Split: Upper/Lower or Push/Pull/Legs
- Intensity: 70-75%% of capacity
- Volume: 3-4 sets x 8-12 reps, rest 60 seconds
- Progression: add sets or reps

Weeks 9-12: strength and consolidation phase
- Focus: building strength and locking in results
- Split: keep the previous phase split
- Intensity: 75-80%% of capacity
- Volume: 4 sets x 6-10 reps, rest 90-120 seconds
- Week 12: deload (cut volume by 40%% for recovery)`, goal, level),

		UserSummary: fmt.Sprintf(`Your program is a 12-week plan for %q in three phases. Weeks 1-4 build the foundation and prepare your body for heavier work. Weeks 5-8 are the main growth phase with rising volume and intensity. Weeks 9-12 consolidate your results and bring you to peak condition. Stay consistent and the goal is within reach.`, goal),

		Expectations: `Following this 12-week program you can expect: more energy and better sleep in the first 4 weeks while you learn proper form; noticeable strength gains and early body-composition changes in weeks 5-8; visible physical changes, a 20-30% strength increase on the main lifts and improved overall fitness by weeks 9-12. Progress is steady and measurable throughout.`,
	}
}
