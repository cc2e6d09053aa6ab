package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"fitplan/internal/models"
)

// CatalogRepository — поисковый движок по каталогу упражнений.
// Каталог нормализован: таблица exercise плюс пара junction+dimension
// на каждую ось таксономии; сложность и стиль — прямые FK в exercise.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository создаёт репозиторий каталога
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// searchSelect — общая часть запроса. Все оси присоединяются LEFT JOIN
// независимо от критериев: агрегированные колонки нужны в выдаче
// всегда, а фильтр по неуказанной оси просто не добавляет условий
// (отсутствие оси в критериях не должно исключать упражнения без
// данных по ней).
const searchSelect = `
	SELECT
		e.exercise_id,
		e.name_en,
		COALESCE(e.name_fa, ''),
		COALESCE(e.instructions_en, '{}'),
		COALESCE(e.instructions_fa, '{}'),
		COALESCE(d.name_en, 'Unknown'),
		COALESCE(STRING_AGG(DISTINCT eq.name_en, ', '), 'Bodyweight'),
		COALESCE(STRING_AGG(DISTINCT mg.name_en, ', '), 'Full Body'),
		COALESCE(STRING_AGG(DISTINCT mr.name_en, ', '), 'General'),
		COALESCE(STRING_AGG(DISTINCT g.name_en, ', '), 'General Fitness'),
		COALESCE(STRING_AGG(DISTINCT mech.name_en, ', '), 'Unknown'),
		COALESCE(STRING_AGG(DISTINCT pos.name_en, ', '), 'Unknown'),
		COALESCE(STRING_AGG(DISTINCT tp.name_en, ', '), 'Main Lift'),
		COALESCE(s.name_en, 'Standard')
	FROM exercise e
	LEFT JOIN difficulty d ON e.difficulty_id = d.difficulty_id
	LEFT JOIN style s ON e.style_id = s.style_id
	LEFT JOIN exercise_equipment ee ON e.exercise_id = ee.exercise_id
	LEFT JOIN equipment eq ON ee.equipment_id = eq.equipment_id
	LEFT JOIN exercise_muscle_group emg ON e.exercise_id = emg.exercise_id
	LEFT JOIN muscle_group mg ON emg.muscle_group_id = mg.muscle_group_id
	LEFT JOIN exercise_muscle_region emr ON e.exercise_id = emr.exercise_id
	LEFT JOIN muscle_region mr ON emr.muscle_region_id = mr.muscle_region_id
	LEFT JOIN exercise_goal eg ON e.exercise_id = eg.exercise_id
	LEFT JOIN goal g ON eg.goal_id = g.goal_id
	LEFT JOIN exercise_mechanics emech ON e.exercise_id = emech.exercise_id
	LEFT JOIN mechanics mech ON emech.mechanics_id = mech.mechanics_id
	LEFT JOIN exercise_position epos ON e.exercise_id = epos.exercise_id
	LEFT JOIN position pos ON epos.position_id = pos.position_id
	LEFT JOIN exercise_training_phase etp ON e.exercise_id = etp.exercise_id
	LEFT JOIN training_phase tp ON etp.phase_id = tp.phase_id
	WHERE 1=1`

const searchGroupBy = `
	GROUP BY e.exercise_id, e.name_en, e.name_fa, e.instructions_en, e.instructions_fa, d.name_en, s.name_en`

// buildSearchQuery собирает параметризованный запрос по критериям.
// Чистая функция: тестируется без базы данных.
func buildSearchQuery(c models.FilterCriteria) (string, []any) {
	var sb strings.Builder
	sb.WriteString(searchSelect)

	var params []any
	next := func(v any) string {
		params = append(params, v)
		return fmt.Sprintf("$%d", len(params))
	}

	if c.Difficulty != "" {
		sb.WriteString(" AND " + axisCondition("d.name_en", models.AxisDifficulty, []string{c.Difficulty}, next))
	}
	if len(c.MuscleGroups) > 0 {
		sb.WriteString(" AND " + axisCondition("mg.name_en", models.AxisMuscleGroup, c.MuscleGroups, next))
	}
	if len(c.MuscleRegions) > 0 {
		sb.WriteString(" AND " + axisCondition("mr.name_en", models.AxisMuscleRegion, c.MuscleRegions, next))
	}
	if len(c.Equipment) > 0 {
		sb.WriteString(" AND " + equipmentCondition(c.Equipment, next))
	}
	if len(c.Goals) > 0 {
		sb.WriteString(" AND " + axisCondition("g.name_en", models.AxisGoal, c.Goals, next))
	}
	if len(c.Mechanics) > 0 {
		sb.WriteString(" AND " + axisCondition("mech.name_en", models.AxisMechanics, c.Mechanics, next))
	}
	if len(c.Positions) > 0 {
		sb.WriteString(" AND " + axisCondition("pos.name_en", models.AxisPosition, c.Positions, next))
	}
	if len(c.TrainingPhases) > 0 {
		sb.WriteString(" AND " + axisCondition("tp.name_en", models.AxisTrainingPhase, c.TrainingPhases, next))
	}
	if len(c.Styles) > 0 {
		sb.WriteString(" AND " + axisCondition("s.name_en", models.AxisStyle, c.Styles, next))
	}

	sb.WriteString(searchGroupBy)

	limit := c.Limit
	if limit <= 0 {
		limit = models.DefaultSearchLimit
	}
	sb.WriteString(" LIMIT " + next(limit))

	return sb.String(), params
}

// axisCondition строит OR-группу условий для одной оси. Режим
// сопоставления берётся из таблицы MatchModeFor.
func axisCondition(column string, axis models.FilterAxis, values []string, next func(any) string) string {
	conds := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		switch models.MatchModeFor(axis) {
		case models.MatchExact:
			conds = append(conds, fmt.Sprintf("LOWER(%s) = %s", column, next(v)))
		default:
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE %s", column, next("%"+v+"%")))
		}
	}
	if len(conds) == 0 {
		return "TRUE"
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

// equipmentCondition — особый случай оси оборудования: сентинел
// "bodyweight" дополнительно матчит упражнения вовсе без оборудования
// (NULL в junction-таблице означает собственный вес).
func equipmentCondition(equipment []string, next func(any) string) string {
	hasBodyweight := false
	for _, e := range equipment {
		if strings.EqualFold(strings.TrimSpace(e), "bodyweight") {
			hasBodyweight = true
			break
		}
	}
	if !hasBodyweight {
		return axisCondition("eq.name_en", models.AxisEquipment, equipment, next)
	}

	conds := []string{
		"eq.name_en IS NULL",
		fmt.Sprintf("LOWER(eq.name_en) LIKE %s", next("%bodyweight%")),
	}
	for _, e := range equipment {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || e == "bodyweight" {
			continue
		}
		conds = append(conds, fmt.Sprintf("LOWER(eq.name_en) LIKE %s", next("%"+e+"%")))
	}
	return "(" + strings.Join(conds, " OR ") + ")"
}

// Search выполняет поиск по каталогу. Порядок результата — порядок
// каталога; количество ограничено лимитом критериев.
func (r *CatalogRepository) Search(ctx context.Context, criteria models.FilterCriteria) ([]models.ExerciseRecord, error) {
	query, params := buildSearchQuery(criteria)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, &CatalogError{Op: "search", Err: err}
	}
	defer rows.Close()

	var exercises []models.ExerciseRecord
	for rows.Next() {
		var e models.ExerciseRecord
		var instructions, instructionsLocal pq.StringArray
		if err := rows.Scan(&e.ID, &e.Name, &e.NameLocal, &instructions, &instructionsLocal,
			&e.Difficulty, &e.Equipment, &e.MuscleGroups, &e.MuscleRegions,
			&e.Goals, &e.Mechanics, &e.Position, &e.TrainingPhase, &e.Style); err != nil {
			continue
		}
		e.Instructions = instructions
		e.InstructionsLocal = instructionsLocal
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &CatalogError{Op: "search", Err: err}
	}
	return exercises, nil
}

// ByMuscleGroup возвращает упражнения на конкретную мышечную группу
func (r *CatalogRepository) ByMuscleGroup(ctx context.Context, muscleGroup, difficulty string, equipment []string, limit int) ([]models.ExerciseRecord, error) {
	return r.Search(ctx, models.FilterCriteria{
		Difficulty:   difficulty,
		MuscleGroups: []string{muscleGroup},
		Equipment:    equipment,
		Limit:        limit,
	})
}

// WarmupExercises возвращает разминочные упражнения, опционально с
// фокусом на мышечную группу
func (r *CatalogRepository) WarmupExercises(ctx context.Context, muscleFocus string, equipment []string, limit int) ([]models.ExerciseRecord, error) {
	c := models.FilterCriteria{
		TrainingPhases: []string{"Warm-up", "Warmup"},
		Equipment:      equipment,
		Limit:          limit,
	}
	if muscleFocus != "" {
		c.MuscleGroups = []string{muscleFocus}
	}
	return r.Search(ctx, c)
}

// CooldownExercises возвращает заминку (растяжка/восстановление)
func (r *CatalogRepository) CooldownExercises(ctx context.Context, muscleFocus string, limit int) ([]models.ExerciseRecord, error) {
	c := models.FilterCriteria{
		TrainingPhases: []string{"Cool-down", "Cooldown"},
		Styles:         []string{"Stretches", "Recovery"},
		Limit:          limit,
	}
	if muscleFocus != "" {
		c.MuscleGroups = []string{muscleFocus}
	}
	return r.Search(ctx, c)
}

// CardioExercises возвращает кардио-упражнения
func (r *CatalogRepository) CardioExercises(ctx context.Context, difficulty string, equipment []string, limit int) ([]models.ExerciseRecord, error) {
	return r.Search(ctx, models.FilterCriteria{
		Difficulty: difficulty,
		Styles:     []string{"Cardio"},
		Equipment:  equipment,
		Limit:      limit,
	})
}

// RecoveryExercises возвращает восстановительные упражнения
func (r *CatalogRepository) RecoveryExercises(ctx context.Context, limit int) ([]models.ExerciseRecord, error) {
	return r.Search(ctx, models.FilterCriteria{
		Styles: []string{"Recovery"},
		Limit:  limit,
	})
}
