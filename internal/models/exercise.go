package models

// ExerciseRecord — денормализованная запись упражнения из каталога.
// Многозначные оси (оборудование, мышечные группы и т.д.) приходят
// агрегированными строками "A, B, C"; отсутствующие значения каталога
// заменяются значениями по умолчанию ещё на уровне SQL, поэтому поля
// никогда не бывают пустыми.
type ExerciseRecord struct {
	ID                int      `json:"exercise_id"`
	Name              string   `json:"name"`
	NameLocal         string   `json:"name_fa"` // локализованное название (каталог двуязычный)
	Instructions      []string `json:"instructions"`
	InstructionsLocal []string `json:"instructions_fa"`
	Difficulty        string   `json:"difficulty"`
	Equipment         string   `json:"equipment"`
	MuscleGroups      string   `json:"muscle_groups"`
	MuscleRegions     string   `json:"muscle_regions"`
	Goals             string   `json:"goals"`
	Mechanics         string   `json:"mechanics"`
	Position          string   `json:"position"`
	TrainingPhase     string   `json:"training_phase"`
	Style             string   `json:"style"`
}

// FilterCriteria — критерии поиска по каталогу. Оси объединяются через
// AND; значения внутри одной оси — через OR. Пустое поле означает
// "без ограничения по этой оси".
type FilterCriteria struct {
	Difficulty     string // единственное значение, точное совпадение
	MuscleGroups   []string
	MuscleRegions  []string
	Equipment      []string // "bodyweight" — сентинел, см. репозиторий
	Goals          []string
	Mechanics      []string
	Positions      []string
	TrainingPhases []string
	Styles         []string
	Limit          int // 0 = DefaultSearchLimit
}

// DefaultSearchLimit — лимит выборки по умолчанию
const DefaultSearchLimit = 50

// EquipmentBodyweight — сентинел оборудования: упражнение без
// оборудования (NULL в каталоге) считается упражнением с собственным весом
const EquipmentBodyweight = "Bodyweight"

// FilterAxis — одна независимая ось таксономии каталога
type FilterAxis string

const (
	AxisDifficulty    FilterAxis = "difficulty"
	AxisMuscleGroup   FilterAxis = "muscle_group"
	AxisMuscleRegion  FilterAxis = "muscle_region"
	AxisEquipment     FilterAxis = "equipment"
	AxisGoal          FilterAxis = "goal"
	AxisMechanics     FilterAxis = "mechanics"
	AxisPosition      FilterAxis = "position"
	AxisTrainingPhase FilterAxis = "training_phase"
	AxisStyle         FilterAxis = "style"
)

// MatchMode — режим сопоставления значений внутри оси
type MatchMode int

const (
	// MatchExact — точное совпадение без учёта регистра
	MatchExact MatchMode = iota
	// MatchContains — вхождение подстроки без учёта регистра
	MatchContains
)

// matchModes — единая таблица режимов по осям. Сложность сравнивается
// точно (значения приходят из внутренней таблицы уровней, а не из
// свободного текста), остальные оси — подстрочный поиск по меткам.
var matchModes = map[FilterAxis]MatchMode{
	AxisDifficulty:    MatchExact,
	AxisMuscleGroup:   MatchContains,
	AxisMuscleRegion:  MatchContains,
	AxisEquipment:     MatchContains,
	AxisGoal:          MatchContains,
	AxisMechanics:     MatchContains,
	AxisPosition:      MatchContains,
	AxisTrainingPhase: MatchContains,
	AxisStyle:         MatchContains,
}

// MatchModeFor возвращает режим сопоставления для оси
func MatchModeFor(axis FilterAxis) MatchMode {
	if m, ok := matchModes[axis]; ok {
		return m
	}
	return MatchContains
}
