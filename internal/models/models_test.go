package models

import (
	"encoding/json"
	"testing"
)

func TestDifficultyForExperience(t *testing.T) {
	tests := []struct {
		experience string
		want       string
	}{
		{"beginner", "Beginner"},
		{"intermediate", "Novice"},
		{"advanced", "Intermediate"},
		{"expert", "Advanced"},
		{"EXPERT", "Advanced"},
		{"  intermediate  ", "Novice"},
		{"unknown", "Beginner"},
		{"", "Beginner"},
	}

	for _, tt := range tests {
		if got := DifficultyForExperience(tt.experience); got != tt.want {
			t.Errorf("DifficultyForExperience(%q) = %q, ожидалось %q", tt.experience, got, tt.want)
		}
	}
}

func TestRepSpec_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RepSpec
	}{
		{name: "number", input: `{"reps":10}`, want: "10"},
		{name: "range string", input: `{"reps":"8-12"}`, want: "8-12"},
		{name: "null", input: `{"reps":null}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry struct {
				Reps RepSpec `json:"reps"`
			}
			if err := json.Unmarshal([]byte(tt.input), &entry); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if entry.Reps != tt.want {
				t.Errorf("Reps = %q, ожидалось %q", entry.Reps, tt.want)
			}
		})
	}
}

func TestStrategyForGoal(t *testing.T) {
	st := StrategyForGoal("build_muscle")
	if len(st.MuscleGroups) == 0 {
		t.Fatal("build_muscle: пустая стратегия")
	}

	// Неизвестная цель деградирует до general_fitness
	unknown := StrategyForGoal("become_astronaut")
	general := StrategyForGoal("general_fitness")
	if len(unknown.FocusAreas) != len(general.FocusAreas) {
		t.Error("неизвестная цель должна давать стратегию general_fitness")
	}
}

func TestMatchModeFor(t *testing.T) {
	if MatchModeFor(AxisDifficulty) != MatchExact {
		t.Error("сложность сопоставляется точно")
	}
	if MatchModeFor(AxisMuscleGroup) != MatchContains {
		t.Error("мышечные группы сопоставляются по подстроке")
	}
}
