package generator

import (
	"testing"

	"fitplan/internal/models"
)

func TestPlanWeeklySplit_DayCount(t *testing.T) {
	for days := 1; days <= 7; days++ {
		split := PlanWeeklySplit(days, "", models.Strategy{})
		if len(split) != days {
			t.Errorf("PlanWeeklySplit(%d) вернул %d дней", days, len(split))
		}
		for i, d := range split {
			if d.Day != i+1 {
				t.Errorf("PlanWeeklySplit(%d): день %d имеет индекс %d", days, i+1, d.Day)
			}
		}
	}
}

func TestPlanWeeklySplit_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		wantDays int
	}{
		{name: "zero clamps to one", days: 0, wantDays: 1},
		{name: "negative clamps to one", days: -3, wantDays: 1},
		{name: "above seven clamps to seven", days: 10, wantDays: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := PlanWeeklySplit(tt.days, "", models.Strategy{})
			if len(split) != tt.wantDays {
				t.Errorf("PlanWeeklySplit(%d) вернул %d дней, ожидалось %d", tt.days, len(split), tt.wantDays)
			}
		})
	}
}

func TestPlanWeeklySplit_FourDayArchetype(t *testing.T) {
	split := PlanWeeklySplit(4, "", models.Strategy{})
	if len(split) != 4 {
		t.Fatalf("получено %d дней, ожидалось 4", len(split))
	}

	wantFocus := []string{
		"Upper Push (Chest & Triceps)",
		"Lower Body (Legs & Glutes)",
		"Upper Pull (Back & Biceps)",
		"Core + Cardio",
	}
	for i, want := range wantFocus {
		if split[i].Focus != want {
			t.Errorf("день %d: фокус %q, ожидалось %q", i+1, split[i].Focus, want)
		}
	}
}

func TestPlanWeeklySplit_SportOverride(t *testing.T) {
	tests := []struct {
		name      string
		sport     string
		wantFocus string // фокус первого дня
	}{
		{name: "marathon", sport: "Marathon prep", wantFocus: "Running + Core"},
		{name: "running substring", sport: "trail running", wantFocus: "Running + Core"},
		{name: "unrelated sport keeps standard split", sport: "swimming", wantFocus: "Full Body Strength"},
		{name: "empty sport keeps standard split", sport: "", wantFocus: "Full Body Strength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := PlanWeeklySplit(3, tt.sport, models.Strategy{})
			if split[0].Focus != tt.wantFocus {
				t.Errorf("первый день: фокус %q, ожидалось %q", split[0].Focus, tt.wantFocus)
			}
		})
	}
}

func TestPlanWeeklySplit_SportFiveDays(t *testing.T) {
	// Отдельного 5-дневного спортивного архетипа нет:
	// берутся первые 5 дней недельного
	split := PlanWeeklySplit(5, "running", models.Strategy{})
	if len(split) != 5 {
		t.Fatalf("получено %d дней, ожидалось 5", len(split))
	}
	if split[0].Focus != "Running + Cardio" {
		t.Errorf("первый день: фокус %q, ожидалось %q", split[0].Focus, "Running + Cardio")
	}
	if split[4].Focus != "Running + Intervals" {
		t.Errorf("пятый день: фокус %q, ожидалось %q", split[4].Focus, "Running + Intervals")
	}
}

func TestPlanWeeklySplit_ReturnsCopy(t *testing.T) {
	a := PlanWeeklySplit(3, "", models.Strategy{})
	a[0].Focus = "mutated"
	a[0].MuscleGroups[0] = "mutated"

	b := PlanWeeklySplit(3, "", models.Strategy{})
	if b[0].Focus == "mutated" {
		t.Error("PlanWeeklySplit возвращает ссылку на общую таблицу")
	}
	if b[0].MuscleGroups[0] == "mutated" {
		t.Error("списки мышечных групп разделяют память с таблицей архетипов")
	}
}
