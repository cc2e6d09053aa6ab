package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitplan/internal/models"
)

func strategyResponse(detailed, summary, expectations string) string {
	return fmt.Sprintf(`{"detailed_strategy":%q,"user_summary":%q,"expectations":%q}`,
		detailed, summary, expectations)
}

func TestGenerateStrategy_Success(t *testing.T) {
	detailed := strings.Repeat("Weeks 1-4: foundation. ", 12)
	summary := strings.Repeat("Three phases of steady progress. ", 3)
	expectations := strings.Repeat("Strength gains from week 5. ", 3)

	st, err := NewStrategist(
		&fakeTextGenerator{response: strategyResponse(detailed, summary, expectations)},
		zap.NewNop().Sugar(),
	).GenerateStrategy(context.Background(), testProfile())

	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(detailed), st.DetailedStrategy)
	assert.Equal(t, strings.TrimSpace(summary), st.UserSummary)
}

func TestGenerateStrategy_CleansMarkdown(t *testing.T) {
	detailed := "**Phase 1**: " + strings.Repeat("progressive overload work. ", 10)
	summary := "Your plan has *three* phases " + strings.Repeat("of growth ", 5)
	expectations := "__Visible__ results by week 6 " + strings.Repeat("and beyond ", 5)

	st, err := NewStrategist(
		&fakeTextGenerator{response: strategyResponse(detailed, summary, expectations)},
		zap.NewNop().Sugar(),
	).GenerateStrategy(context.Background(), testProfile())

	require.NoError(t, err)
	assert.NotContains(t, st.DetailedStrategy, "**")
	assert.True(t, strings.HasPrefix(st.DetailedStrategy, "Phase 1:"))
	assert.NotContains(t, st.UserSummary, "*")
	assert.NotContains(t, st.Expectations, "__")
}

func TestGenerateStrategy_FallbackOnServiceError(t *testing.T) {
	st, err := NewStrategist(
		&fakeTextGenerator{err: errors.New("timeout")},
		zap.NewNop().Sugar(),
	).GenerateStrategy(context.Background(), testProfile())

	require.NoError(t, err, "сбой сервиса деградирует до базовой стратегии")
	assert.Contains(t, st.DetailedStrategy, "12-week")
	assert.Contains(t, st.DetailedStrategy, "build_muscle")
}

func TestGenerateStrategy_FallbackOnShortStrategy(t *testing.T) {
	// detailed_strategy короче 200 символов: валидация отклоняет
	st, err := NewStrategist(
		&fakeTextGenerator{response: strategyResponse(
			"too short",
			strings.Repeat("summary text here ", 5),
			strings.Repeat("expectations here ", 5),
		)},
		zap.NewNop().Sugar(),
	).GenerateStrategy(context.Background(), testProfile())

	require.NoError(t, err)
	assert.Contains(t, st.DetailedStrategy, "Weeks 1-4")
}

func TestGenerateStrategy_FallbackOnMalformedJSON(t *testing.T) {
	st, err := NewStrategist(
		&fakeTextGenerator{response: "no json here"},
		zap.NewNop().Sugar(),
	).GenerateStrategy(context.Background(), testProfile())

	require.NoError(t, err)
	assert.NotEmpty(t, st.DetailedStrategy)
	assert.NotEmpty(t, st.UserSummary)
	assert.NotEmpty(t, st.Expectations)
}

func TestValidateStrategy_Lengths(t *testing.T) {
	long := strings.Repeat("x", 250)
	mid := strings.Repeat("y", 100)

	tests := []struct {
		name    string
		st      models.TrainingStrategy
		wantErr bool
	}{
		{
			name: "valid",
			st:   models.TrainingStrategy{DetailedStrategy: long, UserSummary: mid, Expectations: mid},
		},
		{
			name:    "detailed too short",
			st:      models.TrainingStrategy{DetailedStrategy: "short", UserSummary: mid, Expectations: mid},
			wantErr: true,
		},
		{
			name:    "summary too short",
			st:      models.TrainingStrategy{DetailedStrategy: long, UserSummary: "short", Expectations: mid},
			wantErr: true,
		},
		{
			name:    "expectations too long",
			st:      models.TrainingStrategy{DetailedStrategy: long, UserSummary: mid, Expectations: strings.Repeat("z", 1100)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStrategy(tt.st)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bold", input: "**bold** text", want: "bold text"},
		{name: "italic", input: "*italic* text", want: "italic text"},
		{name: "underscore bold", input: "__bold__ text", want: "bold text"},
		{name: "collapses blank lines", input: "a\n\n\n\nb", want: "a\n\nb"},
		{name: "trims spaces around newlines", input: "a   \n   b", want: "a\nb"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanMarkdown(tt.input))
		})
	}
}
