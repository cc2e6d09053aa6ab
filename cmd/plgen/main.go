package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"fitplan/clients/ai"
	"fitplan/internal/config"
	"fitplan/internal/generator"
	"fitplan/internal/models"
	"fitplan/internal/repository"
)

func main() {
	// Флаги
	profilePath := flag.String("profile", "", "Файл с профилем пользователя (JSON)")
	configPath := flag.String("config", ".", "Каталог с config.yaml")
	output := flag.String("output", "", "Файл для сохранения плана (JSON)")
	withStrategy := flag.Bool("strategy", false, "Дополнительно сгенерировать 12-недельную стратегию")
	timeout := flag.Duration("timeout", 10*time.Minute, "Общий таймаут генерации")

	flag.Parse()

	if *profilePath == "" {
		fmt.Println("❌ Укажите файл профиля: -profile profile.json")
		flag.Usage()
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Printf("❌ Ошибка инициализации логгера: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if err := run(*profilePath, *configPath, *output, *withStrategy, *timeout, log); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

func run(profilePath, configPath, output string, withStrategy bool, timeout time.Duration, log *zap.SugaredLogger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("загрузка конфигурации: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("конфигурация: %w", err)
	}

	profile, err := readProfile(profilePath)
	if err != nil {
		return err
	}

	db, err := repository.OpenDB(cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("подключение к базе: %w", err)
	}
	defer db.Close()

	catalog := repository.NewCatalogRepository(db)
	selector := generator.NewSelector(catalog, log)
	client := ai.NewClient(ai.ClientConfig{
		BaseURL:         cfg.AI.BaseURL,
		APIKey:          cfg.AI.APIKey,
		Model:           cfg.AI.Model,
		MaxRetries:      cfg.AI.MaxRetries,
		RetryDelay:      cfg.AI.RetryDelay,
		Timeout:         cfg.AI.Timeout,
		Temperature:     cfg.AI.Temperature,
		TopP:            cfg.AI.TopP,
		TopK:            cfg.AI.TopK,
		MaxOutputTokens: cfg.AI.MaxOutputTokens,
	}, log)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	planGen := ai.NewPlanGenerator(client, selector, log)
	result, err := planGen.GenerateWeeklyPlan(ctx, profile)
	if err != nil {
		return fmt.Errorf("генерация плана: %w", err)
	}

	out := struct {
		*models.WeeklyPlanResult
		Strategy *models.TrainingStrategy `json:"strategy,omitempty"`
	}{WeeklyPlanResult: result}

	if withStrategy {
		strategist := ai.NewStrategist(client, log)
		st, err := strategist.GenerateStrategy(ctx, profile)
		if err != nil {
			return fmt.Errorf("генерация стратегии: %w", err)
		}
		out.Strategy = st
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("сериализация результата: %w", err)
	}

	if output != "" {
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("запись файла: %w", err)
		}
		fmt.Printf("✅ План сохранён в %s\n", output)
		return nil
	}

	fmt.Println(string(data))
	return nil
}

func readProfile(path string) (models.UserProfile, error) {
	var profile models.UserProfile

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("чтение профиля: %w", err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("разбор профиля: %w", err)
	}
	if profile.TrainingDays == 0 {
		profile.TrainingDays = 3
	}
	return profile, nil
}
