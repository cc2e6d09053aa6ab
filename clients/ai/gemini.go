package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.avalai.ir"
	DefaultModel   = "gemini-2.5-flash"
)

// ClientConfig — параметры клиента сервиса генерации текста
type ClientConfig struct {
	BaseURL         string
	APIKey          string
	Model           string
	MaxRetries      int           // бюджет попыток, по умолчанию 3
	RetryDelay      time.Duration // начальная задержка, удваивается
	Timeout         time.Duration // стенной таймаут одной попытки
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// Client — клиент Gemini-совместимого API (:generateContent).
// Сетевые сбои, таймауты и 5xx ретраятся с экспоненциальной задержкой;
// 4xx фатальны и не ретраятся.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	maxRetries int
	retryDelay time.Duration
	genConfig  generationConfig
	httpClient *http.Client
	sleep      func(time.Duration) // подменяется в тестах
	log        *zap.SugaredLogger
}

// generationConfig — параметры сэмплирования модели
type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateRequest — тело запроса :generateContent
type generateRequest struct {
	Contents          []content        `json:"contents"`
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// APIError — ошибка сервиса генерации с HTTP-статусом
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("сервис генерации: статус %d: %.200s", e.StatusCode, e.Body)
}

// Retryable: клиентские ошибки (4xx) фатальны, серверные (5xx) временны
func (e *APIError) Retryable() bool { return e.StatusCode >= 500 }

// NewClient создаёт клиент сервиса генерации
func NewClient(cfg ClientConfig, log *zap.SugaredLogger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 5 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.TopP == 0 {
		cfg.TopP = 0.9
	}
	if cfg.TopK == 0 {
		cfg.TopK = 40
	}
	if cfg.MaxOutputTokens == 0 {
		cfg.MaxOutputTokens = 8192
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		genConfig: generationConfig{
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			TopK:            cfg.TopK,
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
		httpClient: &http.Client{Timeout: cfg.Timeout},
		sleep:      time.Sleep,
		log:        log,
	}
}

// Generate отправляет запрос модели и возвращает текст ответа.
// Ретраится только сетевой вызов: разбор ответа выполняется один раз.
func (c *Client) Generate(ctx context.Context, systemInstructions, userMessage string) (string, error) {
	req := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: userMessage}}},
		},
		GenerationConfig: c.genConfig,
	}
	if systemInstructions != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: systemInstructions}}}
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("сериализация запроса: %w", err)
	}

	delay := c.retryDelay
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		c.log.Infof("📡 Запрос к сервису генерации (попытка %d/%d)", attempt, c.maxRetries)

		body, err := c.doRequest(ctx, payload)
		if err == nil {
			return extractText(body)
		}
		lastErr = err

		var apiErr *APIError
		if errors.As(err, &apiErr) && !apiErr.Retryable() {
			// 4xx: дефект запроса, повторять бессмысленно
			return "", err
		}
		if ctx.Err() != nil {
			return "", fmt.Errorf("запрос отменён: %w", ctx.Err())
		}
		if attempt < c.maxRetries {
			c.log.Warnf("⚠️ Сбой запроса: %v, повтор через %s", err, delay)
			c.sleep(delay)
			delay *= 2
		}
	}

	return "", fmt.Errorf("сервис генерации недоступен после %d попыток: %w", c.maxRetries, lastErr)
}

// doRequest выполняет одну попытку HTTP-вызова
func (c *Client) doRequest(ctx context.Context, payload []byte) ([]byte, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("создание запроса: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("чтение ответа: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// extractText достаёт текст из ответа сервиса. Схема ответа у
// совместимых провайдеров дрейфует, поэтому известные формы
// контейнера пробуются по очереди.
func extractText(body []byte) (string, error) {
	var canonical struct {
		Candidates []struct {
			Content struct {
				Parts []part `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &canonical); err == nil {
		if len(canonical.Candidates) > 0 && len(canonical.Candidates[0].Content.Parts) > 0 {
			if t := canonical.Candidates[0].Content.Parts[0].Text; t != "" {
				return t, nil
			}
		}
	}

	// Альтернативные контейнеры (переименованные поля)
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(body, &flat); err == nil {
		for _, key := range []string{"output", "result", "text", "response"} {
			raw, ok := flat[key]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && s != "" {
				return s, nil
			}
		}
	}

	return "", fmt.Errorf("не удалось извлечь текст из ответа сервиса: %.200s", string(body))
}
