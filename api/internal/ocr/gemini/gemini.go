package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"workout-bot/api/internal/util"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string      { return "gemini" }
func (e *Engine) GetModel() string  { return e.Model }
func (e *Engine) SetModel(m string) { e.Model = strings.TrimSpace(m) }

// Recognize снимает текст со скриншота трекера. Только транскрипция:
// модель ничего не интерпретирует, порядок строк сохраняется как на экране.
func (e *Engine) Recognize(ctx context.Context, image []byte) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(`Ты — OCR-модуль. На входе скриншот итогов тренировки из фитнес-трекера.
Перепиши ВЕСЬ текст со скриншота дословно, строка в строку, сверху вниз.
Ничего не добавляй, не переводи, не нормализуй числа и не меняй порядок строк.
Выводи только текст, без комментариев и без markdown.`),
		},
	}

	parts := []genai.Part{
		genai.Text("Текст со скриншота:"),
		&genai.Blob{MIMEType: util.SniffMime(image), Data: image},
	}

	// Ретраи на транзиентные сбои
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
			continue
		}
		txt := firstText(resp)
		if txt == "" {
			return "", fmt.Errorf("gemini: empty response")
		}
		return util.StripCodeFences(txt), nil
	}
	return "", lastErr
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				if s := strings.TrimSpace(string(t)); s != "" {
					return s
				}
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
