package ai

import (
	"context"
	"time"

	"noteflow-backend/pkg/gemini"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "ollama" or "auto"

	// Gemini config
	GeminiAPIKey string

	// Ollama config
	OllamaBaseURL string
	OllamaModel   string

	// Timeout bounds every provider call; requests to a stuck model must not
	// hold a request slot indefinitely.
	Timeout time.Duration
}

// geminiNotesService adapts the raw Gemini client to NotesService.
type geminiNotesService struct {
	svc *gemini.GeminiService
}

func (g *geminiNotesService) GenerateNotes(ctx context.Context, transcript string) (string, error) {
	return g.svc.Generate(ctx, notesPrompt(transcript))
}

func (g *geminiNotesService) AnswerQuestion(ctx context.Context, noteContent, question string) (string, error) {
	return g.svc.Generate(ctx, questionPrompt(noteContent, question))
}

// NewNotesService creates a NotesService based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewNotesService(cfg Config) NotesService {
	switch cfg.Provider {
	case ProviderGemini:
		return &geminiNotesService{svc: gemini.NewGeminiService(cfg.GeminiAPIKey, cfg.Timeout)}

	case ProviderOllama:
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.Timeout)

	default:
		// Prefer Gemini when an API key is available, otherwise local Ollama.
		if cfg.GeminiAPIKey != "" {
			return &geminiNotesService{svc: gemini.NewGeminiService(cfg.GeminiAPIKey, cfg.Timeout)}
		}
		return NewOllamaService(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.Timeout)
	}
}
