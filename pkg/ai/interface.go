package ai

import "context"

// NotesService is the interface for AI note generation and note-scoped Q&A.
// Implement this interface to add new AI providers (Gemini, Ollama, OpenAI, etc.)
type NotesService interface {
	// GenerateNotes turns a raw lecture transcript into structured markdown notes.
	GenerateNotes(ctx context.Context, transcript string) (string, error)

	// AnswerQuestion answers a question using only the given note's content.
	AnswerQuestion(ctx context.Context, noteContent, question string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
