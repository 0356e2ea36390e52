package ai

import "fmt"

// notesPrompt is shared across providers so generated notes look the same
// regardless of which backend served the request.
func notesPrompt(transcript string) string {
	return fmt.Sprintf(`You are an expert note-taker. Analyze the following lecture transcript and create structured, easy-to-read notes.

TRANSCRIPT:
%s

INSTRUCTIONS:
1. Identify the Main Topic.
2. List Key Points with bullet points.
3. Extract Important Concepts and define them briefly.
4. Provide a concise Summary.

OUTPUT FORMAT:
## Main Topic

### Key Points
- [Point 1]
- [Point 2]

### Important Concepts
- **[Concept]**: [Definition]

### Summary
[Summary text]`, transcript)
}

func questionPrompt(noteContent, question string) string {
	return fmt.Sprintf(`You are a study assistant. Answer the student's question using ONLY the lecture notes below. If the notes do not contain the answer, say so plainly instead of guessing.

NOTES:
%s

QUESTION:
%s

ANSWER:`, noteContent, question)
}
