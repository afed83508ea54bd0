package llm

import "context"

// Stub is a deterministic ChatModel for tests and offline runs.
// It records the last prompts and returns a fixed reply or error.
type Stub struct {
	Reply string
	Err   error

	LastSystemPrompt string
	LastUserPrompt   string
	Calls            int
}

func (s *Stub) Ask(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	s.Calls++
	s.LastSystemPrompt = systemPrompt
	s.LastUserPrompt = userPrompt
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}
