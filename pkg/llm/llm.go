package llm

import "context"

// ChatModel abstracts the chat completion provider behind the resume analyzer
// and career assessor. Callers own their prompts and parse the raw reply
// themselves; every call site has a deterministic fallback, so implementations
// may simply return transport errors.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
