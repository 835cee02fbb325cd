package model

import (
	"context"
	"fmt"
)

// Message roles used in a conversation transcript. Observations produced by
// tool execution are sent with RoleUser so providers that only accept the
// standard chat roles can consume them unchanged.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged entry in a conversation transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SystemMessage constructs a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage constructs a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage constructs an assistant-role message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Request captures the normalized model input produced by the agent loop.
type Request struct {
	// Messages is the ordered transcript sent to the provider.
	Messages []Message `json:"messages"`
	// ForceJSON hints the provider to constrain output to a single JSON
	// object. Providers without native support may ignore it; the caller's
	// parser tolerates free-form text either way.
	ForceJSON bool `json:"force_json,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Response is one completed generation returned by a model.
type Response struct {
	ID           string      `json:"id"`
	Text         string      `json:"text"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Model is the minimal interface the agent loop requires from a reasoning
// backend: one blocking completion per call. Transport, authentication and
// rate limiting are provider concerns hidden behind implementations.
type Model interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Info returns information about the model implementation.
	Info() Info
}

// Mock is a lightweight in-memory Model useful for tests and examples.
//
// Responses can be registered two ways:
//   - AddResponse maps the content of the last message to a fixed reply
//   - EnqueueResponse appends to a FIFO script consumed one call at a time
//
// Scripted responses take precedence over mapped ones. EnqueueError injects
// a transport failure at the corresponding position in the script.
type Mock struct {
	info      Info
	responses map[string]string
	script    []scriptEntry
	requests  []Request
	calls     int
}

type scriptEntry struct {
	text string
	err  error
}

// NewMock constructs a Mock model.
func NewMock() *Mock {
	return &Mock{
		info:      Info{Name: "mock", Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *Mock) AddResponse(prompt, response string) { m.responses[prompt] = response }

// EnqueueResponse appends a scripted completion consumed in FIFO order.
func (m *Mock) EnqueueResponse(text string) {
	m.script = append(m.script, scriptEntry{text: text})
}

// EnqueueError appends a scripted transport failure consumed in FIFO order.
func (m *Mock) EnqueueError(err error) {
	m.script = append(m.script, scriptEntry{err: err})
}

// Calls reports how many times Generate has been invoked.
func (m *Mock) Calls() int { return m.calls }

// Requests returns every request seen by Generate, in order. Tests use this
// to assert on transcript contents without reaching into the loop.
func (m *Mock) Requests() []Request { return m.requests }

// Generate implements Model.
func (m *Mock) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.calls++
	m.requests = append(m.requests, req)
	if len(m.script) > 0 {
		entry := m.script[0]
		m.script = m.script[1:]
		if entry.err != nil {
			return nil, entry.err
		}
		return &Response{Text: entry.text, FinishReason: "stop"}, nil
	}
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	last := req.Messages[len(req.Messages)-1]
	text, ok := m.responses[last.Content]
	if !ok {
		text = fmt.Sprintf("Mock response to: %s", last.Content)
	}
	return &Response{Text: text, FinishReason: "stop"}, nil
}

// Info implements Model.
func (m *Mock) Info() Info { return m.info }
