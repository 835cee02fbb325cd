// Package tool implements the capability subsystem that lets the agent invoke
// external functions (web lookups, document generation, side-effects) through
// a single uniform contract with consistent error handling.
package tool

import (
	"context"
	"fmt"
)

// Tool defines the interface for extending agent capabilities with external
// functions.
//
// A tool takes exactly one string argument and returns exactly one string
// result. This deliberately narrow shape keeps every capability expressible
// over the plain-text channel shared with the reasoning model: whatever a
// tool produces, success or failure, travels back as transcript text.
//
// Tool implementations should:
//   - Provide clear, descriptive names (snake_case recommended; names are
//     normalized at registration either way)
//   - Describe the expected argument via ArgumentHint
//   - Return errors rather than panic; the dispatch boundary converts both
//     into observations
//   - Be safe for concurrent use, since one registry may serve many runs
type Tool interface {
	// Name returns the identifier for this tool. It is normalized with
	// NormalizeName before registration and lookup.
	Name() string

	// Description returns a human-readable description of what this tool does.
	// It is shown to the reasoning model to help it choose tools.
	Description() string

	// ArgumentHint describes the single string argument Execute expects.
	ArgumentHint() string

	// Execute performs the tool's work with the given argument and returns
	// the textual result.
	Execute(ctx context.Context, argument string) (string, error)
}

// Describe renders a tool's identity for inclusion in the system prompt.
func Describe(t Tool) string {
	return fmt.Sprintf("Tool Name: %s\nDescription: %s\nArgument: %s",
		NormalizeName(t.Name()), t.Description(), t.ArgumentHint())
}

// Error represents a failure inside a tool execution, carrying the tool name
// and a code for categorization.
type Error struct {
	Tool    string `json:"tool"`    // Name of the tool that failed
	Message string `json:"message"` // Error message
	Code    string `json:"code"`    // Error code for categorization
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewError creates a new Error with the specified details.
func NewError(tool, message, code string) *Error {
	return &Error{Tool: tool, Message: message, Code: code}
}
