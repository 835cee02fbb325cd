package tool

import "context"

// Func is a generic adapter that exposes a plain Go function as a Tool.
//
// It holds the identity fields (name, description, argument hint) alongside
// the implementation, so one-off capabilities can be registered without
// declaring a new type:
//
//	echo := tool.NewFunc(
//	  "echo", "Repeats the argument back.", "The text to repeat.",
//	  func(_ context.Context, arg string) (string, error) { return arg, nil },
//	)
//
// A Func has no internal mutable state after construction and is safe for
// concurrent use by multiple goroutines.
type Func struct {
	name        string
	description string
	argHint     string
	fn          func(ctx context.Context, argument string) (string, error)
}

// NewFunc constructs a Func from explicit identity fields and a function.
func NewFunc(
	name, description, argHint string,
	fn func(ctx context.Context, argument string) (string, error),
) *Func {
	return &Func{
		name:        name,
		description: description,
		argHint:     argHint,
		fn:          fn,
	}
}

// Name returns the tool identifier.
func (t *Func) Name() string { return t.name }

// Description returns the natural language description exposed to models.
func (t *Func) Description() string { return t.description }

// ArgumentHint describes the expected argument.
func (t *Func) ArgumentHint() string { return t.argHint }

// Execute invokes the wrapped function.
func (t *Func) Execute(ctx context.Context, argument string) (string, error) {
	return t.fn(ctx, argument)
}
