package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agentpro/agentpro/internal/textutil"
	"github.com/agentpro/agentpro/logging"
	"github.com/agentpro/agentpro/model"
	"github.com/agentpro/agentpro/tool"
)

// DefaultMaxIterations bounds the reason-act-observe cycle when no override
// is supplied.
const DefaultMaxIterations = 5

// BudgetExceededMessage is returned by Run (together with ErrMaxIterations)
// when the iteration budget runs out before the model produces a final
// answer. It is fixed text, distinguishable from any genuine answer.
const BudgetExceededMessage = "Error: Agent reached maximum iterations without providing a final answer."

var (
	// ErrNoModel reports a missing reasoning backend at construction time.
	ErrNoModel = errors.New("agent: reasoning model is not configured")

	// ErrMaxIterations reports that the iteration budget was exhausted.
	ErrMaxIterations = errors.New("agent: maximum iterations reached without a final answer")
)

// parseRetryObservation asks the model to self-correct after unparseable output.
const parseRetryObservation = "Your previous response was not in the expected JSON format. " +
	"Please think step-by-step and provide your reasoning and action in the specified JSON structure."

// Options configures an Agent instance.
//
// Use functional options with New to override defaults.
type Options struct {
	// Name identifies the agent; it doubles as the tool name when the agent
	// is registered as a capability of another agent.
	Name string
	// Description is shown to a parent agent's model when composed as a tool.
	Description string
	// ArgumentHint describes the expected task string when composed as a tool.
	ArgumentHint string
	// MaxIterations bounds reasoning calls per run. Default 5.
	MaxIterations int
	// Logger receives structured loop events. Default NoOpLogger.
	Logger logging.Logger
}

// Agent drives the ReAct loop: it repeatedly asks a reasoning model to pick
// between invoking a registered tool or concluding the task, executes the
// choice, folds the outcome back into the transcript as an observation, and
// stops on a final answer or when the iteration budget runs out.
//
// An Agent is immutable after construction. It holds no per-run state: each
// Run owns its transcript exclusively, so a single Agent may serve many
// concurrent runs as long as the registry is never mutated (Registry
// guarantees that by construction).
//
// Agent itself satisfies tool.Tool, so a fully configured agent can be
// registered as one capability of a larger agent.
type Agent struct {
	name          string
	description   string
	argHint       string
	llm           model.Model
	registry      *tool.Registry
	maxIterations int
	logger        logging.Logger
}

// New constructs an Agent. A nil model is a configuration error reported
// immediately (wrapped ErrNoModel); no iterations are ever attempted without
// a usable backend.
func New(llm model.Model, registry *tool.Registry, optFns ...func(o *Options)) (*Agent, error) {
	opts := Options{
		Name:          "ReAct Research Agent",
		Description:   "Manages a research task by reasoning, searching the internet, and writing reports.",
		ArgumentHint:  "The overall research task or question.",
		MaxIterations: DefaultMaxIterations,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if llm == nil {
		return nil, fmt.Errorf("%w: check API key and provider setup", ErrNoModel)
	}
	if registry == nil {
		var err error
		if registry, err = tool.NewRegistry(); err != nil {
			return nil, err
		}
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Agent{
		name:          opts.Name,
		description:   opts.Description,
		argHint:       opts.ArgumentHint,
		llm:           llm,
		registry:      registry,
		maxIterations: opts.MaxIterations,
		logger:        opts.Logger,
	}, nil
}

// Run executes the ReAct loop for one task and returns the final result.
//
// The only successful exit is the model selecting FinalAnswer, whose
// argument is returned verbatim. Everything that goes wrong during an
// iteration (unparseable output, unknown tool, tool failure, transport
// failure) is absorbed into the transcript as an observation so the model
// can adapt; one bad iteration never terminates the task. When the budget
// is exhausted Run returns BudgetExceededMessage together with
// ErrMaxIterations. Context cancellation aborts the run with ctx.Err().
func (a *Agent) Run(ctx context.Context, task string) (string, error) {
	runID := uuid.NewString()
	logger := a.logger
	start := time.Now()

	logger.Info("agent.run.start", "run_id", runID, "task", textutil.Truncate(task, 100))

	// The transcript is owned by this invocation alone and grows
	// monotonically; it is discarded when Run returns.
	messages := []model.Message{
		model.SystemMessage(systemPrompt(a.registry)),
		taskMessage(task),
	}

	for i := 1; i <= a.maxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		logger.Debug("agent.iteration.start", "run_id", runID, "iteration", i, "transcript_len", len(messages))

		resp, err := a.llm.Generate(ctx, model.Request{Messages: messages, ForceJSON: true})
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			logger.Warn("agent.iteration.model_error", "run_id", runID, "iteration", i, "error", err.Error())
			messages = append(messages, observation(fmt.Sprintf(
				"An error occurred in the previous step: %s. Please assess the situation and proceed.",
				textutil.SanitizeError(err.Error()))))
			continue
		}

		// The raw response joins the transcript whether or not it parses:
		// the model must see its own malformed output to self-correct.
		messages = append(messages, model.AssistantMessage(resp.Text))

		act, err := ParseAction(resp.Text)
		if err != nil {
			logger.Warn("agent.iteration.parse_failed", "run_id", runID, "iteration", i, "error", err.Error())
			messages = append(messages, observation(parseRetryObservation))
			continue
		}

		logger.Debug("agent.iteration.action",
			"run_id", runID, "iteration", i,
			"tool", act.ToolName, "argument", textutil.Truncate(act.Argument, 100))

		if tool.NormalizeName(act.ToolName) == FinalAnswer {
			logger.Info("agent.run.final_answer", "run_id", runID, "iterations", i, "duration_ms", time.Since(start).Milliseconds())
			return act.Argument, nil
		}

		messages = append(messages, observation(a.dispatch(ctx, runID, act)))
	}

	logger.Warn("agent.run.budget_exceeded", "run_id", runID, "iterations", a.maxIterations)
	return BudgetExceededMessage, ErrMaxIterations
}

// dispatch resolves and executes one tool action, converting every failure
// mode into observation text. Tool-not-found enumerates the valid
// identifiers; execution errors and panics are bounded and sanitized before
// entering the transcript.
func (a *Agent) dispatch(ctx context.Context, runID string, act Action) string {
	selected, ok := a.registry.Lookup(act.ToolName)
	if !ok {
		a.logger.Warn("agent.dispatch.unknown_tool", "run_id", runID, "tool", act.ToolName)
		return fmt.Sprintf("Error: Tool '%s' not found. Available tools are: %s",
			act.ToolName, strings.Join(a.registry.Names(), ", "))
	}

	start := time.Now()
	result, err := safeExecute(ctx, selected, act.Argument)
	if err != nil {
		a.logger.Error("agent.dispatch.tool_error",
			"run_id", runID, "tool", act.ToolName, "error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds())
		return fmt.Sprintf("Error executing tool %s: %s",
			tool.NormalizeName(act.ToolName), textutil.SanitizeError(err.Error()))
	}

	a.logger.Info("agent.dispatch.success",
		"run_id", runID, "tool", act.ToolName,
		"duration_ms", time.Since(start).Milliseconds())
	return result
}

// safeExecute invokes a tool and converts panics into errors so no tool
// failure can cross the dispatch boundary.
func safeExecute(ctx context.Context, t tool.Tool, argument string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool panicked: %v", r)
		}
	}()
	return t.Execute(ctx, argument)
}

// Name implements tool.Tool.
func (a *Agent) Name() string { return a.name }

// Description implements tool.Tool.
func (a *Agent) Description() string { return a.description }

// ArgumentHint implements tool.Tool.
func (a *Agent) ArgumentHint() string { return a.argHint }

// Execute implements tool.Tool by running the full loop on the argument as a
// task. The budget-exceeded case surfaces as an error so a parent loop
// records it as a failed tool call rather than a genuine result.
func (a *Agent) Execute(ctx context.Context, argument string) (string, error) {
	return a.Run(ctx, argument)
}
