// Package agentpro provides a high-level façade over the agent loop and its
// collaborators (model adapters, tool registry, configuration & logging)
// enabling one-call construction of a ready-to-run research agent. Most
// applications interact with this package by:
//  1. Creating an agent via New() (optionally overriding provider, tools or logger)
//  2. Calling Run with a task string
//
// The façade delegates orchestration to agent.Agent while keeping setup
// ergonomics concise. Defaults follow the loaded configuration: OpenAI
// backend, the internet search and report writing tools, five iterations.
package agentpro

import (
	"github.com/agentpro/agentpro/agent"
	"github.com/agentpro/agentpro/config"
	"github.com/agentpro/agentpro/logging"
	"github.com/agentpro/agentpro/model"
	"github.com/agentpro/agentpro/model/anthropic"
	"github.com/agentpro/agentpro/model/openai"
	"github.com/agentpro/agentpro/tool"
)

// Options configures the New façade constructor.
type Options struct {
	// Config supplies provider, model id and loop bounds. Defaults to
	// config.Load().
	Config *config.Config
	// Logger used by the loop. Defaults to a logger built from Config.Log.
	Logger logging.Logger
	// Model overrides provider selection entirely (useful for tests with
	// model.Mock). When set, no credential validation is performed.
	Model model.Model
	// ExtraTools are registered alongside the bundled search and report
	// tools.
	ExtraTools []tool.Tool
}

// New assembles a fully wired research agent: configuration, credential
// validation, model adapter, bundled tools, and the loop itself. It fails
// fast on configuration problems (unknown provider, missing API key,
// duplicate tool names); nothing is retried or silently skipped.
func New(optFns ...func(o *Options)) (*agent.Agent, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Config == nil {
		opts.Config = config.Load()
	}
	cfg := opts.Config
	if opts.Logger == nil {
		opts.Logger = logging.New(&logging.Config{
			Level:  logging.ParseLevel(cfg.Log.Level),
			Format: cfg.Log.Format,
		})
	}

	llm := opts.Model
	if llm == nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		switch cfg.Agent.Provider {
		case config.ProviderAnthropic:
			llm = anthropic.NewModel(func(o *anthropic.Options) {
				if cfg.Agent.Model != "" {
					o.Model = cfg.Agent.Model
				}
			})
		default:
			llm = openai.NewModel(func(o *openai.Options) {
				if cfg.Agent.Model != "" {
					o.Model = cfg.Agent.Model
				}
			})
		}
	}

	reportTool, err := tool.NewReportWriter(llm)
	if err != nil {
		return nil, err
	}
	tools := append([]tool.Tool{tool.NewInternetSearch(), reportTool}, opts.ExtraTools...)

	registry, err := tool.NewRegistry(tools...)
	if err != nil {
		return nil, err
	}

	return agent.New(llm, registry, func(o *agent.Options) {
		o.MaxIterations = cfg.Agent.MaxIterations
		o.Logger = logging.WithComponent(opts.Logger, "agent")
	})
}
