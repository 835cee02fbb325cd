package agentpro

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentpro/agentpro/config"
	"github.com/agentpro/agentpro/model"
	"github.com/agentpro/agentpro/tool"
)

func TestNew_WithMockModelNeedsNoCredentials(t *testing.T) {
	mock := model.NewMock()
	mock.EnqueueResponse(`{"thought": "done", "action": {"tool_name": "final_answer", "argument": "hello"}}`)

	a, err := New(func(o *Options) {
		o.Config = config.Default()
		o.Model = mock
	})
	require.NoError(t, err)

	result, err := a.Run(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", result)

	// Bundled tools are described in the system prompt.
	system := mock.Requests()[0].Messages[0].Content
	assert.Contains(t, system, "internet_search_tool")
	assert.Contains(t, system, "report_writing_tool")
}

func TestNew_UnknownProviderFailsFast(t *testing.T) {
	cfg := config.Default()
	cfg.Agent.Provider = "carrier-pigeon"

	_, err := New(func(o *Options) { o.Config = cfg })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestNew_MissingCredentialFailsFast(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := New(func(o *Options) { o.Config = config.Default() })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNew_DuplicateExtraToolRejected(t *testing.T) {
	dup := tool.NewFunc("Internet Search Tool", "shadowing duplicate", "query",
		func(_ context.Context, arg string) (string, error) { return arg, nil })

	_, err := New(func(o *Options) {
		o.Config = config.Default()
		o.Model = model.NewMock()
		o.ExtraTools = []tool.Tool{dup}
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
