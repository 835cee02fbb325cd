package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentpro/agentpro/model"
)

func TestNewReportWriter_RequiresModel(t *testing.T) {
	_, err := NewReportWriter(nil)
	assert.Error(t, err)
}

func TestReportWriter_EmptyInput(t *testing.T) {
	r, err := NewReportWriter(model.NewMock())
	require.NoError(t, err)

	_, err = r.Execute(context.Background(), "  \n ")
	require.Error(t, err)

	var toolErr *Error
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "EMPTY_ARGUMENT", toolErr.Code)
}

func TestReportWriter_GeneratesReport(t *testing.T) {
	mock := model.NewMock()
	mock.EnqueueResponse("# Findings\n\n- point one")

	r, err := NewReportWriter(mock)
	require.NoError(t, err)

	out, err := r.Execute(context.Background(), "raw findings text")
	require.NoError(t, err)
	assert.Equal(t, "# Findings\n\n- point one", out)

	// The tool runs its own conversation: report system prompt plus the
	// findings wrapped in a user message.
	req := mock.Requests()[0]
	require.Len(t, req.Messages, 2)
	assert.Equal(t, model.RoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "writing concise and informative reports")
	assert.Contains(t, req.Messages[1].Content, "raw findings text")
}

func TestReportWriter_ModelFailure(t *testing.T) {
	mock := model.NewMock()
	mock.EnqueueError(errors.New("rate limited"))

	r, err := NewReportWriter(mock)
	require.NoError(t, err)

	_, err = r.Execute(context.Background(), "findings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report generation failed")
}
