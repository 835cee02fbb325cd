package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_MappedResponse(t *testing.T) {
	m := NewMock()
	m.AddResponse("ping", "pong")

	resp, err := m.Generate(context.Background(), Request{
		Messages: []Message{UserMessage("ping")},
	})
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Text)
}

func TestMock_DefaultEcho(t *testing.T) {
	m := NewMock()
	resp, err := m.Generate(context.Background(), Request{
		Messages: []Message{UserMessage("hello")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: hello", resp.Text)
}

func TestMock_ScriptTakesPrecedence(t *testing.T) {
	m := NewMock()
	m.AddResponse("ping", "pong")
	m.EnqueueResponse("scripted one")
	m.EnqueueError(errors.New("scripted failure"))

	resp, err := m.Generate(context.Background(), Request{Messages: []Message{UserMessage("ping")}})
	require.NoError(t, err)
	assert.Equal(t, "scripted one", resp.Text)

	_, err = m.Generate(context.Background(), Request{Messages: []Message{UserMessage("ping")}})
	assert.EqualError(t, err, "scripted failure")

	// Script drained: back to the mapped response.
	resp, err = m.Generate(context.Background(), Request{Messages: []Message{UserMessage("ping")}})
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Text)

	assert.Equal(t, 3, m.Calls())
	assert.Len(t, m.Requests(), 3)
}

func TestMock_EmptyRequest(t *testing.T) {
	m := NewMock()
	_, err := m.Generate(context.Background(), Request{})
	assert.Error(t, err)
}

func TestMessageConstructors(t *testing.T) {
	assert.Equal(t, Message{Role: RoleSystem, Content: "s"}, SystemMessage("s"))
	assert.Equal(t, Message{Role: RoleUser, Content: "u"}, UserMessage("u"))
	assert.Equal(t, Message{Role: RoleAssistant, Content: "a"}, AssistantMessage("a"))
}
