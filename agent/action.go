package agent

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// FinalAnswer is the reserved action identifier signaling task completion.
// When the model selects it, the action argument is the final result.
const FinalAnswer = "final_answer"

// ErrInvalidAction reports that no structured action could be recovered from
// a model response. It is a recoverable protocol violation, not a task
// failure: the loop answers it with a corrective observation and continues.
var ErrInvalidAction = errors.New("agent: response contains no valid action")

// Action is the structured decision recovered from one reasoning step.
//
// Thought is informational only and never executed. ToolName is either a
// registered tool identifier or FinalAnswer. Argument is always a string,
// possibly empty; individual tools decide whether an empty argument is an
// error.
type Action struct {
	Thought  string
	ToolName string
	Argument string
}

// fencedJSON matches a fenced block labeled json (label match is
// case-insensitive, fences tolerate surrounding whitespace).
var fencedJSON = regexp.MustCompile("(?is)```json\\s*(.*?)\\s*```")

// ParseAction recovers a structured action from raw model output.
//
// It is a pure function over text with an ordered fallback, first success
// wins:
//  1. Parse the entire text as the schema object.
//  2. Parse the content of a ```json fenced block.
//
// Either stage succeeds only if the object contains a nested action object
// with a tool_name field; valid JSON without it is still a failure. The
// argument field may be missing or non-string; it is coerced to a string so
// downstream consumers never see anything else.
func ParseAction(raw string) (Action, error) {
	if act, ok := parseSchema(raw); ok {
		return act, nil
	}
	for _, match := range fencedJSON.FindAllStringSubmatch(raw, -1) {
		if act, ok := parseSchema(match[1]); ok {
			return act, nil
		}
	}
	return Action{}, fmt.Errorf("%w: %s", ErrInvalidAction, describeParseFailure(raw))
}

// parseSchema attempts to read one candidate text as the schema object.
func parseSchema(text string) (Action, bool) {
	text = strings.TrimSpace(text)
	if !gjson.Valid(text) {
		return Action{}, false
	}
	toolName := gjson.Get(text, "action.tool_name")
	if !toolName.Exists() || strings.TrimSpace(toolName.String()) == "" {
		return Action{}, false
	}

	thought := gjson.Get(text, "thought").String()
	if thought == "" {
		thought = "No thought provided."
	}

	return Action{
		Thought:  thought,
		ToolName: strings.TrimSpace(toolName.String()),
		// gjson coerces numbers and booleans; a missing field yields "".
		Argument: gjson.Get(text, "action.argument").String(),
	}, true
}

// describeParseFailure distinguishes the two failure shapes for diagnostics.
func describeParseFailure(raw string) string {
	if gjson.Valid(strings.TrimSpace(raw)) {
		return "missing action.tool_name"
	}
	return "no parseable JSON object"
}
