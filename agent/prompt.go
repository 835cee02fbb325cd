package agent

import (
	"fmt"

	"github.com/agentpro/agentpro/model"
	"github.com/agentpro/agentpro/tool"
)

// observationPrefix marks transcript entries produced by the loop (tool
// results, dispatch errors, protocol corrections) so the model can tell them
// apart from its own prior turns.
const observationPrefix = "Observation: "

const systemPromptTemplate = `You are a helpful research assistant operating in a ReAct (Reasoning + Acting) loop.
Your goal is to complete the user's task by breaking it down into steps.
At each step, you must first **Reason** about the current situation and the overall goal.
Then, based on your reasoning, you must decide on an **Action**.

Available Actions:
1.  Choose one of the available tools to gather information or process data.
2.  Conclude the task if you have enough information and have fulfilled the user's request.

Available Tools:
%s

Output Format:
You MUST structure your response as a JSON block like this:
` + "```json" + `
{
  "thought": "<Your step-by-step reasoning process here. Explain why you are choosing a specific action.>",
  "action": {
    "tool_name": "<Name of the tool to use (e.g., internet_search_tool) OR 'final_answer'>",
    "argument": "<The argument to pass to the tool, OR the final answer/report if action is 'final_answer'>"
  }
}
` + "```" + `

- If you choose a tool, provide its exact name in ` + "`tool_name`" + ` and the necessary input in ` + "`argument`" + `.
- If you believe the task is complete, set ` + "`tool_name`" + ` to ` + "`final_answer`" + ` and provide the final response in ` + "`argument`" + `.
- Do NOT just provide the final answer directly without the JSON structure.
- Stick to the available tools. Do not invent tools.
Begin!`

// systemPrompt renders the fixed system message for one run: the ReAct
// protocol instructions, the output schema, and the description of every
// registered tool. It is built once per run and never changes afterwards.
func systemPrompt(registry *tool.Registry) string {
	return fmt.Sprintf(systemPromptTemplate, registry.Describe())
}

// taskMessage renders the initial user message carrying the task.
func taskMessage(task string) model.Message {
	return model.UserMessage("The user's task is: " + task)
}

// observation wraps loop-produced text as a prefixed user-role message. This
// is the only mutation path into the transcript besides raw assistant turns.
func observation(text string) model.Message {
	return model.UserMessage(observationPrefix + text)
}
