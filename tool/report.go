package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/agentpro/agentpro/model"
)

const reportSystemPrompt = "You are a helpful assistant specialized in writing concise and informative reports. " +
	"Based on the provided text, generate a well-structured report. " +
	"Focus on clarity, key findings, and a professional tone. " +
	"Use markdown for formatting if appropriate (e.g., headings, bullet points)."

// ReportWriter turns raw findings (search results, notes, excerpts) into a
// structured report using a reasoning model of its own. The agent loop never
// sees that model; from the outside ReportWriter is just another Tool.
type ReportWriter struct {
	llm model.Model
}

// NewReportWriter constructs the report tool. The model must be non-nil.
func NewReportWriter(llm model.Model) (*ReportWriter, error) {
	if llm == nil {
		return nil, fmt.Errorf("report writer requires a model")
	}
	return &ReportWriter{llm: llm}, nil
}

// Name implements Tool.
func (r *ReportWriter) Name() string { return "report_writing_tool" }

// Description implements Tool.
func (r *ReportWriter) Description() string {
	return "takes input text (e.g., research findings, search results) and writes a concise, well-structured report based on it. " +
		"useful for summarizing information or drafting documents."
}

// ArgumentHint implements Tool.
func (r *ReportWriter) ArgumentHint() string {
	return "the text content that needs to be summarized and formatted into a report."
}

// Execute implements Tool.
func (r *ReportWriter) Execute(ctx context.Context, argument string) (string, error) {
	if strings.TrimSpace(argument) == "" {
		return "", NewError(r.Name(), "input text for the report is empty", "EMPTY_ARGUMENT")
	}

	resp, err := r.llm.Generate(ctx, model.Request{
		Messages: []model.Message{
			model.SystemMessage(reportSystemPrompt),
			model.UserMessage(fmt.Sprintf(
				"Please generate a report based on the following text:\n\n---\n%s\n---", argument)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("report generation failed: %w", err)
	}
	return resp.Text, nil
}
