// Package prompts holds the fixed system prompts sent to the completion
// provider by the document endpoints.
package prompts

import "fmt"

// UploadSummary is the system prompt for summarizing uploaded documents.
const UploadSummary = "You are an expert research assistant. Summarize this text."

// StructuredSummary builds the prompt for /summarize, asking for the given
// output format ("bullet" or "json").
func StructuredSummary(text, format string) string {
	return fmt.Sprintf(
		"You are a research assistant. Please summarize the following text in *%s* format:\n\n%s",
		format, text,
	)
}

// Analyze builds the prompt for /analyze, demanding a raw JSON array of
// {metric, value} findings.
func Analyze(text string) string {
	return "You are a data extractor. " +
		"Extract key findings from the text below and output a JSON array ONLY. " +
		"Each entry should be an object with two keys: metric and value. " +
		"Do NOT include any explanatory text or Markdown—only raw JSON.\n\n" + text
}
