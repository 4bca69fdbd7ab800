package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"synthesistalk-backend/internal/apperr"
	"synthesistalk-backend/internal/libraries"
	"synthesistalk-backend/internal/llm"
	"synthesistalk-backend/internal/prompts"
)

const (
	// uploadSnippetLimit caps how much extracted text is sent upstream.
	uploadSnippetLimit = 6000

	summaryTemperature = 0.3
	analyzeTemperature = 0.0

	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// DocumentHandler serves the document-processing endpoints: upload
// summarization, structured summaries, analysis and .docx export.
type DocumentHandler struct {
	llm    llm.Completer
	logger *zap.Logger
}

func NewDocumentHandler(completer llm.Completer, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{llm: completer, logger: logger}
}

// Upload extracts text from the uploaded file and returns a plain summary.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperr.New(apperr.CodeInvalidArgument, "Missing 'file' upload")
	}

	text, err := libraries.ExtractText(fileHeader)
	if err != nil {
		h.logger.Warn("text extraction failed",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
		return apperr.Wrap(apperr.CodeInvalidArgument, "Could not extract text from file", err)
	}

	snippet := text
	if runes := []rune(snippet); len(runes) > uploadSnippetLimit {
		snippet = string(runes[:uploadSnippetLimit])
	}

	summary, err := h.llm.Complete(c.Context(), []llm.Message{
		{Role: "system", Content: prompts.UploadSummary},
		{Role: "user", Content: snippet},
	}, summaryTemperature)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"summary": summary})
}

// Summarize returns a summary of the posted text in the requested format
// ("bullet" or "json").
func (h *DocumentHandler) Summarize(c *fiber.Ctx) error {
	var dto struct {
		Text string `json:"text"`
		Fmt  string `json:"fmt"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid request body")
	}
	if dto.Text == "" || dto.Fmt == "" {
		return apperr.New(apperr.CodeInvalidArgument, "'text' and 'fmt' are required")
	}

	summary, err := h.llm.Complete(c.Context(), []llm.Message{
		{Role: "system", Content: prompts.StructuredSummary(dto.Text, dto.Fmt)},
	}, summaryTemperature)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"summary": summary})
}

// Analyze extracts {metric, value} findings from the posted text. When the
// model's reply is not valid JSON the raw content is returned alongside an
// empty data array.
func (h *DocumentHandler) Analyze(c *fiber.Ctx) error {
	var dto struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid request body")
	}
	if dto.Text == "" {
		return apperr.New(apperr.CodeInvalidArgument, "'text' is required")
	}

	content, err := h.llm.Complete(c.Context(), []llm.Message{
		{Role: "system", Content: prompts.Analyze(dto.Text)},
	}, analyzeTemperature)
	if err != nil {
		return err
	}
	content = strings.TrimSpace(content)

	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return c.JSON(fiber.Map{"data": []any{}, "raw": content})
	}
	return c.JSON(fiber.Map{"data": parsed})
}

// Export streams a .docx report built from the posted summaries.
func (h *DocumentHandler) Export(c *fiber.Ctx) error {
	var dto struct {
		Summary    string `json:"summary"`
		Structured string `json:"structured"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid request body")
	}
	if dto.Summary == "" {
		return apperr.New(apperr.CodeInvalidArgument, "'summary' is required")
	}

	c.Set(fiber.HeaderContentType, docxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="report.docx"`)
	return libraries.BuildReport(c.Response().BodyWriter(), dto.Summary, dto.Structured)
}
