// Package workflow orchestrates the chat flow: request validation,
// ownership check, inbound persistence, the upstream completion call and
// outbound persistence.
package workflow

import (
	"context"

	"go.uber.org/zap"

	"synthesistalk-backend/internal/apperr"
	"synthesistalk-backend/internal/llm"
	"synthesistalk-backend/internal/models"
	"synthesistalk-backend/internal/repo"
)

// askTemperature is the fixed sampling temperature for conversation turns.
const askTemperature = 0.5

// IncomingMessage is one client-supplied turn. The body may arrive under
// either "content" or "text".
type IncomingMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Text    string `json:"text"`
}

// Body returns the message text, preferring "content" over "text".
func (m IncomingMessage) Body() string {
	if m.Content != "" {
		return m.Content
	}
	return m.Text
}

type AskRequest struct {
	Messages []IncomingMessage `json:"messages"`
}

type ChatWorkflow struct {
	convs  repo.ConversationRepoInterface
	llm    llm.Completer
	logger *zap.Logger
}

func NewChatWorkflow(convs repo.ConversationRepoInterface, completer llm.Completer, logger *zap.Logger) *ChatWorkflow {
	return &ChatWorkflow{convs: convs, llm: completer, logger: logger}
}

// Ask runs one conversation turn and returns the persisted assistant
// message.
//
// The user's message is persisted before the upstream call and is NOT
// rolled back if that call fails: a failed Ask still leaves the inbound
// message in the conversation. User input is never lost, at the cost of an
// at-least-once write the client must expect.
func (w *ChatWorkflow) Ask(ctx context.Context, userID, conversationID uint, req AskRequest) (*models.ChatMessage, error) {
	// Validating
	if len(req.Messages) == 0 {
		return nil, apperr.New(apperr.CodeInvalidArgument, "Invalid payload: 'messages' must be a non-empty list")
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != string(models.RoleUser) {
		return nil, apperr.New(apperr.CodeInvalidArgument, "Last message must have role='user'")
	}
	userText := last.Body()
	if userText == "" {
		return nil, apperr.New(apperr.CodeInvalidArgument, "User message missing 'content' or 'text' field")
	}

	// Authorizing
	conv, err := w.convs.GetOwned(userID, conversationID)
	if err != nil {
		return nil, err
	}

	// PersistingInbound
	if _, err := w.convs.AppendMessage(conv.ID, models.RoleUser, userText); err != nil {
		return nil, err
	}

	// CallingUpstream: the full client-supplied history is forwarded, not
	// just the last turn.
	history := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Body()})
	}

	reply, err := w.llm.Complete(ctx, history, askTemperature)
	if err != nil {
		w.logger.Warn("completion call failed",
			zap.Uint("conversation_id", conv.ID),
			zap.Error(err))
		return nil, err
	}

	// PersistingOutbound
	botMsg, err := w.convs.AppendMessage(conv.ID, models.RoleAssistant, reply)
	if err != nil {
		return nil, err
	}
	return botMsg, nil
}
