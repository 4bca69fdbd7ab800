package handlers

import (
	"github.com/gofiber/fiber/v2"

	"synthesistalk-backend/internal/apperr"
	"synthesistalk-backend/internal/auth"
	"synthesistalk-backend/internal/repo"
	"synthesistalk-backend/internal/workflow"
)

type ChatHandler struct {
	convs repo.ConversationRepoInterface
	chat  *workflow.ChatWorkflow
}

func NewChatHandler(convs repo.ConversationRepoInterface, chat *workflow.ChatWorkflow) *ChatHandler {
	return &ChatHandler{convs: convs, chat: chat}
}

// GetHistory returns all messages of an owned conversation, oldest first.
func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	convID, err := c.ParamsInt("conversationId")
	if err != nil || convID < 1 {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid conversation ID")
	}

	conv, err := h.convs.GetOwned(user.ID, uint(convID))
	if err != nil {
		return err
	}

	msgs, err := h.convs.ListMessages(conv.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"messages": msgs})
}

// Ask runs one chat turn through the workflow and returns the persisted
// assistant message.
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	convID, err := c.ParamsInt("conversationId")
	if err != nil || convID < 1 {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid conversation ID")
	}

	var req workflow.AskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid payload: 'messages' must be a list")
	}

	msg, err := h.chat.Ask(c.Context(), user.ID, uint(convID), req)
	if err != nil {
		return err
	}
	return c.JSON(msg)
}
