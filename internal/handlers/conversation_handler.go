package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"synthesistalk-backend/internal/apperr"
	"synthesistalk-backend/internal/auth"
	"synthesistalk-backend/internal/repo"
)

// for simple crud operations a service layer is not required
type ConversationHandler struct {
	convs  repo.ConversationRepoInterface
	logger *zap.Logger
}

func NewConversationHandler(convs repo.ConversationRepoInterface, logger *zap.Logger) *ConversationHandler {
	return &ConversationHandler{convs: convs, logger: logger}
}

// List returns the current user's conversations, newest first.
func (h *ConversationHandler) List(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	convs, err := h.convs.ListByUser(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(convs)
}

func (h *ConversationHandler) Create(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	var dto struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid request body")
	}

	conv, err := h.convs.Create(user.ID, dto.Title)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(conv)
}

// Delete removes a conversation and all of its messages.
func (h *ConversationHandler) Delete(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	convID, err := c.ParamsInt("conversationId")
	if err != nil || convID < 1 {
		return apperr.New(apperr.CodeInvalidArgument, "Invalid conversation ID")
	}

	if err := h.convs.Delete(user.ID, uint(convID)); err != nil {
		return err
	}

	h.logger.Info("conversation deleted",
		zap.Uint("user_id", user.ID),
		zap.Int("conversation_id", convID))
	return c.SendStatus(fiber.StatusNoContent)
}
