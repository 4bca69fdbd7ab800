package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"synthesistalk-backend/internal/auth"
	"synthesistalk-backend/internal/handlers"
	"synthesistalk-backend/internal/libraries"
	"synthesistalk-backend/internal/llm"
	"synthesistalk-backend/internal/repo"
	"synthesistalk-backend/internal/workflow"
)

// Deps carries the wired components route registration needs. Everything is
// constructed once in main and injected.
type Deps struct {
	Users     repo.UserRepoInterface
	Convs     repo.ConversationRepoInterface
	Tokens    *auth.TokenIssuer
	Completer llm.Completer
	Search    *libraries.SearchClient
	Logger    *zap.Logger
}

func Register(app *fiber.App, d Deps) {
	authHandler := handlers.NewAuthHandler(d.Users, d.Tokens, d.Logger)
	convHandler := handlers.NewConversationHandler(d.Convs, d.Logger)
	chatWorkflow := workflow.NewChatWorkflow(d.Convs, d.Completer, d.Logger)
	chatHandler := handlers.NewChatHandler(d.Convs, chatWorkflow)
	docHandler := handlers.NewDocumentHandler(d.Completer, d.Logger)
	searchHandler := handlers.NewSearchHandler(d.Search)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Backend is running"})
	})

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	protected := auth.RequireUser(d.Tokens, d.Users)

	convGroup := app.Group("/conversations", protected)
	convGroup.Get("/", convHandler.List)
	convGroup.Post("/", convHandler.Create)
	convGroup.Delete("/:conversationId", convHandler.Delete)

	chatGroup := app.Group("/chat", protected)
	chatGroup.Get("/:conversationId", chatHandler.GetHistory)
	chatGroup.Post("/:conversationId/ask", chatHandler.Ask)

	// Document-processing endpoints, unauthenticated
	app.Post("/upload", docHandler.Upload)
	app.Get("/search", searchHandler.Search)
	app.Post("/summarize", docHandler.Summarize)
	app.Post("/analyze", docHandler.Analyze)
	app.Post("/export", docHandler.Export)
}
