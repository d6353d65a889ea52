// file: internals/features/chat/route/chat_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kuliahku_backend/internals/configs"
	chatController "kuliahku_backend/internals/features/chat/controller"
	chatService "kuliahku_backend/internals/features/chat/service"
	middlewares "kuliahku_backend/internals/middlewares"
	authMiddleware "kuliahku_backend/internals/middlewares/auth"
)

// ChatRoutes mendaftarkan endpoint proxy asisten AI.
// Dibatasi rate limiter khusus karena tiap request memanggil upstream berbayar.
func ChatRoutes(app *fiber.App, db *gorm.DB) {
	ctl := chatController.NewChatController(
		chatService.NewChatService(configs.AIServiceURL),
		nil,
	)

	chat := app.Group("/chat",
		authMiddleware.AuthMiddleware(db),
		middlewares.ChatRateLimiter(),
	)
	chat.Post("/send", ctl.Send)
}
