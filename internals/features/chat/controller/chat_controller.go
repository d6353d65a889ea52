// file: internals/features/chat/controller/chat_controller.go
package controller

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "kuliahku_backend/internals/features/chat/dto"
	service "kuliahku_backend/internals/features/chat/service"
	helper "kuliahku_backend/internals/helpers"
)

type ChatController struct {
	Service   *service.ChatService
	Validator *validator.Validate
}

func NewChatController(svc *service.ChatService, v *validator.Validate) *ChatController {
	if v == nil {
		v = validator.New()
	}
	return &ChatController{Service: svc, Validator: v}
}

/* ============================================
   SEND
   POST /chat/send
============================================ */

func (ctl *ChatController) Send(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p dto.ChatRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	p.Normalize()
	if err := ctl.Validator.Struct(&p); err != nil {
		return helper.ValidationError(c, err)
	}

	// jangan pakai user context request (guard 5s); proxy AI boleh sampai 30s
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reply, err := ctl.Service.Send(ctx, userID, p.Message)
	if err != nil {
		log.Printf("❌ Chat upstream tidak terjangkau: %v", err)
		return helper.JsonUpstreamError(c, "Layanan AI sedang tidak dapat dihubungi", nil)
	}

	if !reply.Ok() {
		log.Printf("⚠️ Chat upstream balas status %d", reply.Status)
		return helper.JsonUpstreamError(c, "Layanan AI mengembalikan error", &helper.UpstreamError{
			Status: reply.Status,
			Body:   string(reply.Body),
		})
	}

	// relay body upstream apa adanya (UI merender balasan mentah)
	ct := reply.ContentType
	if ct == "" {
		ct = fiber.MIMEApplicationJSON
	}
	c.Set(fiber.HeaderContentType, ct)
	return c.Status(reply.Status).Send(reply.Body)
}
