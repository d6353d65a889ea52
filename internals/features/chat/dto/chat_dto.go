// file: internals/features/chat/dto/chat_dto.go
package dto

import "strings"

// ChatRequest: satu pesan user untuk asisten AI.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

func (r *ChatRequest) Normalize() {
	r.Message = strings.TrimSpace(r.Message)
}
