// file: internals/features/chat/service/chat_service.go
package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// batas atas pemanggilan upstream; selaras dengan WriteTimeout server (45s)
const upstreamTimeout = 30 * time.Second

// maksimal 1 MB body upstream yang di-relay, sisanya dipotong
const maxRelayBody = 1 << 20

// ChatService memproxy pesan user ke service AI eksternal.
// Backend tidak menyimpan riwayat chat; semua state ada di upstream/klien.
type ChatService struct {
	Client  *http.Client
	BaseURL string
}

func NewChatService(baseURL string) *ChatService {
	return &ChatService{
		Client:  &http.Client{Timeout: upstreamTimeout},
		BaseURL: baseURL,
	}
}

// upstreamPayload: kontrak request ke service AI
type upstreamPayload struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// Reply membawa balasan mentah upstream apa adanya (status + body + content type).
// Status non-2xx BUKAN error transport: caller yang memutuskan cara menyajikannya.
type Reply struct {
	Status      int
	Body        []byte
	ContentType string
}

func (r *Reply) Ok() bool {
	return r.Status >= 200 && r.Status < 300
}

// Send mengirim pesan ke service AI. Error hanya untuk kegagalan transport
// (timeout, koneksi ditolak, DNS); respons HTTP apapun dikembalikan sebagai Reply.
func (s *ChatService) Send(ctx context.Context, userID uuid.UUID, message string) (*Reply, error) {
	raw, err := sonic.Marshal(upstreamPayload{
		UserID:  userID.String(),
		Message: message,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRelayBody))
	if err != nil {
		return nil, err
	}

	return &Reply{
		Status:      resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
