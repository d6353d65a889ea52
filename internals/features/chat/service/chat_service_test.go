package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestChatService_SendMeneruskanPayloadDanBalasan(t *testing.T) {
	var got upstreamPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"Halo! Ada yang bisa dibantu?"}`))
	}))
	defer srv.Close()

	userID := uuid.New()
	svc := NewChatService(srv.URL)
	reply, err := svc.Send(context.Background(), userID, "Halo")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got.UserID != userID.String() {
		t.Errorf("user_id terkirim = %q, want %q", got.UserID, userID)
	}
	if got.Message != "Halo" {
		t.Errorf("message terkirim = %q", got.Message)
	}
	if !reply.Ok() {
		t.Errorf("status %d harus dianggap ok", reply.Status)
	}
	if string(reply.Body) != `{"reply":"Halo! Ada yang bisa dibantu?"}` {
		t.Errorf("body tidak di-relay apa adanya: %s", reply.Body)
	}
	if reply.ContentType != "application/json" {
		t.Errorf("content-type = %q", reply.ContentType)
	}
}

func TestChatService_StatusNon2xxBukanErrorTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewChatService(srv.URL)
	reply, err := svc.Send(context.Background(), uuid.New(), "Halo")
	if err != nil {
		t.Fatalf("status 503 harus dikembalikan sebagai Reply, bukan error: %v", err)
	}
	if reply.Ok() {
		t.Error("503 tidak boleh dianggap ok")
	}
	if reply.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", reply.Status)
	}
	if string(reply.Body) != "model overloaded\n" {
		t.Errorf("body = %q", reply.Body)
	}
}

func TestChatService_TimeoutJadiErrorTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	svc := NewChatService(srv.URL)
	svc.Client.Timeout = 50 * time.Millisecond

	if _, err := svc.Send(context.Background(), uuid.New(), "Halo"); err == nil {
		t.Fatal("timeout upstream harus menghasilkan error transport")
	}
}

func TestChatService_KoneksiDitolakJadiErrorTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // port sudah tidak listen

	svc := NewChatService(url)
	if _, err := svc.Send(context.Background(), uuid.New(), "Halo"); err == nil {
		t.Fatal("koneksi ditolak harus menghasilkan error transport")
	}
}
