package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"todo_service/internal/models"
	"todo_service/internal/service"
)

func TestWebSocket_PushesTodoSnapshots(t *testing.T) {
	todos := &mockTodos{listResp: []models.Todo{
		{ID: "1", Title: "A", Description: "B", Severity: "low"},
	}}
	srv := httptest.NewServer(newTestRouter(&service.Service{Todos: todos}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?interval=50ms"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v (resp=%v)", err, resp)
	}
	defer func() { _ = conn.Close() }()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// The first snapshot arrives immediately on connect.
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var env struct {
		Type string        `json:"type"`
		Data []models.Todo `json:"data"`
	}
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatalf("payload is not an envelope: %v (%s)", err, payload)
	}
	if env.Type != "todos" {
		t.Fatalf("expected type todos, got %q", env.Type)
	}
	if len(env.Data) != 1 || env.Data[0].ID != "1" {
		t.Fatalf("unexpected snapshot: %+v", env.Data)
	}
}
