package voice

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/websocket"

	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/registry"
	"github.com/faisalchaudhry-debug/HSM-dermatology/internal/voice/live"
	"github.com/faisalchaudhry-debug/HSM-dermatology/pkg/logging"
)

func dialWidget(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, err := websocket.Dial(url, "", srv.URL)
	if err != nil {
		t.Fatalf("dial widget socket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func receiveType(t *testing.T, conn *websocket.Conn, msgType string) OutboundMessage {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		conn.SetReadDeadline(deadline)
		var msg OutboundMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			t.Fatalf("waiting for %q: %v", msgType, err)
		}
		if msg.Type == msgType {
			return msg
		}
	}
}

func newVoiceTestServer(t *testing.T, up *fakeUpstream) *httptest.Server {
	t.Helper()
	h := NewHandler(HandlerConfig{
		Registry: registry.New(""),
		Leads:    &fakeLeads{},
		Model:    "gemini-2.5-flash-native-audio-preview-09-2025",
		Dial:     func(context.Context) (Upstream, error) { return up, nil },
		Logger:   logging.NewWithWriter("error", io.Discard),
	})
	r := chi.NewRouter()
	r.Get("/{location}/voice", h.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandlerStartAndReady(t *testing.T) {
	up := newFakeUpstream()
	srv := newVoiceTestServer(t, up)
	conn := dialWidget(t, srv, "/london/voice")

	if err := websocket.JSON.Send(conn, InboundMessage{Type: "start", Mode: "verruca"}); err != nil {
		t.Fatalf("send start: %v", err)
	}

	// Wait for the session's setup message, then complete the handshake.
	deadline := time.After(2 * time.Second)
	for len(up.sentMessages()) == 0 {
		select {
		case <-deadline:
			t.Fatal("setup never sent upstream")
		case <-time.After(5 * time.Millisecond):
		}
	}
	setup := up.sentMessages()[0].Setup
	if setup == nil {
		t.Fatal("first upstream message must be setup")
	}
	if !strings.Contains(setup.SystemInstruction.Parts[0].Text, "verruca concern") {
		t.Error("setup instruction does not match requested mode")
	}
	if !strings.Contains(setup.SystemInstruction.Parts[0].Text, "London") {
		t.Error("setup instruction missing city")
	}

	up.incoming <- &live.ServerMessage{SetupComplete: &live.SetupComplete{}}
	receiveType(t, conn, "ready")
}

func TestHandlerPingPong(t *testing.T) {
	srv := newVoiceTestServer(t, newFakeUpstream())
	conn := dialWidget(t, srv, "/london/voice")

	websocket.JSON.Send(conn, InboundMessage{Type: "ping"})
	receiveType(t, conn, "pong")
}

func TestHandlerUnknownLocation(t *testing.T) {
	srv := newVoiceTestServer(t, newFakeUpstream())
	conn := dialWidget(t, srv, "/manchester/voice")

	msg := receiveType(t, conn, "error")
	if msg.Message != "unknown location" {
		t.Errorf("message = %q", msg.Message)
	}
}
