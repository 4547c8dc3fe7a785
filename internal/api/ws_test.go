package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/v1/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) wsFrame {
	t.Helper()
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var frame wsFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatalf("decode frame: %v\ndata: %s", err, data)
	}
	return frame
}

func writeFrame(t *testing.T, ctx context.Context, conn *websocket.Conn, req wsRequest) {
	t.Helper()
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal frame: %v", err)
	}
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestWebSocketPingAndAnalyze(t *testing.T) {
	srv, _ := newTestServer(t, stubVectorizer{vec: flowVector})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	defer conn.CloseNow()

	welcome := readFrame(t, ctx, conn)
	if welcome.Type != "connection" {
		t.Fatalf("first frame type = %q, want connection", welcome.Type)
	}

	writeFrame(t, ctx, conn, wsRequest{Type: "ping"})
	if pong := readFrame(t, ctx, conn); pong.Type != "pong" {
		t.Errorf("frame type = %q, want pong", pong.Type)
	}

	writeFrame(t, ctx, conn, wsRequest{Type: "analyze", Description: "in the zone", UserID: "u1"})
	result := readFrame(t, ctx, conn)
	if result.Type != "analysis_result" {
		t.Fatalf("frame type = %q, want analysis_result", result.Type)
	}
	if result.UserID != "u1" {
		t.Errorf("user_id = %q, want u1", result.UserID)
	}
	if result.Analysis == nil || result.Analysis.Phase != models.PhaseTranscendence {
		t.Errorf("analysis = %+v", result.Analysis)
	}

	conn.Close(websocket.StatusNormalClosure, "done")
}

func TestWebSocketRejectsUnknownType(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	defer conn.CloseNow()

	readFrame(t, ctx, conn) // welcome

	writeFrame(t, ctx, conn, wsRequest{Type: "levitate"})
	if frame := readFrame(t, ctx, conn); frame.Type != "error" {
		t.Errorf("frame type = %q, want error", frame.Type)
	}

	if err := conn.Write(ctx, websocket.MessageText, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if frame := readFrame(t, ctx, conn); frame.Type != "error" {
		t.Errorf("frame type = %q, want error", frame.Type)
	}
}

func TestWebSocketReceivesBroadcast(t *testing.T) {
	srv, _ := newTestServer(t, stubVectorizer{vec: flowVector})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	defer conn.CloseNow()

	readFrame(t, ctx, conn) // welcome

	body := strings.NewReader(`{"text": "deep focus", "user_id": "u1"}`)
	resp, err := http.Post(ts.URL+"/api/v1/analyze", "application/json", body)
	if err != nil {
		t.Fatalf("analyze request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("analyze status = %d, want 200", resp.StatusCode)
	}

	frame := readFrame(t, ctx, conn)
	if frame.Type != "new_analysis" {
		t.Fatalf("frame type = %q, want new_analysis", frame.Type)
	}
	if frame.UserID != "u1" {
		t.Errorf("user_id = %q, want u1", frame.UserID)
	}
	if frame.Data == nil || frame.Data.WellbeingScore != 0.85 {
		t.Errorf("data = %+v", frame.Data)
	}
}
