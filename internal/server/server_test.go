package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/muurk/findar/internal/config"
	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/urls"
)

func loadContent(t *testing.T) *content.Content {
	t.Helper()
	doc, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load() error = %v", err)
	}
	return doc
}

// sevenFeatures returns a copy of the default content with a seventh feature.
func sevenFeatures(t *testing.T) *content.Content {
	t.Helper()
	base := loadContent(t)
	doc := *base
	doc.Features.Items = append(append([]content.FeatureRecord{}, base.Features.Items...), content.FeatureRecord{
		Title:       "Neighbourhood Insights",
		Description: "Schools, transit and amenities around every listing.",
		Icon:        content.IconHome,
		Theme:       content.ThemeBlueCyan,
	})
	return &doc
}

func newTestServer(t *testing.T, doc *content.Content) (*Server, *httptest.Server) {
	t.Helper()
	srv, err := New(config.Default(), doc)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func get(t *testing.T, url string, header http.Header) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body error = %v", err)
	}
	return resp, string(body)
}

func TestNew_EmptyCatalog(t *testing.T) {
	doc := *loadContent(t)
	doc.Features.Items = nil

	if _, err := New(config.Default(), &doc); err == nil {
		t.Error("New() with empty catalog should fail")
	}
}

func TestHome(t *testing.T) {
	_, ts := newTestServer(t, loadContent(t))

	tests := []struct {
		name       string
		query      string
		wantActive string
		wantMenu   bool
	}{
		{"default", "", `data-active="0"`, false},
		{"feature selected", "?feature=3", `data-active="3"`, false},
		{"feature clamped high", "?feature=99", `data-active="5"`, false},
		{"feature clamped low", "?feature=-4", `data-active="0"`, false},
		{"feature malformed", "?feature=abc", `data-active="0"`, false},
		{"menu open", "?menu=open&feature=2", `data-active="2"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+"/"+tt.query, nil)

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q, want text/html", ct)
			}
			if !strings.Contains(body, tt.wantActive) {
				t.Errorf("body missing %s", tt.wantActive)
			}
			if got := strings.Contains(body, `id="mobile-menu"`); got != tt.wantMenu {
				t.Errorf("mobile menu rendered = %v, want %v", got, tt.wantMenu)
			}
		})
	}
}

func TestFeaturePage(t *testing.T) {
	doc := loadContent(t)
	_, ts := newTestServer(t, doc)

	tests := []struct {
		path       string
		wantStatus int
		wantTitle  string
	}{
		{"/features/0", http.StatusOK, doc.Features.Items[0].Title},
		{"/features/4", http.StatusOK, doc.Features.Items[4].Title},
		{"/features/6", http.StatusNotFound, ""},
		{"/features/-1", http.StatusNotFound, ""},
		{"/features/two", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path, nil)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if tt.wantTitle != "" && !strings.Contains(body, tt.wantTitle) {
				t.Errorf("body missing title %q", tt.wantTitle)
			}
		})
	}
}

func TestAPIFeatures(t *testing.T) {
	doc := loadContent(t)
	_, ts := newTestServer(t, doc)

	resp, body := get(t, ts.URL+urls.APIFeatures, http.Header{"Origin": {"https://partner.example"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}

	var list featureList
	if err := json.Unmarshal([]byte(body), &list); err != nil {
		t.Fatalf("decode error = %v", err)
	}
	if list.Count != len(doc.Features.Items) || len(list.Features) != list.Count {
		t.Errorf("count = %d, features = %d, want %d", list.Count, len(list.Features), len(doc.Features.Items))
	}
	if list.Features[0].Title != doc.Features.Items[0].Title {
		t.Errorf("first title = %q, want %q", list.Features[0].Title, doc.Features.Items[0].Title)
	}

	// Every permalink resolves to a page focused on that feature.
	for i, f := range list.Features {
		if f.Index != i || f.Permalink != urls.FeaturePath(i) {
			t.Errorf("features[%d] index = %d, permalink = %q", i, f.Index, f.Permalink)
			continue
		}
		resp, page := get(t, ts.URL+f.Permalink, nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", f.Permalink, resp.StatusCode)
		}
		if want := fmt.Sprintf(`data-active="%d"`, i); !strings.Contains(page, want) {
			t.Errorf("GET %s missing %s", f.Permalink, want)
		}
	}
}

func TestAPICarousel(t *testing.T) {
	doc := loadContent(t)
	_, ts := newTestServer(t, doc)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantIndex  int
	}{
		{"advance from start", "action=advance", http.StatusOK, 1},
		{"advance wraps", "feature=5&action=advance", http.StatusOK, 0},
		{"retreat wraps", "feature=0&action=retreat", http.StatusOK, 5},
		{"next alias", "feature=2&action=next", http.StatusOK, 3},
		{"select", "feature=1&action=select&to=3", http.StatusOK, 3},
		{"clamped start", "feature=40&action=retreat", http.StatusOK, 4},
		{"select out of range", "action=select&to=9", http.StatusUnprocessableEntity, 0},
		{"select without target", "action=select", http.StatusBadRequest, 0},
		{"unknown action", "action=spin", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+urls.APICarousel+"?"+tt.query, nil)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", resp.StatusCode, tt.wantStatus, body)
			}
			if tt.wantStatus != http.StatusOK {
				var e errorMessage
				if err := json.Unmarshal([]byte(body), &e); err != nil || e.Error == "" {
					t.Errorf("expected error body, got %s", body)
				}
				return
			}

			var state carouselState
			if err := json.Unmarshal([]byte(body), &state); err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if state.ActiveIndex != tt.wantIndex {
				t.Errorf("active_index = %d, want %d", state.ActiveIndex, tt.wantIndex)
			}
			if state.Title != doc.Features.Items[tt.wantIndex].Title {
				t.Errorf("title = %q, want %q", state.Title, doc.Features.Items[tt.wantIndex].Title)
			}
			if len(state.Indicators) != len(doc.Features.Items) || !state.Indicators[tt.wantIndex] {
				t.Errorf("indicators = %v, want only %d highlighted", state.Indicators, tt.wantIndex)
			}
			if !strings.Contains(state.HTML, `id="carousel"`) {
				t.Error("html should contain the carousel panel")
			}
		})
	}
}

func TestStaticAndHealth(t *testing.T) {
	_, ts := newTestServer(t, loadContent(t))

	resp, body := get(t, ts.URL+urls.CarouselJS, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("script status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/javascript") {
		t.Errorf("script Content-Type = %q", ct)
	}
	if !strings.Contains(body, "WebSocket") {
		t.Error("script body should open a websocket")
	}

	resp, body = get(t, ts.URL+urls.Health, nil)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"ok"`) {
		t.Errorf("healthz = %d %s", resp.StatusCode, body)
	}
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + urls.CarouselSock
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// reply is the union of the two server message shapes.
type reply struct {
	carouselState
	Error string `json:"error"`
}

func selectMsg(i int) clientMessage {
	return clientMessage{Action: "select", Index: &i}
}

func send(t *testing.T, conn *websocket.Conn, msg clientMessage) reply {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var r reply
	if err := conn.ReadJSON(&r); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	return r
}

func TestCarouselSocket_SevenFeatureWalk(t *testing.T) {
	doc := sevenFeatures(t)
	_, ts := newTestServer(t, doc)
	conn := dial(t, ts)

	r := send(t, conn, clientMessage{Action: "advance"})
	if r.ActiveIndex != 1 {
		t.Fatalf("after first advance active_index = %d, want 1", r.ActiveIndex)
	}
	for i := 0; i < 6; i++ {
		r = send(t, conn, clientMessage{Action: "advance"})
	}
	if r.ActiveIndex != 0 {
		t.Fatalf("after seven advances active_index = %d, want 0", r.ActiveIndex)
	}

	r = send(t, conn, clientMessage{Action: "retreat"})
	if r.ActiveIndex != 6 {
		t.Fatalf("after retreat active_index = %d, want 6", r.ActiveIndex)
	}

	r = send(t, conn, selectMsg(3))
	if r.ActiveIndex != 3 {
		t.Fatalf("after select(3) active_index = %d, want 3", r.ActiveIndex)
	}
	if r.Title != doc.Features.Items[3].Title {
		t.Errorf("title = %q, want %q", r.Title, doc.Features.Items[3].Title)
	}

	highlighted := 0
	for i, on := range r.Indicators {
		if on {
			highlighted++
			if i != 3 {
				t.Errorf("indicator %d highlighted, want 3", i)
			}
		}
	}
	if highlighted != 1 {
		t.Errorf("%d indicators highlighted, want exactly 1", highlighted)
	}
	if !strings.Contains(r.HTML, `data-active="3"`) {
		t.Error("html should reflect the active index")
	}
}

func TestCarouselSocket_RejectsInvalidInput(t *testing.T) {
	_, ts := newTestServer(t, loadContent(t))
	conn := dial(t, ts)

	send(t, conn, selectMsg(2))

	tests := []struct {
		name string
		msg  any
	}{
		{"select out of range", selectMsg(6)},
		{"negative select", selectMsg(-1)},
		{"select without index", clientMessage{Action: "select"}},
		{"select with null index", json.RawMessage(`{"action":"select","index":null}`)},
		{"unknown action", clientMessage{Action: "spin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := conn.WriteJSON(tt.msg); err != nil {
				t.Fatalf("WriteJSON() error = %v", err)
			}
			var r reply
			if err := conn.ReadJSON(&r); err != nil {
				t.Fatalf("ReadJSON() error = %v", err)
			}
			if r.Error == "" {
				t.Errorf("expected error reply, got %+v", r)
			}
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
			t.Fatalf("WriteMessage() error = %v", err)
		}
		var r reply
		if err := conn.ReadJSON(&r); err != nil {
			t.Fatalf("ReadJSON() error = %v", err)
		}
		if r.Error != "invalid message format" {
			t.Errorf("error = %q, want invalid message format", r.Error)
		}
	})

	// State survived every rejected input.
	r := send(t, conn, clientMessage{Action: "advance"})
	if r.ActiveIndex != 3 {
		t.Errorf("after rejected inputs and advance active_index = %d, want 3", r.ActiveIndex)
	}
}

func TestCarouselSocket_IndependentConnections(t *testing.T) {
	_, ts := newTestServer(t, loadContent(t))
	a := dial(t, ts)
	b := dial(t, ts)

	send(t, a, selectMsg(4))
	if r := send(t, b, clientMessage{Action: "advance"}); r.ActiveIndex != 1 {
		t.Errorf("second connection active_index = %d, want 1", r.ActiveIndex)
	}
	if r := send(t, a, clientMessage{Action: "advance"}); r.ActiveIndex != 5 {
		t.Errorf("first connection active_index = %d, want 5", r.ActiveIndex)
	}
}

func TestCheckOrigin(t *testing.T) {
	cfg := config.Default()
	cfg.AllowedOrigins = []string{"https://findar.app"}
	srv, err := New(cfg, loadContent(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:8080", true},
		{"https://findar.app", true},
		{"https://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "http://localhost:8080/ws/carousel", nil)
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			if got := srv.checkOrigin(r); got != tt.want {
				t.Errorf("checkOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestShutdown_ClosesLiveConnections(t *testing.T) {
	srv, err := New(config.Default(), loadContent(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(listener) }()

	wsURL := "ws://" + listener.Addr().String() + urls.CarouselSock
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	// A round trip guarantees the handler has registered the connection.
	send(t, conn, clientMessage{Action: "advance"})
	if got := srv.GetActiveConnections(); got != 1 {
		t.Fatalf("GetActiveConnections() = %d, want 1", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("ReadMessage() after shutdown should fail")
	}
	if got := srv.GetActiveConnections(); got != 0 {
		t.Errorf("GetActiveConnections() after shutdown = %d, want 0", got)
	}
	if err := <-serveErr; err != nil {
		t.Errorf("Serve() error = %v", err)
	}
}

func TestCarouselSocket_RefusedAfterShutdown(t *testing.T) {
	srv, ts := newTestServer(t, loadContent(t))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	conn := dial(t, ts)
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("ReadMessage() error = %v, want going-away close", err)
	}
	if got := srv.GetActiveConnections(); got != 0 {
		t.Errorf("GetActiveConnections() = %d, want 0", got)
	}
}
