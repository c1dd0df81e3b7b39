package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return New(nil, Options{Width: 120, Height: 90})
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	_, err := uuid.Parse(rec.Header().Get(SessionHeader))
	assert.NoError(t, err)
}

func TestSessionHeaderIsEchoed(t *testing.T) {
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(SessionHeader, id)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(SessionHeader))
}

func TestCatalog(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Colors            []map[string]any `json:"colors"`
		Glazing           []map[string]any `json:"glazing"`
		OpeningDirections []map[string]any `json:"openingDirections"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Colors)
	assert.Len(t, body.Glazing, 4)
	assert.Len(t, body.OpeningDirections, 6)
}

func TestSceneSummary(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/scene",
		`{"windowType":"double-leaf","width":1200,"height":1400}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Session string `json:"session"`
		Variant string `json:"variant"`
		Scene   struct {
			Counts map[string]int `json:"counts"`
			Leaves []struct {
				Role string `json:"role"`
			} `json:"leaves"`
		} `json:"scene"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, rec.Header().Get(SessionHeader), body.Session)
	assert.Equal(t, "window/double-leaf", body.Variant)
	assert.Equal(t, 2, body.Scene.Counts["sash"])
	assert.Equal(t, 2, body.Scene.Counts["glass"])
	assert.Len(t, body.Scene.Leaves, 2)
}

func TestSceneRejectsInvalidConfiguration(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodPost, "/scene", `{"width":0}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"width"`)

	rec = do(t, s, http.MethodPost, "/scene", `{"baseColor":"tartan"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"base_color"`)

	rec = do(t, s, http.MethodPost, "/scene", `{"width":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewPNG(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/preview.png?width=64&height=48&open=true&view=back", `{}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestPreviewRejectsBadQuery(t *testing.T) {
	s := newTestServer()
	for _, q := range []string{"width=-1", "height=99999", "open=maybe", "view=top", "yaw=left", "pitch=NaN", "yaw=Inf", "pitch=-Infinity"} {
		rec := do(t, s, http.MethodPost, "/preview.png?"+q, `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	s := New(nil, Options{Address: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(t.Context())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
