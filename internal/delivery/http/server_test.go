package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/w3w-geocoder/internal/config"
	"github.com/w3w-geocoder/internal/delivery/http/handler"
	"github.com/w3w-geocoder/internal/delivery/http/middleware"
	"github.com/w3w-geocoder/internal/infrastructure/what3words"
	"github.com/w3w-geocoder/internal/usecase"
)

// stubAPI answers like the what3words v3 and v2 endpoints.
type stubAPI struct {
	calls atomic.Int32
}

func (s *stubAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.calls.Add(1)
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query()

	switch r.URL.Path {
	case "/v3/convert-to-coordinates":
		if q.Get("words") != "filled.count.soap" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":{"code":"BadWords","message":"words must be a valid 3 word address"}}`)
			return
		}
		_, _ = io.WriteString(w, `{"country":"GB","nearestPlace":"Bayswater, London","words":"filled.count.soap",
			"coordinates":{"lat":51.520847,"lng":-0.195521},"language":"en"}`)
	case "/v3/convert-to-3wa":
		if q.Get("format") == "geojson" {
			_, _ = io.WriteString(w, `{"type":"FeatureCollection","features":[]}`)
			return
		}
		_, _ = io.WriteString(w, `{"words":"index.home.raft","language":"`+q.Get("language")+`"}`)
	case "/v3/autosuggest":
		_, _ = io.WriteString(w, `{"suggestions":[{"words":"filled.count.soap","rank":1,"country":"GB"}]}`)
	case "/v3/grid-section":
		_, _ = io.WriteString(w, `{"lines":[{"start":{"lat":52.2,"lng":0.11},"end":{"lat":52.21,"lng":0.11}}]}`)
	case "/v3/available-languages":
		_, _ = io.WriteString(w, `{"languages":[{"code":"en","name":"English","nativeName":"English"}]}`)
	case "/v2/autosuggest", "/v2/autosuggest-ml":
		_, _ = io.WriteString(w, `{"suggestions":[],"clip":"`+q.Get("clip")+`","lang":"`+q.Get("lang")+`"}`)
	case "/v2/standardblend-ml":
		_, _ = io.WriteString(w, `{"blends":[{"words":"`+q.Get("addr")+`"}]}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"code":"NotFound","message":"no such endpoint"}}`)
	}
}

func newTestServer(t *testing.T) (*Server, *stubAPI) {
	t.Helper()
	stub := &stubAPI{}
	api := httptest.NewServer(stub)
	t.Cleanup(api.Close)

	logger := zap.NewNop()
	cfg := &config.Config{
		Server:     config.ServerConfig{Host: "127.0.0.1", Port: 8080, Env: "test"},
		What3words: config.What3wordsConfig{APIKey: "test", Timeout: time.Second},
	}

	client, err := what3words.NewClient(cfg.What3words.APIKey, logger,
		what3words.WithBaseURL(api.URL+"/v3/"),
		what3words.WithLegacyBaseURL(api.URL+"/v2/"),
		what3words.WithTimeout(cfg.What3words.Timeout),
	)
	require.NoError(t, err)

	geocoderUC := usecase.NewGeocoderUseCase(client, logger)
	addressUC := usecase.NewAddressUseCase(client, logger)
	demo, err := handler.NewDemoHandler(geocoderUC, logger)
	require.NoError(t, err)

	return NewServer(cfg, logger,
		handler.NewGeocoderHandler(geocoderUC, logger),
		handler.NewAddressHandler(addressUC, logger),
		demo,
	), stub
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

func do(t *testing.T, s *Server, req *http.Request) (int, envelope, http.Header) {
	t.Helper()
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env, resp.Header
}

func get(path string, query url.Values) *http.Request {
	if query != nil {
		path += "?" + query.Encode()
	}
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func post(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestServer_ConvertToCoordinates(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("ok", func(t *testing.T) {
		status, env, header := do(t, s, get("/api/v1/convert-to-coordinates", url.Values{"words": {"filled.count.soap"}}))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(env.Data), `"nearestPlace":"Bayswater, London"`)
		assert.Equal(t, header.Get(middleware.HeaderRequestID), env.Meta["request_id"])
	})

	t.Run("rejected before the API", func(t *testing.T) {
		s, stub := newTestServer(t)
		status, env, _ := do(t, s, get("/api/v1/convert-to-coordinates", url.Values{"words": {"not a 3wa"}}))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "InvalidParameterShape", env.Error.Code)
		assert.Equal(t, "words", env.Error.Field)
		assert.Zero(t, stub.calls.Load())
	})

	t.Run("remote error passed through", func(t *testing.T) {
		status, env, _ := do(t, s, get("/api/v1/convert-to-coordinates", url.Values{"words": {"x.x.x"}}))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "BadWords", env.Error.Code)
	})
}

func TestServer_ConvertTo3wa(t *testing.T) {
	s, _ := newTestServer(t)

	status, env, _ := do(t, s, get("/api/v1/convert-to-3wa", url.Values{"coordinates": {"51.521251,-0.203586"}, "language": {"fr"}}))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"words":"index.home.raft","language":"fr","country":"","square":{"southwest":{"lat":0,"lng":0},"northeast":{"lat":0,"lng":0}},"nearestPlace":"","coordinates":{"lat":0,"lng":0},"map":""}`, string(env.Data))

	status, env, _ = do(t, s, get("/api/v1/convert-to-3wa", url.Values{"coordinates": {"51.521251,-0.203586"}, "format": {"geojson"}}))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"geojson":{"type":"FeatureCollection","features":[]}}`, string(env.Data))

	status, env, _ = do(t, s, get("/api/v1/convert-to-3wa", nil))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MissingRequiredField", env.Error.Code)
}

func TestServer_Autosuggest(t *testing.T) {
	s, _ := newTestServer(t)

	status, env, _ := do(t, s, post("/api/v1/autosuggest", `{"input":"filled.count.so","clip_to_country":["GB"],"n_results":1}`))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"filled.count.soap"`)
	assert.EqualValues(t, 1, env.Meta["total"])

	status, env, _ = do(t, s, post("/api/v1/autosuggest", `{"input":"filled count soap","input_type":"generic-voice"}`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MissingRequiredField", env.Error.Code)
	assert.Equal(t, "language", env.Error.Field)

	status, env, _ = do(t, s, post("/api/v1/autosuggest", `{"input":"x","clip_to_country":["GBR"]}`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "InvalidParameterShape", env.Error.Code)
}

func TestServer_GridAndLanguages(t *testing.T) {
	s, _ := newTestServer(t)

	status, env, _ := do(t, s, get("/api/v1/grid-section", url.Values{"bounding-box": {"52.207988,0.116126,52.208867,0.117540"}}))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"lines"`)

	status, env, _ = do(t, s, get("/api/v1/available-languages", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"nativeName":"English"`)
}

func TestServer_Address(t *testing.T) {
	s, stub := newTestServer(t)

	status, env, _ := do(t, s, get("/api/v1/address/possible", url.Values{"text": {"filled.count.soap"}}))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"text":"filled.count.soap","possible":true}`, string(env.Data))

	status, env, _ = do(t, s, get("/api/v1/address/find", url.Values{"text": {`from "index.home.raft" to "filled.count.soap"`}}))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"matches":["index.home.raft","filled.count.soap"],"total":2}`, string(env.Data))
	assert.Zero(t, stub.calls.Load())

	status, env, _ = do(t, s, get("/api/v1/address/valid", url.Values{"text": {"filled.count.soap"}}))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"text":"filled.count.soap","valid":true}`, string(env.Data))
	assert.EqualValues(t, 1, stub.calls.Load())

	status, env, _ = do(t, s, get("/api/v1/address/valid", url.Values{"text": {"not a 3wa"}}))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"text":"not a 3wa","valid":false}`, string(env.Data))
	assert.EqualValues(t, 1, stub.calls.Load())

	status, _, _ = do(t, s, get("/api/v1/address/find", nil))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestServer_Legacy(t *testing.T) {
	s, _ := newTestServer(t)

	status, env, _ := do(t, s, post("/api/v1/legacy/autosuggest",
		`{"addr":"index.home.r","clip":{"type":"radius","lat":51.5,"lng":-0.2,"distance":3}}`))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"suggestions":[],"clip":"radius(51.500000,-0.200000,3)","lang":"en"}`, string(env.Data))

	status, env, _ = do(t, s, post("/api/v1/legacy/autosuggest",
		`{"addr":"index.home.r","clip":{"type":"radius","lat":51.5,"lng":-0.2}}`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "InvalidParameterShape", env.Error.Code)
	assert.Equal(t, "clip", env.Error.Field)

	status, env, _ = do(t, s, post("/api/v1/legacy/autosuggest-ml",
		`{"addr":"index.home.r","lang":"fr","clip":{"type":"none"}}`))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"suggestions":[],"clip":"none","lang":"fr"}`, string(env.Data))

	status, env, _ = do(t, s, post("/api/v1/legacy/standardblend-ml", `{"addr":"index.home.raft"}`))
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"blends":[{"words":"index.home.raft"}]}`, string(env.Data))
}

func TestServer_LegacyStandardBlendRejectsClip(t *testing.T) {
	s, stub := newTestServer(t)

	for _, path := range []string{"/api/v1/legacy/standardblend", "/api/v1/legacy/standardblend-ml"} {
		status, env, _ := do(t, s, post(path, `{"addr":"index.home.raft","clip":{"type":"focus","distance":5}}`))
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.Equal(t, "InvalidParameterShape", env.Error.Code, path)
		assert.Equal(t, "clip", env.Error.Field, path)
	}
	assert.Zero(t, stub.calls.Load())
}

func TestServer_DemoPage(t *testing.T) {
	s, _ := newTestServer(t)

	resp, err := s.App().Test(get("/", url.Values{"what3words": {"filled.count.soap"}}), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "Bayswater, London")
	assert.Contains(t, string(body), "51.520847, -0.195521")

	resp, err = s.App().Test(get("/", url.Values{"what3words": {"x.x.x"}}), -1)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "unknown")
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)
	resp, err := s.App().Test(get("/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	s, _ := newTestServer(t)
	status, _, _ := do(t, s, get("/api/v1/convert-to-coordinates", url.Values{"words": {"x.x.x"}}))
	require.Equal(t, http.StatusBadRequest, status)

	resp, err := s.App().Test(get("/metrics", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `w3w_geocoder_upstream_requests_total{operation="convert-to-coordinates",outcome="RemoteApiError"}`)
	assert.Contains(t, string(body), `w3w_geocoder_http_requests_total{method="GET",path="/api/v1/convert-to-coordinates",status="400"}`)
}
