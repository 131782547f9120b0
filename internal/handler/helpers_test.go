package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/remixhub/internal/db"
	"github.com/remixhub/internal/service"
	"github.com/remixhub/internal/store"
	"go.uber.org/zap"
)

// 1x1 PNG
const onePixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

type stubProvider struct {
	mu      sync.Mutex
	text    string
	err     error
	image   *service.InlineImage
	pingErr error
	calls   int

	// started 与 release 非空时，GenerateText 会在返回前阻塞等待 release。
	started chan struct{}
	release chan struct{}
}

func (p *stubProvider) GenerateText(context.Context, service.TextRequest) (string, error) {
	p.mu.Lock()
	p.calls++
	started, release := p.started, p.release
	p.mu.Unlock()

	if started != nil {
		close(started)
		<-release
	}
	return p.text, p.err
}

func (p *stubProvider) GenerateImage(context.Context, service.ImageRequest) (*service.InlineImage, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.image, p.err
}

func (p *stubProvider) Ping(context.Context) error {
	return p.pingErr
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type testEnv struct {
	api      *API
	engine   *gin.Engine
	records  *store.Store
	models   *service.ModelConfigService
	provider *stubProvider
}

// newTestEnv 搭建带会话中间件的引擎。apiKeys 为 nil 时所有平台都未配置凭据。
func newTestEnv(t *testing.T, provider *stubProvider, apiKeys map[string]string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	models := service.NewModelConfigService(gdb, 0)
	models.SetProviderFactory(func(db.ModelConfig, *http.Client) service.Provider { return provider })
	if err := models.Seed(apiKeys); err != nil {
		t.Fatalf("seed models: %v", err)
	}

	records := store.New(store.SeedRecords())
	ids := store.NewIDSource()
	gateway := service.NewGateway(models, zap.NewNop())
	api := NewAPI(Dependencies{
		Records: records,
		Feed:    service.NewFeedService(records, models),
		Remixes: service.NewRemixService(records, ids, gateway),
		Editor:  service.NewEditorService(records, ids, gateway),
		Models:  models,
	})

	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))
	r.Use(api.LocaleMiddleware())

	r.GET("/api/screen", api.GetScreen)
	r.POST("/api/navigate", api.Navigate)
	r.GET("/api/requests", api.ListRequests)
	r.GET("/api/home", api.GetHome)
	r.GET("/api/discovery", api.GetDiscovery)
	r.GET("/api/records", api.ListRecords)
	r.POST("/api/records", api.CreateRecord)
	r.GET("/api/records/:id", api.GetRecord)
	r.PUT("/api/records/:id", api.UpdateRecord)
	r.DELETE("/api/records/:id", api.DeleteRecord)
	r.POST("/api/records/:id/summary", api.SummarizeRecord)
	r.POST("/api/records/:id/card-remix", api.RemixCard)
	r.POST("/api/records/:id/remixes", api.PublishRemix)
	r.POST("/api/records/:id/remixes/prompt", api.AnalyzeRemixPrompt)
	r.POST("/api/records/:id/remixes/:remixId/vote", api.VoteRemix)
	r.POST("/api/remixes/preview", api.GenerateRemixPreview)
	r.POST("/api/editor/trending", api.SuggestTitles)
	r.POST("/api/editor/article", api.DraftArticle)
	r.POST("/api/editor/metadata", api.ExtractMetadata)
	r.POST("/api/editor/cover", api.GenerateCover)
	r.GET("/api/admin/dashboard", api.GetDashboard)
	r.GET("/api/admin/models", api.ListModels)
	r.PUT("/api/admin/models/:id", api.UpdateModel)
	r.POST("/api/admin/models/:id/toggle", api.ToggleModel)
	r.POST("/api/admin/models/:id/test", api.TestModel)

	return &testEnv{api: api, engine: r, records: records, models: models, provider: provider}
}

func activeKeys() map[string]string {
	return map[string]string{"deepseek": "sk-deepseek", "gemini": "sk-gemini"}
}

// do 发送请求；cookies 用于保持同一访客的会话。
func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// doRaw 原样发送 JSON 请求体，用于构造格式错误的输入。
func (e *testEnv) doRaw(t *testing.T, method, path, raw string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// sessionCookies 让引擎为新访客签发会话 cookie。
func (e *testEnv) sessionCookies(t *testing.T) []*http.Cookie {
	t.Helper()
	w := e.do(t, http.MethodGet, "/api/requests", nil)
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}
	return cookies
}

// mergeCookies 用响应中的新 cookie 覆盖同名旧值。
func mergeCookies(current []*http.Cookie, w *httptest.ResponseRecorder) []*http.Cookie {
	updated := w.Result().Cookies()
	if len(updated) == 0 {
		return current
	}
	byName := make(map[string]*http.Cookie, len(current))
	order := make([]string, 0, len(current))
	for _, c := range current {
		byName[c.Name] = c
		order = append(order, c.Name)
	}
	for _, c := range updated {
		if _, ok := byName[c.Name]; !ok {
			order = append(order, c.Name)
		}
		byName[c.Name] = c
	}
	out := make([]*http.Cookie, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
