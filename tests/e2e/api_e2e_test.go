package e2e

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/remixhub/internal/config"
	"github.com/remixhub/internal/db"
	"github.com/remixhub/internal/handler"
	"github.com/remixhub/internal/router"
	"github.com/remixhub/internal/service"
	"github.com/remixhub/internal/store"
	"go.uber.org/zap"
)

type e2eSuite struct {
	handler http.Handler
	visitor httpClient
	other   httpClient
	baseURL string
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler) *localClient {
	jar, _ := cookiejar.New(nil)
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	for _, cookie := range c.jar.Cookies(req.URL) {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	c.jar.SetCookies(req.URL, resp.Cookies())
	return resp, nil
}

// scriptedProvider 按请求类型返回固定内容。
type scriptedProvider struct {
	image string
}

func (p scriptedProvider) GenerateText(_ context.Context, req service.TextRequest) (string, error) {
	switch {
	case req.Schema != nil:
		return `{"summary":"一款轻量防水的城市通勤背包。","tags":["背包"],"suggestedTitle":"Momentum"}`, nil
	case strings.Contains(req.UserPrompt, "JSON 数组"):
		return `[{"title":"端侧大模型的静默革命","source":"36Kr"}]`, nil
	case strings.Contains(req.UserPrompt, "绘图提示词"):
		return "A neon-lit backpack floating above a rainy Tokyo street", nil
	default:
		return "# 引言\n正文", nil
	}
}

func (p scriptedProvider) GenerateImage(context.Context, service.ImageRequest) (*service.InlineImage, error) {
	return &service.InlineImage{Data: p.image}, nil
}

func (p scriptedProvider) Ping(context.Context) error { return nil }

func TestE2E_AllInterfaces(t *testing.T) {
	suite := newE2ESuite(t)

	t.Run("navigation", suite.testNavigation)
	t.Run("remix workflow", suite.testRemixWorkflow)
	t.Run("editor", suite.testEditor)
	t.Run("admin", suite.testAdmin)
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open("file:e2e?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	provider := scriptedProvider{image: pngBase64(t)}
	models := service.NewModelConfigService(gdb, 0)
	models.SetProviderFactory(func(db.ModelConfig, *http.Client) service.Provider { return provider })
	if err := models.Seed(map[string]string{"deepseek": "sk-e2e", "gemini": "sk-e2e"}); err != nil {
		t.Fatalf("failed to seed models: %v", err)
	}

	ids := store.NewIDSource()
	records := store.New(append(store.SeedRecords(), store.DemoRecords(ids, 3)...))
	gateway := service.NewGateway(models, zap.NewNop())
	api := handler.NewAPI(handler.Dependencies{
		Records:  records,
		Feed:     service.NewFeedService(records, models),
		Remixes:  service.NewRemixService(records, ids, gateway),
		Editor:   service.NewEditorService(records, ids, gateway),
		Models:   models,
		Requests: service.NewRequestTracker(),
	})

	engine := router.SetupRouter(config.AppConfig{SessionSecret: "e2e-session-secret"}, api, zap.NewNop())
	return &e2eSuite{
		handler: engine,
		visitor: newLocalClient(engine),
		other:   newLocalClient(engine),
		baseURL: "http://example.test",
	}
}

func (s *e2eSuite) testNavigation(t *testing.T) {
	var screen struct {
		State struct {
			Active   string `json:"active"`
			Selected string `json:"selected"`
		} `json:"state"`
		Screen struct {
			View string `json:"view"`
		} `json:"screen"`
	}

	s.doJSON(t, s.visitor, http.MethodGet, "/api/screen", nil, http.StatusOK, &screen)
	if screen.Screen.View != "home" {
		t.Fatalf("expected home, got %q", screen.Screen.View)
	}

	s.doJSON(t, s.visitor, http.MethodPost, "/api/navigate", map[string]string{"view": "detail", "recordId": "hero-1"}, http.StatusOK, &screen)
	if screen.Screen.View != "detail" || screen.State.Selected != "hero-1" {
		t.Fatalf("expected detail for hero-1, got %+v", screen)
	}

	s.doJSON(t, s.visitor, http.MethodPost, "/api/navigate", map[string]string{"view": "admin-models"}, http.StatusOK, &screen)
	s.doJSON(t, s.visitor, http.MethodPost, "/api/navigate", map[string]string{"view": "detail"}, http.StatusOK, &screen)
	if screen.Screen.View != "detail" || screen.State.Selected != "hero-1" {
		t.Fatalf("expected selection to survive admin navigation, got %+v", screen)
	}

	// 新访客没有选中项，详情页回退到首页
	s.doJSON(t, s.other, http.MethodPost, "/api/navigate", map[string]string{"view": "detail"}, http.StatusOK, &screen)
	if screen.Screen.View != "home" {
		t.Fatalf("expected home fallback for other visitor, got %q", screen.Screen.View)
	}
}

func (s *e2eSuite) testRemixWorkflow(t *testing.T) {
	var prompt struct {
		Prompt string `json:"prompt"`
	}
	s.doJSON(t, s.visitor, http.MethodPost, "/api/records/hero-1/remixes/prompt", nil, http.StatusOK, &prompt)
	if prompt.Prompt == "" {
		t.Fatal("expected a visual prompt")
	}

	var preview struct {
		Image *service.CoverImage `json:"image"`
	}
	s.doJSON(t, s.visitor, http.MethodPost, "/api/remixes/preview", map[string]string{"prompt": prompt.Prompt}, http.StatusOK, &preview)
	if preview.Image == nil || !strings.HasPrefix(preview.Image.DataURI, "data:image/png;base64,") {
		t.Fatalf("unexpected preview: %+v", preview.Image)
	}

	var record store.Record
	s.doJSON(t, s.visitor, http.MethodPost, "/api/records/hero-1/remixes", map[string]string{"prompt": prompt.Prompt, "imageUrl": preview.Image.DataURI}, http.StatusCreated, &record)
	if len(record.Remixes) != 1 || record.Remixes[0].Score != 0 {
		t.Fatalf("unexpected remixes after publish: %+v", record.Remixes)
	}
	remixID := record.Remixes[0].ID

	var voted struct {
		Remixes []store.RemixContribution `json:"remixes"`
	}
	s.doJSON(t, s.visitor, http.MethodPost, "/api/records/hero-1/remixes/"+remixID+"/vote", map[string]int{"delta": -1}, http.StatusOK, &voted)
	if voted.Remixes[0].Score != -1 {
		t.Fatalf("expected score -1, got %+v", voted.Remixes)
	}

	var summary struct {
		Summary string `json:"summary"`
	}
	s.doJSON(t, s.visitor, http.MethodPost, "/api/records/hero-1/summary", nil, http.StatusOK, &summary)
	if summary.Summary != "一款轻量防水的城市通勤背包。" {
		t.Fatalf("unexpected summary %q", summary.Summary)
	}

	var requests struct {
		Requests []service.RequestState `json:"requests"`
	}
	s.doJSON(t, s.visitor, http.MethodGet, "/api/requests", nil, http.StatusOK, &requests)
	if len(requests.Requests) != 3 {
		t.Fatalf("expected three tracked requests, got %+v", requests.Requests)
	}
	s.doJSON(t, s.other, http.MethodGet, "/api/requests", nil, http.StatusOK, &requests)
	if len(requests.Requests) != 0 {
		t.Fatalf("expected other visitor to have no requests, got %+v", requests.Requests)
	}
}

func (s *e2eSuite) testEditor(t *testing.T) {
	var titles struct {
		Titles []service.TrendingTitle `json:"titles"`
	}
	s.doJSON(t, s.visitor, http.MethodPost, "/api/editor/trending", map[string]string{}, http.StatusOK, &titles)
	if len(titles.Titles) != 1 {
		t.Fatalf("unexpected titles: %+v", titles.Titles)
	}

	var article struct {
		Content *string `json:"content"`
	}
	s.doJSON(t, s.visitor, http.MethodPost, "/api/editor/article", map[string]string{"title": titles.Titles[0].Title}, http.StatusOK, &article)
	if article.Content == nil {
		t.Fatal("expected article content")
	}

	var created store.Record
	s.doJSON(t, s.visitor, http.MethodPost, "/api/records", map[string]any{
		"title":   titles.Titles[0].Title,
		"content": *article.Content,
		"section": "taking-off",
	}, http.StatusCreated, &created)

	var list struct {
		Records []store.Record `json:"records"`
		Total   int            `json:"total"`
	}
	s.doJSON(t, s.visitor, http.MethodGet, "/api/records", nil, http.StatusOK, &list)
	if list.Total != 6 || list.Records[0].ID != created.ID {
		t.Fatalf("expected new record first among 6, got total=%d", list.Total)
	}
}

func (s *e2eSuite) testAdmin(t *testing.T) {
	var stats service.DashboardStats
	s.doJSON(t, s.visitor, http.MethodGet, "/api/admin/dashboard", nil, http.StatusOK, &stats)
	if stats.RecordCount != 6 || stats.RemixCount != 1 || stats.ActiveProviders != 2 {
		t.Fatalf("unexpected dashboard stats: %+v", stats)
	}

	var models struct {
		Models []service.ModelConfigView `json:"models"`
	}
	s.doJSON(t, s.visitor, http.MethodGet, "/api/admin/models?region=international", nil, http.StatusOK, &models)
	if len(models.Models) != 3 {
		t.Fatalf("expected three international models, got %d", len(models.Models))
	}
	for _, m := range models.Models {
		if strings.Contains(m.APIKey, "sk-e2e") {
			t.Fatalf("expected masked api key, got %q", m.APIKey)
		}
	}
}

func (s *e2eSuite) doJSON(t *testing.T, client httpClient, method, path string, body any, wantStatus int, out any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d: %s", method, path, wantStatus, resp.StatusCode, data)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("%s %s: decode response: %v", method, path, err)
		}
	}
}

func pngBase64(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	img.Set(0, 0, color.RGBA{R: 12, G: 200, B: 120, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
