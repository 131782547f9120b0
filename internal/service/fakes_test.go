package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/remixhub/internal/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeProvider struct {
	mu            sync.Mutex
	text          string
	textErr       error
	image         *InlineImage
	imageErr      error
	pingErr       error
	textRequests  []TextRequest
	imageRequests []ImageRequest
}

func (f *fakeProvider) GenerateText(_ context.Context, req TextRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.textRequests = append(f.textRequests, req)
	return f.text, f.textErr
}

func (f *fakeProvider) GenerateImage(_ context.Context, req ImageRequest) (*InlineImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imageRequests = append(f.imageRequests, req)
	return f.image, f.imageErr
}

func (f *fakeProvider) Ping(context.Context) error {
	return f.pingErr
}

func (f *fakeProvider) lastText(t *testing.T) TextRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.textRequests) == 0 {
		t.Fatal("expected a text request")
	}
	return f.textRequests[len(f.textRequests)-1]
}

type fakeResolver struct {
	provider Provider
	models   ModelSet
	err      error
}

func (f fakeResolver) ResolveProvider(Capability) (ResolvedProvider, error) {
	if f.err != nil {
		return ResolvedProvider{}, f.err
	}
	return ResolvedProvider{Key: "fake", Label: "Fake", Provider: f.provider, Models: f.models}, nil
}

var testModels = ModelSet{Text: "text-model", Pro: "pro-model", Image: "image-model", Search: "search-model"}

func newTestGateway(provider Provider) *Gateway {
	return NewGateway(fakeResolver{provider: provider, models: testModels}, zap.NewNop())
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := db.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func fakeHTTPClient(handler roundTripFunc) *http.Client {
	return &http.Client{Transport: handler}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func testPNGBase64(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 3, G: 115, B: 98, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
