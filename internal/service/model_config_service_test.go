package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/remixhub/internal/db"
)

func newSeededModelService(t *testing.T, keys map[string]string) *ModelConfigService {
	t.Helper()
	svc := NewModelConfigService(openTestDB(t), 0)
	if err := svc.Seed(keys); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return svc
}

func findView(t *testing.T, views []ModelConfigView, key string) ModelConfigView {
	t.Helper()
	for _, view := range views {
		if view.Key == key {
			return view
		}
	}
	t.Fatalf("model %s not found", key)
	return ModelConfigView{}
}

func TestModelConfigServiceSeedAndList(t *testing.T) {
	svc := newSeededModelService(t, map[string]string{"deepseek": "sk-deepseek-1234567890"})

	// 重复播种不会产生重复记录
	if err := svc.Seed(nil); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	all, err := svc.List("")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("expected 6 configs, got %d", len(all))
	}
	wantOrder := []string{"deepseek", "qwen", "baichuan", "gemini", "gpt4", "claude"}
	for i, key := range wantOrder {
		if all[i].Key != key {
			t.Fatalf("position %d: expected %s, got %s", i, key, all[i].Key)
		}
	}

	domestic, err := svc.List(db.RegionDomestic)
	if err != nil {
		t.Fatalf("list domestic failed: %v", err)
	}
	if len(domestic) != 3 {
		t.Fatalf("expected 3 domestic configs, got %d", len(domestic))
	}

	deepseek := findView(t, all, "deepseek")
	if !deepseek.HasAPIKey || deepseek.APIKey != "sk-d"+maskedKeySuffix {
		t.Fatalf("expected masked key, got %#v", deepseek)
	}
	if qwen := findView(t, all, "qwen"); qwen.HasAPIKey || qwen.APIKey != "" {
		t.Fatalf("expected qwen without key, got %#v", qwen)
	}

	if _, err := svc.List("mars"); !errors.Is(err, ErrInvalidRegion) {
		t.Fatalf("expected ErrInvalidRegion, got %v", err)
	}
}

func TestModelConfigServiceToggleAndUpdate(t *testing.T) {
	svc := newSeededModelService(t, nil)
	views, _ := svc.List("")
	claude := findView(t, views, "claude")
	if claude.IsActive {
		t.Fatal("claude should start inactive")
	}

	toggled, err := svc.Toggle(claude.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !toggled.IsActive {
		t.Fatal("expected claude to become active")
	}

	key := "sk-ant-abcdefghijkl"
	version := "claude-sonnet-4-5"
	updated, err := svc.Update(claude.ID, ModelConfigInput{APIKey: &key, Version: &version})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.HasAPIKey || updated.Version != version {
		t.Fatalf("unexpected update result %#v", updated)
	}

	views, _ = svc.List(db.RegionInternational)
	if reloaded := findView(t, views, "claude"); !reloaded.IsActive || reloaded.Version != version {
		t.Fatalf("changes were not persisted: %#v", reloaded)
	}

	if _, err := svc.Toggle(999); !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
	if _, err := svc.Update(999, ModelConfigInput{}); !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
}

func TestModelConfigServiceResolveProvider(t *testing.T) {
	svc := newSeededModelService(t, map[string]string{
		"deepseek": "sk-deepseek",
		"gpt4":     "sk-openai",
	})

	var built []string
	svc.SetProviderFactory(func(cfg db.ModelConfig, _ *http.Client) Provider {
		built = append(built, cfg.Key)
		return &fakeProvider{}
	})

	text, err := svc.ResolveProvider(CapabilityText)
	if err != nil {
		t.Fatalf("resolve text failed: %v", err)
	}
	if text.Key != "deepseek" || text.Models.Text != "deepseek-chat" {
		t.Fatalf("expected deepseek for text, got %#v", text)
	}

	image, err := svc.ResolveProvider(CapabilityImage)
	if err != nil {
		t.Fatalf("resolve image failed: %v", err)
	}
	if image.Key != "gpt4" || image.Models.Image != "gpt-image-1" {
		t.Fatalf("expected gpt4 for images, got %#v", image)
	}

	views, _ := svc.List("")
	if _, err := svc.Toggle(findView(t, views, "deepseek").ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	text, err = svc.ResolveProvider(CapabilityText)
	if err != nil || text.Key != "gpt4" {
		t.Fatalf("expected gpt4 after disabling deepseek, got %#v, %v", text, err)
	}

	if len(built) != 3 {
		t.Fatalf("expected a fresh provider per resolution, got %v", built)
	}
}

func TestModelConfigServiceResolveWithoutKeys(t *testing.T) {
	svc := newSeededModelService(t, nil)
	if _, err := svc.ResolveProvider(CapabilityText); !errors.Is(err, ErrNoActiveProvider) {
		t.Fatalf("expected ErrNoActiveProvider, got %v", err)
	}

	count, err := svc.ActiveCount()
	if err != nil || count != 0 {
		t.Fatalf("expected no active providers, got %d, %v", count, err)
	}
}

func TestModelConfigServiceTestConnection(t *testing.T) {
	svc := newSeededModelService(t, map[string]string{"gpt4": "sk-openai"})
	pingErr := errors.New("401 unauthorized")
	svc.SetProviderFactory(func(cfg db.ModelConfig, _ *http.Client) Provider {
		if cfg.Key == "gpt4" {
			return &fakeProvider{pingErr: pingErr}
		}
		return &fakeProvider{}
	})

	views, _ := svc.List("")
	if err := svc.TestConnection(context.Background(), findView(t, views, "qwen").ID); !errors.Is(err, ErrAIAPIKeyMissing) {
		t.Fatalf("expected ErrAIAPIKeyMissing, got %v", err)
	}
	if err := svc.TestConnection(context.Background(), findView(t, views, "gpt4").ID); !errors.Is(err, pingErr) {
		t.Fatalf("expected ping error, got %v", err)
	}
	if err := svc.TestConnection(context.Background(), 404); !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
}

func TestMaskAPIKey(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"short":             maskedKeySuffix,
		"sk-proj-123456789": "sk-p" + maskedKeySuffix,
	}
	for input, want := range cases {
		if got := maskAPIKey(input); got != want {
			t.Fatalf("maskAPIKey(%q) = %q, want %q", input, got, want)
		}
	}
}
