package handler

import (
	"strings"
	"testing"

	"github.com/remixhub/internal/store"
)

func TestParseVideoEmbed(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		ok       bool
		platform string
		embed    string
	}{
		{name: "youtube watch", raw: "https://www.youtube.com/watch?v=abc123", ok: true, platform: "youtube", embed: "https://www.youtube.com/embed/abc123?rel=0&playsinline=1"},
		{name: "youtube short link", raw: "https://youtu.be/xyz789?t=10", ok: true, platform: "youtube", embed: "https://www.youtube.com/embed/xyz789?rel=0&playsinline=1"},
		{name: "youtube shorts", raw: "https://youtube.com/shorts/s1", ok: true, platform: "youtube", embed: "https://www.youtube.com/embed/s1?rel=0&playsinline=1"},
		{name: "bilibili", raw: "https://www.bilibili.com/video/BV1xx411c7mD/", ok: true, platform: "bilibili", embed: "https://player.bilibili.com/player.html?autoplay=0&bvid=BV1xx411c7mD"},
		{name: "lookalike host", raw: "https://notyoutube.com/watch?v=abc", ok: false},
		{name: "unsupported scheme", raw: "javascript:alert(1)", ok: false},
		{name: "empty", raw: "  ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embed, ok := parseVideoEmbed(tt.raw)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if embed.Platform != tt.platform || embed.EmbedURL != tt.embed {
				t.Fatalf("unexpected embed: %+v", embed)
			}
		})
	}
}

func TestNewRecordDetailSanitizesContent(t *testing.T) {
	record := store.Record{
		ID:       "r1",
		Content:  "## 标题\n<script>alert(1)</script>\n[链接](https://example.com)",
		VideoURL: "https://youtu.be/abc",
	}

	detail, err := newRecordDetail(record)
	if err != nil {
		t.Fatalf("newRecordDetail returned error: %v", err)
	}
	if strings.Contains(detail.ContentHTML, "<script") {
		t.Fatalf("expected script to be stripped, got %q", detail.ContentHTML)
	}
	if !strings.Contains(detail.ContentHTML, "<h2") || !strings.Contains(detail.ContentHTML, `href="https://example.com"`) {
		t.Fatalf("expected rendered markdown, got %q", detail.ContentHTML)
	}
	if detail.Video == nil || detail.Video.Platform != "youtube" {
		t.Fatalf("expected youtube embed, got %+v", detail.Video)
	}
}
