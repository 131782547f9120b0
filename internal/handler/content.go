package handler

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/remixhub/internal/store"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// VideoEmbed 是项目视频的可嵌入播放地址。
type VideoEmbed struct {
	Platform string `json:"platform"`
	Source   string `json:"source"`
	EmbedURL string `json:"embedUrl"`
}

// RecordDetail 是详情页展示的项目，附带渲染后的正文。
type RecordDetail struct {
	store.Record
	ContentHTML string      `json:"contentHtml"`
	Video       *VideoEmbed `json:"video,omitempty"`
}

func renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return string(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

func newRecordDetail(record store.Record) (RecordDetail, error) {
	rendered, err := renderMarkdown(record.Content)
	if err != nil {
		return RecordDetail{}, fmt.Errorf("render content: %w", err)
	}
	detail := RecordDetail{Record: record, ContentHTML: rendered}
	if embed, ok := parseVideoEmbed(record.VideoURL); ok {
		detail.Video = &embed
	}
	return detail, nil
}

// parseVideoEmbed 识别 YouTube 与 B 站链接，其他地址不生成嵌入信息。
func parseVideoEmbed(raw string) (VideoEmbed, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return VideoEmbed{}, false
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return VideoEmbed{}, false
	}

	host := strings.ToLower(parsed.Hostname())
	path := strings.Trim(parsed.Path, "/")
	switch {
	case host == "youtu.be":
		if id := firstSegment(path); id != "" {
			return youtubeEmbed(id, trimmed), true
		}
	case isHostOrSubdomain(host, "youtube.com"):
		id := ""
		switch {
		case path == "watch":
			id = parsed.Query().Get("v")
		case strings.HasPrefix(path, "shorts/"), strings.HasPrefix(path, "embed/"):
			id = firstSegment(path[strings.Index(path, "/")+1:])
		}
		if id != "" {
			return youtubeEmbed(id, trimmed), true
		}
	case isHostOrSubdomain(host, "bilibili.com"):
		segments := strings.Split(path, "/")
		if len(segments) >= 2 && segments[0] == "video" && strings.HasPrefix(strings.ToLower(segments[1]), "bv") {
			values := url.Values{}
			values.Set("bvid", segments[1])
			values.Set("autoplay", "0")
			return VideoEmbed{
				Platform: "bilibili",
				Source:   trimmed,
				EmbedURL: "https://player.bilibili.com/player.html?" + values.Encode(),
			}, true
		}
	}
	return VideoEmbed{}, false
}

func youtubeEmbed(id, source string) VideoEmbed {
	return VideoEmbed{
		Platform: "youtube",
		Source:   source,
		EmbedURL: "https://www.youtube.com/embed/" + url.PathEscape(id) + "?rel=0&playsinline=1",
	}
}

func firstSegment(path string) string {
	if idx := strings.Index(path, "/"); idx >= 0 {
		return path[:idx]
	}
	return path
}

func isHostOrSubdomain(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}
