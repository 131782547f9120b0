package service

import (
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"
)

// CoverImage 是可直接用于 <img src> 的封面图。
type CoverImage struct {
	DataURI  string `json:"dataUri"`
	MIMEType string `json:"mimeType"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

const fallbackImageMIMEType = "image/png"

// newCoverImage 将平台返回的内联图像拼接为 data URI，并尽量探测格式与尺寸。
// 平台已声明 MIME 类型时以平台为准。
func newCoverImage(inline InlineImage) CoverImage {
	payload := strings.TrimSpace(inline.Data)
	mimeType := strings.TrimSpace(inline.MIMEType)

	var width, height int
	decoder := base64.NewDecoder(base64.StdEncoding, strings.NewReader(payload))
	if cfg, format, err := image.DecodeConfig(decoder); err == nil {
		width, height = cfg.Width, cfg.Height
		if mimeType == "" {
			mimeType = "image/" + format
		}
	}
	if mimeType == "" {
		mimeType = fallbackImageMIMEType
	}

	return CoverImage{
		DataURI:  "data:" + mimeType + ";base64," + payload,
		MIMEType: mimeType,
		Width:    width,
		Height:   height,
	}
}
