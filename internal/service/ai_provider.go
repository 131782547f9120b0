package service

import (
	"context"
	"errors"
)

// ErrNoActiveProvider 表示没有任何已启用且配置了 API Key 的模型平台可用。
var ErrNoActiveProvider = errors.New("no active ai provider configured")

// ErrImageUnsupported 表示当前平台不支持图像生成。
var ErrImageUnsupported = errors.New("image generation is not supported by this provider")

// Capability 描述网关向平台请求的能力类型。
type Capability string

const (
	CapabilityText  Capability = "text"
	CapabilityImage Capability = "image"
)

// JSONSchema 要求模型按结构化格式输出。
type JSONSchema struct {
	Name   string
	Schema map[string]any
}

// TextRequest 是一次文本生成请求。
type TextRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Schema       *JSONSchema
}

// ImageRequest 是一次图像生成请求。
type ImageRequest struct {
	Model       string
	Prompt      string
	AspectRatio string
}

// InlineImage 是平台返回的内联图像，Data 为 base64 编码。
// MIMEType 可能为空，由调用方根据内容探测。
type InlineImage struct {
	MIMEType string
	Data     string
}

// Provider 封装一个外部生成式 AI 平台。实现不得缓存或重试。
type Provider interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
	// GenerateImage 在响应中没有图像时返回 (nil, nil)。
	GenerateImage(ctx context.Context, req ImageRequest) (*InlineImage, error)
	Ping(ctx context.Context) error
}

// ModelSet 列出某个平台在各档位使用的模型。
type ModelSet struct {
	Text   string
	Pro    string
	Image  string
	Search string
}

// ResolvedProvider 是一次调用所使用的平台会话。
type ResolvedProvider struct {
	Key      string
	Label    string
	Provider Provider
	Models   ModelSet
}

// ProviderResolver 为每次调用选出当前可用的平台并创建新的会话。
type ProviderResolver interface {
	ResolveProvider(capability Capability) (ResolvedProvider, error)
}
