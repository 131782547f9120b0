package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicMaxTokens = 4096

// anthropicProvider 通过 Anthropic Messages 协议生成文本，不支持图像。
type anthropicProvider struct {
	label  string
	client anthropic.Client
}

func newAnthropicProvider(label, apiKey, baseURL string, httpClient *http.Client) *anthropicProvider {
	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(apiKey),
		anthropicoption.WithMaxRetries(0),
	}
	if base := strings.TrimSpace(baseURL); base != "" {
		opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(base, "/")+"/"))
	}
	if httpClient != nil {
		opts = append(opts, anthropicoption.WithHTTPClient(httpClient))
	}
	return &anthropicProvider{label: label, client: anthropic.NewClient(opts...)}
}

func (p *anthropicProvider) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	system := strings.TrimSpace(req.SystemPrompt)
	if req.Schema != nil {
		schema, err := json.Marshal(req.Schema.Schema)
		if err != nil {
			return "", fmt.Errorf("构造请求失败: %w", err)
		}
		system = strings.TrimSpace(system + "\n\n仅输出一个符合以下 JSON Schema 的 JSON 对象，不要包含任何其他文字：\n" + string(schema))
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: defaultAnthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("请求 %s 接口失败: %w", p.label, err)
	}

	var builder strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			builder.WriteString(block.Text)
		}
	}
	return builder.String(), nil
}

func (p *anthropicProvider) GenerateImage(context.Context, ImageRequest) (*InlineImage, error) {
	return nil, ErrImageUnsupported
}

func (p *anthropicProvider) Ping(ctx context.Context) error {
	if _, err := p.client.Models.List(ctx, anthropic.ModelListParams{}); err != nil {
		return fmt.Errorf("请求 %s 接口失败: %w", p.label, err)
	}
	return nil
}
