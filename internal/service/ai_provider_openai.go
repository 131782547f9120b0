package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// openAIProvider 通过 OpenAI Chat Completions 协议访问平台，
// DeepSeek、通义千问、百川与 Gemini 的兼容端点都走这一实现。
type openAIProvider struct {
	label  string
	client openai.Client
}

func newOpenAIProvider(label, apiKey, baseURL string, httpClient *http.Client) *openAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHeader("User-Agent", "remixhub-ai/1.0"),
	}
	if base := strings.TrimSpace(baseURL); base != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(base, "/")+"/"))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &openAIProvider{label: label, client: openai.NewClient(opts...)}
}

func (p *openAIProvider) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if system := strings.TrimSpace(req.SystemPrompt); system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(req.UserPrompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	}
	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.Schema.Name,
					Schema: req.Schema.Schema,
					Strict: openai.Bool(true),
				},
			},
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("请求 %s 接口失败: %w", p.label, err)
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}

func (p *openAIProvider) GenerateImage(ctx context.Context, req ImageRequest) (*InlineImage, error) {
	if strings.TrimSpace(req.Model) == "" {
		return nil, ErrImageUnsupported
	}

	params := openai.ImageGenerateParams{
		Prompt: req.Prompt,
		Model:  openai.ImageModel(req.Model),
		N:      openai.Int(1),
	}
	if size := imageSizeFor(req.Model, req.AspectRatio); size != "" {
		params.Size = openai.ImageGenerateParamsSize(size)
	}
	// gpt-image 系列固定返回 base64，显式传 response_format 会被拒绝
	if !strings.HasPrefix(req.Model, "gpt-image") {
		params.ResponseFormat = openai.ImageGenerateParamsResponseFormatB64JSON
	}

	resp, err := p.client.Images.Generate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("请求 %s 图像接口失败: %w", p.label, err)
	}
	for _, image := range resp.Data {
		if image.B64JSON != "" {
			return &InlineImage{Data: image.B64JSON}, nil
		}
	}
	return nil, nil
}

func (p *openAIProvider) Ping(ctx context.Context) error {
	if _, err := p.client.Models.List(ctx); err != nil {
		return fmt.Errorf("请求 %s 接口失败: %w", p.label, err)
	}
	return nil
}

// imageSizeFor 将宽高比提示映射为各模型支持的尺寸。
func imageSizeFor(model, aspectRatio string) string {
	if aspectRatio != "16:9" {
		return ""
	}
	switch {
	case strings.HasPrefix(model, "dall-e-3"):
		return "1792x1024"
	case strings.HasPrefix(model, "gpt-image"):
		return "1536x1024"
	default:
		return ""
	}
}
