package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultTrendingTopic 是热点发现的默认主题。
	DefaultTrendingTopic = "科技与AI"

	maxVisualPromptContentRunes = 500
	coverAspectRatio            = "16:9"
)

const (
	visualPromptSystemPrompt = "你是一个专业的AI艺术提示词工程师，擅长将文字创意转化为高质量的视觉生成指令。"
	articleSystemPrompt      = "你是一个世界级的科技专栏作家，擅长撰写具有深度洞察力和极简主义风格的行业分析文章。"
)

// TrendingTitle 是一条热点标题建议。
type TrendingTitle struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

// Metadata 是从正文中提取的结构化信息。
type Metadata struct {
	Summary        string   `json:"summary"`
	Tags           []string `json:"tags"`
	SuggestedTitle string   `json:"suggestedTitle"`
}

var metadataSchema = &JSONSchema{
	Name: "article_metadata",
	Schema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":        map[string]any{"type": "string"},
			"tags":           map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"suggestedTitle": map[string]any{"type": "string"},
		},
		"required":             []string{"summary", "tags", "suggestedTitle"},
		"additionalProperties": false,
	},
}

// Gateway 是访问外部生成式 AI 平台的唯一入口。
// 它不保存任何调用间状态：每次调用都重新解析平台并创建新会话，不缓存、不重试、不限流。
//
// 解析半结构化文本的操作（热点发现、元数据提取）在解析失败时返回空结果；
// 其余错误（网络、平台报错）原样返回给调用方，由调用方决定如何提示用户。
type Gateway struct {
	providers ProviderResolver
	log       *zap.Logger
}

// NewGateway 构造 Gateway。
func NewGateway(providers ProviderResolver, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{providers: providers, log: log}
}

// SynthesizeVisualPrompt 根据项目标题与正文生成一段英文绘图提示词。
// 正文仅取前 500 个字符；平台未返回文本时结果为空字符串。
func (g *Gateway) SynthesizeVisualPrompt(ctx context.Context, title, content string) (string, error) {
	resolved, err := g.providers.ResolveProvider(CapabilityText)
	if err != nil {
		return "", err
	}

	userPrompt := fmt.Sprintf(`分析以下众筹项目并生成一个详细的AI绘图提示词（英文），用于描述该项目的视觉核心。
项目标题: %s
项目内容: %s

提示词应包含：艺术风格、光影、材质、核心物件描述。
请仅返回一段英文提示词。`, title, truncateRunes(content, maxVisualPromptContentRunes))
	logAIExchange(g.log, "VISUAL_PROMPT", "prompt", userPrompt)

	text, err := resolved.Provider.GenerateText(ctx, TextRequest{
		Model:        resolved.Models.Text,
		SystemPrompt: visualPromptSystemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return "", err
	}
	logAIExchange(g.log, "VISUAL_PROMPT", "response", text)

	return strings.Join(strings.Fields(text), " "), nil
}

// DiscoverTrendingTitles 借助联网搜索推荐热点标题，topic 为空时使用默认主题。
// 响应中无法解析出 JSON 数组时返回空列表而不是错误。
func (g *Gateway) DiscoverTrendingTitles(ctx context.Context, topic string) ([]TrendingTitle, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = DefaultTrendingTopic
	}

	resolved, err := g.providers.ResolveProvider(CapabilityText)
	if err != nil {
		return nil, err
	}

	model := resolved.Models.Search
	if model == "" {
		model = resolved.Models.Text
	}

	userPrompt := fmt.Sprintf(`搜索关于"%s"的最新热门话题和新闻，并根据这些信息推荐5个吸引人的文章标题。要求标题具有深度且符合Apple风格的极简美感。请以 JSON 数组格式返回结果，包含 title 和 source 字段。`, topic)
	logAIExchange(g.log, "TRENDING", "prompt", userPrompt)

	text, err := resolved.Provider.GenerateText(ctx, TextRequest{
		Model:      model,
		UserPrompt: userPrompt,
	})
	if err != nil {
		return nil, err
	}
	logAIExchange(g.log, "TRENDING", "response", text)

	return g.parseTrendingTitles(text), nil
}

func (g *Gateway) parseTrendingTitles(text string) []TrendingTitle {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end < start {
		return []TrendingTitle{}
	}

	var titles []TrendingTitle
	if err := json.Unmarshal([]byte(text[start:end+1]), &titles); err != nil {
		g.log.Warn("parse trending titles failed", zap.Error(err))
		return []TrendingTitle{}
	}
	if titles == nil {
		return []TrendingTitle{}
	}
	return titles
}

// GenerateFullArticle 根据标题撰写 Markdown 长文；平台未返回文本时 ok 为 false。
func (g *Gateway) GenerateFullArticle(ctx context.Context, title string) (string, bool, error) {
	resolved, err := g.providers.ResolveProvider(CapabilityText)
	if err != nil {
		return "", false, err
	}

	model := resolved.Models.Pro
	if model == "" {
		model = resolved.Models.Text
	}

	userPrompt := fmt.Sprintf(`请为标题为"%s"的文章撰写一篇深度、专业且具有人文关怀的科技文章。
要求：使用 Markdown 格式，包含引言、核心观点、未来展望。`, title)
	logAIExchange(g.log, "ARTICLE", "prompt", userPrompt)

	text, err := resolved.Provider.GenerateText(ctx, TextRequest{
		Model:        model,
		SystemPrompt: articleSystemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return "", false, err
	}
	logAIExchange(g.log, "ARTICLE", "response", text)

	if strings.TrimSpace(text) == "" {
		return "", false, nil
	}
	return text, true, nil
}

// ExtractMetadata 从正文中提取摘要、标签与建议标题。
// 平台返回的内容不是合法 JSON 时返回空结构。
func (g *Gateway) ExtractMetadata(ctx context.Context, content string) (Metadata, error) {
	resolved, err := g.providers.ResolveProvider(CapabilityText)
	if err != nil {
		return Metadata{}, err
	}
	logAIExchange(g.log, "METADATA", "prompt", content)

	text, err := resolved.Provider.GenerateText(ctx, TextRequest{
		Model:      resolved.Models.Text,
		UserPrompt: content,
		Schema:     metadataSchema,
	})
	if err != nil {
		return Metadata{}, err
	}
	logAIExchange(g.log, "METADATA", "response", text)

	return g.parseMetadata(text), nil
}

func (g *Gateway) parseMetadata(text string) Metadata {
	empty := Metadata{Tags: []string{}}
	if strings.TrimSpace(text) == "" {
		return empty
	}

	var metadata Metadata
	if err := json.Unmarshal([]byte(text), &metadata); err != nil {
		g.log.Warn("parse metadata failed", zap.Error(err))
		return empty
	}
	if metadata.Tags == nil {
		metadata.Tags = []string{}
	}
	return metadata
}

// GenerateCoverImage 按 16:9 生成封面图；响应中没有图像时返回 nil。
func (g *Gateway) GenerateCoverImage(ctx context.Context, prompt string) (*CoverImage, error) {
	resolved, err := g.providers.ResolveProvider(CapabilityImage)
	if err != nil {
		return nil, err
	}
	logAIExchange(g.log, "COVER", "prompt", prompt)

	inline, err := resolved.Provider.GenerateImage(ctx, ImageRequest{
		Model:       resolved.Models.Image,
		Prompt:      prompt,
		AspectRatio: coverAspectRatio,
	})
	if err != nil {
		return nil, err
	}
	if inline == nil || strings.TrimSpace(inline.Data) == "" {
		g.log.Info("cover generation returned no image", zap.String("provider", resolved.Label))
		return nil, nil
	}

	cover := newCoverImage(*inline)
	g.log.Info("cover generated",
		zap.String("provider", resolved.Label),
		zap.String("mime", cover.MIMEType),
		zap.Int("width", cover.Width),
		zap.Int("height", cover.Height),
	)
	return &cover, nil
}
