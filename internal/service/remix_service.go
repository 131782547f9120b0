package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/remixhub/internal/store"
)

var (
	// ErrRecordNotFound 表示项目不存在。
	ErrRecordNotFound = errors.New("record not found")
	// ErrEmptyPrompt 表示提示词为空，不会发起生成请求。
	ErrEmptyPrompt = errors.New("prompt is required")
	// ErrNoPreview 表示尚未生成预览图，无法发布。
	ErrNoPreview = errors.New("preview image is required")
	// ErrInvalidVote 表示投票增量只能是 +1 或 -1。
	ErrInvalidVote = errors.New("vote delta must be +1 or -1")
)

const (
	anonymousVisitorPrefix = "匿名访问者_"
	remixDateLayout        = "2006/1/2"
	summaryFallback        = "无法生成摘要"
)

// CardStyle 决定卡片级快速重构使用的提示词模板。
type CardStyle string

const (
	CardStyleHome      CardStyle = "home"
	CardStyleDiscovery CardStyle = "discovery"
)

// ParseCardStyle 解析卡片风格，未知值回退到首页风格。
func ParseCardStyle(raw string) CardStyle {
	if CardStyle(strings.ToLower(strings.TrimSpace(raw))) == CardStyleDiscovery {
		return CardStyleDiscovery
	}
	return CardStyleHome
}

// RemixService 负责项目详情页中的 AI 重构、发布与投票。
type RemixService struct {
	store   *store.Store
	ids     *store.IDSource
	gateway *Gateway
	now     func() time.Time
}

// NewRemixService 构造 RemixService。
func NewRemixService(records *store.Store, ids *store.IDSource, gateway *Gateway) *RemixService {
	return &RemixService{store: records, ids: ids, gateway: gateway, now: time.Now}
}

// AnalyzePrompt 基于项目标题与正文生成重构提示词。
func (s *RemixService) AnalyzePrompt(ctx context.Context, recordID string) (string, error) {
	record, ok := s.store.FindByID(recordID)
	if !ok {
		return "", ErrRecordNotFound
	}
	return s.gateway.SynthesizeVisualPrompt(ctx, record.Title, record.Content)
}

// GeneratePreview 按提示词生成预览图，提示词为空时不发起请求。
func (s *RemixService) GeneratePreview(ctx context.Context, prompt string) (*CoverImage, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	return s.gateway.GenerateCoverImage(ctx, prompt)
}

// Publish 将预览图作为新的重构作品插入列表头部，得分从 0 开始。
func (s *RemixService) Publish(recordID, prompt, imageURL string) (store.Record, error) {
	if strings.TrimSpace(imageURL) == "" {
		return store.Record{}, ErrNoPreview
	}

	record, ok := s.store.FindByID(recordID)
	if !ok {
		return store.Record{}, ErrRecordNotFound
	}

	remix := store.RemixContribution{
		ID:          s.ids.Next(),
		VisitorName: fmt.Sprintf("%s%d", anonymousVisitorPrefix, gofakeit.Number(0, 999)),
		Prompt:      prompt,
		ImageURL:    imageURL,
		Score:       0,
		CreatedAt:   s.now().Format(remixDateLayout),
	}
	record.Remixes = append([]store.RemixContribution{remix}, record.Remixes...)
	s.store.Replace(record)
	return record, nil
}

// Vote 调整重构作品得分并按得分降序重新排序，得分相同时保持原有顺序。
// 作品不存在时不做任何修改。读取与写回之间没有并发保护，后写入者生效。
func (s *RemixService) Vote(recordID, remixID string, delta int) (store.Record, error) {
	if delta != 1 && delta != -1 {
		return store.Record{}, ErrInvalidVote
	}

	record, ok := s.store.FindByID(recordID)
	if !ok {
		return store.Record{}, ErrRecordNotFound
	}

	idx := record.FindRemix(remixID)
	if idx == -1 {
		return record, nil
	}

	record.Remixes[idx].Score += delta
	slices.SortStableFunc(record.Remixes, func(a, b store.RemixContribution) int {
		return b.Score - a.Score
	})
	s.store.Replace(record)
	return record, nil
}

// Summarize 提取项目正文摘要，模型未返回摘要时给出兜底文案。
func (s *RemixService) Summarize(ctx context.Context, recordID string) (string, error) {
	record, ok := s.store.FindByID(recordID)
	if !ok {
		return "", ErrRecordNotFound
	}

	metadata, err := s.gateway.ExtractMetadata(ctx, record.Content)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(metadata.Summary) == "" {
		return summaryFallback, nil
	}
	return metadata.Summary, nil
}

// RemixCard 为首页或发现页卡片生成一次性的重构封面，结果不会写回项目。
func (s *RemixService) RemixCard(ctx context.Context, recordID string, style CardStyle) (*CoverImage, error) {
	record, ok := s.store.FindByID(recordID)
	if !ok {
		return nil, ErrRecordNotFound
	}
	return s.gateway.GenerateCoverImage(ctx, cardPrompt(record.Title, style))
}

func cardPrompt(title string, style CardStyle) string {
	if style == CardStyleDiscovery {
		return fmt.Sprintf(`A highly detailed, cinematic commercial shot of: "%s". 8k resolution, photorealistic.`, title)
	}
	return fmt.Sprintf(`A futuristic, hyper-realistic reinterpretation of this product: "%s". Concept art style, studio lighting, clean background.`, title)
}
