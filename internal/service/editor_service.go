package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/remixhub/internal/store"
)

var (
	// ErrMissingRequiredFields 表示标题或正文为空。
	ErrMissingRequiredFields = errors.New("title and content are required")
	// ErrMissingTitle 表示生成封面或长文前未填写标题。
	ErrMissingTitle = errors.New("title is required")
	// ErrMissingContent 表示提取元数据前未填写正文。
	ErrMissingContent = errors.New("content is required")
	// ErrInvalidSection 表示首页板块不存在。
	ErrInvalidSection = errors.New("invalid homepage section")
)

const (
	defaultEditorCategory     = "Design"
	defaultEditorAuthor       = "shuyongai"
	defaultEditorAuthorAvatar = "https://api.dicebear.com/7.x/initials/svg?seed=SA"
	defaultEditorLocation     = "New York, NY"
	defaultFundingGoal        = 10000
	defaultCurrentFunding     = 5000
	defaultFundingPercentage  = 50
	defaultDaysLeft           = 30
	excerptRunes              = 100
)

// EditorInput 是后台编辑器提交的项目信息，未填写的字段使用编辑器默认值。
type EditorInput struct {
	Title             string
	Content           string
	Category          string
	Section           string
	Author            string
	AuthorAvatar      string
	CoverURL          string
	FundingGoal       *int
	CurrentFunding    *int
	FundingPercentage *int
	DaysLeft          *int
	Location          string
}

// EditorService 负责后台编辑器的发布与 AI 辅助创作。
type EditorService struct {
	store   *store.Store
	ids     *store.IDSource
	gateway *Gateway
	now     func() time.Time
}

// NewEditorService 构造 EditorService。
func NewEditorService(records *store.Store, ids *store.IDSource, gateway *Gateway) *EditorService {
	return &EditorService{store: records, ids: ids, gateway: gateway, now: time.Now}
}

// Publish 创建新项目并插入到列表头部。
// 筹款百分比按输入原样保存，不根据金额换算。
func (s *EditorService) Publish(input EditorInput) (store.Record, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Content) == "" {
		return store.Record{}, ErrMissingRequiredFields
	}

	section := store.SectionHeroFeatured
	if raw := strings.TrimSpace(input.Section); raw != "" {
		parsed, ok := store.ParseSection(raw)
		if !ok {
			return store.Record{}, ErrInvalidSection
		}
		section = parsed
	}

	record := store.Record{
		ID:                s.ids.Next(),
		Title:             title,
		Excerpt:           truncateRunes(input.Content, excerptRunes) + "...",
		Content:           input.Content,
		Author:            fallback(input.Author, defaultEditorAuthor),
		AuthorAvatar:      fallback(input.AuthorAvatar, defaultEditorAuthorAvatar),
		Date:              s.now().UTC().Format("2006-01-02"),
		Category:          fallback(input.Category, defaultEditorCategory),
		Tags:              []string{},
		CoverURL:          strings.TrimSpace(input.CoverURL),
		FundingGoal:       intOrDefault(input.FundingGoal, defaultFundingGoal),
		CurrentFunding:    intOrDefault(input.CurrentFunding, defaultCurrentFunding),
		FundingPercentage: intOrDefault(input.FundingPercentage, defaultFundingPercentage),
		DaysLeft:          intOrDefault(input.DaysLeft, defaultDaysLeft),
		Location:          fallback(input.Location, defaultEditorLocation),
		Section:           section,
		Remixes:           []store.RemixContribution{},
	}

	s.store.Prepend(record)
	return record, nil
}

// GenerateCover 以标题作为提示词生成封面。
func (s *EditorService) GenerateCover(ctx context.Context, title string) (*CoverImage, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}
	return s.gateway.GenerateCoverImage(ctx, title)
}

// SuggestTitles 推荐热点标题。
func (s *EditorService) SuggestTitles(ctx context.Context, topic string) ([]TrendingTitle, error) {
	return s.gateway.DiscoverTrendingTitles(ctx, topic)
}

// DraftArticle 根据标题撰写正文草稿。
func (s *EditorService) DraftArticle(ctx context.Context, title string) (string, bool, error) {
	if strings.TrimSpace(title) == "" {
		return "", false, ErrMissingTitle
	}
	return s.gateway.GenerateFullArticle(ctx, title)
}

// ExtractMetadata 为正文生成摘要、标签与建议标题。
func (s *EditorService) ExtractMetadata(ctx context.Context, content string) (Metadata, error) {
	if strings.TrimSpace(content) == "" {
		return Metadata{}, ErrMissingContent
	}
	return s.gateway.ExtractMetadata(ctx, content)
}

func fallback(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}

func intOrDefault(value *int, def int) *int {
	if value != nil {
		return store.Int(*value)
	}
	return store.Int(def)
}
