package service

import (
	"fmt"
	"strings"

	"github.com/remixhub/internal/locale"
	"github.com/remixhub/internal/store"
	"github.com/shopspring/decimal"
)

// AllCategories 是发现页表示不过滤分类的选项。
const AllCategories = "全部"

var (
	homeCategories      = []string{"设计", "科技", "游戏", "艺术", "电影", "出版", "美食", "音乐"}
	discoveryCategories = []string{AllCategories, "设计", "科技", "艺术", "手工", "出版"}
)

const recommendedLimit = 4

// HomeFeed 是首页所需的全部数据。
type HomeFeed struct {
	Language    string                           `json:"language"`
	Labels      locale.HomeLabels                `json:"labels"`
	Featured    *store.Record                    `json:"featured"`
	Recommended []store.Record                   `json:"recommended"`
	TakingOff   []store.Record                   `json:"takingOff"`
	BySection   map[store.Section][]store.Record `json:"bySection"`
	Categories  []string                         `json:"categories"`
}

// DiscoveryResult 是发现页的检索结果。
type DiscoveryResult struct {
	Query      string         `json:"query"`
	Category   string         `json:"category"`
	Categories []string       `json:"categories"`
	Records    []store.Record `json:"records"`
}

// DashboardStats 汇总后台仪表盘的统计数据。
type DashboardStats struct {
	RecordCount     int             `json:"recordCount"`
	TotalViews      int             `json:"totalViews"`
	TotalComments   int             `json:"totalComments"`
	RemixCount      int             `json:"remixCount"`
	FundingGoal     decimal.Decimal `json:"fundingGoal"`
	FundingRaised   decimal.Decimal `json:"fundingRaised"`
	FundedPercent   decimal.Decimal `json:"fundedPercent"`
	ActiveProviders int             `json:"activeProviders"`
	SystemStatus    string          `json:"systemStatus"`
}

// FeedService 基于内容存储生成首页、发现页与仪表盘的只读视图。
type FeedService struct {
	store  *store.Store
	models *ModelConfigService
}

// NewFeedService 构造 FeedService。
func NewFeedService(records *store.Store, models *ModelConfigService) *FeedService {
	return &FeedService{store: records, models: models}
}

// Home 返回首页数据：第一条为精选，其后四条为推荐，全部记录进入蓄势待发列表。
func (s *FeedService) Home(language string) HomeFeed {
	records := s.store.List()
	lang := locale.Resolve(language, "")

	feed := HomeFeed{
		Language:    lang,
		Labels:      locale.HomeLabelsFor(lang),
		Recommended: []store.Record{},
		TakingOff:   records,
		BySection:   make(map[store.Section][]store.Record, len(store.Sections)),
		Categories:  append([]string(nil), homeCategories...),
	}
	if len(records) > 0 {
		featured := records[0]
		feed.Featured = &featured
	}
	if len(records) > 1 {
		end := min(len(records), 1+recommendedLimit)
		feed.Recommended = records[1:end]
	}
	for _, section := range store.Sections {
		feed.BySection[section] = []store.Record{}
	}
	for _, record := range records {
		if record.Section == "" {
			continue
		}
		feed.BySection[record.Section] = append(feed.BySection[record.Section], record)
	}
	return feed
}

// Discover 按标题关键字（不区分大小写）与分类过滤记录。
func (s *FeedService) Discover(query, category string) DiscoveryResult {
	category = strings.TrimSpace(category)
	if category == "" {
		category = AllCategories
	}
	needle := strings.ToLower(query)

	matched := make([]store.Record, 0)
	for _, record := range s.store.List() {
		if !strings.Contains(strings.ToLower(record.Title), needle) {
			continue
		}
		if category != AllCategories && record.Category != category {
			continue
		}
		matched = append(matched, record)
	}

	return DiscoveryResult{
		Query:      query,
		Category:   category,
		Categories: append([]string(nil), discoveryCategories...),
		Records:    matched,
	}
}

// Dashboard 汇总记录、重构作品与筹款数据。
func (s *FeedService) Dashboard() (DashboardStats, error) {
	records := s.store.List()
	stats := DashboardStats{
		RecordCount:   len(records),
		FundingGoal:   decimal.Zero,
		FundingRaised: decimal.Zero,
		FundedPercent: decimal.Zero,
	}

	for _, record := range records {
		stats.TotalViews += record.Views
		stats.TotalComments += record.Comments
		stats.RemixCount += len(record.Remixes)
		if record.FundingGoal != nil {
			stats.FundingGoal = stats.FundingGoal.Add(decimal.NewFromInt(int64(*record.FundingGoal)))
		}
		if record.CurrentFunding != nil {
			stats.FundingRaised = stats.FundingRaised.Add(decimal.NewFromInt(int64(*record.CurrentFunding)))
		}
	}
	if stats.FundingGoal.IsPositive() {
		stats.FundedPercent = stats.FundingRaised.Div(stats.FundingGoal).Mul(decimal.NewFromInt(100)).Round(2)
	}

	if s.models != nil {
		active, err := s.models.ActiveCount()
		if err != nil {
			return DashboardStats{}, fmt.Errorf("dashboard providers: %w", err)
		}
		stats.ActiveProviders = active
	}
	stats.SystemStatus = "稳定"
	if stats.ActiveProviders == 0 {
		stats.SystemStatus = "未配置模型"
	}
	return stats, nil
}
