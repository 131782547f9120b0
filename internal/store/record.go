package store

import "slices"

// Section 表示记录出现在首页的哪个版块。
type Section string

const (
	SectionHeroFeatured     Section = "hero-featured"
	SectionHeroRecommended  Section = "hero-recommended"
	SectionSuccessStories   Section = "success-stories"
	SectionFreshFavorites   Section = "fresh-favorites"
	SectionPromosMid        Section = "promos-mid"
	SectionInterviews       Section = "interviews"
	SectionTakingOff        Section = "taking-off"
	SectionCrowdfundingTips Section = "crowdfunding-tips"
	SectionNearYou          Section = "near-you"
	SectionHomeStretch      Section = "home-stretch"
	SectionCreatorsCorner   Section = "creators-corner"
)

// Sections 按首页展示顺序列出全部版块。
var Sections = []Section{
	SectionHeroFeatured,
	SectionHeroRecommended,
	SectionSuccessStories,
	SectionFreshFavorites,
	SectionPromosMid,
	SectionInterviews,
	SectionTakingOff,
	SectionCrowdfundingTips,
	SectionNearYou,
	SectionHomeStretch,
	SectionCreatorsCorner,
}

// ParseSection 校验版块名称，未知值返回 false。
func ParseSection(raw string) (Section, bool) {
	candidate := Section(raw)
	if slices.Contains(Sections, candidate) {
		return candidate, true
	}
	return "", false
}

// RemixContribution 是访问者基于 AI 对项目视觉的一次重构。
type RemixContribution struct {
	ID          string `json:"id"`
	VisitorName string `json:"visitorName"`
	Prompt      string `json:"prompt"`
	ImageURL    string `json:"imageUrl"`
	Score       int    `json:"score"`
	CreatedAt   string `json:"createdAt"`
}

// Record 是一个展示/众筹项目。
// FundingPercentage 独立存储，不从 CurrentFunding/FundingGoal 推导，两者可以不一致。
type Record struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Excerpt      string   `json:"excerpt"`
	Content      string   `json:"content"`
	Author       string   `json:"author"`
	AuthorAvatar string   `json:"authorAvatar,omitempty"`
	Date         string   `json:"date"`
	Views        int      `json:"views"`
	Comments     int      `json:"comments"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`

	CoverURL   string `json:"coverUrl,omitempty"`
	AIRemixURL string `json:"aiRemixUrl,omitempty"`
	VideoURL   string `json:"videoUrl,omitempty"`

	FundingGoal       *int   `json:"fundingGoal,omitempty"`
	CurrentFunding    *int   `json:"currentFunding,omitempty"`
	FundingPercentage *int   `json:"fundingPercentage,omitempty"`
	DaysLeft          *int   `json:"daysLeft,omitempty"`
	Location          string `json:"location,omitempty"`

	Section    Section `json:"section,omitempty"`
	IsFeatured bool    `json:"isFeatured,omitempty"`

	Remixes []RemixContribution `json:"remixes"`
}

// Clone 返回深拷贝，调用方修改副本不会影响存储中的记录。
func (r Record) Clone() Record {
	out := r
	out.Tags = slices.Clone(r.Tags)
	out.Remixes = slices.Clone(r.Remixes)
	out.FundingGoal = cloneInt(r.FundingGoal)
	out.CurrentFunding = cloneInt(r.CurrentFunding)
	out.FundingPercentage = cloneInt(r.FundingPercentage)
	out.DaysLeft = cloneInt(r.DaysLeft)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if out.Remixes == nil {
		out.Remixes = []RemixContribution{}
	}
	return out
}

// FindRemix 返回指定 id 的重构作品下标，不存在时返回 -1。
func (r Record) FindRemix(id string) int {
	return slices.IndexFunc(r.Remixes, func(remix RemixContribution) bool {
		return remix.ID == id
	})
}

// Int 便于构造可选数值字段。
func Int(v int) *int {
	return &v
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}
