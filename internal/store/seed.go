package store

// SeedRecords 返回进程启动时载入的固定记录。
func SeedRecords() []Record {
	return []Record{
		{
			ID:           "hero-1",
			Title:        "Momentum Collection: 轻量与耐用的极致平衡",
			Excerpt:      "专为日常通勤、周末逃离设计的全系列轻质背包。",
			Content:      "## 项目背景\n在城市生活中，我们需要一种既能保护昂贵电子设备，又不会给肩膀带来负担的载体。Momentum 系列应运而生。\n\n## 核心设计\n采用了创新的 X-Pac 复合面料，不仅完全防水，而且重量比传统帆布轻 30%。\n\n## AI 优化说明\n本项目由数用AI提供全方位的市场趋势分析，确保每一个设计细节都符合当代城市人的审美。",
			Author:       "ALPAKA Design",
			AuthorAvatar: "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&w=100&h=100&q=80",
			Date:         "2025-01-01",
			Views:        15400,
			Comments:     89,
			Category:     "设计",
			Tags:         []string{"背包", "旅行"},
			CoverURL:     "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=1200&q=80",

			FundingGoal:       Int(50000),
			CurrentFunding:    Int(250000),
			FundingPercentage: Int(500),
			DaysLeft:          Int(21),
			Location:          "墨尔本, 澳大利亚",
			Section:           SectionHeroFeatured,
			Remixes:           []RemixContribution{},
		},
		{
			ID:           "taking-off-1",
			Title:        "ZenFocus: 墨水屏智能桌面生产力中心",
			Excerpt:      "拒绝手机干扰，让深度工作成为一种享受。",
			Content:      "集成了番茄钟、待办事项和环境音效的极简桌面设备。",
			Author:       "Aura Studio",
			AuthorAvatar: "https://api.dicebear.com/7.x/initials/svg?seed=AS",
			Date:         "2025-01-01",
			Views:        8900,
			Comments:     24,
			Category:     "科技",
			Tags:         []string{"效率", "极简"},
			CoverURL:     "https://images.unsplash.com/photo-1506784365847-bbad939e9335?auto=format&fit=crop&w=600&q=80",

			FundingGoal:       Int(10000),
			CurrentFunding:    Int(85600),
			FundingPercentage: Int(856),
			DaysLeft:          Int(28),
			Location:          "深圳, 中国",
			Section:           SectionTakingOff,
			Remixes:           []RemixContribution{},
		},
	}
}
