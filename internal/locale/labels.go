package locale

// HomeLabels 是首页的固定文案。
type HomeLabels struct {
	Explore       string `json:"explore"`
	Creators      string `json:"creators"`
	SignIn        string `json:"signIn"`
	Featured      string `json:"featured"`
	Recommended   string `json:"recommended"`
	TakingOff     string `json:"takingOff"`
	Categories    string `json:"categories"`
	SeeAll        string `json:"seeAll"`
	PoweredBy     string `json:"poweredBy"`
	Slogan        string `json:"slogan"`
	RemixPitch    string `json:"remixPitch"`
	StartCreating string `json:"startCreating"`
}

// HomeLabelsFor 返回指定语言的首页文案。
func HomeLabelsFor(language string) HomeLabels {
	return HomeLabels{
		Explore:       Pick(language, "Explore", "探索"),
		Creators:      Pick(language, "Creators", "创作者中心"),
		SignIn:        Pick(language, "Sign In", "登录"),
		Featured:      Pick(language, "FEATURED", "精选推荐"),
		Recommended:   Pick(language, "RECOMMENDED", "为你推荐"),
		TakingOff:     Pick(language, "TAKING OFF", "蓄势待发"),
		Categories:    Pick(language, "CATEGORIES", "按类别浏览"),
		SeeAll:        Pick(language, "See all", "查看全部"),
		PoweredBy:     Pick(language, "POWERED BY SHUYONG AI", "数用AI 动力"),
		Slogan:        Pick(language, "Ignite every idea with intelligence.", "用智能，点亮你的每一个创意。"),
		RemixPitch:    Pick(language, "Integrated with Gemini 3.0, visitors can remix project visuals with one click.", "集成了最新的 Gemini 3.0 模型，访问者可以一键重构项目视觉，让分享更有趣。"),
		StartCreating: Pick(language, "Start Creating", "立即开始创作"),
	}
}
