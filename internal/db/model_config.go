package db

import "gorm.io/gorm"

const (
	// RegionDomestic 表示国内模型平台。
	RegionDomestic = "domestic"
	// RegionInternational 表示海外模型平台。
	RegionInternational = "international"
)

const (
	// KindOpenAI 表示兼容 OpenAI Chat Completions 协议的平台。
	KindOpenAI = "openai"
	// KindAnthropic 表示 Anthropic Messages 协议。
	KindAnthropic = "anthropic"
)

// ModelConfig 描述一个可供 AI 助手调用的模型平台。
type ModelConfig struct {
	gorm.Model
	Key         string `gorm:"size:50;uniqueIndex;not null"`
	Name        string `gorm:"size:100;not null"`
	Provider    string `gorm:"size:100"`
	Region      string `gorm:"size:20;index"`
	Kind        string `gorm:"size:20;not null"`
	Position    int
	IsActive    bool
	APIKey      string `gorm:"type:text"`
	BaseURL     string `gorm:"size:255"`
	Version     string `gorm:"size:100"`
	ProModel    string `gorm:"size:100"`
	ImageModel  string `gorm:"size:100"`
	SearchModel string `gorm:"size:100"`
	Description string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (ModelConfig) TableName() string {
	return "model_configs"
}
