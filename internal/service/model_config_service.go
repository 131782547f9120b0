package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/remixhub/internal/db"
	"gorm.io/gorm"
)

// ErrModelNotFound 表示指定的模型配置不存在。
var ErrModelNotFound = errors.New("model config not found")

// ErrAIAPIKeyMissing 表示未提供必需的 AI 平台 API Key。
var ErrAIAPIKeyMissing = errors.New("api key is required")

// ErrInvalidRegion 表示未知的模型区域筛选条件。
var ErrInvalidRegion = errors.New("invalid model region")

const maskedKeySuffix = "••••••••"

// ModelConfigView 是对外展示的模型配置，API Key 已脱敏。
type ModelConfigView struct {
	ID          uint   `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Region      string `json:"region"`
	Kind        string `json:"kind"`
	IsActive    bool   `json:"isActive"`
	APIKey      string `json:"apiKey"`
	HasAPIKey   bool   `json:"hasApiKey"`
	BaseURL     string `json:"baseUrl"`
	Version     string `json:"version"`
	ProModel    string `json:"proModel,omitempty"`
	ImageModel  string `json:"imageModel,omitempty"`
	SearchModel string `json:"searchModel,omitempty"`
	Description string `json:"description"`
}

// ModelConfigInput 用于更新模型配置，nil 字段保持不变。
type ModelConfigInput struct {
	APIKey  *string
	BaseURL *string
	Version *string
}

// ProviderFactory 根据配置创建平台会话，测试中可替换为假实现。
type ProviderFactory func(cfg db.ModelConfig, httpClient *http.Client) Provider

// ModelConfigService 管理模型平台注册表，并为 AI 网关解析当前可用的平台。
type ModelConfigService struct {
	db         *gorm.DB
	httpClient *http.Client
	factory    ProviderFactory
}

// NewModelConfigService 构造 ModelConfigService。timeout 为 0 时请求不会超时。
func NewModelConfigService(gdb *gorm.DB, timeout time.Duration) *ModelConfigService {
	return &ModelConfigService{
		db:         gdb,
		httpClient: &http.Client{Timeout: timeout},
		factory:    defaultProviderFactory,
	}
}

// SetProviderFactory 替换平台构造方式，主要面向测试场景。
func (s *ModelConfigService) SetProviderFactory(factory ProviderFactory) {
	if factory == nil {
		s.factory = defaultProviderFactory
		return
	}
	s.factory = factory
}

func defaultProviderFactory(cfg db.ModelConfig, httpClient *http.Client) Provider {
	if cfg.Kind == db.KindAnthropic {
		return newAnthropicProvider(cfg.Name, cfg.APIKey, cfg.BaseURL, httpClient)
	}
	return newOpenAIProvider(cfg.Name, cfg.APIKey, cfg.BaseURL, httpClient)
}

// DefaultModelConfigs 返回内置的六个模型平台，顺序即解析顺序。
func DefaultModelConfigs() []db.ModelConfig {
	return []db.ModelConfig{
		{
			Key: "deepseek", Name: "DeepSeek-V3", Provider: "DeepSeek", Region: db.RegionDomestic, Kind: db.KindOpenAI,
			IsActive: true, BaseURL: "https://api.deepseek.com", Version: "deepseek-chat", ProModel: "deepseek-reasoner",
			Description: "国产大模型之光，极高性价比与推理能力。",
		},
		{
			Key: "qwen", Name: "通义千问 Qwen-Max", Provider: "Alibaba Cloud", Region: db.RegionDomestic, Kind: db.KindOpenAI,
			BaseURL: "https://dashscope.aliyuncs.com/compatible-mode/v1", Version: "qwen-max-latest", SearchModel: "qwen-max-latest",
			Description: "阿里通义千问旗舰模型，多模态能力出众。",
		},
		{
			Key: "baichuan", Name: "百川 Baichuan-4", Provider: "Baichuan AI", Region: db.RegionDomestic, Kind: db.KindOpenAI,
			BaseURL: "https://api.baichuan-ai.com/v1", Version: "Baichuan4",
			Description: "深耕中文语境，医疗与常识问答表现优异。",
		},
		{
			Key: "gemini", Name: "Gemini 3.0 Pro", Provider: "Google", Region: db.RegionInternational, Kind: db.KindOpenAI,
			IsActive: true, BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai", Version: "gemini-3-flash-preview",
			ProModel: "gemini-3-pro-preview", ImageModel: "imagen-4.0-generate-001",
			Description: "谷歌原生多模态大模型，长文本处理专家。",
		},
		{
			Key: "gpt4", Name: "GPT-4o", Provider: "OpenAI", Region: db.RegionInternational, Kind: db.KindOpenAI,
			IsActive: true, BaseURL: "https://api.openai.com/v1", Version: "gpt-4o-2024-08-06",
			ImageModel: "gpt-image-1", SearchModel: "gpt-4o-search-preview",
			Description: "全球大模型标杆，全能型智慧引擎。",
		},
		{
			Key: "claude", Name: "Claude 3.5 Sonnet", Provider: "Anthropic", Region: db.RegionInternational, Kind: db.KindAnthropic,
			BaseURL: "https://api.anthropic.com", Version: "claude-3-5-sonnet-20240620",
			Description: "更具人性化的语言风格，代码编写能力卓越。",
		},
	}
}

// Seed 在注册表为空时写入内置平台，apiKeys 以平台 Key 索引。
func (s *ModelConfigService) Seed(apiKeys map[string]string) error {
	var count int64
	if err := s.db.Model(&db.ModelConfig{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count model configs: %w", err)
	}
	if count > 0 {
		return nil
	}

	configs := DefaultModelConfigs()
	for i := range configs {
		configs[i].Position = i
		configs[i].APIKey = strings.TrimSpace(apiKeys[configs[i].Key])
	}
	if err := s.db.Create(&configs).Error; err != nil {
		return fmt.Errorf("seed model configs: %w", err)
	}
	return nil
}

// List 按区域列出模型配置，region 为空时返回全部。
func (s *ModelConfigService) List(region string) ([]ModelConfigView, error) {
	query := s.db.Order("position ASC")
	switch strings.TrimSpace(region) {
	case "":
	case db.RegionDomestic, db.RegionInternational:
		query = query.Where("region = ?", strings.TrimSpace(region))
	default:
		return nil, ErrInvalidRegion
	}

	var configs []db.ModelConfig
	if err := query.Find(&configs).Error; err != nil {
		return nil, fmt.Errorf("list model configs: %w", err)
	}

	views := make([]ModelConfigView, 0, len(configs))
	for _, cfg := range configs {
		views = append(views, newModelConfigView(cfg))
	}
	return views, nil
}

// ActiveCount 返回已启用且配置了 API Key 的平台数量。
func (s *ModelConfigService) ActiveCount() (int, error) {
	var count int64
	if err := s.db.Model(&db.ModelConfig{}).
		Where("is_active = ? AND api_key <> ''", true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count active model configs: %w", err)
	}
	return int(count), nil
}

// Toggle 切换模型的启用状态。
func (s *ModelConfigService) Toggle(id uint) (ModelConfigView, error) {
	cfg, err := s.find(id)
	if err != nil {
		return ModelConfigView{}, err
	}

	cfg.IsActive = !cfg.IsActive
	if err := s.db.Model(&cfg).Update("is_active", cfg.IsActive).Error; err != nil {
		return ModelConfigView{}, fmt.Errorf("toggle model config: %w", err)
	}
	return newModelConfigView(cfg), nil
}

// Update 修改 API Key、接口地址或模型版本。
func (s *ModelConfigService) Update(id uint, input ModelConfigInput) (ModelConfigView, error) {
	cfg, err := s.find(id)
	if err != nil {
		return ModelConfigView{}, err
	}

	updates := map[string]interface{}{}
	if input.APIKey != nil {
		cfg.APIKey = strings.TrimSpace(*input.APIKey)
		updates["api_key"] = cfg.APIKey
	}
	if input.BaseURL != nil {
		cfg.BaseURL = strings.TrimSpace(*input.BaseURL)
		updates["base_url"] = cfg.BaseURL
	}
	if input.Version != nil {
		if version := strings.TrimSpace(*input.Version); version != "" {
			cfg.Version = version
			updates["version"] = version
		}
	}
	if len(updates) == 0 {
		return newModelConfigView(cfg), nil
	}

	if err := s.db.Model(&cfg).Updates(updates).Error; err != nil {
		return ModelConfigView{}, fmt.Errorf("update model config: %w", err)
	}
	return newModelConfigView(cfg), nil
}

// ResolveProvider 按注册顺序选出第一个已启用、已配置 API Key 且具备所需能力的平台。
// 每次调用都会创建新的平台会话。
func (s *ModelConfigService) ResolveProvider(capability Capability) (ResolvedProvider, error) {
	var configs []db.ModelConfig
	if err := s.db.Where("is_active = ?", true).Order("position ASC").Find(&configs).Error; err != nil {
		return ResolvedProvider{}, fmt.Errorf("load model configs: %w", err)
	}

	for _, cfg := range configs {
		if strings.TrimSpace(cfg.APIKey) == "" || !supportsCapability(cfg, capability) {
			continue
		}
		return ResolvedProvider{
			Key:      cfg.Key,
			Label:    cfg.Name,
			Provider: s.factory(cfg, s.httpClient),
			Models: ModelSet{
				Text:   cfg.Version,
				Pro:    cfg.ProModel,
				Image:  cfg.ImageModel,
				Search: cfg.SearchModel,
			},
		}, nil
	}
	return ResolvedProvider{}, ErrNoActiveProvider
}

// TestConnection 调用平台的模型列表接口验证 API Key 的有效性。
func (s *ModelConfigService) TestConnection(ctx context.Context, id uint) error {
	cfg, err := s.find(id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return ErrAIAPIKeyMissing
	}
	return s.factory(cfg, s.httpClient).Ping(ctx)
}

func (s *ModelConfigService) find(id uint) (db.ModelConfig, error) {
	var cfg db.ModelConfig
	if err := s.db.First(&cfg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.ModelConfig{}, ErrModelNotFound
		}
		return db.ModelConfig{}, fmt.Errorf("load model config: %w", err)
	}
	return cfg, nil
}

func supportsCapability(cfg db.ModelConfig, capability Capability) bool {
	switch capability {
	case CapabilityImage:
		return cfg.Kind != db.KindAnthropic && strings.TrimSpace(cfg.ImageModel) != ""
	default:
		return strings.TrimSpace(cfg.Version) != ""
	}
}

func newModelConfigView(cfg db.ModelConfig) ModelConfigView {
	return ModelConfigView{
		ID:          cfg.ID,
		Key:         cfg.Key,
		Name:        cfg.Name,
		Provider:    cfg.Provider,
		Region:      cfg.Region,
		Kind:        cfg.Kind,
		IsActive:    cfg.IsActive,
		APIKey:      maskAPIKey(cfg.APIKey),
		HasAPIKey:   strings.TrimSpace(cfg.APIKey) != "",
		BaseURL:     cfg.BaseURL,
		Version:     cfg.Version,
		ProModel:    cfg.ProModel,
		ImageModel:  cfg.ImageModel,
		SearchModel: cfg.SearchModel,
		Description: cfg.Description,
	}
}

// maskAPIKey 仅保留前四个字符，过短的 Key 完全隐藏。
func maskAPIKey(key string) string {
	runes := []rune(strings.TrimSpace(key))
	if len(runes) == 0 {
		return ""
	}
	if len(runes) <= 8 {
		return maskedKeySuffix
	}
	return string(runes[:4]) + maskedKeySuffix
}
