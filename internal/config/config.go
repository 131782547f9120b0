package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr      string
	Port            string
	GinMode         string
	SessionSecret   string
	DatabaseDSN     string
	CORSOrigins     []string
	SeedDemoRecords int
	// RequestStateTTL 是已结束请求状态的保留时长。
	RequestStateTTL time.Duration
	Log             LogConfig
	AI              AIConfig
}

// LogConfig 控制 zap 日志输出。
type LogConfig struct {
	Level    string
	Encoding string
}

// AIConfig 描述访问各家模型平台所需的凭据。
type AIConfig struct {
	// Timeout 为 0 时不设置超时，挂起的调用会一直等待。
	Timeout         time.Duration
	OpenAIAPIKey    string
	DeepSeekAPIKey  string
	DashScopeAPIKey string
	BaichuanAPIKey  string
	GeminiAPIKey    string
	AnthropicAPIKey string
}

// Load 从环境变量读取应用配置，并为缺失项提供默认值。
// 当前目录下存在 .env 时会先载入其中的变量，已存在的环境变量不会被覆盖。
func Load() AppConfig {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SESSION_SECRET", "remixhub-dev-secret")
	v.SetDefault("DATABASE_DSN", "file:remixhub?mode=memory&cache=shared")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("SEED_DEMO_RECORDS", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_ENCODING", "console")
	v.SetDefault("AI_TIMEOUT", "0s")
	v.SetDefault("REQUEST_STATE_TTL", "30m")

	port := strings.TrimSpace(v.GetString("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(v.GetString("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	seed := v.GetInt("SEED_DEMO_RECORDS")
	if seed < 0 {
		seed = 0
	}

	return AppConfig{
		ListenAddr:      listenAddr,
		Port:            port,
		GinMode:         strings.TrimSpace(v.GetString("GIN_MODE")),
		SessionSecret:   strings.TrimSpace(v.GetString("SESSION_SECRET")),
		DatabaseDSN:     strings.TrimSpace(v.GetString("DATABASE_DSN")),
		CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),
		SeedDemoRecords: seed,
		RequestStateTTL: v.GetDuration("REQUEST_STATE_TTL"),
		Log: LogConfig{
			Level:    strings.TrimSpace(v.GetString("LOG_LEVEL")),
			Encoding: strings.TrimSpace(v.GetString("LOG_ENCODING")),
		},
		AI: AIConfig{
			Timeout:         v.GetDuration("AI_TIMEOUT"),
			OpenAIAPIKey:    strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
			DeepSeekAPIKey:  strings.TrimSpace(v.GetString("DEEPSEEK_API_KEY")),
			DashScopeAPIKey: strings.TrimSpace(v.GetString("DASHSCOPE_API_KEY")),
			BaichuanAPIKey:  strings.TrimSpace(v.GetString("BAICHUAN_API_KEY")),
			GeminiAPIKey:    strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
			AnthropicAPIKey: strings.TrimSpace(v.GetString("ANTHROPIC_API_KEY")),
		},
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
