package handler

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/remixhub/internal/locale"
)

const (
	localeContextKey   = "__request_language"
	languageSessionKey = "lang"
)

// LocaleMiddleware resolves request language and sets headers for downstream caching.
// ?lang= 会写入会话，之后的请求沿用该语言。
func (a *API) LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		language := a.requestLanguage(c)
		if language == locale.LanguageEnglish {
			c.Header("Content-Language", "en-US")
		} else {
			c.Header("Content-Language", "zh-CN")
		}
		appendVaryHeader(c, "Accept-Language", "Cookie")
		c.Next()
	}
}

func (a *API) requestLanguage(c *gin.Context) string {
	if cached, exists := c.Get(localeContextKey); exists {
		if language, ok := cached.(string); ok {
			return language
		}
	}

	session := sessions.Default(c)
	language := locale.NormalizeLanguage(c.Query("lang"))
	if language != "" {
		session.Set(languageSessionKey, language)
		if err := session.Save(); err != nil {
			c.Error(err)
		}
	} else if stored, ok := session.Get(languageSessionKey).(string); ok {
		language = locale.NormalizeLanguage(stored)
	}
	if language == "" {
		language = locale.Resolve("", c.GetHeader("Accept-Language"))
	}

	c.Set(localeContextKey, language)
	return language
}

func appendVaryHeader(c *gin.Context, headers ...string) {
	existing := c.Writer.Header().Get("Vary")
	seen := make(map[string]struct{})
	order := make([]string, 0, len(headers))
	for _, token := range append(strings.Split(existing, ","), headers...) {
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		order = append(order, trimmed)
	}
	if len(order) > 0 {
		c.Header("Vary", strings.Join(order, ", "))
	}
}
