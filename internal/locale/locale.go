package locale

import "strings"

const (
	LanguageChinese = "zh"
	LanguageEnglish = "en"
)

// NormalizeLanguage 将语言标记归一为 zh 或 en，无法识别时返回空字符串。
func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "zh") || trimmed == "cn" {
		return LanguageChinese
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

func LanguageFromAcceptLanguage(header string) string {
	trimmed := strings.ToLower(strings.TrimSpace(header))
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "zh") {
		return LanguageChinese
	}
	if strings.Contains(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

// Resolve 优先使用显式指定的语言，其次是 Accept-Language，默认中文。
func Resolve(explicit, acceptLanguage string) string {
	if lang := NormalizeLanguage(explicit); lang != "" {
		return lang
	}
	if lang := LanguageFromAcceptLanguage(acceptLanguage); lang != "" {
		return lang
	}
	return LanguageChinese
}
