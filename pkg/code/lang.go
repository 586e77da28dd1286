package code

import (
	"errors"
	"strings"
	"sync/atomic"
)

// lang stores the English and Chinese text of a code
// lang 用来存储英文和中文文本
type lang struct {
	en    string // English // 英文
	zh_cn string // Chinese // 中文
}

const FALLBACK_LNG = "en"

var supportedLanguages = []string{"en", "zh_cn"}

// Default language is English // 默认语言为英文
var lng atomic.Value

func init() {
	lng.Store(FALLBACK_LNG)
}

// GetMessage returns the message in the global default language
// GetMessage 按全局默认语言返回消息
func (l lang) GetMessage() string {
	return l.GetMessageIn(GetGlobalDefaultLang())
}

// GetMessageIn returns the message in the given language, falling back to English
// GetMessageIn 按指定语言返回消息，缺失时回退到英文
func (l lang) GetMessageIn(language string) string {
	switch NormalizeLang(language) {
	case "zh_cn":
		if l.zh_cn != "" {
			return l.zh_cn
		}
	}
	return l.en
}

// NormalizeLang maps "zh-CN", "zh" and friends onto a supported key
func NormalizeLang(language string) string {
	language = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(language), "-", "_"))
	if strings.HasPrefix(language, "zh") {
		return "zh_cn"
	}
	for _, s := range supportedLanguages {
		if s == language {
			return s
		}
	}
	return FALLBACK_LNG
}

// GetSupportedLanguages 返回支持的语言列表
func GetSupportedLanguages() []string {
	return append([]string{}, supportedLanguages...)
}

// SetGlobalDefaultLang sets the global default language
// SetGlobalDefaultLang 设置全局默认语言
func SetGlobalDefaultLang(language string) error {
	for _, s := range supportedLanguages {
		if s == language {
			lng.Store(s)
			return nil
		}
	}
	lng.Store(FALLBACK_LNG)
	return errors.New("unsupported language type, set defaulting to " + FALLBACK_LNG)
}

// GetGlobalDefaultLang gets the global default language
// GetGlobalDefaultLang 获取全局默认语言
func GetGlobalDefaultLang() string {
	if s, ok := lng.Load().(string); ok && s != "" {
		return s
	}
	return FALLBACK_LNG
}
