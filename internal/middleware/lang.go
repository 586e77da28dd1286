package middleware

import (
	"github.com/haierkeys/notes-app-service/pkg/app"
	"github.com/haierkeys/notes-app-service/pkg/code"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// LangWithTranslator 创建带翻译器的语言中间件（支持依赖注入）
// The language is resolved per request from the "lang" query, the "lang"
// header, then Accept-Language, and stored on the request context only.
func LangWithTranslator(uni *ut.UniversalTranslator) gin.HandlerFunc {

	return func(c *gin.Context) {

		var lang string

		if s, exist := c.GetQuery("lang"); exist {
			lang = s
		} else if s = c.GetHeader("lang"); len(s) != 0 {
			lang = s
		} else if s = c.GetHeader("Accept-Language"); len(s) != 0 {
			lang = s
		}

		lang = code.NormalizeLang(lang)
		c.Set(app.LangKey, lang)

		if uni != nil {
			trans, found := uni.GetTranslator(TranslatorLocale(lang))
			if !found {
				trans, _ = uni.GetTranslator(code.FALLBACK_LNG)
			}
			c.Set(app.TransKey, trans)
		}

		c.Next()
	}
}

// TranslatorLocale maps a response language onto the validator translator locale.
func TranslatorLocale(lang string) string {
	if lang == "zh_cn" {
		return "zh"
	}
	return lang
}
