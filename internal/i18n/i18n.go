// Package i18n holds the zh/en copy used by the journal summaries.
package i18n

import (
	"laleme/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	KeyHealthExcellent = "health.excellent"
	KeyHealthGood      = "health.good"
	KeyHealthFair      = "health.fair"
	KeyHealthPoor      = "health.poor"
)

var entries = map[string]map[language.Tag]string{
	KeyHealthExcellent: {
		language.Chinese: "节奏稳定，肠道状态极佳。",
		language.English: "Right on rhythm. Your gut is in great shape.",
	},
	KeyHealthGood: {
		language.Chinese: "状态还行，记得多喝水、多吃膳食纤维。",
		language.English: "Doing fine. Keep the water and fibre coming.",
	},
	KeyHealthFair: {
		language.Chinese: "本周还没有记录，留意一下肠道吧。",
		language.English: "Nothing logged this week. Time to check in.",
	},
	KeyHealthPoor: {
		language.Chinese: "还没有任何记录，开始第一次记录吧。",
		language.English: "No records yet. Log your first one.",
	},
}

var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.Chinese))
	for key, byTag := range entries {
		for tag, text := range byTag {
			if err := b.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Tag maps a profile language onto a BCP 47 tag; unknown values fall back
// to Chinese, the app's default.
func Tag(lang models.Language) language.Tag {
	if lang == models.LanguageEn {
		return language.English
	}
	return language.Chinese
}

func Text(lang models.Language, key string, args ...any) string {
	p := message.NewPrinter(Tag(lang), message.Catalog(messages))
	return p.Sprintf(key, args...)
}
