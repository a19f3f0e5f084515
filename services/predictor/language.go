package predictor

import (
	"strings"
	"unicode"
)

// Language detection for the buzz-weighted strategy runs an explicit
// priority-ordered rule chain: title script check, then language-code
// bucket, then known-title keyword match. Each rule is pure and testable
// on its own. The code bucket deliberately collapses the major Indian
// language codes into a single "Hindi" label; that lossy mapping is the
// established output contract, so it stays.

type detectRule func(title, langCode string) (string, bool)

var detectRules = []detectRule{
	detectByScript,
	detectByLanguageCode,
	detectByKeyword,
}

// DetectLanguage resolves a display language for a title, defaulting to
// English when no rule matches.
func DetectLanguage(title, langCode string) string {
	for _, rule := range detectRules {
		if lang, ok := rule(title, langCode); ok {
			return lang
		}
	}
	return "English"
}

// detectByScript inspects the title for CJK, kana and Devanagari runes.
func detectByScript(title, _ string) (string, bool) {
	for _, r := range title {
		switch {
		case unicode.Is(unicode.Han, r):
			return "Chinese", true
		case unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
			return "Japanese", true
		case unicode.Is(unicode.Devanagari, r):
			return "Hindi", true
		}
	}
	return "", false
}

// hindiBucketCodes are the ISO 639-1 codes collapsed into the Hindi label.
var hindiBucketCodes = map[string]bool{
	"hi": true, "te": true, "ta": true, "ml": true, "kn": true,
	"bn": true, "gu": true, "pa": true, "or": true,
}

func detectByLanguageCode(_, langCode string) (string, bool) {
	if hindiBucketCodes[langCode] {
		return "Hindi", true
	}
	return "", false
}

// indianTitleKeywords catches well-known Indian releases whose records
// carry neither a native-script title nor a useful language code.
var indianTitleKeywords = []string{
	"kalki", "adipurush", "indian 2", "jawan", "pathaan",
	"rrr", "kgf", "pushpa", "bahubali",
}

func detectByKeyword(title, _ string) (string, bool) {
	lower := strings.ToLower(title)
	for _, kw := range indianTitleKeywords {
		if strings.Contains(lower, kw) {
			return "Hindi", true
		}
	}
	return "", false
}

// languageNames is the direct lookup used by the raw-popularity strategy.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"te": "Telugu",
	"ta": "Tamil",
	"kn": "Kannada",
	"ml": "Malayalam",
	"ko": "Korean",
	"ja": "Japanese",
	"fr": "French",
	"de": "German",
	"es": "Spanish",
	"it": "Italian",
	"pt": "Portuguese",
}

// LanguageName maps an original-language code to a display name,
// defaulting to English.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}
