package i18n

import "sync/atomic"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	expected := data["expected"]
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			if expected != "" {
				return "型が不正です (期待: " + expected + ")"
			}
			return "型が不正です"
		case "too_short":
			return "1文字以上の文字列が必要です"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			if expected != "" {
				return "invalid type: expected " + expected
			}
			return "invalid type"
		case "too_short":
			return "expected a string with a length of more than 0"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). A nil Translator restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return current.Load().tr.Message(code, data) }
