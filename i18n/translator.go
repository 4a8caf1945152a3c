package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "min").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type_mismatch":
			return "型が不正です"
		case "missing_required":
			return "必須プロパティが不足しています"
		case "count_mismatch":
			return "要素数が範囲外です"
		case "no_match":
			return "どの候補にも一致しません"
		case "ambiguous_match":
			return "複数の候補に一致しました"
		case "constraint_violation":
			return "制約に違反しています"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "type_mismatch":
			return "type mismatch"
		case "missing_required":
			return "required property missing"
		case "count_mismatch":
			return "element count out of range"
		case "no_match":
			return "no branch matched"
		case "ambiguous_match":
			return "more than one branch matched"
		case "constraint_violation":
			return "constraint violated"
		case "parse_error":
			return "parse error"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
