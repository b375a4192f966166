package i18n

// Translator retrieves localized messages for adjustment causes.
// data provides optional metadata to embed in the message (for example,
// "min" or "max").
type Translator interface {
	Message(cause string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(cause string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch cause {
		case "type":
			return "型が不正です"
		case "required":
			return "必須項目がありません"
		case "null":
			return "null は許可されていません"
		case "empty":
			return "空文字列は許可されていません"
		case "only":
			return "許可された値ではありません"
		case "min_value":
			return "値が小さすぎます"
		case "max_value":
			return "値が大きすぎます"
		case "min_length":
			return "短すぎます"
		case "max_length":
			return "長すぎます"
		case "pattern":
			return "形式が不正です"
		case "checksum":
			return "チェックサムが一致しません"
		case "array":
			return "配列ではありません"
		case "converter":
			return "変換に失敗しました"
		}
	default: // "en"
		switch cause {
		case "type":
			return "invalid type"
		case "required":
			return "required value missing"
		case "null":
			return "null is not allowed"
		case "empty":
			return "empty string is not allowed"
		case "only":
			return "value is not one of the allowed values"
		case "min_value":
			return "value too small"
		case "max_value":
			return "value too big"
		case "min_length":
			return "too short"
		case "max_length":
			return "too long"
		case "pattern":
			return "pattern mismatch"
		case "checksum":
			return "checksum mismatch"
		case "array":
			return "not an array"
		case "converter":
			return "conversion failed"
		}
	}
	return cause
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// Dictionary returns the built-in Translator for lang ("en"/"ja"). Unknown languages fall
// back to English.
func Dictionary(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) { currentTranslator = Dictionary(lang) }

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given cause using the current Translator.
func T(cause string, data map[string]string) string { return currentTranslator.Message(cause, data) }
