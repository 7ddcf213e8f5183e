package i18n

import "strings"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "entity" or "name").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "no_attributes":
			msg = "公開する属性が指定されていません"
		case "blank_attribute":
			msg = "属性名が空です"
		case "as_with_multiple_attributes":
			msg = "複数の属性に :as は使用できません"
		case "compute_with_multiple_attributes":
			msg = "複数の属性に計算ブロックは使用できません"
		case "nil_entity":
			msg = "エンティティが指定されていません"
		case "unknown_entity":
			msg = "未知のエンティティ {name} です"
		case "unknown_func":
			msg = "未知の関数 {name} です"
		case "extends_cycle":
			msg = "継承が循環しています: {name}"
		}
	default: // "en"
		switch code {
		case "no_attributes":
			msg = "at least one attribute is required"
		case "blank_attribute":
			msg = "attribute name must not be blank"
		case "as_with_multiple_attributes":
			msg = "cannot use :as with multiple attributes"
		case "compute_with_multiple_attributes":
			msg = "cannot use a computed block with multiple attributes"
		case "nil_entity":
			msg = "an entity is required to build a representation"
		case "unknown_entity":
			msg = "unknown entity {name}"
		case "unknown_func":
			msg = "unknown function {name}"
		case "extends_cycle":
			msg = "extends cycle at {name}"
		}
	}
	if msg == "" {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
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
