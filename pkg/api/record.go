package api

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Record обобщенная запись: имя поля -> сырое JSON значение.
// Используется там, где форма записи известна только во время выполнения.
type Record map[string]json.RawMessage

// Value возвращает текстовое представление поля.
// Второй результат false, если поля нет или оно равно null.
//
//	"text"                 -> text
//	{"raw": "text"}        -> text
//	{"raw": ["1=a=Name"]}  -> Name
//	{"raw": 42}            -> "42"
//	42, true               -> "42", "true"
//	прочие объекты         -> компактный JSON
func (r Record) Value(field string) (string, bool) {
	raw, ok := r[field]
	if !ok {
		return "", false
	}
	return StringifyJSON(raw)
}

// StringifyJSON приводит сырое JSON значение к строке по правилам Record.Value
func StringifyJSON(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s, true
		}
	case '{':
		var wrapper struct {
			Raw json.RawMessage `json:"raw"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err == nil && len(wrapper.Raw) > 0 {
			if bytes.Equal(wrapper.Raw, []byte("null")) {
				return "", false
			}
			var s string
			if err := json.Unmarshal(wrapper.Raw, &s); err == nil {
				return s, true
			}
			var list OptionList
			if err := json.Unmarshal(trimmed, &list); err == nil {
				return list.Name(), true
			}
			if inner := bytes.TrimSpace(wrapper.Raw); inner[0] != '{' && inner[0] != '[' {
				return StringifyJSON(inner)
			}
		}
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err == nil {
			return n.String(), true
		}
		var b bool
		if err := json.Unmarshal(trimmed, &b); err == nil {
			return strconv.FormatBool(b), true
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return string(trimmed), true
	}
	return compact.String(), true
}
