package api

import (
	"strings"
)

// RawString скалярное значение поля в формате сервера: {"raw": "..."}.
// Конвертация из строки только явная, через NewRawString.
type RawString struct {
	Value string `json:"raw"`
}

// NewRawString создает RawString из строки
func NewRawString(s string) RawString {
	return RawString{Value: s}
}

// String возвращает текстовое представление значения
func (r RawString) String() string {
	return r.Value
}

// Owner ссылка на владельца записи: {"raw": "<uuid>", "name": "<display name>"}
type Owner struct {
	ID   string `json:"raw"`
	Name string `json:"name,omitempty"`
}

// String возвращает идентификатор владельца
func (o Owner) String() string {
	return o.ID
}

// OptionList значение поля-списка: {"raw": ["id=identifier=name", ...]}
type OptionList struct {
	Raw []string `json:"raw"`
}

// part возвращает n-ю часть первого элемента Raw, разбитого по "="
func (o OptionList) part(n int) string {
	if len(o.Raw) == 0 {
		return ""
	}
	parts := strings.SplitN(o.Raw[0], "=", 3)
	if n >= len(parts) {
		return ""
	}
	return parts[n]
}

// ID возвращает идентификатор выбранной опции
func (o OptionList) ID() string { return o.part(0) }

// Identifier возвращает системное имя выбранной опции
func (o OptionList) Identifier() string { return o.part(1) }

// Name возвращает отображаемое имя выбранной опции
func (o OptionList) Name() string { return o.part(2) }

// String возвращает отображаемое имя
func (o OptionList) String() string {
	return o.Name()
}
