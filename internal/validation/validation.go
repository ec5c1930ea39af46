package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// IdentifierPattern допустимый идентификатор объекта и имя поля на сервере:
// строчная латинская буква, затем строчные буквы, цифры и "_", всего до 64 символов
var IdentifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// MaxLoginLen максимальная длина логина
const MaxLoginLen = 254

// ValidateIdentifier проверяет идентификатор объекта (например, io_lead)
func ValidateIdentifier(identifier string) error {
	if identifier == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if !IdentifierPattern.MatchString(identifier) {
		return fmt.Errorf("identifier %q must match %s", identifier, IdentifierPattern)
	}
	return nil
}

// ValidateFieldName проверяет имя поля записи
func ValidateFieldName(field string) error {
	if field == "" {
		return fmt.Errorf("field name cannot be empty")
	}
	if !IdentifierPattern.MatchString(field) {
		return fmt.Errorf("field name %q must match %s", field, IdentifierPattern)
	}
	return nil
}

// ValidateFields проверяет список полей и отсутствие повторов
func ValidateFields(fields []string) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := ValidateFieldName(f); err != nil {
			return err
		}
		if _, dup := seen[f]; dup {
			return fmt.Errorf("duplicate field %q", f)
		}
		seen[f] = struct{}{}
	}
	return nil
}

// ValidateLogin проверяет логин пользователя (обычно email)
func ValidateLogin(login string) error {
	if login == "" {
		return fmt.Errorf("login cannot be empty")
	}
	if len(login) > MaxLoginLen {
		return fmt.Errorf("login must not exceed %d characters", MaxLoginLen)
	}
	if strings.IndexFunc(login, unicode.IsSpace) >= 0 {
		return fmt.Errorf("login cannot contain whitespace")
	}
	return nil
}

// ValidatePassword проверяет, что пароль задан
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}
