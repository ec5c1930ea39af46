package handlers

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/iudanet/recordsync/internal/models"
	"github.com/iudanet/recordsync/internal/schema"
	"github.com/iudanet/recordsync/internal/validation"
)

// KeyField поле с ключом записи
const KeyField = schema.DefaultKeyAlias

// NumberField вычисляемое поле с порядковым номером записи объекта
func NumberField(identifier string) string {
	return identifier + "_number"
}

// renderRecord представление записи в ответе: строки оборачиваются в {"raw": ...},
// ключ и номер добавляются как вычисляемые поля.
// Непустой fields ограничивает набор полей ответа.
func renderRecord(rec *models.StoredRecord, fields []string) map[string]any {
	out := make(map[string]any, len(rec.Fields)+2)
	for name, value := range rec.Fields {
		if s, ok := value.(string); ok {
			out[name] = rawValue{Raw: s}
		} else {
			out[name] = value
		}
	}
	out[KeyField] = rawValue{Raw: rec.Key}
	out[NumberField(rec.Identifier)] = rawValue{Raw: strconv.FormatInt(rec.Number, 10)}

	if len(fields) == 0 {
		return out
	}
	filtered := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := out[f]; ok {
			filtered[f] = v
		}
	}
	return filtered
}

type rawValue struct {
	Raw string `json:"raw"`
}

// parseFields разбирает параметр ?fields=a,b
func parseFields(query string) ([]string, error) {
	if query == "" {
		return nil, nil
	}
	var fields []string
	for _, f := range strings.Split(query, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	if err := validation.ValidateFields(fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// decodePayload разбирает тело create/update.
// Значения вида {"raw": v} разворачиваются; ключ и номер, заданные клиентом, игнорируются.
func decodePayload(data []byte, identifier string) (map[string]any, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("body must be a JSON object: %w", err)
	}

	fields := make(map[string]any, len(payload))
	for name, raw := range payload {
		if name == KeyField || name == NumberField(identifier) {
			continue
		}
		if err := validation.ValidateFieldName(name); err != nil {
			return nil, err
		}

		var value any
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		if obj, ok := value.(map[string]any); ok {
			if inner, ok := obj["raw"]; ok {
				value = inner
			}
		}
		fields[name] = value
	}
	return fields, nil
}

// mergeFields применяет изменения; null удаляет поле
func mergeFields(current, changes map[string]any) map[string]any {
	merged := maps.Clone(current)
	if merged == nil {
		merged = make(map[string]any, len(changes))
	}
	for name, value := range changes {
		if value == nil {
			delete(merged, name)
			continue
		}
		merged[name] = value
	}
	return merged
}
