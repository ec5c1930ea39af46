package models

import (
	"strings"

	"github.com/iudanet/recordsync/internal/schema"
	"github.com/iudanet/recordsync/pkg/api"
)

// LeadIdentifier идентификатор объекта лидов на сервере
const LeadIdentifier = "io_lead"

// Lead запись лида в том виде, в котором ее возвращает сервер
type Lead struct {
	ID         *api.RawString `json:"io_uuid,omitempty"`
	FirstName  *api.RawString `json:"io_first_name,omitempty"`
	LastName   *api.RawString `json:"io_last_name,omitempty"`
	Email      *api.RawString `json:"io_email,omitempty"`
	LeadNumber *api.RawString `json:"io_lead_number,omitempty"` // вычисляется сервером
	Owner      *api.Owner     `json:"io_owner,omitempty"`
}

// String возвращает поля через "-", отсутствующие поля пустые
func (l Lead) String() string {
	return strings.Join([]string{
		rawString(l.ID), rawString(l.FirstName), rawString(l.LastName),
		rawString(l.Email), rawString(l.LeadNumber), ownerString(l.Owner),
	}, "-")
}

// LeadData тело create и update для лида
type LeadData struct {
	ID        string `json:"io_uuid,omitempty"`
	FirstName string `json:"io_first_name,omitempty"`
	LastName  string `json:"io_last_name,omitempty"`
	Email     string `json:"io_email,omitempty"`
	Owner     string `json:"io_owner,omitempty"`
}

// String возвращает поля через "-"
func (d LeadData) String() string {
	return strings.Join([]string{d.ID, d.FirstName, d.LastName, d.Email, d.Owner}, "-")
}

// LeadShape форма входящей записи; ключ определяется по alias io_uuid
func LeadShape() schema.Shape {
	return schema.Shape{
		Name: "Lead",
		Fields: []schema.Field{
			{Name: "Id", Alias: "io_uuid"},
			{Name: "FirstName", Alias: "io_first_name", Writable: true},
			{Name: "LastName", Alias: "io_last_name", Writable: true},
			{Name: "Email", Alias: "io_email", Writable: true},
			{Name: "LeadNumber", Alias: "io_lead_number"},
			{Name: "Owner", Alias: "io_owner", Writable: true},
		},
	}
}

// LeadDataShape форма исходящей записи
func LeadDataShape() schema.Shape {
	return schema.Shape{
		Name: "LeadData",
		Fields: []schema.Field{
			{Name: "Id", Alias: "io_uuid", Writable: true},
			{Name: "FirstName", Alias: "io_first_name", Writable: true},
			{Name: "LastName", Alias: "io_last_name", Writable: true},
			{Name: "Email", Alias: "io_email", Writable: true},
			{Name: "Owner", Alias: "io_owner", Writable: true},
		},
	}
}

// LeadFields поля, запрашиваемые у сервера для лидов
func LeadFields() []string {
	return LeadShape().Aliases()
}

// LeadToRow значения строки по именам колонок; отсутствующие поля не попадают в результат
func LeadToRow(l Lead) map[string]string {
	row := make(map[string]string, 6)
	putRaw(row, "Id", l.ID)
	putRaw(row, "FirstName", l.FirstName)
	putRaw(row, "LastName", l.LastName)
	putRaw(row, "Email", l.Email)
	putRaw(row, "LeadNumber", l.LeadNumber)
	if l.Owner != nil {
		row["Owner"] = l.Owner.String()
	}
	return row
}

// LeadDataFromRow строит тело запроса из значений строки
func LeadDataFromRow(values map[string]string) (LeadData, error) {
	return LeadData{
		ID:        values["Id"],
		FirstName: values["FirstName"],
		LastName:  values["LastName"],
		Email:     values["Email"],
		Owner:     values["Owner"],
	}, nil
}

func putRaw(row map[string]string, column string, v *api.RawString) {
	if v != nil {
		row[column] = v.String()
	}
}

func rawString(v *api.RawString) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func ownerString(v *api.Owner) string {
	if v == nil {
		return ""
	}
	return v.String()
}
