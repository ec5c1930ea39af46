package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawString_JSON(t *testing.T) {
	var v RawString
	require.NoError(t, json.Unmarshal([]byte(`{"raw":"John"}`), &v))
	assert.Equal(t, "John", v.String())

	data, err := json.Marshal(NewRawString("Doe"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"raw":"Doe"}`, string(data))
}

func TestOwner_String(t *testing.T) {
	var o Owner
	require.NoError(t, json.Unmarshal([]byte(`{"raw":"764f0869","name":"Admin"}`), &o))
	assert.Equal(t, "764f0869", o.String())
	assert.Equal(t, "Admin", o.Name)
}

func TestOptionList_Parts(t *testing.T) {
	tests := []struct {
		name       string
		raw        []string
		id         string
		identifier string
		display    string
	}{
		{name: "full", raw: []string{"12=io_hot=Hot lead"}, id: "12", identifier: "io_hot", display: "Hot lead"},
		{name: "name with equals sign", raw: []string{"1=x=a=b"}, id: "1", identifier: "x", display: "a=b"},
		{name: "short value", raw: []string{"7"}, id: "7"},
		{name: "empty", raw: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := OptionList{Raw: tt.raw}
			assert.Equal(t, tt.id, o.ID())
			assert.Equal(t, tt.identifier, o.Identifier())
			assert.Equal(t, tt.display, o.Name())
			assert.Equal(t, tt.display, o.String())
		})
	}
}

func TestRecord_Value(t *testing.T) {
	rec := Record{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"plain": "text",
		"wrapped": {"raw": "inner"},
		"owner": {"raw": "u-1", "name": "Owner"},
		"option": {"raw": ["3=io_cold=Cold"]},
		"number": 42,
		"flag": true,
		"nothing": null,
		"wrapped_null": {"raw": null},
		"wrapped_number": {"raw": 42},
		"wrapped_flag": {"raw": false},
		"object": {"a": 1}
	}`), &rec))

	tests := []struct {
		field string
		want  string
		ok    bool
	}{
		{field: "plain", want: "text", ok: true},
		{field: "wrapped", want: "inner", ok: true},
		{field: "owner", want: "u-1", ok: true},
		{field: "option", want: "Cold", ok: true},
		{field: "number", want: "42", ok: true},
		{field: "flag", want: "true", ok: true},
		{field: "nothing", ok: false},
		{field: "wrapped_null", ok: false},
		{field: "wrapped_number", want: "42", ok: true},
		{field: "wrapped_flag", want: "false", ok: true},
		{field: "object", want: `{"a":1}`, ok: true},
		{field: "missing", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := rec.Value(tt.field)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
