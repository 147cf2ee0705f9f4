package candidate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKind ValueKind
		want     []string
	}{
		{"json array", `["Acme", "Globex"]`, KindJSONArray, []string{"Acme", "Globex"}},
		{"json array with blanks", `["Acme", " ", ""]`, KindJSONArray, []string{"Acme"}},
		{"semicolon list", "Acme; Globex ;;", KindDelimited, []string{"Acme", "Globex"}},
		{"broken json falls back to split", `["Acme"; "Globex"`, KindDelimited, []string{`["Acme"`, `"Globex"`}},
		{"scalar", "  Acme  ", KindScalar, []string{"Acme"}},
		{"blank", "   ", KindAbsent, nil},
		{"only separators", " ; ; ", KindAbsent, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParseString(tt.in)
			assert.Equal(t, tt.wantKind, v.kind)
			assert.Equal(t, tt.want, v.Items())
		})
	}
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, ParseValue([]any{"A", nil, "B"}).Items())
	assert.Equal(t, "12", ParseValue(float64(12)).String())
	assert.True(t, ParseValue(map[string]any{"a": 1}).IsEmpty())
	assert.True(t, ParseValue(nil).IsEmpty())
	assert.True(t, ParseValue(true).IsEmpty())
}

func TestFieldValueString(t *testing.T) {
	assert.Equal(t, "Acme; Globex", List("Acme", "Globex").String())
	assert.Equal(t, "A; B", Delimited("A;B").String())
	assert.Equal(t, "", FieldValue{}.String())
}

func TestFieldValueEqualIgnoresRepresentation(t *testing.T) {
	assert.True(t, List("A", "B").Equal(Delimited("A; B")))
	assert.False(t, List("A", "B").Equal(List("B", "A")))
}

func TestFieldValueJSON(t *testing.T) {
	var got struct {
		A FieldValue `json:"a"`
		B FieldValue `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "x", "b": ["y", "z"]}`), &got))
	assert.Equal(t, KindScalar, got.A.kind)
	assert.Equal(t, []string{"y", "z"}, got.B.Items())

	out, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "x", "b": ["y", "z"]}`, string(out))
}

func TestFieldsSetDeletesEmpty(t *testing.T) {
	f := Fields{}
	f.Set(KeyFullName, Scalar("Jane"))
	f.Set(KeyFullName, Scalar(" "))
	assert.False(t, f.Has(KeyFullName))
	assert.Empty(t, f.Keys())
}

func TestFieldsSetIfEmpty(t *testing.T) {
	f := Fields{KeyJobTitle: Scalar("CTO")}
	f.SetIfEmpty(KeyJobTitle, Scalar("Intern"))
	f.SetIfEmpty(KeyLocation, Scalar("Berlin"))
	assert.Equal(t, "CTO", f.Str(KeyJobTitle))
	assert.Equal(t, "Berlin", f.Str(KeyLocation))
}

func TestIsRecordKey(t *testing.T) {
	assert.True(t, IsRecordKey(KeyCurrentCompany))
	assert.True(t, IsRecordKey(KeyCompanies))
	assert.False(t, IsRecordKey("Company 1"))
	assert.False(t, IsRecordKey("favoriteColor"))
	assert.True(t, IsListKey(KeyUniversities))
	assert.False(t, IsListKey(KeyDegrees))
}
