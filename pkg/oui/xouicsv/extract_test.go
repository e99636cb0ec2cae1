package xouicsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRecord(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantKey string
		wantOrg string
		wantOK  bool
	}{
		{"plain", "MA-L,00CDFE,Apple Inc,1 Infinite Loop", "00CDFE", "Apple Inc", true},
		{"plain_trimmed", "MA-L,ACDE48,  Private  ", "ACDE48", "Private", true},
		{"quoted_comma", `MA-L,ABCDEF,"Foo, Bar"`, "ABCDEF", "Foo, Bar", true},
		{"quoted_with_address", `MA-L,00CDFE,"Apple, Inc.",1 Infinite Loop Cupertino CA US 95014`, "00CDFE", "Apple, Inc.", true},
		{"doubled_quote", `MA-L,080030,"a""b",rest`, "080030", `a"b`, true},
		{"triple_leading_quote", `MA-L,080030,"""a""",x`, "080030", `"a"`, true},
		{"quoted_trailing_discarded", `MA-L,080030,"Foo" Bar,x`, "080030", "Foo", true},
		{"unbalanced_quoted", `MA-L,080030,"Foo, Bar`, "080030", "Foo, Bar", true},
		{"empty_quoted", `MA-L,080030,""`, "080030", "", true},
		{"even_leading_quotes", `MA-L,080030,""Foo"Bar,x`, "080030", `Foo"Bar`, true},
		{"unquoted_inner_quote", `MA-L,080030,Foo "Bar" Baz,x`, "080030", `Foo "Bar" Baz`, true},
		{"leading_comma", "MA-L,080030,,x", "080030", "", true},
		{"whitespace_only", "MA-L,080030,   ", "080030", "", true},
		{"unicode", "MA-L,FCFFAA,IEEE Registration Authority Ü", "FCFFAA", "IEEE Registration Authority Ü", true},

		{"header", "Registry,Assignment,Organization Name,Organization Address", "", "", false},
		{"empty_line", "", "", "", false},
		{"empty_field", "MA-L,080030,", "", "", false},
		{"lowercase_key", "MA-L,00cdfe,Apple", "", "", false},
		{"short_key", "MA-L,00CDF,Apple", "", "", false},
		{"long_key", "MA-L,00CDFE0,Apple", "", "", false},
		{"missing_comma", "MA-L,00CDFE Apple", "", "", false},
		{"other_registry", "MA-M,00CDFE,Apple", "", "", false},
		{"leading_space", " MA-L,00CDFE,Apple", "", "", false},
		{"lowercase_tag", "ma-l,00CDFE,Apple", "", "", false},
		{"embedded_newline", "MA-L,00CDFE,Apple\nInc", "", "", false},
		{"embedded_cr", "MA-L,00CDFE,Apple\rInc", "", "", false},
		{"embedded_nel", "MA-L,00CDFE,Apple\u0085Inc", "", "", false},
		{"embedded_line_separator", "MA-L,00CDFE,Apple\u2028Inc", "", "", false},
		{"embedded_paragraph_separator", "MA-L,00CDFE,Apple\u2029Inc", "", "", false},
		{"other_unicode", "MA-L,00CDFE,Ålborg\u00a0Tech", "00CDFE", "Ålborg\u00a0Tech", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := ExtractRecord(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, Record{}, rec)
				return
			}
			assert.Equal(t, tt.wantKey, rec.Key)
			assert.Equal(t, tt.wantOrg, rec.Organization)
		})
	}
}

func TestExtractRecord_UnquotedFieldEqualsTrimmedField(t *testing.T) {
	fields := []string{"Cisco Systems", "  Xerox Corporation ", "Huawei\tTechnologies", "x"}
	for _, f := range fields {
		rec, ok := ExtractRecord("MA-L,000000," + f)
		assert.True(t, ok)
		assert.Equal(t, strings.TrimSpace(f), rec.Organization)
	}
}

func TestExtractField(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"a""b",c`, `a"b`},
		{`"",x`, ``},
		{`"""`, `"`},
		{`"`, ``},
		{`""""`, ``},
		{`abc`, `abc`},
		{`a,b`, `a`},
		{`""a,b`, `a`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, extractField(tt.in))
		})
	}
}
