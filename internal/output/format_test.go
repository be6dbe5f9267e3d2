package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input  string
		want   Format
		wantOK bool
	}{
		{"yaml", FormatYAML, true},
		{"yml", FormatYAML, true},
		{"JSON", FormatJSON, true},
		{" table ", FormatTable, true},
		{"xml", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestValidFormats(t *testing.T) {
	assert.Equal(t, []string{"yaml", "json", "table"}, ValidFormats())
	assert.Equal(t, "json", FormatJSON.String())
}
