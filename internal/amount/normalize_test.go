package amount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{
			name:  "plain decimal comma",
			input: "100,00",
			want:  100.0,
		},
		{
			name:  "thousands with space and PLN suffix",
			input: "1 200,50 PLN",
			want:  1200.50,
		},
		{
			name:  "thousands with non-breaking space",
			input: "1\u00a0200,50",
			want:  1200.50,
		},
		{
			name:  "zloty suffix",
			input: "42,99 zł",
			want:  42.99,
		},
		{
			name:  "currency code without space",
			input: "15PLN",
			want:  15.0,
		},
		{
			name:  "negative outflow",
			input: "-2 500,00 PLN",
			want:  -2500.0,
		},
		{
			name:  "already a decimal point",
			input: "123.45",
			want:  123.45,
		},
		{
			name:  "empty string",
			input: "",
			want:  0,
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  0,
		},
		{
			name:  "garbage",
			input: "garbage",
			want:  0,
		},
		{
			name:  "two commas stays unparseable",
			input: "1,2,3",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeString(tt.input), 0.001)
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input any
		name  string
		want  float64
	}{
		{name: "nil", input: nil, want: 0},
		{name: "float64 passthrough", input: 12.5, want: 12.5},
		{name: "int passthrough", input: 7, want: 7},
		{name: "int64 passthrough", input: int64(-3), want: -3},
		{name: "string routed through textual path", input: "1 200,50 PLN", want: 1200.50},
		{name: "unsupported type", input: struct{}{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Normalize(tt.input), 0.001)
		})
	}
}
