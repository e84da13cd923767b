package wrapwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseWrapWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected WrapWidth
		wantErr  bool
	}{
		{input: "80", expected: 80},
		{input: " 10 ", expected: 10},
		{input: "0", expected: NoWrap},
		{input: "inf", expected: Unlimited},
		{input: "Infinity", expected: Unlimited},
		{input: "unlimited", expected: Unlimited},
		{input: "-1", wantErr: true},
		{input: "wide", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWrapWidth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestWrapWidth_Suffix(t *testing.T) {
	tests := []struct {
		width  WrapWidth
		suffix string
		str    string
		wraps  bool
	}{
		{width: 10, suffix: "10", str: "10", wraps: true},
		{width: 80, suffix: "80", str: "80", wraps: true},
		{width: NoWrap, suffix: "inf", str: "0", wraps: false},
		{width: Unlimited, suffix: "inf", str: "inf", wraps: false},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.suffix, tt.width.Suffix())
			assert.Equal(t, tt.str, tt.width.String())
			assert.Equal(t, tt.wraps, tt.width.Wraps())
		})
	}
}

func TestDefaultWidths(t *testing.T) {
	assert.Equal(t, []WrapWidth{10, 40, 80, Unlimited, NoWrap}, DefaultWidths())
}

func TestWrapWidth_YAML(t *testing.T) {
	var doc struct {
		Widths []WrapWidth `yaml:"widths"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("widths: [10, inf, 0]\n"), &doc))
	assert.Equal(t, []WrapWidth{10, Unlimited, NoWrap}, doc.Widths)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "- 10")
	assert.Contains(t, string(out), "- inf")
	assert.Contains(t, string(out), "- 0")

	err = yaml.Unmarshal([]byte("widths: [-5]\n"), &doc)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte("widths: [[1]]\n"), &doc)
	assert.Error(t, err)
}
