package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	testCases := []struct {
		name   string
		base   string
		values map[string]string
		want   string
	}{
		{
			name:   "known tokens replaced",
			base:   `\documentclass[<<FONT_SIZE>>]{article} <<NAME>>`,
			values: map[string]string{TokenFontSize: "11pt", TokenName: "Ada"},
			want:   `\documentclass[11pt]{article} Ada`,
		},
		{
			name:   "known token without value becomes empty",
			base:   "a<<GITHUB>>b",
			values: map[string]string{},
			want:   "ab",
		},
		{
			name:   "unknown token left in place",
			base:   "<<NOT_A_TOKEN>> <<NAME>>",
			values: map[string]string{TokenName: "Ada"},
			want:   "<<NOT_A_TOKEN>> Ada",
		},
		{
			name:   "values are not rescanned",
			base:   "<<NAME>>|<<EMAIL>>",
			values: map[string]string{TokenName: "<<EMAIL>>", TokenEmail: "x"},
			want:   "<<EMAIL>>|x",
		},
		{
			name:   "lowercase markers are not tokens",
			base:   "<<name>>",
			values: map[string]string{TokenName: "Ada"},
			want:   "<<name>>",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Substitute(tc.base, tc.values))
		})
	}
}

func TestIsKnownToken(t *testing.T) {
	assert.True(t, IsKnownToken(TokenSections))
	assert.True(t, IsKnownToken("PRIMARY_COLOR"))
	assert.False(t, IsKnownToken("sections"))
	assert.False(t, IsKnownToken("FOO"))
	assert.Equal(t, "<<SECTIONS>>", Placeholder(TokenSections))
}
