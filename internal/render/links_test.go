package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "", NormalizeURL("  "))
	assert.Equal(t, "https://github.com/ada", NormalizeURL("github.com/ada"))
	assert.Equal(t, "http://example.com", NormalizeURL("http://example.com"))
	assert.Equal(t, "HTTPS://example.com", NormalizeURL("HTTPS://example.com"))
	assert.Equal(t, "mailto:ada@example.com", NormalizeURL("mailto:ada@example.com"))
}

func TestLinkLabel(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
	}{
		{raw: "https://www.linkedin.com/in/ada/", want: "linkedin.com/in/ada"},
		{raw: "github.com/ada", want: "github.com/ada"},
		{raw: "https://blog.example.co.uk/", want: "blog.example.co.uk"},
		{raw: "www.example.co.uk/about", want: "example.co.uk/about"},
		{raw: "", want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, LinkLabel(tc.raw))
		})
	}
}
