package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	svc := New()

	tests := []struct {
		name     string
		text     string
		matched  bool
		wantLink string
	}{
		{
			name:     "full https link",
			text:     "check this out https://instagram.com/p/abc123",
			matched:  true,
			wantLink: "https://instagram.com/p/abc123",
		},
		{
			name:     "http with www",
			text:     "http://www.instagram.com/reel/xyz",
			matched:  true,
			wantLink: "http://www.instagram.com/reel/xyz",
		},
		{
			name:     "no scheme",
			text:     "look at instagram.com/p/abc",
			matched:  true,
			wantLink: "instagram.com/p/abc",
		},
		{
			name:     "short domain",
			text:     "instagr.am/p/abc",
			matched:  true,
			wantLink: "instagr.am/p/abc",
		},
		{
			name:     "mixed case",
			text:     "HTTPS://INSTAGRAM.COM/p/ABC",
			matched:  true,
			wantLink: "HTTPS://INSTAGRAM.COM/p/ABC",
		},
		{
			name:     "first of several links",
			text:     "instagram.com/p/first and instagram.com/p/second",
			matched:  true,
			wantLink: "instagram.com/p/first",
		},
		{
			name:    "no link",
			text:    "hello world",
			matched: false,
		},
		{
			name:    "empty string",
			text:    "",
			matched: false,
		},
		{
			name:    "bare domain without path",
			text:    "I love instagram.com",
			matched: false,
		},
		{
			name:    "unrelated domain",
			text:    "https://example.com/instagram",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Match(tt.text)
			assert.Equal(t, tt.matched, result.Matched)
			assert.Equal(t, tt.wantLink, result.Link)
		})
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	svc := New()
	text := "see https://www.instagram.com/p/abc123 today"

	first := svc.Match(text)
	second := svc.Match(text)

	assert.Equal(t, first, second)
}
