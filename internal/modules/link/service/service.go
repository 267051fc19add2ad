package service

import (
	"regexp"

	"github.com/heywood8/telegram-downloader-bot/internal/modules/link/domain"
)

// Instagram post links, with or without scheme and www prefix.
// A non-empty path segment is required so bare domain mentions do not match.
var instagramPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:instagram\.com|instagr\.am)/\S+`)

// Service detects Instagram links in message text
type Service struct{}

// New creates a new link matcher service
func New() *Service {
	return &Service{}
}

// Match tests whether text contains an Instagram link and returns the
// first qualifying substring. It is pure and has no failure modes:
// malformed or partial links simply do not match.
func (s *Service) Match(text string) domain.MatchResult {
	link := instagramPattern.FindString(text)
	if link == "" {
		return domain.MatchResult{Matched: false}
	}
	return domain.MatchResult{
		Matched: true,
		Link:    link,
	}
}
