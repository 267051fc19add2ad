package service

import (
	linkDomain "github.com/heywood8/telegram-downloader-bot/internal/modules/link/domain"
	linkService "github.com/heywood8/telegram-downloader-bot/internal/modules/link/service"
	"github.com/heywood8/telegram-downloader-bot/internal/modules/reply/domain"
)

// AckText is the fixed acknowledgement sent for every matched link
const AckText = "Here you go"

// Service decides what, if anything, to reply to an inbound message
type Service struct {
	matcher *linkService.Service
}

// New creates a new reply policy service
func New(matcher *linkService.Service) *Service {
	return &Service{
		matcher: matcher,
	}
}

// Match runs just the link matcher on inbound text.
func (s *Service) Match(text string) linkDomain.MatchResult {
	return s.matcher.Match(text)
}

// Decide maps a match result to an outbound reply. A nil return means
// silence: no message is sent, not even an empty one.
func (s *Service) Decide(result linkDomain.MatchResult) *domain.Reply {
	if !result.Matched {
		return nil
	}
	return &domain.Reply{Text: AckText}
}

// Handle runs the full matcher/policy pipeline on an inbound message.
// Both transport adapters go through this so the core stays testable
// without any network dependency.
func (s *Service) Handle(msg linkDomain.Message) *domain.Reply {
	return s.Decide(s.matcher.Match(msg.Text))
}
