package service

import (
	"testing"

	linkDomain "github.com/heywood8/telegram-downloader-bot/internal/modules/link/domain"
	linkService "github.com/heywood8/telegram-downloader-bot/internal/modules/link/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *Service {
	return New(linkService.New())
}

func TestDecide(t *testing.T) {
	svc := newService()

	t.Run("matched yields fixed acknowledgement", func(t *testing.T) {
		reply := svc.Decide(linkDomain.MatchResult{Matched: true, Link: "instagram.com/p/abc"})
		require.NotNil(t, reply)
		assert.Equal(t, AckText, reply.Text)
	})

	t.Run("not matched yields silence", func(t *testing.T) {
		reply := svc.Decide(linkDomain.MatchResult{Matched: false})
		assert.Nil(t, reply)
	})
}

func TestHandle(t *testing.T) {
	svc := newService()

	t.Run("instagram link triggers reply", func(t *testing.T) {
		reply := svc.Handle(linkDomain.Message{ChatID: 42, Text: "check this out https://instagram.com/p/abc123"})
		require.NotNil(t, reply)
		assert.Equal(t, "Here you go", reply.Text)
	})

	t.Run("plain text stays silent", func(t *testing.T) {
		assert.Nil(t, svc.Handle(linkDomain.Message{Text: "hello world"}))
	})

	t.Run("empty text stays silent", func(t *testing.T) {
		assert.Nil(t, svc.Handle(linkDomain.Message{}))
	})

	t.Run("idempotent on the same input", func(t *testing.T) {
		msg := linkDomain.Message{ChatID: 7, Text: "https://instagram.com/test"}
		first := svc.Handle(msg)
		second := svc.Handle(msg)
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, first.Text, second.Text)
	})
}
