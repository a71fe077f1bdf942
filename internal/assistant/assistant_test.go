package assistant

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyTopics(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewPCG(1, 1))))

	tests := []struct {
		msg, prefix string
	}{
		{"How do I SAVE more?", "Here are some saving tips"},
		{"help with my budget", "For better budgeting"},
		{"student loan", "For debt management"},
		{"emergency", "Emergency funds are crucial"},
		{"should I invest", "Before investing"},
		// earlier topics win when several match
		{"budget for debt", "For better budgeting"},
		{"saving for investment", "Here are some saving tips"},
	}
	for _, tt := range tests {
		assert.True(t, strings.HasPrefix(a.Reply(tt.msg), tt.prefix), "reply to %q", tt.msg)
	}
}

func TestReplyFallsBackToTip(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewPCG(7, 9))))
	got := a.Reply("hello there")

	require.True(t, strings.HasPrefix(got, "Here's a helpful tip: "))
	require.True(t, strings.HasSuffix(got, " Is there a specific area of your budget you'd like help with?"))

	tip := strings.TrimSuffix(strings.TrimPrefix(got, "Here's a helpful tip: "),
		" Is there a specific area of your budget you'd like help with?")
	assert.Contains(t, Tips, tip)
}

func TestSend(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	a := New(WithClock(func() time.Time { return at }))

	require.Len(t, a.History(), 1)
	assert.Equal(t, Greeting, a.History()[0].Content)

	assert.Nil(t, a.Send("   "))
	assert.Len(t, a.History(), 1)

	pair := a.Send("emergency fund?")
	require.Len(t, pair, 2)
	assert.Equal(t, SenderUser, pair[0].Sender)
	assert.Equal(t, SenderBot, pair[1].Sender)
	assert.Equal(t, at, pair[1].Timestamp)

	h := a.History()
	assert.Len(t, h, 3)
	assert.Equal(t, "emergency fund?", h[1].Content)
}
