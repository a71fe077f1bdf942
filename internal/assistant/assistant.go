// Package assistant implements BudgetBot, a canned-response chat helper.
package assistant

import (
	"math/rand/v2"
	"strings"
	"time"
)

// Greeting opens every conversation.
const Greeting = "Hi! I'm BudgetBot from SPLITABILL! I can help you with budgeting advice, " +
	"saving tips, and smart allocation suggestions. How can I help you manage your finances today?"

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one chat line.
type Message struct {
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

type topic struct {
	triggers []string
	answer   string
}

var topics = []topic{
	{
		triggers: []string{"save", "saving"},
		answer: "Here are some saving tips: Start with small amounts and increase gradually. " +
			"Automate your savings so it happens without thinking. Look for areas where you can cut back, " +
			"like dining out or subscriptions. Even saving $25/week adds up to $1,300 per year!",
	},
	{
		triggers: []string{"budget", "allocation"},
		answer: "For better budgeting: Prioritize your essential expenses first (rent, utilities, groceries). " +
			"Then allocate funds to your goals and wants. The 50/30/20 rule is a great starting point - " +
			"50% needs, 30% wants, 20% savings/debt.",
	},
	{
		triggers: []string{"debt", "loan"},
		answer: "For debt management: List all debts with interest rates. Consider the avalanche method " +
			"(pay minimums on all, extra on highest interest) or snowball method (smallest balance first for motivation). " +
			"Avoid taking on new debt while paying off existing debt.",
	},
	{
		triggers: []string{"emergency", "fund"},
		answer: "Emergency funds are crucial! Aim for 3-6 months of expenses. Start small - even $500 can help " +
			"with minor emergencies. Keep it in a separate, easily accessible savings account. " +
			"Build it gradually by setting aside a small amount each month.",
	},
	{
		triggers: []string{"invest", "investment"},
		answer: "Before investing: Ensure you have an emergency fund and high-interest debt is managed. " +
			"Start with low-cost index funds or ETFs. Consider your risk tolerance and time horizon. " +
			"Dollar-cost averaging can help reduce timing risk.",
	},
}

// Tips are handed out for messages that match no topic.
var Tips = []string{
	"Try the 50/30/20 rule: 50% for needs, 30% for wants, 20% for savings and debt repayment.",
	"Consider setting up automatic transfers to your savings account to build an emergency fund.",
	"Review your subscriptions monthly - you might be paying for services you don't use.",
	"Use the envelope method for discretionary spending categories like entertainment and dining out.",
	"Track your expenses for a week to identify spending patterns and potential savings opportunities.",
	"Consider increasing your high-priority expense allocations first, then distribute remaining funds.",
	"If you're consistently under budget in a category, consider reallocating those funds to savings or other priorities.",
	"Set up alerts for when you're approaching your budget limits in each category.",
	"Review and adjust your budget monthly based on actual spending patterns.",
	"Consider using cashback credit cards for planned expenses, but pay them off immediately.",
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithRand fixes the source used to pick tips.
func WithRand(r *rand.Rand) Option {
	return func(a *Assistant) { a.rnd = r }
}

// WithClock replaces time.Now for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// Assistant keeps one conversation. It is not safe for concurrent use.
type Assistant struct {
	rnd     *rand.Rand
	now     func() time.Time
	history []Message
}

// New starts a conversation with the greeting.
func New(opts ...Option) *Assistant {
	a := &Assistant{now: time.Now}
	for _, o := range opts {
		o(a)
	}
	if a.rnd == nil {
		a.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	a.history = []Message{{Content: Greeting, Sender: SenderBot, Timestamp: a.now()}}
	return a
}

// Reply answers a message without recording it.
func (a *Assistant) Reply(text string) string {
	lower := strings.ToLower(text)
	for _, t := range topics {
		for _, trig := range t.triggers {
			if strings.Contains(lower, trig) {
				return t.answer
			}
		}
	}
	tip := Tips[a.rnd.IntN(len(Tips))]
	return "Here's a helpful tip: " + tip + " Is there a specific area of your budget you'd like help with?"
}

// Send records a user message and the bot's reply. Blank messages are
// ignored and return nil.
func (a *Assistant) Send(text string) []Message {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	now := a.now()
	pair := []Message{
		{Content: text, Sender: SenderUser, Timestamp: now},
		{Content: a.Reply(text), Sender: SenderBot, Timestamp: now},
	}
	a.history = append(a.history, pair...)
	return pair
}

// History returns the conversation so far, oldest first.
func (a *Assistant) History() []Message {
	out := make([]Message, len(a.history))
	copy(out, a.history)
	return out
}
