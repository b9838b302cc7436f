// Package conversation holds the bounded turn history fed into generative
// prompts, for both anonymous sessions and persisted chats.
package conversation

import (
	"regexp"
	"strings"
)

// MaxExchanges caps how many (user, assistant) pairs a context retains.
const MaxExchanges = 10

// Exchange is one completed turn: the citizen's utterance and the reply
// served for it.
type Exchange struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// Context is an ordered turn history, most-recent-last. Appending beyond
// MaxExchanges evicts the oldest entry. Entries are never mutated in place.
type Context struct {
	exchanges []Exchange
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{}
}

// Restore rebuilds a context from previously stored exchanges, re-applying
// the capacity bound.
func Restore(exchanges []Exchange) *Context {
	c := &Context{}
	for _, e := range exchanges {
		c.Append(e.User, e.Assistant)
	}
	return c
}

// Append records a completed turn, evicting from the front once full.
func (c *Context) Append(user, assistant string) {
	c.exchanges = append(c.exchanges, Exchange{User: user, Assistant: assistant})
	if len(c.exchanges) > MaxExchanges {
		c.exchanges = c.exchanges[len(c.exchanges)-MaxExchanges:]
	}
}

// Clear drops every stored exchange.
func (c *Context) Clear() {
	c.exchanges = nil
}

// Len returns the number of stored exchanges.
func (c *Context) Len() int {
	return len(c.exchanges)
}

// Exchanges returns the stored turns, most-recent-last.
func (c *Context) Exchanges() []Exchange {
	out := make([]Exchange, len(c.exchanges))
	copy(out, c.exchanges)
	return out
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes markup so replies rendered as HTML fragments can be
// embedded into plain-text prompts.
func StripHTML(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, " "))
}

// PromptLines renders the context as alternating plain-text lines for prompt
// embedding, with HTML stripped from the assistant side.
func (c *Context) PromptLines() []string {
	lines := make([]string, 0, len(c.exchanges)*2)
	for _, e := range c.exchanges {
		lines = append(lines, "User: "+StripHTML(e.User))
		lines = append(lines, "Assistant: "+StripHTML(e.Assistant))
	}
	return lines
}
