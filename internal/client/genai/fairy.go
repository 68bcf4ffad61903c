package genai

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/glitterpage/internal/logging"
)

// Placeholders returned in place of real output. Callers treat them as
// ordinary text.
const (
	StatusNoKey   = "✨ Error: No API Key found! ✨"
	StatusFailed  = "☁️ The fairy dust ran out... (API Error) ☁️"
	StatusEmpty   = "✨ Sparkles empty... try again! ✨"
	ChatNoKey     = "✨ I need an API key to speak! ✨"
	ChatFailed    = "💔 Connection lost to the glitter realm. Try again later! 💔"
	ChatEmptyText = "✨ *silence* ✨"
)

const chatPersona = "You are a digital Fairy Godmother from the year 2005. You love neon, glitter, and encouraging the user. " +
	"You speak in a cute, supportive, and slightly 'internet slang' (lol, omg, yay) way. " +
	"Keep responses relatively short and very aesthetic."

func statusPrompt(mood string) string {
	return fmt.Sprintf("Generate a short, cute, sparkly, Y2K-style social media status update (under 280 chars) "+
		"based on this mood: \"%s\". Use lots of emojis like ✨💖🦋👾.", mood)
}

// Fairy wraps a Generator. Its methods never fail: a missing generator or a
// failed call is logged and replaced by a placeholder.
type Fairy struct {
	gen Generator
	log logging.Logger
}

// NewFairy returns a Fairy. A nil gen means no credential is configured.
func NewFairy(gen Generator, log logging.Logger) *Fairy {
	if log == nil {
		log = logging.Nop()
	}
	return &Fairy{gen: gen, log: log.With("component", "genai")}
}

// GenerateStatus returns a short decorated status for mood.
func (f *Fairy) GenerateStatus(ctx context.Context, mood string) string {
	if f.gen == nil {
		return StatusNoKey
	}
	text, err := f.gen.Generate(ctx, "", []Record{TextRecord(RoleUser, statusPrompt(mood))})
	if err != nil {
		f.log.Error(ctx, "status generation failed", "err", err)
		return StatusFailed
	}
	if text == "" {
		return StatusEmpty
	}
	return text
}

// ContinueConversation returns the assistant's reply to message given the
// running history. history is expected to end with message as a user
// record; if it does not, that record is appended so the model sees it once.
func (f *Fairy) ContinueConversation(ctx context.Context, message string, history []Record) string {
	if f.gen == nil {
		return ChatNoKey
	}

	contents := history
	if !endsWithUser(history, message) {
		contents = append(append([]Record(nil), history...), TextRecord(RoleUser, message))
	}

	text, err := f.gen.Generate(ctx, chatPersona, contents)
	if err != nil {
		f.log.Error(ctx, "chat call failed", "err", err)
		return ChatFailed
	}
	if text == "" {
		return ChatEmptyText
	}
	return text
}

func endsWithUser(history []Record, message string) bool {
	if len(history) == 0 {
		return false
	}
	last := history[len(history)-1]
	return last.Role == RoleUser && len(last.Parts) == 1 && last.Parts[0].Text == message
}
