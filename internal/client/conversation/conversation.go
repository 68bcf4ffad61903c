// Package conversation keeps the in-memory chat transcript and allows at
// most one outstanding assistant request at a time.
package conversation

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/dmitrijs2005/glitterpage/internal/client/genai"
	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/common"
	"github.com/dmitrijs2005/glitterpage/internal/logging"
	"github.com/dmitrijs2005/glitterpage/internal/task"
)

// Greeting opens every transcript.
const Greeting = "Hi princess! ✨ How can I help you sparkle today? 💖"

// Continuer produces the assistant's reply. It never fails; failures come
// back as placeholder text.
type Continuer interface {
	ContinueConversation(ctx context.Context, message string, history []genai.Record) string
}

// Conversation is safe for concurrent use.
type Conversation struct {
	ID uuid.UUID

	mu      sync.Mutex
	turns   []models.ChatTurn
	pending bool
	busy    *semaphore.Weighted

	fairy Continuer
	log   logging.Logger
}

func New(fairy Continuer, log logging.Logger) *Conversation {
	if log == nil {
		log = logging.Nop()
	}
	id := uuid.New()
	return &Conversation{
		ID:    id,
		turns: []models.ChatTurn{{Speaker: models.SpeakerAssistant, Text: Greeting}},
		busy:  semaphore.NewWeighted(1),
		fairy: fairy,
		log:   log.With("conversation", id.String()),
	}
}

// Turns returns a copy of the transcript.
func (c *Conversation) Turns() []models.ChatTurn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.ChatTurn(nil), c.turns...)
}

// Busy reports whether a reply is outstanding.
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Send appends the user turn immediately and requests the reply in the
// background. The assistant turn is appended before onReply runs and before
// the returned handle completes. A blank text yields common.ErrEmptyInput,
// an outstanding request yields common.ErrBusy; both leave the transcript
// untouched.
func (c *Conversation) Send(ctx context.Context, text string, onReply func(reply string)) (*task.Handle[string], error) {
	if strings.TrimSpace(text) == "" {
		return nil, common.ErrEmptyInput
	}
	if !c.busy.TryAcquire(1) {
		return nil, common.ErrBusy
	}

	c.mu.Lock()
	c.pending = true
	history := Records(c.turns, text)
	c.turns = append(c.turns, models.ChatTurn{Speaker: models.SpeakerUser, Text: text})
	c.mu.Unlock()

	c.log.Debug(ctx, "message sent", "turns", len(history))

	call := func(ctx context.Context) (string, error) {
		return c.fairy.ContinueConversation(ctx, text, history), nil
	}
	done := func(reply string, _ error) {
		c.mu.Lock()
		c.turns = append(c.turns, models.ChatTurn{Speaker: models.SpeakerAssistant, Text: reply})
		c.pending = false
		c.mu.Unlock()
		c.busy.Release(1)
		if onReply != nil {
			onReply(reply)
		}
	}
	return task.Go(ctx, call, done), nil
}

// Records maps the prior turns to wire records and appends text as the
// final user record.
func Records(prior []models.ChatTurn, text string) []genai.Record {
	out := make([]genai.Record, 0, len(prior)+1)
	for _, t := range prior {
		role := genai.RoleUser
		if t.Speaker == models.SpeakerAssistant {
			role = genai.RoleModel
		}
		out = append(out, genai.TextRecord(role, t.Text))
	}
	return append(out, genai.TextRecord(genai.RoleUser, text))
}
