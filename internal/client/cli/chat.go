package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/common"
)

// Chat sends a message to the fairy. The reply is printed when it arrives.
func (a *App) Chat(ctx context.Context, args []string) error {
	h, err := a.chat.Send(ctx, strings.Join(args, " "), func(reply string) {
		printlnFn("🧚", reply)
	})
	switch {
	case errors.Is(err, common.ErrEmptyInput):
		printlnFn("Usage: chat <message>")
		return nil
	case errors.Is(err, common.ErrBusy):
		printlnFn("The fairy is still typing... ✨")
		return nil
	case err != nil:
		return err
	}
	a.track(h.Done())
	return nil
}

// History prints the conversation so far.
func (a *App) History(ctx context.Context, args []string) error {
	for _, t := range a.chat.Turns() {
		who := "you"
		if t.Speaker == models.SpeakerAssistant {
			who = "🧚"
		}
		printlnFn(who+":", t.Text)
	}
	if a.chat.Busy() {
		printlnFn("🧚: ...")
	}
	return nil
}

// Status generates a status update for a mood in the background.
func (a *App) Status(ctx context.Context, args []string) error {
	h, err := a.status.Generate(ctx, strings.Join(args, " "), func(status string) {
		a.mu.Lock()
		a.lastStatus = status
		a.mu.Unlock()
		printlnFn("Status:", status)
	})
	switch {
	case errors.Is(err, common.ErrEmptyInput):
		printlnFn("Usage: status <mood>")
		return nil
	case errors.Is(err, common.ErrBusy):
		printlnFn("Still sprinkling fairy dust... ✨")
		return nil
	case err != nil:
		return err
	}
	a.track(h.Done())
	return nil
}
