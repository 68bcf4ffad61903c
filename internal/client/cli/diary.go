package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/glitterpage/internal/common"
)

// Diary prints the saved entries, newest first.
func (a *App) Diary(ctx context.Context, args []string) error {
	entries := a.diary.List(ctx)
	if len(entries) == 0 {
		printlnFn("Dear diary... (nothing saved yet)")
		return nil
	}
	for _, e := range entries {
		printlnFn("[" + e.Date + "]")
		printlnFn(e.Text)
		printlnFn()
	}
	return nil
}

// Save stores a diary entry: the arguments if any, otherwise a multi-line
// prompt.
func (a *App) Save(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		var err error
		text, err = GetMultiline(a.reader, "Dear diary...", a.out)
		if err != nil {
			return err
		}
	}
	return a.saveDiary(ctx, text)
}

// SaveStatus stores the last generated status as a diary entry.
func (a *App) SaveStatus(ctx context.Context, args []string) error {
	a.mu.Lock()
	text := a.lastStatus
	a.mu.Unlock()
	if text == "" {
		printlnFn("Generate a status first: status <mood>")
		return nil
	}
	return a.saveDiary(ctx, text)
}

func (a *App) saveDiary(ctx context.Context, text string) error {
	entry, saved, err := a.diary.Save(ctx, text)
	if errors.Is(err, common.ErrEmptyInput) {
		return nil
	}
	if err != nil {
		a.log.Error(ctx, "error saving diary entry", "err", err)
		return err
	}
	if saved {
		printlnFn("Saved to diary at", entry.Date, "📔")
	}
	return nil
}
