package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/glitterpage/internal/client/ingest"
	"github.com/dmitrijs2005/glitterpage/internal/client/services"
	"github.com/dmitrijs2005/glitterpage/internal/common"
)

const (
	cellWidth    = 26
	defaultWidth = 80
)

// termWidth is a test seam for term.GetSize on stdout.
var termWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Scrapbook prints the collage, as many cells per row as the terminal fits.
// Positions are 1-based, as used by drag, drop and move.
func (a *App) Scrapbook(ctx context.Context, args []string) error {
	items := a.scrapbook.Items()
	if len(items) == 0 {
		printlnFn("Your scrapbook is empty. Add a photo with: addphoto <file> [caption]")
		return nil
	}

	columns := max(termWidth()/cellWidth, 1)
	pos := 0
	for _, row := range services.Layout(items, columns) {
		var top, bottom strings.Builder
		for _, it := range row {
			pos++
			top.WriteString(pad(fmt.Sprintf("#%d %s", pos, shorten(it.Caption, cellWidth-6)), cellWidth))
			bottom.WriteString(pad(fmt.Sprintf("   %s id:%d", it.Date, it.ID), cellWidth))
		}
		printlnFn(strings.TrimRight(top.String(), " "))
		printlnFn(strings.TrimRight(bottom.String(), " "))
	}
	return nil
}

// AddPhoto uploads an image into the scrapbook in the background.
func (a *App) AddPhoto(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: addphoto <image file> [caption]")
		return common.ErrEmptyInput
	}
	path, caption := args[0], strings.Join(args[1:], " ")

	h := ingest.IngestFile(ctx, path, func(uri string, err error) {
		if err != nil {
			a.log.Warn(ctx, "photo upload failed", "path", path, "err", err)
			return
		}
		item, err := a.scrapbook.Add(ctx, uri, caption)
		if err != nil {
			a.log.Error(ctx, "error saving photo", "err", err)
			return
		}
		printlnFn("Added to scrapbook:", item.Caption)
	})
	a.track(h.Done())
	printlnFn("Uploading", path, "...")
	return nil
}

// RemovePhoto removes a scrapbook item by id.
func (a *App) RemovePhoto(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		printlnFn("Usage: rmphoto <id>")
		return err
	}
	if _, err := a.scrapbook.Remove(ctx, id); err != nil {
		a.log.Error(ctx, "error removing photo", "err", err)
		return err
	}
	return nil
}

// Drag picks up the item at a 1-based position.
func (a *App) Drag(ctx context.Context, args []string) error {
	pos, err := parsePositions(args, 1)
	if err != nil {
		printlnFn("Usage: drag <position>")
		return err
	}
	a.scrapbook.BeginDrag(pos[0])
	a.scrapbook.DragOver(pos[0])
	return nil
}

// Drop releases the dragged item at a 1-based position.
func (a *App) Drop(ctx context.Context, args []string) error {
	pos, err := parsePositions(args, 1)
	if err != nil {
		printlnFn("Usage: drop <position>")
		return err
	}
	_, moved, err := a.scrapbook.Drop(ctx, pos[0])
	return a.reportMove(ctx, moved, err)
}

// Move relocates the item at one 1-based position to another.
func (a *App) Move(ctx context.Context, args []string) error {
	pos, err := parsePositions(args, 2)
	if err != nil {
		printlnFn("Usage: move <from> <to>")
		return err
	}
	_, moved, err := a.scrapbook.Move(ctx, pos[0], pos[1])
	return a.reportMove(ctx, moved, err)
}

func (a *App) reportMove(ctx context.Context, moved bool, err error) error {
	switch {
	case errors.Is(err, common.ErrNoActiveDrag):
		printlnFn("Nothing is being dragged. Use: drag <position>")
		return nil
	case errors.Is(err, common.ErrIndexOutOfRange):
		printlnFn("That spot is not in the scrapbook anymore.")
		return nil
	case err != nil:
		a.log.Error(ctx, "error reordering scrapbook", "err", err)
		return err
	}
	if moved {
		return a.Scrapbook(ctx, nil)
	}
	return nil
}

// parsePositions reads n 1-based positions and returns them 0-based.
func parsePositions(args []string, n int) ([]int, error) {
	if len(args) < n {
		return nil, common.ErrEmptyInput
	}
	out := make([]int, n)
	for i := range n {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, err
		}
		out[i] = v - 1
	}
	return out, nil
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s + " "
}

