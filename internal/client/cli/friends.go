package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/glitterpage/internal/common"
)

// Friends lists the friends, newest first.
func (a *App) Friends(ctx context.Context, args []string) error {
	list := a.friends.Friends()
	if len(list) == 0 {
		printlnFn("No friends yet. Add one with: addfriend <name>")
		return nil
	}
	printlnFn(fmt.Sprintf("Top %d friends:", len(list)))
	for _, f := range list {
		printlnFn(fmt.Sprintf("  %d  %s  %s", f.ID, f.Name, f.Avatar))
	}
	return nil
}

// AddFriend adds a friend. Blank and duplicate names are ignored.
func (a *App) AddFriend(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	_, added, err := a.friends.Add(ctx, name)
	switch {
	case errors.Is(err, common.ErrEmptyInput):
		printlnFn("Usage: addfriend <name>")
		return nil
	case errors.Is(err, common.ErrDuplicateName):
		return nil
	case err != nil:
		a.log.Error(ctx, "error adding friend", "err", err)
		return err
	}
	if added {
		printlnFn("Added", strings.TrimSpace(name), "💖")
	}
	return nil
}

// RemoveFriend removes a friend by id.
func (a *App) RemoveFriend(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		printlnFn("Usage: rmfriend <id>")
		return err
	}
	if _, err := a.friends.Remove(ctx, id); err != nil {
		a.log.Error(ctx, "error removing friend", "err", err)
		return err
	}
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, common.ErrEmptyInput
	}
	return strconv.ParseInt(args[0], 10, 64)
}
