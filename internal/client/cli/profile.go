package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/glitterpage/internal/client/ingest"
	"github.com/dmitrijs2005/glitterpage/internal/client/models"
	"github.com/dmitrijs2005/glitterpage/internal/common"
)

// Profile prints the current profile.
func (a *App) Profile(ctx context.Context, args []string) error {
	p := a.profile.Profile()
	printlnFn("Picture:", shorten(p.Picture, 60))
	printlnFn("Effect: ", effectLabel(p.Effect))
	if p.AboutMe == "" {
		printlnFn("About me: (empty)")
	} else {
		printlnFn("About me:\n" + p.AboutMe)
	}
	return nil
}

// Picture uploads an image file as the profile picture in the background.
func (a *App) Picture(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: picture <image file>")
		return common.ErrEmptyInput
	}
	path := strings.Join(args, " ")

	h := ingest.IngestFile(ctx, path, func(uri string, err error) {
		if err != nil {
			a.log.Warn(ctx, "picture upload failed", "path", path, "err", err)
			return
		}
		if _, err := a.profile.SetPicture(ctx, uri); err != nil {
			a.log.Error(ctx, "error saving picture", "err", err)
			return
		}
		printlnFn("Profile picture updated 📸")
	})
	a.track(h.Done())
	printlnFn("Uploading", path, "...")
	return nil
}

// Effect sets the picture effect, or lists the choices without an argument.
func (a *App) Effect(ctx context.Context, args []string) error {
	if len(args) == 0 {
		names := make([]string, 0, len(models.Effects))
		for _, e := range models.Effects {
			names = append(names, string(e))
		}
		printlnFn("Effects:", strings.Join(names, ", "))
		return nil
	}

	p, err := a.profile.SetEffect(ctx, models.Effect(strings.ToLower(args[0])))
	if errors.Is(err, common.ErrUnknownEffect) {
		printlnFn("Unknown effect:", args[0])
		return err
	}
	if err != nil {
		a.log.Error(ctx, "error saving effect", "err", err)
		return err
	}
	printlnFn("Effect:", effectLabel(p.Effect))
	return nil
}

// About edits and saves the about-me text.
func (a *App) About(ctx context.Context, args []string) error {
	text, err := GetMultiline(a.reader, "Tell the world about yourself:", a.out)
	if err != nil {
		return err
	}
	a.profile.SetAboutMe(text)
	if err := a.profile.SaveAboutMe(ctx); err != nil {
		a.log.Error(ctx, "error saving about me", "err", err)
		return err
	}
	printlnFn("Saved 💾")
	return nil
}

func effectLabel(e models.Effect) string {
	if c := e.Classes(); c != "" {
		return fmt.Sprintf("%s [%s]", e, c)
	}
	return string(e)
}

// shorten cuts s to at most n runes, marking the cut with "...".
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
