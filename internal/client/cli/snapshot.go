package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/glitterpage/internal/common"
)

// Export writes every stored value to a JSON file.
func (a *App) Export(ctx context.Context, args []string) error {
	path, err := a.pathArg(args, "File to export:")
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		a.log.Error(ctx, "error creating export file", "err", err)
		return err
	}
	defer f.Close()

	if err := a.store.Export(ctx, f); err != nil {
		a.log.Error(ctx, "error exporting", "err", err)
		return err
	}
	printlnFn("Exported to", path)
	return nil
}

// Import replaces every stored value with the contents of a JSON file and
// reloads the services.
func (a *App) Import(ctx context.Context, args []string) error {
	path, err := a.pathArg(args, "File to import:")
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		a.log.Error(ctx, "error opening import file", "err", err)
		return err
	}
	defer f.Close()

	n, err := a.store.Import(ctx, f)
	if err != nil {
		a.log.Error(ctx, "error importing", "err", err)
		return err
	}
	a.load(ctx)
	printlnFn(fmt.Sprintf("Imported %d values from %s", n, path))
	return nil
}

// pathArg joins args into a path, prompting for one when args is empty.
func (a *App) pathArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	path, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", common.ErrEmptyInput
	}
	return path, nil
}
