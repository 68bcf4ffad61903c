package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
// Every command receives the words that followed it on the line.
type execIface interface {
	Profile(ctx context.Context, args []string) error
	Picture(ctx context.Context, args []string) error
	Effect(ctx context.Context, args []string) error
	About(ctx context.Context, args []string) error

	Friends(ctx context.Context, args []string) error
	AddFriend(ctx context.Context, args []string) error
	RemoveFriend(ctx context.Context, args []string) error

	Diary(ctx context.Context, args []string) error
	Save(ctx context.Context, args []string) error
	SaveStatus(ctx context.Context, args []string) error

	Chat(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error

	Scrapbook(ctx context.Context, args []string) error
	AddPhoto(ctx context.Context, args []string) error
	RemovePhoto(ctx context.Context, args []string) error
	Drag(ctx context.Context, args []string) error
	Drop(ctx context.Context, args []string) error
	Move(ctx context.Context, args []string) error

	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  profile | picture <file> | effect [name] | about
  friends | addfriend <name> | rmfriend <id>
  diary | save [text] | savestatus
  chat <message> | history | status <mood>
  scrapbook | addphoto <file> [caption] | rmphoto <id>
  drag <pos> | drop <pos> | move <from> <to>
  export <file> | import <file>
  help | exit`

// runREPL starts a simple read–eval–print loop for the glitterpage CLI.
//
// It reads a line from reader, parses the first token as the
// command, and dispatches the remaining tokens to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits on EOF or when the
// user types "exit" or "quit". Commands that prompt read from the same
// reader, so input stays in order when piped.
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	commands := map[string]func(context.Context, []string) error{
		"profile":    a.Profile,
		"picture":    a.Picture,
		"effect":     a.Effect,
		"about":      a.About,
		"friends":    a.Friends,
		"addfriend":  a.AddFriend,
		"rmfriend":   a.RemoveFriend,
		"diary":      a.Diary,
		"save":       a.Save,
		"savestatus": a.SaveStatus,
		"chat":       a.Chat,
		"history":    a.History,
		"status":     a.Status,
		"scrapbook":  a.Scrapbook,
		"addphoto":   a.AddPhoto,
		"rmphoto":    a.RemovePhoto,
		"drag":       a.Drag,
		"drop":       a.Drop,
		"move":       a.Move,
		"export":     a.Export,
		"import":     a.Import,
	}

	for {
		printlnFn(fmt.Sprintf("glitter%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)
			continue
		case "exit", "quit":
			printlnFn("Bye! xoxo 💋")
			return
		}

		run, ok := commands[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		_ = run(ctx, args)
	}
}
