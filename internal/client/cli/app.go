package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/glitterpage/internal/client/client"
	"github.com/dmitrijs2005/glitterpage/internal/client/config"
	"github.com/dmitrijs2005/glitterpage/internal/client/conversation"
	"github.com/dmitrijs2005/glitterpage/internal/client/genai"
	"github.com/dmitrijs2005/glitterpage/internal/client/services"
	"github.com/dmitrijs2005/glitterpage/internal/client/storage"
	"github.com/dmitrijs2005/glitterpage/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	repos     *client.Repositories
	store     *storage.Durable
	profile   services.ProfileService
	friends   services.FriendService
	diary     services.DiaryService
	scrapbook services.ScrapbookService
	status    *services.StatusService
	chat      *conversation.Conversation

	reader *bufio.Reader
	out    io.Writer

	// background tracks uploads and generated text still in flight.
	background sync.WaitGroup

	mu         sync.Mutex
	lastStatus string
}

// NewApp opens storage, builds the services and loads their state.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.DatabasePath, log)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	var gen genai.Generator
	gemini, err := genai.NewGeminiClient(c.GeminiAPIKey, c.GeminiModel, c.GeminiBaseURL, c.RequestTimeout)
	if err != nil {
		log.Warn(ctx, "generative text disabled", "err", err)
	} else {
		gen = gemini
	}
	fairy := genai.NewFairy(gen, log)

	a := &App{
		config:    c,
		log:       log,
		repos:     repos,
		store:     repos.Store,
		profile:   services.NewProfileService(repos.Profile, log),
		friends:   services.NewFriendService(repos.Friends, nil, log),
		diary:     services.NewDiaryService(repos.Diary, nil, log),
		scrapbook: services.NewScrapbookService(repos.Scrapbook, nil, nil, log),
		status:    services.NewStatusService(fairy, log),
		chat:      conversation.New(fairy, log),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
	a.load(ctx)
	return a, nil
}

func (a *App) load(ctx context.Context) {
	a.profile.Load(ctx)
	a.friends.Load(ctx)
	a.scrapbook.Load(ctx)
}

// Run starts the REPL on stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	printlnFn("Welcome to glitterpage ✨ (type 'help' for commands)")
	runREPL(ctx, a, a.prompt, a.reader)
}

// Close waits for background work and closes storage.
func (a *App) Close(ctx context.Context) {
	a.background.Wait()
	if a.repos == nil {
		return
	}
	if err := a.repos.Close(); err != nil {
		a.log.Error(ctx, "error closing database", "err", err)
	}
}

func (a *App) prompt() string {
	switch {
	case a.chat.Busy() && a.status.Busy():
		return "(fairy busy, status busy)"
	case a.chat.Busy():
		return "(fairy busy)"
	case a.status.Busy():
		return "(status busy)"
	}
	if i, ok := a.scrapbook.Dragging(); ok {
		return fmt.Sprintf("(dragging #%d)", i+1)
	}
	return ""
}

// track keeps Close waiting until done is closed.
func (a *App) track(done <-chan struct{}) {
	a.background.Add(1)
	go func() {
		defer a.background.Done()
		<-done
	}()
}
