package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/glitterpage/internal/client/conversation"
	"github.com/dmitrijs2005/glitterpage/internal/client/genai"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/diary"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/friends"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/kv"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/profile"
	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/scrapbook"
	"github.com/dmitrijs2005/glitterpage/internal/client/services"
	"github.com/dmitrijs2005/glitterpage/internal/client/storage"
	"github.com/dmitrijs2005/glitterpage/internal/logging"
)

// ------------ helpers ------------

type output struct {
	mu    sync.Mutex
	lines []string
}

func (o *output) contains(sub string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, l := range o.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func (o *output) reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = nil
}

func captureOutput(t *testing.T) *output {
	t.Helper()
	out := &output{}
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out.mu.Lock()
		defer out.mu.Unlock()
		out.lines = append(out.lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return out
}

type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, _ string, contents []genai.Record) (string, error) {
	last := contents[len(contents)-1]
	return "echo: " + last.Parts[0].Text, nil
}

func newTestApp(t *testing.T, input string, gen genai.Generator) *App {
	t.Helper()
	store := storage.New(kv.NewMemoryRepository(), logging.Nop())
	fairy := genai.NewFairy(gen, nil)
	a := &App{
		log:       logging.Nop(),
		store:     store,
		profile:   services.NewProfileService(profile.NewDurableRepository(store), nil),
		friends:   services.NewFriendService(friends.NewDurableRepository(store), nil, nil),
		diary:     services.NewDiaryService(diary.NewDurableRepository(store), nil, nil),
		scrapbook: services.NewScrapbookService(scrapbook.NewDurableRepository(store, nil), nil, nil, nil),
		status:    services.NewStatusService(fairy, nil),
		chat:      conversation.New(fairy, nil),
		reader:    bufio.NewReader(strings.NewReader(input)),
		out:       &strings.Builder{},
	}
	a.load(context.Background())
	return a
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func writeImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))
	return path
}

// ------------ tests ------------

func TestFriendsCommands(t *testing.T) {
	ctx := context.Background()
	out := captureOutput(t)
	a := newTestApp(t, "", nil)

	require.NoError(t, a.AddFriend(ctx, []string{"Mia"}))
	require.NoError(t, a.AddFriend(ctx, []string{"mia"}))
	require.NoError(t, a.AddFriend(ctx, []string{"Zoe"}))
	require.NoError(t, a.AddFriend(ctx, nil))

	list := a.friends.Friends()
	require.Len(t, list, 2)
	assert.Equal(t, "Zoe", list[0].Name)
	assert.True(t, out.contains("Usage: addfriend"))

	require.NoError(t, a.RemoveFriend(ctx, []string{fmt.Sprint(list[0].ID)}))
	assert.Len(t, a.friends.Friends(), 1)
	assert.Error(t, a.RemoveFriend(ctx, []string{"abc"}))

	out.reset()
	require.NoError(t, a.Friends(ctx, nil))
	assert.True(t, out.contains("Top 1 friends"))
}

func TestPictureAndEffect(t *testing.T) {
	ctx := context.Background()
	out := captureOutput(t)
	a := newTestApp(t, "", nil)

	require.NoError(t, a.Picture(ctx, []string{writeImage(t, "me.png")}))
	a.background.Wait()
	assert.True(t, strings.HasPrefix(a.profile.Profile().Picture, "data:image/png;base64,"))
	assert.True(t, out.contains("Profile picture updated"))

	require.NoError(t, a.Effect(ctx, []string{"Sepia"}))
	assert.Equal(t, "sepia", string(a.profile.Profile().Effect))
	assert.Error(t, a.Effect(ctx, []string{"sparkle"}))
}

func TestPicture_MissingFileLeavesProfile(t *testing.T) {
	ctx := context.Background()
	captureOutput(t)
	a := newTestApp(t, "", nil)
	before := a.profile.Profile()

	require.NoError(t, a.Picture(ctx, []string{filepath.Join(t.TempDir(), "nope.png")}))
	a.background.Wait()
	assert.Equal(t, before, a.profile.Profile())
}

func TestAboutAndDiary(t *testing.T) {
	ctx := context.Background()
	out := captureOutput(t)
	a := newTestApp(t, "I love glitter\nand cats\n\nfirst entry\n\n", nil)

	require.NoError(t, a.About(ctx, nil))
	assert.Equal(t, "I love glitter\nand cats", a.profile.Profile().AboutMe)

	require.NoError(t, a.Save(ctx, nil))
	require.NoError(t, a.Save(ctx, []string{"second", "entry"}))

	entries := a.diary.List(ctx)
	require.Len(t, entries, 2)
	assert.Equal(t, "second entry", entries[0].Text)
	assert.Equal(t, "first entry", entries[1].Text)

	out.reset()
	require.NoError(t, a.Diary(ctx, nil))
	assert.True(t, out.contains("first entry"))
}

func TestChatAndHistory(t *testing.T) {
	ctx := context.Background()
	out := captureOutput(t)
	a := newTestApp(t, "", echoGenerator{})

	require.NoError(t, a.Chat(ctx, []string{"hi", "fairy"}))
	a.background.Wait()
	assert.True(t, out.contains("echo: hi fairy"))

	turns := a.chat.Turns()
	require.Len(t, turns, 3)
	assert.Equal(t, conversation.Greeting, turns[0].Text)

	require.NoError(t, a.Chat(ctx, nil))
	assert.Len(t, a.chat.Turns(), 3)

	out.reset()
	require.NoError(t, a.History(ctx, nil))
	assert.True(t, out.contains("you: hi fairy"))
}

func TestChat_WithoutKey(t *testing.T) {
	ctx := context.Background()
	out := captureOutput(t)
	a := newTestApp(t, "", nil)

	require.NoError(t, a.Chat(ctx, []string{"hello?"}))
	a.background.Wait()
	assert.True(t, out.contains(genai.ChatNoKey))
}

func TestStatusThenSaveStatus(t *testing.T) {
	ctx := context.Background()
	captureOutput(t)
	a := newTestApp(t, "", nil)

	require.NoError(t, a.SaveStatus(ctx, nil))
	assert.Empty(t, a.diary.List(ctx))

	require.NoError(t, a.Status(ctx, []string{"happy"}))
	a.background.Wait()
	require.NoError(t, a.SaveStatus(ctx, nil))

	entries := a.diary.List(ctx)
	require.Len(t, entries, 1)
	assert.Equal(t, genai.StatusNoKey, entries[0].Text)
}

func TestScrapbookCommands(t *testing.T) {
	ctx := context.Background()
	out := captureOutput(t)
	origWidth := termWidth
	termWidth = func() int { return 2 * cellWidth }
	t.Cleanup(func() { termWidth = origWidth })

	a := newTestApp(t, "", nil)
	require.Len(t, a.scrapbook.Items(), 3)

	require.NoError(t, a.Scrapbook(ctx, nil))
	assert.True(t, out.contains("#1 Besties"))
	assert.True(t, out.contains("#3 So moody"))

	require.NoError(t, a.AddPhoto(ctx, []string{writeImage(t, "party.png"), "party", "time"}))
	a.background.Wait()
	items := a.scrapbook.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "party time", items[0].Caption)

	require.NoError(t, a.Drag(ctx, []string{"1"}))
	require.NoError(t, a.Drop(ctx, []string{"3"}))
	items = a.scrapbook.Items()
	assert.Equal(t, "party time", items[2].Caption)

	out.reset()
	require.NoError(t, a.Drop(ctx, []string{"2"}))
	assert.True(t, out.contains("Nothing is being dragged"))

	require.NoError(t, a.Move(ctx, []string{"3", "9"}))
	assert.True(t, out.contains("not in the scrapbook"))

	require.NoError(t, a.RemovePhoto(ctx, []string{fmt.Sprint(items[2].ID)}))
	assert.Len(t, a.scrapbook.Items(), 3)
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	captureOutput(t)
	path := filepath.Join(t.TempDir(), "backup.json")

	a := newTestApp(t, "", nil)
	require.NoError(t, a.AddFriend(ctx, []string{"Mia"}))
	require.NoError(t, a.Export(ctx, []string{path}))

	b := newTestApp(t, path+"\n", nil)
	require.NoError(t, b.Import(ctx, nil))
	require.Len(t, b.friends.Friends(), 1)
	assert.Equal(t, "Mia", b.friends.Friends()[0].Name)
}

func TestClose_WithoutRepos(t *testing.T) {
	a := newTestApp(t, "", nil)
	assert.NotPanics(t, func() { a.Close(context.Background()) })
}

func TestPrompt(t *testing.T) {
	a := newTestApp(t, "", nil)
	assert.Equal(t, "", a.prompt())
	a.scrapbook.BeginDrag(1)
	assert.Equal(t, "(dragging #2)", a.prompt())
}
