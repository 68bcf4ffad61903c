package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// failingKV fails every call with err.
type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingKV) Set(context.Context, string, string) error          { return f.err }
func (f failingKV) Delete(context.Context, string) error               { return f.err }
func (f failingKV) List(context.Context) (map[string]string, error)    { return nil, f.err }
func (f failingKV) Replace(context.Context, map[string]string) error   { return f.err }

func TestJSON_RoundTrip(t *testing.T) {
	ctx := context.Background()
	d := New(kv.NewMemoryRepository(), nil)

	in := []item{{ID: 2, Name: "Zoe"}, {ID: 1, Name: "Mia"}}
	require.NoError(t, d.WriteJSON(ctx, "friends", in))

	out, ok := ReadJSON[[]item](ctx, d, "friends")
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestReadJSON_AbsentCorruptAndNull(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewMemoryRepository()
	d := New(repo, nil)

	_, ok := ReadJSON[[]item](ctx, d, "missing")
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "corrupt", `[{"id":`))
	v, ok := ReadJSON[[]item](ctx, d, "corrupt")
	assert.False(t, ok)
	assert.Nil(t, v)

	require.NoError(t, repo.Set(ctx, "wrongShape", `{"id":1}`))
	_, ok = ReadJSON[[]item](ctx, d, "wrongShape")
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "null", ` null `))
	_, ok = ReadJSON[[]item](ctx, d, "null")
	assert.False(t, ok)
}

func TestReadJSON_EmptyListIsPresent(t *testing.T) {
	ctx := context.Background()
	d := New(kv.NewMemoryRepository(), nil)
	require.NoError(t, d.WriteJSON(ctx, "scrapbook", []item{}))

	v, ok := ReadJSON[[]item](ctx, d, "scrapbook")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestText_RoundTripAndRemove(t *testing.T) {
	ctx := context.Background()
	d := New(kv.NewMemoryRepository(), nil)

	require.NoError(t, d.WriteText(ctx, "profileEffect", "sepia"))
	v, ok := d.ReadText(ctx, "profileEffect")
	assert.True(t, ok)
	assert.Equal(t, "sepia", v)

	require.NoError(t, d.Remove(ctx, "profileEffect"))
	_, ok = d.ReadText(ctx, "profileEffect")
	assert.False(t, ok)
}

func TestReadErrors_AreAbsent_WriteErrorsWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	d := New(failingKV{err: boom}, nil)

	_, ok := d.ReadText(ctx, "k")
	assert.False(t, ok)

	err := d.WriteText(ctx, "k", "v")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "write k")

	require.ErrorIs(t, d.Remove(ctx, "k"), boom)
}

func TestWriteJSON_EncodeError(t *testing.T) {
	d := New(kv.NewMemoryRepository(), nil)
	err := d.WriteJSON(context.Background(), "k", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode k")
}

func TestSnapshot_ExportImport(t *testing.T) {
	ctx := context.Background()
	src := New(kv.NewMemoryRepository(), nil)
	require.NoError(t, src.WriteText(ctx, "aboutMe", "hi"))
	require.NoError(t, src.WriteJSON(ctx, "friends", []item{{ID: 1, Name: "Mia"}}))

	var buf bytes.Buffer
	require.NoError(t, src.Export(ctx, &buf))

	dstRepo := kv.NewMemoryRepository()
	require.NoError(t, dstRepo.Set(ctx, "stale", "x"))
	dst := New(dstRepo, nil)

	n, err := dst.Import(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, ok := dst.ReadText(ctx, "stale")
	assert.False(t, ok)
	friends, ok := ReadJSON[[]item](ctx, dst, "friends")
	require.True(t, ok)
	assert.Equal(t, "Mia", friends[0].Name)
}

func TestImport_BadSnapshotLeavesStore(t *testing.T) {
	ctx := context.Background()
	repo := kv.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, "aboutMe", "keep"))
	d := New(repo, nil)

	_, err := d.Import(ctx, strings.NewReader("not json"))
	require.Error(t, err)

	v, ok := d.ReadText(ctx, "aboutMe")
	assert.True(t, ok)
	assert.Equal(t, "keep", v)
}

func TestExport_ListError(t *testing.T) {
	d := New(failingKV{err: errors.New("gone")}, nil)
	require.Error(t, d.Export(context.Background(), &bytes.Buffer{}))
}
