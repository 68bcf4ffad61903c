// Package storage adapts the kv store into the durable store the entity
// repositories use: plain-text and JSON values by key, with undecodable
// values treated as absent.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/glitterpage/internal/client/repositories/kv"
	"github.com/dmitrijs2005/glitterpage/internal/logging"
)

// Durable wraps a kv.Repository. It is safe to share between repositories.
type Durable struct {
	kv  kv.Repository
	log logging.Logger
}

// New returns a Durable over repo. A nil logger discards output.
func New(repo kv.Repository, log logging.Logger) *Durable {
	if log == nil {
		log = logging.Nop()
	}
	return &Durable{kv: repo, log: log.With("component", "storage")}
}

// ReadText returns the raw value under key. Read failures are logged and
// reported as absent.
func (d *Durable) ReadText(ctx context.Context, key string) (string, bool) {
	v, ok, err := d.kv.Get(ctx, key)
	if err != nil {
		d.log.Error(ctx, "read failed, treating as absent", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

// WriteText stores value under key unconditionally.
func (d *Durable) WriteText(ctx context.Context, key, value string) error {
	if err := d.kv.Set(ctx, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// WriteJSON encodes v and stores it under key unconditionally.
func (d *Durable) WriteJSON(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return d.WriteText(ctx, key, string(b))
}

// Remove deletes key.
func (d *Durable) Remove(ctx context.Context, key string) error {
	if err := d.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// ReadJSON decodes the value under key into a fresh T. It returns false
// when the key is absent, unreadable, JSON null, or does not decode as T.
func ReadJSON[T any](ctx context.Context, d *Durable, key string) (T, bool) {
	var zero T

	raw, ok := d.ReadText(ctx, key)
	if !ok {
		return zero, false
	}
	if bytes.Equal(bytes.TrimSpace([]byte(raw)), []byte("null")) {
		d.log.Warn(ctx, "stored value is null, treating as absent", "key", key)
		return zero, false
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		d.log.Warn(ctx, "stored value does not decode, treating as absent", "key", key, "err", err)
		return zero, false
	}
	return v, true
}
