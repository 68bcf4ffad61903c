package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Export writes every stored key as one JSON object of key -> raw value.
func (d *Durable) Export(ctx context.Context, w io.Writer) error {
	pairs, err := d.kv.List(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pairs); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// Import replaces the whole store with the pairs read from r. A snapshot
// that does not decode leaves the store untouched.
func (d *Durable) Import(ctx context.Context, r io.Reader) (int, error) {
	var pairs map[string]string
	if err := json.NewDecoder(r).Decode(&pairs); err != nil {
		return 0, fmt.Errorf("import: decode snapshot: %w", err)
	}
	if err := d.kv.Replace(ctx, pairs); err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}
	d.log.Info(ctx, "snapshot imported", "keys", len(pairs))
	return len(pairs), nil
}
