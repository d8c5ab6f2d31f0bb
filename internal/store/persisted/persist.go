// Package persisted implements the locally persisted stores: campaigns,
// NPCs and codex bookmarks. Each store rehydrates from a Storage at
// construction, falls back to the seed snapshot when nothing usable is
// stored, and rewrites its full snapshot after every mutation.
package persisted

import (
	"encoding/json"
	"log/slog"
)

// Storage is synchronous, best-effort durable key/blob storage.
type Storage interface {
	Read(key string) (blob []byte, ok bool, err error)
	Write(key string, blob []byte) error
}

const (
	campaignsKey = "feyforge.campaigns"
	npcsKey      = "feyforge.npcs"
	codexKey     = "feyforge.codex"
)

// persister reads and writes one JSON snapshot under a key. A nil storage
// turns both operations into no-ops.
type persister[S any] struct {
	storage Storage
	key     string
	log     *slog.Logger
}

// load returns the stored snapshot, or ok=false when the key is absent or
// unreadable. Failures are logged, never returned.
func (p persister[S]) load() (snap S, ok bool) {
	if p.storage == nil {
		return snap, false
	}
	blob, found, err := p.storage.Read(p.key)
	if err != nil {
		p.log.Warn("read snapshot failed, using seed", slog.String("key", p.key), slog.String("error", err.Error()))
		return snap, false
	}
	if !found {
		return snap, false
	}
	if err := json.Unmarshal(blob, &snap); err != nil {
		p.log.Warn("parse snapshot failed, using seed", slog.String("key", p.key), slog.String("error", err.Error()))
		var zero S
		return zero, false
	}
	return snap, true
}

func (p persister[S]) save(snap S) {
	if p.storage == nil {
		return
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		p.log.Error("encode snapshot failed", slog.String("key", p.key), slog.String("error", err.Error()))
		return
	}
	if err := p.storage.Write(p.key, blob); err != nil {
		p.log.Error("write snapshot failed", slog.String("key", p.key), slog.String("error", err.Error()))
	}
}
