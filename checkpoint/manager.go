package checkpoint

import (
	"math/rand"
	"time"

	"github.com/IreGaddr/tx2-pack/container"
	"github.com/IreGaddr/tx2-pack/metadata"
	"github.com/IreGaddr/tx2-pack/store"
	"github.com/IreGaddr/tx2-pack/worldstate"
	"github.com/oklog/ulid/v2"
)

// Manager keeps a write-through cache of Checkpoints over a Store,
// plus an ordered chain of ids recording the linear history each new
// checkpoint links onto.
type Manager struct {
	store  *store.Store
	writer *container.Writer
	reader *container.Reader
	cache  map[string]*Checkpoint
	chain  []string
}

// New returns a Manager persisting through st, encoding with w and
// decoding with r.
func New(st *store.Store, w *container.Writer, r *container.Reader) *Manager {
	return &Manager{
		store:  st,
		writer: w,
		reader: r,
		cache:  make(map[string]*Checkpoint),
	}
}

// Create builds a Checkpoint for snapshot, parented to the manager's
// current chain tail, and persists it. If id is empty a ULID is
// minted so callers are never required to invent their own ids. The
// chain and cache are only mutated after persistence succeeds: a
// failed save leaves the manager exactly as it was before the call.
func (m *Manager) Create(id string, snapshot *worldstate.PackedSnapshot) (*Checkpoint, error) {
	if id == "" {
		id = newULID()
	}

	var parentID *string
	if len(m.chain) > 0 {
		tail := m.chain[len(m.chain)-1]
		parentID = &tail
	}

	meta := metadata.New(id)
	meta.ParentID = parentID

	cp := &Checkpoint{
		ID:       id,
		Snapshot: snapshot,
		Metadata: meta,
		ParentID: parentID,
	}

	if _, err := m.store.Save(snapshot, meta, m.writer); err != nil {
		return nil, err
	}

	m.chain = append(m.chain, id)
	m.cache[id] = cp
	return cp, nil
}

// Load returns id's Checkpoint from the cache if present; otherwise it
// loads from the store and inserts into the cache. ParentID is
// recovered from the persisted metadata sidecar when one was written,
// so a loaded checkpoint's parent link survives a process restart as
// long as its sidecar does.
func (m *Manager) Load(id string) (*Checkpoint, error) {
	if cp, ok := m.cache[id]; ok {
		return cp, nil
	}

	snap, meta, err := m.store.Load(id, m.reader)
	if err != nil {
		return nil, err
	}

	cp := &Checkpoint{
		ID:       id,
		Snapshot: snap,
		Metadata: meta,
		ParentID: meta.ParentID,
	}
	m.cache[id] = cp
	return cp, nil
}

// Delete removes id from the store, the cache, and the chain.
func (m *Manager) Delete(id string) error {
	if err := m.store.Delete(id); err != nil {
		return err
	}
	delete(m.cache, id)
	m.chain = removeID(m.chain, id)
	return nil
}

// PruneOld repeatedly deletes the chain's oldest checkpoint until the
// chain holds at most keepCount entries.
func (m *Manager) PruneOld(keepCount int) error {
	for len(m.chain) > keepCount {
		if err := m.Delete(m.chain[0]); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll deletes every checkpoint in chain order. The manager is
// empty on success.
func (m *Manager) ClearAll() error {
	for len(m.chain) > 0 {
		if err := m.Delete(m.chain[0]); err != nil {
			return err
		}
	}
	return nil
}

// List enumerates the store, not the cache, and is the source of
// truth for what has actually persisted.
func (m *Manager) List() ([]string, error) {
	return m.store.List()
}

// Chain returns the manager's current linear history as an ordered
// slice of ids, oldest first.
func (m *Manager) Chain() []string {
	chain := make([]string, len(m.chain))
	copy(chain, m.chain)
	return chain
}

func removeID(chain []string, id string) []string {
	out := chain[:0]
	for _, existing := range chain {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

func newULID() string {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
