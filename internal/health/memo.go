package health

import (
    "sync"
    "time"

    "xeni/internal/domain"
)

// Memo caches reports per case and recomputes only when the input snapshot's
// fingerprint changes. It keeps one entry per case.
type Memo struct {
    mu      sync.Mutex
    entries map[string]Report
    now     func() time.Time
}

// NewMemo builds a memo reading the time from now, or time.Now when nil.
func NewMemo(now func() time.Time) *Memo {
    if now == nil {
        now = time.Now
    }
    return &Memo{entries: make(map[string]Report), now: now}
}

// Evaluate returns the cached report when nothing it depends on has changed.
// The second result reports whether the cache was hit.
func (m *Memo) Evaluate(b domain.CaseBundle, slots []domain.EvidenceSlotTemplate) (Report, bool) {
    now := m.now()
    fp := Fingerprint(b, slots, now)

    m.mu.Lock()
    defer m.mu.Unlock()
    if r, ok := m.entries[b.Case.ID]; ok && r.Fingerprint == fp {
        return r, true
    }
    r := Evaluate(b, slots, now)
    m.entries[b.Case.ID] = r
    return r, false
}
