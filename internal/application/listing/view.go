package listing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/partytracker/party-service/internal/domain"
)

var (
	ErrFetchFailed = errors.New("record source fetch failed")
	ErrViewClosed  = errors.New("listing view closed")
)

type State int

const (
	Idle State = iota
	RecomputePending
	Syncing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case RecomputePending:
		return "recompute_pending"
	case Syncing:
		return "syncing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Filter is implemented by EventFilter and ClubFilter.
type Filter[F any] interface {
	Equal(F) bool
}

// Codec maps a filter set to and from its query form.
type Codec[F any] struct {
	Serialize   func(F) Query
	Deserialize func(Query) F
}

var (
	EventCodec = Codec[EventFilter]{Serialize: SerializeEvents, Deserialize: DeserializeEvents}
	ClubCodec  = Codec[ClubFilter]{Serialize: SerializeClubs, Deserialize: DeserializeClubs}
)

// ApplyFunc derives the filtered, sorted view of a snapshot.
type ApplyFunc[R any, F any] func(records []R, f F) []R

// EventApply binds ApplyEvents to an evaluator.
func EventApply(ev Evaluator) ApplyFunc[domain.Event, EventFilter] {
	return func(records []domain.Event, f EventFilter) []domain.Event {
		return ApplyEvents(ev, records, f)
	}
}

func ClubApply(ev Evaluator) ApplyFunc[domain.Club, ClubFilter] {
	return func(records []domain.Club, f ClubFilter) []domain.Club {
		return ApplyClubs(ev, records, f)
	}
}

// View keeps a filter set, a record snapshot, the derived items and the
// navigation query consistent. Every change to the filter set or snapshot
// runs one recompute and at most one query write; a navigation change that
// only echoes the view's own write is ignored.
type View[R any, F Filter[F]] struct {
	mu    sync.Mutex
	nav   Navigator
	codec Codec[F]
	apply ApplyFunc[R, F]

	state       State
	filter      F
	snapshot    []R
	items       []R
	lastWritten Query
	writeSeq    uint64
	writing     int
	recomputes  int

	subs    map[int]func([]R)
	nextSub int

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// NewView hydrates the filter set from the navigator's current query.
func NewView[R any, F Filter[F]](nav Navigator, codec Codec[F], apply ApplyFunc[R, F]) *View[R, F] {
	ctx, cancel := context.WithCancel(context.Background())
	q := nav.ReadQuery()
	return &View[R, F]{
		nav:         nav,
		codec:       codec,
		apply:       apply,
		state:       Idle,
		filter:      codec.Deserialize(q),
		items:       []R{},
		lastWritten: q,
		subs:        map[int]func([]R){},
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (v *View[R, F]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View[R, F]) Filter() F {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// Items returns a copy of the current filtered, sorted view.
func (v *View[R, F]) Items() []R {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.items)
}

// Recomputes reports how many recomputes have run.
func (v *View[R, F]) Recomputes() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.recomputes
}

// Subscribe registers fn to receive the items after every recompute.
func (v *View[R, F]) Subscribe(fn func(items []R)) (unsubscribe func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextSub
	v.nextSub++
	v.subs[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}

// SetFilter replaces the filter set. Setting an equal filter set is a no-op.
func (v *View[R, F]) SetFilter(f F) {
	v.mu.Lock()
	if v.closed || f.Equal(v.filter) {
		v.mu.Unlock()
		return
	}
	v.filter = f
	v.recomputeAndUnlock()
}

// Update edits a copy of the filter set; any number of field changes made in
// fn result in a single recompute.
func (v *View[R, F]) Update(fn func(f *F)) {
	f := v.Filter()
	fn(&f)
	v.SetFilter(f)
}

// SetSnapshot replaces the record snapshot.
func (v *View[R, F]) SetSnapshot(records []R) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.snapshot = slices.Clone(records)
	v.recomputeAndUnlock()
}

// NavigationChanged re-reads the navigator after a navigation event. While
// the view has query writes in flight the navigator only echoes them, and
// the writes end with the navigator holding the view's latest query.
func (v *View[R, F]) NavigationChanged() {
	v.mu.Lock()
	if v.closed || v.writing > 0 {
		v.mu.Unlock()
		return
	}
	q := v.nav.ReadQuery()
	if q.Equal(v.lastWritten) {
		v.mu.Unlock()
		return
	}
	v.lastWritten = q
	f := v.codec.Deserialize(q)
	if f.Equal(v.filter) {
		v.mu.Unlock()
		return
	}
	v.filter = f
	v.recomputeAndUnlock()
}

// Load performs the one-shot initial fetch. The result is applied with the
// filter set current when the fetch resolves. If the view is closed or ctx
// ends first, the result is discarded.
func (v *View[R, F]) Load(ctx context.Context, fetch func(ctx context.Context) ([]R, error)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(v.ctx, cancel)
	defer stop()

	records, err := fetch(ctx)

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrViewClosed
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		v.mu.Unlock()
		return ctxErr
	}
	if err != nil {
		v.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	v.snapshot = slices.Clone(records)
	v.recomputeAndUnlock()
	return nil
}

// Close tears the view down. Pending loads are cancelled and their results
// dropped; subscribers are released.
func (v *View[R, F]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	v.cancel()
	clear(v.subs)
}

// recomputeAndUnlock must be called with v.mu held. The query write and
// subscriber callbacks run without the lock so they may call back into v.
func (v *View[R, F]) recomputeAndUnlock() {
	v.state = RecomputePending
	v.items = v.apply(v.snapshot, v.filter)
	if v.items == nil {
		v.items = []R{}
	}
	v.recomputes++

	v.state = Syncing
	q := v.codec.Serialize(v.filter)
	write := !q.Equal(v.lastWritten)
	var seq uint64
	if write {
		v.lastWritten = q
		v.writeSeq++
		seq = v.writeSeq
		v.writing++
	}
	v.mu.Unlock()

	if write {
		v.syncQuery(q, seq)
	}

	v.mu.Lock()
	v.state = Idle
	items := slices.Clone(v.items)
	subs := make([]func([]R), 0, len(v.subs))
	for _, id := range sortedKeys(v.subs) {
		subs = append(subs, v.subs[id])
	}
	v.mu.Unlock()

	for _, fn := range subs {
		fn(items)
	}
}

// syncQuery writes q. When a concurrent recompute queued a newer query in
// the meantime it writes that one as well, so the last write to finish
// always carries lastWritten.
func (v *View[R, F]) syncQuery(q Query, seq uint64) {
	for {
		v.nav.WriteQuery(q)

		v.mu.Lock()
		if seq == v.writeSeq {
			v.writing--
			v.mu.Unlock()
			return
		}
		q, seq = v.lastWritten, v.writeSeq
		v.mu.Unlock()
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
