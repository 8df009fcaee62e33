package listing

import (
	"net/url"
	"sync"
)

// Navigator is the navigation state a listing view syncs its query into.
// WriteQuery replaces the shareable parameters and must not reload records.
type Navigator interface {
	ReadQuery() Query
	WriteQuery(q Query)
}

// MemoryNavigator keeps the query of a single location in memory. Listeners
// registered with OnChange run after every write or navigation, including
// writes made by the view itself.
type MemoryNavigator struct {
	mu        sync.Mutex
	values    url.Values
	writes    int
	listeners []func()
}

func NewMemoryNavigator(rawQuery string) *MemoryNavigator {
	v, _ := url.ParseQuery(rawQuery)
	if v == nil {
		v = url.Values{}
	}
	return &MemoryNavigator{values: v}
}

func (n *MemoryNavigator) ReadQuery() Query {
	n.mu.Lock()
	defer n.mu.Unlock()
	return QueryFromValues(n.values)
}

func (n *MemoryNavigator) WriteQuery(q Query) {
	n.mu.Lock()
	n.values = q.Values()
	n.writes++
	ls := append([]func(){}, n.listeners...)
	n.mu.Unlock()

	for _, fn := range ls {
		fn()
	}
}

// Navigate simulates a navigation not caused by the view (back button,
// pasted link).
func (n *MemoryNavigator) Navigate(rawQuery string) {
	v, _ := url.ParseQuery(rawQuery)
	if v == nil {
		v = url.Values{}
	}
	n.mu.Lock()
	n.values = v
	ls := append([]func(){}, n.listeners...)
	n.mu.Unlock()

	for _, fn := range ls {
		fn()
	}
}

func (n *MemoryNavigator) OnChange(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

// Writes reports how many times WriteQuery was called.
func (n *MemoryNavigator) Writes() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.writes
}

func (n *MemoryNavigator) RawQuery() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.values.Encode()
}
