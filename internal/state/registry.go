package state

import (
	"sort"

	"github.com/atomicstack/mergechat/internal/theme"
	"github.com/atomicstack/mergechat/internal/view"
	"github.com/atomicstack/mergechat/internal/window"
)

// Record is the display metadata and navigation state of one window.
type Record struct {
	Title string
	Scale float64
	Theme theme.Name
	Nav   view.Machine
}

// Registry is the ordered set of open windows keyed by window ID. Key order is
// the ID order handed out by the window host.
type Registry interface {
	Insert(id window.ID, title string, initial view.View) bool
	Remove(id window.ID) bool
	Get(id window.ID) (Record, bool)
	Update(id window.ID, fn func(*Record)) bool
	Primary() (window.ID, bool)
	Find(match func(window.ID, Record) bool) (window.ID, bool)
	IDs() []window.ID
	Len() int
}

type registry struct {
	records map[window.ID]*Record
	order   []window.ID
}

func NewRegistry() Registry {
	return &registry{records: make(map[window.ID]*Record)}
}

// Insert adds a window showing initial. An id that is already present is left
// untouched and Insert reports false.
func (r *registry) Insert(id window.ID, title string, initial view.View) bool {
	if _, ok := r.records[id]; ok {
		return false
	}
	r.records[id] = &Record{
		Title: title,
		Scale: 1.0,
		Theme: theme.Default(),
		Nav:   view.NewMachine(initial),
	}
	idx := sort.Search(len(r.order), func(i int) bool { return r.order[i] >= id })
	r.order = append(r.order, 0)
	copy(r.order[idx+1:], r.order[idx:])
	r.order[idx] = id
	return true
}

// Remove drops id if present and reports whether the registry is now empty.
func (r *registry) Remove(id window.ID) bool {
	if _, ok := r.records[id]; ok {
		delete(r.records, id)
		idx := sort.Search(len(r.order), func(i int) bool { return r.order[i] >= id })
		if idx < len(r.order) && r.order[idx] == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
		}
	}
	return len(r.records) == 0
}

func (r *registry) Get(id window.ID) (Record, bool) {
	rec, ok := r.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Update applies fn to the record for id. Unknown ids are ignored.
func (r *registry) Update(id window.ID, fn func(*Record)) bool {
	rec, ok := r.records[id]
	if !ok || fn == nil {
		return false
	}
	fn(rec)
	return true
}

// Primary returns the least window ID. It matches the first-opened surviving
// window only while the host assigns IDs in creation order.
func (r *registry) Primary() (window.ID, bool) {
	if len(r.order) == 0 {
		return 0, false
	}
	return r.order[0], true
}

// Find returns the first window in key order accepted by match.
func (r *registry) Find(match func(window.ID, Record) bool) (window.ID, bool) {
	if match == nil {
		return 0, false
	}
	for _, id := range r.order {
		if match(id, *r.records[id]) {
			return id, true
		}
	}
	return 0, false
}

func (r *registry) IDs() []window.ID {
	if len(r.order) == 0 {
		return nil
	}
	dup := make([]window.ID, len(r.order))
	copy(dup, r.order)
	return dup
}

func (r *registry) Len() int {
	return len(r.records)
}
