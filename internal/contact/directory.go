package contact

import (
	"slices"
	"time"
)

// DefaultWindowDays is the look-ahead used by the birthdays command.
const DefaultWindowDays = 7

// MaxWindowDays is the longest useful look-ahead: every anniversary falls
// within it.
const MaxWindowDays = 366

// Directory stores records by name and iterates them in insertion order.
// It is not safe for concurrent use.
type Directory struct {
	records map[string]*Record
	order   []string
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{records: make(map[string]*Record)}
}

// AddRecord inserts r, replacing any record with the same name. A replaced
// name keeps its original position.
func (d *Directory) AddRecord(r *Record) {
	if _, exists := d.records[r.name]; !exists {
		d.order = append(d.order, r.name)
	}
	d.records[r.name] = r
}

// Find returns the record stored under name. Matching is exact.
func (d *Directory) Find(name string) (*Record, error) {
	r, ok := d.records[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return r, nil
}

// Delete removes name if present.
func (d *Directory) Delete(name string) {
	if _, ok := d.records[name]; !ok {
		return
	}
	delete(d.records, name)
	if i := slices.Index(d.order, name); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}
}

// Len returns the number of records.
func (d *Directory) Len() int { return len(d.records) }

// All returns every record in insertion order.
func (d *Directory) All() []*Record {
	out := make([]*Record, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.records[name])
	}
	return out
}

// UpcomingBirthdays returns the records whose next birthday falls within
// [today, today+windowDays], comparing month and day only. Results keep
// insertion order. The window is clamped to [0, MaxWindowDays].
func (d *Directory) UpcomingBirthdays(today time.Time, windowDays int) []*Record {
	windowDays = min(max(windowDays, 0), MaxWindowDays)
	start := dateOf(today)
	end := start.AddDate(0, 0, windowDays)

	var out []*Record
	for _, name := range d.order {
		r := d.records[name]
		b, ok := r.Birthday()
		if !ok {
			continue
		}
		if next := b.nextOccurrence(start); !next.After(end) {
			out = append(out, r)
		}
	}
	return out
}
