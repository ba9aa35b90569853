package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/contre95/mediashelf/src/media"
)

// bucket is an ordered set of records, keyed by pointer identity.
type bucket []*media.Record

func (b bucket) with(r *media.Record) bucket {
	if slices.Contains(b, r) {
		return b
	}
	return append(b, r)
}

// Library is an in-memory implementation of media.Library with a key index
// and a value index over every record's metadata. The records it holds never
// leave it: reads return copies and updates are matched by Record.ID.
type Library struct {
	mu         sync.RWMutex
	nextID     uint64
	records    []*media.Record
	byID       map[uint64]*media.Record
	keyIndex   map[string]bucket
	valueIndex map[string]bucket
}

// NewLibrary creates an empty Library.
func NewLibrary() *Library {
	return &Library{
		byID:       make(map[uint64]*media.Record),
		keyIndex:   make(map[string]bucket),
		valueIndex: make(map[string]bucket),
	}
}

// Add stores a copy of r and indexes every keyword and value it holds. Adding
// a record structurally equal to one already held stores nothing. Either way
// r.ID is set to the held record's ID.
func (l *Library) Add(r *media.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := slices.IndexFunc(l.records, r.Equal); i >= 0 {
		slog.Debug("Record already in library, skipping", "filename", r.Filename, "path", r.Path)
		r.ID = l.records[i].ID
		return
	}
	l.nextID++
	r.ID = l.nextID
	held := r.Clone()
	for _, key := range held.Keys() {
		l.keyIndex[key] = l.keyIndex[key].with(held)
	}
	for _, value := range held.Values() {
		l.valueIndex[value] = l.valueIndex[value].with(held)
	}
	l.byID[held.ID] = held
	l.records = append(l.records, held)
	media.SortByFilename(l.records)
}

// held returns the library's own record for r, or nil when r was never added.
func (l *Library) held(r *media.Record) *media.Record {
	held, ok := l.byID[r.ID]
	if !ok {
		slog.Debug("Record not held by library", "filename", r.Filename, "id", r.ID)
		return nil
	}
	return held
}

// AddMetadata adds data to the held copy of r and indexes it, then refreshes
// r's metadata. Index entries from earlier states are not pruned.
func (l *Library) AddMetadata(data media.Metadata, r *media.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	held := l.held(r)
	if held == nil {
		return
	}
	held.AddMetadata(data)
	l.keyIndex[data.Keyword] = l.keyIndex[data.Keyword].with(held)
	l.valueIndex[data.Value] = l.valueIndex[data.Value].with(held)
	r.Metadata = slices.Clone(held.Metadata)
}

// RemoveMetadata removes data from every record holding it and then drops
// the keyword's bucket from the key index.
// NOTE: the value index keeps its entries for data.Value, so a later Search on
// the value can still return records that no longer hold it.
func (l *Library) RemoveMetadata(data media.Metadata) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.records {
		if r.HasMetadata(data) {
			r.RemoveMetadata(data)
		}
	}
	delete(l.keyIndex, data.Keyword)
}

// RemoveRecordField removes key from the held copy of r and refreshes r's
// metadata. A protected field is left in place and false is returned.
func (l *Library) RemoveRecordField(r *media.Record, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	held := l.held(r)
	if held == nil {
		return false
	}
	err := held.RemoveMetadataKey(key)
	var protected *media.ProtectedFieldError
	if errors.As(err, &protected) {
		slog.Debug(fmt.Sprintf("Cannot remove %s from %s because it is of type %s", protected.Reason.Field(), held.Filename, held.Kind),
			"reason", protected.Reason.String(), "key", key)
		return false
	}
	if err != nil {
		slog.Error("Failed to remove metadata", "filename", held.Filename, "key", key, "error", err)
		return false
	}
	r.Metadata = slices.Clone(held.Metadata)
	return true
}

// Search returns the records whose keyword equals term, followed by those
// whose value equals term, with duplicates removed.
func (l *Library) Search(term string) []*media.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return snapshot(l.search(term))
}

func (l *Library) search(term string) []*media.Record {
	var results []*media.Record
	for _, r := range l.keyIndex[term] {
		if !media.Contains(results, r) {
			results = append(results, r)
		}
	}
	for _, r := range l.valueIndex[term] {
		if !media.Contains(results, r) {
			results = append(results, r)
		}
	}
	return results
}

// SearchMetadata returns the records found by data.Value that are not found by
// data.Keyword.
func (l *Library) SearchMetadata(data media.Metadata) []*media.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	byKeyword := l.search(data.Keyword)
	var results []*media.Record
	for _, r := range l.search(data.Value) {
		if !media.Contains(byKeyword, r) {
			results = append(results, r)
		}
	}
	return snapshot(results)
}

// FilterBy expects a category tag (-a, -d, -i, -v) followed by terms. With the
// category alone it returns Search(category). Otherwise it unions the search
// results of every term and keeps the records whose keywords contain the
// category. Either way the result is sorted by filename.
func (l *Library) FilterBy(categoryAndTerms []string) []*media.Record {
	if len(categoryAndTerms) == 0 {
		return nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	category := categoryAndTerms[0]
	if len(categoryAndTerms) == 1 {
		results := snapshot(l.search(category))
		media.SortByFilename(results)
		return results
	}

	var union []*media.Record
	for _, term := range categoryAndTerms[1:] {
		for _, r := range l.search(term) {
			if !media.Contains(union, r) {
				union = append(union, r)
			}
		}
	}

	var filtered []*media.Record
	for _, r := range union {
		if r.HasMetadataKey(category) {
			filtered = append(filtered, r)
		}
	}
	filtered = snapshot(filtered)
	media.SortByFilename(filtered)
	return filtered
}

// All returns copies of every record, sorted by filename.
func (l *Library) All() []*media.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return snapshot(l.records)
}

// Count returns the number of records held.
func (l *Library) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// snapshot deep-copies records. Callers must hold l.mu.
func snapshot(records []*media.Record) []*media.Record {
	if records == nil {
		return nil
	}
	copies := make([]*media.Record, len(records))
	for i, r := range records {
		copies[i] = r.Clone()
	}
	return copies
}
