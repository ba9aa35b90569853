package media

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Metadata is a single keyword/value annotation attached to a record.
type Metadata struct {
	Keyword string `json:"keyword"`
	Value   string `json:"value"`
}

func (m Metadata) String() string {
	return fmt.Sprintf("{%s : %s}", m.Keyword, m.Value)
}

// Kind discriminates the four record variants.
type Kind string

const (
	KindDocument Kind = "document"
	KindAudio    Kind = "audio"
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
)

// Kinds lists every valid kind.
var Kinds = []Kind{KindDocument, KindAudio, KindImage, KindVideo}

// Filter tags injected into every record so type-filtered searches can use the
// generic inverted index.
const (
	TagDocument = "-d"
	TagAudio    = "-a"
	TagImage    = "-i"
	TagVideo    = "-v"
)

var kindTags = map[Kind]string{
	KindDocument: TagDocument,
	KindAudio:    TagAudio,
	KindImage:    TagImage,
	KindVideo:    TagVideo,
}

// Tag returns the synthetic filter tag keyword for the kind.
func (k Kind) Tag() string {
	return kindTags[k]
}

// Valid reports whether k is one of the four kinds (case-sensitive).
func (k Kind) Valid() bool {
	_, ok := kindTags[k]
	return ok
}

// IsFilterTag reports whether keyword is one of the synthetic filter tags.
func IsFilterTag(keyword string) bool {
	switch keyword {
	case TagDocument, TagAudio, TagImage, TagVideo:
		return true
	}
	return false
}

// Field names with type-dependent requirements.
const (
	FieldCreator    = "creator"
	FieldResolution = "resolution"
	FieldRuntime    = "runtime"
	FieldNotes      = "notes"
)

// Record is a single imported media file and its metadata.
type Record struct {
	Filename string     `json:"filename"`
	Path     string     `json:"path"`
	Kind     Kind       `json:"type"`
	Metadata []Metadata `json:"metadata"`
	// Notes is free text kept outside the metadata; it is written as a "notes"
	// entry on export.
	Notes string `json:"notes,omitempty"`
	// ID is assigned by the Library when the record is added. Copies handed
	// out by the Library carry it, so they can be passed back for updates.
	ID uint64 `json:"-"`
}

// NewRecord builds a record of the given kind. The metadata slice is copied,
// the kind's filter tag is appended and the result is sorted by keyword.
func NewRecord(kind Kind, filename, path string, metadata []Metadata) *Record {
	md := make([]Metadata, 0, len(metadata)+1)
	md = append(md, metadata...)
	if tag := kind.Tag(); tag != "" {
		md = append(md, Metadata{Keyword: tag, Value: string(kind)})
	}
	r := &Record{
		Filename: filename,
		Path:     path,
		Kind:     kind,
		Metadata: md,
	}
	r.sortMetadata()
	return r
}

func (r *Record) String() string {
	return r.Filename
}

func (r *Record) sortMetadata() {
	sort.SliceStable(r.Metadata, func(i, j int) bool {
		return r.Metadata[i].Keyword < r.Metadata[j].Keyword
	})
}

func (r *Record) first(keyword string) (string, bool) {
	for _, m := range r.Metadata {
		if m.Keyword == keyword {
			return m.Value, true
		}
	}
	return "", false
}

// Creator returns the value of the first "creator" entry.
func (r *Record) Creator() (string, bool) { return r.first(FieldCreator) }

// Resolution returns the value of the first "resolution" entry.
func (r *Record) Resolution() (string, bool) { return r.first(FieldResolution) }

// Runtime returns the value of the first "runtime" entry.
func (r *Record) Runtime() (string, bool) { return r.first(FieldRuntime) }

// Keys returns every keyword in metadata order, duplicates included.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.Metadata))
	for _, m := range r.Metadata {
		keys = append(keys, m.Keyword)
	}
	return keys
}

// Values returns every value in metadata order, duplicates included.
func (r *Record) Values() []string {
	values := make([]string, 0, len(r.Metadata))
	for _, m := range r.Metadata {
		values = append(values, m.Value)
	}
	return values
}

// AddMetadata appends data and re-sorts by keyword.
func (r *Record) AddMetadata(data Metadata) {
	r.Metadata = append(r.Metadata, data)
	r.sortMetadata()
}

// HasMetadata reports whether the exact keyword/value pair is present.
func (r *Record) HasMetadata(data Metadata) bool {
	return slices.Contains(r.Metadata, data)
}

// HasMetadataKey reports whether any keyword contains key, ignoring case.
// A query for "date" matches "dateCreated".
func (r *Record) HasMetadataKey(key string) bool {
	key = strings.ToLower(key)
	for _, m := range r.Metadata {
		if strings.Contains(strings.ToLower(m.Keyword), key) {
			return true
		}
	}
	return false
}

// RemoveMetadata removes the first entry equal to data.
func (r *Record) RemoveMetadata(data Metadata) {
	if i := slices.Index(r.Metadata, data); i >= 0 {
		r.Metadata = slices.Delete(r.Metadata, i, i+1)
	}
}

// RemoveMetadataKey removes the first entry whose keyword equals key, ignoring
// case. Fields required by the record's kind cannot be removed.
func (r *Record) RemoveMetadataKey(key string) error {
	lower := strings.ToLower(key)
	switch {
	case lower == FieldRuntime && (r.Kind == KindVideo || r.Kind == KindAudio):
		return &ProtectedFieldError{Reason: CannotRemoveRuntime, Filename: r.Filename, Kind: r.Kind}
	case lower == FieldResolution && (r.Kind == KindVideo || r.Kind == KindImage):
		return &ProtectedFieldError{Reason: CannotRemoveResolution, Filename: r.Filename, Kind: r.Kind}
	case lower == FieldCreator:
		return &ProtectedFieldError{Reason: CannotRemoveCreator, Filename: r.Filename, Kind: r.Kind}
	}

	for i, m := range r.Metadata {
		if strings.ToLower(m.Keyword) == lower {
			r.Metadata = slices.Delete(r.Metadata, i, i+1)
			break
		}
	}
	return nil
}

// ExportableMetadata returns the metadata as a map with the filter tags
// stripped. Later duplicates of a keyword overwrite earlier ones.
func (r *Record) ExportableMetadata() map[string]string {
	data := make(map[string]string, len(r.Metadata))
	for _, m := range r.Metadata {
		if IsFilterTag(m.Keyword) {
			continue
		}
		data[m.Keyword] = m.Value
	}
	return data
}

// Equal reports structural equality: filename, path, kind and the ordered
// metadata. Notes are not part of a record's identity.
func (r *Record) Equal(other *Record) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.Filename == other.Filename &&
		r.Path == other.Path &&
		r.Kind == other.Kind &&
		slices.Equal(r.Metadata, other.Metadata)
}

// Clone returns a deep copy of r, ID included.
func (r *Record) Clone() *Record {
	c := *r
	c.Metadata = slices.Clone(r.Metadata)
	return &c
}

// Contains reports whether records holds a record structurally equal to r.
func Contains(records []*Record, r *Record) bool {
	return slices.ContainsFunc(records, r.Equal)
}

// SortByFilename sorts records by filename ascending, in place.
func SortByFilename(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Filename < records[j].Filename
	})
}

// FilenameFrom returns the last non-empty "/"-separated segment of path.
func FilenameFrom(path string) string {
	if !strings.Contains(path, "/") {
		return path
	}
	var last string
	for _, piece := range strings.Split(path, "/") {
		if piece != "" {
			last = piece
		}
	}
	return last
}
