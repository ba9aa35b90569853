package media

// Library is the interface for the in-memory media collection and its
// inverted indexes. It's the repository the features work against.
// Records returned by reads are copies; pass them back to the update methods
// to change the held record.
type Library interface {
	// Add inserts r unless a structurally equal record is already held.
	Add(r *Record)
	// AddMetadata adds data to r and indexes the new keyword and value.
	AddMetadata(data Metadata, r *Record)
	// RemoveMetadata removes data from every record holding it and drops the
	// keyword's key-index bucket. The value index is left as is.
	RemoveMetadata(data Metadata)
	// RemoveRecordField removes key from r. The return value says whether a
	// field was removed; protected fields never are.
	RemoveRecordField(r *Record, key string) bool

	// Search returns the key-index bucket for term followed by the value-index
	// bucket, without duplicates.
	Search(term string) []*Record
	// SearchMetadata returns records matching data.Value but not data.Keyword.
	SearchMetadata(data Metadata) []*Record
	// FilterBy takes a category tag followed by search terms.
	FilterBy(categoryAndTerms []string) []*Record
	// All returns every record sorted by filename.
	All() []*Record
	Count() int
}
