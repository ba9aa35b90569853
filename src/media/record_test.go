package media

import (
	"errors"
	"sort"
	"testing"
)

func isSorted(md []Metadata) bool {
	return sort.SliceIsSorted(md, func(i, j int) bool { return md[i].Keyword < md[j].Keyword })
}

func TestNewRecord_AppendsFilterTagAndSorts(t *testing.T) {
	tests := []struct {
		kind Kind
		tag  string
	}{
		{KindDocument, "-d"},
		{KindAudio, "-a"},
		{KindImage, "-i"},
		{KindVideo, "-v"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			r := NewRecord(tt.kind, "file", "/path/file", []Metadata{
				{Keyword: "zeta", Value: "1"},
				{Keyword: "creator", Value: "someone"},
			})
			if !isSorted(r.Metadata) {
				t.Fatalf("metadata not sorted: %v", r.Metadata)
			}
			count := 0
			for _, m := range r.Metadata {
				if IsFilterTag(m.Keyword) {
					count++
					if m.Keyword != tt.tag || m.Value != string(tt.kind) {
						t.Errorf("expected tag %s=%s, got %v", tt.tag, tt.kind, m)
					}
				}
			}
			if count != 1 {
				t.Errorf("expected exactly one filter tag, got %d", count)
			}
		})
	}
}

func TestNewRecord_CopiesInput(t *testing.T) {
	md := []Metadata{{Keyword: "creator", Value: "a"}}
	r := NewRecord(KindDocument, "f", "/f", md)
	md[0].Value = "changed"
	if v, _ := r.Creator(); v != "a" {
		t.Errorf("record shares caller's slice, creator is %q", v)
	}
}

func TestDerivedAttributes(t *testing.T) {
	r := NewRecord(KindVideo, "movie.mov", "/movie.mov", []Metadata{
		{Keyword: "creator", Value: "Mary"},
		{Keyword: "Runtime", Value: "ignored"},
		{Keyword: "resolution", Value: "1024x768"},
	})
	if v, ok := r.Creator(); !ok || v != "Mary" {
		t.Errorf("creator = %q, %v", v, ok)
	}
	if v, ok := r.Resolution(); !ok || v != "1024x768" {
		t.Errorf("resolution = %q, %v", v, ok)
	}
	if _, ok := r.Runtime(); ok {
		t.Error("runtime lookup must be case-sensitive")
	}
}

func TestAddMetadata_KeepsOrder(t *testing.T) {
	r := NewRecord(KindDocument, "doc", "/doc", []Metadata{{Keyword: "creator", Value: "x"}})
	r.AddMetadata(Metadata{Keyword: "alpha", Value: "1"})
	r.AddMetadata(Metadata{Keyword: "omega", Value: "2"})
	r.AddMetadata(Metadata{Keyword: "alpha", Value: "3"})
	if !isSorted(r.Metadata) {
		t.Fatalf("metadata not sorted: %v", r.Metadata)
	}
	if !r.HasMetadata(Metadata{Keyword: "alpha", Value: "3"}) {
		t.Error("duplicate keyword should be kept")
	}
}

func TestHasMetadataKey_SubstringIgnoringCase(t *testing.T) {
	r := NewRecord(KindDocument, "doc", "/doc", []Metadata{
		{Keyword: "creator", Value: "x"},
		{Keyword: "dateCreated", Value: "2018"},
	})
	for _, key := range []string{"date", "DATE", "Created", "-d"} {
		if !r.HasMetadataKey(key) {
			t.Errorf("expected HasMetadataKey(%q) to be true", key)
		}
	}
	if r.HasMetadataKey("runtime") {
		t.Error("unexpected match for runtime")
	}
	if r.HasMetadata(Metadata{Keyword: "DATECREATED", Value: "2018"}) {
		t.Error("exact membership must be case-sensitive")
	}
}

func TestRemoveMetadata_RemovesFirstMatch(t *testing.T) {
	r := NewRecord(KindDocument, "doc", "/doc", []Metadata{
		{Keyword: "creator", Value: "x"},
		{Keyword: "tag", Value: "a"},
		{Keyword: "tag", Value: "a"},
	})
	r.RemoveMetadata(Metadata{Keyword: "tag", Value: "a"})
	if !r.HasMetadata(Metadata{Keyword: "tag", Value: "a"}) {
		t.Error("only the first match should be removed")
	}
	r.RemoveMetadata(Metadata{Keyword: "tag", Value: "a"})
	if r.HasMetadata(Metadata{Keyword: "tag", Value: "a"}) {
		t.Error("second match should be removed")
	}
	if !isSorted(r.Metadata) {
		t.Errorf("metadata not sorted: %v", r.Metadata)
	}
}

func TestRemoveMetadataKey_ProtectedFields(t *testing.T) {
	tests := []struct {
		kind    Kind
		key     string
		wantErr bool
		reason  ProtectedReason
	}{
		{KindDocument, "creator", true, CannotRemoveCreator},
		{KindAudio, "Creator", true, CannotRemoveCreator},
		{KindImage, "CREATOR", true, CannotRemoveCreator},
		{KindVideo, "creator", true, CannotRemoveCreator},
		{KindDocument, "resolution", false, 0},
		{KindAudio, "resolution", false, 0},
		{KindImage, "resolution", true, CannotRemoveResolution},
		{KindVideo, "Resolution", true, CannotRemoveResolution},
		{KindDocument, "runtime", false, 0},
		{KindImage, "runtime", false, 0},
		{KindAudio, "runtime", true, CannotRemoveRuntime},
		{KindVideo, "RUNTIME", true, CannotRemoveRuntime},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.key, func(t *testing.T) {
			r := NewRecord(tt.kind, "f", "/f", []Metadata{
				{Keyword: "creator", Value: "c"},
				{Keyword: "resolution", Value: "r"},
				{Keyword: "runtime", Value: "t"},
			})
			before := len(r.Metadata)
			err := r.RemoveMetadataKey(tt.key)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(r.Metadata) != before-1 {
					t.Errorf("expected one entry removed, have %d of %d", len(r.Metadata), before)
				}
				return
			}
			var protected *ProtectedFieldError
			if !errors.As(err, &protected) {
				t.Fatalf("expected ProtectedFieldError, got %v", err)
			}
			if protected.Reason != tt.reason {
				t.Errorf("reason = %v, want %v", protected.Reason, tt.reason)
			}
			if len(r.Metadata) != before {
				t.Error("protected removal must not change metadata")
			}
		})
	}
}

func TestRemoveMetadataKey_IgnoresCase(t *testing.T) {
	r := NewRecord(KindDocument, "f", "/f", []Metadata{
		{Keyword: "creator", Value: "c"},
		{Keyword: "Genre", Value: "rock"},
	})
	if err := r.RemoveMetadataKey("genre"); err != nil {
		t.Fatal(err)
	}
	if r.HasMetadataKey("genre") {
		t.Error("genre should have been removed")
	}
}

func TestExportableMetadata_StripsFilterTags(t *testing.T) {
	r := NewRecord(KindAudio, "song.mp3", "/song.mp3", []Metadata{
		{Keyword: "creator", Value: "The Smiths"},
		{Keyword: "runtime", Value: "03:45"},
	})
	got := r.ExportableMetadata()
	if len(got) != 2 || got["creator"] != "The Smiths" || got["runtime"] != "03:45" {
		t.Errorf("unexpected exportable metadata: %v", got)
	}
	if _, ok := got["-a"]; ok {
		t.Error("filter tag leaked into export")
	}
}

func TestEqual(t *testing.T) {
	md := []Metadata{{Keyword: "creator", Value: "x"}}
	a := NewRecord(KindDocument, "a.pdf", "/a.pdf", md)
	b := NewRecord(KindDocument, "a.pdf", "/a.pdf", md)
	if !a.Equal(b) {
		t.Error("structurally identical records should be equal")
	}
	b.Notes = "notes are not identity"
	if !a.Equal(b) {
		t.Error("notes should not affect equality")
	}
	b.AddMetadata(Metadata{Keyword: "extra", Value: "1"})
	if a.Equal(b) {
		t.Error("records with different metadata should differ")
	}
	c := NewRecord(KindImage, "a.pdf", "/a.pdf", md)
	if a.Equal(c) {
		t.Error("records with different kinds should differ")
	}
	if a.Equal(nil) {
		t.Error("record should not equal nil")
	}
}

func TestFilenameFrom(t *testing.T) {
	tests := map[string]string{
		"/videos/movies/die-hard.mov": "die-hard.mov",
		"die-hard.mov":                "die-hard.mov",
		"relative/dir/":               "dir",
		"":                            "",
	}
	for in, want := range tests {
		if got := FilenameFrom(in); got != want {
			t.Errorf("FilenameFrom(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClone_IsIndependent(t *testing.T) {
	r := NewRecord(KindDocument, "a.pdf", "/a.pdf", []Metadata{{Keyword: "creator", Value: "x"}})
	r.ID = 7
	c := r.Clone()
	if c == r || !c.Equal(r) || c.ID != 7 {
		t.Fatalf("clone = %+v, want an equal copy of %+v", c, r)
	}
	c.AddMetadata(Metadata{Keyword: "genre", Value: "y"})
	if r.HasMetadataKey("genre") {
		t.Error("clone shares metadata with the original")
	}
}
