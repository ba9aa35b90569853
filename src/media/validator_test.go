package media

import (
	"slices"
	"testing"
)

func TestValidateBasic(t *testing.T) {
	tests := []struct {
		path, typ string
		want      bool
	}{
		{"/a.mp3", "audio", true},
		{"/a.mp3", "AUDIO", true},
		{"/a.mp3", "", false},
		{"", "audio", false},
		{"/a.txt", "spreadsheet", false},
	}
	for _, tt := range tests {
		if got := ValidateBasic(tt.path, tt.typ); got != tt.want {
			t.Errorf("ValidateBasic(%q, %q) = %v, want %v", tt.path, tt.typ, got, tt.want)
		}
	}
}

func TestValidateMetadata_ExactMatch(t *testing.T) {
	all := []Presence{}
	for _, c := range []bool{false, true} {
		for _, res := range []bool{false, true} {
			for _, run := range []bool{false, true} {
				all = append(all, Presence{Creator: c, Resolution: res, Runtime: run})
			}
		}
	}
	for _, kind := range Kinds {
		required, ok := RequiredFieldsFor(string(kind))
		if !ok {
			t.Fatalf("no required fields for %s", kind)
		}
		for _, p := range all {
			want := p == required
			if got := ValidateMetadata(string(kind), p); got != want {
				t.Errorf("ValidateMetadata(%s, %+v) = %v, want %v", kind, p, got, want)
			}
		}
	}
}

func TestValidateMetadata_ImageWithRuntimeFails(t *testing.T) {
	p := Presence{Creator: true, Resolution: true, Runtime: true}
	if ValidateMetadata("image", p) {
		t.Error("an image carrying a runtime must not validate")
	}
	if ValidateMetadata("Image", Presence{Creator: true, Resolution: true}) {
		t.Error("type lookup must be case-sensitive")
	}
}

func TestRequiredFieldsFor(t *testing.T) {
	tests := map[string][]string{
		"document": {"creator"},
		"audio":    {"creator", "runtime"},
		"image":    {"creator", "resolution"},
		"video":    {"creator", "resolution", "runtime"},
	}
	for typ, want := range tests {
		p, ok := RequiredFieldsFor(typ)
		if !ok || !slices.Equal(p.Fields(), want) {
			t.Errorf("RequiredFieldsFor(%s) = %v, want %v", typ, p.Fields(), want)
		}
	}
	if _, ok := RequiredFieldsFor("spreadsheet"); ok {
		t.Error("unknown type should have no required fields")
	}
}

func TestComputePresence(t *testing.T) {
	r := NewRecord(KindVideo, "m", "/m", []Metadata{
		{Keyword: "Creator", Value: "x"},
		{Keyword: "resolution", Value: ""},
		{Keyword: "RUNTIME", Value: "1:00"},
	})
	want := Presence{Creator: true, Runtime: true}
	if got := ComputePresence(r); got != want {
		t.Errorf("ComputePresence = %+v, want %+v", got, want)
	}
	if got := PresenceOf(map[string]string{"Creator": "x", "runtime": "1:00", "resolution": ""}); got != want {
		t.Errorf("PresenceOf = %+v, want %+v", got, want)
	}
}

func TestExplainInvalid(t *testing.T) {
	tests := []struct {
		name      string
		path, typ string
		p         Presence
		want      []string
	}{
		{
			name: "missing path and creator on image",
			path: "", typ: "image",
			p:    Presence{Resolution: true},
			want: []string{"does not contain a fullpath", "does not contain a creator"},
		},
		{
			name: "missing type",
			path: "/x", typ: "",
			p:    Presence{Creator: true},
			want: []string{"does not contain a type - may be missing metadata"},
		},
		{
			name: "invalid type",
			path: "/x", typ: "spreadsheet",
			p:    Presence{},
			want: []string{`"spreadsheet" is not a valid file type`, "does not contain a creator"},
		},
		{
			name: "video missing everything",
			path: "/x", typ: "video",
			p:    Presence{},
			want: []string{"does not contain a creator", "does not contain a resolution", "does not contain a runtime"},
		},
		{
			name: "audio does not need resolution",
			path: "/x", typ: "audio",
			p:    Presence{Creator: true},
			want: []string{"does not contain a runtime"},
		},
		{
			name: "image with extra runtime",
			path: "/x", typ: "image",
			p:    Presence{Creator: true, Resolution: true, Runtime: true},
			want: []string{"should not contain a runtime for type image"},
		},
		{
			name: "valid document",
			path: "/x", typ: "document",
			p:    Presence{Creator: true},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExplainInvalid(tt.path, tt.typ, tt.p)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ExplainInvalid = %q, want %q", got, tt.want)
			}
		})
	}
}
