package media

import (
	"fmt"
	"strings"
)

// Presence records whether creator, resolution and runtime are non-emptily
// present on a record.
type Presence struct {
	Creator    bool
	Resolution bool
	Runtime    bool
}

// Fields returns the names of the fields marked present.
func (p Presence) Fields() []string {
	var fields []string
	if p.Creator {
		fields = append(fields, FieldCreator)
	}
	if p.Resolution {
		fields = append(fields, FieldResolution)
	}
	if p.Runtime {
		fields = append(fields, FieldRuntime)
	}
	return fields
}

var requiredFields = map[Kind]Presence{
	KindDocument: {Creator: true},
	KindAudio:    {Creator: true, Runtime: true},
	KindImage:    {Creator: true, Resolution: true},
	KindVideo:    {Creator: true, Resolution: true, Runtime: true},
}

// RequiredFieldsFor returns the exact presence a record of type typ must have.
// The lookup is case-sensitive.
func RequiredFieldsFor(typ string) (Presence, bool) {
	p, ok := requiredFields[Kind(typ)]
	return p, ok
}

func legalType(typ string) bool {
	return Kind(strings.ToLower(typ)).Valid()
}

// ValidateBasic reports whether path and typ are non-empty and typ names one
// of the four kinds, ignoring case.
func ValidateBasic(path, typ string) bool {
	return path != "" && typ != "" && legalType(typ)
}

// ValidateMetadata reports whether p is exactly the required presence for
// typ. A field present but not required fails validation, so an image with a
// runtime is invalid.
func ValidateMetadata(typ string, p Presence) bool {
	required, ok := RequiredFieldsFor(typ)
	return ok && p == required
}

func presenceOf(keyword, value string, p *Presence) {
	if value == "" {
		return
	}
	switch strings.ToLower(keyword) {
	case FieldCreator:
		p.Creator = true
	case FieldResolution:
		p.Resolution = true
	case FieldRuntime:
		p.Runtime = true
	}
}

// ComputePresence scans the record's metadata for non-empty creator,
// resolution and runtime values.
func ComputePresence(r *Record) Presence {
	var p Presence
	for _, m := range r.Metadata {
		presenceOf(m.Keyword, m.Value, &p)
	}
	return p
}

// PresenceOf is ComputePresence for a raw keyword/value map.
func PresenceOf(metadata map[string]string) Presence {
	var p Presence
	for k, v := range metadata {
		presenceOf(k, v, &p)
	}
	return p
}

// Validate runs ValidateBasic and ValidateMetadata together.
func Validate(path, typ string, p Presence) bool {
	return ValidateBasic(path, typ) && ValidateMetadata(typ, p)
}

// ExplainInvalid lists, in a fixed order, why an entry fails validation. It
// never fails itself and returns nil for a valid entry.
func ExplainInvalid(path, typ string, p Presence) []string {
	var reasons []string

	if path == "" {
		reasons = append(reasons, "does not contain a fullpath")
	}

	if typ == "" {
		reasons = append(reasons, "does not contain a type - may be missing metadata")
	} else if !legalType(typ) {
		reasons = append(reasons, fmt.Sprintf("%q is not a valid file type", typ))
	}

	if !p.Creator {
		reasons = append(reasons, "does not contain a creator")
	}

	if typ == "" || !legalType(typ) {
		return reasons
	}
	if typ != strings.ToLower(typ) {
		reasons = append(reasons, fmt.Sprintf("type %q must be lowercase", typ))
		return reasons
	}

	kind := Kind(typ)
	if (kind == KindImage || kind == KindVideo) && !p.Resolution {
		reasons = append(reasons, "does not contain a resolution")
	}
	if (kind == KindAudio || kind == KindVideo) && !p.Runtime {
		reasons = append(reasons, "does not contain a runtime")
	}

	if required, ok := RequiredFieldsFor(typ); ok {
		if p.Resolution && !required.Resolution {
			reasons = append(reasons, fmt.Sprintf("should not contain a resolution for type %s", typ))
		}
		if p.Runtime && !required.Runtime {
			reasons = append(reasons, fmt.Sprintf("should not contain a runtime for type %s", typ))
		}
	}
	return reasons
}
