package exporting

import "fmt"

// OverwritePolicy decides what Write does when the destination exists.
type OverwritePolicy string

const (
	PolicyFail      OverwritePolicy = "fail"
	PolicyOverwrite OverwritePolicy = "overwrite"
	PolicyRename    OverwritePolicy = "rename"
)

// ParsePolicy converts a config or request value into an OverwritePolicy.
// An empty value means PolicyFail.
func ParsePolicy(s string) (OverwritePolicy, error) {
	switch p := OverwritePolicy(s); p {
	case "":
		return PolicyFail, nil
	case PolicyFail, PolicyOverwrite, PolicyRename:
		return p, nil
	default:
		return "", fmt.Errorf("unknown overwrite policy %q", s)
	}
}
