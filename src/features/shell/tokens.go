package shell

import "strings"

// Tokenize splits a line on spaces into a lowercased command and its
// arguments. Words wrapped in single quotes form one argument with the quotes
// removed, so `add 0 title 'The Queen Is Dead'` has three arguments.
func Tokenize(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), joinQuoted(parts[1:])
}

func joinQuoted(parts []string) []string {
	var (
		args  []string
		group []string
		open  bool
	)
	for _, part := range parts {
		switch {
		case !open && strings.HasPrefix(part, "'"):
			if len(part) > 1 && strings.HasSuffix(part, "'") {
				args = append(args, strings.Trim(part, "'"))
				continue
			}
			open = true
			group = append(group[:0], strings.TrimPrefix(part, "'"))
		case open:
			if strings.HasSuffix(part, "'") {
				group = append(group, strings.TrimSuffix(part, "'"))
				args = append(args, strings.Join(group, " "))
				open = false
				continue
			}
			group = append(group, part)
		default:
			args = append(args, part)
		}
	}
	// An unterminated quote runs to the end of the line.
	if open {
		args = append(args, strings.Join(group, " "))
	}
	return args
}
