package library

import (
	"strings"

	"github.com/contre95/mediashelf/src/features/shell"
	"github.com/contre95/mediashelf/src/media"
)

// ShellHandler handles shell commands for the library feature
type ShellHandler struct {
	service *Service
}

// NewShellHandler creates a new shell handler for the library feature
func NewShellHandler(service *Service) *ShellHandler {
	return &ShellHandler{service: service}
}

// GetCommands returns the available commands for this handler
func (h *ShellHandler) GetCommands() map[string]string {
	return map[string]string{
		"list": "list all the files, or the files that have the terms specified",
		"add":  "add some metadata to a file",
		"set":  "this is really a del followed by an add",
		"del":  "removes a metadata item from a file",
	}
}

// HandleCommand processes library-related shell commands
func (h *ShellHandler) HandleCommand(s *shell.Session, command string, args []string) ([]*media.Record, error) {
	switch command {
	case "list":
		return h.handleList(s, args)
	case "add":
		return h.handleAdd(s, args)
	case "set":
		return h.handleSet(s, args)
	case "del":
		return h.handleDel(s, args)
	default:
		return nil, shell.ErrUnknownCommand
	}
}

func (h *ShellHandler) handleList(s *shell.Session, terms []string) ([]*media.Record, error) {
	if len(terms) == 0 && h.service.Count() == 0 {
		return nil, shell.ErrEmptyLibrary
	}
	results := h.service.List(terms)
	if len(results) == 0 {
		s.Printf("No files with metadata containing the key(s) [%s] found.\n", strings.Join(terms, ", "))
	}
	return results, nil
}

// pairs reads "<number> <key> <value> ..." and returns the chosen record and
// the key/value pairs.
func pairs(s *shell.Session, args []string) (*media.Record, []media.Metadata, error) {
	if len(s.Last()) == 0 {
		return nil, nil, shell.ErrMissingResultSet
	}
	if len(args) < 3 || (len(args)-1)%2 != 0 {
		return nil, nil, shell.ErrInvalidParameters
	}
	r, err := s.Pick(args[0])
	if err != nil {
		return nil, nil, err
	}
	var data []media.Metadata
	for i := 1; i < len(args); i += 2 {
		data = append(data, media.Metadata{Keyword: args[i], Value: args[i+1]})
	}
	return r, data, nil
}

func (h *ShellHandler) handleAdd(s *shell.Session, args []string) ([]*media.Record, error) {
	r, data, err := pairs(s, args)
	if err != nil {
		return nil, err
	}
	for _, d := range data {
		h.service.AddMetadata(r, d)
	}
	return nil, nil
}

func (h *ShellHandler) handleSet(s *shell.Session, args []string) ([]*media.Record, error) {
	r, data, err := pairs(s, args)
	if err != nil {
		return nil, err
	}
	for _, d := range data {
		h.service.SetField(r, d.Keyword, d.Value)
	}
	return nil, nil
}

func (h *ShellHandler) handleDel(s *shell.Session, args []string) ([]*media.Record, error) {
	if len(s.Last()) == 0 {
		return nil, shell.ErrMissingResultSet
	}
	if len(args) < 2 {
		return nil, shell.ErrInvalidParameters
	}
	r, err := s.Pick(args[0])
	if err != nil {
		return nil, err
	}
	for _, key := range args[1:] {
		if !h.service.RemoveRecordField(r, key) {
			s.Printf("Cannot remove %s from %s because it is of type %s\n", strings.ToLower(key), r.Filename, r.Kind)
		}
	}
	return nil, nil
}
