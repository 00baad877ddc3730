package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/internal/textfile"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// codeStats counts Go lines per kind.
type codeStats struct {
	Prod  int `json:"go_loc_prod"`
	Test  int `json:"go_loc_test"`
	Total int `json:"go_loc"`
}

// dataStats describes a contacts file as the text backend would read it.
type dataStats struct {
	File    string `json:"file"`
	Lines   int    `json:"lines"`
	Records int    `json:"records"`
	Skipped int    `json:"skipped"`
}

// Stats prints Go line counts and a summary of the contacts file as one JSON
// record. The file is CONTACTS_FILE when set, otherwise ./contacts.txt;
// skipped counts non-blank lines the decoder rejects.
func Stats() error {
	code, err := countCode(".")
	if err != nil {
		return err
	}
	data, err := contactsFileStats()
	if err != nil {
		return err
	}

	line, err := json.Marshal(struct {
		codeStats
		Contacts *dataStats `json:"contacts,omitempty"`
	}{code, data})
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

// countCode sums lines of .go files under root, leaving out build tooling,
// the bin directory, and underscore-prefixed directories.
func countCode(root string) (codeStats, error) {
	var cs codeStats
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "magefiles" || name == binaryDir || name == "vendor" ||
				strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		n := lineCount(data)
		if strings.HasSuffix(path, "_test.go") {
			cs.Test += n
		} else {
			cs.Prod += n
		}
		return nil
	})
	cs.Total = cs.Prod + cs.Test
	return cs, err
}

// contactsFileStats returns nil when there is no contacts file.
func contactsFileStats() (*dataStats, error) {
	path, err := paths.ResolveDataFile("", "", types.BackendText)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	contacts, err := textfile.Decode(bytes.NewReader(data), math.MaxInt)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	nonBlank := 0
	for l := range bytes.SplitSeq(data, []byte("\n")) {
		if len(bytes.TrimSpace(l)) > 0 {
			nonBlank++
		}
	}
	return &dataStats{
		File:    path,
		Lines:   lineCount(data),
		Records: len(contacts),
		Skipped: nonBlank - len(contacts),
	}, nil
}

// lineCount counts newline-terminated lines plus a final unterminated one.
func lineCount(data []byte) int {
	n := bytes.Count(data, []byte("\n"))
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}
