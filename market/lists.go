package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lixenwraith/token-bubbles/core"
)

// AllList is the synthetic list merging every file in the lists directory
const AllList = "ALL"

var (
	// ErrUnknownList is returned for list names with no backing file
	ErrUnknownList = errors.New("unknown token list")
	// ErrNoPairs is returned when DexScreener knows no pair for a token
	ErrNoPairs = errors.New("no pairs for token")
)

// TokenRef is one row of a token list
type TokenRef struct {
	Chain    string
	Contract string
}

// ID returns the canonical entity identity of the row
func (r TokenRef) ID() string {
	return core.EntityID(r.Chain, r.Contract)
}

// Lists reads token lists from CSV files in a directory, one list per file
type Lists struct {
	dir string
}

// NewLists creates a reader over dir
func NewLists(dir string) *Lists {
	return &Lists{dir: dir}
}

// Dir returns the lists directory
func (l *Lists) Dir() string {
	return l.dir
}

// Names returns AllList followed by file lists in name order
func (l *Lists) Names() ([]string, error) {
	files, err := l.files()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files)+1)
	names = append(names, AllList)
	for _, f := range files {
		names = append(names, strings.TrimSuffix(filepath.Base(f), filepath.Ext(f)))
	}
	return names, nil
}

// Load returns the rows of list name, AllList merges every file without duplicates
func (l *Lists) Load(name string) ([]TokenRef, error) {
	if strings.EqualFold(name, AllList) {
		files, err := l.files()
		if err != nil {
			return nil, err
		}
		var all []TokenRef
		for _, f := range files {
			refs, err := readListFile(f)
			if err != nil {
				return nil, err
			}
			all = append(all, refs...)
		}
		return Dedup(all), nil
	}

	path := filepath.Join(l.dir, name+".csv")
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownList, name)
		}
		return nil, fmt.Errorf("stat list %s: %w", name, err)
	}
	refs, err := readListFile(path)
	if err != nil {
		return nil, err
	}
	return Dedup(refs), nil
}

func (l *Lists) files() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(l.dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("list directory %s: %w", l.dir, err)
	}
	sort.Strings(files)
	return files, nil
}

func readListFile(path string) ([]TokenRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list: %w", err)
	}
	defer f.Close()

	refs, err := ParseList(f)
	if err != nil {
		return nil, fmt.Errorf("parse list %s: %w", filepath.Base(path), err)
	}
	return refs, nil
}

// ParseList reads a CSV with a header naming "contract" and "chain" columns
// Rows missing either value are skipped
func ParseList(r io.Reader) ([]TokenRef, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	contractCol, chainCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))) {
		case "contract", "address", "contract_address":
			contractCol = i
		case "chain", "chainid", "chain_id":
			chainCol = i
		}
	}
	if contractCol < 0 || chainCol < 0 {
		return nil, fmt.Errorf("header must name contract and chain columns, got %v", header)
	}

	var refs []TokenRef
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if contractCol >= len(rec) || chainCol >= len(rec) {
			continue
		}
		ref := TokenRef{
			Chain:    strings.TrimSpace(rec[chainCol]),
			Contract: strings.TrimSpace(rec[contractCol]),
		}
		if ref.Chain == "" || ref.Contract == "" {
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Dedup keeps the first row for every identity, preserving order
func Dedup(refs []TokenRef) []TokenRef {
	seen := make(map[string]struct{}, len(refs))
	out := make([]TokenRef, 0, len(refs))
	for _, r := range refs {
		id := r.ID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, r)
	}
	return out
}
