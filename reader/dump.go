package reader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/timegrid/model"
)

// ParseFragmentDump reads one page of positioned fragments from a JSON-lines
// stream: one fragment object per line, blank lines ignored. A line that is
// not valid JSON makes the whole dump unparseable.
func ParseFragmentDump(r io.Reader) ([]model.TextFragment, error) {
	var fragments []model.TextFragment

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var frag model.TextFragment
		if err := json.Unmarshal([]byte(raw), &frag); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrUnparseable, line, err)
		}
		frag.Text = strings.TrimSpace(frag.Text)
		if frag.Text == "" {
			continue
		}
		fragments = append(fragments, frag)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}

	return fragments, nil
}

// OpenFragmentDump reads a fragment dump file.
func OpenFragmentDump(path string) ([]model.TextFragment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseFragmentDump(f)
}

// WriteFragmentDump writes fragments in the JSON-lines dump form read by
// [ParseFragmentDump].
func WriteFragmentDump(w io.Writer, fragments []model.TextFragment) error {
	enc := json.NewEncoder(w)
	for _, frag := range fragments {
		if err := enc.Encode(frag); err != nil {
			return err
		}
	}
	return nil
}
