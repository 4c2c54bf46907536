package dawg

import (
	"bufio"
	"fmt"
	"io"
)

// AddAllFrom inserts every newline-delimited string read from r and reports
// whether the set changed. Read failures are returned after the automaton has
// been re-minimized, so a partial ingest still leaves the set consistent.
// Sorted input gets the same delayed-minimization treatment as AddAll.
func (d *Set) AddAllFrom(r io.Reader) (bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	changed := false
	var prev []letter
	any := false
	for sc.Scan() {
		word := encode(sc.Text())
		if d.addDelayed(prev, word) {
			changed = true
		}
		prev = word
		any = true
	}
	if any {
		d.finishDelayed(prev)
	}
	if err := sc.Err(); err != nil {
		return changed, fmt.Errorf("dawg: reading strings: %w", err)
	}
	return changed, nil
}
