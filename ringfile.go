package memacs

import (
	"bufio"
	"fmt"
	"os"
)

// ringFileCookie is the marker line a persisted ring file starts with,
// generalizing history.go's "_HiStOrY_V2_" libedit cookie to the editor's
// own ring-persistence format (one entry per line, Load/Save share this
// encoding with the interactive search/replace rings the teacher persisted
// across sessions).
const ringFileCookie = "_MeMaCsRiNg1_"

// LoadRingFile reads path into ring, oldest entry first, skipping the
// leading cookie line. Each entry is VisualEncode-escaped on disk so
// embedded newlines and control characters survive the round trip. A
// missing file is not an error: the ring is simply left empty.
func LoadRingFile(ring *Ring, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	n := 0
	var entries []string
	for scanner.Scan() {
		text := scanner.Text()
		if n == 0 {
			n++
			if text != ringFileCookie {
				return fmt.Errorf("malformed ring file cookie: %q != %q", text, ringFileCookie)
			}
			continue
		}
		n++
		v, err := VisualDecode(text)
		if err != nil {
			return err
		}
		entries = append(entries, v)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	for _, e := range entries {
		ring.Push(e)
	}
	return nil
}

// SaveRingFile writes ring's entries to path, most-recent last, truncating
// any existing file.
func SaveRingFile(ring *Ring, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", ringFileCookie)
	entries := ring.List()
	for i := len(entries) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%s\n", VisualEncode(entries[i]))
	}
	return w.Flush()
}
