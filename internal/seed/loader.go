// Package seed reads the flat customer file the desk loads on start-up.
// Each line is "name,ticketCount".
package seed

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Entry struct {
	Name    string
	Tickets int
}

// Parse reads every entry from r. Lines without exactly two fields are skipped.
// A ticket count that is not an integer fails the whole parse, so callers never
// register half a file.
func Parse(r io.Reader) ([]Entry, error) {
	entries := make([]Entry, 0)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		parts := strings.Split(scanner.Text(), ",")
		if len(parts) != 2 {
			continue
		}

		tickets, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "seed: line %d: invalid ticket count", line)
		}

		entries = append(entries, Entry{
			Name:    strings.TrimSpace(parts[0]),
			Tickets: tickets,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "seed: failed to read")
	}

	return entries, nil
}

func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "seed: failed to open file")
	}
	defer f.Close()

	return Parse(f)
}
