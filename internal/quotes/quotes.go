package quotes

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// Separator combines several short quotes into one wallpaper when it appears
// in a source line.
const Separator = " || "

// Group is the set of quote segments rendered onto a single wallpaper. A
// plain source line yields a one-element group.
type Group []string

// Load reads a newline-delimited quote file. Whitespace-only lines are
// skipped; a line containing the separator is split into trimmed segments
// with empty segments dropped. A missing file or a file with no usable
// lines is an error.
func Load(path string) ([]Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open quote file: %w", err)
	}
	defer f.Close()

	var groups []Group
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if g := parseLine(line); len(g) > 0 {
			groups = append(groups, g)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read quote file: %w", err)
	}

	if len(groups) == 0 {
		return nil, fmt.Errorf("no quotes found in %s", path)
	}
	return groups, nil
}

func parseLine(line string) Group {
	if !strings.Contains(line, Separator) {
		return Group{line}
	}

	var group Group
	for _, part := range strings.Split(line, "||") {
		if part = strings.TrimSpace(part); part != "" {
			group = append(group, part)
		}
	}
	return group
}

// Picker selects quote groups uniformly at random.
type Picker struct {
	groups []Group
	rng    *rand.Rand
}

func NewPicker(groups []Group, rng *rand.Rand) *Picker {
	return &Picker{groups: groups, rng: rng}
}

func (p *Picker) Pick() Group {
	return p.groups[p.rng.Intn(len(p.groups))]
}

// PickN returns one group per display. Groups are distinct as long as the
// source has at least n of them; only then are repeats allowed.
func (p *Picker) PickN(n int) []Group {
	picked := make([]Group, n)
	if n <= len(p.groups) {
		for i, j := range p.rng.Perm(len(p.groups))[:n] {
			picked[i] = p.groups[j]
		}
		return picked
	}
	for i := range picked {
		picked[i] = p.Pick()
	}
	return picked
}
