package translate

import (
	"strings"

	"github.com/benvansleen/almanac/rangemap"
)

// Block is one blank-line separated section of an almanac.
type Block struct {
	Line int    // 1-based line of the block's first line
	Text string // lines joined by "\n", no trailing newline
}

// Blocks splits text into blank-line separated blocks. Lines holding only
// whitespace count as blank.
func Blocks(text string) []Block {
	var (
		blocks []Block
		cur    []string
		start  int
	)
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, Block{Line: start, Text: strings.Join(cur, "\n")})
			cur = nil
		}
	}
	for i, ln := range strings.Split(text, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			flush()
			continue
		}
		if len(cur) == 0 {
			start = i + 1
		}
		cur = append(cur, ln)
	}
	flush()

	return blocks
}

// Parse builds a Graph from map blocks separated by blank lines.
// Any malformed block aborts with a *rangemap.ParseError carrying
// the document line; no Graph is returned in that case.
func Parse(text string, opts ...Option) (*Graph, error) {
	return FromBlocks(Blocks(text), opts...)
}

// FromBlocks parses each block as a table and assembles the Graph.
func FromBlocks(blocks []Block, opts ...Option) (*Graph, error) {
	maps := make([]*rangemap.Map, 0, len(blocks))
	for _, b := range blocks {
		m, err := rangemap.ParseAt(b.Text, b.Line)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}

	return New(maps, opts...)
}
