package rangemap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// blockGrammar is the participle grammar for one map block.
//
//nolint:govet // participle grammar tags are not standard struct tags
type blockGrammar struct {
	Header *headerGrammar `@@`
	Rules  []*ruleGrammar `@@*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type headerGrammar struct {
	Pos  lexer.Position
	From string `@Ident "-" "to" "-"`
	To   string `@Ident "map" ":" Newline`
}

// ruleGrammar keeps the integers as text so range errors can be reported
// with their position instead of as a generic capture failure.
//
//nolint:govet // participle grammar tags are not standard struct tags
type ruleGrammar struct {
	Pos    lexer.Position
	Dest   string `@Int`
	Source string `@Int`
	Length string `@Int Newline`
}

// blockLexer tokenizes map blocks. Newlines are significant: each rule
// must sit on its own line.
var blockLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[-:]`},
	{Name: "Newline", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var blockParser = participle.MustBuild[blockGrammar](
	participle.Lexer(blockLexer),
	participle.Elide("Whitespace"),
)

// Parse builds a Map from a single textual block. Line numbers in any
// *ParseError are relative to the block.
func Parse(block string) (*Map, error) {
	return ParseAt(block, 1)
}

// ParseAt is Parse for a block that starts on line `line` of a larger
// document, so that errors point at the document position.
func ParseAt(block string, line int) (*Map, error) {
	// 1) Skip surrounding blank lines, keeping the line offset accurate.
	trimmed := strings.TrimSpace(block)
	if trimmed == "" {
		return nil, &ParseError{Line: line, Column: 1, Msg: "empty block", Err: ErrMalformedHeader}
	}
	line += strings.Count(block[:strings.Index(block, trimmed)], "\n")

	// 2) Run the grammar; the trailing newline terminates the last rule.
	g, err := blockParser.ParseString("", trimmed+"\n")
	if err != nil {
		return nil, fromParticiple(err, line)
	}

	// 3) Convert rules, reporting value errors at the rule's position.
	triples := make([]Triple, 0, len(g.Rules))
	for _, r := range g.Rules {
		t, err := r.triple()
		if err == nil {
			err = t.validate()
		}
		if err != nil {
			return nil, &ParseError{
				Line:   line + r.Pos.Line - 1,
				Column: r.Pos.Column,
				Msg:    err.Error(),
				Err:    err,
			}
		}
		triples = append(triples, t)
	}

	m, err := New(g.Header.From, g.Header.To, triples...)
	if err != nil {
		return nil, &ParseError{Line: line, Column: g.Header.Pos.Column, Msg: err.Error(), Err: err}
	}

	return m, nil
}

// triple converts the captured integer text. The lexer guarantees digits,
// so the only possible failure is a value outside int64.
func (r *ruleGrammar) triple() (Triple, error) {
	var (
		vals [3]int64
		err  error
	)
	for i, s := range []string{r.Dest, r.Source, r.Length} {
		if vals[i], err = strconv.ParseInt(s, 10, 64); err != nil {
			return Triple{}, fmt.Errorf("%w: %s", ErrOverflow, s)
		}
	}

	return Triple{Dest: vals[0], Source: vals[1], Length: vals[2]}, nil
}

// fromParticiple maps a grammar or lexer failure onto a ParseError.
// Failures on the first line belong to the header, anything later to a rule.
func fromParticiple(err error, line int) *ParseError {
	pe := &ParseError{Line: line, Column: 1, Msg: err.Error(), Err: ErrMalformedHeader}

	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		pe.Line = line + pos.Line - 1
		pe.Column = pos.Column
		pe.Msg = perr.Message()
		if pos.Line > 1 {
			pe.Err = ErrMalformedRule
		}
	}

	return pe
}
