package domain

import (
	"errors"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// seedsGrammar accepts any whitespace-separated tokens after the label so
// that a non-numeric token is reported by value and index rather than as
// a grammar position.
//
//nolint:govet // participle grammar tags are not standard struct tags
type seedsGrammar struct {
	Tokens []string `"seeds" ":" @Token*`
}

var seedsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Colon", Pattern: `:`},
	{Name: "Token", Pattern: `[^\s:]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var seedsParser = participle.MustBuild[seedsGrammar](
	participle.Lexer(seedsLexer),
	participle.Elide("Whitespace"),
)

// ParseSeeds parses a "seeds: n n n ..." line into a Domain of the given form.
// Returns a *DomainError wrapping ErrMissingLabel, ErrInvalidToken,
// ErrOverflow, or any error of FromPairs.
func ParseSeeds(line string, form Form) (*Domain, error) {
	// 1) Label and tokens.
	g, err := seedsParser.ParseString("", line)
	if err != nil {
		return nil, grammarError(err)
	}

	// 2) Every token must be an int64.
	values := make([]int64, 0, len(g.Tokens))
	for i, tok := range g.Tokens {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			sentinel := ErrInvalidToken
			if errors.Is(err, strconv.ErrRange) {
				sentinel = ErrOverflow
			}
			return nil, &DomainError{Index: i, Token: tok, Err: sentinel}
		}
		values = append(values, v)
	}

	// 3) Interpret.
	if form == Ranges {
		return FromPairs(values)
	}

	return FromList(values), nil
}

// grammarError maps a participle failure onto a DomainError. A failure on
// the label is ErrMissingLabel; a stray separator later on is an invalid token.
func grammarError(err error) *DomainError {
	de := &DomainError{Index: -1, Err: ErrMissingLabel}

	var ut *participle.UnexpectedTokenError
	if errors.As(err, &ut) && ut.Unexpected.Pos.Offset > 0 && ut.Unexpected.Value == ":" {
		de.Err = ErrInvalidToken
		de.Token = ut.Unexpected.Value
	}

	return de
}
