package polymorph

import (
	"fmt"
	"strings"
	"unicode/utf8"

	gl "github.com/rustyoz/genericlexer"
	"github.com/tdewolff/parse/v2/strconv"
)

// token is one command letter and every number that follows it up to the
// next letter. The argument list may hold several repetitions of the
// command's arity.
type token struct {
	letter byte
	args   []float64
}

// tokenize splits a path description into command groups.
func tokenize(d string) ([]token, error) {
	src := prepareDescription(d)
	l, items := gl.Lex("d", src)
	// the lexer goroutine blocks on its channel until it is drained
	defer func() {
		for range items {
		}
	}()

	var (
		toks     []token
		consumed int
	)
	for {
		i := l.NextItem()
		consumed += len(i.Value)
		switch i.Type {
		case gl.ItemEOS:
			if consumed < len(src) {
				return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, src[consumed:consumed+1], consumed)
			}
			return toks, nil
		case gl.ItemWSP, gl.ItemComma:
		case gl.ItemLetter, gl.ItemWord:
			for j := 0; j < len(i.Value); j++ {
				if i.Value[j] >= utf8.RuneSelf {
					return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, i.Value, consumed-len(i.Value))
				}
				toks = append(toks, token{letter: i.Value[j]})
			}
		case gl.ItemNumber:
			n, err := parseNumber(i.Value)
			if err != nil {
				return nil, err
			}
			if len(toks) == 0 {
				return nil, fmt.Errorf("%w: number %q before any command", ErrSyntax, i.Value)
			}
			last := &toks[len(toks)-1]
			last.args = append(last.args, n)
		default:
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, i.Value, consumed-len(i.Value))
		}
	}
}

func parseNumber(s string) (float64, error) {
	n, m := strconv.ParseFloat([]byte(s))
	if m == 0 || m != len(s) {
		return 0, fmt.Errorf("%w: invalid number %q", ErrSyntax, s)
	}
	return n, nil
}

// prepareDescription rewrites a description into the subset the lexer
// understands: numbers never start at a dot, and every separator is a
// space, tab, newline or comma.
func prepareDescription(d string) string {
	var (
		b       strings.Builder
		inNum   bool
		seenDot bool
		seenExp bool
		prev    byte
	)
	b.Grow(len(d) + 8)
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case c >= '0' && c <= '9':
			if !inNum {
				inNum, seenDot, seenExp = true, false, false
			}
			b.WriteByte(c)
		case c == '.':
			switch {
			case inNum && (seenDot || seenExp):
				// "1.5.5" and "1e2.5" are two numbers
				b.WriteString(" 0")
			case !inNum || !isDigit(prev):
				b.WriteByte('0')
			}
			inNum, seenDot, seenExp = true, true, false
			b.WriteByte(c)
		case (c == 'e' || c == 'E') && inNum:
			// the lexer only knows a lower case exponent
			seenExp = true
			b.WriteByte('e')
		case (c == '-' || c == '+') && inNum && (prev == 'e' || prev == 'E'):
			b.WriteByte(c)
		case c == '-' || c == '+':
			if inNum {
				// the lexer reads "5-3" as one number
				b.WriteByte(' ')
			}
			inNum, seenDot, seenExp = true, false, false
			b.WriteByte(c)
		case c == '\r' || c == '\f':
			inNum = false
			b.WriteByte(' ')
		default:
			inNum = false
			b.WriteByte(c)
		}
		prev = c
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
