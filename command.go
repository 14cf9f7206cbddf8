package polymorph

import "fmt"

// CommandKind tells the expander which transition a command triggers.
type CommandKind int

// These are the command kinds of the path grammar.
const (
	MoveTo CommandKind = iota
	HLineTo
	VLineTo
	LineTo
	ClosePath
	CurveTo
	SmoothCurveTo
	QuadTo
	SmoothQuadTo
	ArcTo
)

var commandLetters = [...]byte{
	MoveTo:        'M',
	HLineTo:       'H',
	VLineTo:       'V',
	LineTo:        'L',
	ClosePath:     'Z',
	CurveTo:       'C',
	SmoothCurveTo: 'S',
	QuadTo:        'Q',
	SmoothQuadTo:  'T',
	ArcTo:         'A',
}

var commandArity = [...]int{
	MoveTo:        2,
	HLineTo:       1,
	VLineTo:       1,
	LineTo:        2,
	ClosePath:     0,
	CurveTo:       6,
	SmoothCurveTo: 4,
	QuadTo:        4,
	SmoothQuadTo:  2,
	ArcTo:         7,
}

// Arity returns the number of arguments one command of this kind takes.
func (k CommandKind) Arity() int {
	return commandArity[k]
}

// Letter returns the absolute command letter of k.
func (k CommandKind) Letter() byte {
	return commandLetters[k]
}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandLetters) {
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
	return string(commandLetters[k])
}

// commandKind maps a command letter of either case to its kind. The
// boolean result is false for letters outside the grammar.
func commandKind(letter byte) (CommandKind, bool) {
	if 'a' <= letter && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	for k, l := range commandLetters {
		if l == letter {
			return CommandKind(k), true
		}
	}
	return 0, false
}

// Command is a single drawing instruction with exactly Arity() arguments.
// Relative commands are converted to absolute ones by the expander.
type Command struct {
	Kind     CommandKind
	Relative bool
	Args     []float64
}

// commands splits tokenized groups into single commands, resolving
// implicit repetition. Extra pairs after a move are line commands.
func commands(toks []token) ([]Command, error) {
	var cmds []Command
	for _, tok := range toks {
		kind, ok := commandKind(tok.letter)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedCommand, tok.letter)
		}
		relative := tok.letter >= 'a'
		arity := kind.Arity()
		if arity == 0 {
			if len(tok.args) > 0 {
				return nil, fmt.Errorf("%w: %c takes no arguments, got %d", ErrSyntax, tok.letter, len(tok.args))
			}
			cmds = append(cmds, Command{Kind: kind, Relative: relative})
			continue
		}
		if len(tok.args) == 0 || len(tok.args)%arity != 0 {
			return nil, fmt.Errorf("%w: %c expects a multiple of %d arguments, got %d", ErrSyntax, tok.letter, arity, len(tok.args))
		}
		for i := 0; i < len(tok.args); i += arity {
			k := kind
			if kind == MoveTo && i > 0 {
				k = LineTo
			}
			cmds = append(cmds, Command{Kind: k, Relative: relative, Args: tok.args[i : i+arity : i+arity]})
		}
	}
	return cmds, nil
}
