// Package stylus is the host side of the sprite pipeline: a scanner over
// CSS-like stylesheet text that finds sprite() function calls, registers
// each with the sprite registry and splices the returned placeholder token
// into the emitted text. Everything else passes through byte-exact.
package stylus

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"spritec/sprite"
)

// DefaultFunction is the stylesheet function name the scanner reacts to.
const DefaultFunction = "sprite"

// Scanner walks stylesheet text and rewrites sprite() calls.
type Scanner struct {
	reg *sprite.Registry
	fn  string
	log *zap.Logger
}

// NewScanner creates a scanner feeding the given registry. Empty function
// name selects DefaultFunction.
func NewScanner(reg *sprite.Registry, fn string, log *zap.Logger) *Scanner {
	if len(fn) == 0 {
		fn = DefaultFunction
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{reg: reg, fn: fn, log: log.Named("stylus")}
}

// Process scans data for sprite("file"[, "options"]) calls. Each call is
// registered (carrying its 1-based source line) and replaced with the
// registry's placeholder token; all other text is passed through verbatim.
func (s *Scanner) Process(data []byte) (string, error) {
	input := parse.NewInput(bytes.NewReader(data))
	lexer := css.NewLexer(input)

	var out strings.Builder
	out.Grow(len(data))
	line := 1

	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != io.EOF {
				return "", fmt.Errorf("stylesheet parse error at line %d: %w", line, err)
			}
			return out.String(), nil

		case css.FunctionToken:
			name := strings.TrimSuffix(string(text), "(")
			if !strings.EqualFold(name, s.fn) {
				out.Write(text)
				break
			}
			callLine := line
			ref, consumed, err := s.readCall(lexer, callLine)
			line += consumed
			if err != nil {
				return "", err
			}
			token, err := s.reg.Register(ref)
			if err != nil {
				return "", fmt.Errorf("line %d: %w", callLine, err)
			}
			s.log.Debug("Rewrote sprite call",
				zap.String("file", ref.Filename),
				zap.Int("line", callLine),
				zap.String("token", token))
			out.WriteString(token)

		default:
			out.Write(text)
		}
		line += bytes.Count(text, []byte{'\n'})
	}
}

// readCall consumes tokens of one sprite(...) call up to and including the
// closing parenthesis. It returns the parsed reference and the number of
// newlines swallowed.
func (s *Scanner) readCall(lexer *css.Lexer, callLine int) (sprite.Ref, int, error) {
	ref := sprite.Ref{Line: callLine}
	var (
		args  []string
		lines int
	)

	for {
		tt, text := lexer.Next()
		lines += bytes.Count(text, []byte{'\n'})

		switch tt {
		case css.ErrorToken:
			return ref, lines, fmt.Errorf("line %d: unterminated %s() call", callLine, s.fn)

		case css.RightParenthesisToken:
			if len(args) == 0 {
				return ref, lines, fmt.Errorf("line %d: %s() expects a quoted file name", callLine, s.fn)
			}
			ref.Filename = args[0]
			if len(args) > 1 {
				ref.Options = args[1]
			}
			return ref, lines, nil

		case css.StringToken:
			if len(args) >= 2 {
				return ref, lines, fmt.Errorf("line %d: %s() takes at most two arguments", callLine, s.fn)
			}
			args = append(args, unquote(string(text)))

		case css.WhitespaceToken, css.CommaToken:
			// separators

		default:
			return ref, lines, fmt.Errorf("line %d: unexpected %q inside %s() call", callLine, string(text), s.fn)
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
