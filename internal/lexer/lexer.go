// Package lexer turns Mython source text into a normalized token
// sequence, using a state-function scanner (stateFn chain) that builds
// tokens in a single pass. Unlike a channel-fed streaming scanner that
// interleaves lexing with parsing across a goroutine, this one runs as
// a synchronous total pass: the driver lexes a whole program before
// parsing begins.
package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/mythonlang/mython/internal/token"
)

// Error reports a lexical error: a stray control character, an
// unterminated string, or an unparseable integer literal.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: lexical error: %s", e.Pos, e.Msg)
}

// indentUnit is the number of leading spaces per nesting level.
const indentUnit = 2

// keywordTable is the fixed maximal-munch table of keywords and
// compound operators recognized at step 5 of line-body tokenization.
var keywordTable = map[string]token.Kind{
	"==":     token.Eq,
	"!=":     token.NotEq,
	"<=":     token.LessOrEq,
	">=":     token.GreaterOrEq,
	"class":  token.Class,
	"return": token.Return,
	"if":     token.If,
	"else":   token.Else,
	"def":    token.Def,
	"print":  token.Print,
	"and":    token.And,
	"or":     token.Or,
	"not":    token.Not,
	"None":   token.None,
	"True":   token.True,
	"False":  token.False,
}

// singleCharOps is the set of single-character operators recognized
// at step 6 of line-body tokenization.
const singleCharOps = ":(),.+-*/!><="

type stateFn func(*lexState) stateFn

// lexState holds the scanner's position in the source and the tokens
// produced so far, carried as a struct instead of explicit parameters
// threaded through each stateFn, since there is no channel to feed.
type lexState struct {
	src     []byte
	pos     int
	line    int
	col     int
	tokens  []token.Token
	nesting int // current indentation nesting level
	err     error
}

func (l *lexState) position() token.Pos {
	return token.Pos{Line: l.line, Col: l.col}
}

func (l *lexState) fail(msg string) stateFn {
	l.err = &Error{Pos: l.position(), Msg: msg}
	return nil
}

func (l *lexState) peek() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexState) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *lexState) push(kind token.Kind, pos token.Pos) {
	l.tokens = append(l.tokens, token.Token{Kind: kind, Pos: pos})
}

// Lex scans the entirety of r as Mython source and returns its
// normalized token sequence. The source is decoded through
// golang.org/x/text/encoding/charmap's Windows1252 decoder, then
// checked rune-by-rune for anything outside the 7-bit range: Mython
// source is byte-level ASCII only.
func Lex(r io.Reader) ([]token.Token, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decoded, decErr := charmap.Windows1252.NewDecoder().String(string(data))
	if decErr != nil {
		return nil, &Error{Pos: token.Pos{Line: 1, Col: 1}, Msg: "source is not decodable as text: " + decErr.Error()}
	}
	line, col := 1, 1
	for _, r := range decoded {
		if r >= 0x80 {
			return nil, &Error{Pos: token.Pos{Line: line, Col: col}, Msg: fmt.Sprintf("stray non-ASCII character %q", r)}
		}
		if r == '\n' {
			line, col = line+1, 1
		} else {
			col++
		}
	}
	l := &lexState{src: data, line: 1, col: 1}
	for state := lexLineStart; state != nil; {
		state = state(l)
	}
	if l.err != nil {
		return nil, l.err
	}
	return normalize(l.tokens), nil
}

// lexLineStart measures leading-whitespace nesting at the start of a
// logical line and emits the Indent/Dedent run implied by the change
// from the previous line's nesting.
func lexLineStart(l *lexState) stateFn {
	if _, ok := l.peek(); !ok {
		return lexEOF
	}
	spaces := 0
	for {
		c, ok := l.peek()
		if !ok || c != ' ' {
			break
		}
		l.advance()
		spaces++
	}
	current := spaces / indentUnit
	pos := l.position()
	switch {
	case current > l.nesting:
		for i := 0; i < current-l.nesting; i++ {
			l.push(token.Indent, pos)
		}
	case current < l.nesting:
		for i := 0; i < l.nesting-current; i++ {
			l.push(token.Dedent, pos)
		}
	}
	l.nesting = current
	return lexLine
}

// lexLine tokenizes the body of a logical line, trying in priority
// order: comment, newline, string, integer, keyword/compound operator,
// single-char operator, identifier.
func lexLine(l *lexState) stateFn {
	c, ok := l.peek()
	if !ok {
		return lexEOF
	}
	switch {
	case c == ' ':
		l.advance()
		return lexLine
	case c == '#':
		return lexComment
	case c == '\n':
		pos := l.position()
		l.advance()
		l.push(token.Newline, pos)
		return lexLineStart
	case c == '\'' || c == '"':
		return lexString
	case c >= '0' && c <= '9':
		return lexNumber
	case isWordOrOpChar(c):
		if matched := lexKeywordOrOp(l); matched {
			return lexLine
		}
		return lexOperatorOrIdent
	default:
		return lexOperatorOrIdent
	}
}

func lexComment(l *lexState) stateFn {
	for {
		c, ok := l.peek()
		if !ok || c == '\n' {
			return lexLine
		}
		l.advance()
	}
}

// lexEOF closes any indentation still open when the source runs out,
// so every Indent has a matching Dedent and the final net nesting is
// zero, then ends the scan with Eof.
func lexEOF(l *lexState) stateFn {
	pos := l.position()
	for ; l.nesting > 0; l.nesting-- {
		l.push(token.Dedent, pos)
	}
	l.push(token.Eof, pos)
	return nil
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isWordOrOpChar(c byte) bool {
	return isLetter(c) || c == '=' || c == '<' || c == '>' || c == '!'
}

// lexKeywordOrOp attempts step 5: a maximal run of [A-Za-z=<>!]
// matched exactly against keywordTable. On failure it rewinds the scan
// position so the run can be retried by the operator/identifier steps.
func lexKeywordOrOp(l *lexState) bool {
	start := l.pos
	startLine, startCol := l.line, l.col
	pos := l.position()
	for {
		c, ok := l.peek()
		if !ok || !isWordOrOpChar(c) {
			break
		}
		l.advance()
	}
	word := string(l.src[start:l.pos])
	if kind, ok := keywordTable[word]; ok {
		l.push(kind, pos)
		return true
	}
	l.pos = start
	l.line, l.col = startLine, startCol
	return false
}

// lexOperatorOrIdent handles steps 6 and 7: a single-character
// operator, or an identifier.
func lexOperatorOrIdent(l *lexState) stateFn {
	c, _ := l.peek()
	pos := l.position()
	if strings.IndexByte(singleCharOps, c) >= 0 {
		l.advance()
		l.tokens = append(l.tokens, token.MakeChar(c, pos))
		return lexLine
	}
	if c == '_' || isLetter(c) {
		return lexIdent
	}
	return l.fail(fmt.Sprintf("stray control character %q", c))
}

func lexIdent(l *lexState) stateFn {
	start := l.pos
	pos := l.position()
	for {
		c, ok := l.peek()
		if !ok || !(isLetter(c) || c == '_' || (c >= '0' && c <= '9')) {
			break
		}
		l.advance()
	}
	l.tokens = append(l.tokens, token.Token{Kind: token.Id, Text: string(l.src[start:l.pos]), Pos: pos})
	return lexLine
}

func lexNumber(l *lexState) stateFn {
	start := l.pos
	pos := l.position()
	for {
		c, ok := l.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		l.advance()
	}
	text := string(l.src[start:l.pos])
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return l.fail(fmt.Sprintf("malformed integer literal %q", text))
	}
	l.tokens = append(l.tokens, token.Token{Kind: token.Number, Num: n, Pos: pos})
	return lexLine
}

func lexString(l *lexState) stateFn {
	pos := l.position()
	delim, _ := l.peek()
	l.advance()
	start := l.pos
	for {
		c, ok := l.peek()
		if !ok || c == '\n' {
			return l.fail("unterminated string literal")
		}
		if c == delim {
			text := string(l.src[start:l.pos])
			l.advance()
			l.tokens = append(l.tokens, token.Token{Kind: token.String, Text: text, Pos: pos})
			return lexLine
		}
		l.advance()
	}
}
