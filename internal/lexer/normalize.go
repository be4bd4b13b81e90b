package lexer

import "github.com/mythonlang/mython/internal/token"

// normalize applies the required cleanup pass to the raw token
// sequence: indent/dedent runs bracketing blank lines collapse to
// their net effect, runs of adjacent newlines collapse to one, and
// leading and trailing newlines are stripped so the sequence starts
// and ends on a significant token (or is empty). The final Eof token,
// always present, stays at the end untouched.
func normalize(raw []token.Token) []token.Token {
	if len(raw) == 0 {
		return raw
	}
	eof := raw[len(raw)-1]
	body := raw[:len(raw)-1]

	body = collapseBlankLineSpans(body)
	body = stripLeadingNewlines(body)
	body = stripTrailingNewlines(body)

	return append(body, eof)
}

func stripLeadingNewlines(toks []token.Token) []token.Token {
	i := 0
	for i < len(toks) && toks[i].Kind == token.Newline {
		i++
	}
	return toks[i:]
}

func stripTrailingNewlines(toks []token.Token) []token.Token {
	i := len(toks)
	for i > 0 && toks[i-1].Kind == token.Newline {
		i--
	}
	return toks[:i]
}

func isBlankSpanKind(k token.Kind) bool {
	return k == token.Newline || k == token.Indent || k == token.Dedent
}

// collapseBlankLineSpans rewrites every maximal run of Newline,
// Indent, and Dedent tokens containing more than one Newline into a
// single Newline followed by the run's net indentation effect. That
// run shape is exactly what blank and comment-only lines produce: the
// blank line's indentation delta lands before its own Newline and the
// next line's delta after it. A run with a single Newline is the
// ordinary statement separator or suite bracketing and passes through
// untouched.
func collapseBlankLineSpans(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for i := 0; i < len(toks); {
		if toks[i].Kind != token.Newline {
			out = append(out, toks[i])
			i++
			continue
		}
		j := i
		newlines, net := 0, 0
		for j < len(toks) && isBlankSpanKind(toks[j].Kind) {
			switch toks[j].Kind {
			case token.Newline:
				newlines++
			case token.Indent:
				net++
			default:
				net--
			}
			j++
		}
		if newlines < 2 {
			out = append(out, toks[i:j]...)
		} else {
			pos := toks[i].Pos
			out = append(out, token.Token{Kind: token.Newline, Pos: pos})
			kind := token.Indent
			if net < 0 {
				kind, net = token.Dedent, -net
			}
			for k := 0; k < net; k++ {
				out = append(out, token.Token{Kind: kind, Pos: pos})
			}
		}
		i = j
	}
	return out
}
