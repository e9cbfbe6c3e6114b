// Package quoted re-joins the fragments of a delimiter-split line which fell
// inside a single-quoted value, so that 'a,b' survives a split on commas.
package quoted

import (
	"strings"
	"unicode"
)

const quote = "'"

// Tokenizer yields quote-aware tokens from the fragments of a split line
type Tokenizer struct {
	fragments []string
	pos       int
	delim     string
	trim      bool
}

// Split splits a line on delim and returns a Tokenizer over the fragments
func Split(line string, delim byte) *Tokenizer {
	return New(strings.Split(line, string(delim)), delim)
}

// SplitTrimmed is like Split, but ignores whitespace surrounding each token.
// Whitespace inside a quoted token is preserved.
func SplitTrimmed(line string, delim byte) *Tokenizer {
	t := Split(line, delim)
	t.trim = true
	return t
}

// New returns a Tokenizer over fragments which were produced by splitting on delim
func New(fragments []string, delim byte) *Tokenizer {
	return &Tokenizer{fragments: fragments, delim: string(delim)}
}

// Next returns the next token. Empty fragments are skipped. A fragment
// opening a quote is joined (with the delimiter) to the following fragments
// up to the one closing it, and the quotes are removed. ok is false once the
// fragments are exhausted, including when a quote is never closed.
func (t *Tokenizer) Next() (token string, ok bool) {
	var joined strings.Builder
	inQuote := false
	for t.pos < len(t.fragments) {
		frag := t.fragments[t.pos]
		t.pos++
		if !inQuote {
			if t.trim {
				frag = strings.TrimLeftFunc(frag, unicode.IsSpace)
			}
			if len(frag) == 0 {
				continue
			}
			if !strings.HasPrefix(frag, quote) {
				if t.trim {
					frag = strings.TrimRightFunc(frag, unicode.IsSpace)
				}
				return frag, true
			}
			frag = frag[len(quote):]
			inQuote = true
		} else {
			joined.WriteString(t.delim)
		}
		// only whitespace after the closing quote is trimmed
		if t.trim {
			if trimmed := strings.TrimRightFunc(frag, unicode.IsSpace); strings.HasSuffix(trimmed, quote) {
				frag = trimmed
			}
		}
		joined.WriteString(frag)
		// a lone quote opens a token without closing it
		if len(frag) > 0 && strings.HasSuffix(frag, quote) {
			res := joined.String()
			if len(res) < len(quote) {
				panic("quoted: closing quote missing from token")
			}
			return res[:len(res)-len(quote)], true
		}
	}
	return "", false
}

// NextFragment returns the next raw fragment, without quote handling
func (t *Tokenizer) NextFragment() (string, bool) {
	if t.pos >= len(t.fragments) {
		return "", false
	}
	t.pos++
	return t.fragments[t.pos-1], true
}

// Rest returns the fragments which have not been consumed yet, and consumes them
func (t *Tokenizer) Rest() []string {
	rest := t.fragments[t.pos:]
	t.pos = len(t.fragments)
	return rest
}

// All returns every remaining token
func (t *Tokenizer) All() []string {
	var tokens []string
	for {
		token, ok := t.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, token)
	}
}
