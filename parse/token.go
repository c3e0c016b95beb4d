package parse

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TEOF TokenType = iota
	TIdent
	TNumber
	TString
	TTrue
	TFalse
	TNull
	TColon
	TComma
	TPipe
	TEq
	TBang
	TTilde
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TLParen
	TRParen
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TIdent:   "TIdent",
		TNumber:  "TNumber",
		TString:  "TString",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TColon:   "TColon",
		TComma:   "TComma",
		TPipe:    "TPipe",
		TEq:      "TEq",
		TBang:    "TBang",
		TTilde:   "TTilde",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
	}[t]
}

type Token struct {
	Type TokenType
	Off  int
	Text string
}

type ParseErr struct {
	Err error
	Off int
	Src string
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	sample := e.Src[max(0, e.Off-8):min(e.Off+8, len(e.Src))]
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("%s `...%s...` at offset %d", e.Err.Error(), sample, e.Off)
}

func expectedErr(what string, off int, src string) error {
	return &ParseErr{Err: fmt.Errorf("expected %s", what), Off: off, Src: src}
}

func unexpectedErr(what string, off int, src string) error {
	return &ParseErr{Err: fmt.Errorf("unexpected %s", what), Off: off, Src: src}
}

type lexer struct {
	src string
	off int
}

func (lx *lexer) next() (Token, error) {
	lx.skipSpace()
	if lx.off >= len(lx.src) {
		return Token{Type: TEOF, Off: lx.off}, nil
	}
	start := lx.off
	c := lx.src[lx.off]
	single := map[byte]TokenType{
		':': TColon, ',': TComma, '|': TPipe, '=': TEq,
		'!': TBang, '~': TTilde,
		'{': TLCurl, '}': TRCurl,
		'[': TLSquare, ']': TRSquare,
		'(': TLParen, ')': TRParen,
	}
	if tt, ok := single[c]; ok {
		lx.off++
		return Token{Type: tt, Off: start, Text: string(c)}, nil
	}
	switch {
	case c == '"':
		return lx.stringLit()
	case c == '-' || (c >= '0' && c <= '9'):
		return lx.number()
	case isIdentStart(rune(c)):
		return lx.ident()
	}
	return Token{}, unexpectedErr(fmt.Sprintf("character %q", c), start, lx.src)
}

func (lx *lexer) skipSpace() {
	for lx.off < len(lx.src) {
		switch lx.src[lx.off] {
		case ' ', '\t', '\n', '\r':
			lx.off++
		default:
			return
		}
	}
}

func (lx *lexer) ident() (Token, error) {
	start := lx.off
	for lx.off < len(lx.src) {
		r, sz := utf8.DecodeRuneInString(lx.src[lx.off:])
		if !isIdentPart(r) {
			break
		}
		lx.off += sz
	}
	text := lx.src[start:lx.off]
	tt := TIdent
	switch text {
	case "true":
		tt = TTrue
	case "false":
		tt = TFalse
	case "null":
		tt = TNull
	}
	return Token{Type: tt, Off: start, Text: text}, nil
}

func (lx *lexer) number() (Token, error) {
	start := lx.off
	if lx.src[lx.off] == '-' {
		lx.off++
	}
	seen := false
	for lx.off < len(lx.src) {
		c := lx.src[lx.off]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' ||
			((c == '+' || c == '-') && seen && isExpChar(lx.src[lx.off-1])) {
			seen = seen || (c >= '0' && c <= '9')
			lx.off++
			continue
		}
		break
	}
	text := lx.src[start:lx.off]
	if !seen {
		return Token{}, expectedErr("number", start, lx.src)
	}
	return Token{Type: TNumber, Off: start, Text: text}, nil
}

func (lx *lexer) stringLit() (Token, error) {
	start := lx.off
	i := lx.off + 1
	for i < len(lx.src) {
		switch lx.src[i] {
		case '\\':
			i += 2
			continue
		case '"':
			raw := lx.src[start : i+1]
			s, err := strconv.Unquote(raw)
			if err != nil {
				return Token{}, &ParseErr{Err: err, Off: start, Src: lx.src}
			}
			lx.off = i + 1
			return Token{Type: TString, Off: start, Text: s}, nil
		}
		i++
	}
	return Token{}, expectedErr("closing quote", start, lx.src)
}

// balanced consumes up to the parenthesis closing the one just read,
// returning the raw interior text and the number of top-level
// comma-separated parts. Strings are respected.
func (lx *lexer) balanced() (string, int, error) {
	start := lx.off
	depth := 1
	args := 0
	nonSpace := false
	for lx.off < len(lx.src) {
		c := lx.src[lx.off]
		switch c {
		case '"':
			if _, err := lx.stringLit(); err != nil {
				return "", 0, err
			}
			nonSpace = true
			continue
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				inner := lx.src[start:lx.off]
				lx.off++
				if nonSpace {
					args++
				}
				return inner, args, nil
			}
		case ',':
			if depth == 1 {
				args++
				nonSpace = false
			}
		default:
			if !unicode.IsSpace(rune(c)) {
				nonSpace = true
			}
		}
		lx.off++
	}
	return "", 0, expectedErr("closing parenthesis", start, lx.src)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isExpChar(c byte) bool {
	return c == 'e' || c == 'E'
}
