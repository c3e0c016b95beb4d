package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/destructure-format/go-destructure/debug"
	"github.com/destructure-format/go-destructure/ir"
	"github.com/destructure-format/go-destructure/pattern"
)

// Parse reads the pattern surface syntax and produces the pattern AST.
//
//	Map{...} List[...] Tuple(...)    collection literals
//	name _name name() name(default)  variable forms
//	key: sub                         keyed entry
//	name = sub                       assignment form
//	! ~                              mode / key-type toggle prefixes
//	List[head | tail]                head/tail split
//
// Default expressions evaluate at parse time with an empty environment.
func Parse(src string) (pattern.Pattern, error) {
	p := &parser{lx: &lexer{src: src}, src: src}
	pat, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Type != TEOF {
		return nil, unexpectedErr(fmt.Sprintf("trailing %s", tok.Type), tok.Off, src)
	}
	if debug.Parse() {
		debug.Logf("parsed %q\n", src)
	}
	return pat, nil
}

type parser struct {
	lx  *lexer
	src string
	buf *Token
}

func (p *parser) next() (Token, error) {
	if p.buf != nil {
		tok := *p.buf
		p.buf = nil
		return tok, nil
	}
	return p.lx.next()
}

func (p *parser) peek() (Token, error) {
	if p.buf == nil {
		tok, err := p.lx.next()
		if err != nil {
			return Token{}, err
		}
		p.buf = &tok
	}
	return *p.buf, nil
}

func (p *parser) expect(tt TokenType, what string) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Type != tt {
		return Token{}, expectedErr(what, tok.Off, p.src)
	}
	return tok, nil
}

func (p *parser) parsePattern() (pattern.Pattern, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Type {
	case TBang:
		child, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		return pattern.ModeToggle{Child: child}, nil
	case TTilde:
		child, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		return pattern.KeyTypeToggle{Child: child}, nil
	case TIdent:
		return p.parseAfterIdent(tok)
	case TNumber:
		return numberLit(tok, p.src)
	case TString:
		return pattern.Lit{Value: ir.FromString(tok.Text)}, nil
	case TTrue:
		return pattern.Lit{Value: ir.FromBool(true)}, nil
	case TFalse:
		return pattern.Lit{Value: ir.FromBool(false)}, nil
	case TNull:
		return pattern.Lit{Value: ir.Null()}, nil
	}
	return nil, unexpectedErr(tok.Type.String(), tok.Off, p.src)
}

// parseAfterIdent continues a pattern that began with an identifier:
// collection literal, assignment, call-form variable, or a plain variable.
func (p *parser) parseAfterIdent(tok Token) (pattern.Pattern, error) {
	switch tok.Text {
	case "Map":
		if la, err := p.peek(); err != nil {
			return nil, err
		} else if la.Type == TLCurl {
			p.buf = nil
			return p.parseColl(ir.MapKind, TRCurl, "}")
		}
	case "List":
		if la, err := p.peek(); err != nil {
			return nil, err
		} else if la.Type == TLSquare {
			p.buf = nil
			return p.parseList()
		}
	case "Tuple":
		if la, err := p.peek(); err != nil {
			return nil, err
		} else if la.Type == TLParen {
			p.buf = nil
			return p.parseColl(ir.TupleKind, TRParen, ")")
		}
	}
	la, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch la.Type {
	case TEq:
		p.buf = nil
		sub, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		return pattern.Bind{Name: tok.Text, Sub: sub}, nil
	case TLParen:
		p.buf = nil
		return p.parseCallForm(tok)
	}
	return varFromIdent(tok), nil
}

func (p *parser) parseColl(kind ir.Kind, close TokenType, closeText string) (pattern.Pattern, error) {
	entries, err := p.parseEntries(close, closeText)
	if err != nil {
		return nil, err
	}
	return pattern.Coll{Kind: kind, Entries: entries}, nil
}

// parseList handles List[...] including the head/tail separator, which
// takes exactly two positions.
func (p *parser) parseList() (pattern.Pattern, error) {
	entries, err := p.parseEntriesUntil(TRSquare, "]", true)
	if err != nil {
		return nil, err
	}
	la, err := p.peek()
	if err != nil {
		return nil, err
	}
	if la.Type != TPipe {
		if _, err := p.expect(TRSquare, "]"); err != nil {
			return nil, err
		}
		return pattern.Coll{Kind: ir.ListKind, Entries: entries}, nil
	}
	p.buf = nil
	if len(entries) != 1 {
		return nil, unexpectedErr("head/tail separator after multiple entries",
			la.Off, p.src)
	}
	tail, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TRSquare, "]"); err != nil {
		return nil, err
	}
	return pattern.HeadTail{Head: entries[0], Tail: tail}, nil
}

func (p *parser) parseEntries(close TokenType, closeText string) ([]pattern.Pattern, error) {
	entries, err := p.parseEntriesUntil(close, closeText, false)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(close, closeText); err != nil {
		return nil, err
	}
	return entries, nil
}

// parseEntriesUntil reads comma-separated entries, stopping before close
// (and before a pipe when stopAtPipe is set) without consuming it.
func (p *parser) parseEntriesUntil(close TokenType, closeText string, stopAtPipe bool) ([]pattern.Pattern, error) {
	var entries []pattern.Pattern
	for {
		la, err := p.peek()
		if err != nil {
			return nil, err
		}
		if la.Type == close || (stopAtPipe && la.Type == TPipe) {
			return entries, nil
		}
		entry, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
		la, err = p.peek()
		if err != nil {
			return nil, err
		}
		if la.Type == TComma {
			p.buf = nil
			continue
		}
		if la.Type == close || (stopAtPipe && la.Type == TPipe) {
			return entries, nil
		}
		return nil, expectedErr("comma or "+closeText, la.Off, p.src)
	}
}

// parseEntry reads one collection slot: `key: sub`, a quoted or numeric
// key with a colon, or any pattern.
func (p *parser) parseEntry() (pattern.Pattern, error) {
	la, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch la.Type {
	case TIdent:
		p.buf = nil
		ident := la
		la, err = p.peek()
		if err != nil {
			return nil, err
		}
		if la.Type == TColon {
			p.buf = nil
			sub, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			return pattern.Entry{Key: ir.FromSymbol(ident.Text), Sub: sub}, nil
		}
		return p.parseAfterIdent(ident)
	case TString, TNumber:
		p.buf = nil
		key := la
		after, err := p.peek()
		if err != nil {
			return nil, err
		}
		if after.Type == TColon {
			p.buf = nil
			sub, err := p.parsePattern()
			if err != nil {
				return nil, err
			}
			keyNode, err := keyLit(key, p.src)
			if err != nil {
				return nil, err
			}
			return pattern.Entry{Key: keyNode, Sub: sub}, nil
		}
		if key.Type == TString {
			return pattern.Lit{Value: ir.FromString(key.Text)}, nil
		}
		return numberLit(key, p.src)
	}
	return p.parsePattern()
}

// parseCallForm reads the argument list of name(...) directly from the
// source: zero arguments makes the variable optional with the absence
// default, one argument is an expression evaluated now, more is an error.
func (p *parser) parseCallForm(ident Token) (pattern.Pattern, error) {
	inner, args, err := p.lx.balanced()
	if err != nil {
		return nil, err
	}
	switch args {
	case 0:
		return pattern.Var{Name: ident.Text, Optional: true}, nil
	case 1:
		def, err := evalDefault(inner)
		if err != nil {
			return nil, &ParseErr{Err: err, Off: ident.Off, Src: p.src}
		}
		return pattern.Var{Name: ident.Text, Optional: true, Default: def}, nil
	}
	return nil, &ParseErr{
		Err: fmt.Errorf("%w: %s takes at most one default, got %d arguments",
			pattern.ErrInvalidVariableForm, ident.Text, args),
		Off: ident.Off,
		Src: p.src,
	}
}

func evalDefault(src string) (*ir.Node, error) {
	program, err := expr.Compile(strings.TrimSpace(src))
	if err != nil {
		return nil, fmt.Errorf("error compiling default %q: %w", src, err)
	}
	out, err := vm.Run(program, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("error evaluating default %q: %w", src, err)
	}
	node, err := ir.FromAny(out)
	if err != nil {
		return nil, fmt.Errorf("could not translate default %q: %w", src, err)
	}
	return node, nil
}

// varFromIdent maps the identifier spellings to variable forms: a leading
// reserved marker makes the variable optional and is stripped from the
// bound name; a bare marker is the wildcard.
func varFromIdent(tok Token) pattern.Pattern {
	name := tok.Text
	if name == "_" {
		return pattern.Wildcard{}
	}
	if strings.HasPrefix(name, "_") {
		return pattern.Var{Name: name[1:], Optional: true}
	}
	return pattern.Var{Name: name}
}

func numberLit(tok Token, src string) (pattern.Pattern, error) {
	if i, err := strconv.ParseInt(tok.Text, 10, 64); err == nil {
		return pattern.Lit{Value: ir.FromInt(i)}, nil
	}
	f, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return nil, &ParseErr{Err: err, Off: tok.Off, Src: src}
	}
	return pattern.Lit{Value: ir.FromFloat(f)}, nil
}

func keyLit(tok Token, src string) (*ir.Node, error) {
	if tok.Type == TString {
		return ir.FromString(tok.Text), nil
	}
	lit, err := numberLit(tok, src)
	if err != nil {
		return nil, err
	}
	return lit.(pattern.Lit).Value, nil
}
