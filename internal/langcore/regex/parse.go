package regex

import (
	"fmt"

	"github.com/gralex/gralex/internal/langcore/charset"
	"github.com/gralex/gralex/internal/langcore/lcerr"
)

// Fragments resolves a named fragment reference (@name, §6) to its
// already-parsed Node. Parse does not itself know how fragments are stored;
// it is handed a lookup function so the lexer-spec builder (which owns
// declaration order and forward/backward reference rules) controls that.
type Fragments func(name string) (*Node, bool)

func noFragments(string) (*Node, bool) { return nil, false }

// Parse parses the small regex pattern language of §6 (literals; `.`;
// `[...]` classes with `-` ranges and leading `^` negation; `\c` escapes;
// quantifiers `*` `+` `?`; alternation `|`; grouping `(...)`; fragment
// reference `@name`) into a Node, bound to the given charset.
//
// frags may be nil, meaning the pattern is known not to reference any
// fragment (e.g. in tests); a reference under a nil Fragments always fails.
func Parse(pattern string, cs charset.Charset, frags Fragments) (*Node, error) {
	if frags == nil {
		frags = noFragments
	}
	p := &parser{src: []rune(pattern), pattern: pattern, cs: cs, frags: frags}
	n, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errf("unexpected %q", p.src[p.pos])
	}
	return n, nil
}

type parser struct {
	src     []rune
	pattern string
	pos     int
	cs      charset.Charset
	frags   Fragments
}

func (p *parser) errf(format string, args ...interface{}) error {
	return &lcerr.RegexParseError{
		Pattern: p.pattern,
		Offset:  p.pos,
		Reason:  fmt.Sprintf(format, args...),
	}
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) advance() rune {
	c := p.src[p.pos]
	p.pos++
	return c
}

// parseAlternation := concat ('|' concat)*
func (p *parser) parseAlternation() (*Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.peek() == '|' {
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = Alt(left, right)
	}
	return left, nil
}

// parseConcat := repeat*, stopping at '|', ')', or end of input.
func (p *parser) parseConcat() (*Node, error) {
	var nodes []*Node
	for !p.atEnd() && p.peek() != '|' && p.peek() != ')' {
		n, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if len(nodes) == 0 {
		return Eps(), nil
	}
	return CatAll(nodes...), nil
}

// parseRepeat := atom ('*' | '+' | '?')?
func (p *parser) parseRepeat() (*Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.atEnd() {
		return atom, nil
	}
	switch p.peek() {
	case '*':
		p.advance()
		return Rep(atom), nil
	case '+':
		p.advance()
		return Cat(atom, Rep(atom)), nil
	case '?':
		p.advance()
		return Alt(atom, Eps()), nil
	default:
		return atom, nil
	}
}

func (p *parser) parseAtom() (*Node, error) {
	if p.atEnd() {
		return nil, p.errf("unexpected end of pattern")
	}
	switch c := p.peek(); c {
	case '(':
		p.advance()
		inner, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if p.atEnd() || p.peek() != ')' {
			return nil, p.errf("unbalanced group: missing ')'")
		}
		p.advance()
		return inner, nil
	case '.':
		p.advance()
		return Any(p.cs), nil
	case '[':
		return p.parseClass()
	case '\\':
		p.advance()
		r, err := p.parseEscape()
		if err != nil {
			return nil, err
		}
		return Lit(r), nil
	case '@':
		p.advance()
		name := p.parseName()
		if name == "" {
			return nil, p.errf("expected fragment name after '@'")
		}
		n, ok := p.frags(name)
		if !ok {
			return nil, p.errf("unknown fragment reference @%s", name)
		}
		return n, nil
	case ')', '*', '+', '?', '|':
		return nil, p.errf("unexpected %q", c)
	default:
		p.advance()
		return Lit(c), nil
	}
}

func (p *parser) parseName() string {
	start := p.pos
	for !p.atEnd() && isNameRune(p.peek()) {
		p.advance()
	}
	return string(p.src[start:p.pos])
}

func isNameRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func (p *parser) parseEscape() (rune, error) {
	if p.atEnd() {
		return 0, p.errf("dangling escape at end of pattern")
	}
	c := p.advance()
	switch c {
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case '\\':
		return '\\', nil
	case '\'':
		return '\'', nil
	case '"':
		return '"', nil
	case '0':
		return 0, nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'v':
		return '\v', nil
	default:
		// anything else following a backslash is taken literally (e.g. \. \[
		// to escape a metacharacter), matching common regex-escape behavior.
		return c, nil
	}
}

// parseClass parses '[' ['^'] (member)* ']' where member is either a single
// (possibly escaped) char or a lo-hi range joined by '-'.
func (p *parser) parseClass() (*Node, error) {
	p.advance() // consume '['
	negated := false
	if !p.atEnd() && p.peek() == '^' {
		negated = true
		p.advance()
	}

	var members []ClassRange
	for {
		if p.atEnd() {
			return nil, p.errf("unbalanced character class: missing ']'")
		}
		if p.peek() == ']' {
			p.advance()
			break
		}
		lo, err := p.parseClassChar()
		if err != nil {
			return nil, err
		}
		if !p.atEnd() && p.peek() == '-' && p.pos+1 < len(p.src) && p.src[p.pos+1] != ']' {
			p.advance() // consume '-'
			hi, err := p.parseClassChar()
			if err != nil {
				return nil, err
			}
			if hi <= lo {
				return nil, p.errf("character range %q-%q has start >= end", lo, hi)
			}
			members = append(members, ClassRange{Lo: lo, Hi: hi})
		} else {
			members = append(members, ClassRange{Lo: lo, Hi: lo})
		}
	}

	return Class(p.cs, negated, members...), nil
}

func (p *parser) parseClassChar() (rune, error) {
	if p.atEnd() {
		return 0, p.errf("unbalanced character class: missing ']'")
	}
	c := p.advance()
	if c == '\\' {
		return p.parseEscape()
	}
	return c, nil
}
