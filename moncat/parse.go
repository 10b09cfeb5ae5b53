// SPDX-License-Identifier: MIT

package moncat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Lookup resolves a box name, as printed by Box.String without the dagger
// mark, to an arrow. Unknown names should return an error matching
// ErrUnknownBox.
type Lookup func(name string) (Arrow, error)

// Parse reads the textual form produced by Diagram.String.
//
// Grammar (">>" binds looser than "@"):
//
//	seq    = tensor { ">>" tensor }
//	tensor = factor { "@" factor }
//	factor = "(" seq ")" [ "†" ] | atom [ "†" ]
//	atom   = "Id(" type ")" | "PRO(" int ")" | "Ty()" | name
//
// Names may contain balanced parentheses, e.g. "Copy(2, 3)". Identity
// arguments are a PRO width ("Id(2)") or labels joined by "@" ("Id(x @ y)").
//
// Errors: ErrParse for malformed input, ErrUnknownBox for names lookup cannot
// resolve, *AxiomError for ill-typed compositions.
func Parse(expr string, lookup Lookup) (Diagram, error) {
	p := &parser{src: expr, lookup: lookup}
	d, err := p.seq()
	if err != nil {
		return Diagram{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Diagram{}, p.errorf("unexpected %q", p.src[p.pos:])
	}

	return d, nil
}

type parser struct {
	src    string
	pos    int
	lookup Lookup
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrParse, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n' || p.src[p.pos] == '\r') {
		p.pos++
	}
}

// consume skips spaces and then tok when present.
func (p *parser) consume(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}

	return false
}

func (p *parser) seq() (Diagram, error) {
	d, err := p.tensor()
	if err != nil {
		return Diagram{}, err
	}
	for p.consume(">>") {
		next, err := p.tensor()
		if err != nil {
			return Diagram{}, err
		}
		if d, err = d.Then(next); err != nil {
			return Diagram{}, err
		}
	}

	return d, nil
}

func (p *parser) tensor() (Diagram, error) {
	d, err := p.factor()
	if err != nil {
		return Diagram{}, err
	}
	for p.consume("@") {
		next, err := p.factor()
		if err != nil {
			return Diagram{}, err
		}
		if d, err = d.Tensor(next); err != nil {
			return Diagram{}, err
		}
	}

	return d, nil
}

func (p *parser) factor() (Diagram, error) {
	if p.consume("(") {
		d, err := p.seq()
		if err != nil {
			return Diagram{}, err
		}
		if !p.consume(")") {
			return Diagram{}, p.errorf("missing )")
		}
		if p.consume(daggerMark) {
			d = d.Dagger()
		}

		return d, nil
	}

	start := p.pos
	text, err := p.atom()
	if err != nil {
		return Diagram{}, err
	}
	dagger := false
	if rest, ok := strings.CutSuffix(text, daggerMark); ok {
		text, dagger = strings.TrimSpace(rest), true
	}
	d, err := p.resolve(text)
	if err != nil {
		return Diagram{}, fmt.Errorf("offset %d: %w", start, err)
	}
	if dagger {
		d = d.Dagger()
	}

	return d, nil
}

// atom scans up to the next top-level "@", ">>" or ")".
func (p *parser) atom() (string, error) {
	p.skipSpace()
	start, depth := p.pos, 0
loop:
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				break loop
			}
			depth--
		case depth == 0 && (c == '@' || strings.HasPrefix(p.src[p.pos:], ">>")):
			break loop
		}
		p.pos++
	}
	if depth != 0 {
		return "", p.errorf("unbalanced ( in %q", p.src[start:])
	}
	text := strings.TrimSpace(p.src[start:p.pos])
	if text == "" {
		return "", p.errorf("expected a box")
	}

	return text, nil
}

func (p *parser) resolve(text string) (Diagram, error) {
	switch {
	case text == "Ty()":
		return Id(Ty{}), nil
	case strings.HasPrefix(text, "Id(") && strings.HasSuffix(text, ")"):
		t, err := parseType(text[len("Id(") : len(text)-1])
		if err != nil {
			return Diagram{}, err
		}
		return Id(t), nil
	case strings.HasPrefix(text, "PRO(") && strings.HasSuffix(text, ")"):
		n, err := strconv.Atoi(strings.TrimSpace(text[len("PRO(") : len(text)-1]))
		if err != nil {
			return Diagram{}, fmt.Errorf("%w: bad PRO width in %q", ErrParse, text)
		}
		t, err := NewPRO(n)
		if err != nil {
			return Diagram{}, err
		}
		return Id(t), nil
	}
	if p.lookup == nil {
		return Diagram{}, fmt.Errorf("%w: %q", ErrUnknownBox, text)
	}
	a, err := p.lookup(text)
	switch {
	case err != nil && errors.Is(err, ErrUnknownBox):
		return Diagram{}, err
	case err != nil:
		return Diagram{}, fmt.Errorf("box %q: %w", text, err)
	case a == nil:
		return Diagram{}, fmt.Errorf("%w: %q", ErrUnknownBox, text)
	}

	return a.Diagram(), nil
}

// parseType reads the argument of Id(...): a PRO width or "@"-joined labels.
func parseType(arg string) (Ty, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return Ty{}, nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return NewPRO(n)
	}
	parts := strings.Split(arg, "@")
	labels := make([]string, len(parts))
	for i, part := range parts {
		labels[i] = strings.TrimSpace(part)
		if labels[i] == "" {
			return Ty{}, fmt.Errorf("%w: empty label in Id(%s)", ErrParse, arg)
		}
	}

	return NewTy(labels...), nil
}

// ParseType reads a type written as in Id(...): "" or "0" for the unit,
// "3" for PRO(3), "x @ y" for labels. The Ty.String forms "Ty()" and
// "PRO(3)" are accepted too, so ParseType(t.String()) returns t.
func ParseType(s string) (Ty, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "Ty()":
		return Ty{}, nil
	case strings.HasPrefix(s, "PRO(") && strings.HasSuffix(s, ")"):
		n, err := strconv.Atoi(strings.TrimSpace(s[len("PRO(") : len(s)-1]))
		if err != nil {
			return Ty{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
		}
		return NewPRO(n)
	}

	return parseType(s)
}
