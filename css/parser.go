package css

import (
	"strings"

	"gocko/css/mediaquery"
)

// Parser is a tokeniser-less CSS parser: it consumes runes off a string
// with peek/advance/skip-whitespace primitives rather than pre-tokenising,
// the way a streaming C++ parser would.
type Parser struct {
	input []rune
	pos   int
}

// NewParser returns a Parser over src.
func NewParser(src string) *Parser {
	return &Parser{input: []rune(src)}
}

// Parse parses the full stylesheet.
func Parse(src string) *Stylesheet {
	p := NewParser(src)
	return p.ParseStylesheet()
}

func (p *Parser) peek() rune {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) peekAt(offset int) rune {
	if p.pos+offset >= len(p.input) {
		return 0
	}
	return p.input[p.pos+offset]
}

func (p *Parser) advance() rune {
	r := p.peek()
	p.pos++
	return r
}

func (p *Parser) eof() bool { return p.pos >= len(p.input) }

// skipWhitespace skips spaces and C-style /* */ comments, which are legal
// anywhere whitespace is.
func (p *Parser) skipWhitespace() {
	for !p.eof() {
		r := p.peek()
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			p.advance()
			continue
		}
		if r == '/' && p.peekAt(1) == '*' {
			p.pos += 2
			for !p.eof() && !(p.peek() == '*' && p.peekAt(1) == '/') {
				p.advance()
			}
			if !p.eof() {
				p.pos += 2
			}
			continue
		}
		break
	}
}

// consumeUntil reads runes up to (not including) any of the stop runes,
// returning the accumulated text.
func (p *Parser) consumeUntil(stop ...rune) string {
	var sb strings.Builder
	for !p.eof() {
		r := p.peek()
		for _, s := range stop {
			if r == s {
				return sb.String()
			}
		}
		sb.WriteRune(p.advance())
	}
	return sb.String()
}

// ParseStylesheet parses the parser's entire input into a Stylesheet.
func (p *Parser) ParseStylesheet() *Stylesheet {
	sheet := &Stylesheet{}
	p.parseRules(sheet, nil)
	return sheet
}

// parseRules parses rules until EOF or (when inside an @media block) a
// closing brace, applying mq to every rule produced.
func (p *Parser) parseRules(sheet *Stylesheet, mq *mediaquery.Query) {
	for {
		p.skipWhitespace()
		if p.eof() {
			return
		}
		if p.peek() == '}' {
			return
		}

		if p.peek() == '@' {
			if !p.parseAtRule(sheet, mq) {
				return
			}
			continue
		}

		rule, ok := p.parseRule(mq)
		if !ok {
			return
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
}

// parseAtRule handles @charset, @import, @media, @font-face, and skips
// unknown at-rules over balanced braces. Returns false when input was
// truncated mid-at-rule (caller should stop, rules parsed so far stand).
func (p *Parser) parseAtRule(sheet *Stylesheet, mq *mediaquery.Query) bool {
	start := p.pos
	p.advance() // '@'
	name := p.consumeIdent()
	p.skipWhitespace()

	switch name {
	case "charset", "import":
		p.consumeUntil(';')
		if p.eof() {
			return false
		}
		p.advance() // ';'
		return true

	case "media":
		condition := strings.TrimSpace(p.consumeUntil('{'))
		if p.eof() {
			return false
		}
		p.advance() // '{'
		q := mediaquery.Parse(condition)
		p.parseRules(sheet, &q)
		p.skipWhitespace()
		if p.eof() {
			return false
		}
		p.advance() // '}'
		return true

	case "font-face":
		p.pos = start
		rule, ok := p.parseDeclarationBlockAsRule("@font-face", mq)
		if !ok {
			return false
		}
		sheet.Rules = append(sheet.Rules, rule)
		return true

	default:
		// Unknown at-rule: skip a balanced-brace block, or to ';' if there
		// is no block at all.
		depth := 0
		for !p.eof() {
			r := p.advance()
			if r == '{' {
				depth++
			} else if r == '}' {
				depth--
				if depth <= 0 {
					return true
				}
			} else if r == ';' && depth == 0 {
				return true
			}
		}
		return false
	}
}

func (p *Parser) consumeIdent() string {
	var sb strings.Builder
	for !p.eof() {
		r := p.peek()
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '{' || r == ';' || r == '(' {
			break
		}
		sb.WriteRune(p.advance())
	}
	return sb.String()
}

// parseDeclarationBlockAsRule parses "selector { decls }" using selector
// literally (used for @font-face, whose selector is the literal name).
func (p *Parser) parseDeclarationBlockAsRule(selector string, mq *mediaquery.Query) (Rule, bool) {
	p.consumeUntil('{')
	if p.eof() {
		return Rule{}, false
	}
	p.advance() // '{'
	rule := newRule()
	rule.Selectors = []string{selector}
	rule.MediaQuery = mq
	if !p.parseDeclarations(&rule) {
		return rule, true // partial rule: keep everything parsed so far
	}
	return rule, true
}

// parseRule parses one "selector-list { declarations }" rule.
func (p *Parser) parseRule(mq *mediaquery.Query) (Rule, bool) {
	selectorText := p.consumeUntil('{')
	if p.eof() {
		return Rule{}, false
	}
	p.advance() // '{'

	rule := newRule()
	rule.MediaQuery = mq
	for _, s := range strings.Split(selectorText, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			rule.Selectors = append(rule.Selectors, s)
		}
	}

	p.parseDeclarations(&rule)
	return rule, true
}

// parseDeclarations parses "name : value ;" pairs until '}' or EOF,
// returning false if input ran out before the closing brace (partial rule).
func (p *Parser) parseDeclarations(rule *Rule) bool {
	for {
		p.skipWhitespace()
		if p.eof() {
			return false
		}
		if p.peek() == '}' {
			p.advance()
			return true
		}

		name := strings.TrimSpace(p.consumeUntil(':', ';', '}'))
		if p.eof() {
			return false
		}
		if p.peek() != ':' {
			// Malformed declaration (no colon) or nested rule brace;
			// bail past it.
			if p.peek() == ';' {
				p.advance()
				continue
			}
			return false
		}
		p.advance() // ':'

		value := strings.TrimSpace(p.consumeUntil(';', '}'))
		hasSemi := !p.eof() && p.peek() == ';'
		if hasSemi {
			p.advance()
		}

		p.applyDeclaration(rule, name, value)

		if p.eof() {
			return false
		}
	}
}

func (p *Parser) applyDeclaration(rule *Rule, name, value string) {
	if name == "" || value == "" {
		return
	}

	// IE "*foo" star-hack and similar: names starting with a non-alpha
	// character are silently ignored (custom properties are the one
	// non-alpha-leading exception, handled next).
	if !strings.HasPrefix(name, "--") {
		first := rune(name[0])
		if !(first >= 'a' && first <= 'z' || first >= 'A' && first <= 'Z') {
			return
		}
	}

	if strings.HasPrefix(name, "-moz-") || strings.HasPrefix(name, "-webkit-") ||
		strings.HasPrefix(name, "-ms-") || strings.HasPrefix(name, "-o-") {
		return
	}

	if strings.HasPrefix(name, "--") {
		rule.CustomProperties[name] = strings.TrimSpace(value)
		return
	}

	important := false
	trimmed := strings.TrimSpace(value)
	if idx := strings.LastIndex(strings.ToLower(trimmed), "!important"); idx != -1 && idx+len("!important") == len(trimmed) {
		important = true
		value = strings.TrimSpace(trimmed[:idx])
	}

	expandShorthand(rule, strings.ToLower(name), value, important)
}

func targetMap(rule *Rule, important bool) map[PropertyId]string {
	if important {
		return rule.ImportantDeclarations
	}
	return rule.Declarations
}
