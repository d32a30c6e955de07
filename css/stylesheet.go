package css

import "gocko/css/mediaquery"

// Rule is a single CSS rule: a selector list, its cascade-normal and
// !important declarations keyed by PropertyId, any custom properties it
// sets, and the @media condition it is nested in (if any).
type Rule struct {
	Selectors             []string
	Declarations          map[PropertyId]string
	ImportantDeclarations map[PropertyId]string
	CustomProperties      map[string]string
	MediaQuery            *mediaquery.Query
}

// Stylesheet is an ordered list of rules; order is preserved for cascade
// tie-breaks (last-write-wins scans rely on this).
type Stylesheet struct {
	Rules []Rule
}

// Append adds more rules to the end of the stylesheet, as when splicing in
// a linked stylesheet after the inline ones.
func (s *Stylesheet) Append(rules ...Rule) {
	s.Rules = append(s.Rules, rules...)
}

// ParseInlineDeclarations parses a `style="..."` attribute value as if it
// were the body of a rule, by wrapping it in a dummy selector and reusing
// the stylesheet parser.
func ParseInlineDeclarations(styleAttr string) Rule {
	sheet := Parse("dummy{" + styleAttr + "}")
	if len(sheet.Rules) == 0 {
		return newRule()
	}
	return sheet.Rules[0]
}

func newRule() Rule {
	return Rule{
		Declarations:          make(map[PropertyId]string),
		ImportantDeclarations: make(map[PropertyId]string),
		CustomProperties:      make(map[string]string),
	}
}
