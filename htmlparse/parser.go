// Package htmlparse turns an HTML byte stream into a dom.Document. Tree
// construction is deliberately tolerant of malformed markup, the way a
// browser's parser is: unmatched closing tags are absorbed, void elements
// never get children, and script/style content is captured verbatim.
package htmlparse

import (
	"context"
	"regexp"
	"strings"

	"gocko/dom"
)

// ParseOptions configures a single parse. The zero value is the common case.
type ParseOptions struct {
	// Quirks forces quirks mode regardless of doctype sniffing.
	Quirks bool
}

// Parser turns raw bytes into a Document. Implementations may tokenize and
// build the tree differently; this package's TreeBuilder is the reference one.
type Parser interface {
	Parse(ctx context.Context, body []byte, opts ParseOptions) (*dom.Document, error)
}

// TreeBuilder is the reference Parser implementation: a single-pass
// tokenizer feeding a tolerant tree builder.
type TreeBuilder struct{}

// NewTreeBuilder returns the reference Parser.
func NewTreeBuilder() *TreeBuilder { return &TreeBuilder{} }

// Parse implements Parser. The context is checked between top-level tokens
// so a very large document can be cancelled mid-parse.
func (TreeBuilder) Parse(ctx context.Context, body []byte, opts ParseOptions) (*dom.Document, error) {
	doc := &Document{Quirks: opts.Quirks}
	if err := doc.parse(ctx, string(body)); err != nil {
		return nil, err
	}
	return doc.toDOM(), nil
}

// skipTags are dropped wholesale, content included: the engine has no
// collaborator for these (no SVG renderer, no script-disabled fallback
// content, no template instantiation).
var skipTags = map[string]bool{"svg": true, "noscript": true, "template": true}

// rawContentTags preserve their body as a single opaque text child — the
// engine hands script/style content to other components unparsed here.
var rawContentTags = map[string]bool{"script": true, "style": true}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Document is the builder's mutable intermediate state; toDOM freezes it
// into a *dom.Document once parsing completes.
type Document struct {
	root    *dom.Node
	doctype *dom.DoctypeInfo
	Quirks  bool
}

func (d *Document) toDOM() *dom.Document {
	return &dom.Document{Root: d.root, Doctype: d.doctype, Quirks: d.Quirks}
}

var attrRegex = regexp.MustCompile(`([^\s=/]+)\s*=\s*("([^"]*)"|'([^']*)'|([^\s>]+))`)

// parseAttributes extracts attribute name/value pairs from raw tag content.
// Attribute names are kept as written; the spec's data model is
// case-sensitive on attribute lookup.
func parseAttributes(tagContent string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrRegex.FindAllStringSubmatch(tagContent, -1) {
		name := m[1]
		value := m[3]
		if value == "" && m[4] != "" {
			value = m[4]
		} else if value == "" && m[5] != "" {
			value = m[5]
		}
		attrs[name] = value
	}
	return attrs
}

var doctypeRegex = regexp.MustCompile(`(?i)^doctype\s+(\S+)(?:\s+(?:PUBLIC|SYSTEM)\s+"([^"]*)")?(?:\s+"([^"]*)")?`)

func (d *Document) parse(ctx context.Context, raw string) error {
	root := dom.NewElement("html")
	d.root = root
	current := root
	tok := newTokenizer(raw)

	for tok.hasMore() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tag, fullTag, isTag, isClose, isDoctype, comment, hasComment := tok.next()

		switch {
		case hasComment:
			current.AppendChild(dom.NewComment(comment))

		case isDoctype:
			if m := doctypeRegex.FindStringSubmatch(strings.TrimSpace(fullTag)); m != nil {
				d.doctype = &dom.DoctypeInfo{Name: m[1], PublicID: m[2], SystemID: m[3]}
				if !strings.EqualFold(m[1], "html") || m[2] != "" {
					d.Quirks = true
				}
			}

		case isTag:
			tagName := strings.ToLower(strings.TrimSpace(tag))
			if tagName == "" {
				continue
			}
			isSelfClosing := strings.HasSuffix(strings.TrimSpace(fullTag), "/")

			switch {
			case isClose:
				for p := current; p != nil && p.Parent != nil; p = p.Parent {
					if strings.EqualFold(p.Tag, tagName) {
						current = p.Parent
						break
					}
				}

			case rawContentTags[tagName]:
				newNode := dom.NewElement(tagName)
				newNode.Attributes = parseAttributes(fullTag)
				current.AppendChild(newNode)

				closeTag := "</" + tagName
				start := tok.pos
				for tok.pos < len(tok.raw) {
					if strings.HasPrefix(strings.ToLower(tok.raw[tok.pos:]), closeTag) {
						content := tok.raw[start:tok.pos]
						if content != "" {
							newNode.AppendChild(dom.NewText(content))
						}
						for tok.pos < len(tok.raw) && tok.raw[tok.pos] != '>' {
							tok.pos++
						}
						if tok.pos < len(tok.raw) {
							tok.pos++
						}
						break
					}
					tok.pos++
				}

			case skipTags[tagName]:
				closeTag := "</" + tagName
				for tok.pos < len(tok.raw) {
					if strings.HasPrefix(strings.ToLower(tok.raw[tok.pos:]), closeTag) {
						for tok.pos < len(tok.raw) && tok.raw[tok.pos] != '>' {
							tok.pos++
						}
						if tok.pos < len(tok.raw) {
							tok.pos++
						}
						break
					}
					tok.pos++
				}

			case voidElements[tagName] || isSelfClosing:
				newNode := dom.NewElement(tagName)
				newNode.Attributes = parseAttributes(fullTag)
				current.AppendChild(newNode)

			default:
				if (tagName == "p" || tagName == "li") && strings.EqualFold(current.Tag, tagName) {
					current = current.Parent
				}
				newNode := dom.NewElement(tagName)
				newNode.Attributes = parseAttributes(fullTag)
				current.AppendChild(newNode)
				current = newNode
			}

		default:
			if tag != "" {
				current.AppendChild(dom.NewText(tag))
			}
		}
	}
	return nil
}
