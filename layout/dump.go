package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders the layout tree in the same "#document"-style indented
// format dom.Document.Dump produces, so a CLI can print DOM and layout
// trees side by side in one consistent shape.
func Dump(root *Box) string {
	var sb strings.Builder
	sb.WriteString("#layout\n")
	if root != nil {
		dump(root, &sb, 0)
	}
	return sb.String()
}

func dump(b *Box, sb *strings.Builder, depth int) {
	sb.WriteString("| ")
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(describe(b))
	sb.WriteByte('\n')
	for _, c := range b.Children {
		dump(c, sb, depth+1)
	}
}

func describe(b *Box) string {
	geom := fmt.Sprintf("(%s,%s %sx%s)",
		trimFloat(b.X), trimFloat(b.Y), trimFloat(b.Width), trimFloat(b.Height))

	switch b.Type {
	case TypeText:
		return fmt.Sprintf("text %q %s", b.Text, geom)
	case TypeAnonymousBlock:
		return "anonymous-block " + geom
	default:
		tag := "?"
		if b.StyledNode != nil {
			tag = b.StyledNode.Tag()
		}
		kind := "block"
		if b.Type == TypeInline {
			kind = "inline"
		}
		return fmt.Sprintf("<%s> %s %s", tag, kind, geom)
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
