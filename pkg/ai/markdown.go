package ai

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ParseBullets flattens model output into one line per list item or
// top-level paragraph. Strong emphasis becomes a {…} highlight marker; every
// other brace is dropped so markers stay single-level.
func ParseBullets(md string) []string {
	src := []byte(md)
	doc := markdown.Parser().Parse(text.NewReader(src))

	var out []string
	add := func(s string) {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" {
			out = append(out, s)
		}
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindListItem:
			var b strings.Builder
			inlineText(n, src, &b)
			add(b.String())
		case ast.KindParagraph:
			if n.Parent() != nil && n.Parent().Kind() == ast.KindDocument {
				var b strings.Builder
				inlineText(n, src, &b)
				add(b.String())
			}
			return ast.WalkSkipChildren, nil
		case ast.KindHeading, ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return out
}

// ParseText joins ParseBullets output into one paragraph.
func ParseText(md string) string {
	return strings.Join(ParseBullets(md), " ")
}

var braceStripper = strings.NewReplacer("{", "", "}", "")

// inlineText writes the text of n's inline content. Nested lists are left to
// the walker so each of their items becomes its own line.
func inlineText(n ast.Node, src []byte, b *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.List:
			continue
		case *ast.Text:
			b.WriteString(braceStripper.Replace(string(node.Segment.Value(src))))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.WriteString(braceStripper.Replace(string(node.Value)))
		case *ast.AutoLink:
			b.WriteString(braceStripper.Replace(string(node.Label(src))))
		case *ast.Emphasis:
			if node.Level >= 2 {
				var inner strings.Builder
				inlineText(node, src, &inner)
				if s := strings.TrimSpace(inner.String()); s != "" {
					b.WriteString("{" + s + "}")
				}
				continue
			}
			inlineText(node, src, b)
		case *ast.Paragraph, *ast.TextBlock:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			inlineText(node, src, b)
		default:
			inlineText(node, src, b)
		}
	}
}
