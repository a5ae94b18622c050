// Package render draws display markup in the terminal. It is the display
// surface for post bodies: converted markup and pass-through HTML alike.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gerunddev/blogdeck/internal/markup"
	"github.com/gerunddev/blogdeck/internal/styles"
)

// Options control how a body is drawn.
type Options struct {
	// Width wraps text blocks; zero disables wrapping.
	Width int
	// Selected marks the code block the copy key acts on; -1 for none.
	Selected int
	// Label returns the copy button text for code block i. Nil always
	// shows markup.CopyLabel.
	Label func(i int) string
}

type block struct {
	text     string
	listItem bool
}

type renderer struct {
	p      styles.Palette
	opts   Options
	blocks []block
	inline strings.Builder
	code   int
}

// HTML renders an HTML fragment as styled terminal text.
func HTML(fragment string, p styles.Palette, opts Options) (string, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("failed to parse body: %w", err)
	}

	r := &renderer{p: p, opts: opts}
	r.walk(doc)
	r.flush()

	var out strings.Builder
	for i, b := range r.blocks {
		if i > 0 {
			if b.listItem && r.blocks[i-1].listItem {
				out.WriteString("\n")
			} else {
				out.WriteString("\n\n")
			}
		}
		out.WriteString(b.text)
	}
	return out.String(), nil
}

func (r *renderer) walk(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.node(c)
	}
}

func (r *renderer) node(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		r.inline.WriteString(collapseSpace(n.Data))
		return
	case html.ElementNode:
	default:
		r.walk(n)
		return
	}

	switch n.DataAtom {
	case atom.Head, atom.Script, atom.Style:
	case atom.Html, atom.Body:
		r.walk(n)
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		r.flush()
		level := int(n.Data[1] - '0')
		if level > len(r.p.Heading) {
			level = len(r.p.Heading)
		}
		r.add(r.p.Heading[level-1].Render(strings.TrimSpace(r.inlineChildren(n))), false)
	case atom.P:
		r.flush()
		r.inline.WriteString(r.inlineChildren(n))
		r.flush()
	case atom.Blockquote:
		r.flush()
		text := strings.TrimSpace(r.inlineChildren(n))
		if text != "" {
			r.add(r.wrap(r.p.Quote, 2).Render(text), false)
		}
	case atom.Ol, atom.Ul:
		r.flush()
		r.list(n)
	case atom.Div:
		r.flush()
		if hasClass(n, markup.WrapperClass) {
			r.codeBlock(n)
			return
		}
		r.walk(n)
		r.flush()
	case atom.Pre:
		r.flush()
		r.add(r.p.CodeBox.Render(textContent(n)), false)
	default:
		r.inline.WriteString(r.inlineNode(n))
	}
}

// flush turns pending inline text into a paragraph block.
func (r *renderer) flush() {
	text := strings.TrimSpace(r.inline.String())
	r.inline.Reset()
	if text == "" {
		return
	}
	r.add(r.wrap(r.p.Text, 0).Render(text), false)
}

func (r *renderer) add(text string, listItem bool) {
	r.blocks = append(r.blocks, block{text: text, listItem: listItem})
}

// wrap limits s to the configured width minus inset columns of decoration.
func (r *renderer) wrap(s lipgloss.Style, inset int) lipgloss.Style {
	if r.opts.Width <= inset {
		return s
	}
	return s.Width(r.opts.Width - inset)
}

func (r *renderer) list(n *html.Node) {
	ordered := n.DataAtom == atom.Ol
	i := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Li {
			continue
		}
		i++
		marker := "•"
		if ordered {
			marker = strconv.Itoa(i) + "."
		}
		r.add(r.p.Bullet.Render(marker)+" "+strings.TrimSpace(r.inlineChildren(c)), true)
	}
}

func (r *renderer) codeBlock(n *html.Node) {
	idx := r.code
	r.code++

	label := markup.CopyLabel
	if r.opts.Label != nil {
		label = r.opts.Label(idx)
	}
	button := r.p.Button
	if label != markup.CopyLabel {
		button = r.p.ButtonAck
	}

	lang := ""
	text := ""
	if code := find(n, atom.Code); code != nil {
		lang = strings.TrimPrefix(classWithPrefix(code, "language-"), "language-")
		text = textContent(code)
	}

	header := button.Render(label) + " " + r.p.Dim.Render(lang)
	if idx == r.opts.Selected {
		header = r.p.Bullet.Render("▶") + " " + header
	}
	r.add(header+"\n"+r.p.CodeBox.Render(text), false)
}

func (r *renderer) inlineChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(r.inlineNode(c))
	}
	return b.String()
}

func (r *renderer) inlineNode(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return collapseSpace(n.Data)
	case html.ElementNode:
	default:
		return ""
	}

	switch n.DataAtom {
	case atom.Strong, atom.B:
		return r.p.Strong.Render(r.inlineChildren(n))
	case atom.Em, atom.I:
		return r.p.Text.Italic(true).Render(r.inlineChildren(n))
	case atom.Code:
		return r.p.InlineCode.Render(textContent(n))
	case atom.Br:
		return "\n"
	case atom.Script, atom.Style:
		return ""
	default:
		return r.inlineChildren(n)
	}
}

// collapseSpace folds whitespace runs to a single space, as a browser does
// outside pre.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f'
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func classWithPrefix(n *html.Node, prefix string) string {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if strings.HasPrefix(c, prefix) {
				return c
			}
		}
	}
	return ""
}

func find(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
		if found := find(c, a); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
