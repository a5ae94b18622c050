// Package clipboard implements the copy action attached to rendered code
// blocks: find the code element, read its display text, and hand it to a
// clipboard writer.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/net/html"

	"github.com/gerunddev/blogdeck/internal/markup"
)

// ErrNoCodeBlock is returned when the requested code block does not exist.
var ErrNoCodeBlock = errors.New("no such code block")

var codeSelector = cascadia.MustCompile("." + markup.WrapperClass + " pre code")

// Writer puts text on a clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) Write(ctx context.Context, text string) error {
	return f(ctx, text)
}

// OSC52 copies through the terminal using the OSC 52 escape sequence, which
// works over SSH and inside most multiplexers.
type OSC52 struct {
	Out    io.Writer
	Tmux   bool
	Screen bool
}

func (o OSC52) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if o.Out == nil {
		return errors.New("no terminal output for OSC 52")
	}

	seq := osc52.New(text)
	switch {
	case o.Tmux:
		seq = seq.Tmux()
	case o.Screen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("failed to write OSC 52 sequence: %w", err)
	}
	return nil
}

// codeElements parses rendered markup and returns the code elements of every
// code block in document order.
func codeElements(fragment string) ([]*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered markup: %w", err)
	}
	return codeSelector.MatchAll(doc), nil
}

// Count returns the number of code blocks in rendered markup.
func Count(fragment string) int {
	nodes, err := codeElements(fragment)
	if err != nil {
		return 0
	}
	return len(nodes)
}

// CodeText returns the display text of the index-th code block.
func CodeText(fragment string, index int) (string, error) {
	nodes, err := codeElements(fragment)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(nodes) {
		return "", fmt.Errorf("%w: %d of %d", ErrNoCodeBlock, index, len(nodes))
	}
	return textContent(nodes[index]), nil
}

// Copy reads the index-th code block of fragment and writes it to w. It
// returns the copied text.
func Copy(ctx context.Context, w Writer, fragment string, index int) (string, error) {
	text, err := CodeText(fragment, index)
	if err != nil {
		return "", err
	}
	if err := w.Write(ctx, text); err != nil {
		return "", fmt.Errorf("clipboard write failed: %w", err)
	}
	return text, nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if n.Data == "br" {
				b.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
