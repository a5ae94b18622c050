// Package markup converts a small subset of markdown into HTML for display.
//
// Supported constructs: fenced code blocks, # to ### headers, "> " quotes,
// **bold**, `inline code`, "1. " and "- " list items, and blank-line
// paragraph breaks. Anything else passes through as literal text.
package markup

import (
	"regexp"
	"strings"
)

// segment is a run of the document. Opaque segments hold markup produced by
// the fence rule and are never seen by later rules.
type segment struct {
	text      string
	opaque    bool
	lineStart bool // text begins at the start of a source line
}

// rule is one ordered pattern-to-replacement pass over literal text.
type rule struct {
	name     string
	anchored bool // matches only at the start of a line
	apply    func(string) string
}

var (
	headerPattern     = regexp.MustCompile(`(?m)^(#{1,3}) (.*)$`)
	quotePattern      = regexp.MustCompile(`(?m)^> (.*)$`)
	boldPattern       = regexp.MustCompile(`\*\*([^\n]+?)\*\*`)
	inlineCodePattern = regexp.MustCompile("`([^`\n]+)`")
	orderedPattern    = regexp.MustCompile(`(?m)^\d+\. (.*)$`)
	unorderedPattern  = regexp.MustCompile(`(?m)^- (.*)$`)
)

// rules run in this order after fences have been extracted.
var rules = []rule{
	{name: "header", anchored: true, apply: convertHeaders},
	{name: "blockquote", anchored: true, apply: func(s string) string {
		return quotePattern.ReplaceAllString(s, "<blockquote>$1</blockquote>")
	}},
	{name: "bold", apply: func(s string) string {
		return boldPattern.ReplaceAllString(s, "<strong>$1</strong>")
	}},
	{name: "inline-code", apply: func(s string) string {
		return inlineCodePattern.ReplaceAllString(s, "<code>$1</code>")
	}},
	{name: "ordered-list", anchored: true, apply: func(s string) string {
		return orderedPattern.ReplaceAllString(s, "<ol><li>$1</li></ol>")
	}},
	{name: "unordered-list", anchored: true, apply: func(s string) string {
		return unorderedPattern.ReplaceAllString(s, "<ul><li>$1</li></ul>")
	}},
	{name: "paragraph", apply: func(s string) string {
		return strings.ReplaceAll(s, "\n\n", "</p><p>")
	}},
}

// ToHTML converts raw markup into an HTML fragment. It never fails: input it
// does not understand is returned as literal text. The result depends only on
// raw, so it is safe to call concurrently.
func ToHTML(raw string) string {
	segments := splitFences(normalizeNewlines(raw))

	for _, r := range rules {
		for i := range segments {
			if segments[i].opaque {
				continue
			}
			segments[i].text = r.run(segments[i])
		}
	}

	var out strings.Builder
	for _, s := range segments {
		out.WriteString(s.text)
	}
	return out.String()
}

// run applies the rule to a literal segment. A segment that starts mid-line
// (right after a closing fence) keeps its first line away from anchored rules.
func (r rule) run(s segment) string {
	if !r.anchored || s.lineStart {
		return r.apply(s.text)
	}
	i := strings.IndexByte(s.text, '\n')
	if i < 0 {
		return s.text
	}
	return s.text[:i] + r.apply(s.text[i:])
}

// splitFences cuts the document into literal text and opaque code blocks.
func splitFences(src string) []segment {
	var segments []segment
	pos := 0
	for _, f := range findFences(src) {
		if f.start > pos {
			segments = append(segments, segment{
				text:      src[pos:f.start],
				lineStart: atLineStart(src, pos),
			})
		}
		segments = append(segments, segment{
			text:   codeBlockHTML(f.lang, f.body),
			opaque: true,
		})
		pos = f.end
	}
	if pos < len(src) {
		segments = append(segments, segment{
			text:      src[pos:],
			lineStart: atLineStart(src, pos),
		})
	}
	return segments
}

// convertHeaders turns "# ", "## " and "### " lines into h1 to h3.
func convertHeaders(s string) string {
	return headerPattern.ReplaceAllStringFunc(s, func(match string) string {
		submatches := headerPattern.FindStringSubmatch(match)
		if len(submatches) < 3 {
			return match
		}
		level := string(rune('0' + len(submatches[1])))
		return "<h" + level + ">" + submatches[2] + "</h" + level + ">"
	})
}

func atLineStart(src string, pos int) bool {
	return pos == 0 || src[pos-1] == '\n'
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
