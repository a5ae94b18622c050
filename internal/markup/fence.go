package markup

import (
	"regexp"
	"strings"
)

// DefaultLanguage is the code element tag used when a fence has no language.
const DefaultLanguage = "text"

// CopyLabel is the initial text of the copy button emitted with every code block.
const CopyLabel = "Copy"

// Class names and hook attribute shared with the presentation layer.
const (
	WrapperClass = "code-block-wrapper"
	ButtonClass  = "copy-btn"
	CopyAction   = "copy-code"
)

// openFence matches a start marker: three fence characters, an optional
// language tag without whitespace, and the end of that line.
var openFence = regexp.MustCompile("(```|~~~)([^\\s`~]*)[ \\t]*\n")

// CodeBlock is a well-formed fenced region found in a document.
type CodeBlock struct {
	Language string
	Body     string
}

type fence struct {
	start, end int
	lang       string
	body       string
}

// findFences returns every well-formed fence in src in order. The closing
// marker is the first occurrence of the opener's marker after the opening
// line. An opener without a closing marker is not a fence.
func findFences(src string) []fence {
	var fences []fence
	pos := 0
	for pos < len(src) {
		loc := openFence.FindStringSubmatchIndex(src[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		bodyStart := pos + loc[1]
		marker := src[pos+loc[2] : pos+loc[3]]
		lang := src[pos+loc[4] : pos+loc[5]]

		closeIdx := strings.Index(src[bodyStart:], marker)
		if closeIdx < 0 {
			// Unclosed: leave it literal and keep looking past the marker.
			pos = start + len(marker)
			continue
		}

		fences = append(fences, fence{
			start: start,
			end:   bodyStart + closeIdx + len(marker),
			lang:  lang,
			body:  trimBlankLines(src[bodyStart : bodyStart+closeIdx]),
		})
		pos = bodyStart + closeIdx + len(marker)
	}
	return fences
}

// trimBlankLines drops leading and trailing lines that hold only whitespace.
// Indentation of the remaining lines is kept.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// codeBlockHTML builds the structured code block with its copy hook.
func codeBlockHTML(lang, body string) string {
	if lang == "" {
		lang = DefaultLanguage
	}

	var b strings.Builder
	b.WriteString(`<div class="` + WrapperClass + `">` + "\n")
	b.WriteString(`<button class="` + ButtonClass + `" data-action="` + CopyAction + `" onclick="copyCode(this)">`)
	b.WriteString(CopyLabel + "</button>\n")
	b.WriteString(`<pre><code class="language-` + lang + `">` + body + "</code></pre>\n")
	b.WriteString("</div>")
	return b.String()
}

// CodeBlocks lists the fenced code blocks of a document in source order,
// exactly as ToHTML would extract them.
func CodeBlocks(raw string) []CodeBlock {
	src := normalizeNewlines(raw)
	fences := findFences(src)
	blocks := make([]CodeBlock, 0, len(fences))
	for _, f := range fences {
		lang := f.lang
		if lang == "" {
			lang = DefaultLanguage
		}
		blocks = append(blocks, CodeBlock{Language: lang, Body: f.body})
	}
	return blocks
}
