package markup

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func codeBlock(lang, body string) string {
	return `<div class="code-block-wrapper">` + "\n" +
		`<button class="copy-btn" data-action="copy-code" onclick="copyCode(this)">Copy</button>` + "\n" +
		`<pre><code class="language-` + lang + `">` + body + "</code></pre>\n" +
		"</div>"
}

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "level 1 header",
			input:    "# Introduction",
			expected: "<h1>Introduction</h1>",
		},
		{
			name:     "level 2 header",
			input:    "## Why Go Static?",
			expected: "<h2>Why Go Static?</h2>",
		},
		{
			name:     "level 3 header",
			input:    "### Conclusion",
			expected: "<h3>Conclusion</h3>",
		},
		{
			name:     "four hashes stay literal",
			input:    "#### Too deep",
			expected: "#### Too deep",
		},
		{
			name:     "hash without space stays literal",
			input:    "#hashtag",
			expected: "#hashtag",
		},
		{
			name:     "header only at line start",
			input:    "see # this",
			expected: "see # this",
		},
		{
			name:     "blockquote",
			input:    `> "Simplicity is the ultimate sophistication."`,
			expected: `<blockquote>"Simplicity is the ultimate sophistication."</blockquote>`,
		},
		{
			name:     "blockquote lines are not merged",
			input:    "> one\n> two",
			expected: "<blockquote>one</blockquote>\n<blockquote>two</blockquote>",
		},
		{
			name:     "bold",
			input:    "**hello**",
			expected: "<strong>hello</strong>",
		},
		{
			name:     "bold is non-greedy",
			input:    "**Hugo**, **Jekyll**, and more",
			expected: "<strong>Hugo</strong>, <strong>Jekyll</strong>, and more",
		},
		{
			name:     "unterminated bold is inert",
			input:    "**unterminated",
			expected: "**unterminated",
		},
		{
			name:     "empty bold stays literal",
			input:    "****",
			expected: "****",
		},
		{
			name:     "bold does not span lines",
			input:    "**open\nclose**",
			expected: "**open\nclose**",
		},
		{
			name:     "inline code",
			input:    "call `toggleTheme()` now",
			expected: "call <code>toggleTheme()</code> now",
		},
		{
			name:     "unterminated inline code is inert",
			input:    "a `b",
			expected: "a `b",
		},
		{
			name:     "ordered items are not merged",
			input:    "1. a\n1. b",
			expected: "<ol><li>a</li></ol>\n<ol><li>b</li></ol>",
		},
		{
			name:     "ordered item with multi-digit number",
			input:    "12. twelve",
			expected: "<ol><li>twelve</li></ol>",
		},
		{
			name:     "ordered item with bold",
			input:    "1. **Speed**: instant",
			expected: "<ol><li><strong>Speed</strong>: instant</li></ol>",
		},
		{
			name:     "unordered items are not merged",
			input:    "- a\n- b",
			expected: "<ul><li>a</li></ul>\n<ul><li>b</li></ul>",
		},
		{
			name:     "dash without space stays literal",
			input:    "-a",
			expected: "-a",
		},
		{
			name:     "paragraph break",
			input:    "first\n\nsecond",
			expected: "first</p><p>second",
		},
		{
			name:     "single newline is kept",
			input:    "first\nsecond",
			expected: "first\nsecond",
		},
		{
			name:     "header inside list text is not a list",
			input:    "# 1. Title",
			expected: "<h1>1. Title</h1>",
		},
		{
			name:     "crlf is normalised",
			input:    "# A\r\n- b",
			expected: "<h1>A</h1>\n<ul><li>b</li></ul>",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := ToHTML(tt.input)
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("ToHTML(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestToHTMLFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "fence with language",
			input:    "```javascript\nfunction toggleTheme() {\n    return 1;\n}\n```",
			expected: codeBlock("javascript", "function toggleTheme() {\n    return 1;\n}"),
		},
		{
			name:     "fence without language defaults to text",
			input:    "```\nplain\n```",
			expected: codeBlock("text", "plain"),
		},
		{
			name:     "blank lines around body are trimmed",
			input:    "```go\n\n\n  x := 1\n\n```",
			expected: codeBlock("go", "  x := 1"),
		},
		{
			name:     "tilde fence",
			input:    "~~~sh\necho ```\n~~~",
			expected: codeBlock("sh", "echo ```"),
		},
		{
			name:     "body is opaque to every other rule",
			input:    "```md\n# h\n> q\n**b** `c`\n1. one\n- two\n\npara\n```",
			expected: codeBlock("md", "# h\n> q\n**b** `c`\n1. one\n- two\n\npara"),
		},
		{
			name:     "first closing fence wins",
			input:    "```\na\n```\nmid\n```\nb\n```",
			expected: codeBlock("text", "a") + "\nmid\n" + codeBlock("text", "b"),
		},
		{
			name:     "unclosed fence stays literal",
			input:    "```js\n# still a header",
			expected: "```js\n<h1>still a header</h1>",
		},
		{
			name:     "text after closing fence on the same line is not a line start",
			input:    "```\nx\n```# not header\n# header",
			expected: codeBlock("text", "x") + "# not header\n<h1>header</h1>",
		},
		{
			name:     "paragraph break after fence",
			input:    "```\nx\n```\n\nnext",
			expected: codeBlock("text", "x") + "</p><p>next",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := ToHTML(tt.input)
			if diff := cmp.Diff(tt.expected, actual); diff != "" {
				t.Errorf("ToHTML(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestToHTMLFenceExtractedBeforeHeaders(t *testing.T) {
	actual := ToHTML("# Title\n```\n# inside fence\n```")
	expected := "<h1>Title</h1>\n" + codeBlock("text", "# inside fence")

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(actual, "<h1>inside fence</h1>") {
		t.Error("header rule was applied inside the fence")
	}
}

func TestToHTMLDocument(t *testing.T) {
	input := "# Notes\n" +
		"Intro with **bold** and `code`.\n" +
		"\n" +
		"## List\n" +
		"1. one\n" +
		"2. two\n" +
		"- dash\n" +
		"\n" +
		"> quote\n" +
		"\n" +
		"```go\n" +
		"fmt.Println(\"# not a header\")\n" +
		"```\n"

	expected := "<h1>Notes</h1>\n" +
		"Intro with <strong>bold</strong> and <code>code</code>.</p><p>" +
		"<h2>List</h2>\n" +
		"<ol><li>one</li></ol>\n" +
		"<ol><li>two</li></ol>\n" +
		"<ul><li>dash</li></ul></p><p>" +
		"<blockquote>quote</blockquote></p><p>" +
		codeBlock("go", `fmt.Println("# not a header")`) +
		"\n"

	if diff := cmp.Diff(expected, ToHTML(input)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToHTMLDeterministic(t *testing.T) {
	input := "# A\n```go\nx\n```\n\n**b** `c`\n1. d\n- e"
	first := ToHTML(input)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ToHTML(input)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != first {
			t.Errorf("call %d produced different output:\n%s\nvs\n%s", i, r, first)
		}
	}
}

func TestRuleOrder(t *testing.T) {
	want := []string{"header", "blockquote", "bold", "inline-code", "ordered-list", "unordered-list", "paragraph"}
	var got []string
	for _, r := range rules {
		got = append(got, r.name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rule order mismatch (-want +got):\n%s", diff)
	}
}
