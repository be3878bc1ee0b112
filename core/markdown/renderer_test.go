package markdown

import (
	"strings"
	"testing"
)

func TestRender_Headings(t *testing.T) {
	html := Render("# One\n\n## Two\n\n### Three\n\n#### Four")

	for _, want := range []string{"<h1 ", "<h2 ", "<h3 ", "<h4 "} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %s in output", want)
		}
	}
	if !strings.Contains(html, ">Four</h4>") {
		t.Errorf("#### should render as h4, not partial h1 matches: %s", html)
	}
}

func TestRender_CodeBlock(t *testing.T) {
	html := Render("```go\nfmt.Println(\"hi <there>\")\n```")

	if !strings.Contains(html, `<code class="language-go">`) {
		t.Error("missing language-tagged code element")
	}
	if !strings.Contains(html, "&lt;there&gt;") {
		t.Error("code content should be entity-escaped")
	}
	if !strings.Contains(html, `data-code="fmt.Println(&quot;hi &lt;there&gt;&quot;)"`) {
		t.Errorf("copy button should carry the escaped code text: %s", html)
	}
	if strings.Contains(html, "<p") {
		t.Error("code block should not be wrapped in a paragraph")
	}
}

func TestRender_CodeBlockDefaultLanguage(t *testing.T) {
	html := Render("```\nplain\n```")

	if !strings.Contains(html, `<code class="language-text">`) {
		t.Errorf("untagged fence should default to text: %s", html)
	}
}

func TestRender_CodeSpansInsideFenceNotReprocessed(t *testing.T) {
	html := Render("```\nuse `backticks` here\n```")

	if strings.Contains(html, "<code class=\"bg-gray-100") {
		t.Error("inline code pass must not run inside a fenced block")
	}
	if !strings.Contains(html, "use `backticks` here") {
		t.Errorf("fenced content should be verbatim: %s", html)
	}
}

func TestRender_InlineCode(t *testing.T) {
	html := Render("Use the `go build` command.")

	if !strings.Contains(html, ">go build</code>") {
		t.Errorf("missing inline code: %s", html)
	}
}

func TestRender_BoldBeforeItalic(t *testing.T) {
	html := Render("**x** *y*")

	if !strings.Contains(html, "<strong class=\"font-semibold text-gray-900 dark:text-white\">x</strong>") {
		t.Errorf("missing bold x: %s", html)
	}
	if !strings.Contains(html, ">y</em>") {
		t.Errorf("missing italic y: %s", html)
	}
	if strings.Contains(html, "<em class=\"italic text-gray-800 dark:text-gray-200\">*") {
		t.Errorf("italic swallowed a bold marker: %s", html)
	}
}

func TestRender_Links(t *testing.T) {
	html := Render("See [the docs](https://example.com/docs).")

	if !strings.Contains(html, `href="https://example.com/docs"`) {
		t.Error("missing link href")
	}
	if !strings.Contains(html, `target="_blank" rel="noopener noreferrer"`) {
		t.Error("links must open in a new context with safe-link attributes")
	}
	if !strings.Contains(html, ">the docs</a>") {
		t.Error("missing link text")
	}
}

func TestRender_Blockquote(t *testing.T) {
	html := Render("> wise words")

	if !strings.Contains(html, "<blockquote") || !strings.Contains(html, ">wise words</blockquote>") {
		t.Errorf("missing blockquote: %s", html)
	}
}

func TestRender_HorizontalRule(t *testing.T) {
	html := Render("above\n\n---\n\nbelow")

	if !strings.Contains(html, "<hr ") {
		t.Errorf("missing rule: %s", html)
	}
}

func TestRender_ListBoundaries(t *testing.T) {
	html := Render("- a\n- b\ntext\n1. c")

	ulCount := strings.Count(html, "<ul ")
	olCount := strings.Count(html, "<ol ")
	if ulCount != 1 || olCount != 1 {
		t.Fatalf("want one ul and one ol, got %d/%d: %s", ulCount, olCount, html)
	}

	ulEnd := strings.Index(html, "</ul>")
	pStart := strings.Index(html, "<p ")
	olStart := strings.Index(html, "<ol ")
	if !(ulEnd < pStart && pStart < olStart) {
		t.Errorf("blocks out of order: %s", html)
	}
	if !strings.Contains(html, ">text</p>") {
		t.Errorf("interleaved line should become its own paragraph: %s", html)
	}
	if !strings.Contains(html, ">a</li>") || !strings.Contains(html, ">b</li>") || !strings.Contains(html, ">c</li>") {
		t.Errorf("missing list items: %s", html)
	}
}

func TestRender_ListTypeChangeClosesList(t *testing.T) {
	html := Render("- a\n1. b\n- c")

	if strings.Count(html, "<ul ") != 2 || strings.Count(html, "<ol ") != 1 {
		t.Errorf("type change should close the open list: %s", html)
	}
}

func TestRender_ListMarkerVariants(t *testing.T) {
	html := Render("- a\n* b\n+ c")

	if strings.Count(html, "<ul ") != 1 {
		t.Errorf("-, * and + runs should merge into one list: %s", html)
	}
	if strings.Count(html, "<li ") != 3 {
		t.Errorf("want 3 items: %s", html)
	}
}

func TestRender_ParagraphWrapping(t *testing.T) {
	html := Render("first block\n\n\nsecond block")

	if strings.Count(html, "<p ") != 2 {
		t.Errorf("want two paragraphs, empty blocks dropped: %s", html)
	}
}

func TestRender_BlockElementsNotWrapped(t *testing.T) {
	html := Render("# Title\n\n> quote\n\n---\n\n- item")

	if strings.Contains(html, "<p ") {
		t.Errorf("block-level output must not be wrapped in paragraphs: %s", html)
	}
}

func TestReadTime(t *testing.T) {
	if got := ReadTime(strings.Repeat("word ", 200)); got != "1 min read" {
		t.Errorf("200 words = %q, want 1 min", got)
	}
	if got := ReadTime(strings.Repeat("word ", 201)); got != "2 min read" {
		t.Errorf("201 words = %q, want 2 min", got)
	}
	if got := ReadTime(""); got != "1 min read" {
		t.Errorf("empty body = %q, want 1 min floor", got)
	}
}
