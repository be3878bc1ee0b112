// ABOUTME: Markdown renderer for the blog's restricted dialect
// ABOUTME: Single-pass block scanner plus per-block inline formatting

// Package markdown renders the blog's restricted Markdown dialect to the
// styled HTML fragments the site's pages consume.
//
// The dialect covers headings (# through ####), fenced code blocks with an
// optional language tag, inline code, bold, italic, links, blockquotes,
// horizontal rules, flat ordered/unordered lists, and paragraphs. Nested
// lists and multi-paragraph list items are unsupported: an indented
// continuation line closes the open list and starts a paragraph.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

type blockKind int

const (
	blockHeading blockKind = iota
	blockCode
	blockQuote
	blockRule
	blockList
	blockParagraph
)

// block is one unit of the intermediate representation produced by scan.
type block struct {
	kind    blockKind
	level   int      // heading level 1-4
	text    string   // heading, quote, or paragraph text
	lang    string   // fenced code language tag
	code    string   // raw fenced code content
	ordered bool     // list type
	items   []string // list items
}

// Render converts Markdown source to an HTML fragment.
func Render(src string) string {
	blocks := scan(src)

	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, renderBlock(b))
	}
	return strings.Join(parts, "\n\n")
}

// ReadTime estimates reading time for a Markdown body at 200 words per
// minute, formatted as "<n> min read". Never less than one minute.
func ReadTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

var (
	headingPattern  = regexp.MustCompile(`^(#{1,4}) (.*)$`)
	orderedPattern  = regexp.MustCompile(`^\d+\. `)
	inlineCodeRe    = regexp.MustCompile("`([^`]*)`")
	boldRe          = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe        = regexp.MustCompile(`\*(.*?)\*`)
	linkRe          = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// scan walks the source line by line and produces the block list.
// List runs close on a list-type change or any non-list line; paragraph
// runs close on any blank or non-paragraph line.
func scan(src string) []block {
	lines := strings.Split(src, "\n")
	var blocks []block
	var list *block
	var para []string

	closeList := func() {
		if list != nil {
			blocks = append(blocks, *list)
			list = nil
		}
	}
	closePara := func() {
		if len(para) > 0 {
			blocks = append(blocks, block{kind: blockParagraph, text: strings.Join(para, "\n")})
			para = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			closeList()
			closePara()

		case strings.HasPrefix(line, "```"):
			closeList()
			closePara()
			lang := strings.TrimSpace(strings.TrimPrefix(line, "```"))
			var code []string
			for i++; i < len(lines); i++ {
				if strings.HasPrefix(lines[i], "```") {
					break
				}
				code = append(code, lines[i])
			}
			blocks = append(blocks, block{
				kind: blockCode,
				lang: lang,
				code: strings.TrimSpace(strings.Join(code, "\n")),
			})

		case headingPattern.MatchString(line):
			closeList()
			closePara()
			m := headingPattern.FindStringSubmatch(line)
			blocks = append(blocks, block{kind: blockHeading, level: len(m[1]), text: m[2]})

		case line == "---":
			closeList()
			closePara()
			blocks = append(blocks, block{kind: blockRule})

		case strings.HasPrefix(line, "> "):
			closeList()
			closePara()
			blocks = append(blocks, block{kind: blockQuote, text: strings.TrimPrefix(line, "> ")})

		case isUnorderedItem(trimmed):
			closePara()
			if list != nil && list.ordered {
				closeList()
			}
			if list == nil {
				list = &block{kind: blockList}
			}
			list.items = append(list.items, trimmed[2:])

		case orderedPattern.MatchString(trimmed):
			closePara()
			if list != nil && !list.ordered {
				closeList()
			}
			if list == nil {
				list = &block{kind: blockList, ordered: true}
			}
			marker := orderedPattern.FindString(trimmed)
			list.items = append(list.items, trimmed[len(marker):])

		default:
			closeList()
			para = append(para, line)
		}
	}

	closeList()
	closePara()
	return blocks
}

func isUnorderedItem(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") ||
		strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "+ ")
}

var headingClasses = map[int]string{
	1: "text-4xl font-bold mt-12 mb-6 text-gray-900 dark:text-white",
	2: "text-3xl font-semibold mt-10 mb-5 text-gray-900 dark:text-white",
	3: "text-2xl font-semibold mt-8 mb-4 text-gray-900 dark:text-white",
	4: "text-xl font-semibold mt-6 mb-3 text-gray-900 dark:text-white",
}

func renderBlock(b block) string {
	switch b.kind {
	case blockHeading:
		return fmt.Sprintf(`<h%d class="%s">%s</h%d>`, b.level, headingClasses[b.level], inline(b.text), b.level)

	case blockCode:
		return renderCodeBlock(b)

	case blockQuote:
		return `<blockquote class="border-l-4 border-primary-500 pl-4 my-4 italic text-gray-700 dark:text-gray-300">` +
			inline(b.text) + `</blockquote>`

	case blockRule:
		return `<hr class="my-8 border-gray-200 dark:border-gray-700">`

	case blockList:
		return renderList(b)

	default:
		return `<p class="my-4 text-gray-700 dark:text-gray-300 leading-relaxed">` +
			inline(strings.TrimSpace(b.text)) + `</p>`
	}
}

// renderCodeBlock emits the code block structure with the copy-button
// affordance keyed to the escaped code text.
func renderCodeBlock(b block) string {
	lang := b.lang
	if lang == "" {
		lang = "text"
	}
	escaped := escapeHTML(b.code)
	attr := strings.ReplaceAll(escaped, `"`, "&quot;")

	var sb strings.Builder
	sb.WriteString(`<div class="relative my-6">` + "\n")
	sb.WriteString(`  <div class="flex items-center justify-between px-4 py-2 bg-gray-800 text-gray-200 text-sm font-mono rounded-t-lg">` + "\n")
	sb.WriteString(`    <span class="text-xs">` + lang + `</span>` + "\n")
	sb.WriteString(`    <button class="copy-code-btn text-xs px-2 py-1 bg-gray-700 hover:bg-gray-600 rounded transition-colors" data-code="` + attr + `">Copy</button>` + "\n")
	sb.WriteString(`  </div>` + "\n")
	sb.WriteString(`  <pre class="bg-gray-900 text-gray-100 p-4 rounded-b-lg overflow-x-auto"><code class="language-` + lang + `">` + escaped + `</code></pre>` + "\n")
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderList(b block) string {
	tag := "ul"
	class := "list-disc list-inside my-4 space-y-2"
	if b.ordered {
		tag = "ol"
		class = "list-decimal list-inside my-4 space-y-2"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<%s class="%s">`, tag, class)
	for _, item := range b.items {
		sb.WriteString("\n" + `<li class="text-gray-700 dark:text-gray-300">` + inline(item) + `</li>`)
	}
	fmt.Fprintf(&sb, "\n</%s>", tag)
	return sb.String()
}

// inline applies the inline formatting passes. Bold runs before italic so
// the single-asterisk pattern cannot match inside bold markers.
func inline(text string) string {
	text = inlineCodeRe.ReplaceAllString(text,
		`<code class="bg-gray-100 dark:bg-gray-800 text-gray-800 dark:text-gray-200 px-1 py-0.5 rounded text-sm font-mono">$1</code>`)
	text = boldRe.ReplaceAllString(text,
		`<strong class="font-semibold text-gray-900 dark:text-white">$1</strong>`)
	text = italicRe.ReplaceAllString(text,
		`<em class="italic text-gray-800 dark:text-gray-200">$1</em>`)
	text = linkRe.ReplaceAllString(text,
		`<a href="$2" class="text-primary-600 hover:text-primary-500 dark:text-primary-400 dark:hover:text-primary-300 underline" target="_blank" rel="noopener noreferrer">$1</a>`)
	return text
}

// escapeHTML escapes the characters the embedding context requires.
// Quotes are left alone here; attribute embedding escapes them separately.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
