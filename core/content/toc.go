// ABOUTME: Table-of-contents extraction from rendered post HTML
// ABOUTME: Assigns anchor ids to h2-h4 headings and returns the entry list

package content

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lolimmlost/appahouse-portfolio/core/domain"
)

// ExtractTOC assigns anchor ids to the h2-h4 headings in an HTML fragment
// and returns the updated fragment with the table-of-contents entries.
// A fragment without headings comes back unchanged with an empty TOC.
func ExtractTOC(html string) (string, []domain.TOCEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html, nil, err
	}

	var entries []domain.TOCEntry
	doc.Find("h2, h3, h4").Each(func(i int, sel *goquery.Selection) {
		id := fmt.Sprintf("heading-%d", i)
		sel.SetAttr("id", id)

		level, _ := strconv.Atoi(strings.TrimPrefix(goquery.NodeName(sel), "h"))
		entries = append(entries, domain.TOCEntry{
			ID:    id,
			Level: level,
			Text:  sel.Text(),
		})
	})

	if len(entries) == 0 {
		return html, nil, nil
	}

	updated, err := doc.Find("body").Html()
	if err != nil {
		return html, nil, err
	}
	return updated, entries, nil
}
