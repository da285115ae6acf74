// Package renderer turns ledger items into markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/kakeibo"
	md "github.com/nao1215/markdown"
)

// NoItems is printed by List for an empty ledger.
const NoItems = "No items."

// List renders the items as a table of id, label and amount, with a final total row.
func List(items []kakeibo.Item, c kakeibo.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(items) == 0 {
		doc.PlainText(NoItems)
		return doc.String()
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(it.ID), 10),
			cell(it.Label),
			c.Format(it.Amount),
		})
	}
	total := "overflow"
	if sum, err := kakeibo.Total(items); err == nil {
		total = c.Format(sum)
	}
	rows = append(rows, []string{"", "Total", total})
	doc.Table(md.TableSet{
		Header: []string{"ID", "Item", "Money"},
		Rows:   rows,
	})

	return doc.String()
}

// Detail renders every field of a single item.
func Detail(it kakeibo.Item, c kakeibo.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Item %d: %s", it.ID, it.Label))
	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"ID", strconv.FormatUint(uint64(it.ID), 10)},
			{"Item", cell(it.Label)},
			{"Money", c.Format(it.Amount)},
			{"Created", it.CreatedAt.String()},
			{"Updated", it.UpdatedAt.String()},
		},
	})
	if it.Description != "" {
		doc.H3("Description")
		doc.PlainText(paragraphs(it.Description))
	}

	return doc.String()
}

// paragraphs escapes the line prefixes that markdown reads as block syntax
// (headings, quotes, lists, fences, rules), so that s renders as paragraphs.
func paragraphs(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimLeft(line, " \t")
		switch {
		case line == "":
		case strings.ContainsRune(`#>-+*=_~|<`+"`", rune(line[0])):
			line = `\` + line
		default:
			if n := leadingDigits(line); n > 0 && n < len(line) && (line[n] == '.' || line[n] == ')') {
				line = line[:n] + `\` + line[n:]
			}
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// cell escapes the characters that would break a table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
