// Package webapi holds the HTML plumbing shared by the scraping sources.
package webapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// FetchDocument GETs rawURL and parses the response as HTML, decoding it from
// the charset announced by the server or the document itself.
func FetchDocument(ctx context.Context, client *http.Client, rawURL string) (*html.Node, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.NewSourceError("failed to build request", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := client.Do(req)
	if err != nil {
		return nil, apperrors.NewSourceError("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewSourceError(fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, req.URL.Host), nil)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, apperrors.NewSourceError("unsupported document encoding", err)
	}
	doc, err := html.Parse(body)
	if err != nil {
		return nil, apperrors.NewSourceError("failed to parse document", err)
	}

	logger.Debug("Fetched document", "url", rawURL, "status", resp.StatusCode)
	return doc, nil
}

// FindTable returns the first <table> whose class attribute equals class
// (compared word by word), or nil.
func FindTable(doc *html.Node, class string) *html.Node {
	want := strings.Fields(class)
	var found *html.Node
	walk(doc, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Table && sameWords(attr(n, "class"), want) {
			found = n
			return false
		}
		return true
	})
	return found
}

// BodyRows returns the text of every <td> cell of each body row of table.
// Rows without data cells (header rows) are skipped.
func BodyRows(table *html.Node) [][]string {
	var rows [][]string
	walk(table, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		switch n.DataAtom {
		case atom.Thead, atom.Tfoot:
			return false
		case atom.Table:
			return n == table
		case atom.Tr:
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && c.DataAtom == atom.Td {
					cells = append(cells, CleanText(text(c)))
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
			return false
		}
		return true
	})
	return rows
}

// CleanText trims s and collapses inner whitespace (non-breaking spaces included).
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// walk visits n and its descendants depth first; visit returns false to skip
// a node's children.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func text(n *html.Node) string {
	var b strings.Builder
	walk(n, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func sameWords(value string, want []string) bool {
	got := strings.Fields(value)
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
