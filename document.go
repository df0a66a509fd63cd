package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExtractFragments returns, in document order, the text and comment nodes of
// the page body matching the currency pattern
func ExtractFragments(page string, currency *regexp.Regexp) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var fragments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if (n.Type == html.TextNode || n.Type == html.CommentNode) && currency.MatchString(n.Data) {
			fragments = append(fragments, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, body := range doc.Find("body").Nodes {
		walk(body)
	}
	return fragments, nil
}
