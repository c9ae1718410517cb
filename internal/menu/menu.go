// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package menu partitions an ordered list of labels into jump-menu pages.
//
// A list that fits in one page becomes a single page filed under the root
// label. A longer list is split into leaf pages labeled root_0, root_1, ...
// that each link back to root, followed by a top page under root that lists
// the leaf pages. The tree is never deeper than two levels, so more than
// pageSize² labels yield a top page longer than pageSize.
package menu

import (
	"fmt"
	"io"

	"github.com/pdiddy/rpy-tools/internal/rpy"
)

// DefaultPageSize is used when the caller passes a non-positive page size.
const DefaultPageSize = 20

// Page is one rendered menu block.
type Page struct {
	Label   string
	Back    string
	Entries []string
}

// Placeholder reports whether the page has nothing to jump to.
func (p Page) Placeholder() bool {
	return p.Back == "" && len(p.Entries) == 0
}

// Tree is the ordered list of pages for one menu. Leaf pages come first and
// the page filed under Root is last.
type Tree struct {
	Root  string
	Pages []Page
}

// Top returns the page filed under the root label.
func (t Tree) Top() Page {
	return t.Pages[len(t.Pages)-1]
}

// Leaves returns the sub-pages. It is empty when the tree is a single page.
func (t Tree) Leaves() []Page {
	return t.Pages[:len(t.Pages)-1]
}

// Build lays out labels as a menu tree filed under root. back is the label
// the top page links to for returning to the caller, or "" for none.
func Build(labels []string, root, back string, pageSize int) Tree {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if len(labels) <= pageSize {
		return Tree{
			Root:  root,
			Pages: []Page{{Label: root, Back: back, Entries: labels}},
		}
	}

	chunks := (len(labels) + pageSize - 1) / pageSize
	pages := make([]Page, 0, chunks+1)
	subLabels := make([]string, 0, chunks)

	for i := 0; i < chunks; i++ {
		start := i * pageSize
		end := min(start+pageSize, len(labels))
		sub := fmt.Sprintf("%s_%d", root, i)
		subLabels = append(subLabels, sub)
		pages = append(pages, Page{Label: sub, Back: root, Entries: labels[start:end]})
	}

	pages = append(pages, Page{Label: root, Back: back, Entries: subLabels})
	return Tree{Root: root, Pages: pages}
}

// Render writes every page of t to sw in order.
func Render(sw *rpy.Writer, t Tree) {
	for _, p := range t.Pages {
		sw.Menu(p.Label, p.Back, p.Entries)
	}
}

// Write builds the menu for labels and writes it to w. It returns the root
// label so callers can link to the menu.
func Write(w io.Writer, labels []string, root, back string, pageSize int) (string, error) {
	sw := rpy.NewWriter(w)
	Render(sw, Build(labels, root, back, pageSize))
	if err := sw.Flush(); err != nil {
		return "", fmt.Errorf("writing menu %s: %w", root, err)
	}
	return root, nil
}
