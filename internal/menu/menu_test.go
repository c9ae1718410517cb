// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("chapter_%02d", i)
	}
	return out
}

func TestBuild_PageCounts(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		pageSize  int
		wantPages int
	}{
		{name: "empty list", n: 0, pageSize: 20, wantPages: 1},
		{name: "single label", n: 1, pageSize: 20, wantPages: 1},
		{name: "exactly one page", n: 20, pageSize: 20, wantPages: 1},
		{name: "one over", n: 21, pageSize: 20, wantPages: 2 + 1},
		{name: "even split", n: 40, pageSize: 10, wantPages: 4 + 1},
		{name: "page size one", n: 3, pageSize: 1, wantPages: 3 + 1},
		{name: "zero page size uses default", n: 20, pageSize: 0, wantPages: 1},
		{name: "negative page size uses default", n: 21, pageSize: -5, wantPages: 2 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Build(makeLabels(tt.n), "main", "", tt.pageSize)
			assert.Len(t, tree.Pages, tt.wantPages)
			assert.Equal(t, "main", tree.Top().Label)
		})
	}
}

func TestBuild_EveryLabelOnExactlyOneLeaf(t *testing.T) {
	for _, n := range []int{21, 45, 99, 100, 401, 1000} {
		for _, p := range []int{1, 3, 20, 50} {
			if n <= p {
				continue
			}
			labels := makeLabels(n)
			tree := Build(labels, "root", "", p)

			wantLeaves := (n + p - 1) / p
			require.Len(t, tree.Leaves(), wantLeaves, "n=%d p=%d", n, p)

			var seen []string
			for _, leaf := range tree.Leaves() {
				assert.LessOrEqual(t, len(leaf.Entries), p)
				assert.Equal(t, "root", leaf.Back)
				seen = append(seen, leaf.Entries...)
			}
			assert.Equal(t, labels, seen, "n=%d p=%d", n, p)
		}
	}
}

func TestBuild_FortyFiveLabels(t *testing.T) {
	tree := Build(makeLabels(45), "main", "", 20)

	require.Len(t, tree.Pages, 4)
	leaves := tree.Leaves()
	assert.Len(t, leaves[0].Entries, 20)
	assert.Len(t, leaves[1].Entries, 20)
	assert.Len(t, leaves[2].Entries, 5)
	for i, leaf := range leaves {
		assert.Equal(t, fmt.Sprintf("main_%d", i), leaf.Label)
		assert.Equal(t, "main", leaf.Back)
	}

	top := tree.Top()
	assert.Equal(t, "main", top.Label)
	assert.Empty(t, top.Back)
	assert.Equal(t, []string{"main_0", "main_1", "main_2"}, top.Entries)
}

func TestBuild_BackLinks(t *testing.T) {
	t.Run("single page carries caller back link", func(t *testing.T) {
		tree := Build(makeLabels(3), "index_a", "main_index", 20)
		require.Len(t, tree.Pages, 1)
		assert.Equal(t, "main_index", tree.Top().Back)
		assert.Empty(t, tree.Leaves())
	})

	t.Run("paged top carries caller back link", func(t *testing.T) {
		tree := Build(makeLabels(5), "index_a", "main_index", 2)
		assert.Equal(t, "main_index", tree.Top().Back)
		for _, leaf := range tree.Leaves() {
			assert.Equal(t, "index_a", leaf.Back)
		}
	})

	t.Run("empty list with back link is not a placeholder", func(t *testing.T) {
		tree := Build(nil, "index_a", "main_index", 20)
		assert.False(t, tree.Top().Placeholder())
	})

	t.Run("empty list without back link is a placeholder", func(t *testing.T) {
		tree := Build(nil, "main", "", 20)
		assert.True(t, tree.Top().Placeholder())
	})
}

func TestBuild_TopPageIsNotCapped(t *testing.T) {
	tree := Build(makeLabels(10), "main", "", 3)
	// 4 leaves on a top page with room for 3.
	assert.Len(t, tree.Top().Entries, 4)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	root, err := Write(&buf, []string{"a", "b", "c"}, "main", "", 2)
	require.NoError(t, err)
	assert.Equal(t, "main", root)

	want := "label main_0:\n\n    menu:\n" +
		"        \"< BACK\":\n            jump main\n\n" +
		"        \"a\":\n            jump a\n\n" +
		"        \"b\":\n            jump b\n\n" +
		"label main_1:\n\n    menu:\n" +
		"        \"< BACK\":\n            jump main\n\n" +
		"        \"c\":\n            jump c\n\n" +
		"label main:\n\n    menu:\n" +
		"        \"main_0\":\n            jump main_0\n\n" +
		"        \"main_1\":\n            jump main_1\n\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_Placeholder(t *testing.T) {
	var buf bytes.Buffer
	_, err := Write(&buf, nil, "main", "", 20)
	require.NoError(t, err)
	assert.Equal(t, "label main:\n\n    pass\n", buf.String())
	assert.Equal(t, 1, strings.Count(buf.String(), "label "))
}
