package content_test

import (
	"context"
	"testing"

	"github.com/canopyhq/canopy/pkg/adapters/memory"
	"github.com/canopyhq/canopy/pkg/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNode(t *testing.T) {
	assert.False(t, content.IsNode(nil))
	assert.False(t, content.IsNode("not a node"))
	assert.False(t, content.IsNode((*memory.Node)(nil)), "typed nil is not a node")
	assert.True(t, content.IsNode(memory.New(content.TypePage, "/p")))
}

func TestIsTypeOf(t *testing.T) {
	page := memory.New(content.TypePage, "/p")

	assert.True(t, content.IsTypeOf(page, content.DefaultAcceptTypes()))
	assert.False(t, content.IsTypeOf(page, []string{content.TypeFolder}))
	assert.False(t, content.IsTypeOf(page, nil))
	assert.False(t, content.IsTypeOf(nil, content.DefaultAcceptTypes()))
}

func TestDefaultTypeListsAreFreshCopies(t *testing.T) {
	a := content.DefaultAcceptTypes()
	a[0] = "mutated"
	assert.Equal(t, content.TypePage, content.DefaultAcceptTypes()[0])

	r := content.DefaultRecurseTypes()
	r[0] = "mutated"
	assert.Equal(t, content.TypeSiteRoot, content.DefaultRecurseTypes()[0])
}

func TestCursorOf(t *testing.T) {
	ctx := context.Background()
	a := memory.New(content.TypePage, "/a")
	b := memory.New(content.TypePage, "/b")

	cur := content.CursorOf(a, b)

	require.True(t, cur.HasNext())
	n, err := cur.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/a", n.Path())

	n, err = cur.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/b", n.Path())

	assert.False(t, cur.HasNext())
	_, err = cur.Next(ctx)
	assert.ErrorIs(t, err, content.ErrCursorExhausted)
}

func TestDecodeRecord(t *testing.T) {
	rec, err := content.DecodeRecord(map[string]any{
		"path":     "/products",
		"type":     content.TypeFolder,
		"title":    "Products",
		"children": []string{"/products/p1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/products", rec.Path)
	assert.Equal(t, content.TypeFolder, rec.PrimaryType)
	assert.Equal(t, []string{"/products/p1"}, rec.Children)

	_, err = content.DecodeRecord(map[string]any{"type": content.TypePage})
	assert.ErrorContains(t, err, "missing path")

	_, err = content.DecodeRecord(map[string]any{"path": "/x"})
	assert.ErrorContains(t, err, "missing type")
}
