package file_test

import (
	"context"
	"testing"

	"github.com/canopyhq/canopy"
	"github.com/canopyhq/canopy/pkg/adapters/file"
	"github.com/canopyhq/canopy/pkg/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	src, err := file.Load("testdata/tree.yaml")
	require.NoError(t, err)

	root := src.Root()
	assert.Equal(t, "/", root.Path())
	assert.Equal(t, content.TypeSiteRoot, root.PrimaryType())
}

func TestSource_Record(t *testing.T) {
	src, err := file.Load("testdata/tree.yaml")
	require.NoError(t, err)
	ctx := context.Background()

	rec, err := src.Record(ctx, "/blog/first-post")
	require.NoError(t, err)
	assert.Equal(t, content.TypeArticle, rec.PrimaryType)
	assert.Equal(t, "First post", rec.Title)
	assert.Equal(t, "sam", rec.Properties["author"])

	about, err := src.Record(ctx, "/about")
	require.NoError(t, err)
	assert.Contains(t, about.Content, "# About")

	_, err = src.Record(ctx, "/missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestSource_RecordsIndexWholeTree(t *testing.T) {
	src, err := file.Load("testdata/tree.yaml")
	require.NoError(t, err)

	records := src.Records()
	assert.Len(t, records, 4)
	assert.Equal(t, []string{"/about", "/blog"}, records["/"].Children)
}

func TestTraverseLoadedTree(t *testing.T) {
	src, err := file.Load("testdata/tree.yaml")
	require.NoError(t, err)

	var accepted []string
	walk, err := canopy.New().
		SetCallback(func(_ context.Context, n content.Node, _ any) error {
			accepted = append(accepted, n.Path())
			return nil
		}).
		Build()
	require.NoError(t, err)

	require.NoError(t, walk.Traverse(context.Background(), src.Root(), nil))
	assert.Equal(t, []string{"/about", "/blog/first-post"}, accepted)
}

func TestParse_Errors(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := file.Parse([]byte("\t: not yaml"))
		assert.Error(t, err)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := file.Parse([]byte("title: no type here\n"))
		assert.ErrorContains(t, err, "missing type")
	})

	t.Run("child missing name", func(t *testing.T) {
		doc := `
type: site-root
children:
  - type: page
`
		_, err := file.Parse([]byte(doc))
		assert.ErrorContains(t, err, "missing name")
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := file.Load("testdata/nope.yaml")
	assert.Error(t, err)
}
