package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canopyhq/canopy"
	"github.com/canopyhq/canopy/internal/logging"
	"github.com/canopyhq/canopy/pkg/adapters/rest"
	"github.com/canopyhq/canopy/pkg/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapSource is a trivial in-test record source.
type mapSource map[string]*content.Record

func (m mapSource) Record(_ context.Context, path string) (*content.Record, error) {
	rec, ok := m[path]
	if !ok {
		return nil, content.ErrNotFound
	}
	return rec, nil
}

func testSource() mapSource {
	return mapSource{
		"/": {
			Path:        "/",
			PrimaryType: content.TypeSiteRoot,
			Children:    []string{"/p1", "/f1"},
		},
		"/p1": {
			Path:        "/p1",
			PrimaryType: content.TypePage,
			Title:       "First page",
		},
		"/f1": {
			Path:        "/f1",
			PrimaryType: content.TypeFolder,
			Children:    []string{"/f1/a1"},
		},
		"/f1/a1": {
			Path:        "/f1/a1",
			PrimaryType: content.TypeArticle,
		},
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *rest.Client) {
	t.Helper()
	srv := httptest.NewServer(rest.NewHandler(testSource(), logging.NewNop()))
	t.Cleanup(srv.Close)
	return srv, rest.NewClient(srv.URL)
}

func TestClient_Node(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	node, err := client.Node(ctx, "/p1")
	require.NoError(t, err)
	assert.Equal(t, "/p1", node.Path())
	assert.Equal(t, content.TypePage, node.PrimaryType())
}

func TestClient_NodeNotFound(t *testing.T) {
	_, client := newTestServer(t)

	_, err := client.Node(context.Background(), "/missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestClient_LazyChildren(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	root, err := client.Node(ctx, "/")
	require.NoError(t, err)

	cur, err := root.Children(ctx)
	require.NoError(t, err)

	var paths []string
	for cur.HasNext() {
		child, err := cur.Next(ctx)
		require.NoError(t, err)
		paths = append(paths, child.Path())
	}
	assert.Equal(t, []string{"/p1", "/f1"}, paths)
}

func TestTraverseOverHTTP(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	root, err := client.Node(ctx, "/")
	require.NoError(t, err)

	var accepted []string
	walk, err := canopy.New().
		SetCallback(func(_ context.Context, n content.Node, _ any) error {
			accepted = append(accepted, n.Path())
			return nil
		}).
		Build()
	require.NoError(t, err)

	require.NoError(t, walk.Traverse(ctx, root, nil))
	assert.Equal(t, []string{"/p1", "/f1/a1"}, accepted)
}

func TestClient_WithHTTPClient(t *testing.T) {
	srv, _ := newTestServer(t)

	client := rest.NewClient(srv.URL, rest.WithHTTPClient(srv.Client()))
	node, err := client.Node(context.Background(), "/f1/a1")
	require.NoError(t, err)
	assert.Equal(t, content.TypeArticle, node.PrimaryType())
}

func TestHandler_InternalError(t *testing.T) {
	broken := brokenSource{}
	srv := httptest.NewServer(rest.NewHandler(broken, logging.NewNop()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nodes/whatever")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

type brokenSource struct{}

func (brokenSource) Record(_ context.Context, _ string) (*content.Record, error) {
	return nil, assert.AnError
}
