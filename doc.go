/*
Package canopy is a depth-first traversal engine for hierarchical content
repositories (sites, pages, folders, articles).

A traversal is assembled from two orthogonal decisions resolved per node: an
"accept" decision that gates the user callback, and a "recurse" decision that
gates descent into children. Each decision is driven either by a list of
primary type tags or by a custom predicate. Hard limits on depth and accepted
node count, an optional deny callback, and cooperative early termination
round out the policy.

The engine is representation-agnostic: anything implementing content.Node can
be walked, whether it is an in-memory tree, a flattened record fetched over
HTTP, or a record cached in Redis (see pkg/adapters).

# Usage

Configure a Builder, freeze it into a Traversal, then walk:

	b := canopy.New().
		SetCallback(func(ctx context.Context, n content.Node, data any) error {
			fmt.Println(n.Path())
			return nil
		}).
		SetMaxDepth(3)

	walk, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	if err := walk.Traverse(ctx, root, nil); err != nil {
		log.Fatal(err)
	}

By default containers (site-root, page, archive, folder) are descended into
and content nodes (page, article) are accepted. Type lists and predicates are
frozen at Build time: reconfiguring the builder never affects a traversal
already built from it.
*/
package canopy
