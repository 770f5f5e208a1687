/*
Package content defines the node capability contract consumed by the
traversal engine, keeping the engine free of any concrete tree
representation.

# Key Contracts

  - Node: the minimal traversable value (path, primary type, children).
  - Cursor: ordered, single-pass iteration over a node's children.
  - Record: the flattened, transport-friendly node representation shared by
    the rest and redis adapters.
  - IsNode / IsTypeOf: identity and type-classification helpers backing the
    engine's default decisions.
*/
package content
