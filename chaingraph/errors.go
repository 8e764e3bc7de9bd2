package chaingraph

import "errors"

// Sentinel errors for the chaingraph package.
var (
	// ErrNodeNotFound indicates an operation referenced an itemset that was
	// never added to the graph.
	ErrNodeNotFound = errors.New("chaingraph: node not found")

	// ErrDuplicateNode indicates the same itemset was added twice.
	ErrDuplicateNode = errors.New("chaingraph: duplicate node")
)
