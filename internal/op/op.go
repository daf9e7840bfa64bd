// Package op provides typed constructor sugar over graph.Operation, so
// callers building Computed nodes don't have to hand-write the `any`
// type assertions graph's Operation interface deals in.
package op

import "github.com/wavecrate/reactive/internal/graph"

// Identity reads dep's value unchanged.
func Identity(dep graph.ValueNode) graph.Operation {
	return graph.NewLeafOperation(dep, nil)
}

// Map reads dep's value as T and transforms it with fn.
func Map[T any](dep graph.ValueNode, fn func(T) any) graph.Operation {
	return graph.NewLeafOperation(dep, func(v any) any { return fn(v.(T)) })
}

// Fuse2 combines two child operations under fn without allocating an
// intermediate Computed node for either: both children's dependencies
// fold into the resulting operation's flat dependency list (§9's
// "stealing" of r-value temporaries).
func Fuse2[A, B any](a, b graph.Operation, fn func(A, B) any) graph.Operation {
	return graph.NewFusedOperation(func(args []any) any {
		return fn(args[0].(A), args[1].(B))
	}, a, b)
}

// Fuse3 is Fuse2 for three children.
func Fuse3[A, B, C any](a, b, c graph.Operation, fn func(A, B, C) any) graph.Operation {
	return graph.NewFusedOperation(func(args []any) any {
		return fn(args[0].(A), args[1].(B), args[2].(C))
	}, a, b, c)
}

// FuseN combines an arbitrary number of homogeneously-typed children.
func FuseN[T any](fn func(args []T) any, children ...graph.Operation) graph.Operation {
	return graph.NewFusedOperation(func(args []any) any {
		typed := make([]T, len(args))
		for i, a := range args {
			typed[i] = a.(T)
		}
		return fn(typed)
	}, children...)
}
