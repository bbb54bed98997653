// Package graph provides a directed graph backed by per-node
// adjacency arrays.
package graph

import (
	"errors"
	"iter"

	"dstruct.dev/dstruct"
	"dstruct.dev/dstruct/dict"
)

// Sentinel errors for graph operations.
var (
	// ErrUnknownNode indicates that a referenced node id is not in
	// the graph.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrUnknownEdge indicates that a referenced edge is not in the
	// graph.
	ErrUnknownEdge = errors.New("graph: unknown edge")
)

// A Graph is a directed graph. Nodes are identified by the dense ids
// handed out by AddNode, and each node keeps its outgoing edges in a
// growable adjacency array, in insertion order. At most one edge may
// exist per ordered node pair.
//
// The zero value is an empty Graph ready to use. A Graph is not safe
// for concurrent use.
type Graph struct {
	nodes dict.Dict[int, *node]
	edges int
	next  int
}

type node struct {
	out dstruct.Array[int]
}

// AddNode adds a node with no edges and returns its id. Ids are
// dense, starting at 0.
func (g *Graph) AddNode() int {
	id := g.next
	g.next++
	g.nodes.Put(id, new(node))
	return id
}

// AddEdge adds the directed edge from -> to. Adding an edge that
// already exists is a no-op. It returns ErrUnknownNode if either end
// is not in the graph.
func (g *Graph) AddEdge(from, to int) error {
	src, ok := g.nodes.Get(from)
	if !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes.Get(to); !ok {
		return ErrUnknownNode
	}

	if src.out.Contains(to) {
		return nil
	}
	src.out.Add(to)
	g.edges++
	return nil
}

// RemoveEdge removes the directed edge from -> to. It returns
// ErrUnknownNode if either end is not in the graph, and
// ErrUnknownEdge if both ends exist but the edge does not.
func (g *Graph) RemoveEdge(from, to int) error {
	src, ok := g.nodes.Get(from)
	if !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes.Get(to); !ok {
		return ErrUnknownNode
	}

	if !src.out.RemoveValue(to) {
		return ErrUnknownEdge
	}
	g.edges--
	return nil
}

// HasEdge reports whether the directed edge from -> to is in the
// graph.
func (g *Graph) HasEdge(from, to int) bool {
	src, ok := g.nodes.Get(from)
	return ok && src.out.Contains(to)
}

// HasNode reports whether the node id is in the graph.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes.Get(id)
	return ok
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int { return g.nodes.Len() }

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int { return g.edges }

// Adjacent returns an iterator over the ids that id has an edge to,
// in edge insertion order. An unknown id yields nothing.
func (g *Graph) Adjacent(id int) iter.Seq[int] {
	return func(yield func(int) bool) {
		src, ok := g.nodes.Get(id)
		if !ok {
			return
		}
		for to := range src.out.Values() {
			if !yield(to) {
				return
			}
		}
	}
}
