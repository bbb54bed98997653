// Package dstruct provides classic generic data structures built from
// scratch: a growable array with a load-factor growth policy, and, in
// subpackages, linked lists, a chained hash table, and a directed
// graph.
package dstruct

import "errors"

// ErrIndexOutOfRange is returned by positional operations when the
// index is outside the valid range for the operation.
var ErrIndexOutOfRange = errors.New("dstruct: index out of range")

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
