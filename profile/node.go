// Package profile carries the node-ranking and play-profile machinery
// shared by the arena, valuation and local-driver packages: node
// relevance, the signed Reward scale it induces, and the PlayProfile
// comparison that drives strategy improvement.
package profile

import "fmt"

// NodeID is the coordinate space every graph-level algorithm operates
// over. The arena package pins its four sentinel positions to the first
// four values and extends this type with its own named constants.
type NodeID int

func (n NodeID) String() string { return fmt.Sprintf("n%d", int(n)) }
