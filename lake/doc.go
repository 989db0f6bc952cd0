// Package lake implements spec.md §4.5-§4.7: grouping the stream-tree
// forest into lakes, finding the cheapest saddle between neighboring
// lakes, choosing a spanning tree of those saddles rooted at the sea,
// and attaching the chosen saddles back into the stream tree so every
// lake has a drainage route to the ocean.
//
// The lake graph reuses rpgraph.Graph/Node/DirectedEdge rather than a
// dedicated type: a lake is a node keyed by its sink's coordinate, and
// PassHeight/SaddleFrom/SaddleTo/InsertOrder are exactly the fields
// DirectedEdge already carries for this purpose.
package lake
