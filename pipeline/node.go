package pipeline

import "fmt"

// Node is a junction or endpoint in a pipeline network. Nodes carry no
// behavior; they exist for topology bookkeeping and schematic rendering.
type Node struct {
	Name      string
	Elevation float64 // meters
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%s, elevation=%g m)", n.Name, n.Elevation)
}
