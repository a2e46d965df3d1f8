package pipeline

import (
	"fmt"
	"strings"

	"github.com/procflow/procflow/units"
)

// ConnectionType says how a network block composes its elements.
type ConnectionType string

const (
	// Series: elements are traversed sequentially by the full flow and
	// their pressure effects accumulate.
	Series ConnectionType = "series"
	// Parallel: each direct child receives an apportioned share of the
	// incoming flow and is evaluated independently.
	Parallel ConnectionType = "parallel"
)

// Element is the closed set of things a network block can contain: Pipe,
// Fitting, Pump, Equipment, Vessel, or a nested Network. Each kind brings
// its own evaluation contract; unknown kinds are unrepresentable.
type Element interface {
	Label() string
	evaluate(rc *runContext, q units.VolumetricFlowRate) (units.Pressure, []ElementReport, error)
}

// Network is a named series or parallel block of elements, optionally
// backed by a node-and-edge graph for schematic and validation purposes.
// Blocks nest to arbitrary depth, forming a tree.
type Network struct {
	name           string
	connectionType ConnectionType
	nodes          map[string]*Node
	elements       []Element
}

// NewNetwork creates an empty block. An empty connection type defaults to
// series.
func NewNetwork(name string, connectionType ConnectionType) (*Network, error) {
	switch connectionType {
	case "", Series, Parallel:
	default:
		return nil, fmt.Errorf("%w: connection type must be %q or %q, got %q",
			ErrInvalidValue, Series, Parallel, connectionType)
	}
	if connectionType == "" {
		connectionType = Series
	}
	return &Network{
		name:           name,
		connectionType: connectionType,
		nodes:          make(map[string]*Node),
	}, nil
}

// SeriesNetwork creates a series block pre-populated with elements.
func SeriesNetwork(name string, elements ...Element) *Network {
	n, _ := NewNetwork(name, Series)
	n.elements = append(n.elements, elements...)
	return n
}

// ParallelNetwork creates a parallel block with the given branches.
func ParallelNetwork(name string, branches ...Element) *Network {
	n, _ := NewNetwork(name, Parallel)
	n.elements = append(n.elements, branches...)
	return n
}

// Name returns the block name.
func (n *Network) Name() string { return n.name }

// Label implements Element.
func (n *Network) Label() string { return n.name }

// ConnectionType returns how the block composes its elements.
func (n *Network) ConnectionType() ConnectionType { return n.connectionType }

// Elements returns the block's direct children in declaration order.
func (n *Network) Elements() []Element { return n.elements }

// Add appends elements to the block and returns it for chaining.
func (n *Network) Add(elements ...Element) *Network {
	n.elements = append(n.elements, elements...)
	return n
}

// AddSeries adds a series group. On a series block the elements are
// appended directly; on a parallel block they are wrapped in a child
// series network added as one branch.
func (n *Network) AddSeries(elements ...Element) *Network {
	if n.connectionType == Series {
		n.elements = append(n.elements, elements...)
		return n
	}
	child := SeriesNetwork(fmt.Sprintf("%s-series-%d", n.name, len(n.elements)+1), elements...)
	n.elements = append(n.elements, child)
	return n
}

// AddParallel adds a parallel group. On a parallel block the branches are
// appended directly; on a series block they are wrapped in a child
// parallel network added as one element.
func (n *Network) AddParallel(branches ...Element) *Network {
	if n.connectionType == Parallel {
		n.elements = append(n.elements, branches...)
		return n
	}
	child := ParallelNetwork(fmt.Sprintf("%s-parallel-%d", n.name, len(n.elements)+1), branches...)
	n.elements = append(n.elements, child)
	return n
}

// AddNode registers a junction. Node names are unique within a network.
func (n *Network) AddNode(name string, elevation float64) (*Node, error) {
	if _, exists := n.nodes[name]; exists {
		return nil, fmt.Errorf("%w: node %q already exists in network %q", ErrInvalidValue, name, n.name)
	}
	node := &Node{Name: name, Elevation: elevation}
	n.nodes[name] = node
	return node, nil
}

// Node fetches a registered node by name.
func (n *Network) Node(name string) (*Node, error) {
	node, ok := n.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: node %q does not exist in network %q", ErrMissingInput, name, n.name)
	}
	return node, nil
}

// AddEdge connects a component between two pre-existing nodes and appends
// it to the element list. Two-port components (pipe, pump) take start and
// end nodes; multi-port components (equipment, vessel) attach the nodes
// to their inlet and outlet sets.
func (n *Network) AddEdge(component Element, startNode, endNode string) error {
	start, ok := n.nodes[startNode]
	if !ok {
		return fmt.Errorf("%w: start node %q not found in network %q", ErrMissingInput, startNode, n.name)
	}
	end, ok := n.nodes[endNode]
	if !ok {
		return fmt.Errorf("%w: end node %q not found in network %q", ErrMissingInput, endNode, n.name)
	}
	if startNode == endNode {
		return fmt.Errorf("%w: cannot create a self-loop on node %q", ErrInvalidValue, startNode)
	}

	switch c := component.(type) {
	case *Pipe:
		c.startNode, c.endNode = start, end
	case *Pump:
		c.startNode, c.endNode = start, end
	case *Equipment:
		c.AddInlet(start)
		c.AddOutlet(end)
	case *Vessel:
		c.AddInlet(start)
		c.AddOutlet(end)
	default:
		return fmt.Errorf("%w: %T cannot form an edge", ErrTypeMismatch, component)
	}
	n.elements = append(n.elements, component)
	return nil
}

// AddFitting places a zero-length fitting at a pre-existing node.
func (n *Network) AddFitting(f *Fitting, atNode string) error {
	node, ok := n.nodes[atNode]
	if !ok {
		return fmt.Errorf("%w: node %q must exist in network %q", ErrMissingInput, atNode, n.name)
	}
	f.node = node
	n.elements = append(n.elements, f)
	return nil
}

// AddSubnetwork appends a pre-built child block.
func (n *Network) AddSubnetwork(sub *Network) error {
	if sub == n {
		return fmt.Errorf("%w: cannot add network %q as a subnetwork of itself", ErrInvalidValue, n.name)
	}
	n.elements = append(n.elements, sub)
	return nil
}

// Validate checks the topology for common errors: unconnected nodes,
// fittings without loss data, pumps without an energy definition, and
// recurses into child blocks. All problems are reported at once.
func (n *Network) Validate() error {
	var problems []string

	connected := make(map[string]bool)
	for _, el := range n.elements {
		switch e := el.(type) {
		case *Pipe:
			if e.startNode != nil && e.endNode != nil {
				connected[e.startNode.Name] = true
				connected[e.endNode.Name] = true
			}
		case *Pump:
			if e.startNode != nil && e.endNode != nil {
				connected[e.startNode.Name] = true
				connected[e.endNode.Name] = true
			}
		case *Equipment:
			for _, node := range e.inletNodes {
				connected[node.Name] = true
			}
			for _, node := range e.outletNodes {
				connected[node.Name] = true
			}
		case *Vessel:
			for _, node := range e.inletNodes {
				connected[node.Name] = true
			}
			for _, node := range e.outletNodes {
				connected[node.Name] = true
			}
		case *Fitting:
			if e.node != nil {
				connected[e.node.Name] = true
			}
		case *Network:
			if err := e.Validate(); err != nil {
				problems = append(problems, fmt.Sprintf("in subnetwork %q: %v", e.name, err))
			}
		}
	}

	for name := range n.nodes {
		if !connected[name] {
			problems = append(problems, fmt.Sprintf("node %q is not connected to any component", name))
		}
	}

	for _, el := range n.elements {
		switch e := el.(type) {
		case *Fitting:
			if _, kErr := e.KFactor(); kErr != nil {
				if _, leErr := e.EquivalentLength(); leErr != nil {
					problems = append(problems, fmt.Sprintf("fitting %q has no usable K or L/D data", e.Type()))
				}
			}
		case *Pump:
			if e.head.Value() == 0 && (e.inletPressure == nil || e.outletPressure == nil) {
				problems = append(problems, fmt.Sprintf("pump %q needs a non-zero head or both terminal pressures", e.Label()))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: network validation failed:\n%s", ErrInvalidValue, strings.Join(problems, "\n"))
	}
	return nil
}

// Describe returns a hierarchical text description of the block.
func (n *Network) Describe() string {
	var b strings.Builder
	n.describe(&b, 0)
	return b.String()
}

func (n *Network) describe(b *strings.Builder, level int) {
	indent := strings.Repeat("  ", level)
	fmt.Fprintf(b, "%sNetwork: %s (connection: %s)\n", indent, n.name, n.connectionType)

	if len(n.nodes) > 0 {
		fmt.Fprintf(b, "%s  Nodes:\n", indent)
		for _, node := range n.nodes {
			fmt.Fprintf(b, "%s    %s\n", indent, node)
		}
	}

	fmt.Fprintf(b, "%s  Elements:\n", indent)
	if len(n.elements) == 0 {
		fmt.Fprintf(b, "%s    (none)\n", indent)
	}
	for _, el := range n.elements {
		if sub, ok := el.(*Network); ok {
			sub.describe(b, level+1)
			continue
		}
		fmt.Fprintf(b, "%s    %s\n", indent, el)
	}
}

// Schematic renders the block hierarchy as ASCII art: series chains as
// numbered lines, parallel branches nested under branch markers.
func (n *Network) Schematic() string {
	return strings.Join(n.schematicLines(""), "\n")
}

func (n *Network) schematicLines(prefix string) []string {
	var lines []string
	header := fmt.Sprintf("%s [%s]", n.name, n.connectionType)
	if prefix != "" {
		header = prefix + "└─" + header
	}
	lines = append(lines, header)

	base := prefix + "  "
	if n.connectionType == Series {
		for i, el := range n.elements {
			childPrefix := base + "│ "
			if i == len(n.elements)-1 {
				childPrefix = base + "  "
			}
			if sub, ok := el.(*Network); ok {
				lines = append(lines, sub.schematicLines(childPrefix)...)
			} else {
				lines = append(lines, fmt.Sprintf("%s└─%d. %s", childPrefix, i+1, el.Label()))
			}
		}
		return lines
	}

	for i, branch := range n.elements {
		childPrefix := base + "  "
		lines = append(lines, fmt.Sprintf("%s┌─(branch %d)", childPrefix, i+1))
		if sub, ok := branch.(*Network); ok {
			lines = append(lines, sub.schematicLines(childPrefix+"│ ")...)
		} else {
			lines = append(lines, fmt.Sprintf("%s│   └─ %s", childPrefix, branch.Label()))
		}
	}
	return lines
}

func (n *Network) String() string {
	return fmt.Sprintf("Network(%s, %s, %d elements)", n.name, n.connectionType, len(n.elements))
}
