package registry

// Entry describes one registered package in the node registry.
//
// Fields are declared in alphabetical key order so MarshalIndent emits the
// registry with sorted keys, matching what every other tool reading
// node_registry.json expects byte-for-byte.
type Entry struct {
	// Name is the package name, unique across the registry
	Name string `json:"name"`

	// Path is the package directory relative to the repository root
	Path string `json:"path"`

	// Target is the deployment target, always "qnx"
	Target string `json:"target"`

	// Type is the node type, always "rti_dds"
	Type string `json:"type"`
}

// Document is the full registry document: the ordered list of registered
// packages. Order is insertion order and carries no meaning.
type Document struct {
	Nodes []Entry `json:"nodes"`
}

// Node type and deployment target recorded for every package this tool creates.
const (
	NodeType   = "rti_dds"
	NodeTarget = "qnx"
)

// NewDocument creates an empty registry document.
func NewDocument() *Document {
	return &Document{Nodes: []Entry{}}
}

// Find returns the entry with the given name, scanning in order.
func (d *Document) Find(name string) (Entry, bool) {
	for _, n := range d.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Entry{}, false
}

// Add appends an entry. The caller must have already verified that no entry
// with the same name exists; Add does not re-check.
func (d *Document) Add(entry Entry) {
	d.Nodes = append(d.Nodes, entry)
}

// Remove removes the first entry with the given name and reports whether an
// entry was removed.
func (d *Document) Remove(name string) bool {
	for i, n := range d.Nodes {
		if n.Name == name {
			d.Nodes = append(d.Nodes[:i], d.Nodes[i+1:]...)
			return true
		}
	}
	return false
}
