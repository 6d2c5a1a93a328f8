package objects

// Bundle represents a STIX Bundle: a single container holding a complete
// set of generated objects and relationships for one exchange. Objects keep
// their insertion order and nothing is deduplicated.
type Bundle struct {
	Type    string   `json:"type"`
	ID      string   `json:"id"`
	Objects []Object `json:"objects,omitempty"`
}

// NewBundle wraps the given objects into a bundle with a fresh bundle id.
func NewBundle(objs ...Object) *Bundle {
	return &Bundle{
		Type:    TypeBundle,
		ID:      NewID(TypeBundle),
		Objects: objs,
	}
}

// ObjectType implements Object.
func (b *Bundle) ObjectType() string { return b.Type }

// ObjectID implements Object.
func (b *Bundle) ObjectID() string { return b.ID }

// Len returns the number of objects in the bundle.
func (b *Bundle) Len() int {
	return len(b.Objects)
}
