package manifest

// DefaultPropertiesPath is where VS Code style manifests declare their settings
var DefaultPropertiesPath = []string{"contributes", "configuration", "properties"}

// Property is one configuration property declared by the manifest
type Property struct {
	Name       string
	Definition *Value
}

// Type returns the "type" field
func (p Property) Type() (*Value, bool) {
	return p.Definition.Get("type")
}

// Default returns the "default" field
func (p Property) Default() (*Value, bool) {
	return p.Definition.Get("default")
}

// Description returns the "description" field
func (p Property) Description() (*Value, bool) {
	return p.Definition.Get("description")
}

// MarkdownDescription returns the "markdownDescription" field
func (p Property) MarkdownDescription() (*Value, bool) {
	return p.Definition.Get("markdownDescription")
}

// Properties follows path from root and returns the entries of the map it
// ends at, in document order. A list met on the way is searched element by
// element and the results are concatenated.
func Properties(root *Value, path ...string) ([]Property, error) {
	if root == nil {
		root = Null()
	}
	nodes, err := resolve(root, path, path)
	if err != nil {
		return nil, err
	}

	var props []Property
	for _, node := range nodes {
		if node.Kind != KindMap {
			return nil, &KeyLookupError{
				Path:    path,
				Segment: lastSegment(path),
				Reason:  "expected a mapping, got " + node.Kind.String(),
			}
		}
		for _, key := range node.Keys() {
			def, _ := node.Get(key)
			props = append(props, Property{Name: key, Definition: def})
		}
	}
	return props, nil
}

func resolve(node *Value, rest, full []string) ([]*Value, error) {
	if len(rest) == 0 {
		return []*Value{node}, nil
	}

	switch node.Kind {
	case KindMap:
		child, ok := node.Get(rest[0])
		if !ok {
			return nil, &KeyLookupError{Path: full, Segment: rest[0]}
		}
		return resolve(child, rest[1:], full)
	case KindList:
		var found []*Value
		for _, item := range node.Items {
			if item.Kind != KindMap {
				continue
			}
			if _, ok := item.Get(rest[0]); !ok {
				continue
			}
			nodes, err := resolve(item, rest, full)
			if err != nil {
				return nil, err
			}
			found = append(found, nodes...)
		}
		if len(found) == 0 {
			return nil, &KeyLookupError{Path: full, Segment: rest[0], Reason: "no list element has it"}
		}
		return found, nil
	default:
		return nil, &KeyLookupError{
			Path:    full,
			Segment: rest[0],
			Reason:  "parent is a " + node.Kind.String(),
		}
	}
}

func lastSegment(path []string) string {
	if len(path) == 0 {
		return ""
	}
	return path[len(path)-1]
}
