package manifest

// Kind identifies the shape of a Value
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a node of a parsed manifest. Maps keep their keys in document order.
type Value struct {
	Kind Kind

	// Bool holds the value of a KindBool node
	Bool bool
	// Text holds the string of a KindString node or the literal of a KindNumber node
	Text string
	// Items holds the elements of a KindList node
	Items []*Value

	keys   []string
	fields map[string]*Value
}

// Null returns a null value
func Null() *Value {
	return &Value{Kind: KindNull}
}

// Bool returns a boolean value
func Bool(b bool) *Value {
	return &Value{Kind: KindBool, Bool: b}
}

// Number returns a number value holding its literal text
func Number(literal string) *Value {
	return &Value{Kind: KindNumber, Text: literal}
}

// String returns a string value
func String(s string) *Value {
	return &Value{Kind: KindString, Text: s}
}

// List returns a list value
func List(items ...*Value) *Value {
	return &Value{Kind: KindList, Items: items}
}

// NewMap returns an empty map value
func NewMap() *Value {
	return &Value{Kind: KindMap, fields: make(map[string]*Value)}
}

// Set stores a field. A key that already exists keeps its position.
func (v *Value) Set(key string, val *Value) *Value {
	if v.fields == nil {
		v.fields = make(map[string]*Value)
	}
	if _, ok := v.fields[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.fields[key] = val
	return v
}

// Get returns the field stored under key
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != KindMap {
		return nil, false
	}
	val, ok := v.fields[key]
	return val, ok
}

// Keys returns the map keys in document order
func (v *Value) Keys() []string {
	if v == nil || v.Kind != KindMap {
		return nil
	}
	return v.keys
}

// Len returns the number of list items or map fields
func (v *Value) Len() int {
	switch {
	case v == nil:
		return 0
	case v.Kind == KindList:
		return len(v.Items)
	case v.Kind == KindMap:
		return len(v.keys)
	default:
		return 0
	}
}
