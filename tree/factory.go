package tree

import "fmt"

// Factory creates identities, nodes, and property payloads. It is the only
// component that understands property semantics.
type Factory struct {
	tags    *TagAllocator
	surface SurfaceID
}

func NewFactory(surface SurfaceID, tags *TagAllocator) *Factory {
	return &Factory{
		tags:    tags,
		surface: surface,
	}
}

// CreateIdentity allocates a fresh identity under the given parent tag.
// Pass 0 for nodes with no creation parent.
func (f *Factory) CreateIdentity(parent Tag) Identity {
	return Identity{
		Tag:     f.tags.Next(),
		Surface: f.surface,
		Parent:  parent,
	}
}

// CreateNode builds an immutable node from an identity, a property payload,
// and an ordered children list. The factory takes ownership of the slice.
func (f *Factory) CreateNode(identity Identity, props Props, children []*Node) *Node {
	return &Node{
		identity: identity,
		props:    props,
		children: children,
	}
}

// DefaultProps is the payload every freshly generated node starts with.
func (f *Factory) DefaultProps() Props {
	return Props{
		Transform:     TransformIdentity(),
		PointerEvents: PointerEventsAuto,
	}
}

// CloneProps copies an existing payload and applies an untyped overlay on
// top. The original payload is left untouched; a nil overlay yields a plain
// copy. Unknown keys and wrong-typed values are rejected.
func (f *Factory) CloneProps(props Props, overlay RawProps) (Props, error) {
	next := props
	if props.Layout != nil {
		next.Layout = make(map[string]int, len(props.Layout))
		for k, v := range props.Layout {
			next.Layout[k] = v
		}
	}

	for key, value := range overlay {
		var err error
		switch key {
		case "nativeID":
			next.NativeID, err = propValue[string](key, value)
		case "backgroundColor":
			next.BackgroundColor, err = propValue[Color](key, value)
		case "foregroundColor":
			next.ForegroundColor, err = propValue[Color](key, value)
		case "shadowColor":
			next.ShadowColor, err = propValue[Color](key, value)
		case "accessible":
			next.Accessible, err = propValue[bool](key, value)
		case "zIndex":
			next.ZIndex, err = propValue[int](key, value)
		case "pointerEvents":
			next.PointerEvents, err = propValue[PointerEvents](key, value)
		case "transform":
			next.Transform, err = propValue[Transform](key, value)
		case "flexDirection":
			var direction string
			direction, err = propValue[string](key, value)
			if err == nil && direction != FlexDirectionRow && direction != FlexDirectionColumn {
				err = fmt.Errorf("tree: invalid flexDirection %q", direction)
			}
			next.FlexDirection = direction
		default:
			if !isLayoutKey(key) {
				return Props{}, fmt.Errorf("tree: unknown property %q", key)
			}
			var n int
			n, err = propValue[int](key, value)
			if err == nil {
				if next.Layout == nil {
					next.Layout = make(map[string]int)
				}
				next.Layout[key] = n
			}
		}
		if err != nil {
			return Props{}, err
		}
	}
	return next, nil
}

func propValue[T any](key string, value any) (T, error) {
	v, ok := value.(T)
	if !ok {
		return v, fmt.Errorf("tree: property %q holds %T, want %T", key, value, v)
	}
	return v, nil
}

func isLayoutKey(key string) bool {
	for _, k := range LayoutKeys {
		if k == key {
			return true
		}
	}
	return false
}
