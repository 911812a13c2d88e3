package tree

import (
	"fmt"
	"sort"
	"strings"
)

// Color is a packed ARGB value. The zero value means "no color set".
type Color uint32

const (
	ColorClear Color = 0
	ColorBlack Color = 0xff000000
	ColorWhite Color = 0xffffffff
)

// PointerEvents controls whether a node participates in pointer interaction.
type PointerEvents int

const (
	PointerEventsAuto PointerEvents = iota
	PointerEventsNone
)

// Transform is a 4x4 transform matrix in row-major order.
type Transform [16]float64

func TransformIdentity() Transform {
	return Transform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TransformPerspective(distance float64) Transform {
	t := TransformIdentity()
	t[11] = -1 / distance
	return t
}

const (
	FlexDirectionColumn = "column"
	FlexDirectionRow    = "row"
)

// LayoutKeys is the fixed catalog of numeric layout properties the factory
// accepts in an overlay.
var LayoutKeys = []string{
	"flex", "flexGrow", "flexShrink", "flexBasis",
	"left", "top", "marginLeft", "marginTop",
	"marginRight", "marginBottom", "paddingLeft", "paddingTop",
	"paddingRight", "paddingBottom", "width", "height",
	"maxWidth", "maxHeight", "minWidth", "minHeight",
}

// Props is a node's property payload. Everything outside the Factory treats
// it as opaque data; only the Factory interprets or rewrites its values.
type Props struct {
	NativeID        string
	BackgroundColor Color
	ForegroundColor Color
	ShadowColor     Color
	Accessible      bool
	ZIndex          int
	PointerEvents   PointerEvents
	Transform       Transform

	FlexDirection string
	Layout        map[string]int
}

// String renders the payload deterministically; layout keys are sorted so
// equal payloads always render equally.
func (p Props) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "id=%q bg=%08x fg=%08x shadow=%08x accessible=%v z=%d pointer=%d transform=%v",
		p.NativeID, uint32(p.BackgroundColor), uint32(p.ForegroundColor), uint32(p.ShadowColor),
		p.Accessible, p.ZIndex, p.PointerEvents, p.Transform)
	if p.FlexDirection != "" {
		fmt.Fprintf(&b, " flexDirection=%s", p.FlexDirection)
	}
	if len(p.Layout) > 0 {
		keys := make([]string, 0, len(p.Layout))
		for k := range p.Layout {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%d", k, p.Layout[k])
		}
	}
	return b.String()
}

// RawProps is an untyped property overlay keyed by property name, applied
// through Factory.CloneProps.
type RawProps map[string]any
