package primitive

import "fmt"

// HorizontalAlignment positions text horizontally inside its bounds.
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return fmt.Sprintf("HorizontalAlignment(%d)", uint8(a))
}

// VerticalAlignment positions text vertically inside its bounds.
type VerticalAlignment uint8

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "center"
	case AlignBottom:
		return "bottom"
	}
	return fmt.Sprintf("VerticalAlignment(%d)", uint8(a))
}
