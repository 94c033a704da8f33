package primitive

// Font identifies a font face. The zero value is the built-in default font.
//
// Two fonts with the same Name are the same font; Bytes are only read the
// first time a name is resolved.
type Font struct {
	Name  string
	Bytes []byte
}

// DefaultFont is the built-in fallback font.
var DefaultFont = Font{}

// IsDefault reports whether f is the built-in default font.
func (f Font) IsDefault() bool {
	return f.Name == ""
}

func (f Font) String() string {
	if f.IsDefault() {
		return "Default"
	}
	return f.Name
}
