package listview

//go:generate go run ./cmd/enumgen -type color -lower -yaml

// color is the indicator palette of the host list view
type color uint8

const (
	colorBlue color = iota
	colorCyan
	colorDarkgrey
	colorGreen
	colorGrey
	colorLightblue
	colorOrange
	colorPink
	colorPurple
	colorRed
	colorYellow
)

// IsZero reports whether c is the absent color, used by indicators of unmapped statuses
func (c Color) IsZero() bool {
	return c == Color{}
}
