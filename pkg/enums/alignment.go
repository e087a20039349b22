package enums

// Alignment controls where padding goes when a table cell is narrower than its column.
// Values outside the constants below pad like AlignmentLeft.
type Alignment string

const (
	AlignmentLeft   Alignment = "left"
	AlignmentRight  Alignment = "right"
	AlignmentCenter Alignment = "center"
)

// String implements fmt.Stringer.
func (a Alignment) String() string {
	return string(a)
}
