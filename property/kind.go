package property

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum tags a registered type as input or output kind. A type carries
// exactly one kind for its whole lifetime.
type KindEnum int

const (
	KindUnknown KindEnum = iota
	KindInput
	KindOutput

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
