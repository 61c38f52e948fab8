package property

import "errors"

var (
	// ErrMissingName is returned when a wire name is empty.
	ErrMissingName = errors.New("property name must not be empty")
	// ErrAlreadyRegistered is returned when a type already carries a kind tag.
	ErrAlreadyRegistered = errors.New("type is already registered as an input or output type")
	// ErrNotRegistered is returned when the access protocol is used against a
	// type that carries no kind tag.
	ErrNotRegistered = errors.New("type is not registered as an input or output type")
	// ErrNotInputType is returned when an input-only operation is invoked
	// against a type of a different kind.
	ErrNotInputType = errors.New("operation requires an input type")
	// ErrNotOutputType is returned when an output-only operation is invoked
	// against a type of a different kind.
	ErrNotOutputType = errors.New("operation requires an output type")
	// ErrNotAMapping is returned when an output value payload is not a
	// string-keyed map.
	ErrNotAMapping = errors.New("output payload must be a map[string]any")
	// ErrKindRequired is returned by introspection queries invoked against a
	// type lacking the required kind tag.
	ErrKindRequired = errors.New("type does not carry the required kind tag")
	// ErrNotAStruct is returned when a registration sample is neither a
	// struct nor a named string-keyed map type.
	ErrNotAStruct = errors.New("sample must be a struct or a named string-keyed map type")
	// ErrNoStore is returned when a struct type does not embed property.Store.
	ErrNoStore = errors.New("type must embed property.Store")
	// ErrUnknownField is returned when a registration option names a field
	// that is not declared on the type.
	ErrUnknownField = errors.New("field is not declared on the type")
	// ErrNotAGetter is returned when a function cannot be tagged as a getter.
	ErrNotAGetter = errors.New("provided function is not a recognizable getter")
)
