package pkguid

// StringID generates unique string identifiers, such as correlation IDs.
type StringID interface {
	Generate() string
}

// NumberID generates unique, roughly time-ordered int64 identifiers.
type NumberID interface {
	Generate() int64
}
