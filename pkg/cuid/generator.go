package cuid

// Generator is implemented by V1Generator and V2Generator.
type Generator interface {
	New() (string, error)
}

var (
	_ Generator = (*V1Generator)(nil)
	_ Generator = (*V2Generator)(nil)
	_ Generator = (*V2Scope)(nil)

	_ Scope = (*processScope)(nil)
	_ Scope = (*localScope)(nil)
	_ Scope = (*V2Scope)(nil)
)
