package memutils

// Validatable is anything that can check its own internal consistency. DebugValidate
// accepts it.
type Validatable interface {
	Validate() error
}
