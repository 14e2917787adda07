//go:build debug_mem_utils

package memutils

// DebugValidate calls Validate and panics on the first error it reports. It only does so when
// the debug_mem_utils build tag is present.
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}
