//go:build unit || e2e

package testutil

// Field sets key in a DtoMap body, or removes it when value is nil. Boundary
// tables use it to build one invalid request per field.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
