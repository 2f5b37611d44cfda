//go:build unit

package commands

// SetRequestMarshaler swaps the idempotency hash encoder and returns a restore func.
func SetRequestMarshaler(f func(v any) ([]byte, error)) func() {
	prev := marshalRequest
	marshalRequest = f
	return func() { marshalRequest = prev }
}
