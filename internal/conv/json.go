package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert copies in into the value pointed to by outPtr. Assignable values
// are set directly; anything else goes through a JSON round-trip, which
// covers map arguments decoded from MCP requests. A nil input leaves the
// destination untouched.
func Convert(in any, outPtr any) error {
	dest := reflect.ValueOf(outPtr)
	if outPtr == nil || dest.Kind() != reflect.Ptr || dest.IsNil() {
		return fmt.Errorf("conv.Convert: destination must be a non-nil pointer, got %T", outPtr)
	}
	if in == nil {
		return nil
	}
	if src := reflect.ValueOf(in); src.Type().AssignableTo(dest.Elem().Type()) {
		dest.Elem().Set(src)
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("conv.Convert: marshal %T: %w", in, err)
	}
	if err = json.Unmarshal(data, outPtr); err != nil {
		return fmt.Errorf("conv.Convert: unmarshal into %T: %w", outPtr, err)
	}
	return nil
}
