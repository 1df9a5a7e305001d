package schema

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Decode maps loosely typed arguments onto target, a pointer to a struct
// carrying mapstructure tags. Numbers given as strings and integers given as
// whole floats are converted. Fractional values for integer fields and
// unknown keys are rejected.
func Decode(args map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       rejectFractionalInts,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           target,
		TagName:          "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// rejectFractionalInts stops weak decoding from truncating 2.7 to 2.
// JSON-RPC arguments carry every number as float64.
func rejectFractionalInts(from, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}

	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("expected an integer, got %v", f)
	}
	return data, nil
}

// DecodeProblem decodes args into a Problem and validates it.
func DecodeProblem(args map[string]any) (Problem, error) {
	var p Problem
	if err := Decode(args, &p); err != nil {
		return Problem{}, err
	}
	if err := p.Validate(); err != nil {
		return Problem{}, err
	}
	return p, nil
}
