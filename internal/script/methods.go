package script

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/vbind"
	vberrors "github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/pkg/reactive"
)

// BuildMethods turns the script's operation lists into a method table.
// Each method applies its operations in order and stops at the first error.
func (s *Script) BuildMethods() map[string]vbind.Method {
	methods := make(map[string]vbind.Method, len(s.Methods))
	for name, ops := range s.Methods {
		methods[name] = compile(name, ops)
	}
	return methods
}

func compile(name string, ops []Op) vbind.Method {
	return func(data *vbind.Data) error {
		for i, op := range ops {
			if err := op.apply(data); err != nil {
				return vberrors.New("S004").Wrap(err).
					WithDetail(fmt.Sprintf("methods.%s[%d] (%s)", name, i, op.Kind()))
			}
		}
		return nil
	}
}

func (o Op) apply(data *vbind.Data) error {
	switch {
	case o.Set != nil:
		_, err := data.Set(o.Set.Field, o.Set.Value)
		return err

	case o.Add != nil:
		cur, ok := data.Get(o.Add.Field)
		if !ok {
			return fmt.Errorf("%w: %q", reactive.ErrUnknownField, o.Add.Field)
		}
		if !reactive.IsNumber(cur) {
			return fmt.Errorf("add: field %q holds %T, not a number", o.Add.Field, cur)
		}
		by := o.Add.By
		if by == nil {
			by = 1
		}
		_, err := data.Set(o.Add.Field, addNumbers(cur, by))
		return err

	case o.Toggle != "":
		cur, ok := data.Get(o.Toggle)
		if !ok {
			return fmt.Errorf("%w: %q", reactive.ErrUnknownField, o.Toggle)
		}
		b, isBool := cur.(bool)
		if !isBool {
			return fmt.Errorf("toggle: field %q holds %T, not a boolean", o.Toggle, cur)
		}
		_, err := data.Set(o.Toggle, !b)
		return err
	}
	return fmt.Errorf("empty operation")
}

// addNumbers adds two numbers. Two signed integers stay an int; anything
// else is summed as float64.
func addNumbers(a, b any) any {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if isSigned(av) && isSigned(bv) {
		return int(av.Int() + bv.Int())
	}
	return toFloat(av) + toFloat(bv)
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	return 0
}
