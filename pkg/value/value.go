// Package value converts between cty values and the plain Go values the
// TOML layer produces and consumes. Settings hold cty.Value so every value
// carries its type; this package is the bridge to the on-disk encoding.
package value

import (
	"math/big"

	"github.com/zclconf/go-cty/cty"

	"github.com/excalamus/nostalgic/pkg/errors"
)

// Encode lowers a cty value to a Go value that TOML can serialize: bool,
// int64, float64, string, []interface{} or map[string]interface{}. Integral
// numbers lower to int64 so they round-trip as integers, not floats.
func Encode(v cty.Value) (interface{}, error) {
	if v == cty.NilVal || v.IsNull() {
		return nil, errors.New(errors.ErrEncode, "cannot encode a null value")
	}
	if !v.IsKnown() {
		return nil, errors.New(errors.ErrEncode, "cannot encode an unknown value")
	}

	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return v.True(), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil

	case ty == cty.String:
		return v.AsString(), nil

	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]interface{}, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			enc, err := Encode(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, enc)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]interface{}, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			enc, err := Encode(ev)
			if err != nil {
				return nil, err
			}
			out[kv.AsString()] = enc
		}
		return out, nil
	}

	return nil, errors.Newf(errors.ErrEncode, "unsupported value type %s", ty.FriendlyName())
}

// Decode raises a TOML-decoded Go value back into a cty value. Collections
// always come back as tuples and objects, which keeps mixed-type aggregates
// representable.
func Decode(raw interface{}) (cty.Value, error) {
	switch rv := raw.(type) {
	case bool:
		return cty.BoolVal(rv), nil
	case int:
		return cty.NumberIntVal(int64(rv)), nil
	case int64:
		return cty.NumberIntVal(rv), nil
	case float64:
		return cty.NumberFloatVal(rv), nil
	case string:
		return cty.StringVal(rv), nil

	case []interface{}:
		if len(rv) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(rv))
		for _, e := range rv {
			dv, err := Decode(e)
			if err != nil {
				return cty.NilVal, err
			}
			elems = append(elems, dv)
		}
		return cty.TupleVal(elems), nil

	case map[string]interface{}:
		if len(rv) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(rv))
		for k, e := range rv {
			dv, err := Decode(e)
			if err != nil {
				return cty.NilVal, err
			}
			attrs[k] = dv
		}
		return cty.ObjectVal(attrs), nil
	}

	return cty.NilVal, errors.Newf(errors.ErrDecode, "unsupported raw value of type %T", raw)
}
