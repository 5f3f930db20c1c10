package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/excalamus/nostalgic/pkg/errors"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   cty.Value
		want interface{}
	}{
		{name: "bool", in: cty.True, want: true},
		{name: "integer", in: cty.NumberIntVal(42), want: int64(42)},
		{name: "negative integer", in: cty.NumberIntVal(-7), want: int64(-7)},
		{name: "float", in: cty.NumberFloatVal(1.5), want: 1.5},
		{name: "integral float lowers to int", in: cty.NumberFloatVal(3), want: int64(3)},
		{name: "string", in: cty.StringVal("two"), want: "two"},
		{
			name: "tuple",
			in:   cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.StringVal("a")}),
			want: []interface{}{int64(1), "a"},
		},
		{
			name: "list",
			in:   cty.ListVal([]cty.Value{cty.StringVal("x"), cty.StringVal("y")}),
			want: []interface{}{"x", "y"},
		},
		{
			name: "object",
			in: cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberIntVal(800),
				"title":  cty.StringVal("main"),
				"maxed":  cty.False,
			}),
			want: map[string]interface{}{"width": int64(800), "title": "main", "maxed": false},
		},
		{
			name: "nested aggregate",
			in: cty.ObjectVal(map[string]cty.Value{
				"recent": cty.TupleVal([]cty.Value{cty.StringVal("a.txt"), cty.StringVal("b.txt")}),
			}),
			want: map[string]interface{}{"recent": []interface{}{"a.txt", "b.txt"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	t.Run("null value", func(t *testing.T) {
		_, err := Encode(cty.NullVal(cty.String))
		assert.True(t, errors.IsErrorCode(err, errors.ErrEncode))
	})

	t.Run("nil value", func(t *testing.T) {
		_, err := Encode(cty.NilVal)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEncode))
	})

	t.Run("null element inside aggregate", func(t *testing.T) {
		_, err := Encode(cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NullVal(cty.String)}))
		assert.True(t, errors.IsErrorCode(err, errors.ErrEncode))
	})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want cty.Value
	}{
		{name: "bool", in: true, want: cty.True},
		{name: "int64", in: int64(42), want: cty.NumberIntVal(42)},
		{name: "int", in: 7, want: cty.NumberIntVal(7)},
		{name: "float64", in: 1.5, want: cty.NumberFloatVal(1.5)},
		{name: "string", in: "two", want: cty.StringVal("two")},
		{
			name: "slice",
			in:   []interface{}{int64(1), "a"},
			want: cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.StringVal("a")}),
		},
		{name: "empty slice", in: []interface{}{}, want: cty.EmptyTupleVal},
		{
			name: "map",
			in:   map[string]interface{}{"width": int64(800)},
			want: cty.ObjectVal(map[string]cty.Value{"width": cty.NumberIntVal(800)}),
		},
		{name: "empty map", in: map[string]interface{}{}, want: cty.EmptyObjectVal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.RawEquals(got), "want %#v, got %#v", tt.want, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))

	_, err = Decode(struct{}{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))

	_, err = Decode([]interface{}{struct{}{}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
}

func TestRoundTrip(t *testing.T) {
	// what Write puts on disk, Read must reproduce
	vals := []cty.Value{
		cty.True,
		cty.False,
		cty.NumberIntVal(0),
		cty.NumberIntVal(-123456789),
		cty.NumberFloatVal(2.25),
		cty.StringVal(""),
		cty.StringVal("héllo wörld"),
		cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}),
		cty.ObjectVal(map[string]cty.Value{
			"geometry": cty.TupleVal([]cty.Value{cty.NumberIntVal(80), cty.NumberIntVal(24)}),
			"theme":    cty.StringVal("dark"),
		}),
	}

	for _, v := range vals {
		enc, err := Encode(v)
		require.NoError(t, err)

		dec, err := Decode(enc)
		require.NoError(t, err)

		assert.True(t, v.RawEquals(dec), "round trip changed %#v to %#v", v, dec)
	}
}
