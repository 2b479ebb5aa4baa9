package scanner

import (
	"fmt"
	"strconv"

	"github.com/Alia5/rivegen/internal/codegen/assetgraph"
)

// ResolveDefault renders the default of a property declared as t from the
// value read off a fresh instance. A value that does not match t, or a type
// without a static default, yields "".
func ResolveDefault(t assetgraph.DataType, v assetgraph.PropertyValue) string {
	switch t {
	case assetgraph.DataBoolean:
		if b, ok := v.(assetgraph.BooleanValue); ok {
			return strconv.FormatBool(b.Value)
		}
	case assetgraph.DataNumber:
		if n, ok := v.(assetgraph.NumberValue); ok {
			return formatNumber(n.Value)
		}
	case assetgraph.DataString:
		if s, ok := v.(assetgraph.StringValue); ok {
			return s.Value
		}
	case assetgraph.DataColor:
		if c, ok := v.(assetgraph.ColorValue); ok {
			return fmt.Sprintf("0x%08X", uint32(c.Value))
		}
	case assetgraph.DataEnum:
		if e, ok := v.(assetgraph.EnumValue); ok {
			return EnumDefault(e)
		}
	case assetgraph.DataAssetImage,
		assetgraph.DataViewModel,
		assetgraph.DataTrigger,
		assetgraph.DataNone,
		assetgraph.DataList,
		assetgraph.DataInteger,
		assetgraph.DataSymbolListIndex:
		return ""
	}
	return ""
}

// EnumDefault returns the key at v.Index, or "" when the enum is missing or
// the index is out of range.
func EnumDefault(v assetgraph.EnumValue) string {
	if v.Enum == nil {
		return ""
	}
	values := v.Enum.Values()
	if uint64(v.Index) >= uint64(len(values)) {
		return ""
	}
	return values[v.Index]
}

// InputDefault renders the default value of a state machine input.
func InputDefault(in assetgraph.Input) string {
	switch in.Type() {
	case assetgraph.InputNumber:
		return formatNumber(in.NumberValue())
	case assetgraph.InputBoolean:
		return strconv.FormatBool(in.BoolValue())
	case assetgraph.InputTrigger:
		return "false"
	case assetgraph.InputUnknown:
		return ""
	}
	return ""
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
