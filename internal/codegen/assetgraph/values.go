package assetgraph

// PropertyValue is the value read from a view model instance. The set of
// implementations is closed; switch on the concrete type.
type PropertyValue interface {
	propertyValue()
}

type BooleanValue struct{ Value bool }

type NumberValue struct{ Value float64 }

type StringValue struct{ Value string }

// ColorValue is a signed 32-bit ARGB color.
type ColorValue struct{ Value int32 }

// EnumValue holds an index into Enum.Values. Enum may be nil when the
// property's enum does not resolve.
type EnumValue struct {
	Enum  Enum
	Index uint32
}

type IntegerValue struct{ Value int64 }

type SymbolListIndexValue struct{ Value uint32 }

type ListValue struct{ Len int }

type TriggerValue struct{}

type AssetImageValue struct{ AssetID uint32 }

func (BooleanValue) propertyValue()         {}
func (NumberValue) propertyValue()          {}
func (StringValue) propertyValue()          {}
func (ColorValue) propertyValue()           {}
func (EnumValue) propertyValue()            {}
func (IntegerValue) propertyValue()         {}
func (SymbolListIndexValue) propertyValue() {}
func (ListValue) propertyValue()            {}
func (TriggerValue) propertyValue()         {}
func (AssetImageValue) propertyValue()      {}
