package assetgraph

type InputType int

const (
	InputUnknown InputType = iota
	InputNumber
	InputBoolean
	InputTrigger
)

// InputTypes lists every input type.
var InputTypes = []InputType{InputUnknown, InputNumber, InputBoolean, InputTrigger}

func (t InputType) String() string {
	switch t {
	case InputNumber:
		return "number"
	case InputBoolean:
		return "boolean"
	case InputTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

type AssetType int

const (
	AssetUnknown AssetType = iota
	AssetImage
	AssetFont
	AssetAudio
)

// AssetTypes lists every asset type.
var AssetTypes = []AssetType{AssetUnknown, AssetImage, AssetFont, AssetAudio}

func (t AssetType) String() string {
	switch t {
	case AssetImage:
		return "image"
	case AssetFont:
		return "font"
	case AssetAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// DataType is the declared type of a view model property.
type DataType int

const (
	DataNone DataType = iota
	DataString
	DataNumber
	DataBoolean
	DataColor
	DataList
	DataEnum
	DataTrigger
	DataViewModel
	DataInteger
	DataSymbolListIndex
	DataAssetImage
)

// DataTypes lists every property data type.
var DataTypes = []DataType{
	DataNone, DataString, DataNumber, DataBoolean, DataColor, DataList,
	DataEnum, DataTrigger, DataViewModel, DataInteger, DataSymbolListIndex,
	DataAssetImage,
}

func (t DataType) String() string {
	switch t {
	case DataNone:
		return "none"
	case DataString:
		return "string"
	case DataNumber:
		return "number"
	case DataBoolean:
		return "boolean"
	case DataColor:
		return "color"
	case DataList:
		return "list"
	case DataEnum:
		return "enum"
	case DataTrigger:
		return "trigger"
	case DataViewModel:
		return "viewModel"
	case DataInteger:
		return "integer"
	case DataSymbolListIndex:
		return "symbolListIndex"
	case DataAssetImage:
		return "assetImage"
	default:
		return "unknown"
	}
}

// ParseDataType maps the String form back to a DataType.
func ParseDataType(s string) (DataType, bool) {
	for _, t := range DataTypes {
		if t.String() == s {
			return t, true
		}
	}
	return DataNone, false
}

// ParseInputType maps the String form back to an InputType.
func ParseInputType(s string) (InputType, bool) {
	for _, t := range InputTypes {
		if t.String() == s {
			return t, true
		}
	}
	return InputUnknown, false
}

// ParseAssetType maps the String form back to an AssetType.
func ParseAssetType(s string) (AssetType, bool) {
	for _, t := range AssetTypes {
		if t.String() == s {
			return t, true
		}
	}
	return AssetUnknown, false
}
