package constants

const ExecutableName = "gpftoa"

type ErrorCode uint32
type WarningCode uint32

// ConversionType names a printf-style floating conversion letter. The
// uppercase variants render the same digits with uppercase hex digits,
// exponent markers, and special-value spellings.
type ConversionType string

const (
	HexConversion        ConversionType = "a"
	HexConversionUpper   ConversionType = "A"
	SciConversion        ConversionType = "e"
	SciConversionUpper   ConversionType = "E"
	FixedConversion      ConversionType = "f"
	FixedConversionUpper ConversionType = "F"
	GenConversion        ConversionType = "g"
	GenConversionUpper   ConversionType = "G"
)

var AllConversionTypes = []ConversionType{
	HexConversion,
	HexConversionUpper,
	SciConversion,
	SciConversionUpper,
	FixedConversion,
	FixedConversionUpper,
	GenConversion,
	GenConversionUpper,
}

type RoundingType string

const (
	NearestEven RoundingType = "nearest-even"
	NearestAway RoundingType = "nearest-away"
	RoundUp     RoundingType = "up"
	RoundDown   RoundingType = "down"
	TowardZero  RoundingType = "toward-zero"
)

var AllRoundingTypes = []RoundingType{
	NearestEven,
	NearestAway,
	RoundUp,
	RoundDown,
	TowardZero,
}

// WidthType is the bit width of an input value's encoding.
type WidthType string

const (
	Width32 WidthType = "32"
	Width64 WidthType = "64"
)

var AllWidthTypes = []WidthType{
	Width32,
	Width64,
}

type OptionType interface {
	ConversionType | RoundingType | WidthType
}
