package codec

// GroupCode is the 2-byte tag preceding each DXF record. Legal values are
// discontiguous ranges; anything outside every range is a format error.
type GroupCode int16

// DataType identifies the type family a group code selects.
type DataType int

const (
	// TypeNone is the zero DataType; no value has been decoded yet.
	TypeNone DataType = iota
	TypeString
	TypeInt16
	TypeInt32
	TypeInt64
	TypeDouble
	TypeBool
	TypeBytes
	TypeHandle
	// TypeComment marks group code 999. The comment record is legal in
	// text-form DXF (string payload) and illegal in binary form.
	TypeComment
)

// String returns the type family name used in diagnostics and JSON output.
func (t DataType) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeString:
		return "string"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeDouble:
		return "double"
	case TypeBool:
		return "bool"
	case TypeBytes:
		return "bytes"
	case TypeHandle:
		return "handle"
	case TypeComment:
		return "comment"
	}
	return "unknown"
}

// codeRange maps the inclusive interval [lo, hi] to a type family.
type codeRange struct {
	lo, hi GroupCode
	kind   DataType
}

// codeRanges is the dispatch table, ordered by lo and disjoint. Keeping it
// as data keeps the ranges auditable and makes "code not covered" a single
// fallthrough case in TypeOf.
var codeRanges = []codeRange{
	{0, 9, TypeString},
	{10, 59, TypeDouble},
	{60, 79, TypeInt16},
	{90, 99, TypeInt32},
	{100, 102, TypeString},
	{105, 105, TypeHandle},
	{110, 149, TypeDouble},
	{160, 169, TypeInt64},
	{170, 179, TypeInt16},
	{210, 239, TypeDouble},
	{270, 289, TypeInt16},
	{290, 299, TypeBool},
	{300, 309, TypeString},
	{310, 319, TypeBytes},
	{320, 369, TypeHandle},
	{370, 389, TypeInt16},
	{390, 399, TypeHandle},
	{400, 409, TypeInt16},
	{410, 419, TypeString},
	{420, 429, TypeInt32},
	{430, 439, TypeString},
	{440, 459, TypeInt32},
	{460, 469, TypeDouble},
	{470, 479, TypeString},
	{480, 481, TypeHandle},
	{999, 999, TypeComment},
	{1000, 1003, TypeString},
	{1004, 1004, TypeBytes},
	{1005, 1009, TypeString},
	{1010, 1059, TypeDouble},
	{1060, 1070, TypeInt16},
	{1071, 1071, TypeInt32},
}

// TypeOf returns the type family for a group code. The second result is
// false when the code falls outside every known range.
func (c GroupCode) TypeOf() (DataType, bool) {
	lo, hi := 0, len(codeRanges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		r := codeRanges[mid]
		switch {
		case c < r.lo:
			hi = mid - 1
		case c > r.hi:
			lo = mid + 1
		default:
			return r.kind, true
		}
	}
	return TypeNone, false
}
