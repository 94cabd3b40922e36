package codec

// Value is a tagged union holding exactly one decoded payload. The kind
// stored is fully determined by the group code that produced it; accessors
// check the kind and fail with TypeMismatchError on a mismatch.
//
// A Value is overwritten wholesale on every decode. The zero Value has
// kind TypeNone and every accessor fails on it.
type Value struct {
	kind DataType
	str  string
	num  int64
	fl   float64
	bit  bool
	raw  []byte
}

// Constructors. Each fixes the kind; there is no way to build a Value
// whose kind disagrees with its payload.

func StringValue(s string) Value { return Value{kind: TypeString, str: s} }
func Int16Value(v int16) Value { return Value{kind: TypeInt16, num: int64(v)} }
func Int32Value(v int32) Value { return Value{kind: TypeInt32, num: int64(v)} }
func Int64Value(v int64) Value { return Value{kind: TypeInt64, num: v} }
func DoubleValue(v float64) Value { return Value{kind: TypeDouble, fl: v} }
func BytesValue(b []byte) Value { return Value{kind: TypeBytes, raw: b} }
func HandleValue(h string) Value { return Value{kind: TypeHandle, str: h} }

// CommentValue holds the text of a 999 comment record (text form only).
func CommentValue(s string) Value { return Value{kind: TypeComment, str: s} }

// BoolValue keeps the raw wire byte alongside the truth value so the Byte
// accessor can return it unchanged.
func BoolValue(raw byte) Value {
	return Value{kind: TypeBool, num: int64(raw), bit: raw > 0}
}

// Kind returns the type family stored in the cell.
func (v Value) Kind() DataType { return v.kind }

// String returns a string payload.
func (v Value) String() (string, error) {
	if v.kind != TypeString && v.kind != TypeComment {
		return "", &TypeMismatchError{Want: TypeString, Got: v.kind}
	}
	return v.str, nil
}

// Int16 returns a 16-bit integer payload.
func (v Value) Int16() (int16, error) {
	if v.kind != TypeInt16 {
		return 0, &TypeMismatchError{Want: TypeInt16, Got: v.kind}
	}
	return int16(v.num), nil
}

// Int32 returns a 32-bit integer payload.
func (v Value) Int32() (int32, error) {
	if v.kind != TypeInt32 {
		return 0, &TypeMismatchError{Want: TypeInt32, Got: v.kind}
	}
	return int32(v.num), nil
}

// Int64 returns a 64-bit integer payload.
func (v Value) Int64() (int64, error) {
	if v.kind != TypeInt64 {
		return 0, &TypeMismatchError{Want: TypeInt64, Got: v.kind}
	}
	return v.num, nil
}

// Double returns a double-precision float payload.
func (v Value) Double() (float64, error) {
	if v.kind != TypeDouble {
		return 0, &TypeMismatchError{Want: TypeDouble, Got: v.kind}
	}
	return v.fl, nil
}

// Bool returns a boolean payload.
func (v Value) Bool() (bool, error) {
	if v.kind != TypeBool {
		return false, &TypeMismatchError{Want: TypeBool, Got: v.kind}
	}
	return v.bit, nil
}

// Byte returns the raw wire byte of a boolean payload.
func (v Value) Byte() (byte, error) {
	if v.kind != TypeBool {
		return 0, &TypeMismatchError{Want: TypeBool, Got: v.kind}
	}
	return byte(v.num), nil
}

// Bytes returns a binary chunk payload. The slice is the cell's backing
// storage; callers must not retain it across the next decode.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != TypeBytes {
		return nil, &TypeMismatchError{Want: TypeBytes, Got: v.kind}
	}
	return v.raw, nil
}

// Handle returns a canonicalized hexadecimal handle payload.
func (v Value) Handle() (string, error) {
	if v.kind != TypeHandle {
		return "", &TypeMismatchError{Want: TypeHandle, Got: v.kind}
	}
	return v.str, nil
}

// Any returns the payload as an interface value, used for generic output
// such as JSON tag listings. Bytes payloads are returned as-is.
func (v Value) Any() interface{} {
	switch v.kind {
	case TypeString, TypeHandle, TypeComment:
		return v.str
	case TypeInt16:
		return int16(v.num)
	case TypeInt32:
		return int32(v.num)
	case TypeInt64:
		return v.num
	case TypeDouble:
		return v.fl
	case TypeBool:
		return v.bit
	case TypeBytes:
		return v.raw
	}
	return nil
}
