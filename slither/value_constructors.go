package slither

// NewNone returns the singleton-shaped None value. Since Value is a plain
// struct this allocates nothing; every None value compares equal by kind.
func NewNone() Value {
	return Value{kind: KindNone}
}

// NewNumber wraps a signed 32-bit integer.
func NewNumber(n int32) Value {
	return Value{kind: KindNumber, data: n}
}

// NewString wraps a string.
func NewString(s string) Value {
	return Value{kind: KindString, data: s}
}

// NewBool wraps a boolean.
func NewBool(b bool) Value {
	return Value{kind: KindBool, data: b}
}

// NewClassValue wraps a class definition.
func NewClassValue(c *ClassDef) Value {
	return Value{kind: KindClass, data: c}
}

// NewInstanceValue wraps an instance reference.
func NewInstanceValue(i *Instance) Value {
	return Value{kind: KindInstance, data: i}
}
