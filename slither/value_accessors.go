package slither

// AsNumber returns the wrapped integer and true if v is a Number.
func (v Value) AsNumber() (int32, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.data.(int32), true
}

// AsString returns the wrapped string and true if v is a String.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.data.(string), true
}

// AsBool returns the wrapped boolean and true if v is a Bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.data.(bool), true
}

// AsClass returns the wrapped class definition and true if v is a Class.
func (v Value) AsClass() (*ClassDef, bool) {
	if v.kind != KindClass {
		return nil, false
	}
	return v.data.(*ClassDef), true
}

// AsInstance returns the wrapped instance and true if v is an Instance.
func (v Value) AsInstance() (*Instance, bool) {
	if v.kind != KindInstance {
		return nil, false
	}
	return v.data.(*Instance), true
}
