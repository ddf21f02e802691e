package types

var _ Value = NewNullValue()

type NullValue struct{}

// NewNullValue returns the unspecified null object.
func NewNullValue() NullValue {
	return NullValue{}
}

func (v NullValue) V() any {
	return nil
}

func (v NullValue) Type() Type {
	return TypeNull
}

func (v NullValue) String() string {
	return "null"
}
