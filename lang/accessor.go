package lang

import "strconv"

// Accessors come in two calling conventions. The Lookup* forms are safe:
// they return a diagnostic error whose [ErrorKind] distinguishes not-found,
// wrong-type, parse, and out-of-range failures. The short forms are
// convenience wrappers over the safe forms that discard the error and
// return the zero value; they never diverge in behavior because they share
// the same code path.
//
// Name lookups scan the immediate children of a struct context; index
// lookups address any aggregate positionally, including arrays and lists.

// lookup resolves a named child and narrows it to the wanted type.
func (v *Variable) lookup(name string, want Type) (*Variable, *Error) {
	child := v.find(name)
	if child == nil {
		if v.name != "" {
			return nil, newError(ErrorNotFound, 0, 0,
				"variable `%s` not found in `%s`", name, v.name)
		}

		return nil, newError(ErrorNotFound, 0, 0,
			"variable `%s` not found", name)
	}

	if child.kind != want {
		if v.name != "" {
			return nil, newError(ErrorWrongType, 0, 0,
				"variable `%s` in `%s` is not %s", name, v.name, want)
		}

		return nil, newError(ErrorWrongType, 0, 0,
			"variable `%s` is not %s", name, want)
	}

	return child, nil
}

// lookupAt resolves a positional child and narrows it to the wanted type.
func (v *Variable) lookupAt(idx int, want Type) (*Variable, *Error) {
	if idx < 0 || idx >= len(v.items) {
		return nil, newError(ErrorOutOfRange, 0, 0,
			"index %d out of range, context holds %d variables",
			idx, len(v.items))
	}

	child := v.items[idx]
	if child.kind != want {
		return nil, newError(ErrorWrongType, 0, 0,
			"element %d is not %s", idx, want)
	}

	return child, nil
}

// Lookup returns the named child of any type, without narrowing.
func (v *Variable) Lookup(name string) (*Variable, error) {
	child := v.find(name)
	if child == nil {
		if v.name != "" {
			return nil, newError(ErrorNotFound, 0, 0,
				"variable `%s` not found in `%s`", name, v.name)
		}

		return nil, newError(ErrorNotFound, 0, 0,
			"variable `%s` not found", name)
	}

	return child, nil
}

// LookupAt returns the idx-th child of any type, without narrowing.
func (v *Variable) LookupAt(idx int) (*Variable, error) {
	if idx < 0 || idx >= len(v.items) {
		return nil, newError(ErrorOutOfRange, 0, 0,
			"index %d out of range, context holds %d variables",
			idx, len(v.items))
	}

	return v.items[idx], nil
}

// LookupInt returns the named int variable's decoded value.
func (v *Variable) LookupInt(name string) (int, error) {
	child, err := v.lookup(name, TypeInt)
	if err != nil {
		return 0, err
	}

	n, perr := strconv.Atoi(child.raw)
	if perr != nil {
		return 0, wrapError(ErrorParse, perr,
			"failed to parse variable `%s` as int", name)
	}

	return n, nil
}

// LookupDouble returns the named double variable's decoded value.
func (v *Variable) LookupDouble(name string) (float64, error) {
	child, err := v.lookup(name, TypeDouble)
	if err != nil {
		return 0, err
	}

	f, perr := strconv.ParseFloat(child.raw, 64)
	if perr != nil {
		return 0, wrapError(ErrorParse, perr,
			"failed to parse variable `%s` as double", name)
	}

	return f, nil
}

// LookupBool returns the named bool variable's value. The conversion is
// lenient: any literal text other than `true` decodes to false.
func (v *Variable) LookupBool(name string) (bool, error) {
	child, err := v.lookup(name, TypeBool)
	if err != nil {
		return false, err
	}

	return child.raw == "true", nil
}

// LookupString returns the named string variable's decoded value.
func (v *Variable) LookupString(name string) (string, error) {
	child, err := v.lookup(name, TypeString)
	if err != nil {
		return "", err
	}

	return child.raw, nil
}

// LookupArray returns the named array variable as a sub-context.
func (v *Variable) LookupArray(name string) (*Variable, error) {
	child, err := v.lookup(name, TypeArray)
	if err != nil {
		return nil, err
	}

	return child, nil
}

// LookupList returns the named list variable as a sub-context.
func (v *Variable) LookupList(name string) (*Variable, error) {
	child, err := v.lookup(name, TypeList)
	if err != nil {
		return nil, err
	}

	return child, nil
}

// LookupStruct returns the named struct variable as a sub-context.
func (v *Variable) LookupStruct(name string) (*Variable, error) {
	child, err := v.lookup(name, TypeStruct)
	if err != nil {
		return nil, err
	}

	return child, nil
}

// LookupIntAt returns the idx-th element's decoded int value.
func (v *Variable) LookupIntAt(idx int) (int, error) {
	child, err := v.lookupAt(idx, TypeInt)
	if err != nil {
		return 0, err
	}

	n, perr := strconv.Atoi(child.raw)
	if perr != nil {
		return 0, wrapError(ErrorParse, perr,
			"failed to parse element %d as int", idx)
	}

	return n, nil
}

// LookupDoubleAt returns the idx-th element's decoded double value.
func (v *Variable) LookupDoubleAt(idx int) (float64, error) {
	child, err := v.lookupAt(idx, TypeDouble)
	if err != nil {
		return 0, err
	}

	f, perr := strconv.ParseFloat(child.raw, 64)
	if perr != nil {
		return 0, wrapError(ErrorParse, perr,
			"failed to parse element %d as double", idx)
	}

	return f, nil
}

// LookupBoolAt returns the idx-th element's bool value, with the same
// lenient conversion as [Variable.LookupBool].
func (v *Variable) LookupBoolAt(idx int) (bool, error) {
	child, err := v.lookupAt(idx, TypeBool)
	if err != nil {
		return false, err
	}

	return child.raw == "true", nil
}

// LookupStringAt returns the idx-th element's decoded string value.
func (v *Variable) LookupStringAt(idx int) (string, error) {
	child, err := v.lookupAt(idx, TypeString)
	if err != nil {
		return "", err
	}

	return child.raw, nil
}

// LookupArrayAt returns the idx-th element as an array sub-context.
func (v *Variable) LookupArrayAt(idx int) (*Variable, error) {
	child, err := v.lookupAt(idx, TypeArray)
	if err != nil {
		return nil, err
	}

	return child, nil
}

// LookupListAt returns the idx-th element as a list sub-context.
func (v *Variable) LookupListAt(idx int) (*Variable, error) {
	child, err := v.lookupAt(idx, TypeList)
	if err != nil {
		return nil, err
	}

	return child, nil
}

// LookupStructAt returns the idx-th element as a struct sub-context.
func (v *Variable) LookupStructAt(idx int) (*Variable, error) {
	child, err := v.lookupAt(idx, TypeStruct)
	if err != nil {
		return nil, err
	}

	return child, nil
}

// Int returns the named int value, or 0 on any error.
func (v *Variable) Int(name string) int {
	n, _ := v.LookupInt(name)

	return n
}

// Double returns the named double value, or 0 on any error.
func (v *Variable) Double(name string) float64 {
	f, _ := v.LookupDouble(name)

	return f
}

// Bool returns the named bool value, or false on any error.
func (v *Variable) Bool(name string) bool {
	b, _ := v.LookupBool(name)

	return b
}

// String returns the named string value, or "" on any error.
func (v *Variable) String(name string) string {
	s, _ := v.LookupString(name)

	return s
}

// Array returns the named array sub-context, or nil on any error.
func (v *Variable) Array(name string) *Variable {
	child, _ := v.LookupArray(name)

	return child
}

// List returns the named list sub-context, or nil on any error.
func (v *Variable) List(name string) *Variable {
	child, _ := v.LookupList(name)

	return child
}

// Struct returns the named struct sub-context, or nil on any error.
func (v *Variable) Struct(name string) *Variable {
	child, _ := v.LookupStruct(name)

	return child
}

// IntAt returns the idx-th int value, or 0 on any error.
func (v *Variable) IntAt(idx int) int {
	n, _ := v.LookupIntAt(idx)

	return n
}

// DoubleAt returns the idx-th double value, or 0 on any error.
func (v *Variable) DoubleAt(idx int) float64 {
	f, _ := v.LookupDoubleAt(idx)

	return f
}

// BoolAt returns the idx-th bool value, or false on any error.
func (v *Variable) BoolAt(idx int) bool {
	b, _ := v.LookupBoolAt(idx)

	return b
}

// StringAt returns the idx-th string value, or "" on any error.
func (v *Variable) StringAt(idx int) string {
	s, _ := v.LookupStringAt(idx)

	return s
}

// ArrayAt returns the idx-th array sub-context, or nil on any error.
func (v *Variable) ArrayAt(idx int) *Variable {
	child, _ := v.LookupArrayAt(idx)

	return child
}

// ListAt returns the idx-th list sub-context, or nil on any error.
func (v *Variable) ListAt(idx int) *Variable {
	child, _ := v.LookupListAt(idx)

	return child
}

// StructAt returns the idx-th struct sub-context, or nil on any error.
func (v *Variable) StructAt(idx int) *Variable {
	child, _ := v.LookupStructAt(idx)

	return child
}
