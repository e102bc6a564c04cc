package capability

import "strconv"

// Static is an in-memory Source. It backs tests and terminals that
// are described entirely by configuration.
type Static struct {
	Strings map[Cap]string
	Bools   map[Cap]bool
	Numbers map[Cap]int
}

func NewStatic() *Static {
	return &Static{
		Strings: make(map[Cap]string),
		Bools:   make(map[Cap]bool),
		Numbers: make(map[Cap]int),
	}
}

func (s *Static) String(c Cap) (string, bool) {
	v, ok := s.Strings[c]
	return v, ok && v != ""
}

func (s *Static) Bool(c Cap) bool {
	return s.Bools[c]
}

func (s *Static) Number(c Cap) int {
	if n, ok := s.Numbers[c]; ok {
		return n
	}
	return -1
}

func (s *Static) Instantiate(seq string, params ...int) string {
	return Instantiate(seq, params...)
}

// Override layers local changes over another Source. Quirk fixups
// and user configuration are applied this way so the underlying
// description stays untouched.
type Override struct {
	Base Source
	*Static

	cleared map[Cap]bool
}

func NewOverride(base Source) *Override {
	return &Override{
		Base:    base,
		Static:  NewStatic(),
		cleared: make(map[Cap]bool),
	}
}

// SetString replaces c. An empty seq removes the capability.
func (o *Override) SetString(c Cap, seq string) {
	if seq == "" {
		delete(o.Strings, c)
		o.cleared[c] = true
		return
	}
	delete(o.cleared, c)
	o.Strings[c] = seq
}

// SetDefault sets c only when the terminal doesn't already have it.
func (o *Override) SetDefault(c Cap, seq string) {
	if _, ok := o.String(c); !ok {
		o.SetString(c, seq)
	}
}

func (o *Override) SetBool(c Cap, v bool) {
	o.Bools[c] = v
}

func (o *Override) SetNumber(c Cap, n int) {
	o.Numbers[c] = n
}

// Set applies a textual override by terminfo name, as found in
// configuration files. Booleans accept "true"/"false", numbers
// decimal digits.
func (o *Override) Set(name, value string) error {
	c, ok := Lookup(name)
	if !ok {
		return &UnknownCapError{Name: name}
	}

	switch c.Kind() {
	case KindBool:
		switch value {
		case "true", "1", "yes":
			o.SetBool(c, true)
		case "false", "0", "no", "":
			o.SetBool(c, false)
		default:
			return &BadValueError{Name: name, Value: value}
		}
	case KindNumber:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return &BadValueError{Name: name, Value: value}
		}
		o.SetNumber(c, n)
	default:
		o.SetString(c, value)
	}
	return nil
}

func (o *Override) String(c Cap) (string, bool) {
	if v, ok := o.Strings[c]; ok && v != "" {
		return v, true
	}
	if o.cleared[c] || o.Base == nil {
		return "", false
	}
	return o.Base.String(c)
}

func (o *Override) Bool(c Cap) bool {
	if v, ok := o.Bools[c]; ok {
		return v
	}
	if o.Base == nil {
		return false
	}
	return o.Base.Bool(c)
}

func (o *Override) Number(c Cap) int {
	if n, ok := o.Numbers[c]; ok {
		return n
	}
	if o.Base == nil {
		return -1
	}
	return o.Base.Number(c)
}

func (o *Override) Instantiate(seq string, params ...int) string {
	if o.Base != nil {
		return o.Base.Instantiate(seq, params...)
	}
	return Instantiate(seq, params...)
}

type UnknownCapError struct {
	Name string
}

func (e *UnknownCapError) Error() string {
	return "unknown capability " + e.Name
}

type BadValueError struct {
	Name, Value string
}

func (e *BadValueError) Error() string {
	return "bad value " + e.Value + " for capability " + e.Name
}
