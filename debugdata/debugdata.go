package debugdata

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/bdwalton/termcore/capability"
	"github.com/bdwalton/termcore/session"
)

// Report describes what the session found out about the terminal:
// its names, encoding, speed, size, detected families and the length
// of every capability string it has.
func Report(s *session.Session) (*structpb.Struct, error) {
	id := s.Identity()
	w, h := s.CurrentGeometry()

	families := []any{}
	for _, n := range id.Families.Names() {
		families = append(families, n)
	}

	fields := map[string]any{
		"term_type":     id.TermType,
		"term_filename": id.TermFileName,
		"device":        s.DevicePath(),
		"locale":        s.Locale(),
		"encoding":      s.Encoding().String(),
		"utf8_console":  s.UTF8Console(),
		"baud":          s.Baud(),
		"width":         w,
		"height":        h,
		"families":      families,
		"palette":       s.CanChangeColorPalette(),
	}
	if em := s.Emitter(); em != nil {
		fields["emitter"] = em.Name()
	}
	if d := s.Driver(); d != nil {
		fields["console"] = d.Name()
	}
	if src := s.Capabilities(); src != nil {
		fields["caps"] = capLengths(src)
		fields["flags"] = capFlags(src)
	}

	st, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("couldn't build debug report: %w", err)
	}
	return st, nil
}

// Render returns the report as indented JSON.
func Render(s *session.Session) ([]byte, error) {
	st, err := Report(s)
	if err != nil {
		return nil, err
	}

	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("couldn't render debug report: %w", err)
	}
	return b, nil
}

// capLengths maps each string capability the terminal has to its
// length with padding removed.
func capLengths(src capability.Source) map[string]any {
	m := make(map[string]any)
	for _, c := range capability.All(capability.KindString) {
		if seq, ok := src.String(c); ok {
			m[c.String()] = len(capability.StripPadding(seq))
		}
	}
	return m
}

func capFlags(src capability.Source) map[string]any {
	m := make(map[string]any)
	for _, c := range capability.All(capability.KindBool) {
		m[c.String()] = src.Bool(c)
	}
	for _, c := range capability.All(capability.KindNumber) {
		if n := src.Number(c); n >= 0 {
			m[c.String()] = n
		}
	}
	return m
}
