package world

// Surface is a render surface with named float material parameters.
type Surface struct {
	name   string
	params map[string]float64
}

// NewSurface creates an empty surface.
func NewSurface(name string) *Surface {
	return &Surface{name: name, params: make(map[string]float64)}
}

func (s *Surface) Name() string {
	return s.name
}

// SetParameter stores a material parameter.
func (s *Surface) SetParameter(name string, value float64) {
	s.params[name] = value
}

// Parameter returns a stored parameter and whether it was ever set.
func (s *Surface) Parameter(name string) (float64, bool) {
	v, ok := s.params[name]
	return v, ok
}
