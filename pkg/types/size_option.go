package types

// SizeOption is one selectable cake size with its price multiplier relative
// to the cake's base price.
type SizeOption struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// SizeOptions is the ordered option set stored on a cake.
type SizeOptions []SizeOption

// Find returns the option matching name, or false when the size is unknown.
func (s SizeOptions) Find(name string) (SizeOption, bool) {
	for _, opt := range s {
		if opt.Name == name {
			return opt, true
		}
	}
	return SizeOption{}, false
}
