package member

import "fmt"

// Descriptor identifies one structural member and its place in the stack.
// Storey 1 is the lowest level, TotalStoreys is the roof.
type Descriptor struct {
	Type            string  `json:"type"`
	LengthM         float64 `json:"length_m"`
	Storey          int     `json:"storey"`
	TotalStoreys    int     `json:"total_storeys"`
	TributaryWidthM float64 `json:"tributary_width_m"`
	Designation     string  `json:"designation,omitempty"`
}

// GeometryError reports member geometry that cannot be analysed.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid member geometry: %s", e.Reason)
}

// Validate rejects the whole analysis before any computation runs.
func (d Descriptor) Validate() error {
	if d.LengthM <= 0 {
		return &GeometryError{Reason: fmt.Sprintf("length must be positive, got %.3f m", d.LengthM)}
	}
	if d.TotalStoreys < 1 {
		return &GeometryError{Reason: fmt.Sprintf("total storeys must be at least 1, got %d", d.TotalStoreys)}
	}
	if d.Storey < 1 || d.Storey > d.TotalStoreys {
		return &GeometryError{Reason: fmt.Sprintf("storey %d outside [1, %d]", d.Storey, d.TotalStoreys)}
	}
	if d.TributaryWidthM < 0 {
		return &GeometryError{Reason: fmt.Sprintf("tributary width must not be negative, got %.3f m", d.TributaryWidthM)}
	}
	return nil
}

// IsRoof reports whether the member sits on the topmost storey.
func (d Descriptor) IsRoof() bool {
	return d.Storey == d.TotalStoreys
}
