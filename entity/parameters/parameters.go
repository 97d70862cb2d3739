package parameters

// Placeholder values of the two-field sector. They are taken from the paper
// as-is until the iterative solve is implemented.
const (
	Kappa     = 1.997e-4
	VChi      = 1.002e-29
	LambdaChi = 9.98e-11
	Gamma     = 2.00e-2
)

type Parameters struct {
	G         float64 `json:"g"`
	Lambda    float64 `json:"lambda"`
	XMin      float64 `json:"X_min"`
	Kappa     float64 `json:"kappa"`
	VChi      float64 `json:"v_chi"`
	LambdaChi float64 `json:"lambda_chi"`
	Gamma     float64 `json:"gamma"`
}

type Field struct {
	Name  string
	Value float64
}

// Fields returns the parameters in display order.
func (p Parameters) Fields() []Field {
	return []Field{
		{"g", p.G},
		{"lambda", p.Lambda},
		{"X_min", p.XMin},
		{"kappa", p.Kappa},
		{"v_chi", p.VChi},
		{"lambda_chi", p.LambdaChi},
		{"gamma", p.Gamma},
	}
}
