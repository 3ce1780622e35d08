package buddhabrot

// Complex is a complex number with value semantics.
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// Add returns a + b.
func (a Complex) Add(b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Mul returns a * b.
func (a Complex) Mul(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// SqMag returns the squared magnitude re² + im².
func (a Complex) SqMag() float64 {
	return a.Re*a.Re + a.Im*a.Im
}
