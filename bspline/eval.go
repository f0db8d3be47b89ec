package bspline

// P evaluates the spline at parameter t. t is clamped to the domain.
func (s *Spline[T]) P(t float64) T {
	t = s.knots.Clamp(t)
	var r T
	for i, c := range s.cp {
		if b := s.knots.Basis(i, s.degree, t); b != 0 {
			r = r.Add(c.Scaled(b))
		}
	}
	return r
}

// D evaluates the first derivative of the spline at parameter t.
// t is clamped to the domain. Splines of degree 0 have a zero derivative.
//
// The derivative of a B-spline is a B-spline of one degree less, with
// control points degree/(knots[i+degree+1]-knots[i+1]) * (cp[i+1]-cp[i]).
func (s *Spline[T]) D(t float64) T {
	t = s.knots.Clamp(t)
	var r T
	if s.degree == 0 {
		return r
	}
	n := float64(s.degree)
	for i := 0; i < len(s.cp)-1; i++ {
		d := s.knots[i+s.degree+1] - s.knots[i+1]
		if d == 0 {
			continue
		}
		b := s.knots.Basis(i+1, s.degree-1, t)
		if b == 0 {
			continue
		}
		r = r.Add(s.cp[i+1].Sub(s.cp[i]).Scaled(n / d * b))
	}
	return r
}

// Speed is the magnitude of the derivative at t.
func (s *Spline[T]) Speed(t float64) float64 {
	return s.D(t).Mag()
}
