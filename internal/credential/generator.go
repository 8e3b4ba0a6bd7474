package credential

// Generator draws a fresh Source for every string it produces.
type Generator struct {
	// NewSource defaults to the package NewSource.
	NewSource func() Source
	Policy    IndexPolicy
}

func (g *Generator) source() Source {
	if g.NewSource != nil {
		return g.NewSource()
	}
	return NewSource()
}

// Token returns a new token.
func (g *Generator) Token() string {
	return GenerateToken(g.source())
}

// Password returns a new password sampled from pool under g.Policy.
func (g *Generator) Password(pool []rune) (string, error) {
	return GeneratePassword(g.source(), pool, g.Policy)
}
