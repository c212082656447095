package generator

// Shuffle permutes values in place (Fisher-Yates).
func Shuffle[T any](g *Generator, values []T) {
	for i := len(values) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		values[i], values[j] = values[j], values[i]
	}
}

// Shuffle permutes values in place.
func (g *Generator) Shuffle(values []string) {
	Shuffle(g, values)
}

func (g *Generator) shuffled(values []string) []string {
	out := append([]string(nil), values...)
	g.Shuffle(out)
	return out
}
