package aggregate

import "enrollment-dashboard/internal/domain"

// Palette assigns chart colors. It is read-only once built; NewPalette copies
// its inputs so callers cannot change it underneath a render.
type Palette struct {
	colors []string
	byType map[domain.CourseType]string
}

func NewPalette(colors []string, byType map[domain.CourseType]string) Palette {
	p := Palette{
		colors: append([]string(nil), colors...),
		byType: make(map[domain.CourseType]string, len(byType)),
	}
	for t, c := range byType {
		p.byType[t] = c
	}
	return p
}

// DefaultPalette is the dashboard's eight chart tokens, with the four known
// course types pinned to the first four.
func DefaultPalette() Palette {
	return NewPalette(
		[]string{
			"hsl(var(--chart-1))",
			"hsl(var(--chart-2))",
			"hsl(var(--chart-3))",
			"hsl(var(--chart-4))",
			"hsl(var(--chart-5))",
			"hsl(var(--chart-6))",
			"hsl(var(--chart-7))",
			"hsl(var(--chart-8))",
		},
		map[domain.CourseType]string{
			domain.TypeBachelors: "hsl(var(--chart-1))",
			domain.TypeMasters:   "hsl(var(--chart-2))",
			domain.TypeALevel:    "hsl(var(--chart-3))",
			domain.TypeACCA:      "hsl(var(--chart-4))",
		},
	)
}

func (p Palette) Len() int { return len(p.colors) }

// At returns the positional color for index i, wrapping around the palette.
func (p Palette) At(i int) string {
	n := len(p.colors)
	if n == 0 {
		return ""
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p.colors[i]
}

// ForType returns the pinned color of a known course type. OTHER and
// unrecognized types fall back to At(i).
func (p Palette) ForType(t domain.CourseType, i int) string {
	if t != domain.TypeOther && t.Normalize() == t {
		if c, ok := p.byType[t]; ok {
			return c
		}
	}
	return p.At(i)
}

func typeOf(name string) domain.CourseType {
	return domain.CourseType(name)
}
