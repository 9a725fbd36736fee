package models

// Category is a Bristol stool scale value. Only 1..7 are valid, but values
// outside that range are kept as-is when read back from storage.
type Category int

const (
	CategoryNone Category = 0
	CategoryMin  Category = 1
	CategoryMax  Category = 7
)

func (c Category) Valid() bool {
	return c >= CategoryMin && c <= CategoryMax
}

// Tone groups categories the way the calendar colours them.
type Tone string

const (
	ToneHard    Tone = "hard"
	ToneIdeal   Tone = "ideal"
	ToneLoose   Tone = "loose"
	ToneUnknown Tone = "unknown"
)

func (c Category) Tone() Tone {
	switch {
	case c == 1 || c == 2:
		return ToneHard
	case c == 3 || c == 4:
		return ToneIdeal
	case c >= 5 && c <= 7:
		return ToneLoose
	default:
		return ToneUnknown
	}
}

// Categories enumerates the valid scale in ascending order.
func Categories() []Category {
	out := make([]Category, 0, CategoryMax)
	for c := CategoryMin; c <= CategoryMax; c++ {
		out = append(out, c)
	}
	return out
}
