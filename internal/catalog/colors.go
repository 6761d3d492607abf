package catalog

import (
	"encoding/json"
	"strings"
)

// Colors by leading spectral class letter, hottest first.
var spectralColors = map[byte]string{
	'O': "#9bb0ff", // blue
	'B': "#aabfff", // blue-white
	'A': "#cad7ff", // white
	'F': "#f8f7ff", // yellow-white
	'G': "#fff4ea", // yellow, like the Sun
	'K': "#ffd2a1", // orange
	'M': "#ffcc6f", // red-orange
}

// DefaultStarColor is used for classes outside OBAFGKM (white dwarfs, brown dwarfs).
const DefaultStarColor = "#ffffff"

// StarColor returns the display color for a spectral class such as "G2V".
func StarColor(spectralClass string) string {
	s := strings.TrimSpace(spectralClass)
	if s == "" {
		return DefaultStarColor
	}
	if c, ok := spectralColors[s[0]]; ok {
		return c
	}
	return DefaultStarColor
}

// MarshalJSON encodes a sign as a [name, degrees] pair.
func (z ZodiacSign) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{z.Name, z.StartDeg})
}
