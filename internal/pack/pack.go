// Package pack models warble sound packs: named collections of
// voice-line audio assets grouped by trigger category.
package pack

// Category is the situational trigger class for a sound.
type Category string

const (
	CategoryGreeting    Category = "greeting"
	CategoryAcknowledge Category = "acknowledge"
	CategoryComplete    Category = "complete"
	CategoryError       Category = "error"
	CategoryAnnoyed     Category = "annoyed"

	// CategoryPermission is reserved: valid in manifests and commands,
	// but no host event routes to it yet.
	CategoryPermission Category = "permission"
)

// Categories returns all known categories in declaration order.
func Categories() []Category {
	return []Category{
		CategoryGreeting,
		CategoryAcknowledge,
		CategoryComplete,
		CategoryError,
		CategoryAnnoyed,
		CategoryPermission,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryGreeting, CategoryAcknowledge, CategoryComplete,
		CategoryError, CategoryAnnoyed, CategoryPermission:
		return true
	default:
		return false
	}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// SoundEntry pairs an asset filename with the voice line it speaks.
// File is unique within its category's list.
type SoundEntry struct {
	File string `json:"file"`
	Line string `json:"line"`
}

// Manifest describes one sound pack. Immutable once loaded.
type Manifest struct {
	ID     string                    `json:"id"`
	Name   string                    `json:"name"`
	Sounds map[Category][]SoundEntry `json:"sounds"`
}

// Entries returns the sound list for a category, or nil if the
// category is absent from the pack.
func (m *Manifest) Entries(c Category) []SoundEntry {
	if m == nil || m.Sounds == nil {
		return nil
	}
	return m.Sounds[c]
}
