package pack

import "strings"

// Pack ids with built-in resolution rules.
const (
	// DefaultPack is used when no model is active or the model family
	// is unrecognized.
	DefaultPack = "peon"

	// HumanPack is used for codex-family models.
	HumanPack = "human"
)

// ModelInfo is the subset of the host's model descriptor the resolver
// looks at. Either field may be empty.
type ModelInfo struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
}

// ResolvePack maps a model descriptor to a pack id. A nil model
// resolves to the default pack. Matching is case-insensitive substring
// matching over the model id and provider.
//
// The claude/anthropic branch currently resolves to the same pack as
// the fallback; it is kept separate so the families can diverge later.
func ResolvePack(model *ModelInfo) string {
	if model == nil {
		return DefaultPack
	}

	id := strings.ToLower(model.ID)
	provider := strings.ToLower(model.Provider)

	if strings.Contains(id, "codex") || strings.Contains(provider, "codex") {
		return HumanPack
	}
	if strings.Contains(id, "claude") || strings.Contains(id, "anthropic") ||
		strings.Contains(provider, "claude") || strings.Contains(provider, "anthropic") {
		return DefaultPack
	}
	return DefaultPack
}
