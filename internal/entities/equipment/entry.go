package equipment

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Item is a piece of gear worn in one of the four slots.
// Only Element may change after creation, and only through the atelier.
type Item struct {
	ID        string  `json:"id"`
	Kind      Kind    `json:"kind"`
	Slot      Slot    `json:"slot"`
	Element   Element `json:"element"`
	Rarity    Rarity  `json:"rarity"`
	Name      string  `json:"name"`
	CreatedAt int64   `json:"createdAt"`
}

// GetID returns the item's ID
func (i *Item) GetID() string {
	return i.ID
}

// GetType returns the entity type for rpg-toolkit
func (i *Item) GetType() string {
	return string(KindItem)
}

// IsValid reports whether slot, element and rarity are inside the vocabulary. The id is
// not checked; stored items always carry one and loadouts built by callers may not.
func (i *Item) IsValid() bool {
	return i != nil && i.Slot.IsValid() && i.Element.IsValid() && i.Rarity.IsValid()
}

// Artifact is a battle trinket; one of each type may be equipped
type Artifact struct {
	ID           string       `json:"id"`
	Kind         Kind         `json:"kind"`
	ArtifactType ArtifactType `json:"artifactType"`
	Rarity       Rarity       `json:"rarity"`
	Name         string       `json:"name"`
	CreatedAt    int64        `json:"createdAt"`
}

// GetID returns the artifact's ID
func (a *Artifact) GetID() string {
	return a.ID
}

// GetType returns the entity type for rpg-toolkit
func (a *Artifact) GetType() string {
	return string(KindArtifact)
}

// IsValid reports whether type and rarity are inside the vocabulary; the id is not
// checked
func (a *Artifact) IsValid() bool {
	return a != nil && a.ArtifactType.IsValid() && a.Rarity.IsValid()
}

var (
	_ core.Entity = (*Item)(nil)
	_ core.Entity = (*Artifact)(nil)
)

// findByID returns the entry carrying id, or the zero value
func findByID[E core.Entity](entries []E, id string) E {
	var zero E
	for _, entry := range entries {
		if entry.GetID() == id {
			return entry
		}
	}
	return zero
}

// withoutIDs keeps the entries whose id is not in ids. It reuses the backing array.
func withoutIDs[E core.Entity](entries []E, ids map[string]struct{}) []E {
	kept := entries[:0]
	for _, entry := range entries {
		if _, drop := ids[entry.GetID()]; !drop {
			kept = append(kept, entry)
		}
	}
	return kept
}

// appendUnique appends entry unless one with the same id is already in seen
func appendUnique[E core.Entity](entries []E, seen map[string]struct{}, entry E) []E {
	if _, dup := seen[entry.GetID()]; dup {
		return entries
	}
	seen[entry.GetID()] = struct{}{}
	return append(entries, entry)
}

// clearRefs empties every reference that points at one of ids
func clearRefs[K comparable](refs map[K]string, ids map[string]struct{}) {
	for key, id := range refs {
		if _, drop := ids[id]; drop {
			refs[key] = ""
		}
	}
}
