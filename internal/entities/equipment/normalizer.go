package equipment

import (
	"encoding/json"

	"github.com/KirkDiggler/cardastika-api/internal/pkg/clock"
	"github.com/KirkDiggler/cardastika-api/internal/pkg/idgen"
)

// Normalizer turns raw entries and documents into values inside the vocabulary.
// It never fails: unusable input becomes "not ok" or is dropped.
type Normalizer struct {
	ItemIDs     idgen.Generator
	ArtifactIDs idgen.Generator
	Clock       clock.Clock
}

// NewNormalizer mints "item_<uuid>" and "art_<uuid>" ids and stamps wall-clock time
func NewNormalizer() *Normalizer {
	return &Normalizer{
		ItemIDs:     idgen.NewUUID(idgen.ItemPrefix),
		ArtifactIDs: idgen.NewUUID(idgen.ArtifactPrefix),
		Clock:       clock.New(),
	}
}

func (n *Normalizer) now() int64 {
	return clock.UnixMilli(n.Clock)
}

// Item normalizes a raw item. The slot comes from Slot, or from Type when Slot is empty.
func (n *Normalizer) Item(in ItemInput) (*Item, bool) {
	rawSlot := in.Slot
	if rawSlot == "" {
		rawSlot = in.Type
	}
	slot := NormalizeSlot(rawSlot)
	rarity := NormalizeRarity(in.Rarity)
	element := NormalizeElement(in.Element)
	if slot == "" || rarity == "" || element == "" {
		return nil, false
	}

	item := &Item{
		ID:        in.ID,
		Kind:      KindItem,
		Slot:      slot,
		Element:   element,
		Rarity:    rarity,
		Name:      in.Name,
		CreatedAt: in.CreatedAt,
	}
	if item.ID == "" {
		item.ID = n.ItemIDs.Generate()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = n.now()
	}
	return item, true
}

// Artifact normalizes a raw artifact. The type comes from ArtifactType, or from Type.
func (n *Normalizer) Artifact(in ArtifactInput) (*Artifact, bool) {
	rawType := in.ArtifactType
	if rawType == "" {
		rawType = in.Type
	}
	artifactType := NormalizeArtifactType(rawType)
	rarity := NormalizeRarity(in.Rarity)
	if artifactType == "" || rarity == "" {
		return nil, false
	}

	artifact := &Artifact{
		ID:           in.ID,
		Kind:         KindArtifact,
		ArtifactType: artifactType,
		Rarity:       rarity,
		Name:         in.Name,
		CreatedAt:    in.CreatedAt,
	}
	if artifact.ID == "" {
		artifact.ID = n.ArtifactIDs.Generate()
	}
	if artifact.CreatedAt == 0 {
		artifact.CreatedAt = n.now()
	}
	return artifact, true
}

// EmptyState returns a default state stamped with the current time
func (n *Normalizer) EmptyState() *State {
	return NewEmptyState(n.now())
}

// DecodeState parses a persisted document. Anything unreadable reads as empty:
// non-object documents, non-array lists, invalid entries and unknown equip keys are
// dropped, duplicate ids keep their first occurrence and equip references that do not
// resolve to an entry of the matching slot or type are cleared.
func (n *Normalizer) DecodeState(data []byte) *State {
	var raw rawState
	if startsWith(data, '{') {
		if err := json.Unmarshal(data, &raw); err != nil {
			raw = rawState{}
		}
	}

	state := n.EmptyState()
	if v := int(raw.V); v != 0 {
		state.V = v
	}
	if at := int64(raw.UpdatedAt); at != 0 {
		state.UpdatedAt = at
	}

	seenItems := make(map[string]struct{})
	for _, elem := range raw.Items {
		var in ItemInput
		_ = json.Unmarshal(elem, &in)
		if item, ok := n.Item(in); ok {
			state.Items = appendUnique(state.Items, seenItems, item)
		}
	}

	seenArtifacts := make(map[string]struct{})
	for _, elem := range raw.Artifacts {
		var in ArtifactInput
		_ = json.Unmarshal(elem, &in)
		if artifact, ok := n.Artifact(in); ok {
			state.Artifacts = appendUnique(state.Artifacts, seenArtifacts, artifact)
		}
	}

	for _, slot := range AllSlots() {
		id := string(raw.Equipped.Items[string(slot)])
		if id == "" {
			continue
		}
		if item := state.ItemByID(id); item != nil && item.Slot == slot {
			state.Equipped.Items[slot] = id
		}
	}
	for _, t := range AllArtifactTypes() {
		id := string(raw.Equipped.Artifacts[string(t)])
		if id == "" {
			continue
		}
		if artifact := state.ArtifactByID(id); artifact != nil && artifact.ArtifactType == t {
			state.Equipped.Artifacts[t] = id
		}
	}

	return state
}

// State re-normalizes a typed state. Normalizing a normalized state changes nothing.
func (n *Normalizer) State(s *State) *State {
	if s == nil {
		return n.EmptyState()
	}
	data, err := json.Marshal(s)
	if err != nil {
		return n.EmptyState()
	}
	return n.DecodeState(data)
}
