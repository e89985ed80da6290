package equipment

// SchemaVersion is written into every persisted state document
const SchemaVersion = 1

// EquippedRefs holds the equipped id per slot and per artifact type; "" means empty.
// Normalized states always carry every key.
type EquippedRefs struct {
	Items     map[Slot]string         `json:"items"`
	Artifacts map[ArtifactType]string `json:"artifacts"`
}

// State is the persisted equipment aggregate of one owner
type State struct {
	V         int          `json:"v"`
	Items     []*Item      `json:"items"`
	Artifacts []*Artifact  `json:"artifacts"`
	Equipped  EquippedRefs `json:"equipped"`
	UpdatedAt int64        `json:"updatedAt"`
}

// Counts is a pair of item and artifact tallies
type Counts struct {
	Items     int `json:"items"`
	Artifacts int `json:"artifacts"`
}

// NewEmptyState returns a structurally complete state with no entries
func NewEmptyState(now int64) *State {
	return &State{
		V:         SchemaVersion,
		Items:     []*Item{},
		Artifacts: []*Artifact{},
		Equipped:  emptyRefs(),
		UpdatedAt: now,
	}
}

func emptyRefs() EquippedRefs {
	refs := EquippedRefs{
		Items:     make(map[Slot]string, len(AllSlots())),
		Artifacts: make(map[ArtifactType]string, len(AllArtifactTypes())),
	}
	for _, slot := range AllSlots() {
		refs.Items[slot] = ""
	}
	for _, t := range AllArtifactTypes() {
		refs.Artifacts[t] = ""
	}
	return refs
}

// ItemByID returns the item with id, or nil
func (s *State) ItemByID(id string) *Item {
	return findByID(s.Items, id)
}

// ArtifactByID returns the artifact with id, or nil
func (s *State) ArtifactByID(id string) *Artifact {
	return findByID(s.Artifacts, id)
}

// StoredCounts counts entries that are not equipped. Equipped entries do not count
// against the storage cap.
func (s *State) StoredCounts() Counts {
	equippedItems := make(map[string]struct{})
	for _, id := range s.Equipped.Items {
		if id != "" {
			equippedItems[id] = struct{}{}
		}
	}
	equippedArtifacts := make(map[string]struct{})
	for _, id := range s.Equipped.Artifacts {
		if id != "" {
			equippedArtifacts[id] = struct{}{}
		}
	}

	var counts Counts
	for _, item := range s.Items {
		if _, ok := equippedItems[item.ID]; !ok {
			counts.Items++
		}
	}
	for _, artifact := range s.Artifacts {
		if _, ok := equippedArtifacts[artifact.ID]; !ok {
			counts.Artifacts++
		}
	}
	return counts
}

// EquippedItems resolves the equipped item references in slot order, skipping dangling ones
func (s *State) EquippedItems() []*Item {
	out := make([]*Item, 0, len(AllSlots()))
	for _, slot := range AllSlots() {
		id := s.Equipped.Items[slot]
		if id == "" {
			continue
		}
		if item := s.ItemByID(id); item != nil {
			out = append(out, item)
		}
	}
	return out
}

// EquippedArtifacts resolves the equipped artifact references in type order
func (s *State) EquippedArtifacts() []*Artifact {
	out := make([]*Artifact, 0, len(AllArtifactTypes()))
	for _, t := range AllArtifactTypes() {
		id := s.Equipped.Artifacts[t]
		if id == "" {
			continue
		}
		if artifact := s.ArtifactByID(id); artifact != nil {
			out = append(out, artifact)
		}
	}
	return out
}

// RemoveItems drops the items with the given ids and clears any slot pointing at them
func (s *State) RemoveItems(ids map[string]struct{}) {
	s.Items = withoutIDs(s.Items, ids)
	clearRefs(s.Equipped.Items, ids)
}

// RemoveArtifacts drops the artifacts with the given ids and clears their references
func (s *State) RemoveArtifacts(ids map[string]struct{}) {
	s.Artifacts = withoutIDs(s.Artifacts, ids)
	clearRefs(s.Equipped.Artifacts, ids)
}
