package equipment

// Reason names why a mutating operation was refused
type Reason string

// Refusal reasons
const (
	ReasonInvalidItem             Reason = "invalid_item"
	ReasonInvalidArtifact         Reason = "invalid_artifact"
	ReasonItemsLimit              Reason = "items_limit"
	ReasonArtifactsLimit          Reason = "artifacts_limit"
	ReasonItemNotFound            Reason = "item_not_found"
	ReasonArtifactNotFound        Reason = "artifact_not_found"
	ReasonInvalidSlot             Reason = "invalid_slot"
	ReasonInvalidArtifactType     Reason = "invalid_artifact_type"
	ReasonInvalidKind             Reason = "invalid_kind"
	ReasonMissingInputs           Reason = "missing_inputs"
	ReasonDuplicateInputs         Reason = "duplicate_inputs"
	ReasonRarityMismatch          Reason = "rarity_mismatch"
	ReasonItemSlotMismatch        Reason = "item_slot_mismatch"
	ReasonMaxRarity               Reason = "max_rarity"
	ReasonWrongAmount             Reason = "wrong_amount"
	ReasonNotEnoughGold           Reason = "not_enough_gold"
	ReasonForgeFailed             Reason = "forge_failed"
	ReasonInvalidElement          Reason = "invalid_element"
	ReasonAtelierOnlyHighRarities Reason = "atelier_only_legendary_or_mythic"
)

// String returns the wire form of the reason
func (r Reason) String() string {
	return string(r)
}

// Result is the outcome of a mutating operation. Required carries the count or gold
// amount the caller was short of, when that applies.
type Result struct {
	OK       bool   `json:"ok"`
	Reason   Reason `json:"reason,omitempty"`
	Required int64  `json:"required,omitempty"`
}

// Succeeded returns an ok result
func Succeeded() Result {
	return Result{OK: true}
}

// Refused returns a failed result with reason
func Refused(reason Reason) Result {
	return Result{Reason: reason}
}

// RefusedNeeding returns a failed result that reports the required amount
func RefusedNeeding(reason Reason, required int64) Result {
	return Result{Reason: reason, Required: required}
}
