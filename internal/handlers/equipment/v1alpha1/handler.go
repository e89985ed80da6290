// Package v1alpha1 serves the equipment service over gRPC
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/cardastika-api/internal/engine/combat"
	entities "github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
	"github.com/KirkDiggler/cardastika-api/internal/orchestrators/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/orchestrators/forge"
)

// HandlerConfig holds dependencies for the equipment handler
type HandlerConfig struct {
	EquipmentService equipment.Service
	ForgeService     forge.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EquipmentService == nil {
		vb.RequiredField("EquipmentService")
	}
	if c.ForgeService == nil {
		vb.RequiredField("ForgeService")
	}

	return vb.Build()
}

// Handler implements EquipmentServiceServer on top of the orchestrators
type Handler struct {
	UnimplementedEquipmentServiceServer
	equipmentService equipment.Service
	forgeService     forge.Service
}

// NewHandler creates a new equipment handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		equipmentService: cfg.EquipmentService,
		forgeService:     cfg.ForgeService,
	}, nil
}

// unary decodes the request into I, runs fn and encodes its output. Errors leave as
// gRPC status errors.
func unary[I, O any](
	ctx context.Context,
	req *structpb.Struct,
	fn func(context.Context, *I) (*O, error),
) (*structpb.Struct, error) {
	in := new(I)
	if err := Decode(req, in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := fn(ctx, in)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := Encode(out)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// GetSummary returns counts, limits, the equipped loadout, bonuses, rates and gold
func (h *Handler) GetSummary(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.GetSummary)
}

// GetState returns the owner's normalized state
func (h *Handler) GetState(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.GetState)
}

// AddItem adds an item to storage
func (h *Handler) AddItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.AddItem)
}

// AddArtifact adds an artifact to storage
func (h *Handler) AddArtifact(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.AddArtifact)
}

// EquipItem puts an item into its slot
func (h *Handler) EquipItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.EquipItem)
}

// UnequipItem clears a slot
func (h *Handler) UnequipItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.UnequipItem)
}

// EquipArtifact equips an artifact under its type
func (h *Handler) EquipArtifact(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.EquipArtifact)
}

// UnequipArtifact clears an artifact type
func (h *Handler) UnequipArtifact(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.UnequipArtifact)
}

// EquipBest equips the highest rarity entry everywhere it improves the loadout
func (h *Handler) EquipBest(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.EquipBest)
}

// SeedDemo fills an empty inventory with a demo loadout
func (h *Handler) SeedDemo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.SeedDemo)
}

// ApplyToDeck bonuses a deck and its HP with the equipped items
func (h *Handler) ApplyToDeck(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.equipmentService.ApplyItemsToDeckAndHP)
}

// PreviewCombatInput describes one exchange of blows to run through a fresh runtime
type PreviewCombatInput struct {
	OwnerID        string                   `json:"ownerId,omitempty"`
	Mode           string                   `json:"mode"`
	Artifacts      []entities.ArtifactInput `json:"artifacts,omitempty"`
	OutgoingDamage float64                  `json:"outgoingDamage"`
	IncomingDamage float64                  `json:"incomingDamage"`
	MaxHP          float64                  `json:"maxHp"`
	KillerHP       float64                  `json:"killerHp"`
	KillerMaxHP    float64                  `json:"killerMaxHp"`
}

// PreviewCombatOutput reports every artifact effect for the exchange
type PreviewCombatOutput struct {
	Runtime  *combat.Runtime       `json:"runtime"`
	Outgoing combat.OutgoingDamage `json:"outgoing"`
	Incoming combat.IncomingDamage `json:"incoming"`
	Revive   combat.Revive         `json:"revive"`
	Voodoo   combat.Voodoo         `json:"voodoo"`
}

// PreviewCombat shows what the artifacts would do to one hit each way, a fall at 0 HP
// and the curse on the killer.
func (h *Handler) PreviewCombat(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.previewCombat)
}

func (h *Handler) previewCombat(ctx context.Context, input *PreviewCombatInput) (*PreviewCombatOutput, error) {
	created, err := h.equipmentService.CreateArtifactRuntime(ctx, &equipment.CreateArtifactRuntimeInput{
		OwnerID:   input.OwnerID,
		Mode:      input.Mode,
		Artifacts: input.Artifacts,
	})
	if err != nil {
		return nil, err
	}

	runtime := created.Runtime
	out := &PreviewCombatOutput{
		Outgoing: runtime.ApplyOutgoingDamage(input.OutgoingDamage),
		Incoming: runtime.ApplyIncomingDamage(input.IncomingDamage),
		Revive:   runtime.TryRevive(0, input.MaxHP),
		Voodoo:   runtime.TryVoodoo(input.KillerHP, input.KillerMaxHP),
	}
	out.Runtime = runtime
	return out, nil
}

// ForgeSelection forges hand-picked entries
func (h *Handler) ForgeSelection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.forgeService.ForgeSelection)
}

// QuickForge forges every affordable group
func (h *Handler) QuickForge(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.forgeService.QuickForgeAllPossible)
}

// ChangeItemElement re-rolls an item's element in the atelier
func (h *Handler) ChangeItemElement(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, req, h.forgeService.ChangeItemElement)
}

var _ EquipmentServiceServer = (*Handler)(nil)
