// Package combat turns equipped artifacts into per-battle damage modifiers and
// single-use revive and curse effects.
package combat

import (
	"math"
	"strings"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
)

// MaxReduction caps both the damage reduction and the reflection fraction
const MaxReduction = 0.95

var battleModes = map[string]struct{}{
	"arena":      {},
	"tournament": {},
	"guildwar":   {},
	"guild_war":  {},
}

// ArtifactsEnabledForMode reports whether artifacts act in the given battle mode
func ArtifactsEnabledForMode(mode string) bool {
	_, ok := battleModes[strings.ToLower(strings.TrimSpace(mode))]
	return ok
}

// Config holds the dependencies for the combat engine
type Config struct {
	Balance *equipment.Balance
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Balance == nil {
		vb.RequiredField("Balance")
	}

	return vb.Build()
}

// Engine derives artifact rates and creates battle runtimes
type Engine struct {
	balance *equipment.Balance
}

// NewEngine creates a combat engine
func NewEngine(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{balance: cfg.Balance}, nil
}

// Rates looks up each artifact's fraction by rarity. When two artifacts share a type
// the later one wins.
func (e *Engine) Rates(artifacts []*equipment.Artifact) Rates {
	var rates Rates
	for _, artifact := range artifacts {
		if !artifact.IsValid() {
			continue
		}
		switch artifact.ArtifactType {
		case equipment.ArtifactSpear:
			rates.Spear = e.balance.SpearPct[artifact.Rarity]
		case equipment.ArtifactShield:
			rates.ShieldReduce = e.balance.ShieldPct[artifact.Rarity]
		case equipment.ArtifactMirror:
			rates.MirrorReduce = e.balance.MirrorPct[artifact.Rarity]
			rates.MirrorReflect = e.balance.MirrorPct[artifact.Rarity]
		case equipment.ArtifactAmulet:
			rates.AmuletRevive = e.balance.AmuletPct[artifact.Rarity]
		case equipment.ArtifactVoodoo:
			rates.VoodooCurse = e.balance.VoodooPct[artifact.Rarity]
		}
	}
	return rates
}

// NewRuntime starts a battle. Outside battle modes the runtime is disabled and its
// rates are zero.
func (e *Engine) NewRuntime(mode string, artifacts []*equipment.Artifact) *Runtime {
	runtime := &Runtime{Enabled: ArtifactsEnabledForMode(mode)}
	if runtime.Enabled {
		runtime.Rates = e.Rates(artifacts)
	}
	return runtime
}

// ApplyOutgoingDamage adds the spear bonus to a hit
func (r *Runtime) ApplyOutgoingDamage(baseDamage float64) OutgoingDamage {
	n := nonNegative(baseDamage)
	if r == nil || !r.Enabled || r.Rates.Spear <= 0 {
		return OutgoingDamage{Dealt: n}
	}

	bonus := max(0, round(float64(n)*r.Rates.Spear))
	return OutgoingDamage{Dealt: n + bonus, SpearBonus: bonus}
}

// ApplyIncomingDamage mitigates a hit with shield and mirror and reports the mirror
// reflection, which is taken from the unmitigated damage.
func (r *Runtime) ApplyIncomingDamage(baseDamage float64) IncomingDamage {
	n := nonNegative(baseDamage)
	if r == nil || !r.Enabled {
		return IncomingDamage{Taken: n}
	}

	reducePct := clamp(r.Rates.ShieldReduce+r.Rates.MirrorReduce, 0, MaxReduction)
	reduced := max(0, round(float64(n)*reducePct))
	reflected := max(0, round(float64(n)*clamp(r.Rates.MirrorReflect, 0, MaxReduction)))

	return IncomingDamage{
		Taken:     max(0, n-reduced),
		Reduced:   reduced,
		Reflected: reflected,
	}
}

// TryRevive brings a fallen fighter back once per battle using the amulet
func (r *Runtime) TryRevive(currentHP, maxHP float64) Revive {
	hp := finite(currentHP)
	if r == nil || !r.Enabled || hp > 0 {
		return Revive{HP: max(0, round(hp))}
	}
	if r.Used.Amulet || r.Rates.AmuletRevive <= 0 {
		return Revive{}
	}

	hpCap := max(1, round(finiteOr(maxHP, 1)))
	r.Used.Amulet = true
	return Revive{
		Revived: true,
		HP:      max(1, round(float64(hpCap)*r.Rates.AmuletRevive)),
	}
}

// TryVoodoo curses the killer once per battle, cutting a share of its max HP
func (r *Runtime) TryVoodoo(killerHP, killerMaxHP float64) Voodoo {
	hp := nonNegative(killerHP)
	if r == nil || !r.Enabled || r.Used.Voodoo || r.Rates.VoodooCurse <= 0 {
		return Voodoo{KillerHP: hp}
	}

	maxHP := max(1, round(finiteOr(killerMaxHP, 1)))
	reduced := max(0, round(float64(maxHP)*r.Rates.VoodooCurse))
	r.Used.Voodoo = true
	return Voodoo{
		Triggered: true,
		KillerHP:  max(0, hp-reduced),
		Reduced:   reduced,
	}
}

func round(x float64) int {
	return int(equipment.RoundHalfUp(x))
}

func finite(x float64) float64 {
	return finiteOr(x, 0)
}

// finiteOr treats NaN, infinities and zero as missing
func finiteOr(x, fallback float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return fallback
	}
	return x
}

func nonNegative(x float64) int {
	return max(0, round(finite(x)))
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}
