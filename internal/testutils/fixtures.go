package testutils

import (
	"time"

	"github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/pkg/clock"
	"github.com/KirkDiggler/cardastika-api/internal/pkg/idgen"
)

const (
	// TestOwnerID is the default owner for test fixtures
	TestOwnerID = "owner-test-001"
)

// TestNow is the instant reported by test clocks
var TestNow = time.UnixMilli(1_700_000_000_000)

// NewTestClock returns a clock frozen at TestNow
func NewTestClock() *clock.Fixed {
	return &clock.Fixed{At: TestNow}
}

// NewTestNormalizer mints sequential ids ("item_1", "art_1", ...) and stamps TestNow
func NewTestNormalizer() *equipment.Normalizer {
	return &equipment.Normalizer{
		ItemIDs:     idgen.NewSequential(idgen.ItemPrefix),
		ArtifactIDs: idgen.NewSequential(idgen.ArtifactPrefix),
		Clock:       NewTestClock(),
	}
}
