package forge_test

import (
	"context"
	"fmt"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	accountmock "github.com/KirkDiggler/cardastika-api/internal/clients/account/mock"
	entities "github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
	"github.com/KirkDiggler/cardastika-api/internal/orchestrators/forge"
	"github.com/KirkDiggler/cardastika-api/internal/pkg/lockreg"
	equipmentrepo "github.com/KirkDiggler/cardastika-api/internal/repositories/equipment"
	goldrepo "github.com/KirkDiggler/cardastika-api/internal/repositories/gold"
	"github.com/KirkDiggler/cardastika-api/internal/services/ledger"
	ledgermock "github.com/KirkDiggler/cardastika-api/internal/services/ledger/mock"
	"github.com/KirkDiggler/cardastika-api/internal/testutils"
	"github.com/KirkDiggler/cardastika-api/internal/testutils/builders"
)

// scriptedRoller returns queued rolls and records the sizes it was asked for
type scriptedRoller struct {
	rolls []int
	sizes []int
	err   error
}

func (r *scriptedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	if r.err != nil {
		return 0, r.err
	}
	if len(r.rolls) == 0 {
		return 1, nil
	}
	next := r.rolls[0]
	r.rolls = r.rolls[1:]
	return next, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for range count {
		n, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

type ForgeTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	mockAccount  *accountmock.MockClient
	cleanup      func()
	roller       *scriptedRoller
	balance      *entities.Balance
	ledger       ledger.Ledger
	orchestrator forge.Service
}

func TestForgeSuite(t *testing.T) {
	suite.Run(t, new(ForgeTestSuite))
}

func (s *ForgeTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockAccount = accountmock.NewMockClient(s.ctrl)
	s.mockAccount.EXPECT().UpdateGold(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	normalizer := testutils.NewTestNormalizer()
	equipmentRepo, err := equipmentrepo.NewRedis(&equipmentrepo.RedisConfig{Client: client, Normalizer: normalizer})
	s.Require().NoError(err)
	goldRepo, err := goldrepo.NewRedis(&goldrepo.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.ledger, err = ledger.New(&ledger.Config{
		EquipmentRepo: equipmentRepo,
		GoldRepo:      goldRepo,
		AccountClient: s.mockAccount,
		Normalizer:    normalizer,
		Clock:         testutils.NewTestClock(),
		Locks:         lockreg.New(),
	})
	s.Require().NoError(err)

	s.roller = &scriptedRoller{}
	s.balance = entities.DefaultBalance()
	s.orchestrator, err = forge.NewOrchestrator(&forge.Config{
		Ledger:         s.ledger,
		Normalizer:     normalizer,
		Balance:        s.balance,
		Roller:         s.roller,
		DefaultOwnerID: testutils.TestOwnerID,
	})
	s.Require().NoError(err)
}

func (s *ForgeTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.cleanup()
}

func (s *ForgeTestSuite) seed(state *entities.State, gold int64) {
	s.seedOwner(testutils.TestOwnerID, state, gold)
}

func (s *ForgeTestSuite) seedOwner(ownerID string, state *entities.State, gold int64) {
	_, _, err := s.ledger.Commit(s.ctx, ownerID, state, gold)
	s.Require().NoError(err)
}

func (s *ForgeTestSuite) gold() int64 {
	gold, err := s.ledger.ReadGold(s.ctx, testutils.TestOwnerID)
	s.Require().NoError(err)
	return gold
}

func (s *ForgeTestSuite) state() *entities.State {
	state, err := s.ledger.LoadState(s.ctx, testutils.TestOwnerID)
	s.Require().NoError(err)
	return state
}

func ids(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}

func (s *ForgeTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := forge.NewOrchestrator(&forge.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Roller: is required")
}

func (s *ForgeTestSuite) TestForgeSelectionConservesAndDeducts() {
	b := builders.NewStateBuilder(1)
	for _, id := range ids("h", 4) {
		b.WithItemID(id, entities.SlotHat, entities.ElementFire, entities.RarityCommon)
	}
	b.EquipLast()
	b.WithItemID("keep", entities.SlotHat, entities.ElementFire, entities.RarityCommon)
	s.seed(b.Build(), 12)

	out, err := s.orchestrator.ForgeSelection(s.ctx, &forge.ForgeSelectionInput{
		Kind:     "item",
		InputIDs: ids("h", 4),
	})
	s.Require().NoError(err)
	s.Require().True(out.OK, out.Reason)
	s.Require().NotNil(out.Item)
	s.Nil(out.Artifact)
	s.Equal(entities.RarityUncommon, out.Item.Rarity)
	s.Equal(entities.SlotHat, out.Item.Slot)
	s.Equal(entities.ElementFire, out.Item.Element)
	s.Equal(int64(5), out.SpentGold)
	s.Equal(int64(7), out.Gold)
	s.Equal(int64(7), s.gold())

	stored := s.state()
	s.Len(stored.Items, 2)
	s.NotNil(stored.ItemByID("keep"))
	s.NotNil(stored.ItemByID(out.Item.ID))
	s.Equal("", stored.Equipped.Items[entities.SlotHat])
	s.Equal([]int{4}, s.roller.sizes)
}

func (s *ForgeTestSuite) TestForgeSelectionWeightedDraw() {
	testCases := []struct {
		name string
		roll int
		want entities.Element
	}{
		{name: "first seen element covers the low rolls", roll: 3, want: entities.ElementWater},
		{name: "later element takes the rest", roll: 4, want: entities.ElementAir},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			ownerID := fmt.Sprintf("draw-%d", tc.roll)
			s.seedOwner(ownerID, builders.NewStateBuilder(1).
				WithItemID("a", entities.SlotBoots, entities.ElementWater, entities.RarityCommon).
				WithItemID("b", entities.SlotBoots, entities.ElementWater, entities.RarityCommon).
				WithItemID("c", entities.SlotBoots, entities.ElementWater, entities.RarityCommon).
				WithItemID("d", entities.SlotBoots, entities.ElementAir, entities.RarityCommon).
				Build(), 5)
			s.roller.rolls = []int{tc.roll}

			out, err := s.orchestrator.ForgeSelection(s.ctx, &forge.ForgeSelectionInput{
				OwnerID:  ownerID,
				Kind:     "ITEM",
				InputIDs: []string{"a", "b", "c", "d"},
			})
			s.Require().NoError(err)
			s.Require().True(out.OK)
			s.Equal(tc.want, out.Item.Element)
		})
	}
}

func (s *ForgeTestSuite) TestForgeSelectionArtifact() {
	b := builders.NewStateBuilder(1)
	for _, id := range ids("s", 3) {
		b.WithArtifactID(id, entities.ArtifactSpear, entities.RarityUncommon)
	}
	b.WithArtifactID("m1", entities.ArtifactMirror, entities.RarityUncommon).EquipLastArtifact()
	b.WithArtifactID("m2", entities.ArtifactMirror, entities.RarityUncommon)
	s.seed(b.Build(), 100)
	s.roller.rolls = []int{5}

	out, err := s.orchestrator.ForgeSelection(s.ctx, &forge.ForgeSelectionInput{
		Kind:     "artifact",
		InputIDs: []string{"s1", "s2", "s3", "m1", "m2"},
	})
	s.Require().NoError(err)
	s.Require().True(out.OK)
	s.Equal(entities.ArtifactMirror, out.Artifact.ArtifactType)
	s.Equal(entities.RarityRare, out.Artifact.Rarity)
	s.Equal(int64(50), out.Gold)

	stored := s.state()
	s.Len(stored.Artifacts, 1)
	s.Equal("", stored.Equipped.Artifacts[entities.ArtifactMirror])
}

func (s *ForgeTestSuite) TestForgeSelectionRefusals() {
	s.seed(builders.NewStateBuilder(1).
		WithItemID("h1", entities.SlotHat, entities.ElementFire, entities.RarityCommon).
		WithItemID("h2", entities.SlotHat, entities.ElementFire, entities.RarityCommon).
		WithItemID("h3", entities.SlotHat, entities.ElementFire, entities.RarityCommon).
		WithItemID("h4", entities.SlotHat, entities.ElementFire, entities.RarityCommon).
		WithItemID("a1", entities.SlotArmor, entities.ElementFire, entities.RarityCommon).
		WithItemID("r1", entities.SlotHat, entities.ElementFire, entities.RarityRare).
		WithItemID("m1", entities.SlotHat, entities.ElementFire, entities.RarityMythic).
		Build(), 4)

	testCases := []struct {
		name     string
		kind     string
		ids      []string
		reason   entities.Reason
		required int64
	}{
		{name: "unknown kind", kind: "card", ids: []string{"h1"}, reason: entities.ReasonInvalidKind},
		{name: "no inputs", kind: "item", reason: entities.ReasonMissingInputs},
		{name: "only empty ids", kind: "item", ids: []string{"", ""}, reason: entities.ReasonMissingInputs},
		{name: "unknown id", kind: "item", ids: []string{"h1", "zz"}, reason: entities.ReasonMissingInputs},
		{name: "wrong pool", kind: "artifact", ids: []string{"h1"}, reason: entities.ReasonMissingInputs},
		{name: "duplicate id", kind: "item", ids: []string{"h1", "h1", "h2", "h3"}, reason: entities.ReasonDuplicateInputs},
		{name: "mixed rarity", kind: "item", ids: []string{"h1", "r1"}, reason: entities.ReasonRarityMismatch},
		{name: "mixed slots", kind: "item", ids: []string{"h1", "h2", "h3", "a1"}, reason: entities.ReasonItemSlotMismatch},
		{name: "top tier", kind: "item", ids: []string{"m1"}, reason: entities.ReasonMaxRarity},
		{
			name: "too few", kind: "item", ids: []string{"h1", "h2", "h3"},
			reason: entities.ReasonWrongAmount, required: 4,
		},
		{
			name: "not enough gold", kind: "item", ids: []string{"h1", "h2", "h3", "h4"},
			reason: entities.ReasonNotEnoughGold, required: 5,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.ForgeSelection(s.ctx, &forge.ForgeSelectionInput{Kind: tc.kind, InputIDs: tc.ids})
			s.Require().NoError(err)
			s.False(out.OK)
			s.Equal(tc.reason, out.Reason)
			s.Equal(tc.required, out.Required)
			s.Equal(int64(4), out.Gold)
			s.Len(out.State.Items, 7)
		})
	}

	s.Equal(int64(4), s.gold())
	s.Empty(s.roller.sizes)
}

func (s *ForgeTestSuite) TestForgeSelectionRollerFailure() {
	b := builders.NewStateBuilder(1)
	for _, id := range ids("h", 4) {
		b.WithItemID(id, entities.SlotHat, entities.ElementFire, entities.RarityCommon)
	}
	s.seed(b.Build(), 10)
	s.roller.err = fmt.Errorf("entropy exhausted")

	_, err := s.orchestrator.ForgeSelection(s.ctx, &forge.ForgeSelectionInput{Kind: "item", InputIDs: ids("h", 4)})
	s.Require().Error(err)
	s.Contains(err.Error(), "entropy exhausted")
	s.Len(s.state().Items, 4)
	s.Equal(int64(10), s.gold())
}

func (s *ForgeTestSuite) TestQuickForgeStarvesLaterGroups() {
	b := builders.NewStateBuilder(1)
	b.WithItems(4, entities.SlotHat, entities.ElementFire, entities.RarityCommon)
	b.WithItems(4, entities.SlotBoots, entities.ElementAir, entities.RarityCommon)
	s.seed(b.Build(), 5)

	out, err := s.orchestrator.QuickForgeAllPossible(s.ctx, &forge.QuickForgeInput{})
	s.Require().NoError(err)
	s.True(out.OK)
	s.Require().Len(out.Produced, 1)
	s.Equal(forge.Produced{
		Kind:   entities.KindItem,
		From:   entities.RarityCommon,
		To:     entities.RarityUncommon,
		Amount: 1,
		Key:    "item:common:hat:fire",
		Cost:   5,
	}, out.Produced[0])
	s.Equal(int64(5), out.SpentGold)
	s.Equal(int64(0), out.GoldLeft)
	s.Require().Len(out.CreatedItems, 1)
	s.Equal(entities.SlotHat, out.CreatedItems[0].Slot)

	stored := s.state()
	s.Len(stored.Items, 5)
	boots := 0
	for _, item := range stored.Items {
		if item.Slot == entities.SlotBoots {
			boots++
		}
	}
	s.Equal(4, boots)
}

func (s *ForgeTestSuite) TestQuickForgeCascades() {
	s.balance.Recipes[entities.RarityRare] = entities.Recipe{From: entities.RarityUncommon, Need: 2, Gold: 10}

	b := builders.NewStateBuilder(1)
	b.WithItems(9, entities.SlotWeapon, entities.ElementEarth, entities.RarityCommon)
	b.WithArtifacts(4, entities.ArtifactShield, entities.RarityCommon)
	s.seed(b.Build(), 1000)

	out, err := s.orchestrator.QuickForgeAllPossible(s.ctx, &forge.QuickForgeInput{Mode: "both"})
	s.Require().NoError(err)
	s.Require().Len(out.Produced, 3)
	s.Equal("item:common:weapon:earth", out.Produced[0].Key)
	s.Equal(2, out.Produced[0].Amount)
	s.Equal("artifact:common:shield", out.Produced[1].Key)
	s.Equal(1, out.Produced[1].Amount)
	s.Equal("item:uncommon:weapon:earth", out.Produced[2].Key)
	s.Equal(1, out.Produced[2].Amount)
	s.Equal(entities.RarityRare, out.Produced[2].To)
	s.Equal(int64(10+5+10), out.SpentGold)
	s.Equal(int64(975), out.GoldLeft)
	s.Equal(int64(975), s.gold())

	stored := s.state()
	counts := map[entities.Rarity]int{}
	for _, item := range stored.Items {
		counts[item.Rarity]++
	}
	s.Equal(map[entities.Rarity]int{entities.RarityCommon: 1, entities.RarityRare: 1}, counts)
}

func (s *ForgeTestSuite) TestQuickForgeModes() {
	testCases := []struct {
		mode          string
		wantItems     bool
		wantArtifacts bool
	}{
		{mode: "items", wantItems: true},
		{mode: "item", wantItems: true},
		{mode: "artifacts", wantArtifacts: true},
		{mode: "Artifact", wantArtifacts: true},
		{mode: "", wantItems: true, wantArtifacts: true},
		{mode: "whatever", wantItems: true, wantArtifacts: true},
	}

	for _, tc := range testCases {
		s.Run(tc.mode, func() {
			ownerID := "mode-" + tc.mode
			b := builders.NewStateBuilder(1)
			b.WithItems(4, entities.SlotHat, entities.ElementFire, entities.RarityCommon)
			b.WithArtifacts(4, entities.ArtifactVoodoo, entities.RarityCommon)
			s.seedOwner(ownerID, b.Build(), 100)

			out, err := s.orchestrator.QuickForgeAllPossible(s.ctx, &forge.QuickForgeInput{
				OwnerID: ownerID,
				Mode:    tc.mode,
			})
			s.Require().NoError(err)
			s.Equal(tc.wantItems, len(out.CreatedItems) == 1)
			s.Equal(tc.wantArtifacts, len(out.CreatedArtifacts) == 1)
		})
	}
}

func (s *ForgeTestSuite) TestQuickForgeNothingToDo() {
	s.seed(builders.NewStateBuilder(1).
		WithItems(3, entities.SlotHat, entities.ElementFire, entities.RarityCommon).
		Build(), 50)

	out, err := s.orchestrator.QuickForgeAllPossible(s.ctx, &forge.QuickForgeInput{})
	s.Require().NoError(err)
	s.True(out.OK)
	s.Empty(out.Produced)
	s.Equal(int64(0), out.SpentGold)
	s.Equal(int64(50), out.GoldLeft)
}

func (s *ForgeTestSuite) TestChangeItemElement() {
	s.seed(builders.NewStateBuilder(1).
		WithItemID("leg", entities.SlotArmor, entities.ElementFire, entities.RarityLegendary).EquipLast().
		WithItemID("epic", entities.SlotArmor, entities.ElementFire, entities.RarityEpic).
		Build(), 60000)

	out, err := s.orchestrator.ChangeItemElement(s.ctx, &forge.ChangeItemElementInput{ItemID: "leg", Element: "wind"})
	s.Require().NoError(err)
	s.Require().True(out.OK)
	s.Equal(entities.ElementAir, out.Item.Element)
	s.Equal(int64(50000), out.SpentGold)
	s.Equal(int64(10000), out.Gold)

	stored := s.state()
	s.Equal(entities.ElementAir, stored.ItemByID("leg").Element)
	s.Equal("leg", stored.Equipped.Items[entities.SlotArmor])
}

func (s *ForgeTestSuite) TestChangeItemElementCostOverrideNeverUndercuts() {
	testCases := []struct {
		name     string
		cost     int64
		gold     int64
		ok       bool
		spent    int64
		required int64
	}{
		{name: "negative override", cost: -5, gold: 10, required: 50000},
		{name: "zero override", cost: 0, gold: 60000, ok: true, spent: 50000},
		{name: "cheaper override", cost: 250, gold: 60000, ok: true, spent: 50000},
		{name: "pricier override", cost: 55000, gold: 60000, ok: true, spent: 55000},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.seed(builders.NewStateBuilder(1).
				WithItemID("myth", entities.SlotHat, entities.ElementFire, entities.RarityMythic).
				Build(), tc.gold)

			cost := tc.cost
			out, err := s.orchestrator.ChangeItemElement(s.ctx, &forge.ChangeItemElementInput{
				ItemID:   "myth",
				Element:  "water",
				CostGold: &cost,
			})
			s.Require().NoError(err)
			s.Equal(tc.ok, out.OK)
			s.Equal(tc.required, out.Required)
			s.Equal(tc.spent, out.SpentGold)
			s.Equal(tc.gold-tc.spent, s.gold())
		})
	}
}

func (s *ForgeTestSuite) TestChangeItemElementRefusals() {
	s.seed(builders.NewStateBuilder(1).
		WithItemID("leg", entities.SlotArmor, entities.ElementFire, entities.RarityLegendary).
		WithItemID("epic", entities.SlotArmor, entities.ElementFire, entities.RarityEpic).
		Build(), 100)

	testCases := []struct {
		name     string
		itemID   string
		element  string
		reason   entities.Reason
		required int64
	}{
		{name: "unknown element", itemID: "leg", element: "lightning", reason: entities.ReasonInvalidElement},
		{name: "unknown item", itemID: "nope", element: "water", reason: entities.ReasonItemNotFound},
		{name: "low rarity", itemID: "epic", element: "water", reason: entities.ReasonAtelierOnlyHighRarities},
		{
			name: "not enough gold", itemID: "leg", element: "water",
			reason: entities.ReasonNotEnoughGold, required: 50000,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.orchestrator.ChangeItemElement(s.ctx, &forge.ChangeItemElementInput{
				ItemID:  tc.itemID,
				Element: tc.element,
			})
			s.Require().NoError(err)
			s.False(out.OK)
			s.Equal(tc.reason, out.Reason)
			s.Equal(tc.required, out.Required)
		})
	}

	s.Equal(entities.ElementFire, s.state().ItemByID("leg").Element)
	s.Equal(int64(100), s.gold())
}

func (s *ForgeTestSuite) TestGoldIsMirroredToAccount() {
	ctrl := gomock.NewController(s.T())
	account := accountmock.NewMockClient(ctrl)

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	defer cleanup()

	normalizer := testutils.NewTestNormalizer()
	equipmentRepo, err := equipmentrepo.NewRedis(&equipmentrepo.RedisConfig{Client: client, Normalizer: normalizer})
	s.Require().NoError(err)
	goldRepo, err := goldrepo.NewRedis(&goldrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	l, err := ledger.New(&ledger.Config{
		EquipmentRepo: equipmentRepo,
		GoldRepo:      goldRepo,
		AccountClient: account,
		Normalizer:    normalizer,
		Clock:         testutils.NewTestClock(),
		Locks:         lockreg.New(),
	})
	s.Require().NoError(err)
	orchestrator, err := forge.NewOrchestrator(&forge.Config{
		Ledger:     l,
		Normalizer: normalizer,
		Balance:    entities.DefaultBalance(),
		Roller:     &scriptedRoller{},
	})
	s.Require().NoError(err)

	b := builders.NewStateBuilder(1)
	b.WithArtifacts(4, entities.ArtifactAmulet, entities.RarityCommon)

	gomock.InOrder(
		account.EXPECT().UpdateGold(gomock.Any(), forge.DefaultOwnerID, int64(8)).Return(nil),
		account.EXPECT().UpdateGold(gomock.Any(), forge.DefaultOwnerID, int64(3)).Return(nil),
	)
	_, _, err = l.Commit(s.ctx, forge.DefaultOwnerID, b.Build(), 8)
	s.Require().NoError(err)

	out, err := orchestrator.QuickForgeAllPossible(s.ctx, &forge.QuickForgeInput{Mode: "artifacts"})
	s.Require().NoError(err)
	s.Equal(int64(3), out.GoldLeft)
}

func (s *ForgeTestSuite) TestStorageFailuresPropagate() {
	mockLedger := ledgermock.NewMockLedger(s.ctrl)
	orchestrator, err := forge.NewOrchestrator(&forge.Config{
		Ledger:     mockLedger,
		Normalizer: testutils.NewTestNormalizer(),
		Balance:    entities.DefaultBalance(),
		Roller:     &scriptedRoller{},
	})
	s.Require().NoError(err)

	state := builders.NewStateBuilder(1).
		WithItems(4, entities.SlotHat, entities.ElementFire, entities.RarityCommon).
		Build()

	unlocked := 0
	mockLedger.EXPECT().Lock(forge.DefaultOwnerID).Return(func() { unlocked++ }).Times(2)
	gomock.InOrder(
		mockLedger.EXPECT().LoadState(s.ctx, forge.DefaultOwnerID).Return(nil, errors.Unavailable("redis down")),
		mockLedger.EXPECT().LoadState(s.ctx, forge.DefaultOwnerID).Return(state, nil),
	)
	mockLedger.EXPECT().ReadGold(s.ctx, forge.DefaultOwnerID).Return(int64(10), nil)
	mockLedger.EXPECT().
		Commit(s.ctx, forge.DefaultOwnerID, gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.Unavailable("redis down"))

	_, err = orchestrator.QuickForgeAllPossible(s.ctx, &forge.QuickForgeInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))

	_, err = orchestrator.QuickForgeAllPossible(s.ctx, &forge.QuickForgeInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Equal(2, unlocked)
}

// rejectTransactions fails every MULTI/EXEC pipeline while plain commands go through
type rejectTransactions struct{}

func (rejectTransactions) DialHook(next goredis.DialHook) goredis.DialHook {
	return next
}

func (rejectTransactions) ProcessHook(next goredis.ProcessHook) goredis.ProcessHook {
	return next
}

func (rejectTransactions) ProcessPipelineHook(goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return func(context.Context, []goredis.Cmder) error {
		return errors.Unavailable("transaction rejected")
	}
}

func (s *ForgeTestSuite) TestFailedCommitKeepsStateAndGold() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	defer cleanup()

	normalizer := testutils.NewTestNormalizer()
	equipmentRepo, err := equipmentrepo.NewRedis(&equipmentrepo.RedisConfig{Client: client, Normalizer: normalizer})
	s.Require().NoError(err)
	goldRepo, err := goldrepo.NewRedis(&goldrepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	l, err := ledger.New(&ledger.Config{
		EquipmentRepo: equipmentRepo,
		GoldRepo:      goldRepo,
		AccountClient: s.mockAccount,
		Normalizer:    normalizer,
		Clock:         testutils.NewTestClock(),
		Locks:         lockreg.New(),
	})
	s.Require().NoError(err)
	orchestrator, err := forge.NewOrchestrator(&forge.Config{
		Ledger:     l,
		Normalizer: normalizer,
		Balance:    entities.DefaultBalance(),
		Roller:     &scriptedRoller{},
	})
	s.Require().NoError(err)

	b := builders.NewStateBuilder(1)
	for _, id := range ids("h", 4) {
		b.WithItemID(id, entities.SlotHat, entities.ElementFire, entities.RarityCommon)
	}
	b.WithItemID("leg", entities.SlotArmor, entities.ElementFire, entities.RarityLegendary)
	_, _, err = l.Commit(s.ctx, forge.DefaultOwnerID, b.Build(), 60000)
	s.Require().NoError(err)

	before, err := l.LoadState(s.ctx, forge.DefaultOwnerID)
	s.Require().NoError(err)

	client.AddHook(rejectTransactions{})

	testCases := []struct {
		name string
		call func() error
	}{
		{
			name: "forge selection",
			call: func() error {
				_, err := orchestrator.ForgeSelection(s.ctx, &forge.ForgeSelectionInput{Kind: "item", InputIDs: ids("h", 4)})
				return err
			},
		},
		{
			name: "quick forge",
			call: func() error {
				_, err := orchestrator.QuickForgeAllPossible(s.ctx, &forge.QuickForgeInput{})
				return err
			},
		},
		{
			name: "atelier",
			call: func() error {
				_, err := orchestrator.ChangeItemElement(s.ctx, &forge.ChangeItemElementInput{ItemID: "leg", Element: "water"})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Require().Error(tc.call())

			after, err := l.LoadState(s.ctx, forge.DefaultOwnerID)
			s.Require().NoError(err)
			s.Equal(before, after)

			gold, err := l.ReadGold(s.ctx, forge.DefaultOwnerID)
			s.Require().NoError(err)
			s.Equal(int64(60000), gold)
		})
	}
}
