package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/cardastika-api/internal/engine/combat"
	entities "github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/errors"
	"github.com/KirkDiggler/cardastika-api/internal/handlers/equipment/v1alpha1"
	"github.com/KirkDiggler/cardastika-api/internal/orchestrators/equipment"
	equipmentmock "github.com/KirkDiggler/cardastika-api/internal/orchestrators/equipment/mock"
	"github.com/KirkDiggler/cardastika-api/internal/orchestrators/forge"
	forgemock "github.com/KirkDiggler/cardastika-api/internal/orchestrators/forge/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	mockEquipment *equipmentmock.MockService
	mockForge     *forgemock.MockService
	handler       *v1alpha1.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockEquipment = equipmentmock.NewMockService(s.ctrl)
	s.mockForge = forgemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EquipmentService: s.mockEquipment,
		ForgeService:     s.mockForge,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerValidatesConfig() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "EquipmentService: is required")
	s.Contains(err.Error(), "ForgeService: is required")
}

func (s *HandlerTestSuite) TestAddItemDecodesLenientRequest() {
	s.mockEquipment.EXPECT().
		AddItem(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *equipment.AddItemInput) (*equipment.AddItemOutput, error) {
			s.Equal("p1", input.OwnerID)
			s.Equal("helmet", input.Item.Type)
			s.Equal("fire", input.Item.Element)
			s.Equal(entities.SourceDailyReward, input.Source)
			s.Equal(entities.RarityEpic, entities.NormalizeRarity(input.Item.Rarity))
			return &equipment.AddItemOutput{
				Result: entities.Refused(entities.ReasonItemsLimit),
				State:  entities.NewEmptyState(1),
			}, nil
		})

	resp, err := s.handler.AddItem(s.ctx, s.request(map[string]any{
		"ownerId": "p1",
		"source":  "daily_reward",
		"item":    map[string]any{"type": "helmet", "element": "fire", "rarity": 4},
	}))
	s.Require().NoError(err)
	s.False(resp.GetFields()["ok"].GetBoolValue())
	s.Equal("items_limit", resp.GetFields()["reason"].GetStringValue())
	s.NotNil(resp.GetFields()["state"].GetStructValue())
}

func (s *HandlerTestSuite) TestForgeSelectionReportsRequired() {
	s.mockForge.EXPECT().
		ForgeSelection(s.ctx, &forge.ForgeSelectionInput{Kind: "item", InputIDs: []string{"a", "b"}}).
		Return(&forge.ForgeSelectionOutput{
			Result: entities.RefusedNeeding(entities.ReasonWrongAmount, 4),
			Gold:   12,
		}, nil)

	resp, err := s.handler.ForgeSelection(s.ctx, s.request(map[string]any{
		"kind":     "item",
		"inputIds": []any{"a", "b"},
	}))
	s.Require().NoError(err)
	s.Equal("wrong_amount", resp.GetFields()["reason"].GetStringValue())
	s.Equal(float64(4), resp.GetFields()["required"].GetNumberValue())
	s.Equal(float64(12), resp.GetFields()["gold"].GetNumberValue())
}

func (s *HandlerTestSuite) TestChangeItemElementPassesCostOverride() {
	cost := int64(250)
	s.mockForge.EXPECT().
		ChangeItemElement(s.ctx, &forge.ChangeItemElementInput{ItemID: "i1", Element: "water", CostGold: &cost}).
		Return(&forge.ChangeItemElementOutput{Result: entities.Succeeded(), SpentGold: 250}, nil)

	resp, err := s.handler.ChangeItemElement(s.ctx, s.request(map[string]any{
		"itemId":   "i1",
		"element":  "water",
		"costGold": 250,
	}))
	s.Require().NoError(err)
	s.True(resp.GetFields()["ok"].GetBoolValue())
}

func (s *HandlerTestSuite) TestMalformedRequest() {
	_, err := s.handler.ForgeSelection(s.ctx, s.request(map[string]any{"inputIds": "not-a-list"}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestServiceErrorsMapToStatus() {
	s.mockEquipment.EXPECT().
		GetSummary(s.ctx, &equipment.GetSummaryInput{}).
		Return(nil, errors.Unavailable("redis unreachable").WithMeta("owner_id", "local"))

	_, err := s.handler.GetSummary(s.ctx, nil)
	s.Require().Error(err)

	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.Unavailable, st.Code())
	s.Equal("redis unreachable", st.Message())
	s.Equal("local", errors.GetMeta(errors.FromGRPCError(err))["owner_id"])
}

func (s *HandlerTestSuite) TestPreviewCombat() {
	s.mockEquipment.EXPECT().
		CreateArtifactRuntime(s.ctx, &equipment.CreateArtifactRuntimeInput{Mode: "arena"}).
		Return(&equipment.CreateArtifactRuntimeOutput{Runtime: &combat.Runtime{
			Enabled: true,
			Rates: combat.Rates{
				Spear:         0.1,
				ShieldReduce:  0.2,
				MirrorReduce:  0.05,
				MirrorReflect: 0.05,
				AmuletRevive:  0.3,
				VoodooCurse:   0.1,
			},
		}}, nil)

	resp, err := s.handler.PreviewCombat(s.ctx, s.request(map[string]any{
		"mode":           "arena",
		"outgoingDamage": 100,
		"incomingDamage": 200,
		"maxHp":          1000,
		"killerHp":       500,
		"killerMaxHp":    800,
	}))
	s.Require().NoError(err)

	fields := resp.GetFields()
	outgoing := fields["outgoing"].GetStructValue().GetFields()
	s.Equal(float64(110), outgoing["dealt"].GetNumberValue())

	incoming := fields["incoming"].GetStructValue().GetFields()
	s.Equal(float64(150), incoming["taken"].GetNumberValue())
	s.Equal(float64(10), incoming["reflected"].GetNumberValue())

	revive := fields["revive"].GetStructValue().GetFields()
	s.True(revive["revived"].GetBoolValue())
	s.Equal(float64(300), revive["hp"].GetNumberValue())

	voodoo := fields["voodoo"].GetStructValue().GetFields()
	s.Equal(float64(420), voodoo["killerHp"].GetNumberValue())

	used := fields["runtime"].GetStructValue().GetFields()["used"].GetStructValue().GetFields()
	s.True(used["amulet"].GetBoolValue())
	s.True(used["voodoo"].GetBoolValue())
}

func (s *HandlerTestSuite) TestServesOverGRPC() {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	v1alpha1.RegisterEquipmentServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis)
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.mockForge.EXPECT().
		QuickForgeAllPossible(gomock.Any(), &forge.QuickForgeInput{Mode: "items"}).
		Return(&forge.QuickForgeOutput{
			Result:   entities.Succeeded(),
			Produced: []forge.Produced{{Kind: entities.KindItem, Key: "item:common:hat:fire", Amount: 1, Cost: 5}},
			GoldLeft: 3,
		}, nil)

	client := v1alpha1.NewEquipmentServiceClient(conn)
	req, err := v1alpha1.FromJSON([]byte(`{"mode":"items"}`))
	s.Require().NoError(err)

	resp, err := client.Call(s.ctx, v1alpha1.MethodQuickForge, req)
	s.Require().NoError(err)
	produced := resp.GetFields()["produced"].GetListValue().GetValues()
	s.Require().Len(produced, 1)
	s.Equal("item:common:hat:fire", produced[0].GetStructValue().GetFields()["key"].GetStringValue())
	s.Equal(float64(3), resp.GetFields()["goldLeft"].GetNumberValue())

	_, err = client.Call(s.ctx, "Teleport", &structpb.Struct{})
	s.Equal(codes.Unimplemented, status.Code(err))
}

func (s *HandlerTestSuite) TestMethodNamesMatchDescriptor() {
	names := v1alpha1.MethodNames()
	s.Len(names, 15)
	s.Len(v1alpha1.EquipmentService_ServiceDesc.Methods, 15)
	for i, desc := range v1alpha1.EquipmentService_ServiceDesc.Methods {
		s.Equal(names[i], desc.MethodName)
	}
	s.Equal("/cardastika.equipment.v1alpha1.EquipmentService/QuickForge", v1alpha1.FullMethod(v1alpha1.MethodQuickForge))
}

func (s *HandlerTestSuite) TestPreviewCombatPassesRawArtifacts() {
	s.mockEquipment.EXPECT().
		CreateArtifactRuntime(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *equipment.CreateArtifactRuntimeInput) (*equipment.CreateArtifactRuntimeOutput, error) {
			s.Require().Len(input.Artifacts, 2)
			s.Equal("щит", input.Artifacts[0].Type)
			s.Equal(entities.RarityRare, entities.NormalizeRarity(input.Artifacts[0].Rarity))
			s.Equal("mirror", input.Artifacts[1].ArtifactType)
			return &equipment.CreateArtifactRuntimeOutput{Runtime: &combat.Runtime{}}, nil
		})

	_, err := s.handler.PreviewCombat(s.ctx, s.request(map[string]any{
		"mode": "arena",
		"artifacts": []any{
			map[string]any{"type": "щит", "rarity": 3},
			map[string]any{"artifactType": "mirror", "rarity": "rare"},
		},
	}))
	s.Require().NoError(err)
}
