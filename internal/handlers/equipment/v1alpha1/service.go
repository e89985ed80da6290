package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "cardastika.equipment.v1alpha1.EquipmentService"

// RPC method names
const (
	MethodGetSummary        = "GetSummary"
	MethodGetState          = "GetState"
	MethodAddItem           = "AddItem"
	MethodAddArtifact       = "AddArtifact"
	MethodEquipItem         = "EquipItem"
	MethodUnequipItem       = "UnequipItem"
	MethodEquipArtifact     = "EquipArtifact"
	MethodUnequipArtifact   = "UnequipArtifact"
	MethodEquipBest         = "EquipBest"
	MethodSeedDemo          = "SeedDemo"
	MethodApplyToDeck       = "ApplyToDeck"
	MethodPreviewCombat     = "PreviewCombat"
	MethodForgeSelection    = "ForgeSelection"
	MethodQuickForge        = "QuickForge"
	MethodChangeItemElement = "ChangeItemElement"
)

// FullMethod returns the "/service/method" path used on the wire
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// EquipmentServiceServer is the server API for the equipment service. Requests and
// responses are JSON-shaped google.protobuf.Struct messages.
type EquipmentServiceServer interface {
	GetSummary(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetState(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddArtifact(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnequipItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipArtifact(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnequipArtifact(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipBest(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SeedDemo(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApplyToDeck(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewCombat(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ForgeSelection(context.Context, *structpb.Struct) (*structpb.Struct, error)
	QuickForge(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ChangeItemElement(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type serverMethod func(EquipmentServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

var serverMethods = []struct {
	name string
	call serverMethod
}{
	{MethodGetSummary, EquipmentServiceServer.GetSummary},
	{MethodGetState, EquipmentServiceServer.GetState},
	{MethodAddItem, EquipmentServiceServer.AddItem},
	{MethodAddArtifact, EquipmentServiceServer.AddArtifact},
	{MethodEquipItem, EquipmentServiceServer.EquipItem},
	{MethodUnequipItem, EquipmentServiceServer.UnequipItem},
	{MethodEquipArtifact, EquipmentServiceServer.EquipArtifact},
	{MethodUnequipArtifact, EquipmentServiceServer.UnequipArtifact},
	{MethodEquipBest, EquipmentServiceServer.EquipBest},
	{MethodSeedDemo, EquipmentServiceServer.SeedDemo},
	{MethodApplyToDeck, EquipmentServiceServer.ApplyToDeck},
	{MethodPreviewCombat, EquipmentServiceServer.PreviewCombat},
	{MethodForgeSelection, EquipmentServiceServer.ForgeSelection},
	{MethodQuickForge, EquipmentServiceServer.QuickForge},
	{MethodChangeItemElement, EquipmentServiceServer.ChangeItemElement},
}

// MethodNames lists every RPC in registration order
func MethodNames() []string {
	names := make([]string, len(serverMethods))
	for i, m := range serverMethods {
		names[i] = m.name
	}
	return names
}

func unaryHandler(name string, call serverMethod) grpc.MethodHandler {
	fullMethod := FullMethod(name)
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EquipmentServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EquipmentServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func methodDescs() []grpc.MethodDesc {
	descs := make([]grpc.MethodDesc, len(serverMethods))
	for i, m := range serverMethods {
		descs[i] = grpc.MethodDesc{
			MethodName: m.name,
			Handler:    unaryHandler(m.name, m.call),
		}
	}
	return descs
}

// EquipmentService_ServiceDesc is the grpc.ServiceDesc for the equipment service
var EquipmentService_ServiceDesc = grpc.ServiceDesc{ //nolint:revive // mirrors protoc-gen-go-grpc naming
	ServiceName: ServiceName,
	HandlerType: (*EquipmentServiceServer)(nil),
	Methods:     methodDescs(),
	Streams:     []grpc.StreamDesc{},
}

// RegisterEquipmentServiceServer registers srv with the gRPC server
func RegisterEquipmentServiceServer(s grpc.ServiceRegistrar, srv EquipmentServiceServer) {
	s.RegisterService(&EquipmentService_ServiceDesc, srv)
}

// UnimplementedEquipmentServiceServer can be embedded for forward compatibility
type UnimplementedEquipmentServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedEquipmentServiceServer) GetSummary(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodGetSummary)
}

func (UnimplementedEquipmentServiceServer) GetState(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodGetState)
}

func (UnimplementedEquipmentServiceServer) AddItem(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodAddItem)
}

func (UnimplementedEquipmentServiceServer) AddArtifact(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodAddArtifact)
}

func (UnimplementedEquipmentServiceServer) EquipItem(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodEquipItem)
}

func (UnimplementedEquipmentServiceServer) UnequipItem(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodUnequipItem)
}

func (UnimplementedEquipmentServiceServer) EquipArtifact(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodEquipArtifact)
}

func (UnimplementedEquipmentServiceServer) UnequipArtifact(
	context.Context,
	*structpb.Struct,
) (*structpb.Struct, error) {
	return nil, unimplemented(MethodUnequipArtifact)
}

func (UnimplementedEquipmentServiceServer) EquipBest(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodEquipBest)
}

func (UnimplementedEquipmentServiceServer) SeedDemo(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodSeedDemo)
}

func (UnimplementedEquipmentServiceServer) ApplyToDeck(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodApplyToDeck)
}

func (UnimplementedEquipmentServiceServer) PreviewCombat(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodPreviewCombat)
}

func (UnimplementedEquipmentServiceServer) ForgeSelection(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodForgeSelection)
}

func (UnimplementedEquipmentServiceServer) QuickForge(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodQuickForge)
}

func (UnimplementedEquipmentServiceServer) ChangeItemElement(
	context.Context,
	*structpb.Struct,
) (*structpb.Struct, error) {
	return nil, unimplemented(MethodChangeItemElement)
}

// EquipmentServiceClient calls the equipment service by method name
type EquipmentServiceClient interface {
	Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type equipmentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEquipmentServiceClient creates a client over an existing connection
func NewEquipmentServiceClient(cc grpc.ClientConnInterface) EquipmentServiceClient {
	return &equipmentServiceClient{cc: cc}
}

func (c *equipmentServiceClient) Call(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
