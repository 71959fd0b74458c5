// TalentService stubs for proto/talents/v1alpha1/talent.proto, laid out the
// way protoc-gen-go-grpc emits them. Keep in step with the proto.

package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "talents.v1alpha1.TalentService"

// Method names served by TalentService
const (
	MethodListTrees      = "ListTrees"
	MethodGetTree        = "GetTree"
	MethodGetProgression = "GetProgression"
	MethodGetStatus      = "GetStatus"
	MethodAllocate       = "Allocate"
	MethodReclaim        = "Reclaim"
	MethodAddTalent      = "AddTalent"
	MethodRemoveTalent   = "RemoveTalent"
	MethodEditTalent     = "EditTalent"
	MethodReloadTrees    = "ReloadTrees"
)

// Full method names used for Invoke and interceptors
const (
	TalentService_ListTrees_FullMethodName      = "/" + ServiceName + "/" + MethodListTrees
	TalentService_GetTree_FullMethodName        = "/" + ServiceName + "/" + MethodGetTree
	TalentService_GetProgression_FullMethodName = "/" + ServiceName + "/" + MethodGetProgression
	TalentService_GetStatus_FullMethodName      = "/" + ServiceName + "/" + MethodGetStatus
	TalentService_Allocate_FullMethodName       = "/" + ServiceName + "/" + MethodAllocate
	TalentService_Reclaim_FullMethodName        = "/" + ServiceName + "/" + MethodReclaim
	TalentService_AddTalent_FullMethodName      = "/" + ServiceName + "/" + MethodAddTalent
	TalentService_RemoveTalent_FullMethodName   = "/" + ServiceName + "/" + MethodRemoveTalent
	TalentService_EditTalent_FullMethodName     = "/" + ServiceName + "/" + MethodEditTalent
	TalentService_ReloadTrees_FullMethodName    = "/" + ServiceName + "/" + MethodReloadTrees
)

// TalentServiceClient is the client API for TalentService. Every message is
// a google.protobuf.Struct.
type TalentServiceClient interface {
	ListTrees(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetTree(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetProgression(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Allocate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Reclaim(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddTalent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RemoveTalent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EditTalent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ReloadTrees(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type talentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTalentServiceClient creates a TalentServiceClient on cc
func NewTalentServiceClient(cc grpc.ClientConnInterface) TalentServiceClient {
	return &talentServiceClient{cc}
}

func (c *talentServiceClient) ListTrees(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TalentService_ListTrees_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *talentServiceClient) GetTree(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TalentService_GetTree_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *talentServiceClient) GetProgression(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TalentService_GetProgression_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *talentServiceClient) GetStatus(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TalentService_GetStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *talentServiceClient) Allocate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TalentService_Allocate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *talentServiceClient) Reclaim(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TalentService_Reclaim_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *talentServiceClient) AddTalent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TalentService_AddTalent_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *talentServiceClient) RemoveTalent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TalentService_RemoveTalent_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *talentServiceClient) EditTalent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TalentService_EditTalent_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *talentServiceClient) ReloadTrees(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, TalentService_ReloadTrees_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// TalentServiceServer is the server API for TalentService. Implementations
// must embed UnimplementedTalentServiceServer.
type TalentServiceServer interface {
	ListTrees(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetTree(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProgression(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Allocate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Reclaim(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddTalent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveTalent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditTalent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReloadTrees(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedTalentServiceServer()
}

// UnimplementedTalentServiceServer answers every method with codes.Unimplemented.
// Embed it by value.
type UnimplementedTalentServiceServer struct{}

func (UnimplementedTalentServiceServer) ListTrees(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTrees not implemented")
}

func (UnimplementedTalentServiceServer) GetTree(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTree not implemented")
}

func (UnimplementedTalentServiceServer) GetProgression(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProgression not implemented")
}

func (UnimplementedTalentServiceServer) GetStatus(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStatus not implemented")
}

func (UnimplementedTalentServiceServer) Allocate(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Allocate not implemented")
}

func (UnimplementedTalentServiceServer) Reclaim(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Reclaim not implemented")
}

func (UnimplementedTalentServiceServer) AddTalent(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddTalent not implemented")
}

func (UnimplementedTalentServiceServer) RemoveTalent(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveTalent not implemented")
}

func (UnimplementedTalentServiceServer) EditTalent(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EditTalent not implemented")
}

func (UnimplementedTalentServiceServer) ReloadTrees(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReloadTrees not implemented")
}

func (UnimplementedTalentServiceServer) mustEmbedUnimplementedTalentServiceServer() {}

// RegisterTalentServiceServer registers srv on s
func RegisterTalentServiceServer(s grpc.ServiceRegistrar, srv TalentServiceServer) {
	s.RegisterService(&TalentService_ServiceDesc, srv)
}

func _TalentService_ListTrees_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TalentServiceServer).ListTrees(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TalentService_ListTrees_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TalentServiceServer).ListTrees(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TalentService_GetTree_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TalentServiceServer).GetTree(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TalentService_GetTree_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TalentServiceServer).GetTree(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TalentService_GetProgression_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TalentServiceServer).GetProgression(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TalentService_GetProgression_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TalentServiceServer).GetProgression(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TalentService_GetStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TalentServiceServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TalentService_GetStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TalentServiceServer).GetStatus(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TalentService_Allocate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TalentServiceServer).Allocate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TalentService_Allocate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TalentServiceServer).Allocate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TalentService_Reclaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TalentServiceServer).Reclaim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TalentService_Reclaim_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TalentServiceServer).Reclaim(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TalentService_AddTalent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TalentServiceServer).AddTalent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TalentService_AddTalent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TalentServiceServer).AddTalent(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TalentService_RemoveTalent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TalentServiceServer).RemoveTalent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TalentService_RemoveTalent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TalentServiceServer).RemoveTalent(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TalentService_EditTalent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TalentServiceServer).EditTalent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TalentService_EditTalent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TalentServiceServer).EditTalent(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _TalentService_ReloadTrees_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TalentServiceServer).ReloadTrees(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TalentService_ReloadTrees_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TalentServiceServer).ReloadTrees(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// TalentService_ServiceDesc is the grpc.ServiceDesc for TalentService
var TalentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TalentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodListTrees,
			Handler:    _TalentService_ListTrees_Handler,
		},
		{
			MethodName: MethodGetTree,
			Handler:    _TalentService_GetTree_Handler,
		},
		{
			MethodName: MethodGetProgression,
			Handler:    _TalentService_GetProgression_Handler,
		},
		{
			MethodName: MethodGetStatus,
			Handler:    _TalentService_GetStatus_Handler,
		},
		{
			MethodName: MethodAllocate,
			Handler:    _TalentService_Allocate_Handler,
		},
		{
			MethodName: MethodReclaim,
			Handler:    _TalentService_Reclaim_Handler,
		},
		{
			MethodName: MethodAddTalent,
			Handler:    _TalentService_AddTalent_Handler,
		},
		{
			MethodName: MethodRemoveTalent,
			Handler:    _TalentService_RemoveTalent_Handler,
		},
		{
			MethodName: MethodEditTalent,
			Handler:    _TalentService_EditTalent_Handler,
		},
		{
			MethodName: MethodReloadTrees,
			Handler:    _TalentService_ReloadTrees_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "talents/v1alpha1/talent.proto",
}
