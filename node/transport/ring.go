// Package transport defines the chord.Ring gRPC service. Requests and replies are protobuf
// well-known types, so the service descriptor is written out here instead of generated.
package transport

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	Ring_MaxID_FullMethodName       = "/chord.Ring/MaxID"
	Ring_AddNode_FullMethodName     = "/chord.Ring/AddNode"
	Ring_DeleteNode_FullMethodName  = "/chord.Ring/DeleteNode"
	Ring_Search_FullMethodName      = "/chord.Ring/Search"
	Ring_Predecessor_FullMethodName = "/chord.Ring/Predecessor"
	Ring_GetRing_FullMethodName     = "/chord.Ring/GetRing"
)

type RingClient interface {
	MaxID(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	AddNode(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	DeleteNode(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Search(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	Predecessor(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	GetRing(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type ringClient struct {
	cc grpc.ClientConnInterface
}

func NewRingClient(cc grpc.ClientConnInterface) RingClient {
	return &ringClient{cc}
}

func (c *ringClient) MaxID(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, Ring_MaxID_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ringClient) AddNode(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, Ring_AddNode_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ringClient) DeleteNode(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, Ring_DeleteNode_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ringClient) Search(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, Ring_Search_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ringClient) Predecessor(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	if err := c.cc.Invoke(ctx, Ring_Predecessor_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ringClient) GetRing(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, Ring_GetRing_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RingServer must embed UnimplementedRingServer.
type RingServer interface {
	MaxID(context.Context, *emptypb.Empty) (*wrapperspb.UInt64Value, error)
	AddNode(context.Context, *emptypb.Empty) (*wrapperspb.UInt64Value, error)
	DeleteNode(context.Context, *wrapperspb.UInt64Value) (*emptypb.Empty, error)
	Search(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error)
	Predecessor(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error)
	GetRing(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	mustEmbedUnimplementedRingServer()
}

type UnimplementedRingServer struct{}

func (UnimplementedRingServer) MaxID(context.Context, *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MaxID not implemented")
}
func (UnimplementedRingServer) AddNode(context.Context, *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddNode not implemented")
}
func (UnimplementedRingServer) DeleteNode(context.Context, *wrapperspb.UInt64Value) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteNode not implemented")
}
func (UnimplementedRingServer) Search(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Search not implemented")
}
func (UnimplementedRingServer) Predecessor(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Predecessor not implemented")
}
func (UnimplementedRingServer) GetRing(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRing not implemented")
}
func (UnimplementedRingServer) mustEmbedUnimplementedRingServer() {}

func RegisterRingServer(s grpc.ServiceRegistrar, srv RingServer) {
	s.RegisterService(&Ring_ServiceDesc, srv)
}

func _Ring_MaxID_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RingServer).MaxID(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Ring_MaxID_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RingServer).MaxID(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Ring_AddNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RingServer).AddNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Ring_AddNode_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RingServer).AddNode(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Ring_DeleteNode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RingServer).DeleteNode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Ring_DeleteNode_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RingServer).DeleteNode(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _Ring_Search_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RingServer).Search(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Ring_Search_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RingServer).Search(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _Ring_Predecessor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RingServer).Predecessor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Ring_Predecessor_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RingServer).Predecessor(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _Ring_GetRing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RingServer).GetRing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Ring_GetRing_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RingServer).GetRing(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var Ring_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chord.Ring",
	HandlerType: (*RingServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "MaxID", Handler: _Ring_MaxID_Handler},
		{MethodName: "AddNode", Handler: _Ring_AddNode_Handler},
		{MethodName: "DeleteNode", Handler: _Ring_DeleteNode_Handler},
		{MethodName: "Search", Handler: _Ring_Search_Handler},
		{MethodName: "Predecessor", Handler: _Ring_Predecessor_Handler},
		{MethodName: "GetRing", Handler: _Ring_GetRing_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "node/transport/ring.go",
}
