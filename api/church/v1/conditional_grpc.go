// Package v1 declares the church.v1.Conditional gRPC service over protobuf
// well-known wrapper messages, so no generated message code is needed.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName = "church.v1.Conditional"

	Conditional_Branch_FullMethodName = "/church.v1.Conditional/Branch"
	Conditional_Not_FullMethodName    = "/church.v1.Conditional/Not"
)

// Selector values on the wire. Anything else is rejected with InvalidArgument.
const (
	SelectorTrue  uint32 = 1
	SelectorFalse uint32 = 2
)

type ConditionalClient interface {
	// Branch returns the text of the branch the selector picks.
	Branch(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Not(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*wrapperspb.UInt32Value, error)
}

type conditionalClient struct {
	cc grpc.ClientConnInterface
}

func NewConditionalClient(cc grpc.ClientConnInterface) ConditionalClient {
	return &conditionalClient{cc}
}

func (c *conditionalClient) Branch(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, Conditional_Branch_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conditionalClient) Not(ctx context.Context, in *wrapperspb.UInt32Value, opts ...grpc.CallOption) (*wrapperspb.UInt32Value, error) {
	out := new(wrapperspb.UInt32Value)
	err := c.cc.Invoke(ctx, Conditional_Not_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type ConditionalServer interface {
	Branch(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.StringValue, error)
	Not(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.UInt32Value, error)
}

// UnimplementedConditionalServer can be embedded to have forward compatible implementations.
type UnimplementedConditionalServer struct{}

func (UnimplementedConditionalServer) Branch(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Branch not implemented")
}

func (UnimplementedConditionalServer) Not(context.Context, *wrapperspb.UInt32Value) (*wrapperspb.UInt32Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Not not implemented")
}

func RegisterConditionalServer(s grpc.ServiceRegistrar, srv ConditionalServer) {
	s.RegisterService(&Conditional_ServiceDesc, srv)
}

func _Conditional_Branch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConditionalServer).Branch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Conditional_Branch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConditionalServer).Branch(ctx, req.(*wrapperspb.UInt32Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _Conditional_Not_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConditionalServer).Not(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Conditional_Not_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ConditionalServer).Not(ctx, req.(*wrapperspb.UInt32Value))
	}
	return interceptor(ctx, in, info, handler)
}

var Conditional_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ConditionalServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Branch",
			Handler:    _Conditional_Branch_Handler,
		},
		{
			MethodName: "Not",
			Handler:    _Conditional_Not_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
