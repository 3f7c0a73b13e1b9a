// Package v1alpha1 handles the monster gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// MonsterServiceName is the fully qualified gRPC service name
const MonsterServiceName = "monsters.v1alpha1.MonsterService"

// MonsterServiceGenerateFullMethodName is the full method name of Generate
const MonsterServiceGenerateFullMethodName = "/" + MonsterServiceName + "/Generate"

// MonsterServiceServer is the server API for MonsterService. Messages are
// google.protobuf.Struct values shaped like the HTTP JSON bodies.
type MonsterServiceServer interface {
	Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// MonsterServiceDesc describes MonsterService for grpc.Server registration
var MonsterServiceDesc = grpc.ServiceDesc{
	ServiceName: MonsterServiceName,
	HandlerType: (*MonsterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    monsterServiceGenerateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "monsters/v1alpha1/monster.proto",
}

// RegisterMonsterServiceServer registers srv on s
func RegisterMonsterServiceServer(s grpc.ServiceRegistrar, srv MonsterServiceServer) {
	s.RegisterService(&MonsterServiceDesc, srv)
}

func monsterServiceGenerateHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MonsterServiceServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MonsterServiceGenerateFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MonsterServiceServer).Generate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// MonsterServiceClient is the client API for MonsterService
type MonsterServiceClient interface {
	Generate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type monsterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMonsterServiceClient creates a MonsterService client over cc
func NewMonsterServiceClient(cc grpc.ClientConnInterface) MonsterServiceClient {
	return &monsterServiceClient{cc: cc}
}

func (c *monsterServiceClient) Generate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MonsterServiceGenerateFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
