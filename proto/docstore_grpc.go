// ABOUTME: gRPC client and server stubs for the kernel service
// ABOUTME: Maintained by hand in the legacy generated style

package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const kernelServiceName = "docstore.Kernel"

// KernelClient is the client API for the Kernel service.
type KernelClient interface {
	PutDocument(ctx context.Context, in *PutDocumentRequest, opts ...grpc.CallOption) (*PutDocumentResponse, error)
	GetManifest(ctx context.Context, in *GetManifestRequest, opts ...grpc.CallOption) (*GetManifestResponse, error)
	GetVersion(ctx context.Context, in *GetVersionRequest, opts ...grpc.CallOption) (*GetVersionResponse, error)
	ListAssets(ctx context.Context, in *ListAssetsRequest, opts ...grpc.CallOption) (*ListAssetsResponse, error)
	PutAsset(ctx context.Context, in *PutAssetRequest, opts ...grpc.CallOption) (*PutAssetResponse, error)
	RenderDocument(ctx context.Context, in *RenderDocumentRequest, opts ...grpc.CallOption) (*RenderDocumentResponse, error)
	Health(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error)
	Stats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error)
}

type kernelClient struct {
	cc grpc.ClientConnInterface
}

func NewKernelClient(cc grpc.ClientConnInterface) KernelClient {
	return &kernelClient{cc}
}

func (c *kernelClient) PutDocument(ctx context.Context, in *PutDocumentRequest, opts ...grpc.CallOption) (*PutDocumentResponse, error) {
	out := new(PutDocumentResponse)
	err := c.cc.Invoke(ctx, "/"+kernelServiceName+"/PutDocument", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) GetManifest(ctx context.Context, in *GetManifestRequest, opts ...grpc.CallOption) (*GetManifestResponse, error) {
	out := new(GetManifestResponse)
	err := c.cc.Invoke(ctx, "/"+kernelServiceName+"/GetManifest", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) GetVersion(ctx context.Context, in *GetVersionRequest, opts ...grpc.CallOption) (*GetVersionResponse, error) {
	out := new(GetVersionResponse)
	err := c.cc.Invoke(ctx, "/"+kernelServiceName+"/GetVersion", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) ListAssets(ctx context.Context, in *ListAssetsRequest, opts ...grpc.CallOption) (*ListAssetsResponse, error) {
	out := new(ListAssetsResponse)
	err := c.cc.Invoke(ctx, "/"+kernelServiceName+"/ListAssets", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) PutAsset(ctx context.Context, in *PutAssetRequest, opts ...grpc.CallOption) (*PutAssetResponse, error) {
	out := new(PutAssetResponse)
	err := c.cc.Invoke(ctx, "/"+kernelServiceName+"/PutAsset", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) RenderDocument(ctx context.Context, in *RenderDocumentRequest, opts ...grpc.CallOption) (*RenderDocumentResponse, error) {
	out := new(RenderDocumentResponse)
	err := c.cc.Invoke(ctx, "/"+kernelServiceName+"/RenderDocument", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) Health(ctx context.Context, in *HealthCheckRequest, opts ...grpc.CallOption) (*HealthCheckResponse, error) {
	out := new(HealthCheckResponse)
	err := c.cc.Invoke(ctx, "/"+kernelServiceName+"/Health", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *kernelClient) Stats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error) {
	out := new(StatsResponse)
	err := c.cc.Invoke(ctx, "/"+kernelServiceName+"/Stats", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// KernelServer is the server API for the Kernel service. All implementations
// must embed UnimplementedKernelServer for forward compatibility.
type KernelServer interface {
	PutDocument(context.Context, *PutDocumentRequest) (*PutDocumentResponse, error)
	GetManifest(context.Context, *GetManifestRequest) (*GetManifestResponse, error)
	GetVersion(context.Context, *GetVersionRequest) (*GetVersionResponse, error)
	ListAssets(context.Context, *ListAssetsRequest) (*ListAssetsResponse, error)
	PutAsset(context.Context, *PutAssetRequest) (*PutAssetResponse, error)
	RenderDocument(context.Context, *RenderDocumentRequest) (*RenderDocumentResponse, error)
	Health(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error)
	Stats(context.Context, *StatsRequest) (*StatsResponse, error)
	mustEmbedUnimplementedKernelServer()
}

// UnimplementedKernelServer must be embedded to have forward compatible
// implementations.
type UnimplementedKernelServer struct{}

func (UnimplementedKernelServer) PutDocument(context.Context, *PutDocumentRequest) (*PutDocumentResponse, error) {
	return nil, errUnimplemented("PutDocument")
}
func (UnimplementedKernelServer) GetManifest(context.Context, *GetManifestRequest) (*GetManifestResponse, error) {
	return nil, errUnimplemented("GetManifest")
}
func (UnimplementedKernelServer) GetVersion(context.Context, *GetVersionRequest) (*GetVersionResponse, error) {
	return nil, errUnimplemented("GetVersion")
}
func (UnimplementedKernelServer) ListAssets(context.Context, *ListAssetsRequest) (*ListAssetsResponse, error) {
	return nil, errUnimplemented("ListAssets")
}
func (UnimplementedKernelServer) PutAsset(context.Context, *PutAssetRequest) (*PutAssetResponse, error) {
	return nil, errUnimplemented("PutAsset")
}
func (UnimplementedKernelServer) RenderDocument(context.Context, *RenderDocumentRequest) (*RenderDocumentResponse, error) {
	return nil, errUnimplemented("RenderDocument")
}
func (UnimplementedKernelServer) Health(context.Context, *HealthCheckRequest) (*HealthCheckResponse, error) {
	return nil, errUnimplemented("Health")
}
func (UnimplementedKernelServer) Stats(context.Context, *StatsRequest) (*StatsResponse, error) {
	return nil, errUnimplemented("Stats")
}
func (UnimplementedKernelServer) mustEmbedUnimplementedKernelServer() {}

func errUnimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

// RegisterKernelServer registers the service implementation with a gRPC
// server.
func RegisterKernelServer(s grpc.ServiceRegistrar, srv KernelServer) {
	s.RegisterService(&Kernel_ServiceDesc, srv)
}

func kernelPutDocumentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KernelServer).PutDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + kernelServiceName + "/PutDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KernelServer).PutDocument(ctx, req.(*PutDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func kernelGetManifestHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetManifestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KernelServer).GetManifest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + kernelServiceName + "/GetManifest",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KernelServer).GetManifest(ctx, req.(*GetManifestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func kernelGetVersionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KernelServer).GetVersion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + kernelServiceName + "/GetVersion",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KernelServer).GetVersion(ctx, req.(*GetVersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func kernelListAssetsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAssetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KernelServer).ListAssets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + kernelServiceName + "/ListAssets",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KernelServer).ListAssets(ctx, req.(*ListAssetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func kernelPutAssetHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KernelServer).PutAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + kernelServiceName + "/PutAsset",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KernelServer).PutAsset(ctx, req.(*PutAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func kernelRenderDocumentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RenderDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KernelServer).RenderDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + kernelServiceName + "/RenderDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KernelServer).RenderDocument(ctx, req.(*RenderDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func kernelHealthHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HealthCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KernelServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + kernelServiceName + "/Health",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KernelServer).Health(ctx, req.(*HealthCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func kernelStatsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(KernelServer).Stats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + kernelServiceName + "/Stats",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(KernelServer).Stats(ctx, req.(*StatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Kernel_ServiceDesc is the grpc.ServiceDesc for the Kernel service.
var Kernel_ServiceDesc = grpc.ServiceDesc{
	ServiceName: kernelServiceName,
	HandlerType: (*KernelServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PutDocument", Handler: kernelPutDocumentHandler},
		{MethodName: "GetManifest", Handler: kernelGetManifestHandler},
		{MethodName: "GetVersion", Handler: kernelGetVersionHandler},
		{MethodName: "ListAssets", Handler: kernelListAssetsHandler},
		{MethodName: "PutAsset", Handler: kernelPutAssetHandler},
		{MethodName: "RenderDocument", Handler: kernelRenderDocumentHandler},
		{MethodName: "Health", Handler: kernelHealthHandler},
		{MethodName: "Stats", Handler: kernelStatsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "docstore.proto",
}
