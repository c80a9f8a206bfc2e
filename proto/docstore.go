// ABOUTME: Protobuf message types for the kernel service
// ABOUTME: Maintained by hand in the legacy generated style

// Package proto holds the wire types of the docstore kernel service.
package proto

import "fmt"

type PutDocumentRequest struct {
	Id      string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DataUrl string `protobuf:"bytes,2,opt,name=data_url,json=dataUrl,proto3" json:"data_url,omitempty"`
}

func (m *PutDocumentRequest) Reset()         { *m = PutDocumentRequest{} }
func (m *PutDocumentRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*PutDocumentRequest) ProtoMessage()    {}

type PutDocumentResponse struct {
	// Applied is false when the request matched the latest version and
	// nothing was appended
	Applied bool   `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *PutDocumentResponse) Reset()         { *m = PutDocumentResponse{} }
func (m *PutDocumentResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*PutDocumentResponse) ProtoMessage()    {}

type GetManifestRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetManifestRequest) Reset()         { *m = GetManifestRequest{} }
func (m *GetManifestRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetManifestRequest) ProtoMessage()    {}

type GetManifestResponse struct {
	// Manifest is the full version history encoded as JSON
	Manifest []byte `protobuf:"bytes,1,opt,name=manifest,proto3" json:"manifest,omitempty"`
}

func (m *GetManifestResponse) Reset()         { *m = GetManifestResponse{} }
func (m *GetManifestResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetManifestResponse) ProtoMessage()    {}

type GetVersionRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// Index selects a version by position; negative values count from the
	// end, so -1 is the latest. Ignored when At is set.
	Index int32 `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
	// At selects the version in effect at an ISO-8601 instant; a bare date
	// means end of that day
	At string `protobuf:"bytes,3,opt,name=at,proto3" json:"at,omitempty"`
}

func (m *GetVersionRequest) Reset()         { *m = GetVersionRequest{} }
func (m *GetVersionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetVersionRequest) ProtoMessage()    {}

type GetVersionResponse struct {
	Data      string            `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	Timestamp string            `protobuf:"bytes,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Assets    map[string]string `protobuf:"bytes,3,rep,name=assets,proto3" json:"assets,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *GetVersionResponse) Reset()         { *m = GetVersionResponse{} }
func (m *GetVersionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetVersionResponse) ProtoMessage()    {}

type ListAssetsRequest struct {
	Id string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *ListAssetsRequest) Reset()         { *m = ListAssetsRequest{} }
func (m *ListAssetsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListAssetsRequest) ProtoMessage()    {}

type ListAssetsResponse struct {
	// Assets maps asset id to its latest URI binding, empty when unbound
	Assets map[string]string `protobuf:"bytes,1,rep,name=assets,proto3" json:"assets,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
}

func (m *ListAssetsResponse) Reset()         { *m = ListAssetsResponse{} }
func (m *ListAssetsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ListAssetsResponse) ProtoMessage()    {}

type PutAssetRequest struct {
	Id       string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AssetId  string `protobuf:"bytes,2,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	AssetUrl string `protobuf:"bytes,3,opt,name=asset_url,json=assetUrl,proto3" json:"asset_url,omitempty"`
}

func (m *PutAssetRequest) Reset()         { *m = PutAssetRequest{} }
func (m *PutAssetRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*PutAssetRequest) ProtoMessage()    {}

type PutAssetResponse struct {
	Applied bool   `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *PutAssetResponse) Reset()         { *m = PutAssetResponse{} }
func (m *PutAssetResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*PutAssetResponse) ProtoMessage()    {}

type RenderDocumentRequest struct {
	Id    string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Index int32  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
	At    string `protobuf:"bytes,3,opt,name=at,proto3" json:"at,omitempty"`
}

func (m *RenderDocumentRequest) Reset()         { *m = RenderDocumentRequest{} }
func (m *RenderDocumentRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RenderDocumentRequest) ProtoMessage()    {}

type RenderDocumentResponse struct {
	// Content is the document content with every asset reference rewritten
	// to its resolved URI
	Content []byte `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
}

func (m *RenderDocumentResponse) Reset()         { *m = RenderDocumentResponse{} }
func (m *RenderDocumentResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RenderDocumentResponse) ProtoMessage()    {}

type HealthCheckRequest struct{}

func (m *HealthCheckRequest) Reset()         { *m = HealthCheckRequest{} }
func (m *HealthCheckRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*HealthCheckRequest) ProtoMessage()    {}

type HealthCheckResponse struct {
	Healthy       bool   `protobuf:"varint,1,opt,name=healthy,proto3" json:"healthy,omitempty"`
	Version       string `protobuf:"bytes,2,opt,name=version,proto3" json:"version,omitempty"`
	UptimeSeconds int64  `protobuf:"varint,3,opt,name=uptime_seconds,json=uptimeSeconds,proto3" json:"uptime_seconds,omitempty"`
}

func (m *HealthCheckResponse) Reset()         { *m = HealthCheckResponse{} }
func (m *HealthCheckResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*HealthCheckResponse) ProtoMessage()    {}

type StatsRequest struct{}

func (m *StatsRequest) Reset()         { *m = StatsRequest{} }
func (m *StatsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatsRequest) ProtoMessage()    {}

type StatsResponse struct {
	TotalDocuments  int64            `protobuf:"varint,1,opt,name=total_documents,json=totalDocuments,proto3" json:"total_documents,omitempty"`
	TotalBundles    int64            `protobuf:"varint,2,opt,name=total_bundles,json=totalBundles,proto3" json:"total_bundles,omitempty"`
	TotalJournals   int64            `protobuf:"varint,3,opt,name=total_journals,json=totalJournals,proto3" json:"total_journals,omitempty"`
	OperationCounts map[string]int64 `protobuf:"bytes,4,rep,name=operation_counts,json=operationCounts,proto3" json:"operation_counts,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"varint,2,opt,name=value,proto3"`
}

func (m *StatsResponse) Reset()         { *m = StatsResponse{} }
func (m *StatsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*StatsResponse) ProtoMessage()    {}
