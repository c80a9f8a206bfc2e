// Package server implements the gRPC docstore kernel service
package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nainya/docstore/internal/logger"
	"github.com/nainya/docstore/internal/metrics"
	"github.com/nainya/docstore/pkg/document"
	"github.com/nainya/docstore/pkg/fetch"
	"github.com/nainya/docstore/pkg/manifest"
	"github.com/nainya/docstore/pkg/store"
	"github.com/nainya/docstore/pkg/timeline"
	pb "github.com/nainya/docstore/proto"
)

const serverVersion = "0.1.0"

// noOpMessage is returned when a put matched the latest version and nothing
// was appended
const noOpMessage = "could not add version: the version is equal to the latest one"

// Server implements the KernelServer interface
type Server struct {
	pb.UnimplementedKernelServer

	store   store.Store
	getter  fetch.Getter
	timeout time.Duration
	metrics *metrics.Metrics
	log     *logger.Logger

	startTime time.Time
	mu        sync.Mutex
	opCounts  map[string]int64
}

// Option configures the server
type Option func(*Server)

// WithGetter replaces the remote content getter
func WithGetter(g fetch.Getter) Option {
	return func(s *Server) { s.getter = g }
}

// WithFetchTimeout sets the remote fetch timeout
func WithFetchTimeout(timeout time.Duration) Option {
	return func(s *Server) { s.timeout = timeout }
}

// WithMetrics attaches Prometheus metrics
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLogger replaces the default logger
func WithLogger(log *logger.Logger) Option {
	return func(s *Server) { s.log = log }
}

// NewServer creates a new kernel service instance on top of a store
func NewServer(st store.Store, opts ...Option) *Server {
	s := &Server{
		store:     st,
		getter:    fetch.AssetsFromRemoteXML,
		timeout:   document.DefaultTimeout,
		log:       logger.GetGlobalLogger(),
		startTime: time.Now(),
		opCounts:  make(map[string]int64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) countOp(name string) {
	s.mu.Lock()
	s.opCounts[name]++
	s.mu.Unlock()
}

// docOptions builds the aggregate options, wrapping the getter to record
// fetch outcomes when metrics are attached
func (s *Server) docOptions() []document.Option {
	getter := s.getter
	if s.metrics != nil {
		inner := getter
		getter = func(url string, timeout time.Duration) (fetch.Content, []fetch.AssetRef, error) {
			content, refs, err := inner(url, timeout)
			var retryable *fetch.RetryableError
			switch {
			case err == nil:
				s.metrics.RecordFetch("ok")
			case errors.As(err, &retryable):
				s.metrics.RecordFetch("retryable")
			default:
				s.metrics.RecordFetch("non_retryable")
			}
			return content, refs, err
		}
	}
	return []document.Option{document.WithGetter(getter), document.WithTimeout(s.timeout)}
}

// rpcError maps engine errors to gRPC status codes
func rpcError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, manifest.ErrVersionNotFound),
		errors.Is(err, manifest.ErrUnknownAsset):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, store.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, timeline.ErrInvalidTimestamp):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	var nonRetryable *fetch.NonRetryableError
	if errors.As(err, &nonRetryable) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	var retryable *fetch.RetryableError
	if errors.As(err, &retryable) {
		return status.Error(codes.Unavailable, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func (s *Server) updateStoreStats() {
	if s.metrics == nil {
		return
	}
	counts := s.store.Counts()
	s.metrics.UpdateStoreStats(counts.Documents, counts.Bundles, counts.Journals)
}

// loadDocument rehydrates the aggregate for id; created reports whether the
// id is new to the store
func (s *Server) loadDocument(id string) (doc *document.Document, created bool, err error) {
	m, err := s.store.Document(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return document.New(id, s.docOptions()...), true, nil
		}
		return nil, false, err
	}
	return document.FromManifest(m, s.docOptions()...), false, nil
}

// PutDocument creates the document on first use and appends a new version.
// A data URL equal to the latest version is reported as applied=false.
func (s *Server) PutDocument(ctx context.Context, req *pb.PutDocumentRequest) (*pb.PutDocumentResponse, error) {
	s.countOp("PutDocument")

	if req.Id == "" || req.DataUrl == "" {
		return nil, status.Error(codes.InvalidArgument, "id and data_url are required")
	}

	doc, created, err := s.loadDocument(req.Id)
	if err != nil {
		return nil, rpcError(err)
	}

	res, err := doc.NewVersion(req.DataUrl)
	if err != nil {
		return nil, rpcError(err)
	}
	if res == document.NoOp {
		return &pb.PutDocumentResponse{Applied: false, Message: noOpMessage}, nil
	}

	if created {
		err = s.store.AddDocument(doc.Manifest())
	} else {
		err = s.store.UpdateDocument(doc.Manifest())
	}
	if err != nil {
		return nil, rpcError(err)
	}

	if s.metrics != nil {
		s.metrics.VersionAppendsTotal.Inc()
	}
	s.updateStoreStats()
	s.log.StoreLogger("put_document").Debug("Version appended").Str("id", req.Id).Send()
	return &pb.PutDocumentResponse{Applied: true}, nil
}

// GetManifest returns the full version history of a document as JSON
func (s *Server) GetManifest(ctx context.Context, req *pb.GetManifestRequest) (*pb.GetManifestResponse, error) {
	s.countOp("GetManifest")

	m, err := s.store.Document(req.Id)
	if err != nil {
		return nil, rpcError(err)
	}
	encoded, err := json.Marshal(m)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetManifestResponse{Manifest: encoded}, nil
}

// GetVersion resolves one version by index or, when at is set, by instant
func (s *Server) GetVersion(ctx context.Context, req *pb.GetVersionRequest) (*pb.GetVersionResponse, error) {
	s.countOp("GetVersion")

	m, err := s.store.Document(req.Id)
	if err != nil {
		return nil, rpcError(err)
	}
	doc := document.FromManifest(m, s.docOptions()...)

	var view document.VersionView
	if req.At != "" {
		view, err = doc.VersionAt(req.At)
		if s.metrics != nil {
			s.metrics.TemporalLookupsTotal.Inc()
		}
	} else {
		view, err = doc.Version(int(req.Index))
		if s.metrics != nil {
			s.metrics.VersionQueriesTotal.Inc()
		}
	}
	if err != nil {
		return nil, rpcError(err)
	}

	return &pb.GetVersionResponse{
		Data:      view.Data,
		Timestamp: view.Timestamp,
		Assets:    view.Assets,
	}, nil
}

// ListAssets returns the latest version's asset bindings. A document with no
// versions yet has no assets.
func (s *Server) ListAssets(ctx context.Context, req *pb.ListAssetsRequest) (*pb.ListAssetsResponse, error) {
	s.countOp("ListAssets")

	m, err := s.store.Document(req.Id)
	if err != nil {
		return nil, rpcError(err)
	}
	doc := document.FromManifest(m, s.docOptions()...)

	view, err := doc.Version(-1)
	if err != nil {
		if errors.Is(err, manifest.ErrVersionNotFound) {
			return &pb.ListAssetsResponse{Assets: map[string]string{}}, nil
		}
		return nil, rpcError(err)
	}
	return &pb.ListAssetsResponse{Assets: view.Assets}, nil
}

// PutAsset binds a URL to an asset of the latest document version. A URL
// equal to the asset's latest binding is reported as applied=false.
func (s *Server) PutAsset(ctx context.Context, req *pb.PutAssetRequest) (*pb.PutAssetResponse, error) {
	s.countOp("PutAsset")

	if req.Id == "" || req.AssetId == "" || req.AssetUrl == "" {
		return nil, status.Error(codes.InvalidArgument, "id, asset_id and asset_url are required")
	}

	m, err := s.store.Document(req.Id)
	if err != nil {
		return nil, rpcError(err)
	}
	doc := document.FromManifest(m, s.docOptions()...)

	res, err := doc.NewAssetVersion(req.AssetId, req.AssetUrl)
	if err != nil {
		return nil, rpcError(err)
	}
	if res == document.NoOp {
		return &pb.PutAssetResponse{Applied: false, Message: noOpMessage}, nil
	}

	if err := s.store.UpdateDocument(doc.Manifest()); err != nil {
		return nil, rpcError(err)
	}

	if s.metrics != nil {
		s.metrics.AssetVersionAppendsTotal.Inc()
	}
	s.log.StoreLogger("put_asset").Debug("Asset version appended").
		Str("id", req.Id).Str("asset_id", req.AssetId).Send()
	return &pb.PutAssetResponse{Applied: true}, nil
}

// RenderDocument assembles the document content with every asset reference
// rewritten to its resolved URI
func (s *Server) RenderDocument(ctx context.Context, req *pb.RenderDocumentRequest) (*pb.RenderDocumentResponse, error) {
	s.countOp("RenderDocument")

	m, err := s.store.Document(req.Id)
	if err != nil {
		return nil, rpcError(err)
	}
	doc := document.FromManifest(m, s.docOptions()...)

	var content []byte
	if req.At != "" {
		content, err = doc.DataAt(req.At)
	} else {
		content, err = doc.Data(int(req.Index))
	}
	if err != nil {
		return nil, rpcError(err)
	}

	if s.metrics != nil {
		s.metrics.RendersTotal.Inc()
	}
	return &pb.RenderDocumentResponse{Content: content}, nil
}

// Health reports service health and uptime
func (s *Server) Health(ctx context.Context, req *pb.HealthCheckRequest) (*pb.HealthCheckResponse, error) {
	s.countOp("Health")

	return &pb.HealthCheckResponse{
		Healthy:       true,
		Version:       serverVersion,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
	}, nil
}

// Stats reports stored manifest counts and per-operation call counts
func (s *Server) Stats(ctx context.Context, req *pb.StatsRequest) (*pb.StatsResponse, error) {
	s.countOp("Stats")

	counts := s.store.Counts()

	s.mu.Lock()
	ops := make(map[string]int64, len(s.opCounts))
	for name, n := range s.opCounts {
		ops[name] = n
	}
	s.mu.Unlock()

	return &pb.StatsResponse{
		TotalDocuments:  int64(counts.Documents),
		TotalBundles:    int64(counts.Bundles),
		TotalJournals:   int64(counts.Journals),
		OperationCounts: ops,
	}, nil
}
