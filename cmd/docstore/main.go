// docstore gRPC server
// Versioned manifests for documents, bundles and journals
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/nainya/docstore/internal/logger"
	"github.com/nainya/docstore/internal/metrics"
	"github.com/nainya/docstore/internal/server"
	"github.com/nainya/docstore/pkg/store"
	pb "github.com/nainya/docstore/proto"
)

var (
	port         = flag.Int("port", 50051, "The server port")
	dbPath       = flag.String("db", "docstore.log", "Manifest log file path")
	metricsPort  = flag.Int("metrics-port", 9090, "Observability HTTP port")
	fetchTimeout = flag.Duration("fetch-timeout", 2*time.Second, "Remote content fetch timeout")
	logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logPretty    = flag.Bool("log-pretty", false, "Pretty-print logs for development")
)

func main() {
	flag.Parse()

	logger.InitGlobalLogger(logger.Config{
		Level:  *logLevel,
		Pretty: *logPretty,
	})
	log := logger.GetGlobalLogger()
	log.LogServerStart(*port, *dbPath)

	st, err := store.OpenFileStore(*dbPath)
	if err != nil {
		log.Fatal("Failed to open store").Err(err).Send()
	}
	defer st.Close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Fatal("Failed to listen").Err(err).Send()
	}

	m := metrics.NewMetrics()

	kernel := server.NewServer(st,
		server.WithFetchTimeout(*fetchTimeout),
		server.WithMetrics(m),
		server.WithLogger(log),
	)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.GrpcMetricsInterceptor(m, log)),
	)
	pb.RegisterKernelServer(grpcServer, kernel)

	obs := server.NewObservabilityServer(*metricsPort, log)
	go func() {
		if err := obs.Start(); err != nil {
			log.Error("Observability server stopped").Err(err).Send()
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.LogServerShutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		obs.Shutdown(ctx)

		grpcServer.GracefulStop()
	}()

	log.LogServerReady(*port)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatal("Failed to serve").Err(err).Send()
	}
}
