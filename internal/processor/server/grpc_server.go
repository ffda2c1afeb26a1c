package server

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	pb "fileproc/api/gen"
	"fileproc/pkg/config"
	"fileproc/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"
)

// NewGRPCServer builds a gRPC server from cfg and registers service on it.
func NewGRPCServer(cfg *config.Config, service pb.FileProcessorServiceServer) (*grpc.Server, error) {
	serverLogger := logger.WithField("component", "grpc-server")

	grpcOptions := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(int(cfg.GRPC.MaxRecvMsgSize)),
		grpc.MaxSendMsgSize(int(cfg.GRPC.MaxSendMsgSize)),
		grpc.MaxHeaderListSize(uint32(cfg.GRPC.MaxHeaderListSize)),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    cfg.GRPC.KeepAliveTime,
			Timeout: cfg.GRPC.KeepAliveTimeout,
		}),
	}

	serverLogger.Debug("gRPC server options configured",
		"maxRecvMsgSize", cfg.GRPC.MaxRecvMsgSize,
		"maxSendMsgSize", cfg.GRPC.MaxSendMsgSize,
		"maxHeaderListSize", cfg.GRPC.MaxHeaderListSize,
		"keepAliveTime", cfg.GRPC.KeepAliveTime)

	if cfg.Security.TLSEnabled {
		tlsConfig, err := serverTLSConfig(cfg.Security)
		if err != nil {
			return nil, err
		}
		grpcOptions = append(grpcOptions, grpc.Creds(credentials.NewTLS(tlsConfig)))
	}

	grpcServer := grpc.NewServer(grpcOptions...)
	pb.RegisterFileProcessorServiceServer(grpcServer, service)

	serverLogger.Info("file processor service registered", "tlsEnabled", cfg.Security.TLSEnabled)
	return grpcServer, nil
}

// serverTLSConfig requires client certificates signed by the configured CA.
func serverTLSConfig(sec config.SecurityConfig) (*tls.Config, error) {
	serverCert, err := tls.LoadX509KeyPair(sec.ServerCertPath, sec.ServerKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load server cert/key: %w", err)
	}

	caCert, err := os.ReadFile(sec.CACertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA certificate: %w", err)
	}

	certPool := x509.NewCertPool()
	if ok := certPool.AppendCertsFromPEM(caCert); !ok {
		return nil, fmt.Errorf("failed to add CA certificate to pool")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{serverCert},
		ClientCAs:    certPool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS13,
	}, nil
}
