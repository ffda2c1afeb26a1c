package fpx

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fileproc/pkg/client"
	"fileproc/pkg/config"

	"github.com/spf13/cobra"
)

// options is what every subcommand needs to reach the server.
type options struct {
	configPath string
	serverAddr string
	chunkSize  int
	timeout    time.Duration
	outputDir  string

	tls        bool
	certPath   string
	keyPath    string
	caPath     string
	serverName string
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "fpx",
		Short:         "fileproc client",
		Long:          "Command line client that streams files to a fileproc server and saves the transformed result.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	defaults := config.DefaultConfig
	flags.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flags.StringVarP(&opts.serverAddr, "server", "s", defaults.Client.ServerAddr, "Server address in format host:port")
	flags.IntVar(&opts.chunkSize, "chunk-size", defaults.Client.ChunkSize, "Upload chunk size in bytes")
	flags.DurationVar(&opts.timeout, "timeout", defaults.Client.Timeout, "Overall time limit per request")
	flags.StringVarP(&opts.outputDir, "output-dir", "o", defaults.Client.OutputDir, "Directory for relative output paths")
	flags.BoolVar(&opts.tls, "tls", false, "Use mutual TLS")
	flags.StringVar(&opts.certPath, "cert", defaults.Security.ClientCertPath, "Path to client certificate file")
	flags.StringVar(&opts.keyPath, "key", defaults.Security.ClientKeyPath, "Path to client key file")
	flags.StringVar(&opts.caPath, "ca", defaults.Security.CACertPath, "Path to CA certificate file")
	flags.StringVar(&opts.serverName, "server-name", "fileproc", "Expected server certificate name")

	_ = flags.MarkHidden("cert")
	_ = flags.MarkHidden("key")
	_ = flags.MarkHidden("ca")

	rootCmd.AddCommand(newCompressCmd(opts))
	rootCmd.AddCommand(newInlineCmd(opts))
	rootCmd.AddCommand(newToTextCmd(opts))
	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newResizeCmd(opts))

	return rootCmd
}

// resolve fills options from the configuration file for every flag the
// user did not set.
func (o *options) resolve(cmd *cobra.Command) error {
	if o.configPath == "" {
		return nil
	}

	cfg, _, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("server") {
		o.serverAddr = cfg.Client.ServerAddr
	}
	if !flags.Changed("chunk-size") {
		o.chunkSize = cfg.Client.ChunkSize
	}
	if !flags.Changed("timeout") {
		o.timeout = cfg.Client.Timeout
	}
	if !flags.Changed("output-dir") {
		o.outputDir = cfg.Client.OutputDir
	}
	if !flags.Changed("tls") {
		o.tls = cfg.Security.TLSEnabled
	}
	if !flags.Changed("cert") {
		o.certPath = cfg.Security.ClientCertPath
	}
	if !flags.Changed("key") {
		o.keyPath = cfg.Security.ClientKeyPath
	}
	if !flags.Changed("ca") {
		o.caPath = cfg.Security.CACertPath
	}
	return nil
}

func (o *options) newClient() (*client.FileProcessorClient, error) {
	clientOpts := client.Options{
		ServerAddr: o.serverAddr,
		ChunkSize:  o.chunkSize,
	}
	if o.tls {
		clientOpts.TLS = &client.TLSOptions{
			CertPath:   o.certPath,
			KeyPath:    o.keyPath,
			CACertPath: o.caPath,
			ServerName: o.serverName,
		}
	}

	c, err := client.NewFileProcessorClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}

// outputPath places relative output paths under the configured output
// directory.
func (o *options) outputPath(path string) string {
	if o.outputDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.outputDir, path)
}

func (o *options) requestContext() (context.Context, context.CancelFunc) {
	if o.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), o.timeout)
}
