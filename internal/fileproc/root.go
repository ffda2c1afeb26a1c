package fileproc

import (
	"fmt"
	"runtime"

	"fileproc/internal/modes"
	"fileproc/pkg/config"
	"fileproc/pkg/logger"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X fileproc/internal/fileproc.Version=...".
var Version = "dev"

var configPath string

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fileproc",
		Short:         "File transformation server",
		Long:          `fileproc accepts files over gRPC streams and compresses PDFs, extracts
their text, converts image formats and resizes images using Ghostscript,
pdftotext and ImageMagick.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to configuration file (default: search FILEPROC_CONFIG_PATH, ./config.yaml, /etc/fileproc)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loadedFrom, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			closeLog, err := modes.SetupLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			defer closeLog()

			logger.Info("configuration loaded", "source", loadedFrom)

			return modes.RunServer(cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultConfig.Server.Port, "Port to listen on")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or generate configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.GenerateDefaultConfig(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default configuration written to %s\n", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loadedFrom, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			data, err := cfg.ToYAML()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", loadedFrom)
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fileproc %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
