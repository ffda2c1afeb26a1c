package fpx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"fileproc/pkg/client"

	"github.com/spf13/cobra"
)

// transferFunc runs one streaming call from in to out.
type transferFunc func(c *client.FileProcessorClient, cmd *cobra.Command, in io.Reader, out io.Writer) (*client.Result, error)

func newCompressCmd(opts *options) *cobra.Command {
	var inline bool

	cmd := &cobra.Command{
		Use:   "compress <input.pdf> <output.pdf>",
		Short: "Compress a PDF",
		Example: `  fpx compress document.pdf compressed.pdf
  fpx compress --inline document.pdf compressed.pdf`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inline {
				return runInline(opts, cmd, args[0], args[1])
			}
			res, err := transfer(opts, cmd, args[0], args[1],
				func(c *client.FileProcessorClient, cmd *cobra.Command, in io.Reader, out io.Writer) (*client.Result, error) {
					return c.CompressPDF(cmd.Context(), filepath.Base(args[0]), in, out)
				})
			if err != nil {
				return err
			}
			printReduction(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&inline, "inline", false, "Send the whole file in a single request")
	return cmd
}

func newInlineCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inline <input.pdf> <output.pdf>",
		Short: "Compress a PDF with a single request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInline(opts, cmd, args[0], args[1])
		},
	}
}

func newToTextCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "totext <input.pdf> <output.txt>",
		Aliases: []string{"totxt"},
		Short:   "Extract the text of a PDF",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := transfer(opts, cmd, args[0], args[1],
				func(c *client.FileProcessorClient, cmd *cobra.Command, in io.Reader, out io.Writer) (*client.Result, error) {
					return c.ConvertToText(cmd.Context(), filepath.Base(args[0]), in, out)
				})
			return err
		},
	}
}

func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <input> <output> <format>",
		Aliases: []string{"convertimg"},
		Short:   "Convert an image to another format",
		Example: "  fpx convert image.jpg image.png png",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := args[2]
			_, err := transfer(opts, cmd, args[0], args[1],
				func(c *client.FileProcessorClient, cmd *cobra.Command, in io.Reader, out io.Writer) (*client.Result, error) {
					return c.ConvertImageFormat(cmd.Context(), filepath.Base(args[0]), format, in, out)
				})
			return err
		},
	}
}

func newResizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "resize <input> <output> <width> <height>",
		Short:   "Resize an image",
		Example: "  fpx resize photo.jpg small_photo.jpg 300 200",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseDimension("width", args[2])
			if err != nil {
				return err
			}
			height, err := parseDimension("height", args[3])
			if err != nil {
				return err
			}

			_, err = transfer(opts, cmd, args[0], args[1],
				func(c *client.FileProcessorClient, cmd *cobra.Command, in io.Reader, out io.Writer) (*client.Result, error) {
					return c.ResizeImage(cmd.Context(), filepath.Base(args[0]), width, height, in, out)
				})
			return err
		},
	}
}

func parseDimension(name, value string) (int32, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", name, value)
	}
	return int32(n), nil
}

// transfer streams input to the server and writes the result next to
// output, renaming it into place only on success.
func transfer(opts *options, cmd *cobra.Command, input, output string, fn transferFunc) (*client.Result, error) {
	output = opts.outputPath(output)

	in, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("input file: %w", err)
	}
	defer in.Close()

	c, err := opts.newClient()
	if err != nil {
		return nil, err
	}
	defer c.Close()

	partial := output + ".part"
	out, err := os.Create(partial)
	if err != nil {
		return nil, fmt.Errorf("output file: %w", err)
	}

	ctx, cancel := opts.requestContext()
	defer cancel()
	cmd.SetContext(ctx)

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", input, output)
	res, err := fn(c, cmd, in, out)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("output file: %w", closeErr)
	}
	if err != nil {
		_ = os.Remove(partial)
		return nil, err
	}
	if err := os.Rename(partial, output); err != nil {
		_ = os.Remove(partial)
		return nil, fmt.Errorf("output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %d bytes)\n", res.Message, res.FileName, res.BytesReceived)
	return res, nil
}

func runInline(opts *options, cmd *cobra.Command, input, output string) error {
	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	c, err := opts.newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := opts.requestContext()
	defer cancel()

	output = opts.outputPath(output)
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (inline)\n", input, output)
	res, compressed, err := c.CompressPDFInline(ctx, filepath.Base(input), content)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, compressed, 0644); err != nil {
		return fmt.Errorf("output file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", res.Message, res.FileName)
	printReduction(cmd.OutOrStdout(), res)
	return nil
}

func printReduction(w io.Writer, res *client.Result) {
	fmt.Fprintf(w, "Original size:   %d bytes\n", res.BytesSent)
	fmt.Fprintf(w, "Compressed size: %d bytes\n", res.BytesReceived)
	if res.BytesSent > 0 {
		reduction := float64(res.BytesSent-res.BytesReceived) / float64(res.BytesSent) * 100
		fmt.Fprintf(w, "Reduction:       %.1f%%\n", reduction)
	}
}
