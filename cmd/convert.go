package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/video-stream/transcript/internal/apperror"
	"github.com/video-stream/transcript/internal/transcript"
	"github.com/video-stream/transcript/internal/validation"
)

var (
	convertVideoID string
	convertTitle   string
	convertURL     string
	convertFormat  string
	convertOutput  string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.vtt>",
	Short: "Convert a VTT file to a transcript document",
	Long:  `Reads a WebVTT file ("-" for stdin) and writes the transcript as JSON or YAML.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if convertFormat != "json" && convertFormat != "yaml" {
			return fmt.Errorf("unsupported format %q (want json or yaml)", convertFormat)
		}

		_, log, err := loadConfig()
		if err != nil {
			return err
		}

		content, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}

		in := convertInput{
			VTTContent: string(content),
			VideoID:    convertVideoID,
			VideoTitle: convertTitle,
			SourceURL:  convertURL,
		}
		if err := validation.New().Required(in); err != nil {
			return missingValuesError(err)
		}

		doc := transcript.NewBuilder(log).Build(in.VTTContent, in.VideoID, in.VideoTitle, in.SourceURL)

		if convertOutput == "" {
			return encodeDocument(doc, cmd.OutOrStdout())
		}
		return writeDocument(doc, convertOutput)
	},
}

// convertInput mirrors the HTTP request so both entry points share the
// same required-field rule. Names are the flags reported back to the user.
type convertInput struct {
	VTTContent string `json:"input" validate:"required"`
	VideoID    string `json:"--video-id" validate:"required"`
	VideoTitle string `json:"--title" validate:"required"`
	SourceURL  string `json:"--url" validate:"required"`
}

func missingValuesError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if fields, ok := appErr.Details["fields"].([]string); ok {
			return fmt.Errorf("empty required values: %s", strings.Join(fields, ", "))
		}
	}
	return err
}

func writeDocument(doc *transcript.Document, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return encodeDocument(doc, f)
}

func encodeDocument(doc *transcript.Document, out io.Writer) error {
	if convertFormat == "yaml" {
		return doc.EncodeYAML(out)
	}
	return doc.EncodeJSON(out)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func init() {
	convertCmd.Flags().StringVar(&convertVideoID, "video-id", "", "video identifier (required)")
	convertCmd.Flags().StringVar(&convertTitle, "title", "", "video title (required)")
	convertCmd.Flags().StringVar(&convertURL, "url", "", "source video URL (required)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "json", "output format: json or yaml")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write to file instead of stdout")
	convertCmd.MarkFlagRequired("video-id")
	convertCmd.MarkFlagRequired("title")
	convertCmd.MarkFlagRequired("url")
}
