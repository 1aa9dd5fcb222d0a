package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	http "github.com/wesleyorama2/riposte/internal/http"
	"github.com/wesleyorama2/riposte/internal/output"
	"github.com/wesleyorama2/riposte/pkg/jsonpath"
	"github.com/wesleyorama2/riposte/pkg/jsonschema"
)

// verbFlags adds the flags shared by all verb commands
func verbFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP headers to include (can be used multiple times)")
	cmd.Flags().DurationP("timeout", "t", http.DefaultTimeout, "Request timeout, measured from dispatch")
	cmd.Flags().Duration("pause", 0, "Delay before the request is dispatched")
	cmd.Flags().String("extract", "", "Extract a value from the JSON response body (gjson path)")
	cmd.Flags().String("schema", "", "Validate the JSON response body against a schema file")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

// bodyFlags adds the flags for verbs that carry a body
func bodyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("data", "d", "", "Data to send in the request body")
	cmd.Flags().StringP("json", "j", "", "JSON data to send in the request body")
}

// newLogger builds the CLI's diagnostic logger. Header-drop warnings always
// show; dispatch lifecycle logs only with --verbose.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)
}

// runVerb executes a verb command: build the request from flags, dispatch it
// once, and render the outcome.
func runVerb(cmd *cobra.Command, method, url string, withBody bool) {
	headerLines, _ := cmd.Flags().GetStringArray("header")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	pause, _ := cmd.Flags().GetDuration("pause")
	extract, _ := cmd.Flags().GetString("extract")
	schemaPath, _ := cmd.Flags().GetString("schema")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	if !noColor && !output.IsTerminal(os.Stdout) {
		noColor = true
	}

	logger := newLogger(verbose)
	formatter := output.NewFormatter(verbose, noColor)

	// Invalid header entries are dropped with a warning, never fatal
	headers := http.ParseHeaderLines(headerLines, logger)

	req := http.NewRequest(method, url).
		WithHeaders(headers).
		WithPause(pause).
		WithTimeout(timeout)

	if withBody {
		data, _ := cmd.Flags().GetString("data")
		jsonData, _ := cmd.Flags().GetString("json")
		if data != "" {
			req.WithBody(data)
		} else if jsonData != "" {
			req.WithBody(jsonData)
			req.WithHeader("Content-Type", "application/json")
		}
	}

	fmt.Print(formatter.FormatRequest(req))

	dispatcher := http.NewDispatcher(http.WithLogger(logger))

	resp, err := dispatcher.Do(context.Background(), req)
	if err != nil {
		fmt.Fprint(os.Stderr, formatter.FormatError(err))
		os.Exit(1)
	}

	fmt.Print(formatter.FormatResponse(resp))

	// Schema validation failures are decode errors: the call succeeded but
	// the body is not what was asked for.
	if schemaPath != "" {
		validator, err := jsonschema.CompileFile(schemaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := validator.Validate(resp.Body); err != nil {
			fmt.Fprint(os.Stderr, formatter.FormatError(&http.DecodeError{
				StatusCode:  resp.StatusCode,
				ContentType: resp.ContentType(),
				Err:         err,
			}))
			os.Exit(1)
		}
		fmt.Printf("%s schema valid\n", output.SuccessIcon(noColor))
	}

	if extract != "" {
		value, err := jsonpath.Extract(resp.Body, extract)
		if err != nil {
			fmt.Fprint(os.Stderr, formatter.FormatError(&http.DecodeError{
				StatusCode:  resp.StatusCode,
				ContentType: resp.ContentType(),
				Err:         err,
			}))
			os.Exit(1)
		}
		fmt.Printf("%s = %s\n", extract, value)
	}
}
