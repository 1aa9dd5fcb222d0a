package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/riposte/internal/config"
	http "github.com/wesleyorama2/riposte/internal/http"
	"github.com/wesleyorama2/riposte/internal/output"
	"github.com/wesleyorama2/riposte/pkg/jsonpath"
	"github.com/wesleyorama2/riposte/pkg/jsonschema"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a named request from a configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
		environment, _ := cmd.Flags().GetString("env")
		request, _ := cmd.Flags().GetString("request")
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if configFile == "" || environment == "" || request == "" {
			fmt.Println("Error: config, env, and request are required")
			cmd.Help()
			os.Exit(1)
		}

		if !noColor && !output.IsTerminal(os.Stdout) {
			noColor = true
		}

		logger := newLogger(verbose)
		formatter := output.NewFormatter(verbose, noColor)

		// Load configuration; validation happens inside Load
		cfg, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		env, err := config.LookupEnvironment(cfg, environment)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		reqConfig, err := config.LookupRequest(cfg, request)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		req := buildConfiguredRequest(env, reqConfig, logger)

		fmt.Print(formatter.FormatRequest(req))

		dispatcher := http.NewDispatcher(http.WithLogger(logger))

		resp, err := dispatcher.Do(context.Background(), req)
		if err != nil {
			fmt.Fprint(os.Stderr, formatter.FormatError(err))
			os.Exit(1)
		}

		fmt.Print(formatter.FormatResponse(resp))

		if reqConfig.Schema != "" {
			validator, err := jsonschema.CompileFile(reqConfig.Schema)
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

		if len(reqConfig.Extract) > 0 {
			values, err := jsonpath.ExtractAll(resp.Body, reqConfig.Extract)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			for name, value := range values {
				fmt.Printf("%s = %s\n", name, value)
			}
		}
	},
}

func init() {
	runCmd.Flags().StringP("config", "c", "", "Path to the YAML request book")
	runCmd.Flags().StringP("env", "e", "", "Environment to run against")
	runCmd.Flags().StringP("request", "r", "", "Named request to execute")
	runCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}

// buildConfiguredRequest assembles a dispatchable request from an environment
// and a request entry. Environment headers apply first so request headers can
// override them at the transport level.
func buildConfiguredRequest(env config.Environment, reqConfig config.Request, logger zerolog.Logger) *http.Request {
	url := config.ResolveURL(env, reqConfig.URL)

	req := http.NewRequest(reqConfig.Method, url).
		WithHeaders(http.ParseHeaders(env.Headers, logger)).
		WithHeaders(http.ParseHeaders(reqConfig.Headers, logger)).
		WithPause(reqConfig.Pause.Std()).
		WithTimeout(reqConfig.Timeout.Std())

	if reqConfig.Body != "" {
		req.WithBody(reqConfig.Body)
	}

	return req
}
