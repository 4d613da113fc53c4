package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/nxpad/nxpad/diag"
	"github.com/nxpad/nxpad/internal/cmd"
	"github.com/nxpad/nxpad/internal/configpaths"
	"github.com/nxpad/nxpad/internal/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("nxpad"),
		kong.Description("Switch Pro controller input pipeline"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		return 2
	}
	defer func() { closeAll(closeFiles) }()

	rawLogger, rawFile, err := log.OpenRaw(cli.Log)
	if err != nil {
		logger.Error("Failed to open raw log file", "file", cli.Log.RawFile, "error", err)
	}
	if rawFile != nil {
		closeFiles = append(closeFiles, rawFile)
	}

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))

	if err := ctx.Run(); err != nil {
		diag.Log(logger, diag.Classify(err), err)
		return 1
	}
	return 0
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("NXPAD_CONFIG"); v != "" {
		return v
	}
	return ""
}
