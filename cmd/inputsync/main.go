package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/Alia5/inputsync/internal/cmd"
	"github.com/Alia5/inputsync/internal/configpaths"
	"github.com/Alia5/inputsync/internal/log"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	paths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("inputsync"),
		kong.Description("Reconcile global keyboard and mouse input into per-tick state"),
		kong.UsageOnError(),
		// Flags and env override values loaded from config files.
		kong.Configuration(kong.JSON, paths.JSON...),
		kong.Configuration(kongyaml.Loader, paths.YAML...),
		kong.Configuration(kongtoml.Loader, paths.TOML...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	eventOut, eventFile, err := log.EventOutput(cli.Log, cli.Run.Status, os.Stdout, os.Stderr)
	if err != nil {
		logger.Error("failed to open event log file", "file", cli.Log.EventFile, "error", err)
	}
	if eventFile != nil {
		closeFiles = append(closeFiles, eventFile)
	}
	events := log.NewEvent(eventOut)

	ctx.Bind(logger)
	ctx.BindTo(events, (*log.EventLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
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
	return os.Getenv("INPUTSYNC_CONFIG")
}
