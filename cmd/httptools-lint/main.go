// Command httptools-lint runs the descriptor check battery from the command
// line and prints a JSON report. It exits non-zero when any descriptor
// produced an error-severity issue, so CI can gate descriptor promotion on it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/openconvo/httptools-mcp/descriptors"
	"github.com/openconvo/httptools-mcp/internal/config"
	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/lint"
	"github.com/openconvo/httptools-mcp/internal/tools/lintreport"
)

func main() {
	dir := flag.String("dir", "", "descriptor directory to lint (defaults to HTTPTOOLS_DESCRIPTOR_DIR, then the embedded set)")
	quiet := flag.Bool("quiet", false, "suppress progress logging, print only the report")
	flag.Parse()

	level := slog.LevelInfo
	if *quiet {
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	configDir := *dir
	if configDir == "" {
		configDir = config.Load().DescriptorDir
		descriptor.EmbeddedFS = descriptors.ConfigFiles
	}

	store := descriptor.NewStore(configDir)
	if err := store.Load(); err != nil {
		slog.Error("failed to load descriptors", "error", err)
		os.Exit(2)
	}

	report := lintreport.BuildReport(store.All())

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		slog.Error("failed to encode report", "error", err)
		os.Exit(2)
	}
	fmt.Println(string(payload))

	if lint.HasErrors(report.Results) {
		os.Exit(1)
	}
}
