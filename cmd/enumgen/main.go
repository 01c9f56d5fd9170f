package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/Dav1dde/enumap/enumgen"
	"github.com/Dav1dde/enumap/pkg/log"
	"github.com/go-logr/zerologr"
)

func main() {
	var (
		configPath = flag.String("config", ".enumgen.yaml", "path to the generator config")
		outDir     = flag.String("out", ".", "directory to write generated files to")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"
	zlog := log.New(*verbose)

	cfg, err := enumgen.Load(*configPath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to load config")
	}

	gen := enumgen.New(enumgen.WithLogr(zerologr.New(zlog)))
	files, err := gen.Generate(cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to generate")
	}

	for _, f := range files {
		path := filepath.Join(*outDir, f.Name)
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			zlog.Fatal().Err(err).Str("file", path).Msg("failed to write file")
		}
		zlog.Info().Str("file", path).Msg("wrote enum")
	}
}
