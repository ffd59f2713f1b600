package main

import (
	"log"
	"os"

	"github.com/adnsv/go-utils/filesystem"
	cli "github.com/jawher/mow.cli"

	"github.com/gedouu/vite-plugin-generate-html/markup"
	"github.com/gedouu/vite-plugin-generate-html/model"
)

func main() {
	configFN := ""
	manifestFN := ""
	basePath := ""
	scriptsFN := ""
	stylesFN := ""

	app := cli.App("generate-html", "Generate script/link markup files from bundler output")
	app.Spec = "-c=<CONFIG-FILE> [-m=<MANIFEST-FILE>] [-b=<BASE-PATH>] [--scripts=<OUTPUT-FILE>] [--styles=<OUTPUT-FILE>]"
	app.StringOptPtr(&configFN, "c config", "", "yaml configuration file")
	app.StringOptPtr(&manifestFN, "m manifest", "dist/manifest.json", "bundler manifest file")
	app.StringOptPtr(&basePath, "b base", "", "override the configured asset base path")
	app.StringOptPtr(&scriptsFN, "scripts", "", "override the script markup destination")
	app.StringOptPtr(&stylesFN, "styles", "", "override the link markup destination")
	app.Version("v version", "generate-html "+app_version())

	app.Action = func() {
		if !filesystem.FileExists(configFN) {
			log.Fatalf("missing %s", configFN)
		}
		cfg, err := model.LoadConfig(configFN)
		if err != nil {
			log.Fatal(err)
		}

		// allow overriding some of the configured parameters with cli args
		if basePath != "" {
			cfg.BasePath = basePath
		}
		if scriptsFN != "" {
			cfg.ScriptOutput = scriptsFN
		}
		if stylesFN != "" {
			cfg.StyleOutput = stylesFN
		}

		gen, err := markup.New(cfg)
		if err != nil {
			log.Fatal(err)
		}

		set, err := model.LoadManifest(manifestFN)
		if err != nil {
			log.Fatal(err)
		}

		err = gen.Run(set)
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("script markup: %s\n", cfg.ScriptOutput)
		log.Printf("link markup: %s\n", cfg.StyleOutput)
	}

	app.Run(os.Args)
}
