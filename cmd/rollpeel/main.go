// Command rollpeel counts the rolls that can be taken off a roll map: those
// accessible right away, and all that go when peeling repeats until nothing
// changes.
//
//	rollpeel [-mode single|fixed|both] [-threshold 4] [-config file.yaml] <input|->
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rollpeel/internal/config"
	"github.com/katalvlaran/rollpeel/internal/tools/peel"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.Level())

	if err := peel.Run(cfg, os.Stdin, os.Stdout, log); err != nil {
		var le *peel.LoadError
		if errors.As(err, &le) {
			config.Exitf("%v", err)
		}
		config.Exitf("peel: %v", err)
	}
}
