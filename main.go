package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fzft/go-hashset/cmd"
	"github.com/fzft/go-hashset/hashset"
	"github.com/fzft/go-hashset/log"
)

func main() {
	capacity := flag.Int("c", hashset.DefaultCapacity, "bucket count of sets created without a capacity")
	script := flag.String("f", "", "run the commands in this file and exit")
	level := flag.String("log-level", "warn", "log level [debug|info|warn|error]")
	showVersion := flag.Bool("v", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("hsetcli %s\n", Version())
		return
	}
	if *capacity < 1 || *capacity > hashset.MaxCapacity {
		fmt.Fprintf(os.Stderr, "capacity must be in [1, %d], got %d\n", hashset.MaxCapacity, *capacity)
		os.Exit(2)
	}
	if err := log.InitLogger(*level); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *level, err)
		os.Exit(2)
	}

	cmd.InitDisplay()
	cli := cmd.NewCli(&cmd.CliConfig{
		Capacity: *capacity,
		Script:   *script,
		Version:  Version(),
	}, os.Stdout, log.Logger)

	err := cli.Run()
	if err != nil {
		log.Logger.Error("hsetcli finished with errors", zap.Error(err))
	}
	_ = log.Logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
