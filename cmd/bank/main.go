package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"tractor.dev/toolkit-go/engine"
	"tractor.dev/toolkit-go/engine/cli"

	"tractor.dev/bank/fs/localfs"
	"tractor.dev/bank/internal/bank"
	"tractor.dev/bank/internal/config"
	"tractor.dev/bank/internal/logging"
	"tractor.dev/bank/internal/prompt"
	"tractor.dev/bank/internal/ui"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bank: ")
	engine.Run(Main{})
}

type Main struct{}

func (m *Main) InitializeCLI(root *cli.Command) {
	root.Usage = "bank [options] <path>..."
	root.Short = "Create files and directories, guessing which one you meant"

	var (
		opts    bank.Options
		version bool
	)
	flags := root.Flags()
	flags.BoolVar(&opts.Directory, "d", false, "force creation as a directory")
	flags.BoolVar(&opts.Directory, "directory", false, "force creation as a directory")
	flags.BoolVar(&opts.File, "f", false, "force creation as a file")
	flags.BoolVar(&opts.File, "file", false, "force creation as a file")
	flags.BoolVar(&opts.Parents, "p", false, "create missing parent directories")
	flags.BoolVar(&opts.Parents, "parents", false, "create missing parent directories")
	flags.StringVar(&opts.Mode, "m", "", "set permissions (octal, e.g. 755)")
	flags.StringVar(&opts.Mode, "mode", "", "set permissions (octal, e.g. 755)")
	flags.BoolVar(&opts.Interactive, "i", false, "ask when the type cannot be guessed")
	flags.BoolVar(&opts.Interactive, "interactive", false, "ask when the type cannot be guessed")
	flags.BoolVar(&opts.Verbose, "v", false, "print what is done")
	flags.BoolVar(&opts.Verbose, "verbose", false, "print what is done")
	flags.BoolVar(&opts.NoCreate, "c", false, "only update times of existing paths")
	flags.BoolVar(&opts.NoCreate, "no-create", false, "only update times of existing paths")
	flags.StringVar(&opts.Date, "date", "", "use this date (YYYY-MM-DD [HH:MM[:SS]], MM/DD/YYYY, DD.MM.YYYY)")
	flags.StringVar(&opts.Timestamp, "t", "", "use [[CC]YY]MMDDhhmm[.ss] instead of now")
	flags.StringVar(&opts.Timestamp, "timestamp", "", "use [[CC]YY]MMDDhhmm[.ss] instead of now")
	flags.StringVar(&opts.Reference, "r", "", "use this file's modification time")
	flags.StringVar(&opts.Reference, "reference", "", "use this file's modification time")
	flags.BoolVar(&opts.AccessOnly, "a", false, "change only the access time")
	flags.BoolVar(&opts.AccessOnly, "atime", false, "change only the access time")
	flags.BoolVar(&opts.ModifyOnly, "mtime", false, "change only the modification time")
	flags.BoolVar(&opts.NoDereference, "no-dereference", false, "affect symbolic links instead of their targets")
	flags.BoolVar(&version, "version", false, "print version and exit")

	root.Run = func(ctx *cli.Context, args []string) {
		if version {
			fmt.Println("bank", bank.Version)
			return
		}

		cfg, err := config.Load()
		fatal(err)
		logger, closer := logging.New(cfg)
		defer closer.Close()

		fsys, err := localfs.NewHost()
		fatal(err)
		defer fsys.Close()
		fsys.SetLogger(logger)
		logger.Debug("host filesystem", "root", fsys.Dir())

		r := &bank.Runner{
			FS:  fsys,
			Rel: fsys.Rel,
			Out: ui.New(os.Stdout, !cfg.NoColor),
			Log: logger,
		}
		if opts.Interactive {
			if prompt.Available() {
				r.Prompter = &prompt.Select{}
			} else {
				logger.Warn("not a terminal, ignoring --interactive")
			}
		}

		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := r.Run(runCtx, opts, args); err != nil {
			closer.Close()
			fatal(err)
		}
	}
}

func fatal(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
