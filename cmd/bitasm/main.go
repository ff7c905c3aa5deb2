// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/bitasm/image"
	"github.com/ezrec/bitasm/internal/config"
	"github.com/ezrec/bitasm/translate"
)

var f = translate.From

var (
	opts Options

	configPath string
	lang       string
	verbose    bool

	mainCmd = &cobra.Command{
		Use:   "bitasm [flags] FILE.bit...",
		Short: "Assemble x86 boot sectors",
		Long:  "Assemble each .bit source into a 512 byte boot sector image.",
		Args:  cobra.MinimumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return before(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.AssembleFiles(args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	fl := mainCmd.Flags()
	fl.StringVar(&configPath, "config", "", "TOML configuration file")
	fl.Uint16Var(&opts.Origin, "origin", 0, "initial location counter")
	fl.BoolVar(&opts.Strict, "strict", false, "fail on out of range jumps")
	fl.StringArrayVarP(&opts.Defines, "define", "D", nil, "predefine NAME=EXPR")
	fl.StringVarP(&opts.Output, "output", "o", "", "output image (single input only)")
	fl.BoolVarP(&opts.Listing, "listing", "l", false, "print a listing to stdout")
	fl.BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
	fl.StringVar(&lang, "lang", "", "message language tag")
}

func before(cmd *cobra.Command) (err error) {
	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	opts.Verbose = verbose

	cfg := config.Default()
	if len(configPath) != 0 {
		cfg, err = config.Load(configPath)
		if err != nil {
			return
		}
	}

	opts.Config = cfg
	opts.Profile, err = cfg.Profile()
	if err != nil {
		return
	}

	// Command line flags override the configuration file.
	if !cmd.Flags().Changed("origin") {
		opts.Origin = uint16(cfg.Assembler.Origin)
	}
	if !cmd.Flags().Changed("strict") {
		opts.Strict = cfg.Assembler.Strict
	}

	return
}

func main() {
	opts.Profile = image.BootSector
	opts.Stdout = os.Stdout

	if err := mainCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, f("Error: %v", err))
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
