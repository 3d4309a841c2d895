// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/eloarg"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	helpHeader = "eloarg-sample, a demonstration of the eloarg option parser.\n" +
		"Basic usages:\n" +
		"connect to a server:  eloarg-sample [options] hostname port [port] ...\n" +
		"\n" +
		"Arguments for long options apply equally to their short options.\n"
	helpFooter = "Report problems to the issue tracker."
)

// sample program exercising declaration, parsing, help rendering and
// the query calls; fatal errors reproduce the conventional CLI
// behaviour: a single tagged line on stderr and exit status 1
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	args := eloarg.New()
	defer args.Finalise()

	flags := []eloarg.Option{
		{Short: "h", Long: "help", Description: "Displays help information about the available options and usage.", HasArg: eloarg.INFO_ARGUMENT},
		{Long: "version", Description: "Displays the version number of the program.", HasArg: eloarg.INFO_ARGUMENT},
		{Long: "port", Description: "Specifies the port number to listen on.", HasArg: eloarg.REQUIRED_ARGUMENT},
		{Short: "f", Long: "file", Description: "Path to the input file.", HasArg: eloarg.OPTIONAL_ARGUMENT},
		{Short: "s", Long: "say-hello", Description: "Say hello.", HasArg: eloarg.NO_ARGUMENT},
		{Short: "v", Long: "verbose", Description: "Increase verbosity level.", HasArg: eloarg.NO_ARGUMENT},
	}
	for _, opt := range flags {
		if err := args.Add(opt); nil != err {
			exitwithstatus.Message("%s: %s", eloarg.LibraryName, err)
		}
	}

	if err := args.ParseOS(); nil != err {
		exitwithstatus.Message("%s: %s", eloarg.LibraryName, err)
	}

	// help and version short-circuit with a success status
	if args.Has("help") {
		fmt.Print(args.Render(helpHeader, helpFooter))
		args.Finalise()
		exitwithstatus.Exit(0)
	}
	if args.Has("version") {
		fmt.Println(version)
		args.Finalise()
		exitwithstatus.Exit(0)
	}

	// start logging
	logging := logger.Configuration{
		Directory: ".",
		File:      "eloarg-sample.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", eloarg.LibraryName, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	port, _ := args.Get("port")
	fmt.Printf("Port: %s\n", port)
	log.Infof("port: %s", port)

	if file, ok := args.Get("file"); ok {
		fmt.Printf("File: %s\n", file)
		log.Infof("file: %s", file)
	}

	if args.Has("say-hello") {
		fmt.Println("Hello :)")
	}

	// verbosity levels accumulate, e.g. -vvv
	verbosity := args.Count("v")
	log.Infof("verbosity: %d", verbosity)
	switch verbosity {
	case 0:
		fmt.Println("No verbosity: Minimal output")
	case 1:
		fmt.Println("Verbose level 1: Basic information")
	case 2:
		fmt.Println("Verbose level 2: Detailed information")
	default:
		fmt.Println("Verbose level 3: Debugging information")
	}
}
