// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package longestinc

import (
	"os"
	"strings"

	"git.arvados.org/arvados.git/lib/cmd"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	handler = cmd.Multi(map[string]cmd.Handler{
		"version":   cmd.Version,
		"-version":  cmd.Version,
		"--version": cmd.Version,

		"cpu":      &analyzecmd{sequential: true},
		"parallel": &analyzecmd{},
		"compare":  &comparecmd{},
		"chunks":   &chunkscmd{},
		"describe": &describecmd{},
		"random":   &randomcmd{},
	})
)

func Main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		logrus.StandardLogger().Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	}
	os.Exit(handler.RunCommand(os.Args[0], shorthand(os.Args[1:]), os.Stdin, os.Stdout, os.Stderr))
}

// shorthand turns "prog FILE" into "prog parallel FILE".
func shorthand(args []string) []string {
	if len(args) != 1 || strings.HasPrefix(args[0], "-") {
		return args
	}
	if _, ok := handler[args[0]]; ok {
		return args
	}
	return []string{"parallel", args[0]}
}
