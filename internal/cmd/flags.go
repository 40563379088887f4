// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mia-platform/logmw/internal/emitter"
	"github.com/mia-platform/logmw/internal/server"
)

const (
	localOutputFlagName  = "local-output"
	localOutputFlagUsage = "If set, writes the records to stdout instead of sending them to the remote logging API"
	defaultLocalOutput   = false

	timeoutFlagName  = "delivery-timeout"
	timeoutFlagUsage = "Maximum duration of a single record delivery"

	stackFlagName  = "stack"
	stackFlagUsage = "Stack of the record, backend or frontend"
	defaultStack   = emitter.StackBackend

	levelFlagName      = "level"
	levelFlagShortName = "l"
	defaultLevel       = emitter.LevelInfo

	packageFlagName      = "package"
	packageFlagShortName = "p"
	packageFlagUsage     = "Name of the package emitting the record"
	defaultPackage       = "cli"
)

var (
	levelFlagUsage = "Level of the record (possible values: " + strings.Join(emitter.DisplayLevels, ", ") + ")"
)

// serveFlags holds the flags for the "serve" command.
type serveFlags struct {
	localOutput bool
	timeout     time.Duration
}

// addFlags registers the CLI flags on cmd.
func (f *serveFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.localOutput, localOutputFlagName, defaultLocalOutput, localOutputFlagUsage)
	cmd.Flags().DurationVar(&f.timeout, timeoutFlagName, emitter.DefaultTimeout, timeoutFlagUsage)
}

// toOptions builds the serve options from the parsed flags.
func (f *serveFlags) toOptions(cmd *cobra.Command) (*serveOptions, error) {
	sender, err := newSender(cmd.Context(), cmd.OutOrStdout(), f.localOutput)
	if err != nil {
		return nil, err
	}

	return &serveOptions{
		sender:        sender,
		timeout:       f.timeout,
		serverFactory: server.NewServer,
	}, nil
}

// emitFlags holds the flags for the "emit" command.
type emitFlags struct {
	stack       string
	level       string
	packageName string
	localOutput bool
	timeout     time.Duration
}

// addFlags registers the CLI flags on cmd.
func (f *emitFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.stack, stackFlagName, defaultStack, stackFlagUsage)
	flags.StringVarP(&f.level, levelFlagName, levelFlagShortName, defaultLevel, levelFlagUsage)
	flags.StringVarP(&f.packageName, packageFlagName, packageFlagShortName, defaultPackage, packageFlagUsage)
	flags.BoolVar(&f.localOutput, localOutputFlagName, defaultLocalOutput, localOutputFlagUsage)
	flags.DurationVar(&f.timeout, timeoutFlagName, emitter.DefaultTimeout, timeoutFlagUsage)

	_ = cmd.RegisterFlagCompletionFunc(stackFlagName, completionFunc([]string{emitter.StackBackend, emitter.StackFrontend}))
	_ = cmd.RegisterFlagCompletionFunc(levelFlagName, completionFunc(emitter.DisplayLevels))
}

// toOptions builds the emit options from the parsed flags and the message arguments.
func (f *emitFlags) toOptions(cmd *cobra.Command, args []string) (*emitOptions, error) {
	message := strings.Join(args, " ")
	if strings.TrimSpace(message) == "" {
		return nil, errNoMessage
	}

	sender, err := newSender(cmd.Context(), cmd.OutOrStdout(), f.localOutput)
	if err != nil {
		return nil, err
	}

	return &emitOptions{
		stack:       f.stack,
		level:       f.level,
		packageName: f.packageName,
		message:     message,
		sender:      sender,
		timeout:     f.timeout,
	}, nil
}
