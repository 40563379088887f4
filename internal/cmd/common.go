// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/logmw/internal/destination"
	"github.com/mia-platform/logmw/internal/destination/remote"
	"github.com/mia-platform/logmw/internal/destination/writer"
)

var (
	errNoMessage = errors.New("no message provided")

	// remoteSenderGetter returns the sender for the remote logging API.
	// It can be overridden for testing purposes.
	remoteSenderGetter = remote.NewDestination
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoMessage):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// newSender returns a sender printing on w when localOutput is set, or the
// remote sender configured from the environment.
func newSender(ctx context.Context, w io.Writer, localOutput bool) (destination.Sender, error) {
	if localOutput {
		return writer.NewDestination(w), nil
	}

	return remoteSenderGetter(ctx)
}

func completionFunc(values []string) cobra.CompletionFunc {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var comps []string
		for _, value := range values {
			if strings.HasPrefix(strings.ToLower(value), strings.ToLower(toComplete)) {
				comps = append(comps, value)
			}
		}

		return comps, cobra.ShellCompDirectiveNoFileComp
	}
}
