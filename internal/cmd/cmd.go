// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	serveCmdUsage = "serve"
	serveCmdShort = "start the logmw HTTP server"
	serveCmdLong  = `Start the logmw HTTP server.
	The server relays the log intents received on /api/logs to the remote
	logging API and exposes the demo URL shortener on /api/shorten and /api/stats.
	Every delivery is best effort: failures are only reported in the local log.

	The remote endpoint is read from the LOG_API_ENDPOINT environment variable,
	unless --local-output is set.`

	serveCmdExample = `# Start the server sending records to the remote logging API
	LOG_API_ENDPOINT=http://localhost:8080/evaluation-service/logs logmw serve

	# Start the server printing records on stdout
	logmw serve --local-output`

	emitCmdUsage = "emit MESSAGE"
	emitCmdShort = "emit a single log record"
	emitCmdLong  = `Emit a single log record through the logging middleware.
	The record is traced on the local log and sent to the remote logging API.
	The command waits for the delivery but always exits successfully, as any
	delivery failure is only reported in the local log.`

	emitCmdExample = `# Send an info record for the frontend stack
	logmw emit --stack frontend --package ShortenerPage "component mounted"

	# Print the record that would be sent
	logmw emit --level success --package cli --local-output "done"`
)

// ServeCmd returns the "serve" cli command that starts the HTTP server.
func ServeCmd() *cobra.Command {
	flags := &serveFlags{}
	cmd := &cobra.Command{
		Use:     serveCmdUsage,
		Short:   heredoc.Doc(serveCmdShort),
		Long:    heredoc.Doc(serveCmdLong),
		Example: heredoc.Doc(serveCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// EmitCmd returns the "emit" cli command that sends a single log record.
func EmitCmd() *cobra.Command {
	flags := &emitFlags{}
	cmd := &cobra.Command{
		Use:     emitCmdUsage,
		Short:   heredoc.Doc(emitCmdShort),
		Long:    heredoc.Doc(emitCmdLong),
		Example: heredoc.Doc(emitCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
