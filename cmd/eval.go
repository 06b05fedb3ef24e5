package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"geomcalc/internal/api/handler/v1handler"
	"geomcalc/internal/config"
	"geomcalc/pkg/logger"
	"geomcalc/pkg/serrors"
)

// evalCommand runs one operation of the API locally. The request is read from
// --file or stdin and the response envelope is printed to stdout.
func evalCommand(cfg *config.Config) *cobra.Command {
	handler := v1handler.New(v1handler.Deps{MaxPoints: cfg.Limits.MaxPoints})

	cmd := &cobra.Command{
		Use:     "eval <group>/<operation>",
		Short:   "Evaluates a geometry operation on a JSON request",
		Example: `  echo '{"point1":{"x":0,"y":0},"point2":{"x":3,"y":4}}' | geomcalc eval point/distance`,
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return handler.Operations(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			file, _ := cmd.Flags().GetString("file")

			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("could not open request file: %w", err)
				}
				defer f.Close()
				in = f
			}

			body, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("could not read request: %w", err)
			}

			status, payload := handler.Respond(ctx, args[0], body)
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			if status != http.StatusOK {
				logger.Debug(ctx, "operation failed", zap.String("operation", args[0]), zap.Int("status", status))

				return serrors.With(serrors.ErrBadRequest, "%s failed with status %d", args[0], status)
			}

			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "Read the JSON request from this file instead of stdin")

	return cmd
}
