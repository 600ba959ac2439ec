package cli

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs a command and returns its output
func ExecuteCommand(ctx context.Context, root *cobra.Command, args ...string) (output string, err error) {
	_, output, err = ExecuteCommandC(ctx, root, args...)
	return output, err
}

// ExecuteCommandC runs a command and returns the command, its output, and any error
func ExecuteCommandC(ctx context.Context, root *cobra.Command, args ...string) (c *cobra.Command, output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err = root.ExecuteContextC(ctx)

	return c, buf.String(), err
}
