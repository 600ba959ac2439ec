package cli

import (
	"github.com/spf13/cobra"
)

// CmdParams holds what the root command is built from
type CmdParams struct {
	App     *App
	Palette []*cobra.Command
	Use     string
	Short   string
	Long    string
}
