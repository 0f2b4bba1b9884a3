package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/pagenav/pkg/version"
)

// NewVersionCmd creates the version command printing build information.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Annotations: map[string]string{annotationSkipConfig: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.GetInfo()
			return renderOutput(cmd, info, func(w *tabwriter.Writer) error {
				fmt.Fprintln(w, info.String())
				return nil
			})
		},
	}
}
