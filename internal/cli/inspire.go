package cli

import (
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/robo/internal/form"
)

func inspireCmd() *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "inspire",
		Short: "Print a sample business description as YAML",
		Args:  withUsage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(form.Inspire(form.NewSource(seed))); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "pick deterministically (0 = random)")
	return cmd
}
