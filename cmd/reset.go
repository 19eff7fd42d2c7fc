package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved name and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		st, err := openStore(e.cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Preferences().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset preferences: %w", err)
		}
		e.log.Info().Msg("preferences reset")
		fmt.Fprintln(cmd.OutOrStdout(), "Saved name and settings cleared.")
		return nil
	},
}
