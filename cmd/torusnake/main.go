package main

import (
	"os"

	"github.com/spf13/cobra"

	"torusnake/internal/game"
)

var (
	settingsPath string
	seed         uint64
	wrapOn       bool
	wrapOff      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "torusnake",
		Short: "3D arcade snake on a toroidal arena",
		Run: func(cmd *cobra.Command, args []string) {
			opts := game.Options{
				SettingsPath: settingsPath,
				Seed:         seed,
			}
			if wrapOn || wrapOff {
				opts.WrapSet = true
				opts.Wrap = !wrapOff
			}
			game.RunDesktop(opts)
		},
	}

	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "settings file path (default ~/.torusnake.yml)")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "food placement seed (0 = random)")
	rootCmd.Flags().BoolVar(&wrapOn, "wrap", false, "enable wrap-around arena and persist the choice")
	rootCmd.Flags().BoolVar(&wrapOff, "no-wrap", false, "disable wrap-around arena and persist the choice")
	rootCmd.MarkFlagsMutuallyExclusive("wrap", "no-wrap")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
