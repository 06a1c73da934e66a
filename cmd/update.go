package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmercier/quantfolio/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update quantfolio to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker()

		if check, _ := cmd.Flags().GetBool("check"); check {
			result, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
			if err != nil {
				return err
			}
			if !result.UpdateAvailable {
				fmt.Println("quantfolio is up to date")
				return nil
			}
			fmt.Printf("update available: %s (%s)\n", result.LatestVersion, result.ReleaseURL)
			return nil
		}

		target, _ := cmd.Flags().GetString("version")
		err := checker.Update(cmd.Context(), &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  target,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})
		switch {
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("quantfolio is up to date")
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			return fmt.Errorf("development builds cannot self-update; install a release build")
		default:
			return err
		}
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check whether an update is available")
	updateCmd.Flags().String("version", "", "Update to a specific release tag instead of latest")
}
