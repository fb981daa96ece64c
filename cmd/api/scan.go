package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"resume-matcher/internal/bootstrap"
	"resume-matcher/internal/jobs"
)

var scanCmd = &cobra.Command{
	Use:   "scan <resume.pdf>",
	Short: "Detect skills in a local PDF and print job recommendations as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		app, err := bootstrap.Build(cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		return scan(cmd.Context(), app, args[0], data, cmd.OutOrStdout())
	},
}

type scanResult struct {
	File   string                `json:"file"`
	Skills []string              `json:"skills"`
	Jobs   []jobs.Recommendation `json:"jobs"`
}

func scan(ctx context.Context, app *bootstrap.App, name string, data []byte, out io.Writer) error {
	skills, err := app.ResumeService.Parse(ctx, data)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(scanResult{
		File:   name,
		Skills: skills,
		Jobs:   app.Scorer.Recommend(skills),
	})
}
