package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	resumeJobFile string
	resumeOut     string
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Tailor the base resume to a job description file and render it",
	RunE: func(cmd *cobra.Command, args []string) error {
		jd, err := os.ReadFile(resumeJobFile)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		out := resumeOut
		if out == "" {
			out = cfg.Resume.OutputPath
		}

		resumes := newResumeService(cfg, newGenerator(cmd.Context(), cfg))
		text := resumes.Tailor(cmd.Context(), string(jd))
		if !resumes.Render(text, out) {
			return fmt.Errorf("render %s failed", out)
		}
		log.Printf("✓ tailored resume written to %s", out)
		return nil
	},
}

func init() {
	resumeCmd.Flags().StringVarP(&resumeJobFile, "job", "j", "", "Path to a text file with the job description")
	resumeCmd.Flags().StringVarP(&resumeOut, "out", "o", "", "Output PDF path (default from config)")
	_ = resumeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(resumeCmd)
}
