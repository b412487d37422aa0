// Command qualgate runs one-off content-quality evaluations from the
// command line and exports attestation records, playing the role the
// browser shell plays in front of the validator service.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/clearcheck/qualgate/pkg/lexicon"
	"github.com/clearcheck/qualgate/services/validator/models"
	"github.com/clearcheck/qualgate/services/validator/services"
)

var (
	taskArg        string
	submissionPath string
	outPath        string
	validatorID    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qualgate",
		Short: "Rule-based content-quality evaluator",
		Long: "qualgate evaluates a free-form submission against a task description " +
			"and produces a composite quality score, a sub-score breakdown, a gated " +
			"verdict, and a signed attestation record.",
	}

	evaluateCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate one submission against a task",
		RunE:  runEvaluate,
	}
	evaluateCmd.Flags().StringVar(&taskArg, "task", "", "task description: a literal string or a path to a file")
	evaluateCmd.Flags().StringVar(&submissionPath, "submission", "", "path to a JSON submission file (use '-' for stdin)")
	evaluateCmd.Flags().StringVar(&outPath, "out", "", "write the attestation record to this file")
	evaluateCmd.Flags().StringVar(&validatorID, "validator-id", "qualgate-cli", "validator identity recorded in the attestation")
	if err := evaluateCmd.MarkFlagRequired("submission"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(evaluateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	task := loadTask(taskArg)

	submissionData, err := readInput(submissionPath)
	if err != nil {
		return fmt.Errorf("failed to read submission: %w", err)
	}

	// Malformed submission JSON is a shell-level input error; the evaluator
	// itself only ever sees valid JSON values.
	var submission interface{}
	if err := json.Unmarshal(submissionData, &submission); err != nil {
		return fmt.Errorf("submission is not valid JSON: %w", err)
	}

	lex, err := lexicon.Load()
	if err != nil {
		return fmt.Errorf("failed to load pattern lexicon: %w", err)
	}

	evaluator := services.NewEvaluationService(validatorID, models.DefaultPolicy(), lex)
	result := evaluator.Evaluate(task, submission)

	rendered, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(rendered))

	if outPath != "" {
		attestation, err := json.MarshalIndent(result.Attestation, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render attestation: %w", err)
		}
		if err := os.WriteFile(outPath, attestation, 0o644); err != nil {
			return fmt.Errorf("failed to write attestation: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "attestation written to %s\n", outPath)
	}

	return nil
}

// loadTask resolves the --task flag: a readable file is loaded and, when
// its content is JSON, passed through as a structure; anything else is the
// task string itself.
func loadTask(arg string) interface{} {
	text := arg
	if data, err := os.ReadFile(arg); err == nil {
		text = string(data)
	}

	var structured interface{}
	if err := json.Unmarshal([]byte(text), &structured); err == nil {
		if _, ok := structured.(string); !ok {
			return structured
		}
	}
	return text
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
