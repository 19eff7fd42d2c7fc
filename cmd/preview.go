package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickmaths/internal/problemgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions with their answers (no database)",
	Long: `Generate questions and print them together with their answers.

This is a stateless developer tool for checking question quality. Use
--generator to exercise a single generator, or --area to draw from the same
pools a test would. --seed makes the output reproducible.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("area", "", "Content area: number-theory, algebra or geometry (default all)")
	previewCmd.Flags().String("generator", "", "Generator name, e.g. bodmas, quadratic, linear, geometry, hypotenuse")
	previewCmd.Flags().String("difficulty", "normal", "Difficulty: normal or hard")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	areaVal, _ := cmd.Flags().GetString("area")
	genVal, _ := cmd.Flags().GetString("generator")
	diffVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	if count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", count)
	}
	difficulty, err := problemgen.ParseDifficulty(diffVal)
	if err != nil {
		return err
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()
	bank := newBank(e)

	var questions []problemgen.Question
	if genVal != "" {
		gen, err := bank.Generator(genVal)
		if err != nil {
			return err
		}
		for i := range count {
			questions = append(questions, gen.Generate(problemgen.GenerateInput{
				Difficulty: difficulty,
				Index:      i,
				Count:      count,
			}))
		}
	} else {
		areas := problemgen.AllContentAreas()
		if areaVal != "" {
			a, err := problemgen.ParseContentArea(areaVal)
			if err != nil {
				return err
			}
			areas = []problemgen.ContentArea{a}
		}
		questions, err = bank.Build(difficulty, areas, count)
		if err != nil {
			return err
		}
	}

	writePreview(cmd.OutOrStdout(), difficulty, questions)
	return nil
}

// writePreview prints each question with its choices and correct answer.
func writePreview(w io.Writer, difficulty problemgen.Difficulty, questions []problemgen.Question) {
	fmt.Fprintf(w, "Difficulty: %s\n\n", difficulty.DisplayName())
	for i, q := range questions {
		fmt.Fprintf(w, "── Question %d/%d ──\n", i+1, len(questions))
		fmt.Fprintln(w, q.Text())
		if mc, ok := q.(*problemgen.MultipleChoice); ok {
			for j, c := range mc.Choices {
				marker := " "
				if j == mc.CorrectIndex {
					marker = "*"
				}
				fmt.Fprintf(w, " %s%d) %s\n", marker, j+1, c)
			}
		}
		fmt.Fprintf(w, "Answer: %s\n\n", q.CorrectAnswer())
	}
}
