package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Captainbleu/Boggle/internal/model"
	"github.com/Captainbleu/Boggle/internal/services/dictionary"
	"github.com/Captainbleu/Boggle/internal/services/scoring"
	"github.com/Captainbleu/Boggle/internal/services/solver"
	"github.com/Captainbleu/Boggle/internal/storage/memory"
)

// newSolveCmd creates the solve command
func newSolveCmd() *cobra.Command {
	var (
		lang     string
		wordFile string
	)

	cmd := &cobra.Command{
		Use:   "solve ROW [ROW...]",
		Short: "List every dictionary word present on a board",
		Long: `Solve a board given as row strings, e.g.:

  boggle solve ATE CAT RST --words data/words/en.txt

Rows must form a square. Output is one word per line with its score,
best first, followed by the total.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]string, len(args))
			for i, arg := range args {
				rows[i] = dictionary.Normalize(arg)
			}
			b, err := model.BoardFromRows(rows)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
			dictService := dictionary.New(memory.New(), logger)
			if err := dictService.LoadFromFile(context.Background(), lang, wordFile); err != nil {
				return err
			}

			svc := solver.New(dictService, scoring.New())
			result, err := svc.Solve(lang, b)
			if err != nil {
				return err
			}

			for _, w := range result.Words {
				fmt.Printf("%s %d\n", w.Word, w.Score)
			}
			fmt.Printf("total: %d words, %d points\n", len(result.Words), result.TotalScore)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "language", "en", "Language code (en, fr)")
	cmd.Flags().StringVar(&wordFile, "words", "data/words/en.txt", "Word file, one word per line")

	return cmd
}
