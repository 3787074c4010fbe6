package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Captainbleu/Boggle/internal/dependencies/random"
	"github.com/Captainbleu/Boggle/internal/language"
	"github.com/Captainbleu/Boggle/internal/services/board"
)

// newGenCmd creates the gen command
func newGenCmd() *cobra.Command {
	var (
		size int
		lang string
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random board and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := language.Get(lang)
			if err != nil {
				return err
			}

			var rnd random.Random
			if seed != 0 {
				rnd = random.NewSeeded(seed)
			} else {
				rnd = random.NewSeeded(time.Now().UnixNano())
			}

			svc := board.New(slog.New(slog.NewJSONHandler(io.Discard, nil)))
			b, err := svc.Generate(size, profile, rnd)
			if err != nil {
				return err
			}

			for _, row := range b.Letters() {
				for i, letter := range row {
					if i > 0 {
						fmt.Print(" ")
					}
					fmt.Printf("%c", letter)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 4, "Board size (NxN)")
	cmd.Flags().StringVar(&lang, "language", "en", "Language code (en, fr)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")

	return cmd
}
