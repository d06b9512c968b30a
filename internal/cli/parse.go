package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jmm-1987/segurymat/internal/config"
	"github.com/jmm-1987/segurymat/internal/parse"
)

func newParseCommand(logger *slog.Logger) *cobra.Command {
	var inputFile string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Parse a Spanish task utterance into intent and entities",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv()
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.AutoMigrate(cmd.Context()); err != nil {
				return err
			}
			parser := newParser(cfg, st, logger)

			if inputFile != "" {
				return runParseFile(cmd, parser, inputFile, concurrency)
			}

			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("nothing to parse: pass text or --file")
			}
			return printResult(cmd, parser.Parse(cmd.Context(), text))
		},
	}
	cmd.Flags().StringVar(&inputFile, "file", "", "parse one utterance per line from a file")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "parallel parses for --file input")
	return cmd
}

// runParseFile parses each non-empty line concurrently and prints the
// results in input order.
func runParseFile(cmd *cobra.Command, parser *parse.Parser, path string, concurrency int) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if concurrency < 1 {
		concurrency = 1
	}
	results := make([]parse.Result, len(lines))
	var mu sync.Mutex

	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(concurrency)
	for i, line := range lines {
		i, line := i, line
		group.Go(func() error {
			result := parser.Parse(ctx, line)
			mu.Lock()
			results[i] = result
			mu.Unlock()
			return ctx.Err()
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		if err := printResult(cmd, result); err != nil {
			return err
		}
	}
	return nil
}

func printResult(cmd *cobra.Command, result parse.Result) error {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	cmd.Println(string(encoded))
	return nil
}
