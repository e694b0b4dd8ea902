// Command routeinspect plans a minimum-backtracking closed route over a
// trail network described in an adjacency text file.
//
// Usage:
//
//	routeinspect [network-file]
//
// With no argument the file path is prompted for on standard input. On
// success the circuit is printed as letter labels (falling back to numeric
// indices past 26 nodes) together with its length in miles; on failure a
// single "Problem: <message>" line goes to standard error and the process
// exits non-zero.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pacsam/routeinspect/route"
)

var (
	styleCircuit = lipgloss.NewStyle().Bold(true)
	styleMiles   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	verbose bool

	rootCmd = &cobra.Command{
		Use:   "routeinspect [network-file]",
		Short: "Plan a closed route covering every segment of a trail network",
		Long: `Reads a weighted adjacency description (one line per node, comma-separated
neighbor:weight tokens, weights in feet) and prints a closed walk that
traverses every segment at least once with minimal backtracking, plus its
total length in miles.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlan,
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runPlan(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	path, err := networkPath(args)
	if err != nil {
		return err
	}
	logger.Debug("planning route", "file", path)

	res, err := route.PlanFile(path)
	if err != nil {
		return err
	}
	logger.Debug("circuit extracted", "steps", len(res.Circuit), "feet", res.Feet)

	labels, err := route.Alphabetize(res.Circuit)
	if err != nil {
		if !errors.Is(err, route.ErrTooManyNodes) {
			return err
		}
		// Labeling only covers A–Z; the numeric circuit stays valid.
		logger.Debug("alphabetic labeling unavailable", "err", err)
		labels = strings.Trim(strings.Join(strings.Fields(fmt.Sprint(res.Circuit)), " -- "), "[]")
	}

	fmt.Println(styleCircuit.Render(labels))
	fmt.Println(styleMiles.Render(fmt.Sprintf("%.2f miles", res.Miles)))

	return nil
}

// networkPath resolves the input file: positional argument if given,
// otherwise a one-line prompt on standard input.
func networkPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	fmt.Println("File Path >")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading file path: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Problem: %v\n", err)
		os.Exit(1)
	}
}
