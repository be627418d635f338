package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/tabfind/internal/core/domain"
)

var (
	searchLimit   int
	searchJSON    bool
	searchSources []string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search tabs, bookmarks and history once",
	Long: `Fuzzy-matches the query against every source and prints the results grouped
by source. With no query the top records of each source are listed.

Output is JSON when --json is given or stdout is not a terminal.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum results per source (0 = no limit)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringSliceVarP(&searchSources, "source", "s", nil,
		"restrict to sources: tabs, bookmarks, history, closed_tabs")
	rootCmd.AddCommand(searchCmd)
}

// searchResultJSON is one row of JSON output.
type searchResultJSON struct {
	Source   string  `json:"source"`
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	WindowID string  `json:"window_id,omitempty"`
	Score    float64 `json:"score"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errNotConfigured("search service")
	}

	opts := domain.SearchOptions{Limit: searchLimit}
	for _, name := range searchSources {
		kind, err := domain.ParseSourceKind(name)
		if err != nil {
			return err
		}
		opts.Kinds = append(opts.Kinds, kind)
	}

	query := strings.Join(args, " ")
	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON || !isTerminal(cmd.OutOrStdout()) {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

// isTerminal reports whether w is an interactive terminal.
// Writers that are not files, such as test buffers, count as terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}

func outputSearchJSON(cmd *cobra.Command, results domain.ResultSet) error {
	rows := results.Flatten()
	out := make([]searchResultJSON, len(rows))
	for i := range rows {
		rec := rows[i].Record
		out[i] = searchResultJSON{
			Source:   rec.Kind.String(),
			ID:       rec.ID,
			Title:    rec.Title,
			URL:      rec.URL,
			WindowID: rec.WindowID,
			Score:    rows[i].Score,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results domain.ResultSet) error {
	if results.Len() == 0 {
		cmd.Println("No results found.")
		return nil
	}

	for _, kind := range domain.AllSourceKinds() {
		matches := results.Results[kind]
		if len(matches) == 0 {
			continue
		}
		cmd.Printf("%s (%d)\n", kind.Title(), len(matches))
		for i := range matches {
			rec := matches[i].Record
			if rec.Title == "" {
				cmd.Printf("  %s\n", rec.URL)
				continue
			}
			cmd.Printf("  %s\n      %s\n", rec.Title, rec.URL)
		}
		cmd.Println()
	}
	return nil
}
