package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/retailops/storectl/cmd/storectl/output"
	"github.com/retailops/storectl/pkg/listview"
	"github.com/retailops/storectl/pkg/views"
)

var (
	// Shared listing flags
	listSearch string
	listSort   string
	listPage   int
)

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&listSearch, "search", "s", "", "Filter rows by free text")
	cmd.Flags().StringVar(&listSort, "sort", "", "Sort key (see command help)")
	cmd.Flags().IntVar(&listPage, "page", 1, "Page number")
}

// derivePage runs the shared filter/sort/paginate derivation and clamps the
// requested page so a shrunk collection never renders an empty page.
func derivePage[T any](items []T, view views.View[T], search, sort string, page int) (listview.Page[T], int) {
	params := listview.Params{Query: search, Sort: sort, Page: page, PageSize: listview.DefaultPageSize}
	derived := listview.Derive(items, view.Config, params)
	clamped := listview.ClampPage(page, derived.TotalPages)
	if clamped != page {
		params.Page = clamped
		derived = listview.Derive(items, view.Config, params)
	}
	return derived, clamped
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(headers ...string) *tabwriter.Writer {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, h)
	}
	fmt.Fprintln(w)
	return w
}

func printFooter(page, totalPages, total int) {
	output.Muted("Page %d/%d • %d row(s)", page, totalPages, total)
}
