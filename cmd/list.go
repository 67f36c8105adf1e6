package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qecsim/qecsimext/qec"
)

// listCmd prints the registered components with their one-line descriptions
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered codes, error models and decoders",
	Run: func(cmd *cobra.Command, args []string) {
		writeComponentList(os.Stdout)
	},
}

func writeComponentList(w io.Writer) {
	fmt.Fprint(w, componentHelp())
}

// componentHelp renders every extension point as an indented name/description table.
func componentHelp() string {
	var b strings.Builder
	sections := []struct {
		title   string
		entries []qec.Entry
	}{
		{"CODE", qec.Codes()},
		{"ERROR_MODEL", qec.ErrorModels()},
		{"DECODER", qec.Decoders()},
	}
	for _, s := range sections {
		fmt.Fprintf(&b, "%s:\n", s.title)
		for _, e := range s.entries {
			fmt.Fprintf(&b, "  %-24s %s\n", e.Name, e.Description)
		}
	}
	return b.String()
}

func sortedStrings(s []string) []string {
	sort.Strings(s)
	return s
}
