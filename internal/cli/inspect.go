package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	goentity "github.com/reoring/goentity"
)

func inspectCmd() *cobra.Command {
	var catalog string
	var entity string

	c := &cobra.Command{
		Use:   "inspect",
		Short: "List the resolved exposures of each entity in a catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(catalog)
			if err != nil {
				return err
			}
			names := cat.Names()
			if entity != "" {
				if _, err := lookupEntity(cat, entity); err != nil {
					return err
				}
				names = []string{entity}
			}
			for i, name := range names {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				e, _ := cat.Lookup(name)
				if err := printEntity(cmd.OutOrStdout(), e); err != nil {
					return err
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&catalog, "catalog", "c", "", "YAML entity catalog (required)")
	c.Flags().StringVarP(&entity, "entity", "e", "", "Only this entity")
	_ = c.MarkFlagRequired("catalog")
	return c
}

func printEntity(w io.Writer, e *goentity.Entity) error {
	header := e.Name()
	if p := e.Parent(); p != nil {
		header += " < " + p.Name()
	}
	fmt.Fprintln(w, header)

	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "  KEY\tSOURCE\tKIND\tUSING\tIF\tUNLESS")
	for _, x := range e.Exposures() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%s\n",
			x.Key(), x.Source(), x.Kind(), dash(x.Using.Name()), describe(x.If), describe(x.Unless))
	}
	return tw.Flush()
}

func describe(c goentity.Condition) string {
	switch {
	case c.IsZero():
		return "-"
	case c.IsPredicate():
		return "func"
	}
	flags := c.FlagSet()
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, flags[k])
	}
	return strings.Join(parts, ",")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
