package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/internal/logger"
	"github.com/reoring/goentity/internal/source"
)

func renderCmd() *cobra.Command {
	var catalog string
	var entity string
	var input string
	var inputFormat string
	var format string
	var sets []string

	c := &cobra.Command{
		Use:   "render",
		Short: "Represent an input document through an entity and print the result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := loadCatalog(catalog)
			if err != nil {
				return err
			}
			e, err := lookupEntity(cat, entity)
			if err != nil {
				return err
			}
			opts, err := parseSets(sets)
			if err != nil {
				return err
			}
			doc, err := readInput(cmd.InOrStdin(), input, inputFormat)
			if err != nil {
				return err
			}

			logger.L().Info("render.start", "entity", e.Name(), "input", input)
			res, err := e.Represent(doc, opts)
			if err != nil {
				return err
			}
			out := res.Serialize(nil)
			if err := writeOutput(cmd.OutOrStdout(), out, format); err != nil {
				return err
			}
			logger.L().Info("render.done", "entity", e.Name(), "collection", res.IsCollection())
			return nil
		},
	}

	c.Flags().StringVarP(&catalog, "catalog", "c", "", "YAML entity catalog (required)")
	c.Flags().StringVarP(&entity, "entity", "e", "", "Entity name to represent with (required)")
	c.Flags().StringVarP(&input, "input", "i", "-", "Input document path, or - for stdin")
	c.Flags().StringVar(&inputFormat, "input-format", "", "Input format: json|yaml (default: from extension, else json)")
	c.Flags().StringVarP(&format, "format", "f", "json", "Output format: json|yaml|dump")
	c.Flags().StringArrayVar(&sets, "set", nil, "Option key=value (value parsed as a YAML scalar); repeatable")

	_ = c.MarkFlagRequired("catalog")
	_ = c.MarkFlagRequired("entity")
	return c
}

func readInput(stdin io.Reader, path, format string) (any, error) {
	f := source.FormatFromPath(path)
	if format != "" {
		var err error
		if f, err = source.ParseFormat(format); err != nil {
			return nil, err
		}
	}
	if path == "" || path == "-" {
		return source.Decode(stdin, f)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return source.Decode(fh, f)
}

// parseSets turns ["admin=true", "limit=3"] into options.
func parseSets(sets []string) (goentity.Options, error) {
	opts := goentity.Options{}
	for _, s := range sets {
		k, v, ok := strings.Cut(s, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q (want key=value)", s)
		}
		var val any
		if err := yaml.Unmarshal([]byte(v), &val); err != nil {
			val = v
		}
		opts[k] = val
	}
	return opts, nil
}

func writeOutput(w io.Writer, out any, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case "dump":
		spew.Fdump(w, plainOutput(out))
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json|yaml|dump)", format)
	}
}

func plainOutput(out any) any {
	switch t := out.(type) {
	case *goentity.Hash:
		return t.ToMap()
	case []*goentity.Hash:
		items := make([]map[string]any, len(t))
		for i, h := range t {
			items[i] = h.ToMap()
		}
		return items
	}
	return out
}
