package cli

import (
	"fmt"

	goentity "github.com/reoring/goentity"
	"github.com/reoring/goentity/config"
	"github.com/reoring/goentity/internal/logger"
)

// builtinFuncs are the functions catalogs may reference from the CLI.
func builtinFuncs() config.Funcs {
	return config.Funcs{
		Compute: map[string]goentity.ComputeFunc{
			"object": func(obj any, _ goentity.Options) any { return obj },
			"options": func(_ any, opts goentity.Options) any {
				return map[string]any(opts.Copy())
			},
		},
		Predicates: map[string]goentity.Predicate{
			"collection": func(_ any, opts goentity.Options) bool { return goentity.IsCollection(opts) },
			"nil":        func(obj any, _ goentity.Options) bool { return obj == nil },
		},
	}
}

func loadCatalog(path string) (*config.Catalog, error) {
	cat, err := config.Load(path, builtinFuncs())
	if err != nil {
		logger.L().Error("catalog.load_failed", "path", path, "err", err)
		return nil, err
	}
	logger.L().Debug("catalog.loaded", "path", path, "entities", cat.Names())
	return cat, nil
}

func lookupEntity(cat *config.Catalog, name string) (*goentity.Entity, error) {
	e, ok := cat.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown entity %q (declared: %v)", name, cat.Names())
	}
	return e, nil
}
