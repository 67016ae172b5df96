package generator

import (
	"sort"

	"github.com/mlwelles/fznGen/model"
)

// importBlock holds the `use` paths of a generated file, grouped the way
// rustfmt groups them: std, external crates, then the local crate.
type importBlock struct {
	Groups [][]string
}

// predicateImports computes the deduplicated, sorted imports needed by the
// file generated for p.
func predicateImports(p model.Predicate, opts Options) importBlock {
	var std []string
	for _, a := range p.Args {
		if a.Type.NeedsSharing {
			std = append(std, "std::rc::Rc")
			break
		}
	}

	external := []string{"flatzinc::ConstraintItem"}

	local := map[string]struct{}{
		opts.Crate + "::Fzn":                    {},
		opts.Crate + "::constraint::Constraint": {},
		opts.Crate + "::model::Model":           {},
	}
	for _, a := range p.Args {
		local[opts.Crate+"::parser::"+a.Type.ConversionFn] = struct{}{}
		if a.Type.Import != "" {
			local[opts.Crate+"::"+a.Type.Import] = struct{}{}
		}
	}

	var block importBlock
	for _, group := range [][]string{std, external, sortedKeys(local)} {
		if len(group) > 0 {
			block.Groups = append(block.Groups, group)
		}
	}
	return block
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
