package parser

import (
	"github.com/mlwelles/fznGen/model"
)

// fixArgName applies the argument naming rule used by the builtin constraints:
// a two-character name keeps only its first character, so "as" and "bs"
// become "a" and "b". Every other name is returned unchanged.
//
// The rule applies to any two-character name, including ones like "x1".
// TODO: confirm with the builtins maintainers whether the rule should be
// limited to plural array names before narrowing it.
func fixArgName(name model.Identifier) model.Identifier {
	if len(name) == 2 {
		return name[:1]
	}
	return name
}
