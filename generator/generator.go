// Package generator emits the Rust constraint sources for a set of parsed
// predicates. Each predicate becomes its own file under builtins/, alongside
// the builtins module, the Constraint enum and the constraint module that
// wire them together.
//
// Generation is a pure function of its inputs: it performs no I/O and returns
// the files as model.GeneratedUnit values for the caller to write or print.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/mlwelles/fznGen/model"
)

// BuiltinsDir is the output subdirectory holding one file per predicate.
const BuiltinsDir = "builtins"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))

// Options controls the Rust-specific parts of the generated code.
type Options struct {
	Crate      string // Module that hosts the FlatZinc layer, e.g. "crate::fzn"
	Derive     string // Attribute placed on every generated struct and on the Constraint enum
	ModelParam string // Type of the model argument of try_from_item, e.g. "&mut Model"
}

// DefaultOptions returns the options matching the aries FlatZinc crate layout.
func DefaultOptions() Options {
	return Options{
		Crate:      "crate::fzn",
		Derive:     "#[derive(Clone, Debug)]",
		ModelParam: "&mut Model",
	}
}

// Generate returns every file for preds: the builtins module, the Constraint
// enum and the constraint module first, then one file per predicate in input
// order. N predicates always yield N+3 units.
func Generate(preds []model.Predicate, opts Options) ([]model.GeneratedUnit, error) {
	units, err := Aggregate(preds, opts)
	if err != nil {
		return nil, err
	}
	for _, p := range preds {
		u, err := EmitPredicate(p, opts)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}

// Aggregate returns the three files that depend on the whole predicate set:
// builtins/mod.rs, constraint.rs and mod.rs.
func Aggregate(preds []model.Predicate, opts Options) ([]model.GeneratedUnit, error) {
	data := aggregateView{
		Crate:      opts.Crate,
		Derive:     opts.Derive,
		Predicates: preds,
	}

	files := []struct {
		path string
		tmpl string
	}{
		{path.Join(BuiltinsDir, "mod.rs"), "builtins_mod.rs.tmpl"},
		{"constraint.rs", "constraint.rs.tmpl"},
		{"mod.rs", "mod.rs.tmpl"},
	}

	units := make([]model.GeneratedUnit, 0, len(files))
	for _, f := range files {
		content, err := execute(f.tmpl, data)
		if err != nil {
			return nil, err
		}
		units = append(units, model.GeneratedUnit{Path: f.path, Content: content})
	}
	return units, nil
}

// EmitPredicate returns the file builtins/<name>.rs implementing p.
func EmitPredicate(p model.Predicate, opts Options) (model.GeneratedUnit, error) {
	content, err := execute("predicate.rs.tmpl", newPredicateView(p, opts))
	if err != nil {
		return model.GeneratedUnit{}, fmt.Errorf("predicate %s: %w", p.Name, err)
	}
	return model.GeneratedUnit{
		Path:    path.Join(BuiltinsDir, string(p.Name)+".rs"),
		Content: content,
	}, nil
}

type aggregateView struct {
	Crate      string
	Derive     string
	Predicates []model.Predicate
}

type predicateView struct {
	Name         string
	TypeName     string
	Decl         string
	NbArgs       int
	Derive       string
	ModelParam   string
	Imports      importBlock
	Args         []argView
	Params       string // "a: Vec<Int>, b: Int"
	Fields       string // "a, b"
	Placeholders string // "{}, {}"
}

type argView struct {
	Name         string
	Type         string
	ConversionFn string
	Index        int
}

func newPredicateView(p model.Predicate, opts Options) predicateView {
	args := make([]argView, len(p.Args))
	params := make([]string, len(p.Args))
	fields := make([]string, len(p.Args))
	placeholders := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = argView{
			Name:         string(a.Name),
			Type:         a.Type.TargetType,
			ConversionFn: a.Type.ConversionFn,
			Index:        i,
		}
		params[i] = string(a.Name) + ": " + a.Type.TargetType
		fields[i] = string(a.Name)
		placeholders[i] = "{}"
	}

	return predicateView{
		Name:         string(p.Name),
		TypeName:     p.TypeName(),
		Decl:         p.String(),
		NbArgs:       p.NbArgs(),
		Derive:       opts.Derive,
		ModelParam:   opts.ModelParam,
		Imports:      predicateImports(p, opts),
		Args:         args,
		Params:       strings.Join(params, ", "),
		Fields:       strings.Join(fields, ", "),
		Placeholders: strings.Join(placeholders, ", "),
	}
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
