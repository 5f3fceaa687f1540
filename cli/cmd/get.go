package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/cfglang/cfg/lang"
)

// Get resolves a dot-separated path into the variable tree and prints the
// value it finds. Numeric path segments index into arrays and lists.
type Get struct {
	Path string `arg:""                                     help:"Dot-separated variable path, e.g. server.hosts.0"`
	File string `default:"-" name:"file" short:"f" type:"existingfile" help:"Source file or '-' for stdin"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	doc, err := loadSource(ctx, g.File)
	if err != nil {
		return err
	}

	v, err := resolvePath(doc.Root(), g.Path)
	if err != nil {
		return err
	}

	switch v.Type() {
	case lang.TypeArray, lang.TypeList, lang.TypeStruct:
		out, err := json.MarshalIndent(v.Native(), "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))

	default:
		fmt.Println(v.Native())
	}

	return nil
}

// resolvePath walks the tree one segment at a time. An unknown name is
// reported with fuzzy-matched suggestions from the names available at that
// point in the walk.
func resolvePath(root *lang.Variable, path string) (*lang.Variable, error) {
	v := root

	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, fmt.Errorf("empty segment in path `%s`", path)
		}

		if idx, err := strconv.Atoi(segment); err == nil {
			child, err := v.LookupAt(idx)
			if err != nil {
				return nil, err
			}

			v = child

			continue
		}

		child, err := v.Lookup(segment)
		if err != nil {
			var lerr *lang.Error
			if errors.As(err, &lerr) && lerr.Kind == lang.ErrorNotFound {
				if hint := suggest(segment, memberNames(v)); hint != "" {
					return nil, fmt.Errorf("%w (did you mean %s?)",
						err, hint)
				}
			}

			return nil, err
		}

		v = child
	}

	return v, nil
}

func memberNames(v *lang.Variable) []string {
	names := make([]string, 0, v.Len())

	for i := range v.Len() {
		if name := v.NameAt(i); name != "" {
			names = append(names, name)
		}
	}

	return names
}

const maxSuggestions = 3

// suggest returns up to three fuzzy-matched candidates formatted for the
// not-found diagnostic, or "" when nothing matches.
func suggest(input string, candidates []string) string {
	matches := fuzzy.Find(input, candidates)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = "`" + m.Str + "`"
	}

	return strings.Join(names, " or ")
}
