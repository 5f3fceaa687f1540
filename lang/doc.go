// Package lang implements the cfg configuration language: a small textual
// format of `name = value;` declarations, where a value is a scalar (int,
// double, bool, string), a type-homogeneous array `[...]`, a mixed-type list
// `(...)`, or a named struct `{...}`, nested arbitrarily.
//
// A [Document] owns one parsed variable tree at a time. The tree is built by
// a hand-written tokenizer and a single-pass token-driven parser, and is
// queried through typed accessors on [Variable]:
//
//	doc := lang.New()
//	if err := doc.LoadFile(ctx, "app.cfg"); err != nil {
//		return err
//	}
//	port := doc.Root().Int("port")
//
// Every accessor has a safe form (Lookup*) returning an error with a
// diagnostic [ErrorKind], and a convenience form returning the zero value on
// any failure. The tree is read-only after a successful load and safe for
// concurrent reads.
package lang
