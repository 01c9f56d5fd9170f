package enumgen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"go.uber.org/multierr"
)

// reserved are identifiers the rendered file references itself. A type
// or value with one of these names would shadow them at package scope
// and break the output.
var reserved = map[string]string{
	"fmt":    "the fmt import",
	"enumap": "the enumap import",
	"int":    "a predeclared identifier",
	"string": "a predeclared identifier",
	"byte":   "a predeclared identifier",
	"bool":   "a predeclared identifier",
	"error":  "a predeclared identifier",
	"nil":    "a predeclared identifier",
	"true":   "a predeclared identifier",
	"false":  "a predeclared identifier",
	"iota":   "a predeclared identifier",
}

// Validate checks the whole config before anything is rendered and
// reports every problem at once. All enums of a run land in the same
// package, so type names, value names and the generated helpers share
// one namespace. Output files land in one directory, so enum names must
// also stay distinct after the lower-casing fileName applies.
func (c *Config) Validate() error {
	var err error

	if c.Package == "" {
		err = multierr.Append(err, errors.New("package must not be empty"))
	} else if !token.IsIdentifier(c.Package) {
		err = multierr.Append(err, fmt.Errorf("package %q is not a valid identifier", c.Package))
	}

	if len(c.Enums) == 0 {
		err = multierr.Append(err, errors.New("at least one enum is required"))
	}

	seen := make(map[string]string)
	files := make(map[string]string, len(c.Enums))
	for _, e := range c.Enums {
		if !token.IsIdentifier(e.Name) {
			continue
		}
		seen["num"+e.Name] = fmt.Sprintf("the length constant of enum %s", e.Name)
		seen[namesVar(e.Name)] = fmt.Sprintf("the name table of enum %s", e.Name)

		file := fileName(e.Name)
		if prev, ok := files[file]; ok && prev != e.Name {
			err = multierr.Append(err, fmt.Errorf("enums %s and %s both generate %s", prev, e.Name, file))
		} else {
			files[file] = e.Name
		}
	}

	for _, e := range c.Enums {
		err = multierr.Append(err, e.validate(seen))
	}

	return err
}

func (e *EnumDef) validate(seen map[string]string) error {
	var err error

	err = multierr.Append(err, checkIdent(seen, e.Name, fmt.Sprintf("enum name %q", e.Name), "enum "+e.Name))

	if len(e.Values) == 0 {
		err = multierr.Append(err, fmt.Errorf("enum %s: at least one value is required", e.Name))
	}

	texts := make(map[string]string, len(e.Values))
	for _, v := range e.Values {
		err = multierr.Append(err, checkIdent(seen, v, fmt.Sprintf("enum %s: value %q", e.Name, v), fmt.Sprintf("value %s of enum %s", v, e.Name)))

		text := strings.ToLower(v)
		if prev, ok := texts[text]; ok {
			err = multierr.Append(err, fmt.Errorf("enum %s: values %s and %s share the text %q", e.Name, prev, v, text))
		} else {
			texts[text] = v
		}
	}

	return err
}

// checkIdent verifies one declared name and claims it in the shared
// namespace. label describes the name in errors, claim describes it to
// later collisions.
func checkIdent(seen map[string]string, name, label, claim string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%s is not a valid identifier", label)
	}
	if what, ok := reserved[name]; ok {
		return fmt.Errorf("%s shadows %s", label, what)
	}
	if prev, ok := seen[name]; ok {
		return fmt.Errorf("%s collides with %s", label, prev)
	}
	seen[name] = claim
	return nil
}
