package enumgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

type enumData struct {
	Package      string
	Name         string
	Recv         string
	NumConst     string
	NamesVar     string
	NamesLiteral string
	Values       []string
}

var fileTemplate = template.Must(template.New("enum").Parse(`// Code generated by enumgen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"

	"github.com/Dav1dde/enumap"
)

// {{.Name}} indexes enumap containers over its declared values.
type {{.Name}} int

const (
{{- range $i, $v := .Values}}
	{{if eq $i 0}}{{$v}} {{$.Name}} = iota{{else}}{{$v}}{{end}}
{{- end}}
)

const {{.NumConst}} = {{len .Values}}

var {{.NamesVar}} = {{.NamesLiteral}}

var _ enumap.Enum[{{.Name}}] = {{.Name}}(0)

func ({{.Recv}} {{.Name}}) Index() int { return int({{.Recv}}) }

func ({{.Name}}) FromIndex(i int) ({{.Name}}, bool) {
	return enumap.FromIndex[{{.Name}}](i, {{.NumConst}})
}

func ({{.Name}}) Len() int { return {{.NumConst}} }

func ({{.Recv}} {{.Name}}) String() string {
	if {{.Recv}} < 0 || {{.Recv}} >= {{.NumConst}} {
		return fmt.Sprintf("{{.Name}}(%d)", int({{.Recv}}))
	}
	return {{.NamesVar}}[{{.Recv}}]
}

func ({{.Recv}} {{.Name}}) MarshalText() ([]byte, error) {
	if {{.Recv}} < 0 || {{.Recv}} >= {{.NumConst}} {
		return nil, fmt.Errorf("invalid {{.Name}}: %d", int({{.Recv}}))
	}
	return []byte({{.NamesVar}}[{{.Recv}}]), nil
}

func ({{.Recv}} *{{.Name}}) UnmarshalText(text []byte) error {
	for idx, name := range {{.NamesVar}} {
		if name == string(text) {
			*{{.Recv}} = {{.Name}}(idx)
			return nil
		}
	}
	return fmt.Errorf("unknown {{.Name}}: %q", text)
}
`))

func render(pkg string, def EnumDef) ([]byte, error) {
	quoted := make([]string, len(def.Values))
	for i, v := range def.Values {
		quoted[i] = strconv.Quote(strings.ToLower(v))
	}

	data := enumData{
		Package:  pkg,
		Name:     def.Name,
		Recv:     receiver(def.Name),
		NumConst: "num" + def.Name,
		NamesVar: namesVar(def.Name),
		Values:   def.Values,
	}
	data.NamesLiteral = fmt.Sprintf("[%s]string{%s}", data.NumConst, strings.Join(quoted, ", "))

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w", err)
	}
	return src, nil
}

// receiver picks the method receiver name, the lower-cased first letter
// of the type name. The loop variables in the rendered methods are
// named so they cannot shadow it.
func receiver(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	low := unicode.ToLower(r)
	if !unicode.IsLetter(low) {
		return "x"
	}
	return string(low)
}

// namesVar derives the name table identifier, fruitNames for Fruit.
func namesVar(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:] + "Names"
}
