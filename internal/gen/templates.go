package gen

import "text/template"

// fileTemplate renders one generated file per package. The output is run
// through go/format before writing, so the template favors clarity over
// exact whitespace.
var fileTemplate = template.Must(template.New("props").Parse(`// Code generated by propgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{range .Types}}{{$t := .}}
// PropertyKind tags {{$t.Name}} as an {{$t.KindWord}} type.
func (*{{$t.Name}}) PropertyKind() property.KindEnum { return property.{{$t.KindConst}} }
{{range $t.Accessors}}
{{- if .EmitGetter}}
{{if $.Comments}}// {{.MethodName}} reads the "{{.WireName}}" property.
{{end -}}
func (v *{{$t.Name}}) {{.MethodName}}() {{.TypeStr}} {
	val, _ := property.Get(v, "{{.WireName}}")
	out, _ := val.({{.TypeStr}})
	return out
}
{{end}}
{{- if .EmitSetter}}
{{if $.Comments}}// {{.SetterName}} writes the "{{.WireName}}" property.
{{end -}}
func (v *{{$t.Name}}) {{.SetterName}}(value {{.TypeStr}}) {
	_ = property.Set(v, "{{.WireName}}", value)
}
{{end}}
{{- end}}
{{- if $t.IsOutput}}
// New{{$t.Name}}FromMap builds a {{$t.Name}} from an external payload.
func New{{$t.Name}}FromMap(values map[string]any) (*{{$t.Name}}, error) {
	v := &{{$t.Name}}{}
	if err := property.NewOutput(v, values); err != nil {
		return nil, err
	}
	return v, nil
}
{{end}}
{{- end}}
func init() {
{{- range .Types}}
	if err := property.{{.RegisterFunc}}(&{{.Name}}{}); err != nil {
		panic(err)
	}
{{- end}}
}
`))
