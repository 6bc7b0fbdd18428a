package argparse

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/fatih/color"
)

var usageTemplateString = `
{{- if .Help -}}
{{.Help}}

{{end -}}
{{heading "USAGE:"}}
    {{.Name}}{{if .Options}} [OPTIONS]{{end}} [--] [ARGS...]

{{- if .Options}}

{{heading "OPTIONS:"}}
{{- range .Options}}
\t    \t{{.Key}}\t
{{- if .Help}}  {{.Help}}{{end}}
{{- if .Default}}  (default: {{.Default}}){{end}}
{{- end}}

{{- end}}

`

var headingColor = color.New(color.Bold)

var usageTemplate = template.Must(
	template.New("usage").
		Funcs(template.FuncMap{
			"heading": headingColor.Sprint,
		}).
		Parse(usageTemplateString),
)

type usageEntry struct {
	Key     string
	Help    string
	Default string
}

// decoratedKey is the option as it appears in usage output, e.g. "-flag" or
// "-times <int>".
func (spec OptionSpec) decoratedKey() string {
	if !spec.hasArg() {
		return "-" + spec.Name
	}
	return fmt.Sprintf("-%s <%s>", spec.Name, spec.Type)
}

func (p *Parser) usageEntries() []usageEntry {
	entries := make([]usageEntry, 0, len(p.specs))
	for _, spec := range p.specs {
		e := usageEntry{
			Key:  spec.decoratedKey(),
			Help: spec.Help,
		}
		if !spec.isZeroDefault() {
			e.Default = fmt.Sprintf("%v", spec.Default)
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Usage returns the usage text listing every registered option.
func (p *Parser) Usage() string {
	sb := strings.Builder{}
	// strings.Builder never fails to write.
	_ = p.WriteUsage(&sb)
	return sb.String()
}

func (p *Parser) WriteUsage(w io.Writer) error {
	name := p.name
	if name == "" {
		name = "command"
	}
	data := struct {
		Name    string
		Help    string
		Options []usageEntry
	}{
		Name:    name,
		Help:    p.help,
		Options: p.usageEntries(),
	}

	tw := newEscapedTabWriter(w)
	if err := usageTemplate.Execute(tw, data); err != nil {
		return err
	}
	return tw.Flush()
}

type escapedTabWriter struct {
	replacer  *strings.Replacer
	tabWriter *tabwriter.Writer
}

func newEscapedTabWriter(w io.Writer) escapedTabWriter {
	return escapedTabWriter{
		replacer:  strings.NewReplacer(`\t`, "\t", `\f`, "\f"),
		tabWriter: tabwriter.NewWriter(w, 0, 0, 0, ' ', 0),
	}
}

func (w escapedTabWriter) Write(p []byte) (int, error) {
	return w.replacer.WriteString(w.tabWriter, string(p))
}

func (w escapedTabWriter) Flush() error {
	return w.tabWriter.Flush()
}
