package main

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/haijima/pairchain/internal/dot"
	"github.com/haijima/pairchain/internal/pair"
	"github.com/haijima/pairchain/internal/util"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewGraphCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "graph"
	cmd.Aliases = []string{"summary"}
	cmd.Short = "Show how the chained pairs connect the names"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runGraph(cmd, v, fs) }

	cmd.Flags().String("format", "dot", "The output format {dot|text}")

	return cmd
}

func runGraph(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if format != "dot" && format != "text" {
		return errors.Newf("unknown format: %s", format)
	}

	res, err := BuildFromViper(v, fs)
	if err != nil {
		return err
	}
	conn := util.NewConnection()
	for _, p := range res.Chain {
		conn.Connect(p.First, p.Second)
	}

	if format == "text" {
		return printSummary(cmd.OutOrStdout(), res, conn)
	}
	return printGraphviz(cmd.OutOrStdout(), res, conn)
}

func printGraphviz(w io.Writer, res *pair.Result, conn *util.Connection) error {
	g := dot.Graph{Title: "pairchain", Clusters: make([]*dot.Cluster, 0), Edges: make([]*dot.Edge, 0)}
	for i, names := range conn.GetClusters() {
		c := &dot.Cluster{ID: strconv.Itoa(i + 1), Attrs: dot.Attrs{"label": strings.Join(names, ", ")}}
		for _, n := range names {
			c.Nodes = append(c.Nodes, &dot.Node{ID: n, Attrs: dot.Attrs{"label": n}})
		}
		g.Clusters = append(g.Clusters, c)
	}

	i := 0
	for s, seg := range pair.Segments(res.Chain) {
		for j, p := range seg {
			i++
			attrs := dot.Attrs{"label": strconv.Itoa(i)}
			if s > 0 && j == 0 {
				attrs["style"] = "dashed" // the chain restarts here
			}
			g.Edges = append(g.Edges, &dot.Edge{From: p.First, To: p.Second, Attrs: attrs})
		}
	}
	return dot.WriteGraph(w, g)
}

const tmplSummary = `{{title "Summary"}}
  {{key "known pairs"}}     : {{.known}}
  {{key "generated pairs"}} : {{.generated}}
  {{key "chained pairs"}}   : {{.chained}}
  {{key "segments"}}        : {{len .segments}}
  {{- range .segments}}
	{{.}}
  {{- end}}
  {{key "clusters"}}        : {{len .clusters}}
  {{- range .clusters}}
	{{printf "%q" .}}
  {{- end}}
`

func printSummary(w io.Writer, res *pair.Result, conn *util.Connection) error {
	segments := make([]string, 0)
	for _, seg := range pair.Segments(res.Chain) {
		segments = append(segments, segmentString(seg))
	}

	data := make(map[string]any)
	data["known"] = len(res.Base)
	data["generated"] = len(res.Generated)
	data["chained"] = len(res.Chain)
	data["segments"] = segments
	data["clusters"] = conn.GetClusters()

	return templateRender(w, "summary", tmplSummary, data)
}

// segmentString renders an adjacent run of pairs as the path of names it walks.
func segmentString(seg []pair.Pair) string {
	if len(seg) == 0 {
		return ""
	}
	names := []string{seg[0].First}
	for _, p := range seg {
		names = append(names, p.Second)
	}
	return strings.Join(names, " -> ")
}

var tmplFuncs = map[string]any{
	"title": color.CyanString,
	"key":   color.MagentaString,
}

func templateRender(w io.Writer, name string, tmpl string, data map[string]any) error {
	t, err := template.New(name).Funcs(tmplFuncs).Parse(tmpl)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = t.Execute(&buf, data); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}
