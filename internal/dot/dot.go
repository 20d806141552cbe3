package dot

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/template"
)

type Graph struct {
	Title    string
	Clusters []*Cluster
	Edges    []*Edge
}

type Cluster struct {
	ID    string
	Nodes []*Node
	Attrs Attrs
}

func (c *Cluster) String() string {
	return fmt.Sprintf("cluster_%s", c.ID)
}

type Node struct {
	ID    string
	Attrs Attrs
}

func (n *Node) String() string {
	return n.ID
}

type Edge struct {
	From  string
	To    string
	Attrs Attrs
}

func (e *Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.From, e.To)
}

type Attrs map[string]string

// List returns the attributes as key="value" sorted by key.
func (p Attrs) List() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	l := make([]string, 0, len(p))
	for _, k := range keys {
		l = append(l, fmt.Sprintf("%s=%q", k, p[k]))
	}
	return l
}

func (p Attrs) String() string {
	return strings.Join(p.List(), " ")
}

const tmplGraph = `digraph pairchain {
    label={{printf "%q" .Title}};
    labeljust="l";
    fontname="Verdana";
    rankdir="LR";
    node [fontname="Verdana"];
{{- range .Clusters}}

    {{printf "subgraph %q {" .String}}
        {{- range $k, $v := .Attrs}}
        {{$k}}={{printf "%q" $v}};
        {{- end}}
        {{- range .Nodes}}
        {{printf "%q [ %s ]" .ID .Attrs}}
        {{- end}}
    }
{{- end}}
{{range .Edges}}
    {{printf "%q -> %q [ %s ]" .From .To .Attrs}}
{{- end}}
}
`

func WriteGraph(w io.Writer, g Graph) error {
	t, err := template.New("dot").Parse(tmplGraph)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, g); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}
