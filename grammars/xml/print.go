package xml

import (
	"fmt"
	"strings"
)

// Print n as XML with one element or text per line, indented by tabs.
//
// Elements without children are printed self-closing.
func Print(n Node) string {
	w := &strings.Builder{}
	printNode(w, n, "")
	return w.String()
}

func printNode(w *strings.Builder, n Node, indent string) {
	switch n := n.(type) {
	case *Element:
		fmt.Fprintf(w, "%s<%s", indent, n.Name)
		for _, attr := range n.Attrs {
			quote := `"`
			if strings.Contains(attr.Value, `"`) {
				quote = `'`
			}
			fmt.Fprintf(w, " %s=%s%s%s", attr.Name, quote, attr.Value, quote)
		}
		if len(n.Children) == 0 {
			w.WriteString("/>\n")
			return
		}
		w.WriteString(">\n")
		for _, child := range n.Children {
			printNode(w, child, indent+"\t")
		}
		fmt.Fprintf(w, "%s</%s>\n", indent, n.Name)

	case Text:
		fmt.Fprintf(w, "%s%s\n", indent, string(n))
	}
}
