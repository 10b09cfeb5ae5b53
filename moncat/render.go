// SPDX-License-Identifier: MIT

package moncat

import "strings"

// String renders d in the textual form accepted by Parse: each layer is
// printed as "Id(left) @ box @ Id(right)" (empty sides omitted) and layers
// are joined by " >> ". Identities print as "Id(n)" for PRO types and
// "Id(x @ y)" for labelled ones.
func (d Diagram) String() string {
	ls := d.seq.slice()
	if len(ls) == 0 {
		return idString(d.dom)
	}
	var sb strings.Builder
	frontier := d.dom
	for i, l := range ls {
		if i > 0 {
			sb.WriteString(" >> ")
		}
		writeLayer(&sb, frontier, l)
		frontier = rewrite(frontier, l)
	}

	return sb.String()
}

func writeLayer(sb *strings.Builder, frontier Ty, l Layer) {
	if l.Offset > 0 {
		sb.WriteString(idString(frontier.Slice(0, l.Offset)))
		sb.WriteString(" @ ")
	}
	sb.WriteString(l.Box.String())
	if end := l.Offset + l.Box.dom.Width(); end < frontier.Width() {
		sb.WriteString(" @ ")
		sb.WriteString(idString(frontier.Slice(end, frontier.Width())))
	}
}

func idString(t Ty) string { return "Id(" + t.idArg() + ")" }
