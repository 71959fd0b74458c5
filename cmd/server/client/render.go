package client

import (
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"
)

func num(s *structpb.Struct, name string) int64 {
	return int64(s.GetFields()[name].GetNumberValue())
}

func str(s *structpb.Struct, name string) string {
	return s.GetFields()[name].GetStringValue()
}

func sub(s *structpb.Struct, name string) *structpb.Struct {
	return s.GetFields()[name].GetStructValue()
}

func list(s *structpb.Struct, name string) []*structpb.Value {
	return s.GetFields()[name].GetListValue().GetValues()
}

func renderTalent(w io.Writer, talent *structpb.Struct) {
	fmt.Fprintf(w, "  [row %d] %-20s %d/%d  (%s)\n",
		num(talent, "row"), str(talent, "id"), num(talent, "points"), num(talent, "maxPoints"), str(talent, "name"))
}

func renderTree(w io.Writer, tree *structpb.Struct) {
	fmt.Fprintf(w, "%s (%s) - %d points spent\n", str(tree, "title"), str(tree, "name"), num(tree, "pointsSpent"))
	if desc := str(tree, "description"); desc != "" {
		fmt.Fprintf(w, "  %s\n", desc)
	}
	for _, talent := range list(tree, "talents") {
		renderTalent(w, talent.GetStructValue())
	}
}

func renderRows(w io.Writer, resp *structpb.Struct) {
	rows := list(resp, "rows")
	if len(rows) == 0 {
		return
	}
	parts := make([]string, 0, len(rows))
	for _, v := range rows {
		row := v.GetStructValue()
		state := "locked"
		if row.GetFields()["met"].GetBoolValue() {
			state = "open"
		}
		parts = append(parts, fmt.Sprintf("row %d %s (%d)", num(row, "row"), state, num(row, "requirement")))
	}
	fmt.Fprintf(w, "Rows: %s\n", strings.Join(parts, ", "))
}

func renderProgression(w io.Writer, p *structpb.Struct) {
	fmt.Fprintf(w, "Level %d - %s XP (next level at %s)\n",
		num(p, "level"), str(p, "experience"), str(p, "nextLevelExperience"))
}

func renderTrees(w io.Writer, resp *structpb.Struct) {
	trees := list(resp, "trees")
	if len(trees) == 0 {
		fmt.Fprintln(w, "No trees loaded")
		return
	}
	for i, tree := range trees {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderTree(w, tree.GetStructValue())
	}
}

func renderTreeResponse(w io.Writer, resp *structpb.Struct) {
	renderTree(w, sub(resp, "tree"))
	renderRows(w, resp)
}

func renderCommand(w io.Writer, resp *structpb.Struct) {
	talent := sub(resp, "talent")
	outcome := str(resp, "outcome")
	if resp.GetFields()["allowed"].GetBoolValue() {
		fmt.Fprintf(w, "%s: %s now %d/%d\n", outcome, str(talent, "id"), num(talent, "points"), num(talent, "maxPoints"))
	} else {
		fmt.Fprintf(w, "not allowed (%s): %s stays at %d/%d\n", outcome, str(talent, "id"), num(talent, "points"), num(talent, "maxPoints"))
	}
	renderRows(w, resp)
	renderProgression(w, sub(resp, "progression"))
}

func renderTalentChange(w io.Writer, resp *structpb.Struct) {
	renderTalent(w, sub(resp, "talent"))
	renderRows(w, resp)
	if p := sub(resp, "progression"); p != nil {
		renderProgression(w, p)
	}
}

func renderProgressionResponse(w io.Writer, resp *structpb.Struct) {
	renderProgression(w, sub(resp, "progression"))
	fmt.Fprintf(w, "Trees: %d\n", num(resp, "treeCount"))
}

func renderStatus(w io.Writer, resp *structpb.Struct) {
	if !resp.GetFields()["loaded"].GetBoolValue() {
		fmt.Fprintln(w, "No configuration loaded")
		return
	}
	fmt.Fprintf(w, "Generation %d loaded at %s, %d trees\n",
		num(resp, "generation"), str(resp, "loadedAt"), num(resp, "treeCount"))
}

func renderReload(w io.Writer, resp *structpb.Struct) {
	fmt.Fprintf(w, "Loaded generation %d with %d trees\n", num(resp, "generation"), len(list(resp, "trees")))
	for _, v := range list(resp, "warnings") {
		warning := v.GetStructValue()
		fmt.Fprintf(w, "  warning: %s: %s\n", str(warning, "tree"), str(warning, "message"))
	}
	renderProgression(w, sub(resp, "progression"))
}
