package stitch

import (
	"reflect"
	"testing"

	"github.com/stitchui/stitch/internal/css"
)

func declMap(decls []css.Decl) map[string]string {
	m := make(map[string]string, len(decls))
	for _, d := range decls {
		m[d.Property] = d.Value
	}
	return m
}

func TestContainerDecls_FlexDirections(t *testing.T) {
	row, ctx := containerDecls(Row("", nil).(Layout))
	m := declMap(row)
	if m["display"] != "flex" || m["flex-direction"] != "row" {
		t.Errorf("row decls = %v, want flex row", m)
	}
	if !ctx.inFlex || ctx.direction != Rightward {
		t.Errorf("row child context = %+v, want rightward flex", ctx)
	}

	col, _ := containerDecls(Column("", nil).(Layout))
	if declMap(col)["flex-direction"] != "column" {
		t.Errorf("column decls = %v, want flex column", declMap(col))
	}

	wrapped, _ := containerDecls(WrappedRow("", nil).(Layout))
	if declMap(wrapped)["flex-wrap"] != "wrap" {
		t.Errorf("wrapped row decls = %v, want flex-wrap", declMap(wrapped))
	}
}

func TestContainerDecls_SpacingLastWriteWins(t *testing.T) {
	l := Row("", []Attribute{Spacing(1), Spacing(3)}).(Layout)

	decls, ctx := containerDecls(l)

	if declMap(decls)["gap"] != "24px" {
		t.Errorf("gap = %q, want 24px from the last spacing attribute", declMap(decls)["gap"])
	}
	if ctx.unit != 24 {
		t.Errorf("child spacing unit = %v, want 24", ctx.unit)
	}
}

func TestContainerDecls_GridTemplate(t *testing.T) {
	l := Grid("", []Attribute{GridGap(2)}, GridTemplate{
		Rows:    []Length{Px(40), Fill(1)},
		Columns: []Length{Percent(25), Fill(3), Content()},
	}).(Layout)

	decls, ctx := containerDecls(l)

	m := declMap(decls)
	if m["display"] != "grid" {
		t.Errorf("display = %q, want grid", m["display"])
	}
	if m["grid-template-rows"] != "40px 1fr" {
		t.Errorf("rows = %q, want %q", m["grid-template-rows"], "40px 1fr")
	}
	if m["grid-template-columns"] != "25% 3fr max-content" {
		t.Errorf("columns = %q, want %q", m["grid-template-columns"], "25% 3fr max-content")
	}
	if m["gap"] != "16px" {
		t.Errorf("gap = %q, want 16px", m["gap"])
	}
	if ctx.grid == nil {
		t.Error("grid context must flow to children")
	}
}

func TestContainerDecls_NamedAreas(t *testing.T) {
	l := NamedGrid("", nil, GridTemplate{
		Rows:    []Length{Px(60), Fill(1)},
		Columns: []Length{Px(200), Fill(1)},
		Areas: [][]string{
			{"header", "header"},
			{"nav", "main"},
		},
	}).(Layout)

	decls, _ := containerDecls(l)

	want := `"header header" "nav main"`
	if got := declMap(decls)["grid-template-areas"]; got != want {
		t.Errorf("areas = %q, want %q", got, want)
	}
}

func TestPlacementDecls_CrossAxisOnly(t *testing.T) {
	rowCtx := renderContext{inFlex: true, direction: Rightward}
	colCtx := renderContext{inFlex: true, direction: Downward}

	// Alignment on the main axis is ignored.
	if got := placementDecls([]Attribute{AlignX(CenterX)}, rowCtx); len(got) != 0 {
		t.Errorf("main-axis AlignX in a row produced %v, want nothing", got)
	}
	if got := placementDecls([]Attribute{AlignY(CenterY)}, colCtx); len(got) != 0 {
		t.Errorf("main-axis AlignY in a column produced %v, want nothing", got)
	}

	// Alignment on the cross axis maps to self-placement.
	got := placementDecls([]Attribute{AlignY(Bottom)}, rowCtx)
	if declMap(got)["align-self"] != "flex-end" {
		t.Errorf("cross-axis AlignY = %v, want align-self flex-end", got)
	}
	got = placementDecls([]Attribute{AlignX(CenterX)}, colCtx)
	if declMap(got)["align-self"] != "center" {
		t.Errorf("cross-axis AlignX = %v, want align-self center", got)
	}
}

func TestPlacementDecls_TextFlowFloats(t *testing.T) {
	ctx := renderContext{inText: true}

	if declMap(placementDecls([]Attribute{AlignX(Left)}, ctx))["float"] != "left" {
		t.Error("left-aligned text-flow child must float left")
	}
	if declMap(placementDecls([]Attribute{AlignX(Right)}, ctx))["float"] != "right" {
		t.Error("right-aligned text-flow child must float right")
	}
	if got := placementDecls([]Attribute{AlignX(CenterX)}, ctx); len(got) != 0 {
		t.Errorf("centered text-flow child produced %v, want normal flow", got)
	}
}

func TestPlacementDecls_GridFirstPlacementWins(t *testing.T) {
	ctx := renderContext{grid: &GridLayout{}}

	// Carrying both placement kinds is a structural mismatch; the first
	// attribute in list order wins and the other is ignored.
	got := declMap(placementDecls([]Attribute{GridPosition(1, 2, 1, 1), GridArea("hero")}, ctx))
	if got["grid-row"] == "" || got["grid-area"] != "" {
		t.Errorf("position-first decls = %v, want coordinates only", got)
	}

	got = declMap(placementDecls([]Attribute{GridArea("hero"), GridPosition(1, 2, 1, 1)}, ctx))
	if got["grid-area"] != "hero" || got["grid-row"] != "" {
		t.Errorf("area-first decls = %v, want named area only", got)
	}
}

func TestPlacementDecls_GridSpans(t *testing.T) {
	ctx := renderContext{grid: &GridLayout{}}

	got := declMap(placementDecls([]Attribute{GridPosition(2, 1, 3, 2)}, ctx))
	if got["grid-row"] != "2/span 3" {
		t.Errorf("grid-row = %q, want 2/span 3", got["grid-row"])
	}
	if got["grid-column"] != "1/span 2" {
		t.Errorf("grid-column = %q, want 1/span 2", got["grid-column"])
	}
}

func TestPlacementDecls_GridPlacementOutsideGridIsInert(t *testing.T) {
	// Structural mismatch: grid helpers outside a grid context silently
	// produce no rule.
	if got := placementDecls([]Attribute{GridArea("hero")}, renderContext{inFlex: true}); len(got) != 0 {
		t.Errorf("grid placement outside a grid produced %v, want nothing", got)
	}
}

func TestLengthDecls(t *testing.T) {
	tests := []struct {
		name     string
		l        Length
		mainAxis bool
		want     []css.Decl
	}{
		{"pixels", Px(120), false, []css.Decl{{Property: "width", Value: "120px"}}},
		{"percent", Percent(37.5), false, []css.Decl{{Property: "width", Value: "37.5%"}}},
		{"content", Content(), false, []css.Decl{{Property: "width", Value: "max-content"}}},
		{"fill cross axis", Fill(1), false, []css.Decl{{Property: "width", Value: "100%"}}},
		{"fill main axis", Fill(2), true, []css.Decl{{Property: "flex-grow", Value: "2"}}},
		{"min clamp", Min(40, Fill(1)), false, []css.Decl{
			{Property: "width", Value: "100%"},
			{Property: "min-width", Value: "40px"},
		}},
		{"max clamp", Max(900, Percent(80)), false, []css.Decl{
			{Property: "width", Value: "80%"},
			{Property: "max-width", Value: "900px"},
		}},
	}
	for _, tt := range tests {
		if got := lengthDecls("width", tt.l, tt.mainAxis); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: lengthDecls = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSpacerDecls_ScalesParentUnit(t *testing.T) {
	ctx := renderContext{unit: 16}

	got := declMap(spacerDecls(Spacer{Multiple: 1.5}, ctx))

	if got["flex-basis"] != "24px" {
		t.Errorf("flex-basis = %q, want 24px", got["flex-basis"])
	}
	if got["flex-grow"] != "0" || got["flex-shrink"] != "0" {
		t.Error("spacer must be rigid")
	}
}

func TestSpacerDecls_DegeneratesWithoutSpacingContext(t *testing.T) {
	got := declMap(spacerDecls(Spacer{Multiple: 3}, renderContext{}))

	if got["flex-basis"] != "0px" {
		t.Errorf("flex-basis = %q, want 0px outside a spacing context", got["flex-basis"])
	}
}

func TestAttrDecls_PaddingAndJustify(t *testing.T) {
	got := declMap(attrDecls([]Attribute{
		Padding(EdgeTRBL(1, 2, 3, 4)),
		Justified(JustifySpaceBetween),
	}, renderContext{}))

	if got["padding"] != "1px 2px 3px 4px" {
		t.Errorf("padding = %q, want 1px 2px 3px 4px", got["padding"])
	}
	if got["justify-content"] != "space-between" {
		t.Errorf("justify-content = %q, want space-between", got["justify-content"])
	}
}

func TestFrameDecls(t *testing.T) {
	tests := []struct {
		name string
		f    frameAttr
		want string
	}{
		{"positioned anchor", frameAttr{pos: FramePositioned}, "relative"},
		{"screen", frameAttr{pos: FrameScreen}, "fixed"},
		{"above", frameAttr{pos: FrameNearby, dir: NearbyAbove}, "absolute"},
		{"within", frameAttr{pos: FrameNearby, dir: NearbyWithin}, "absolute"},
	}
	for _, tt := range tests {
		if got := declMap(frameDecls(tt.f))["position"]; got != tt.want {
			t.Errorf("%s: position = %q, want %q", tt.name, got, tt.want)
		}
	}

	above := declMap(frameDecls(frameAttr{pos: FrameNearby, dir: NearbyAbove}))
	if above["bottom"] != "100%" {
		t.Errorf("above frame = %v, want bottom 100%%", above)
	}
	right := declMap(frameDecls(frameAttr{pos: FrameNearby, dir: NearbyOnRight}))
	if right["left"] != "100%" {
		t.Errorf("on-right frame = %v, want left 100%%", right)
	}
}
