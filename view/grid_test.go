package view

import "testing"

func TestGridUniformLayoutSumsToOne(t *testing.T) {
	g := NewGrid(2, 3)
	p := g.Panel(1, 2)
	if !almostEqual(p.Width, 1.0/3, 1e-9) {
		t.Fatalf("uniform column width = %v, want 1/3", p.Width)
	}
	if !almostEqual(p.Height, 0.5, 1e-9) {
		t.Fatalf("uniform row height = %v, want 1/2", p.Height)
	}
	if !almostEqual(p.X, 2.0/3, 1e-9) || !almostEqual(p.Y, 0.5, 1e-9) {
		t.Fatalf("panel origin = (%v,%v), want (2/3, 1/2)", p.X, p.Y)
	}
}

func TestGridPanelIsFindOrCreate(t *testing.T) {
	g := NewGrid(2, 2)
	a := g.Panel(0, 0)
	b := g.Panel(0, 0)
	if a != b {
		t.Fatalf("Panel(0,0) called twice returned different panels")
	}
	if len(g.Panels()) != 1 {
		t.Fatalf("expected exactly one registered panel, got %d", len(g.Panels()))
	}
}

func TestGridWeightedRowRenormalizes(t *testing.T) {
	g := NewGrid(2, 1)
	g.SetRowHeight(0, 3)
	g.SetRowHeight(1, 1)

	top := g.Panel(0, 0)
	bottom := g.Panel(1, 0)

	if !almostEqual(top.Height, 0.75, 1e-9) {
		t.Fatalf("weighted row height = %v, want 0.75", top.Height)
	}
	if !almostEqual(bottom.Height, 0.25, 1e-9) {
		t.Fatalf("weighted row height = %v, want 0.25", bottom.Height)
	}
	if !almostEqual(top.Height+bottom.Height, 1, 1e-9) {
		t.Fatalf("row heights must renormalize to sum 1, got %v", top.Height+bottom.Height)
	}
}

func TestGridSpanCoversMultipleCells(t *testing.T) {
	g := NewGrid(2, 2)
	p := g.Panel(0, 0)
	p.HSpan, p.VSpan = 2, 1
	g.relayout()

	if !almostEqual(p.Width, 1.0, 1e-9) {
		t.Fatalf("2-column hspan width = %v, want 1.0", p.Width)
	}
	if !almostEqual(p.Height, 0.5, 1e-9) {
		t.Fatalf("1-row vspan height = %v, want 0.5", p.Height)
	}
}

func TestGridInsetAndFloatingIgnoreLayout(t *testing.T) {
	g := NewGrid(4, 4)
	inset := g.Inset(0.1, 0.1, 0.2, 0.2)
	floating := g.Floating(50, 60, 100, 80)

	g.SetRowHeight(0, 10) // would disturb grid-mode panels, must not touch these

	if inset.X != 0.1 || inset.Width != 0.2 {
		t.Fatalf("inset panel bounds changed after relayout: %+v", inset)
	}
	if floating.X != 50 || floating.Width != 100 {
		t.Fatalf("floating panel bounds changed after relayout: %+v", floating)
	}
}
