package yabreaker

import (
	"testing"

	"github.com/vovakirdan/ya-breaker/internal/config"
	"github.com/vovakirdan/ya-breaker/internal/core"
)

func TestPaddleMoveStaysInBounds(t *testing.T) {
	tests := []struct {
		name        string
		x           float64
		left, right bool
		want        float64
	}{
		{"left at edge", 0, true, false, 0},
		{"left near edge clamps", 3, true, false, 0},
		{"right near edge clamps", 517, false, true, 520},
		{"right at edge", 520, false, true, 520},
		{"both held cancel", 100, true, true, 100},
		{"idle", 100, false, false, 100},
		{"plain left", 100, true, false, 93},
		{"plain right", 100, false, true, 107},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Paddle{X: tc.x, W: 80, H: 15, Speed: 7}
			p.Move(tc.left, tc.right, 600)
			if p.X != tc.want {
				t.Errorf("X = %v, want %v", p.X, tc.want)
			}
			if p.X < 0 || p.X > 600-p.W {
				t.Errorf("X = %v left [0, %v]", p.X, 600-p.W)
			}
		})
	}
}

func TestPaddleHeldManyTicks(t *testing.T) {
	p := &Paddle{X: 260, W: 80, H: 15, Speed: 7}
	for range 200 {
		p.Move(false, true, 600)
	}
	if p.X != 520 {
		t.Errorf("X after holding right = %v, want 520", p.X)
	}
	for range 200 {
		p.Move(true, false, 600)
	}
	if p.X != 0 {
		t.Errorf("X after holding left = %v, want 0", p.X)
	}
}

func TestMoverAdvanceInvertsAxesIndependently(t *testing.T) {
	tests := []struct {
		name           string
		m              Mover
		wantDX, wantDY float64
	}{
		{
			name:   "right edge flips dx only",
			m:      Mover{Kind: MoverEnemy, X: 558, Y: 100, W: 40, H: 40, DX: 3, DY: 3},
			wantDX: -3, wantDY: 3,
		},
		{
			name:   "bottom edge flips dy only",
			m:      Mover{Kind: MoverEnemy, X: 100, Y: 458, W: 40, H: 40, DX: 3, DY: 3},
			wantDX: 3, wantDY: -3,
		},
		{
			name:   "corner flips both",
			m:      Mover{Kind: MoverDecor, X: 1, Y: 1, W: 250, H: 175, DX: -2, DY: -2},
			wantDX: 2, wantDY: 2,
		},
		{
			name:   "interior keeps velocity",
			m:      Mover{Kind: MoverDecor, X: 200, Y: 200, W: 250, H: 175, DX: 2, DY: 2},
			wantDX: 2, wantDY: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.m
			m.Advance(600, 500)
			if m.X != tc.m.X+tc.m.DX || m.Y != tc.m.Y+tc.m.DY {
				t.Errorf("position = (%v, %v), want (%v, %v)", m.X, m.Y, tc.m.X+tc.m.DX, tc.m.Y+tc.m.DY)
			}
			if m.DX != tc.wantDX || m.DY != tc.wantDY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", m.DX, m.DY, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestObstacleNeverMoves(t *testing.T) {
	m := Mover{Kind: MoverObstacle, X: 350, Y: 50, W: 50, H: 50, DX: 5, DY: 5}
	for range 100 {
		m.Advance(600, 500)
	}
	if m.X != 350 || m.Y != 50 {
		t.Errorf("obstacle moved to (%v, %v)", m.X, m.Y)
	}
}

func TestMoverKinds(t *testing.T) {
	tests := []struct {
		kind     MoverKind
		name     string
		static   bool
		deflects bool
	}{
		{MoverEnemy, "enemy", false, true},
		{MoverObstacle, "obstacle", true, true},
		{MoverDecor, "decor", false, false},
	}

	for _, tc := range tests {
		m := Mover{Kind: tc.kind}
		if m.Kind.String() != tc.name {
			t.Errorf("String() = %q, want %q", m.Kind.String(), tc.name)
		}
		if m.Static() != tc.static {
			t.Errorf("%s: Static() = %v, want %v", tc.name, m.Static(), tc.static)
		}
		if m.DeflectsBall() != tc.deflects {
			t.Errorf("%s: DeflectsBall() = %v, want %v", tc.name, m.DeflectsBall(), tc.deflects)
		}
	}
}

func TestRectOverlapIsStrict(t *testing.T) {
	base := core.NewRect(10, 10, 20, 20)
	tests := []struct {
		name  string
		other core.Rect
		want  bool
	}{
		{"inside", core.NewRect(15, 15, 5, 5), true},
		{"partial", core.NewRect(25, 25, 20, 20), true},
		{"touching right edge", core.NewRect(30, 10, 10, 10), false},
		{"touching bottom edge", core.NewRect(10, 30, 10, 10), false},
		{"disjoint", core.NewRect(100, 100, 5, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RectOverlap(base, tc.other); got != tc.want {
				t.Errorf("RectOverlap = %v, want %v", got, tc.want)
			}
			if got := RectOverlap(tc.other, base); got != tc.want {
				t.Errorf("RectOverlap reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBlockHit(t *testing.T) {
	block := &Block{X: 20, Y: 20, W: 60, H: 20, Visible: true}
	tests := []struct {
		name string
		ball Ball
		want bool
	}{
		{"center inside", Ball{X: 40, Y: 25, R: 10}, true},
		{"center on left edge", Ball{X: 20, Y: 25, R: 10}, false},
		{"center on right edge", Ball{X: 80, Y: 25, R: 10}, false},
		{"just above", Ball{X: 40, Y: 10, R: 10}, false},
		{"grazing from above", Ball{X: 40, Y: 11, R: 10}, true},
		{"just below", Ball{X: 40, Y: 50, R: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := tc.ball
			if got := BlockHit(&ball, block); got != tc.want {
				t.Errorf("BlockHit = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewBlockGridLayout(t *testing.T) {
	cfg := config.DefaultBreakerConfig().Blocks
	blocks := NewBlockGrid(cfg)

	if len(blocks) != 40 {
		t.Fatalf("len = %d, want 40", len(blocks))
	}
	if CountVisible(blocks) != 40 {
		t.Errorf("CountVisible = %d, want 40", CountVisible(blocks))
	}

	first, last := blocks[0], blocks[len(blocks)-1]
	if first.X != 20 || first.Y != 20 || first.W != 60 || first.H != 20 {
		t.Errorf("first block = %+v", first)
	}
	// col 7 row 4
	if last.X != 510 || last.Y != 140 {
		t.Errorf("last block at (%v, %v), want (510, 140)", last.X, last.Y)
	}

	blocks[0].Visible = false
	fresh := NewBlockGrid(cfg)
	if !fresh[0].Visible {
		t.Error("NewBlockGrid should return an independent grid")
	}
}
