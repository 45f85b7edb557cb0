package core

import (
	"reflect"
	"testing"
)

func TestRecorderReplay(t *testing.T) {
	var src Recorder
	src.FillRect(1, 2, 3, 4, ColorWhite) // dropped by Clear below
	src.Clear()
	src.FillRect(20, 20, 60, 20, ColorOrange)
	src.FillCircle(300, 450, 10, ColorWhite)
	src.DrawSprite("enemy", 100, 100, 40, 40)

	want := []DrawOp{OpClear, OpFillRect, OpFillCircle, OpSprite}
	var ops []DrawOp
	for _, c := range src.Commands {
		ops = append(ops, c.Op)
	}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("ops = %v, expected %v", ops, want)
	}

	var dst Recorder
	src.Replay(&dst)
	if !reflect.DeepEqual(src.Commands, dst.Commands) {
		t.Errorf("Replay produced %+v, expected %+v", dst.Commands, src.Commands)
	}

	circle := dst.Commands[2]
	if circle.X != 300 || circle.Y != 450 || circle.W != 10 {
		t.Errorf("circle recorded as %+v", circle)
	}
}

func TestDrawOpString(t *testing.T) {
	if OpSprite.String() != "sprite" || DrawOp(42).String() != "unknown" {
		t.Error("DrawOp.String() returned unexpected names")
	}
}
