package mint

import "testing"

func TestVectorArray(t *testing.T) {
	if got := (Vector2[float32]{X: 1, Y: 2}).Array(); got != [2]float32{1, 2} {
		t.Errorf("Vector2.Array() = %v, want [1 2]", got)
	}
	if got := (Vector3[int32]{X: -1, Y: 0, Z: 7}).Array(); got != [3]int32{-1, 0, 7} {
		t.Errorf("Vector3.Array() = %v, want [-1 0 7]", got)
	}
	if got := (Vector4[uint32]{X: 1, Y: 2, Z: 3, W: 4}).Array(); got != [4]uint32{1, 2, 3, 4} {
		t.Errorf("Vector4.Array() = %v, want [1 2 3 4]", got)
	}
}
