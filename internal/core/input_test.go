package core

import "testing"

func TestPointerEventWantsData(t *testing.T) {
	tests := []struct {
		name     string
		ev       PointerEvent
		expected bool
	}{
		{"left drag is wire", PointerEvent{Button: ButtonLeft}, false},
		{"right drag is data", PointerEvent{Button: ButtonRight}, true},
		{"shift left drag is data", PointerEvent{Button: ButtonLeft, Shift: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ev.WantsData(ButtonRight); got != tc.expected {
				t.Errorf("WantsData() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestParseMouseButton(t *testing.T) {
	if b, ok := ParseMouseButton("right"); !ok || b != ButtonRight {
		t.Errorf("ParseMouseButton(right) = %v, %v", b, ok)
	}
	if _, ok := ParseMouseButton("thumb"); ok {
		t.Error("ParseMouseButton(thumb) should fail")
	}
}
