package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	want := RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	if got := DefaultConfig(); got != want {
		t.Errorf("DefaultConfig() = %+v, expected %+v", got, want)
	}
}
