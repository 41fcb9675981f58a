package system

import (
	"testing"

	"github.com/milk9111/bossarena/common"
	"github.com/milk9111/bossarena/ecs"
	"github.com/milk9111/bossarena/ecs/component"
	"github.com/milk9111/bossarena/ecs/system/mocks"
	"go.uber.org/mock/gomock"
)

func TestControlName(t *testing.T) {
	cases := []struct {
		control string
		id      int
		want    string
	}{
		{ControlHorizontal, 1, "Horizontal1"},
		{ControlJump, 2, "Jump2"},
		{ControlInteract, 4, "Interact4"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			if got := ControlName(tc.control, tc.id); got != tc.want {
				t.Fatalf("ControlName = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInputSystemSamplesPerSlot(t *testing.T) {
	cfg := loadConfig(t)
	w := ecs.NewWorld()
	p2 := mustPlayer(t, w, cfg, 2, common.V(0, 0))
	p3 := mustPlayer(t, w, cfg, 3, common.V(0, 0))

	ctrl := gomock.NewController(t)
	src := mocks.NewMockControlSource(ctrl)
	src.EXPECT().AxisValue("Horizontal2").Return(0.5)
	src.EXPECT().EdgeDown("Jump2").Return(true)
	src.EXPECT().EdgeUp("Jump2").Return(false)
	src.EXPECT().EdgeDown("Down2").Return(false)
	src.EXPECT().EdgeUp("Down2").Return(true)
	src.EXPECT().EdgeDown("Interact2").Return(true)
	src.EXPECT().EdgeDown("Special2").Return(false)

	sys := NewInputSystem(map[int]ControlSource{2: src})

	// stale input on the unbound slot is cleared
	stale, _ := ecs.Get(w, p3, component.InputComponent.Kind())
	stale.JumpDown = true

	sys.Update(w, 0.016)

	in, _ := ecs.Get(w, p2, component.InputComponent.Kind())
	want := component.Input{Axis: 0.5, JumpDown: true, CrouchUp: true, InteractDown: true}
	if *in != want {
		t.Fatalf("input = %+v, want %+v", *in, want)
	}
	if *stale != (component.Input{}) {
		t.Fatalf("slot without a source should read neutral, got %+v", *stale)
	}
}
