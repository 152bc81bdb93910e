package wheel

import (
	"fmt"

	"fortune/internal/biz/reward"
)

type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() { r.events = nil }

type fakeTrigger struct {
	rec     *recorder
	enabled bool
}

func (t *fakeTrigger) SetEnabled(b bool) {
	t.enabled = b
	t.rec.add("trigger=%v", b)
}

type fakeText struct {
	rec  *recorder
	name string
	text string
}

func (t *fakeText) SetText(s string) {
	t.text = s
	t.rec.add("%s=%s", t.name, s)
}

type fakeIndicator struct {
	rec     *recorder
	visible bool
}

func (i *fakeIndicator) SetVisible(b bool) {
	i.visible = b
	i.rec.add("coin=%v", b)
}

type fakeRotator struct {
	deg  float64
	sets int
}

func (r *fakeRotator) SetRotation(d float64) { r.deg = d; r.sets++ }
func (r *fakeRotator) Rotation() float64     { return r.deg }

type fakeSlice struct {
	angle  float64
	text   string
	color  reward.Color
	writes int
}

func (s *fakeSlice) SetText(t string)        { s.text = t; s.writes++ }
func (s *fakeSlice) SetColor(c reward.Color) { s.color = c }
func (s *fakeSlice) Angle() float64          { return s.angle }

type fakeSurface struct {
	rec        *recorder
	trigger    *fakeTrigger
	multiplier *fakeText
	reward     *fakeText
	coin       *fakeIndicator
	wheel      *fakeRotator
	slices     []*fakeSlice
}

func newFakeSurface(n int) *fakeSurface {
	rec := &recorder{}
	f := &fakeSurface{
		rec:        rec,
		trigger:    &fakeTrigger{rec: rec},
		multiplier: &fakeText{rec: rec, name: "multiplier"},
		reward:     &fakeText{rec: rec, name: "reward"},
		coin:       &fakeIndicator{rec: rec},
		wheel:      &fakeRotator{},
	}
	for i := 0; i < n; i++ {
		f.slices = append(f.slices, &fakeSlice{angle: float64(i) * FullTurn / float64(n)})
	}
	return f
}

func (f *fakeSurface) Surface() Surface {
	views := make([]SliceView, len(f.slices))
	for i, s := range f.slices {
		views[i] = s
	}
	return Surface{
		Trigger:        f.trigger,
		MultiplierText: f.multiplier,
		RewardText:     f.reward,
		CoinIndicator:  f.coin,
		Wheel:          f.wheel,
		Slices:         views,
	}
}

func (f *fakeSurface) views() []SliceView { return f.Surface().Slices }

// seqRand 按顺序返回预设值，用完后返回 0
type seqRand struct {
	floats []float64
	ints   []int
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *seqRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}
