package scene

import (
	"github.com/milk9111/clickwalk/render"
)

// Draw composites the frame back to front: background, shadows, status bars,
// character, monster.
func (s *Scene) Draw(r render.Renderer) {
	r.Clear()

	r.DrawTexture(s.background, 0, 0, &render.DrawOptions{
		Width:  s.spec.Background.Width,
		Height: s.spec.Background.Height,
	})

	dir, idx := s.CharacterFrame()
	frame := s.walks[dir].Frames[idx]
	frameW, _ := frame.Size()
	ax := s.state.Position.X - float64(frameW)/2
	ay := s.state.Position.Y - s.spec.Character.AnchorYOffset

	mx, my := s.spec.MonsterPosition()
	monsterFrame := s.monster.KeyFrame(s.state.Clock)

	sh := s.spec.Shadow
	shadowOpts := &render.DrawOptions{Tint: s.shadowTint}
	r.DrawTexture(s.shadow, ax+sh.CharacterOffsetX, ay+sh.CharacterOffsetY, shadowOpts)
	r.DrawTexture(s.shadow, mx+sh.MonsterOffsetX, my+sh.MonsterOffsetY, shadowOpts)

	for _, b := range s.bars {
		w := b.spec.Width * b.meter.Fraction()
		if w <= 0 {
			continue
		}
		r.DrawTexture(b.tex, ax+b.spec.OffsetX, ay+b.spec.OffsetY, &render.DrawOptions{
			Width:  w,
			Height: b.spec.Height,
			Tint:   b.tint,
		})
	}

	r.DrawTexture(frame, ax, ay, nil)
	r.DrawTexture(monsterFrame, mx, my, nil)
}
