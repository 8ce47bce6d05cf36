package sound

// Mute toggles a Player between silent and its last audible volume.
type Mute struct {
	player Player
	saved  float64
	muted  bool
}

// NewMute wraps p.
func NewMute(p Player) *Mute {
	return &Mute{player: p}
}

// Muted reports whether the player is currently muted.
func (m *Mute) Muted() bool {
	return m != nil && m.muted
}

// Toggle flips the mute state and returns the new state.
func (m *Mute) Toggle() bool {
	if m == nil || m.player == nil {
		return false
	}
	if m.muted {
		m.player.SetVolume(m.saved)
		m.muted = false
		return false
	}
	m.saved = m.player.Volume()
	m.player.SetVolume(0)
	m.muted = true
	return true
}

// SetVolume changes the audible volume. While muted the value is remembered
// and applied on unmute.
func (m *Mute) SetVolume(v float64) {
	if m == nil || m.player == nil {
		return
	}
	v = ClampVolume(v)
	if m.muted {
		m.saved = v
		return
	}
	m.player.SetVolume(v)
}
