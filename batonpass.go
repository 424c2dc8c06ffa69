package porygon

// BatonPass is a snapshot of the passable parts of a combatant's volatile
// state, captured when the holder switches out with a passing move and
// reapplied to whatever comes in. Stages and flags are copied values; the
// substitute and seed carry over as the live references the source held.
type BatonPass struct {
	AttackStage    int
	DefenseStage   int
	SpAttackStage  int
	SpDefenseStage int
	SpeedStage     int
	AccuracyStage  int
	EvasionStage   int

	Substitute  int
	LeechSeeded bool
	Ingrained   bool
	FocusEnergy bool
	Confusion   ExpiringEffect
	LockedOn    bool
	PerishCount ExpiringEffect
}

// NewBatonPass captures the passable state off a combatant.
func NewBatonPass(p *Pokemon) BatonPass {
	return BatonPass{
		AttackStage:    p.Attack.Stage,
		DefenseStage:   p.Defense.Stage,
		SpAttackStage:  p.SpAttack.Stage,
		SpDefenseStage: p.SpDefense.Stage,
		SpeedStage:     p.Speed.Stage,
		AccuracyStage:  p.AccuracyStage,
		EvasionStage:   p.EvasionStage,
		Substitute:     p.Substitute,
		LeechSeeded:    p.LeechSeeded,
		Ingrained:      p.Ingrained,
		FocusEnergy:    p.FocusEnergy,
		Confusion:      p.Confusion,
		LockedOn:       p.LockedOn,
		PerishCount:    p.PerishCount,
	}
}

// Apply reapplies the snapshot onto the incoming combatant.
func (b BatonPass) Apply(p *Pokemon) {
	p.Attack.Stage = b.AttackStage
	p.Defense.Stage = b.DefenseStage
	p.SpAttack.Stage = b.SpAttackStage
	p.SpDefense.Stage = b.SpDefenseStage
	p.Speed.Stage = b.SpeedStage
	p.AccuracyStage = b.AccuracyStage
	p.EvasionStage = b.EvasionStage
	p.Substitute = b.Substitute
	p.LeechSeeded = b.LeechSeeded
	p.Ingrained = b.Ingrained
	p.FocusEnergy = b.FocusEnergy
	p.Confusion = b.Confusion
	p.LockedOn = b.LockedOn
	p.PerishCount = b.PerishCount
}

// Metronome counts successive uses of the same move for the metronome
// held item's power ramp. Unrelated to the Metronome move.
type Metronome struct {
	MoveName string
	Count    int
}

// Track records one use of a move, resetting the counter when the move
// changes. Caps at 5 successive uses.
func (m *Metronome) Track(moveName string) {
	if m.MoveName != moveName {
		m.MoveName = moveName
		m.Count = 1
		return
	}

	if m.Count < 5 {
		m.Count++
	}
}

// Boost returns the metronome item damage multiplier for the current streak.
func (m Metronome) Boost() float64 {
	if m.Count <= 1 {
		return 1
	}

	return 1 + 0.2*float64(m.Count-1)
}

func (m *Metronome) Reset() {
	m.MoveName = ""
	m.Count = 0
}
