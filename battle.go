package porygon

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
)

// SideState is the field state one trainer's side accumulates: hazards,
// screens, and team-wide timed effects.
type SideState struct {
	Spikes      int
	ToxicSpikes int
	StealthRock bool
	StickyWeb   bool

	Reflect     ExpiringEffect
	LightScreen ExpiringEffect
	AuroraVeil  ExpiringEffect
	Safeguard   ExpiringEffect
	Mist        ExpiringEffect
	Tailwind    ExpiringEffect

	Wish ExpiringWish
	// FutureSight is the delayed attack scheduled against this side.
	FutureSight     ExpiringEffect
	FutureSightMove *Move
	FutureSightUser *Pokemon
}

func (s *SideState) ClearHazards() {
	s.Spikes = 0
	s.ToxicSpikes = 0
	s.StealthRock = false
	s.StickyWeb = false
}

type Trainer struct {
	Name        string
	Party       []*Pokemon
	ActiveIndex int
	Side        SideState
}

func (t *Trainer) Active() *Pokemon {
	return t.Party[t.ActiveIndex]
}

func (t *Trainer) Lost() bool {
	for _, p := range t.Party {
		if p.Alive() {
			return false
		}
	}

	return true
}

// Battle is one duel's shared state. Single threaded per instance; a host
// running several battles serializes access per battle, never shares one.
type Battle struct {
	Trainer1 *Trainer
	Trainer2 *Trainer
	Turn     int

	Weather Weather
	Terrain Terrain

	TrickRoom  ExpiringEffect
	MagicRoom  ExpiringEffect
	WonderRoom ExpiringEffect
	Gravity    ExpiringEffect

	// Inverse flips the type chart for the whole battle.
	Inverse bool

	Rng  *rand.Rand
	Calc DamageCalc
}

func NewBattle(t1 *Trainer, t2 *Trainer, seed rand.PCG) *Battle {
	b := &Battle{
		Trainer1: t1,
		Trainer2: t2,
		Turn:     1,
		Rng:      CreateRNG(&seed),
	}
	b.Weather = NewWeather(b)
	b.Terrain = NewTerrain(b)
	b.Calc = DefaultCalc{}

	for _, t := range []*Trainer{t1, t2} {
		for _, p := range t.Party {
			p.Attach(b)
		}
	}

	return b
}

func (b *Battle) TrainerOf(p *Pokemon) *Trainer {
	for _, t := range []*Trainer{b.Trainer1, b.Trainer2} {
		if lo.Contains(t.Party, p) {
			return t
		}
	}

	return nil
}

func (b *Battle) SideOf(p *Pokemon) *SideState {
	t := b.TrainerOf(p)
	if t == nil {
		return nil
	}

	return &t.Side
}

// Opponent returns the active combatant across from p.
func (b *Battle) Opponent(p *Pokemon) *Pokemon {
	if b.TrainerOf(p) == b.Trainer1 {
		return b.Trainer2.Active()
	}

	return b.Trainer1.Active()
}

// AbilityInPlay reports whether either active combatant carries the named
// ability unsuppressed.
func (b *Battle) AbilityInPlay(name string) bool {
	for _, p := range []*Pokemon{b.Trainer1.Active(), b.Trainer2.Active()} {
		if !p.AbilitySuppressed && p.AbilityIdent == name {
			return true
		}
	}

	return false
}

// Effectiveness computes the type multiplier of an attack type against the
// defender's live type set, flipped per type in an inverse battle.
func (b *Battle) Effectiveness(attackType string, defender *Pokemon) float64 {
	total := 1.0
	for _, defType := range defender.Types {
		mult := 1.0
		if row, ok := typeChart[attackType]; ok {
			if m, ok := row[defType]; ok {
				mult = m
			}
		}

		// Foresight lets Normal and Fighting moves connect with Ghosts.
		if mult == 0 && defender.Identified && defType == TYPENAME_GHOST &&
			(attackType == TYPENAME_NORMAL || attackType == TYPENAME_FIGHTING) {
			mult = 1
		}

		if b.Inverse {
			switch {
			case mult == 0:
				mult = 2
			case mult < 1:
				mult = 2
			case mult > 1:
				mult = 0.5
			}
		}

		total *= mult
	}

	return total
}

var forecastForms = map[string]string{
	WEATHER_SUN:        TYPENAME_FIRE,
	WEATHER_HEAVY_SUN:  TYPENAME_FIRE,
	WEATHER_RAIN:       TYPENAME_WATER,
	WEATHER_HEAVY_RAIN: TYPENAME_WATER,
	WEATHER_HAIL:       TYPENAME_ICE,
}

// RevertForecast resyncs Forecast form holders with the current weather,
// including back to their base form when it clears, and returns the log
// delta for any form that changed.
func (b *Battle) RevertForecast() string {
	log := ""
	for _, p := range []*Pokemon{b.Trainer1.Active(), b.Trainer2.Active()} {
		if p.Ability(nil, nil) != "forecast" {
			continue
		}

		newTypes := append([]string{}, p.BaseTypes...)
		if form, ok := forecastForms[b.Weather.Get()]; ok {
			newTypes = []string{form}
		}

		if !typesEqual(p.Types, newTypes) {
			p.Types = newTypes
			log += fmt.Sprintf("%s transformed!\n", p.Nickname)
		}
	}

	return log
}

var mimicryForms = map[string]string{
	TERRAIN_ELECTRIC: TYPENAME_ELECTRIC,
	TERRAIN_GRASSY:   TYPENAME_GRASS,
	TERRAIN_MISTY:    TYPENAME_FAIRY,
	TERRAIN_PSYCHIC:  TYPENAME_PSYCHIC,
}

// RevertMimicry resyncs Mimicry form holders with the current terrain and
// returns the log delta for any form that changed.
func (b *Battle) RevertMimicry() string {
	log := ""
	for _, p := range []*Pokemon{b.Trainer1.Active(), b.Trainer2.Active()} {
		if p.Ability(nil, nil) != "mimicry" {
			continue
		}

		newTypes := append([]string{}, p.BaseTypes...)
		if form, ok := mimicryForms[b.Terrain.Get()]; ok {
			newTypes = []string{form}
		}

		if !typesEqual(p.Types, newTypes) {
			p.Types = newTypes
			log += fmt.Sprintf("%s transformed!\n", p.Nickname)
		}
	}

	return log
}

func typesEqual(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ValidSwaps lists the party indices a trainer could legally switch to.
func (b *Battle) ValidSwaps(t *Trainer) []int {
	swaps := make([]int, 0, len(t.Party))
	for i, p := range t.Party {
		if i != t.ActiveIndex && p.Alive() {
			swaps = append(swaps, i)
		}
	}

	return swaps
}

// SwitchPoke swaps the trainer's active combatant, clearing the outgoing
// one's volatile state and running entry effects for the incoming one.
func (b *Battle) SwitchPoke(t *Trainer, index int) string {
	outgoing := t.Active()
	outgoing.ClearVolatiles()

	t.ActiveIndex = index
	incoming := t.Active()
	incoming.Attach(b)
	incoming.SwitchedInThisTurn = true

	log := fmt.Sprintf("%s sent in %s!\n", t.Name, incoming.Nickname)
	log += b.SendOut(incoming)

	return log
}

// SendOut applies entry hazards and entry form effects to a combatant that
// just hit the field.
func (b *Battle) SendOut(p *Pokemon) string {
	log := ""
	side := b.SideOf(p)
	if side == nil {
		return log
	}

	if p.HeldItem.Name() != "heavy-duty-boots" {
		if side.StealthRock {
			mult := b.Effectiveness(TYPENAME_ROCK, p)
			damage := int(float64(p.MaxHp) / 8 * mult)
			if damage > 0 {
				p.ReduceHp(damage)
				log += fmt.Sprintf("%s was hurt by the pointed stones!\n", p.Nickname)
				if !p.Alive() {
					log += p.Faint()
					return log
				}
			}
		}

		if side.Spikes > 0 && p.Grounded(b) {
			fraction := []int{0, 8, 6, 4}[side.Spikes]
			p.ReduceHp(p.MaxHp / fraction)
			log += fmt.Sprintf("%s was hurt by the spikes!\n", p.Nickname)
			if !p.Alive() {
				log += p.Faint()
				return log
			}
		}

		if side.ToxicSpikes > 0 && p.Grounded(b) {
			if p.HasType(TYPENAME_POISON) {
				side.ToxicSpikes = 0
				log += fmt.Sprintf("%s absorbed the toxic spikes!\n", p.Nickname)
			} else {
				status := STATUS_POISON
				if side.ToxicSpikes > 1 {
					status = STATUS_TOXIC
				}
				log += p.Status.ApplyStatus(status, b, nil)
			}
		}

		if side.StickyWeb && p.Grounded(b) {
			log += p.AppendSpeed(-1, b.Opponent(p))
		}
	}

	log += b.RevertForecast()
	log += b.RevertMimicry()

	return log
}

// NextTurn advances every battle-scoped timer and applies end of turn
// residuals, returning the accumulated log.
func (b *Battle) NextTurn() string {
	log := ""

	log += b.Weather.NextTurn()
	log += b.Terrain.NextTurn()

	if b.TrickRoom.NextTurn() {
		log += "The twisted dimensions returned to normal!\n"
	}
	if b.MagicRoom.NextTurn() {
		log += "The area returned to normal!\n"
	}
	if b.WonderRoom.NextTurn() {
		log += "Wonder Room wore off!\n"
	}
	if b.Gravity.NextTurn() {
		log += "Gravity returned to normal!\n"
	}

	for _, t := range []*Trainer{b.Trainer1, b.Trainer2} {
		side := &t.Side
		if side.Reflect.NextTurn() {
			log += fmt.Sprintf("%s's Reflect wore off!\n", t.Name)
		}
		if side.LightScreen.NextTurn() {
			log += fmt.Sprintf("%s's Light Screen wore off!\n", t.Name)
		}
		if side.AuroraVeil.NextTurn() {
			log += fmt.Sprintf("%s's Aurora Veil wore off!\n", t.Name)
		}
		if side.Safeguard.NextTurn() {
			log += fmt.Sprintf("%s's Safeguard wore off!\n", t.Name)
		}
		if side.Mist.NextTurn() {
			log += fmt.Sprintf("%s's Mist wore off!\n", t.Name)
		}
		if side.Tailwind.NextTurn() {
			log += fmt.Sprintf("%s's Tailwind petered out!\n", t.Name)
		}

		active := t.Active()

		if side.Wish.NextTurn() {
			log += fmt.Sprintf("%s's wish came true!\n", active.Nickname)
			log += b.Calc.Heal(active, side.Wish.Hp)
			side.Wish.Hp = 0
		}

		if side.FutureSight.NextTurn() && side.FutureSightMove != nil && active.Alive() {
			log += fmt.Sprintf("%s took the %s attack!\n", active.Nickname, side.FutureSightMove.PrettyName)
			damage := b.Calc.Damage(side.FutureSightUser, active, side.FutureSightMove, false, b)
			log += b.Calc.ApplyDamage(active, damage)
			side.FutureSightMove = nil
			side.FutureSightUser = nil
		}

		log += b.endOfTurnResiduals(active)
	}

	for _, t := range []*Trainer{b.Trainer1, b.Trainer2} {
		active := t.Active()
		active.Flinched = false
		active.HasMoved = false
		active.HasActed = false
		active.SwitchedInThisTurn = false
		active.MagicCoat = false
		active.Snatching = false

		// The ratchet only survives consecutive protection turns.
		if !active.Protect {
			active.ProtectChance = 1
		}
		active.Protect = false
		active.ProtectVariant = 0
	}

	b.Turn++

	return log
}

func (b *Battle) endOfTurnResiduals(p *Pokemon) string {
	if !p.Alive() {
		return ""
	}

	log := ""

	switch b.Weather.Get() {
	case WEATHER_SANDSTORM:
		immune := p.HasType(TYPENAME_ROCK) || p.HasType(TYPENAME_GROUND) || p.HasType(TYPENAME_STEEL)
		ability := p.Ability(nil, nil)
		if !immune && ability != "sand-veil" && ability != "sand-rush" && ability != "sand-force" && ability != "magic-guard" {
			p.ReduceHp(p.MaxHp / 16)
			log += fmt.Sprintf("%s was damaged by the sandstorm!\n", p.Nickname)
		}
	case WEATHER_HAIL:
		if !p.HasType(TYPENAME_ICE) && p.Ability(nil, nil) != "ice-body" && p.Ability(nil, nil) != "snow-cloak" && p.Ability(nil, nil) != "magic-guard" {
			p.ReduceHp(p.MaxHp / 16)
			log += fmt.Sprintf("%s was buffeted by the Hail!\n", p.Nickname)
		}
	}

	switch p.Status.Current {
	case STATUS_BURN:
		p.ReduceHp(p.MaxHp / 16)
		log += fmt.Sprintf("%s is burned!\n", p.Nickname)
	case STATUS_POISON:
		if p.Ability(nil, nil) == "poison-heal" {
			log += b.Calc.Heal(p, p.MaxHp/8)
		} else {
			p.ReduceHp(p.MaxHp / 8)
			log += fmt.Sprintf("%s is poisoned!\n", p.Nickname)
		}
	case STATUS_TOXIC:
		p.Status.BadlyPoisonedTurns++
		if p.Ability(nil, nil) == "poison-heal" {
			log += b.Calc.Heal(p, p.MaxHp/8)
		} else {
			p.ReduceHp(p.MaxHp * p.Status.BadlyPoisonedTurns / 16)
			log += fmt.Sprintf("%s is badly poisoned!\n", p.Nickname)
		}
	}

	if p.Alive() && p.LeechSeeded {
		drained := p.ReduceHp(p.MaxHp / 8)
		log += fmt.Sprintf("%s's health was sapped by Leech Seed!\n", p.Nickname)
		opponent := b.Opponent(p)
		if opponent.Alive() {
			log += b.Calc.Heal(opponent, drained)
		}
	}

	if p.Alive() && p.Ingrained {
		log += b.Calc.Heal(p, p.MaxHp/16)
	}

	if p.Alive() && p.AquaRing {
		log += b.Calc.Heal(p, p.MaxHp/16)
	}

	if p.Alive() && b.Terrain.Get() == TERRAIN_GRASSY && p.Grounded(b) {
		log += b.Calc.Heal(p, p.MaxHp/16)
	}

	if p.Alive() && p.Nightmare && p.Status.Current == STATUS_SLEEP {
		p.ReduceHp(p.MaxHp / 4)
		log += fmt.Sprintf("%s is locked in a nightmare!\n", p.Nickname)
	}

	if p.Alive() && p.Cursed {
		p.ReduceHp(p.MaxHp / 4)
		log += fmt.Sprintf("%s is afflicted by the curse!\n", p.Nickname)
	}

	if p.Alive() && p.BindingTimer.Active() {
		p.ReduceHp(p.MaxHp / 8)
		log += fmt.Sprintf("%s is hurt by %s!\n", p.Nickname, p.BindingMove)
		if p.BindingTimer.NextTurn() {
			log += fmt.Sprintf("%s was freed from %s!\n", p.Nickname, p.BindingMove)
			p.BindingMove = ""
		}
	}

	if p.Alive() && p.Yawn.NextTurn() && !p.Status.Active() {
		log += p.Status.ApplyStatus(STATUS_SLEEP, b, nil)
	}

	if p.Alive() && p.PerishCount.Active() {
		if p.PerishCount.NextTurn() {
			log += fmt.Sprintf("%s's perish count fell to 0!\n", p.Nickname)
			log += p.Faint()
			return log
		}
		if remaining := p.PerishCount.RemainingTurns(); remaining != nil {
			log += fmt.Sprintf("%s's perish count fell to %d!\n", p.Nickname, *remaining)
		}
	}

	p.Taunt.NextTurn()
	p.Encore.NextTurn()
	p.HealBlock.NextTurn()
	p.Silenced.NextTurn()
	p.Embargo.NextTurn()
	p.Telekinesis.NextTurn()
	p.MagnetRise.NextTurn()
	if p.DisableTimer.NextTurn() {
		p.DisabledMove = ""
	}

	if !p.Alive() {
		log += p.Faint()
	}

	return log
}
