package porygon

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Stat is one battle stat with its stage modifier. Raw values come from the
// host's growth system; the engine only moves stages.
type Stat struct {
	RawValue int
	Stage    int
}

// CalcValue gets the effective value of the stat after its stage modifier.
func (s Stat) CalcValue() int {
	return int(float64(s.RawValue) * StageMultipliers[s.Stage])
}

func stageIncrease(inc int, currentStage int, maxStage int) int {
	inc = int(math.Abs(float64(inc)))
	return int(math.Min(float64(maxStage), float64(currentStage+inc)))
}

func stageDecrease(dec int, currentStage int, minStage int) int {
	dec = int(math.Abs(float64(dec)))
	return int(math.Max(float64(minStage), float64(currentStage-dec)))
}

// Pokemon is one combatant: its tabulated stats plus every piece of volatile
// state the move engine reads or writes. Everything here is in-memory battle
// state; nothing persists.
type Pokemon struct {
	Species  string
	Nickname string
	Level    int
	Gender   string

	// Types is the live type set; Protean, Conversion and Soak rewrite it.
	// BaseTypes keeps the original pair for form reversion.
	Types     []string
	BaseTypes []string

	AbilityIdent string
	// AbilitySuppressed is set by Gastro Acid.
	AbilitySuppressed bool

	Hp        int
	MaxHp     int
	Attack    Stat
	Defense   Stat
	SpAttack  Stat
	SpDefense Stat
	Speed     Stat

	AccuracyStage int
	EvasionStage  int
	CritStage     int

	Moves    []*Move
	HeldItem HeldItem
	Status   NonVolatileEffect

	// Volatile state, cleared on switch out unless passed.
	Confusion        ExpiringEffect
	Infatuation      *Pokemon
	Flinched         bool
	TruantLoaf       bool
	LockedMove       *LockedMove
	SemiInvulnerable string
	BideDamage       int
	DisabledMove     string
	DisableTimer     ExpiringEffect
	Taunt            ExpiringEffect
	Encore           ExpiringEffect
	EncoreMove       string
	Torment          bool
	HealBlock        ExpiringEffect
	Silenced         ExpiringEffect
	Embargo          ExpiringEffect
	Telekinesis      ExpiringEffect
	MagnetRise       ExpiringEffect
	Yawn             ExpiringEffect
	PerishCount      ExpiringEffect
	Substitute       int
	Protect          bool
	ProtectVariant   int
	ProtectChance    int
	LockedOn         bool
	Minimized        bool
	Stockpile        int
	FlashFire        bool
	FocusEnergy      bool
	ChoiceLockedMove string
	ItemMetronome    Metronome
	LeechSeeded      bool
	Ingrained        bool
	AquaRing         bool
	Imprison         bool
	Identified       bool
	Nightmare        bool
	DestinyBond      bool
	Cursed           bool
	Snatching        bool
	MagicCoat        bool
	BindingMove      string
	BindingTimer     ExpiringEffect
	Trapped          bool
	SmackedDown      bool
	MicleBoost       bool

	LastMove           *Move
	LastMoveFailed     bool
	LastDamageTaken    int
	LastPhysicalDamage int
	LastSpecialDamage  int
	HasMoved           bool
	HasActed           bool
	SwitchedInThisTurn bool

	battle *Battle
}

// RawStats carries the externally computed stat values for construction.
type RawStats struct {
	Hp        int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
}

func NewPokemon(species string, level int, types []string, ability string, stats RawStats) Pokemon {
	p := Pokemon{
		Species:       species,
		Nickname:      prettyName(species),
		Level:         level,
		Types:         append([]string{}, types...),
		BaseTypes:     append([]string{}, types...),
		AbilityIdent:  ability,
		Hp:            stats.Hp,
		MaxHp:         stats.Hp,
		Attack:        Stat{RawValue: stats.Attack},
		Defense:       Stat{RawValue: stats.Defense},
		SpAttack:      Stat{RawValue: stats.SpAttack},
		SpDefense:     Stat{RawValue: stats.SpDefense},
		Speed:         Stat{RawValue: stats.Speed},
		ProtectChance: 1,
	}

	return p
}

// Attach wires the combatant into a battle so suppression and field queries
// can see shared state. Must be called before the engine touches it.
func (p *Pokemon) Attach(battle *Battle) {
	p.battle = battle
	p.Status.owner = p
	p.HeldItem.Attach(p, battle)
	if p.ProtectChance == 0 {
		p.ProtectChance = 1
	}
}

func (p Pokemon) Alive() bool {
	return p.Hp > 0
}

func (p Pokemon) HasType(typeName string) bool {
	return lo.Contains(p.Types, typeName)
}

// AbilityName is the combatant's own view of its ability: raw identifier,
// or "" under Gastro Acid.
func (p Pokemon) AbilityName() string {
	if p.AbilitySuppressed {
		return ""
	}

	return p.AbilityIdent
}

// ignorableAbilities are shut off when a Mold Breaker class attacker
// interacts with the holder.
var ignorableAbilities = []string{
	"battle-armor", "clear-body", "damp", "dry-skin", "filter", "flash-fire",
	"flower-gift", "heatproof", "hyper-cutter", "immunity", "inner-focus",
	"insomnia", "keen-eye", "leaf-guard", "levitate", "lightning-rod",
	"limber", "magma-armor", "marvel-scale", "motor-drive", "oblivious",
	"own-tempo", "sand-veil", "shell-armor", "shield-dust", "simple",
	"snow-cloak", "solid-rock", "soundproof", "sticky-hold", "storm-drain",
	"sturdy", "suction-cups", "tangled-feet", "thick-fat", "unaware",
	"vital-spirit", "volt-absorb", "water-absorb", "water-veil",
	"white-smoke", "wonder-guard", "wonder-skin", "bulletproof",
	"flower-veil", "sweet-veil", "overcoat", "big-pecks",
}

var moldBreakerAbilities = []string{"mold-breaker", "teravolt", "turboblaze"}

// Ability answers the context-sensitive ability query: the interactor is
// whoever this combatant's ability would act against (nil for field
// queries). Mold Breaker class interactors and Neutralizing Gas suppress
// what they are allowed to.
func (p *Pokemon) Ability(interactor *Pokemon, move *Move) string {
	if p.AbilitySuppressed {
		return ""
	}

	if p.battle != nil && p.AbilityIdent != "neutralizing-gas" && p.battle.AbilityInPlay("neutralizing-gas") {
		return ""
	}

	if interactor != nil && interactor != p {
		attackerAbility := interactor.AbilityIdent
		if !interactor.AbilitySuppressed && lo.Contains(moldBreakerAbilities, attackerAbility) {
			if lo.Contains(ignorableAbilities, p.AbilityIdent) {
				return ""
			}
		}
	}

	return p.AbilityIdent
}

// EffectiveSpeed is the stat the turn order sorter consumes.
func (p *Pokemon) EffectiveSpeed() int {
	speed := p.Speed.CalcValue()

	if p.Status.Current == STATUS_PARA && p.AbilityName() != "quick-feet" {
		speed /= 2
	}

	if p.battle != nil {
		weather := p.battle.Weather.Get()
		switch p.AbilityName() {
		case "swift-swim":
			if weather == WEATHER_RAIN || weather == WEATHER_HEAVY_RAIN {
				speed *= 2
			}
		case "chlorophyll":
			if weather == WEATHER_SUN || weather == WEATHER_HEAVY_SUN {
				speed *= 2
			}
		case "sand-rush":
			if weather == WEATHER_SANDSTORM {
				speed *= 2
			}
		case "slush-rush":
			if weather == WEATHER_HAIL {
				speed *= 2
			}
		case "quick-feet":
			if p.Status.Active() {
				speed = speed * 3 / 2
			}
		}

		if side := p.battle.SideOf(p); side != nil && side.Tailwind.Active() {
			speed *= 2
		}
	}

	if p.HeldItem.Name() == "choice-scarf" {
		speed = speed * 3 / 2
	}

	return speed
}

// ReduceHp lowers hp by amount, clamped at zero, and returns what was
// actually dealt.
func (p *Pokemon) ReduceHp(amount int) int {
	if amount < 0 {
		amount = 0
	}

	dealt := amount
	if dealt > p.Hp {
		dealt = p.Hp
	}
	p.Hp -= dealt

	return dealt
}

// RestoreHp raises hp by amount, clamped at max, and returns what was
// actually healed.
func (p *Pokemon) RestoreHp(amount int) int {
	if amount < 0 {
		amount = 0
	}

	healed := amount
	if p.Hp+healed > p.MaxHp {
		healed = p.MaxHp - p.Hp
	}
	p.Hp += healed

	return healed
}

// Faint drops the combatant and clears its battle state.
func (p *Pokemon) Faint() string {
	p.Hp = 0
	name := p.Nickname
	p.ClearVolatiles()
	p.Status.Clear()

	return fmt.Sprintf("%s fainted!\n", name)
}

// Confuse starts a 2-5 turn confusion. No-op against Own Tempo or an
// existing confusion.
func (p *Pokemon) Confuse(battle *Battle) string {
	if p.Ability(nil, nil) == "own-tempo" {
		return fmt.Sprintf("%s's Own Tempo prevents confusion!\n", p.Nickname)
	}
	if p.Confusion.Active() {
		return ""
	}

	turns := 2
	if battle != nil {
		turns = battle.Rng.IntN(4) + 2
	}
	p.Confusion = NewExpiringEffect(TurnPtr(turns))

	return fmt.Sprintf("%s is now confused!\n", p.Nickname)
}

// Flinch marks the combatant as flinching this turn. Inner Focus shrugs it
// off.
func (p *Pokemon) Flinch() {
	if p.Ability(nil, nil) == "inner-focus" {
		return
	}

	p.Flinched = true
}

func (p Pokemon) KnownMove(identifier string) *Move {
	for _, move := range p.Moves {
		if move != nil && move.Identifier == identifier {
			return move
		}
	}

	return nil
}

var statNames = map[string]string{
	STAT_ATTACK:    "attack",
	STAT_DEFENSE:   "defense",
	STAT_SPATTACK:  "special attack",
	STAT_SPDEF: "special defense",
	STAT_SPEED:     "speed",
	STAT_ACCURACY:  "accuracy",
	STAT_EVASION:   "evasion",
}

func (p *Pokemon) stageRef(stat string) *int {
	switch stat {
	case STAT_ATTACK:
		return &p.Attack.Stage
	case STAT_DEFENSE:
		return &p.Defense.Stage
	case STAT_SPATTACK:
		return &p.SpAttack.Stage
	case STAT_SPDEF:
		return &p.SpDefense.Stage
	case STAT_SPEED:
		return &p.Speed.Stage
	case STAT_ACCURACY:
		return &p.AccuracyStage
	case STAT_EVASION:
		return &p.EvasionStage
	default:
		panic(fmt.Sprintf("unknown stat: %s", stat))
	}
}

// AppendStat moves one stat stage by change, clamped at +-6, and returns
// the log delta. The cause is whoever forced the change, nil when self
// inflicted; lowering vetoes and Defiant style retaliation only fire
// against an opposing cause.
func (p *Pokemon) AppendStat(stat string, change int, cause *Pokemon) string {
	if change == 0 {
		return ""
	}

	ability := p.Ability(cause, nil)

	if ability == "contrary" {
		change = -change
	}
	if ability == "simple" {
		change *= 2
	}

	external := cause != nil && cause != p

	if change < 0 && external {
		switch ability {
		case "clear-body", "white-smoke", "full-metal-body":
			return fmt.Sprintf("%s's stats cannot be lowered!\n", p.Nickname)
		case "hyper-cutter":
			if stat == STAT_ATTACK {
				return fmt.Sprintf("%s's attack cannot be lowered!\n", p.Nickname)
			}
		case "big-pecks":
			if stat == STAT_DEFENSE {
				return fmt.Sprintf("%s's defense cannot be lowered!\n", p.Nickname)
			}
		case "keen-eye":
			if stat == STAT_ACCURACY {
				return fmt.Sprintf("%s's accuracy cannot be lowered!\n", p.Nickname)
			}
		case "mirror-armor":
			if cause.Ability(p, nil) != "mirror-armor" {
				return cause.AppendStat(stat, change, p)
			}
		}

		if side := p.sideState(); side != nil && side.Mist.Active() {
			return fmt.Sprintf("%s is protected by the mist!\n", p.Nickname)
		}
	}

	stage := p.stageRef(stat)
	before := *stage

	if change > 0 {
		*stage = stageIncrease(change, *stage, 6)
	} else {
		*stage = stageDecrease(change, *stage, -6)
	}

	moved := *stage - before
	name := statNames[stat]

	log := ""
	switch {
	case moved > 0:
		log = fmt.Sprintf("%s's %s increased by %d stages!\n", p.Nickname, name, moved)
	case moved < 0:
		log = fmt.Sprintf("%s's %s decreased by %d stages!\n", p.Nickname, name, -moved)
	case change > 0:
		return fmt.Sprintf("%s's %s cannot go any higher!\n", p.Nickname, name)
	default:
		return fmt.Sprintf("%s's %s cannot go any lower!\n", p.Nickname, name)
	}

	if moved < 0 && external {
		switch p.Ability(nil, nil) {
		case "defiant":
			log += p.AppendStat(STAT_ATTACK, 2, nil)
		case "competitive":
			log += p.AppendStat(STAT_SPATTACK, 2, nil)
		}
	}

	return log
}

func (p *Pokemon) AppendAttack(change int, cause *Pokemon) string {
	return p.AppendStat(STAT_ATTACK, change, cause)
}

func (p *Pokemon) AppendDefense(change int, cause *Pokemon) string {
	return p.AppendStat(STAT_DEFENSE, change, cause)
}

func (p *Pokemon) AppendSpAttack(change int, cause *Pokemon) string {
	return p.AppendStat(STAT_SPATTACK, change, cause)
}

func (p *Pokemon) AppendSpDefense(change int, cause *Pokemon) string {
	return p.AppendStat(STAT_SPDEF, change, cause)
}

func (p *Pokemon) AppendSpeed(change int, cause *Pokemon) string {
	return p.AppendStat(STAT_SPEED, change, cause)
}

func (p *Pokemon) AppendAccuracy(change int, cause *Pokemon) string {
	return p.AppendStat(STAT_ACCURACY, change, cause)
}

func (p *Pokemon) AppendEvasion(change int, cause *Pokemon) string {
	return p.AppendStat(STAT_EVASION, change, cause)
}

// AppendCrit raises the crit stage, capped at the top of the crit table.
func (p *Pokemon) AppendCrit(change int) {
	p.CritStage = stageIncrease(change, p.CritStage, 3)
}

// ResetStages zeroes every stage bucket and reports it.
func (p *Pokemon) ResetStages() string {
	p.Attack.Stage = 0
	p.Defense.Stage = 0
	p.SpAttack.Stage = 0
	p.SpDefense.Stage = 0
	p.Speed.Stage = 0
	p.AccuracyStage = 0
	p.EvasionStage = 0

	return fmt.Sprintf("%s's stat changes were eliminated!\n", p.Nickname)
}

// CritChance gets the crit probability for the current crit stage, counting
// Focus Energy as two stages.
func (p Pokemon) CritChance() float64 {
	stage := p.CritStage
	if p.FocusEnergy {
		stage += 2
	}
	if stage > 3 {
		stage = 3
	}

	return critStageChances[stage]
}

// Grounded reports whether the combatant is touching the ground for
// terrain, hazard and Ground-type purposes.
func (p *Pokemon) Grounded(battle *Battle) bool {
	if battle != nil && battle.Gravity.Active() {
		return true
	}
	if p.Ingrained || p.SmackedDown {
		return true
	}
	if p.HeldItem.Name() == "iron-ball" {
		return true
	}
	if p.HasType(TYPENAME_FLYING) {
		return false
	}
	if p.Ability(nil, nil) == "levitate" {
		return false
	}
	if p.HeldItem.Name() == "air-balloon" {
		return false
	}
	if p.Telekinesis.Active() || p.MagnetRise.Active() {
		return false
	}

	return true
}

// Transform copies the target's battle shape: species, types, stats except
// hp, stages, and moves at 5 pp each.
func (p *Pokemon) Transform(target *Pokemon) string {
	p.Species = target.Species
	p.Types = append([]string{}, target.Types...)
	p.AbilityIdent = target.AbilityIdent

	p.Attack = target.Attack
	p.Defense = target.Defense
	p.SpAttack = target.SpAttack
	p.SpDefense = target.SpDefense
	p.Speed = target.Speed
	p.AccuracyStage = target.AccuracyStage
	p.EvasionStage = target.EvasionStage

	p.Moves = make([]*Move, 0, len(target.Moves))
	for _, move := range target.Moves {
		if move == nil {
			continue
		}
		copied := move.Copy()
		copied.PP = 5
		copied.StartingPP = 5
		p.Moves = append(p.Moves, copied)
	}

	return fmt.Sprintf("%s transformed into %s!\n", p.Nickname, target.Nickname)
}

// ClearVolatiles wipes everything that ends when the combatant leaves the
// field. Non-volatile status and badly-poisoned count survive switching;
// toxic's counter resets by rule.
func (p *Pokemon) ClearVolatiles() {
	p.Confusion = ExpiringEffect{}
	p.Infatuation = nil
	p.Flinched = false
	p.TruantLoaf = false
	p.LockedMove = nil
	p.SemiInvulnerable = ""
	p.BideDamage = 0
	p.DisabledMove = ""
	p.DisableTimer = ExpiringEffect{}
	p.Taunt = ExpiringEffect{}
	p.Encore = ExpiringEffect{}
	p.EncoreMove = ""
	p.Torment = false
	p.HealBlock = ExpiringEffect{}
	p.Silenced = ExpiringEffect{}
	p.Embargo = ExpiringEffect{}
	p.Telekinesis = ExpiringEffect{}
	p.MagnetRise = ExpiringEffect{}
	p.Yawn = ExpiringEffect{}
	p.PerishCount = ExpiringEffect{}
	p.Substitute = 0
	p.Protect = false
	p.ProtectVariant = 0
	p.ProtectChance = 1
	p.LockedOn = false
	p.Minimized = false
	p.Stockpile = 0
	p.FlashFire = false
	p.FocusEnergy = false
	p.ChoiceLockedMove = ""
	p.ItemMetronome.Reset()
	p.LeechSeeded = false
	p.Ingrained = false
	p.AquaRing = false
	p.Imprison = false
	p.Identified = false
	p.Nightmare = false
	p.DestinyBond = false
	p.Cursed = false
	p.Snatching = false
	p.MagicCoat = false
	p.BindingMove = ""
	p.BindingTimer = ExpiringEffect{}
	p.Trapped = false
	p.SmackedDown = false
	p.MicleBoost = false
	p.HeldItem.Suppressed = false
	p.AbilitySuppressed = false

	p.LastMove = nil
	p.LastMoveFailed = false
	p.LastDamageTaken = 0
	p.LastPhysicalDamage = 0
	p.LastSpecialDamage = 0
	p.HasMoved = false
	p.HasActed = false

	p.Types = append([]string{}, p.BaseTypes...)
	p.Status.BadlyPoisonedTurns = 0
	p.ResetStages()
	p.CritStage = 0
}

func (p *Pokemon) sideState() *SideState {
	if p.battle == nil {
		return nil
	}

	return p.battle.SideOf(p)
}
