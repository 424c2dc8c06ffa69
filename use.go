package porygon

import (
	"fmt"
	"sort"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var useLogger = func() logr.Logger {
	return internalLogger.WithName("use")
}

// moveContext carries the per-invocation dispatch flags. Re-dispatched moves
// (bounce, mirror, assist, sleep talk, dancer) never consume PP and every
// hop increments depth.
type moveContext struct {
	usePP   bool
	bounced bool
	depth   int
}

// Two hops covers every legal chain: one redirect (snatch, bounce, copy
// move) into one plain execution. Anything deeper is a loop.
const maxDispatchDepth = 2

var choiceItems = []string{"choice-band", "choice-specs", "choice-scarf"}

var thawingEffects = []int{EFFECT_SCALD, EFFECT_SACRED_FIRE, EFFECT_FLARE_BLITZ, EFFECT_FLAME_CHARGE}

var sleepUsableEffects = []int{EFFECT_SNORE, EFFECT_SLEEP_TALK}

// Use resolves one move from start to finish and returns the battle log it
// produced. All combat state is mutated in place.
func (b *Battle) Use(attacker *Pokemon, defender *Pokemon, move *Move) string {
	return b.use(attacker, defender, move, moveContext{usePP: true})
}

func (b *Battle) use(attacker *Pokemon, defender *Pokemon, move *Move, ctx moveContext) string {
	if ctx.depth > maxDispatchDepth {
		useLogger().Info("dispatch depth exceeded", "move", move.Identifier, "depth", ctx.depth)
		return ""
	}

	if attacker.HasActed && ctx.usePP {
		return ""
	}

	log := ""

	gateLog, proceed := b.preMoveGates(attacker, move)
	log += gateLog
	if !proceed {
		attacker.HasMoved = true
		attacker.HasActed = ctx.usePP || attacker.HasActed
		return log
	}

	if ctx.usePP {
		attacker.HasActed = true
	}
	attacker.HasMoved = true

	if !ctx.bounced {
		log += fmt.Sprintf("%s used %s!\n", attacker.Nickname, move.PrettyName)
		attacker.ItemMetronome.Track(move.Identifier)
	}
	move.Used = true

	continuing := attacker.LockedMove != nil && attacker.LockedMove.Move.Identifier == move.Identifier

	if ctx.usePP && !continuing && move.Effect != EFFECT_STRUGGLE {
		move.PP--
		if move.PP < 0 {
			move.PP = 0
		}
		if defender.Ability(attacker, move) == "pressure" && move.PP > 0 &&
			(move.TargetsOpponent() || lo.Contains(fieldEffectIds, move.Effect)) {
			move.PP--
		}

		if attacker.ChoiceLockedMove == "" {
			if lo.Contains(choiceItems, attacker.HeldItem.Name()) || attacker.Ability(nil, nil) == "gorilla-tactics" {
				attacker.ChoiceLockedMove = move.Identifier
			}
		}
	}

	log += b.applyFormChange(attacker, move)

	if defender.Snatching && move.SelectableBySnatch() && !ctx.bounced {
		defender.Snatching = false
		log += fmt.Sprintf("%s snatched %s's move!\n", defender.Nickname, attacker.Nickname)
		return log + b.use(defender, attacker, move, moveContext{depth: ctx.depth + 1})
	}

	if ok, failMsg := CheckExecutable(attacker, defender, b, move); !ok {
		attacker.LockedMove = nil
		attacker.LastMoveFailed = true
		attacker.LastMove = move
		return log + failMsg
	}

	bideRelease := false
	if continuing {
		setupLog, execute, release := b.continueLockedMove(attacker, move)
		log += setupLog
		bideRelease = release
		if !execute {
			attacker.LastMove = move
			return log
		}
	} else if setupLog, execute := b.beginMultiTurn(attacker, move); !execute {
		attacker.LastMove = move
		return log + setupLog
	}

	selfFaint := false
	switch move.Effect {
	case EFFECT_FAINT_USER:
		selfFaint = true
	case EFFECT_MIND_BLOWN:
		attacker.ReduceHp(attacker.MaxHp / 2)
		log += fmt.Sprintf("%s was hurt by its own power!\n", attacker.Nickname)
	}

	if ability := attacker.Ability(defender, move); (ability == "protean" || ability == "libero") &&
		move.Type != TYPENAME_TYPELESS && !attacker.HasType(move.Type) {
		attacker.Types = []string{move.Type}
		log += fmt.Sprintf("%s became the %s type!\n", attacker.Nickname, capitalize(move.Type))
	}

	if !ctx.bounced && move.DamageClass == DAMAGECLASS_STATUS && move.TargetsOpponent() {
		if defender.MagicCoat || defender.Ability(attacker, move) == "magic-bounce" {
			defender.MagicCoat = false
			log += fmt.Sprintf("%s bounced the %s back!\n", defender.Nickname, move.PrettyName)
			return log + b.use(defender, attacker, move, moveContext{bounced: true, depth: ctx.depth + 1})
		}
	}

	if !CheckEffective(attacker, defender, b, move) {
		log += fmt.Sprintf("It doesn't affect %s...\n", defender.Nickname)
		log += b.missCleanup(attacker, move)
		attacker.LastMoveFailed = true
		attacker.LastMove = move
		return log
	}
	if !CheckSemiInvulnerable(attacker, defender, b, move) {
		log += fmt.Sprintf("%s avoided the attack!\n", defender.Nickname)
		log += b.missCleanup(attacker, move)
		attacker.LastMoveFailed = true
		attacker.LastMove = move
		return log
	}
	if ok, protectLog := CheckProtect(attacker, defender, b, move); !ok {
		log += protectLog
		log += b.missCleanup(attacker, move)
		attacker.LastMoveFailed = true
		attacker.LastMove = move
		return log
	}
	if !CheckHit(attacker, defender, b, move) {
		log += fmt.Sprintf("%s's attack missed!\n", attacker.Nickname)
		log += b.missCleanup(attacker, move)
		attacker.LastMoveFailed = true
		attacker.LastMove = move
		return log
	}

	if absorbed, absorbLog := b.applyAbsorption(attacker, defender, move); absorbed {
		attacker.LastMove = move
		return log + absorbLog
	}

	specialLog, done := b.preAttackSpecials(attacker, defender, move, ctx)
	log += specialLog
	if done {
		attacker.LastMove = move
		attacker.LastMoveFailed = false
		return log
	}

	totalDamage := 0
	hits := 0
	if move.DamageClass != DAMAGECLASS_STATUS {
		damageLog, dealt, landed := b.applyAttackDamage(attacker, defender, move, bideRelease)
		log += damageLog
		totalDamage = dealt
		hits = landed
	}

	log += b.applyMoveEffects(attacker, defender, move, totalDamage, hits)

	if selfFaint && attacker.Alive() {
		attacker.ReduceHp(attacker.Hp)
		log += attacker.Faint()
	}

	if defender.Alive() && totalDamage > 0 && move.Effect == EFFECT_RECHARGE {
		attacker.LockedMove = NewLockedMove(move, TurnPtr(1))
	}

	attacker.LastMove = move
	attacker.LastMoveFailed = false

	if ctx.usePP && move.IsDance() && defender.Alive() && defender.Ability(attacker, move) == "dancer" {
		log += b.use(defender, attacker, move, moveContext{depth: ctx.depth + 1})
	}

	return log
}

// preMoveGates runs the status conditions that can stop a move before it is
// even announced. The second return is false when the turn is forfeit.
func (b *Battle) preMoveGates(attacker *Pokemon, move *Move) (string, bool) {
	log := ""

	if attacker.Status.Current == STATUS_FROZEN {
		thaws := move.Type == TYPENAME_FIRE || lo.Contains(thawingEffects, move.Effect)
		if thaws || b.Rng.IntN(100) < 20 {
			log += attacker.Status.Cure()
			log += fmt.Sprintf("%s thawed out!\n", attacker.Nickname)
		} else {
			return log + fmt.Sprintf("%s is frozen solid!\n", attacker.Nickname), false
		}
	}

	if attacker.Status.Current == STATUS_PARA && b.Rng.IntN(4) == 0 {
		attacker.LockedMove = nil
		return log + fmt.Sprintf("%s is paralyzed and can't move!\n", attacker.Nickname), false
	}

	if attacker.Infatuation != nil {
		log += fmt.Sprintf("%s is in love with %s!\n", attacker.Nickname, attacker.Infatuation.Nickname)
		if b.Rng.IntN(2) == 0 {
			return log + fmt.Sprintf("%s is immobilized by love!\n", attacker.Nickname), false
		}
	}

	if attacker.Flinched {
		attacker.Flinched = false
		log += fmt.Sprintf("%s flinched!\n", attacker.Nickname)
		if attacker.Ability(nil, nil) == "steadfast" {
			log += attacker.AppendSpeed(1, attacker)
		}
		return log, false
	}

	if attacker.Status.Current == STATUS_SLEEP {
		if attacker.Status.SleepTurns.NextTurn() {
			attacker.Status.Clear()
			log += fmt.Sprintf("%s woke up!\n", attacker.Nickname)
		} else if !lo.Contains(sleepUsableEffects, move.Effect) {
			return log + fmt.Sprintf("%s is fast asleep!\n", attacker.Nickname), false
		}
	}

	if attacker.Confusion.Active() {
		if attacker.Confusion.NextTurn() {
			log += fmt.Sprintf("%s snapped out of its confusion!\n", attacker.Nickname)
		} else {
			log += fmt.Sprintf("%s is confused!\n", attacker.Nickname)
			if b.Rng.IntN(3) == 0 {
				attacker.LockedMove = nil
				log += "It hurt itself in its confusion!\n"
				hit := b.Calc.Damage(attacker, attacker, confusionMove(), false, b)
				log += b.Calc.ApplyDamage(attacker, hit)
				return log, false
			}
		}
	}

	if attacker.Ability(nil, nil) == "truant" {
		attacker.TruantLoaf = !attacker.TruantLoaf
		if attacker.TruantLoaf {
			return log + fmt.Sprintf("%s is loafing around!\n", attacker.Nickname), false
		}
	}

	return log, true
}

func confusionMove() *Move {
	power := 40
	return &Move{
		Identifier:  "confusion-self-hit",
		PrettyName:  "Confusion",
		Power:       &power,
		Type:        TYPENAME_TYPELESS,
		DamageClass: DAMAGECLASS_PHYSICAL,
		Target:      TARGET_USER,
	}
}

func (b *Battle) applyFormChange(attacker *Pokemon, move *Move) string {
	if attacker.Ability(nil, nil) != "stance-change" || attacker.Species != "aegislash" {
		return ""
	}

	if move.DamageClass != DAMAGECLASS_STATUS {
		return fmt.Sprintf("%s changed to Blade Forme!\n", attacker.Nickname)
	}
	if move.Effect == EFFECT_KINGS_SHIELD {
		return fmt.Sprintf("%s changed to Shield Forme!\n", attacker.Nickname)
	}

	return ""
}

// continueLockedMove advances an in-progress multi-turn move. Returns the
// log, whether the attack portion executes this turn, and whether this is a
// Bide release.
func (b *Battle) continueLockedMove(attacker *Pokemon, move *Move) (string, bool, bool) {
	lock := attacker.LockedMove

	switch move.Effect {
	case EFFECT_RECHARGE:
		attacker.LockedMove = nil
		return fmt.Sprintf("%s must recharge!\n", attacker.Nickname), false, false
	case EFFECT_BIDE:
		if lock.NextTurn() {
			attacker.LockedMove = nil
			return fmt.Sprintf("%s unleashed its energy!\n", attacker.Nickname), true, true
		}
		return fmt.Sprintf("%s is storing energy!\n", attacker.Nickname), false, false
	case EFFECT_THRASH:
		if lock.NextTurn() {
			attacker.LockedMove = nil
			log := fmt.Sprintf("%s became confused due to fatigue!\n", attacker.Nickname)
			return log + attacker.Confuse(b), true, false
		}
		return "", true, false
	case EFFECT_ROLLOUT, EFFECT_UPROAR:
		if lock.NextTurn() {
			attacker.LockedMove = nil
		}
		return "", true, false
	default:
		// Charge and semi-invulnerable turns release on turn two.
		attacker.SemiInvulnerable = ""
		attacker.LockedMove = nil
		return "", true, false
	}
}

// beginMultiTurn classifies a first use into its multi-turn shape. Returns
// false when this turn is setup only.
func (b *Battle) beginMultiTurn(attacker *Pokemon, move *Move) (string, bool) {
	switch {
	case lo.Contains(twoTurnChargeEffects, move.Effect):
		weather := b.Weather.Get()
		if lo.Contains(solarChargeEffects, move.Effect) && (weather == WEATHER_SUN || weather == WEATHER_HEAVY_SUN) {
			return "", true
		}

		attacker.LockedMove = NewLockedMove(move, TurnPtr(2))
		log := fmt.Sprintf("%s is charging its move!\n", attacker.Nickname)
		switch move.Effect {
		case EFFECT_SKULL_BASH:
			log += attacker.AppendDefense(1, attacker)
		case EFFECT_METEOR_BEAM:
			log += attacker.AppendSpAttack(1, attacker)
		}
		return log, false
	case lo.Contains(semiInvulnerableEffects, move.Effect):
		attacker.LockedMove = NewLockedMove(move, TurnPtr(2))
		switch move.Effect {
		case EFFECT_FLY:
			attacker.SemiInvulnerable = "fly"
			return fmt.Sprintf("%s flew up high!\n", attacker.Nickname), false
		case EFFECT_BOUNCE:
			attacker.SemiInvulnerable = "bounce"
			return fmt.Sprintf("%s sprang up!\n", attacker.Nickname), false
		case EFFECT_DIG:
			attacker.SemiInvulnerable = "dig"
			return fmt.Sprintf("%s burrowed its way under the ground!\n", attacker.Nickname), false
		case EFFECT_DIVE:
			attacker.SemiInvulnerable = "dive"
			return fmt.Sprintf("%s hid underwater!\n", attacker.Nickname), false
		default:
			attacker.SemiInvulnerable = "shadow-force"
			return fmt.Sprintf("%s vanished instantly!\n", attacker.Nickname), false
		}
	case move.Effect == EFFECT_BIDE:
		attacker.LockedMove = NewLockedMove(move, TurnPtr(2))
		attacker.BideDamage = 0
		return fmt.Sprintf("%s is storing energy!\n", attacker.Nickname), false
	case move.Effect == EFFECT_THRASH:
		attacker.LockedMove = NewLockedMove(move, TurnPtr(b.Rng.IntN(2)+1))
		return "", true
	case move.Effect == EFFECT_ROLLOUT:
		attacker.LockedMove = NewLockedMove(move, TurnPtr(4))
		return "", true
	case move.Effect == EFFECT_UPROAR:
		attacker.LockedMove = NewLockedMove(move, TurnPtr(2))
		return fmt.Sprintf("%s caused an uproar!\n", attacker.Nickname), true
	default:
		return "", true
	}
}

// missCleanup applies the effect specific penalties for a move that failed
// one of the four checks.
func (b *Battle) missCleanup(attacker *Pokemon, move *Move) string {
	log := ""

	if move.Effect == EFFECT_CRASH_ON_MISS {
		attacker.ReduceHp(attacker.MaxHp / 2)
		log += fmt.Sprintf("%s kept going and crashed!\n", attacker.Nickname)
		if !attacker.Alive() {
			log += attacker.Faint()
		}
	}

	if attacker.LockedMove != nil && attacker.LockedMove.Move.Identifier == move.Identifier {
		attacker.LockedMove = nil
	}

	return log
}

// applyAbsorption handles defender abilities that eat a whole move of their
// type. True means the move was consumed here.
func (b *Battle) applyAbsorption(attacker *Pokemon, defender *Pokemon, move *Move) (bool, string) {
	if !move.TargetsOpponent() || move.Type == TYPENAME_TYPELESS {
		return false, ""
	}

	ability := defender.Ability(attacker, move)

	switch {
	case ability == "volt-absorb" && move.Type == TYPENAME_ELECTRIC:
		log := fmt.Sprintf("%s absorbed the attack!\n", defender.Nickname)
		return true, log + b.Calc.Heal(defender, defender.MaxHp/4)
	case (ability == "water-absorb" || ability == "dry-skin") && move.Type == TYPENAME_WATER:
		log := fmt.Sprintf("%s absorbed the attack!\n", defender.Nickname)
		return true, log + b.Calc.Heal(defender, defender.MaxHp/4)
	case ability == "earth-eater" && move.Type == TYPENAME_GROUND:
		log := fmt.Sprintf("%s absorbed the attack!\n", defender.Nickname)
		return true, log + b.Calc.Heal(defender, defender.MaxHp/4)
	case ability == "flash-fire" && move.Type == TYPENAME_FIRE:
		defender.FlashFire = true
		return true, fmt.Sprintf("%s's fire power rose!\n", defender.Nickname)
	case ability == "lightning-rod" && move.Type == TYPENAME_ELECTRIC:
		return true, defender.AppendSpAttack(1, defender)
	case ability == "motor-drive" && move.Type == TYPENAME_ELECTRIC:
		return true, defender.AppendSpeed(1, defender)
	case ability == "storm-drain" && move.Type == TYPENAME_WATER:
		return true, defender.AppendSpAttack(1, defender)
	case ability == "sap-sipper" && move.Type == TYPENAME_GRASS:
		return true, defender.AppendAttack(1, defender)
	}

	return false, ""
}

// preAttackSpecials runs the effect ids that replace or precede the normal
// attack flow. True in the second return means the move fully resolved here.
func (b *Battle) preAttackSpecials(attacker *Pokemon, defender *Pokemon, move *Move, ctx moveContext) (string, bool) {
	redispatch := func(next *Move) string {
		return b.use(attacker, defender, next, moveContext{depth: ctx.depth + 1})
	}

	switch move.Effect {
	case EFFECT_METRONOME:
		next := b.randomRegistryMove()
		if next == nil {
			return "But it failed!\n", true
		}
		log := fmt.Sprintf("Waggling a finger let it use %s!\n", next.PrettyName)
		return log + redispatch(next), true
	case EFFECT_NATURE_POWER:
		next := b.naturePowerMove()
		if next == nil {
			return "But it failed!\n", true
		}
		log := fmt.Sprintf("%s turned into %s!\n", move.PrettyName, next.PrettyName)
		return log + redispatch(next), true
	case EFFECT_SLEEP_TALK:
		candidates := make([]*Move, 0, len(attacker.Moves))
		for _, known := range attacker.Moves {
			if known != nil && known.Identifier != move.Identifier && known.SelectableBySleepTalk() {
				candidates = append(candidates, known)
			}
		}
		if len(candidates) == 0 {
			return "But it failed!\n", true
		}
		return redispatch(candidates[b.Rng.IntN(len(candidates))]), true
	case EFFECT_MIRROR_MOVE, EFFECT_COPYCAT:
		return redispatch(defender.LastMove.Copy()), true
	case EFFECT_ME_FIRST:
		if defender.HasMoved || defender.LastMove == nil || defender.LastMove.DamageClass == DAMAGECLASS_STATUS {
			return "But it failed!\n", true
		}
		copied := defender.LastMove.Copy()
		if copied.Power != nil {
			boosted := *copied.Power * 3 / 2
			copied.Power = &boosted
		}
		return redispatch(copied), true
	case EFFECT_ASSIST:
		trainer := b.TrainerOf(attacker)
		candidates := []*Move{}
		if trainer != nil {
			for _, ally := range trainer.Party {
				if ally == attacker {
					continue
				}
				for _, known := range ally.Moves {
					if known != nil && known.SelectableByAssist() {
						candidates = append(candidates, known)
					}
				}
			}
		}
		if len(candidates) == 0 {
			return "But it failed!\n", true
		}
		return redispatch(candidates[b.Rng.IntN(len(candidates))].Copy()), true
	case EFFECT_SPECTRAL_THIEF:
		return b.stealPositiveStages(attacker, defender), false
	case EFFECT_FUTURE_SIGHT:
		side := b.SideOf(defender)
		if side.FutureSight.Active() {
			return "But it failed!\n", true
		}
		side.FutureSight = NewExpiringEffect(TurnPtr(2))
		side.FutureSightMove = move.Copy()
		side.FutureSightUser = attacker
		return fmt.Sprintf("%s foresaw an attack!\n", attacker.Nickname), true
	case EFFECT_PRESENT:
		roll := b.Rng.IntN(10)
		switch {
		case roll < 4:
			power := 40
			move.Power = &power
		case roll < 7:
			power := 80
			move.Power = &power
		case roll < 8:
			power := 120
			move.Power = &power
		default:
			return b.Calc.Heal(defender, defender.MaxHp/4), true
		}
		return "", false
	case EFFECT_BRICK_BREAK:
		side := b.SideOf(defender)
		log := ""
		if side.Reflect.Active() || side.LightScreen.Active() || side.AuroraVeil.Active() {
			side.Reflect = ExpiringEffect{}
			side.LightScreen = ExpiringEffect{}
			side.AuroraVeil = ExpiringEffect{}
			log = "The wall shattered!\n"
		}
		return log, false
	case EFFECT_INCINERATE:
		if defender.HeldItem.IsBerry() && defender.HeldItem.CanRemove() {
			burned := defender.HeldItem.Remove()
			return fmt.Sprintf("%s's %s was burned up!\n", defender.Nickname, prettyName(burned.Name)), false
		}
		return "", false
	case EFFECT_POLTERGEIST:
		return fmt.Sprintf("%s is about to be attacked by its %s!\n", defender.Nickname, prettyName(defender.HeldItem.HeldName())), false
	default:
		return "", false
	}
}

func (b *Battle) stealPositiveStages(attacker *Pokemon, defender *Pokemon) string {
	stolen := false

	steal := func(from *Stat, to *Stat) {
		if from.Stage > 0 {
			to.Stage = stageIncrease(from.Stage, to.Stage, 6)
			from.Stage = 0
			stolen = true
		}
	}

	steal(&defender.Attack, &attacker.Attack)
	steal(&defender.Defense, &attacker.Defense)
	steal(&defender.SpAttack, &attacker.SpAttack)
	steal(&defender.SpDefense, &attacker.SpDefense)
	steal(&defender.Speed, &attacker.Speed)

	if !stolen {
		return ""
	}

	return fmt.Sprintf("%s stole %s's stat boosts!\n", attacker.Nickname, defender.Nickname)
}

// randomRegistryMove draws a uniformly random non-copying move from the
// global registry. Identifiers are sorted so the draw is reproducible under
// a fixed rng.
func (b *Battle) randomRegistryMove() *Move {
	identifiers := make([]string, 0, len(GlobalMoves.Moves))
	for identifier, candidate := range GlobalMoves.Moves {
		if lo.Contains(copyMoveEffects, candidate.Effect) || candidate.Effect == EFFECT_STRUGGLE {
			continue
		}
		identifiers = append(identifiers, identifier)
	}
	if len(identifiers) == 0 {
		return nil
	}

	sort.Strings(identifiers)

	return GlobalMoves.GetMove(identifiers[b.Rng.IntN(len(identifiers))])
}

var naturePowerByTerrain = map[string]string{
	TERRAIN_NONE:     "tri-attack",
	TERRAIN_ELECTRIC: "thunderbolt",
	TERRAIN_GRASSY:   "energy-ball",
	TERRAIN_MISTY:    "moonblast",
	TERRAIN_PSYCHIC:  "psychic",
}

func (b *Battle) naturePowerMove() *Move {
	return GlobalMoves.GetMove(naturePowerByTerrain[b.Terrain.Get()])
}

func (b *Battle) critRoll(attacker *Pokemon, defender *Pokemon, move *Move) bool {
	defenderAbility := defender.Ability(attacker, move)
	if defenderAbility == "battle-armor" || defenderAbility == "shell-armor" {
		return false
	}

	if attacker.Ability(defender, move) == "merciless" &&
		(defender.Status.Current == STATUS_POISON || defender.Status.Current == STATUS_TOXIC) {
		return true
	}

	stage := attacker.CritStage + move.CritRate
	if attacker.FocusEnergy {
		stage += 2
	}
	switch attacker.HeldItem.Name() {
	case "scope-lens", "razor-claw":
		stage++
	}
	if ability := attacker.Ability(defender, move); ability == "super-luck" {
		stage++
	}
	if stage > 3 {
		stage = 3
	}
	if stage < 0 {
		stage = 0
	}

	return b.Rng.Float64() < critStageChances[stage]
}

func (b *Battle) rollHitCount(attacker *Pokemon, move *Move) int {
	if move.MinHits == nil || move.MaxHits == nil {
		return 1
	}

	min := *move.MinHits
	max := *move.MaxHits
	if min == max {
		return min
	}
	if attacker.Ability(nil, nil) == "skill-link" {
		return max
	}

	return b.Rng.IntN(max-min+1) + min
}

// applyAttackDamage resolves the damage portion of a damaging move and
// returns the log, total damage dealt, and the number of hits that landed.
func (b *Battle) applyAttackDamage(attacker *Pokemon, defender *Pokemon, move *Move, bideRelease bool) (string, int, int) {
	log := ""
	total := 0
	hits := 0

	static := func(amount int) {
		if amount < 1 {
			amount = 1
		}
		log += b.Calc.ApplyDamage(defender, amount)
		total = amount
		hits = 1
	}

	switch {
	case bideRelease:
		static(attacker.BideDamage * 2)
		attacker.BideDamage = 0
	case move.Effect == EFFECT_OHKO:
		log += "It's a one-hit KO!\n"
		static(defender.Hp)
	case move.Effect == EFFECT_FIXED_20:
		static(20)
	case move.Effect == EFFECT_FIXED_40:
		static(40)
	case move.Effect == EFFECT_LEVEL_DAMAGE:
		static(attacker.Level)
	case move.Effect == EFFECT_PSYWAVE:
		static(attacker.Level * (b.Rng.IntN(11) + 5) / 10)
	case move.Effect == EFFECT_HALF_HP:
		static(defender.Hp / 2)
	case move.Effect == EFFECT_ENDEAVOR:
		static(defender.Hp - attacker.Hp)
	case move.Effect == EFFECT_FINAL_GAMBIT:
		static(attacker.Hp)
	case move.Effect == EFFECT_COUNTER:
		static(attacker.LastPhysicalDamage * 2)
	case move.Effect == EFFECT_MIRROR_COAT:
		static(attacker.LastSpecialDamage * 2)
	case move.Effect == EFFECT_METAL_BURST:
		static(attacker.LastDamageTaken * 3 / 2)
	case move.Effect == EFFECT_BEAT_UP:
		trainer := b.TrainerOf(attacker)
		if trainer == nil {
			break
		}
		for _, ally := range trainer.Party {
			if !ally.Alive() || ally.Status.Active() {
				continue
			}
			crit := b.critRoll(attacker, defender, move)
			hit := b.Calc.Damage(ally, defender, move, crit, b)
			log += fmt.Sprintf("%s's attack!\n", ally.Nickname)
			log += b.Calc.ApplyDamage(defender, hit)
			total += hit
			hits++
			if !defender.Alive() {
				break
			}
		}
	default:
		count := b.rollHitCount(attacker, move)
		crits := 0
		for i := 0; i < count; i++ {
			crit := b.critRoll(attacker, defender, move)
			if crit {
				crits++
			}
			hit := b.Calc.Damage(attacker, defender, move, crit, b)
			log += b.Calc.ApplyDamage(defender, hit)
			total += hit
			hits++
			if !defender.Alive() {
				break
			}
		}
		if crits > 0 {
			log += "A critical hit!\n"
		}
		if count > 1 {
			log += fmt.Sprintf("Hit %d time(s)!\n", hits)
		}

		effectiveness := b.Effectiveness(move.Type, defender)
		if effectiveness > 1 {
			log += "It's super effective!\n"
		} else if effectiveness < 1 && effectiveness > 0 {
			log += "It's not very effective...\n"
		}
	}

	if total > 0 {
		switch move.DamageClass {
		case DAMAGECLASS_PHYSICAL:
			defender.LastPhysicalDamage = total
		case DAMAGECLASS_SPECIAL:
			defender.LastSpecialDamage = total
		}

		if defender.LockedMove != nil && defender.LockedMove.Move.Effect == EFFECT_BIDE {
			defender.BideDamage += total
		}

		log += b.applyHitRecoil(attacker, move, total)
		log += b.applyReactiveItems(attacker, defender, move)

		if !defender.Alive() && defender.DestinyBond && attacker.Alive() {
			attacker.ReduceHp(attacker.Hp)
			log += fmt.Sprintf("%s took its attacker down with it!\n", defender.Nickname)
			log += attacker.Faint()
		}
	}

	return log, total, hits
}

func (b *Battle) applyHitRecoil(attacker *Pokemon, move *Move, dealt int) string {
	recoil := 0

	switch move.Effect {
	case EFFECT_RECOIL_QUARTER:
		recoil = dealt / 4
	case EFFECT_RECOIL_THIRD, EFFECT_FLARE_BLITZ:
		recoil = dealt / 3
	case EFFECT_HEAD_SMASH:
		recoil = dealt / 2
	case EFFECT_STRUGGLE:
		recoil = attacker.MaxHp / 4
	default:
		return ""
	}

	if move.Effect != EFFECT_STRUGGLE && attacker.Ability(nil, nil) == "rock-head" {
		return ""
	}
	if recoil < 1 {
		recoil = 1
	}

	attacker.ReduceHp(recoil)
	log := fmt.Sprintf("%s was damaged by the recoil!\n", attacker.Nickname)
	if !attacker.Alive() {
		log += attacker.Faint()
	}

	return log
}

// applyReactiveItems covers the single-use berry and battery items that
// trigger on being hit by a matching type.
func (b *Battle) applyReactiveItems(attacker *Pokemon, defender *Pokemon, move *Move) string {
	if !defender.Alive() || defender.Substitute > 0 {
		return ""
	}

	trigger := func(statChange func(int, *Pokemon) string) string {
		item := defender.HeldItem.Use()
		log := fmt.Sprintf("%s used its %s!\n", defender.Nickname, prettyName(item.Name))
		return log + statChange(1, defender)
	}

	switch defender.HeldItem.Name() {
	case "absorb-bulb":
		if move.Type == TYPENAME_WATER {
			return trigger(defender.AppendSpAttack)
		}
	case "cell-battery":
		if move.Type == TYPENAME_ELECTRIC {
			return trigger(defender.AppendAttack)
		}
	case "luminous-moss":
		if move.Type == TYPENAME_WATER {
			return trigger(defender.AppendSpDefense)
		}
	case "snowball":
		if move.Type == TYPENAME_ICE {
			return trigger(defender.AppendAttack)
		}
	}

	return ""
}
