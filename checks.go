package porygon

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var checkLogger = func() logr.Logger {
	return internalLogger.WithName("checks")
}

// CheckSemiInvulnerable reports whether the move can reach a defender that
// may be mid Fly/Dig/Dive/Shadow Force. True means the hit is still
// possible.
func CheckSemiInvulnerable(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) bool {
	if !move.TargetsOpponent() {
		return true
	}
	if defender.SemiInvulnerable == "" {
		return true
	}
	if attacker.Ability(defender, move) == "no-guard" || defender.Ability(attacker, move) == "no-guard" {
		return true
	}
	if defender.LockedOn {
		return true
	}

	switch defender.SemiInvulnerable {
	case "fly", "bounce":
		return lo.Contains(flyBypassEffects, move.Effect)
	case "dig":
		return lo.Contains(digBypassEffects, move.Effect)
	case "dive":
		return lo.Contains(diveBypassEffects, move.Effect)
	default:
		// Shadow Force and Hyperspace Hole turns can't be reached at all.
		return false
	}
}

// contactPunish applies the side effect a spiky protection variant deals to
// a blocked contact attacker.
func contactPunish(attacker *Pokemon, defender *Pokemon, battle *Battle, variant int) string {
	log := ""

	switch variant {
	case EFFECT_SPIKY_SHIELD:
		attacker.ReduceHp(attacker.MaxHp / 8)
		log += fmt.Sprintf("%s was hurt by the spiky shield!\n", attacker.Nickname)
		if !attacker.Alive() {
			log += attacker.Faint()
		}
	case EFFECT_BANEFUL_BUNKER:
		log += attacker.Status.ApplyStatus(STATUS_POISON, battle, defender)
	case EFFECT_KINGS_SHIELD:
		log += attacker.AppendAttack(-1, defender)
	case EFFECT_OBSTRUCT:
		log += attacker.AppendDefense(-2, defender)
	case EFFECT_SILK_TRAP:
		log += attacker.AppendSpeed(-1, defender)
	case EFFECT_BURNING_BULWARK:
		log += attacker.Status.ApplyStatus(STATUS_BURN, battle, defender)
	}

	return log
}

// CheckProtect reports whether the move gets past the defender's protection
// this turn, along with any log the guard produced. Guards are consulted in
// a fixed order; the first applicable one resolves the call.
func CheckProtect(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
	if !move.TargetsOpponent() {
		return true, ""
	}
	if !defender.Protect {
		return true, ""
	}

	if lo.Contains(protectionIgnoreEffects, move.Effect) {
		return true, ""
	}

	contact := move.MakesContact() && attacker.HeldItem.Name() != "protective-pads"

	if contact && attacker.Ability(defender, move) == "unseen-fist" {
		return true, ""
	}

	if defender.ProtectVariant == EFFECT_CRAFTY_SHIELD {
		if move.DamageClass == DAMAGECLASS_STATUS {
			return false, fmt.Sprintf("%s was protected against the attack!\n", defender.Nickname)
		}
		return true, ""
	}

	if lo.Contains(protectionBypassMinusCrafty, move.Effect) {
		return true, ""
	}

	switch defender.ProtectVariant {
	case EFFECT_WIDE_GUARD:
		// Only spread target patterns are turned away.
		if move.Target != TARGET_ALL_OPPONENTS && move.Target != TARGET_ALL_OTHER_POKEMON {
			return true, ""
		}
	case EFFECT_QUICK_GUARD:
		if move.Priority <= 0 {
			return true, ""
		}
	case EFFECT_MAT_BLOCK:
		if move.DamageClass == DAMAGECLASS_STATUS {
			return true, ""
		}
	case EFFECT_KINGS_SHIELD, EFFECT_OBSTRUCT, EFFECT_SILK_TRAP, EFFECT_BURNING_BULWARK:
		if move.DamageClass == DAMAGECLASS_STATUS {
			return true, ""
		}
	}

	log := fmt.Sprintf("%s was protected against the attack!\n", defender.Nickname)

	if contact {
		log += contactPunish(attacker, defender, battle, defender.ProtectVariant)
	}

	return false, log
}

// CheckHit rolls the accuracy model. True means the move connects.
func CheckHit(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) bool {
	weather := battle.Weather.Get()

	// Unconditional hit carve-outs come before everything, including the
	// null accuracy rule.
	if move.Effect == EFFECT_BLIZZARD && weather == WEATHER_HAIL {
		return true
	}
	if (move.Effect == EFFECT_THUNDER || move.Effect == EFFECT_HURRICANE) && (weather == WEATHER_RAIN || weather == WEATHER_HEAVY_RAIN) {
		return true
	}
	if move.Effect == EFFECT_TOXIC && attacker.HasType(TYPENAME_POISON) {
		return true
	}
	if defender.Minimized && (move.Effect == EFFECT_FLINCH_HIT && move.Identifier == "stomp" || move.Identifier == "body-slam" || move.Identifier == "dragon-rush" || move.Identifier == "heat-crash" || move.Identifier == "heavy-slam") {
		return true
	}
	if defender.LockedOn {
		defender.LockedOn = false
		return true
	}
	if attacker.Ability(defender, move) == "no-guard" || defender.Ability(attacker, move) == "no-guard" {
		return true
	}
	if defender.Telekinesis.Active() && move.Effect != EFFECT_OHKO {
		return true
	}

	// OHKO moves run their own level-difference roll, never the general
	// formula.
	if move.Effect == EFFECT_OHKO {
		threshold := 30 + (attacker.Level - defender.Level)
		roll := battle.Rng.IntN(100)

		checkLogger().V(1).Info("ohko roll", "threshold", threshold, "roll", roll)

		return roll < threshold
	}

	if move.Accuracy == nil {
		return true
	}

	stage := attacker.AccuracyStage - defender.EvasionStage
	if defender.Ability(attacker, move) == "unaware" {
		stage = -defender.EvasionStage
	}
	if stage > 6 {
		stage = 6
	}
	if stage < -6 {
		stage = -6
	}

	accuracy := float64(*move.Accuracy) * AccuracyStageMultipliers[stage]

	if lo.Contains(sunAccuracyHalvedEffects, move.Effect) && (weather == WEATHER_SUN || weather == WEATHER_HEAVY_SUN) {
		accuracy *= 0.5
	}

	if defender.Ability(attacker, move) == "wonder-skin" && move.DamageClass == DAMAGECLASS_STATUS && accuracy > 50 {
		accuracy = 50
	}

	switch attacker.Ability(defender, move) {
	case "compound-eyes":
		accuracy *= 1.3
	case "hustle":
		if move.DamageClass == DAMAGECLASS_PHYSICAL {
			accuracy *= 0.8
		}
	case "victory-star":
		accuracy *= 1.1
	}

	if defender.Ability(attacker, move) == "tangled-feet" && defender.Confusion.Active() {
		accuracy *= 0.5
	}
	if defender.Ability(attacker, move) == "sand-veil" && weather == WEATHER_SANDSTORM {
		accuracy *= 0.8
	}
	if defender.Ability(attacker, move) == "snow-cloak" && weather == WEATHER_HAIL {
		accuracy *= 0.8
	}

	if battle.Gravity.Active() {
		accuracy *= 5.0 / 3.0
	}

	switch attacker.HeldItem.Name() {
	case "wide-lens":
		accuracy *= 1.1
	case "zoom-lens":
		if defender.HasMoved {
			accuracy *= 1.2
		}
	}

	if defender.HeldItem.Name() == "bright-powder" {
		accuracy *= 0.9
	}

	if attacker.MicleBoost {
		accuracy *= 1.2
		attacker.MicleBoost = false
	}

	roll := battle.Rng.IntN(100)

	checkLogger().V(1).Info("accuracy roll",
		"move", move.Identifier,
		"accuracy", accuracy,
		"stage", stage,
		"roll", roll)

	return float64(roll) < accuracy
}

// CheckEffective reports whether a connecting hit does anything at all to
// the defender.
func CheckEffective(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) bool {
	if lo.Contains(alwaysIneffectiveEffects, move.Effect) {
		return false
	}

	if !move.TargetsOpponent() {
		return true
	}

	defenderAbility := defender.Ability(attacker, move)

	if defenderAbility == "oblivious" && (move.Effect == EFFECT_ATTRACT || move.Effect == EFFECT_TAUNT) {
		return false
	}

	if move.Effect == EFFECT_OHKO {
		if defenderAbility == "sturdy" {
			return false
		}
		if lo.Contains(ohkoImmuneSpecies, defender.Species) {
			return false
		}
		if defender.Level > attacker.Level {
			return false
		}
	}

	if (move.Effect == EFFECT_DREAM_EATER || move.Effect == EFFECT_NIGHTMARE) && defender.Status.Current != STATUS_SLEEP {
		return false
	}

	if move.IsSoundBased() && defenderAbility == "soundproof" {
		return false
	}
	if move.IsBallOrBomb() && defenderAbility == "bulletproof" {
		return false
	}

	if move.DamageClass == DAMAGECLASS_STATUS {
		if defender.HasType(TYPENAME_DARK) && attacker.Ability(defender, move) == "prankster" {
			return false
		}
		if defenderAbility == "good-as-gold" {
			return false
		}
		// Thunder Wave is the one status move the type chart still gates.
		if move.Effect == EFFECT_PARALYZE && move.Type == TYPENAME_ELECTRIC {
			if battle.Effectiveness(move.Type, defender) == 0 {
				return false
			}
		}

		return true
	}

	if move.Type == TYPENAME_GROUND && move.Effect != EFFECT_THOUSAND_ARROWS && !defender.Grounded(battle) {
		return false
	}

	effectiveness := battle.Effectiveness(move.Type, defender)
	if move.Effect == EFFECT_THOUSAND_ARROWS && defender.HasType(TYPENAME_FLYING) && !defender.SmackedDown {
		effectiveness = 1
	}

	if effectiveness == 0 {
		return false
	}

	if defenderAbility == "wonder-guard" && effectiveness <= 1 {
		return false
	}

	return true
}

// executabilityRule is one ordered precondition. The check returns true with
// a log line when the rule blocks the move.
type executabilityRule struct {
	name  string
	check func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string)
}

var healBlockedEffects = []int{
	EFFECT_HEAL_HALF, EFFECT_REST, EFFECT_MORNING_SUN, EFFECT_SYNTHESIS,
	EFFECT_MOONLIGHT, EFFECT_ROOST, EFFECT_WISH, EFFECT_HEAL_PULSE,
	EFFECT_FLORAL_HEALING, EFFECT_LIFE_DEW, EFFECT_STRENGTH_SAP,
	EFFECT_AQUA_RING, EFFECT_INGRAIN,
}

var gravityBlockedEffects = []int{
	EFFECT_FLY, EFFECT_BOUNCE, EFFECT_SPLASH, EFFECT_MAGNET_RISE,
	EFFECT_TELEKINESIS,
}

var doublesOnlyEffects = []int{
	EFFECT_HELPING_HAND, EFFECT_DECORATE,
}

var executabilityRules = []executabilityRule{
	{"taunt", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if attacker.Taunt.Active() && move.DamageClass == DAMAGECLASS_STATUS {
			return true, fmt.Sprintf("%s can't use %s after the taunt!\n", attacker.Nickname, move.PrettyName)
		}
		return false, ""
	}},
	{"throat-chop", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if attacker.Silenced.Active() && move.IsSoundBased() {
			return true, fmt.Sprintf("%s can't make a sound!\n", attacker.Nickname)
		}
		return false, ""
	}},
	{"heal-block", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if attacker.HealBlock.Active() && lo.Contains(healBlockedEffects, move.Effect) {
			return true, fmt.Sprintf("%s can't heal due to Heal Block!\n", attacker.Nickname)
		}
		return false, ""
	}},
	{"powder", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if !move.IsPowder() || !move.TargetsOpponent() {
			return false, ""
		}
		if defender.HasType(TYPENAME_GRASS) || defender.Ability(attacker, move) == "overcoat" || defender.HeldItem.Name() == "safety-goggles" {
			return true, fmt.Sprintf("It doesn't affect %s!\n", defender.Nickname)
		}
		return false, ""
	}},
	{"heavy-weather", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		weatherEffects := []int{EFFECT_RAIN_DANCE, EFFECT_SUNNY_DAY, EFFECT_SANDSTORM, EFFECT_HAIL}
		if lo.Contains(weatherEffects, move.Effect) && lo.Contains(heavyWeathers, battle.Weather.Get()) {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"disable", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if attacker.DisabledMove == move.Identifier && attacker.DisableTimer.Active() {
			return true, fmt.Sprintf("%s's %s is disabled!\n", attacker.Nickname, move.PrettyName)
		}
		return false, ""
	}},
	{"torment", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if attacker.Torment && attacker.LastMove != nil && attacker.LastMove.Identifier == move.Identifier {
			return true, fmt.Sprintf("%s can't use the same move twice due to the torment!\n", attacker.Nickname)
		}
		return false, ""
	}},
	{"choice-lock", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if attacker.ChoiceLockedMove != "" && attacker.ChoiceLockedMove != move.Identifier {
			return true, fmt.Sprintf("%s is locked into %s!\n", attacker.Nickname, prettyName(attacker.ChoiceLockedMove))
		}
		return false, ""
	}},
	{"imprison", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if defender.Imprison && defender.KnownMove(move.Identifier) != nil {
			return true, fmt.Sprintf("%s can't use the sealed %s!\n", attacker.Nickname, move.PrettyName)
		}
		return false, ""
	}},
	{"gravity", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if battle.Gravity.Active() && lo.Contains(gravityBlockedEffects, move.Effect) {
			return true, fmt.Sprintf("%s can't use %s under the intense gravity!\n", attacker.Nickname, move.PrettyName)
		}
		return false, ""
	}},
	{"doubles-only", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if lo.Contains(doublesOnlyEffects, move.Effect) {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"sleep-required", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if (move.Effect == EFFECT_SNORE || move.Effect == EFFECT_SLEEP_TALK) && attacker.Status.Current != STATUS_SLEEP && attacker.Ability(nil, nil) != "comatose" {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"rest", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if move.Effect != EFFECT_REST {
			return false, ""
		}
		if attacker.Hp == attacker.MaxHp {
			return true, fmt.Sprintf("%s's health is already full!\n", attacker.Nickname)
		}
		if ability := attacker.Ability(nil, nil); ability == "insomnia" || ability == "vital-spirit" {
			return true, "But it failed!\n"
		}
		if battle.Terrain.Get() == TERRAIN_ELECTRIC && attacker.Grounded(battle) {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"stockpile", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if (move.Effect == EFFECT_SPIT_UP || move.Effect == EFFECT_SWALLOW) && attacker.Stockpile == 0 {
			return true, "But it failed!\n"
		}
		if move.Effect == EFFECT_STOCKPILE && attacker.Stockpile >= 3 {
			return true, fmt.Sprintf("%s can't stockpile any more!\n", attacker.Nickname)
		}
		return false, ""
	}},
	{"target-history", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		switch move.Effect {
		case EFFECT_MIRROR_MOVE:
			if defender.LastMove == nil || !defender.LastMove.SelectableByMirrorMove() {
				return true, "But it failed!\n"
			}
		case EFFECT_INSTRUCT:
			if defender.LastMove == nil || !defender.LastMove.SelectableByInstruct() {
				return true, "But it failed!\n"
			}
		case EFFECT_MIMIC, EFFECT_SKETCH:
			if defender.LastMove == nil || !defender.LastMove.SelectableByMimic() {
				return true, "But it failed!\n"
			}
		case EFFECT_COPYCAT, EFFECT_ME_FIRST:
			if defender.LastMove == nil {
				return true, "But it failed!\n"
			}
		case EFFECT_ENCORE:
			if defender.LastMove == nil || defender.Encore.Active() {
				return true, "But it failed!\n"
			}
		case EFFECT_DISABLE:
			if defender.LastMove == nil || defender.DisabledMove != "" {
				return true, "But it failed!\n"
			}
		case EFFECT_SPITE, EFFECT_EERIE_SPELL:
			if defender.LastMove == nil || defender.LastMove.PP == 0 {
				return true, "But it failed!\n"
			}
		case EFFECT_COUNTER:
			if attacker.LastPhysicalDamage == 0 {
				return true, "But it failed!\n"
			}
		case EFFECT_MIRROR_COAT:
			if attacker.LastSpecialDamage == 0 {
				return true, "But it failed!\n"
			}
		case EFFECT_METAL_BURST:
			if attacker.LastDamageTaken == 0 {
				return true, "But it failed!\n"
			}
		case EFFECT_SUCKER_PUNCH:
			if defender.HasMoved {
				return true, "But it failed!\n"
			}
		}
		return false, ""
	}},
	{"hp-threshold", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		switch move.Effect {
		case EFFECT_SUBSTITUTE:
			if attacker.Hp <= attacker.MaxHp/4 {
				return true, fmt.Sprintf("%s doesn't have enough health to make a substitute!\n", attacker.Nickname)
			}
			if attacker.Substitute > 0 {
				return true, fmt.Sprintf("%s already has a substitute!\n", attacker.Nickname)
			}
		case EFFECT_SHED_TAIL:
			if attacker.Hp <= attacker.MaxHp/2 {
				return true, "But it failed!\n"
			}
		case EFFECT_BELLY_DRUM, EFFECT_CLANGOROUS_SOUL:
			if attacker.Hp <= attacker.MaxHp/2 {
				return true, "But it failed!\n"
			}
		case EFFECT_ENDEAVOR:
			if defender.Hp <= attacker.Hp {
				return true, "But it failed!\n"
			}
		}
		return false, ""
	}},
	{"explosion-damp", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if lo.Contains(explosiveEffects, move.Effect) {
			if attacker.Ability(defender, move) == "damp" || defender.Ability(attacker, move) == "damp" {
				return true, fmt.Sprintf("%s can't explode!\n", attacker.Nickname)
			}
		}
		return false, ""
	}},
	{"first-turn-only", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if (move.Effect == EFFECT_FAKE_OUT || move.Effect == EFFECT_FIRST_IMPRESSION || move.Effect == EFFECT_MAT_BLOCK) && !attacker.SwitchedInThisTurn {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"last-resort", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if move.Effect != EFFECT_LAST_RESORT {
			return false, ""
		}
		for _, known := range attacker.Moves {
			if known != nil && known.Identifier != move.Identifier && !known.Used {
				return true, "But it failed!\n"
			}
		}
		return false, ""
	}},
	{"no-retreat", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if move.Effect == EFFECT_NO_RETREAT && attacker.Trapped {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"self-switch", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if !lo.Contains(selfSwitchEffects, move.Effect) || move.DamageClass != DAMAGECLASS_STATUS {
			return false, ""
		}
		trainer := battle.TrainerOf(attacker)
		if trainer != nil && len(battle.ValidSwaps(trainer)) == 0 {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"burn-up", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if move.Effect == EFFECT_BURN_UP && !attacker.HasType(move.Type) {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"poltergeist", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if move.Effect == EFFECT_POLTERGEIST && defender.HeldItem.Held() == nil {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"fling", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if move.Effect == EFFECT_FLING && (attacker.HeldItem.Get() == nil || !attacker.HeldItem.CanRemove()) {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"natural-gift", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if move.Effect == EFFECT_NATURAL_GIFT && !attacker.HeldItem.IsBerry() {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"stuff-cheeks", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if move.Effect == EFFECT_STUFF_CHEEKS && !attacker.HeldItem.IsBerry() {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"aurora-veil", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if move.Effect == EFFECT_AURORA_VEIL && battle.Weather.Get() != WEATHER_HAIL {
			return true, "But it failed!\n"
		}
		return false, ""
	}},
	{"protect-ratchet", func(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
		if !lo.Contains(protectionChanceEffects, move.Effect) {
			return false, ""
		}
		if attacker.ProtectChance > 1 && battle.Rng.IntN(attacker.ProtectChance) != 0 {
			attacker.ProtectChance = 1
			return true, "But it failed!\n"
		}
		return false, ""
	}},
}

// CheckExecutable runs the ordered precondition list; the first rule that
// fires makes the move fail outright with its message.
func CheckExecutable(attacker *Pokemon, defender *Pokemon, battle *Battle, move *Move) (bool, string) {
	for _, rule := range executabilityRules {
		blocked, msg := rule.check(attacker, defender, battle, move)
		if blocked {
			checkLogger().V(1).Info("move blocked", "rule", rule.name, "move", move.Identifier)
			return false, msg
		}
	}

	return true, ""
}
