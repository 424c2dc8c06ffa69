package porygon

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// applyMoveEffects runs the post-damage effect table. Each group consults
// its own effect id set, so a single move only ever matches one behavior per
// group.
func (b *Battle) applyMoveEffects(attacker *Pokemon, defender *Pokemon, move *Move, totalDamage int, hits int) string {
	log := ""

	log += b.applyStockpileEffects(attacker, move)
	log += b.applyHealingEffects(attacker, defender, move, totalDamage)
	log += b.applyStatusEffects(attacker, defender, move, totalDamage)
	log += b.applyStageEffects(attacker, defender, move, totalDamage)
	log += b.applyFlinchEffects(attacker, defender, move, totalDamage, hits)
	log += b.applyLockEffects(attacker, defender, move)
	log += b.applyFieldEffects(attacker, move)
	log += b.applyProtectionEffects(attacker, move)
	log += b.applySwitchEffects(attacker, defender, move)
	log += b.applyBindingEffects(attacker, defender, move)
	log += b.applySingularEffects(attacker, defender, move, totalDamage)
	log += b.applyItemMoveEffects(attacker, defender, move)
	log += b.applyLifeOrb(attacker, move, totalDamage)

	return log
}

// effectRoll is the secondary effect chance gate. Moves with no chance
// column always apply.
func (b *Battle) effectRoll(move *Move) bool {
	if move.EffectChance == nil {
		return true
	}

	return b.Rng.IntN(100) < *move.EffectChance
}

// secondaryBlocked covers the gates every on-hit secondary shares.
func (b *Battle) secondaryBlocked(attacker *Pokemon, defender *Pokemon, move *Move, totalDamage int) bool {
	if totalDamage == 0 || !defender.Alive() {
		return true
	}

	return defender.Ability(attacker, move) == "shield-dust"
}

func (b *Battle) applyStockpileEffects(attacker *Pokemon, move *Move) string {
	switch move.Effect {
	case EFFECT_STOCKPILE:
		attacker.Stockpile++
		log := fmt.Sprintf("%s stockpiled %d!\n", attacker.Nickname, attacker.Stockpile)
		log += attacker.AppendDefense(1, attacker)
		log += attacker.AppendSpDefense(1, attacker)
		return log
	case EFFECT_SPIT_UP, EFFECT_SWALLOW:
		stored := attacker.Stockpile
		attacker.Stockpile = 0
		log := attacker.AppendDefense(-stored, attacker)
		log += attacker.AppendSpDefense(-stored, attacker)
		if move.Effect == EFFECT_SWALLOW {
			fractions := map[int]int{1: 4, 2: 2, 3: 1}
			log += b.Calc.Heal(attacker, attacker.MaxHp/fractions[stored])
		}
		return log
	default:
		return ""
	}
}

func (b *Battle) applyHealingEffects(attacker *Pokemon, defender *Pokemon, move *Move, totalDamage int) string {
	drain := func(fraction float64) string {
		amount := int(float64(totalDamage) * fraction)
		if attacker.HeldItem.Name() == "big-root" {
			amount = amount * 13 / 10
		}
		if amount < 1 {
			return ""
		}
		if defender.Ability(attacker, move) == "liquid-ooze" {
			attacker.ReduceHp(amount)
			log := fmt.Sprintf("%s sucked up the liquid ooze!\n", attacker.Nickname)
			if !attacker.Alive() {
				log += attacker.Faint()
			}
			return log
		}
		return b.Calc.Heal(attacker, amount)
	}

	switch move.Effect {
	case EFFECT_HEAL_HALF, EFFECT_ROOST, EFFECT_LIFE_DEW:
		return b.Calc.Heal(attacker, attacker.MaxHp/2)
	case EFFECT_MORNING_SUN, EFFECT_SYNTHESIS, EFFECT_MOONLIGHT:
		switch b.Weather.Get() {
		case WEATHER_SUN, WEATHER_HEAVY_SUN:
			return b.Calc.Heal(attacker, attacker.MaxHp*2/3)
		case WEATHER_NONE:
			return b.Calc.Heal(attacker, attacker.MaxHp/2)
		default:
			return b.Calc.Heal(attacker, attacker.MaxHp/4)
		}
	case EFFECT_REST:
		attacker.Status.Clear()
		attacker.Status.Current = STATUS_SLEEP
		attacker.Status.SleepTurns = NewExpiringEffect(TurnPtr(2))
		log := fmt.Sprintf("%s went to sleep!\n", attacker.Nickname)
		return log + b.Calc.Heal(attacker, attacker.MaxHp)
	case EFFECT_DRAIN, EFFECT_DREAM_EATER:
		if totalDamage == 0 {
			return ""
		}
		return drain(0.5)
	case EFFECT_STRONG_DRAIN:
		if totalDamage == 0 {
			return ""
		}
		return drain(0.75)
	case EFFECT_LEECH_SEED:
		if defender.HasType(TYPENAME_GRASS) {
			return fmt.Sprintf("It doesn't affect %s...\n", defender.Nickname)
		}
		if defender.LeechSeeded {
			return "But it failed!\n"
		}
		defender.LeechSeeded = true
		return fmt.Sprintf("%s was seeded!\n", defender.Nickname)
	case EFFECT_WISH:
		side := b.SideOf(attacker)
		side.Wish = NewExpiringWish(TurnPtr(2), attacker.MaxHp/2)
		return fmt.Sprintf("%s made a wish!\n", attacker.Nickname)
	case EFFECT_HEAL_PULSE:
		return b.Calc.Heal(defender, defender.MaxHp/2)
	case EFFECT_FLORAL_HEALING:
		if b.Terrain.Get() == TERRAIN_GRASSY {
			return b.Calc.Heal(defender, defender.MaxHp*2/3)
		}
		return b.Calc.Heal(defender, defender.MaxHp/2)
	case EFFECT_STRENGTH_SAP:
		sapped := defender.Attack.CalcValue()
		log := defender.AppendAttack(-1, attacker)
		return log + b.Calc.Heal(attacker, sapped)
	case EFFECT_INGRAIN:
		attacker.Ingrained = true
		return fmt.Sprintf("%s planted its roots!\n", attacker.Nickname)
	case EFFECT_AQUA_RING:
		attacker.AquaRing = true
		return fmt.Sprintf("%s surrounded itself with a veil of water!\n", attacker.Nickname)
	default:
		return ""
	}
}

func (b *Battle) applyStatusEffects(attacker *Pokemon, defender *Pokemon, move *Move, totalDamage int) string {
	apply := func(status string) string {
		return defender.Status.ApplyStatus(status, b, attacker)
	}

	// Unconditional infliction is the whole point of these moves, so no
	// chance roll and no shield dust.
	if status, ok := unconditionalStatusEffects[move.Effect]; ok {
		if move.Effect == EFFECT_INFERNO && totalDamage == 0 {
			return ""
		}
		return apply(status)
	}

	switch move.Effect {
	case EFFECT_CONFUSE:
		return defender.Confuse(b)
	case EFFECT_SWAGGER:
		log := defender.AppendAttack(2, attacker)
		return log + defender.Confuse(b)
	case EFFECT_FLATTER:
		log := defender.AppendSpAttack(1, attacker)
		return log + defender.Confuse(b)
	case EFFECT_ATTRACT:
		if defender.Gender == attacker.Gender || defender.Gender == "" || attacker.Gender == "" {
			return "But it failed!\n"
		}
		defender.Infatuation = attacker
		return fmt.Sprintf("%s fell in love!\n", defender.Nickname)
	case EFFECT_YAWN:
		if defender.Status.Active() || defender.Yawn.Active() {
			return "But it failed!\n"
		}
		defender.Yawn = NewExpiringEffect(TurnPtr(2))
		return fmt.Sprintf("%s grew drowsy!\n", defender.Nickname)
	case EFFECT_TOXIC_THREAD:
		log := apply(STATUS_POISON)
		return log + defender.AppendSpeed(-1, attacker)
	case EFFECT_SPARKLING_ARIA:
		if totalDamage > 0 && defender.Status.Current == STATUS_BURN {
			return defender.Status.Cure()
		}
		return ""
	case EFFECT_WAKE_UP_SLAP:
		if totalDamage > 0 && defender.Status.Current == STATUS_SLEEP {
			return defender.Status.Cure()
		}
		return ""
	case EFFECT_SMELLING_SALTS:
		if totalDamage > 0 && defender.Status.Current == STATUS_PARA {
			return defender.Status.Cure()
		}
		return ""
	}

	if b.secondaryBlocked(attacker, defender, move, totalDamage) || !b.effectRoll(move) {
		return ""
	}

	switch move.Effect {
	case EFFECT_BURN_HIT, EFFECT_SCALD:
		return apply(STATUS_BURN)
	case EFFECT_POISON_HIT:
		return apply(STATUS_POISON)
	case EFFECT_POISON_FANG:
		return apply(STATUS_TOXIC)
	case EFFECT_PARALYZE_HIT:
		return apply(STATUS_PARA)
	case EFFECT_FREEZE_HIT:
		return apply(STATUS_FROZEN)
	case EFFECT_CONFUSE_HIT:
		return defender.Confuse(b)
	case EFFECT_TRI_ATTACK:
		switch b.Rng.IntN(3) {
		case 0:
			return apply(STATUS_BURN)
		case 1:
			return apply(STATUS_PARA)
		default:
			return apply(STATUS_FROZEN)
		}
	default:
		return ""
	}
}

type stageDelta struct {
	stat   string
	change int
}

// stageMoveEffect describes one stat stage move: who it points at, whether
// it rides on a landed hit, and the deltas it applies.
type stageMoveEffect struct {
	onSelf bool
	onHit  bool
	deltas []stageDelta
}

var stageMoveEffects = map[int]stageMoveEffect{
	EFFECT_ATTACK_UP_1:  {onSelf: true, deltas: []stageDelta{{STAT_ATTACK, 1}}},
	EFFECT_DEFENSE_UP_1: {onSelf: true, deltas: []stageDelta{{STAT_DEFENSE, 1}}},
	EFFECT_SPATK_UP_1:   {onSelf: true, deltas: []stageDelta{{STAT_SPATTACK, 1}}},
	EFFECT_EVASION_UP_1: {onSelf: true, deltas: []stageDelta{{STAT_EVASION, 1}}},
	EFFECT_ATTACK_UP_2:  {onSelf: true, deltas: []stageDelta{{STAT_ATTACK, 2}}},
	EFFECT_DEFENSE_UP_2: {onSelf: true, deltas: []stageDelta{{STAT_DEFENSE, 2}}},
	EFFECT_SPEED_UP_2:   {onSelf: true, deltas: []stageDelta{{STAT_SPEED, 2}}},
	EFFECT_SPATK_UP_2:   {onSelf: true, deltas: []stageDelta{{STAT_SPATTACK, 2}}},
	EFFECT_SPDEF_UP_2:   {onSelf: true, deltas: []stageDelta{{STAT_SPDEF, 2}}},
	EFFECT_AUTOTOMIZE:   {onSelf: true, deltas: []stageDelta{{STAT_SPEED, 2}}},
	EFFECT_COSMIC_POWER: {onSelf: true, deltas: []stageDelta{{STAT_DEFENSE, 1}, {STAT_SPDEF, 1}}},
	EFFECT_BULK_UP:      {onSelf: true, deltas: []stageDelta{{STAT_ATTACK, 1}, {STAT_DEFENSE, 1}}},
	EFFECT_CALM_MIND:    {onSelf: true, deltas: []stageDelta{{STAT_SPATTACK, 1}, {STAT_SPDEF, 1}}},
	EFFECT_DRAGON_DANCE: {onSelf: true, deltas: []stageDelta{{STAT_ATTACK, 1}, {STAT_SPEED, 1}}},
	EFFECT_QUIVER_DANCE: {onSelf: true, deltas: []stageDelta{{STAT_SPATTACK, 1}, {STAT_SPDEF, 1}, {STAT_SPEED, 1}}},
	EFFECT_SHIFT_GEAR:   {onSelf: true, deltas: []stageDelta{{STAT_SPEED, 2}, {STAT_ATTACK, 1}}},
	EFFECT_COIL:         {onSelf: true, deltas: []stageDelta{{STAT_ATTACK, 1}, {STAT_DEFENSE, 1}, {STAT_ACCURACY, 1}}},
	EFFECT_HONE_CLAWS:   {onSelf: true, deltas: []stageDelta{{STAT_ATTACK, 1}, {STAT_ACCURACY, 1}}},
	EFFECT_WORK_UP:      {onSelf: true, deltas: []stageDelta{{STAT_ATTACK, 1}, {STAT_SPATTACK, 1}}},
	EFFECT_CHARGE:       {onSelf: true, deltas: []stageDelta{{STAT_SPDEF, 1}}},
	EFFECT_SHELL_SMASH: {onSelf: true, deltas: []stageDelta{
		{STAT_ATTACK, 2}, {STAT_SPATTACK, 2}, {STAT_SPEED, 2}, {STAT_DEFENSE, -1}, {STAT_SPDEF, -1},
	}},
	EFFECT_NO_RETREAT: {onSelf: true, deltas: []stageDelta{
		{STAT_ATTACK, 1}, {STAT_DEFENSE, 1}, {STAT_SPATTACK, 1}, {STAT_SPDEF, 1}, {STAT_SPEED, 1},
	}},
	EFFECT_CLANGOROUS_SOUL: {onSelf: true, deltas: []stageDelta{
		{STAT_ATTACK, 1}, {STAT_DEFENSE, 1}, {STAT_SPATTACK, 1}, {STAT_SPDEF, 1}, {STAT_SPEED, 1},
	}},

	EFFECT_ATTACK_DOWN_1:   {deltas: []stageDelta{{STAT_ATTACK, -1}}},
	EFFECT_DEFENSE_DOWN_1:  {deltas: []stageDelta{{STAT_DEFENSE, -1}}},
	EFFECT_SPEED_DOWN_1:    {deltas: []stageDelta{{STAT_SPEED, -1}}},
	EFFECT_ACCURACY_DOWN_1: {deltas: []stageDelta{{STAT_ACCURACY, -1}}},
	EFFECT_EVASION_DOWN_1:  {deltas: []stageDelta{{STAT_EVASION, -1}}},
	EFFECT_ATTACK_DOWN_2:   {deltas: []stageDelta{{STAT_ATTACK, -2}}},
	EFFECT_DEFENSE_DOWN_2:  {deltas: []stageDelta{{STAT_DEFENSE, -2}}},
	EFFECT_SPEED_DOWN_2:    {deltas: []stageDelta{{STAT_SPEED, -2}}},
	EFFECT_SPATK_DOWN_2:    {deltas: []stageDelta{{STAT_SPATTACK, -2}}},
	EFFECT_SPDEF_DOWN_2:    {deltas: []stageDelta{{STAT_SPDEF, -2}}},
	EFFECT_TICKLE:          {deltas: []stageDelta{{STAT_ATTACK, -1}, {STAT_DEFENSE, -1}}},
	EFFECT_NOBLE_ROAR:      {deltas: []stageDelta{{STAT_ATTACK, -1}, {STAT_SPATTACK, -1}}},
	EFFECT_TAR_SHOT:        {deltas: []stageDelta{{STAT_SPEED, -1}}},

	EFFECT_ACID_SPRAY:        {onHit: true, deltas: []stageDelta{{STAT_SPDEF, -2}}},
	EFFECT_ACCURACY_DOWN_HIT: {onHit: true, deltas: []stageDelta{{STAT_ACCURACY, -1}}},
	EFFECT_ATTACK_DOWN_HIT:   {onHit: true, deltas: []stageDelta{{STAT_ATTACK, -1}}},
	EFFECT_DEFENSE_DOWN_HIT:  {onHit: true, deltas: []stageDelta{{STAT_DEFENSE, -1}}},
	EFFECT_SPATK_DOWN_HIT:    {onHit: true, deltas: []stageDelta{{STAT_SPATTACK, -1}}},
	EFFECT_SPDEF_DOWN_HIT:    {onHit: true, deltas: []stageDelta{{STAT_SPDEF, -1}}},
	EFFECT_SPEED_DOWN_HIT:    {onHit: true, deltas: []stageDelta{{STAT_SPEED, -1}}},
	EFFECT_LASH_OUT:          {onHit: true, deltas: []stageDelta{{STAT_ATTACK, -1}}},

	EFFECT_ATTACK_UP_HIT:  {onSelf: true, onHit: true, deltas: []stageDelta{{STAT_ATTACK, 1}}},
	EFFECT_DEFENSE_UP_HIT: {onSelf: true, onHit: true, deltas: []stageDelta{{STAT_DEFENSE, 1}}},
	EFFECT_FLAME_CHARGE:   {onSelf: true, onHit: true, deltas: []stageDelta{{STAT_SPEED, 1}}},
	EFFECT_CHARGE_BEAM:    {onSelf: true, onHit: true, deltas: []stageDelta{{STAT_SPATTACK, 1}}},
	EFFECT_ALL_STATS_UP_HIT: {onSelf: true, onHit: true, deltas: []stageDelta{
		{STAT_ATTACK, 1}, {STAT_DEFENSE, 1}, {STAT_SPATTACK, 1}, {STAT_SPDEF, 1}, {STAT_SPEED, 1},
	}},

	EFFECT_OVERHEAT:     {onSelf: true, onHit: true, deltas: []stageDelta{{STAT_SPATTACK, -2}}},
	EFFECT_CLOSE_COMBAT: {onSelf: true, onHit: true, deltas: []stageDelta{{STAT_DEFENSE, -1}, {STAT_SPDEF, -1}}},
	EFFECT_HAMMER_ARM:   {onSelf: true, onHit: true, deltas: []stageDelta{{STAT_SPEED, -1}}},
}

func (b *Battle) applyStageEffects(attacker *Pokemon, defender *Pokemon, move *Move, totalDamage int) string {
	switch move.Effect {
	case EFFECT_MINIMIZE:
		attacker.Minimized = true
		return attacker.AppendEvasion(2, attacker)
	case EFFECT_DEFENSE_CURL:
		return attacker.AppendDefense(1, attacker)
	case EFFECT_BELLY_DRUM:
		attacker.ReduceHp(attacker.MaxHp / 2)
		attacker.Attack.Stage = 6
		return fmt.Sprintf("%s cut its own HP and maximized its Attack!\n", attacker.Nickname)
	case EFFECT_GROWTH:
		amount := 1
		if weather := b.Weather.Get(); weather == WEATHER_SUN || weather == WEATHER_HEAVY_SUN {
			amount = 2
		}
		log := attacker.AppendAttack(amount, attacker)
		return log + attacker.AppendSpAttack(amount, attacker)
	case EFFECT_FOCUS_ENERGY, EFFECT_LASER_FOCUS:
		attacker.FocusEnergy = true
		return fmt.Sprintf("%s is getting pumped!\n", attacker.Nickname)
	case EFFECT_HAZE:
		log := attacker.ResetStages()
		return log + defender.ResetStages()
	case EFFECT_CLEAR_SMOG:
		if totalDamage == 0 {
			return ""
		}
		return defender.ResetStages()
	case EFFECT_TOPSY_TURVY:
		for _, stat := range []*Stat{&defender.Attack, &defender.Defense, &defender.SpAttack, &defender.SpDefense, &defender.Speed} {
			stat.Stage = -stat.Stage
		}
		defender.AccuracyStage = -defender.AccuracyStage
		defender.EvasionStage = -defender.EvasionStage
		return fmt.Sprintf("%s's stat changes were all reversed!\n", defender.Nickname)
	case EFFECT_ACUPRESSURE:
		stats := []string{STAT_ATTACK, STAT_DEFENSE, STAT_SPATTACK, STAT_SPDEF, STAT_SPEED, STAT_ACCURACY, STAT_EVASION}
		return attacker.AppendStat(stats[b.Rng.IntN(len(stats))], 2, attacker)
	case EFFECT_FELL_STINGER:
		if totalDamage > 0 && !defender.Alive() {
			return attacker.AppendAttack(3, attacker)
		}
		return ""
	case EFFECT_PARTING_SHOT:
		log := defender.AppendAttack(-1, attacker)
		return log + defender.AppendSpAttack(-1, attacker)
	case EFFECT_MEMENTO:
		log := defender.AppendAttack(-2, attacker)
		log += defender.AppendSpAttack(-2, attacker)
		attacker.ReduceHp(attacker.Hp)
		return log + attacker.Faint()
	}

	effect, ok := stageMoveEffects[move.Effect]
	if !ok {
		return ""
	}

	target := defender
	if effect.onSelf {
		target = attacker
	}

	if effect.onHit {
		if move.DamageClass != DAMAGECLASS_STATUS {
			if totalDamage == 0 || !b.effectRoll(move) {
				return ""
			}
			if !effect.onSelf && b.secondaryBlocked(attacker, defender, move, totalDamage) {
				return ""
			}
		}
	}
	if !effect.onSelf && !target.Alive() {
		return ""
	}

	cause := attacker
	log := ""
	for _, delta := range effect.deltas {
		log += target.AppendStat(delta.stat, delta.change, cause)
	}

	// HP payment moves only collect after the boosts went through.
	if move.Effect == EFFECT_CLANGOROUS_SOUL {
		attacker.ReduceHp(attacker.MaxHp / 3)
	}
	if move.Effect == EFFECT_NO_RETREAT {
		attacker.Trapped = true
	}

	return log
}

func (b *Battle) applyFlinchEffects(attacker *Pokemon, defender *Pokemon, move *Move, totalDamage int, hits int) string {
	if move.Effect == EFFECT_FLINCH_HIT || move.Effect == EFFECT_FAKE_OUT || move.Effect == EFFECT_FIRST_IMPRESSION {
		if b.secondaryBlocked(attacker, defender, move, totalDamage) {
			return ""
		}
		if !defender.HasMoved && b.effectRoll(move) {
			defender.Flinch()
		}
		return ""
	}

	// King's Rock style items add a flat 10% to moves with no flinch of
	// their own.
	flincher := attacker.HeldItem.Name() == "kings-rock" || attacker.HeldItem.Name() == "razor-fang" ||
		attacker.Ability(defender, move) == "stench"
	if !flincher || move.DamageClass == DAMAGECLASS_STATUS {
		return ""
	}
	if b.secondaryBlocked(attacker, defender, move, totalDamage) || defender.HasMoved {
		return ""
	}
	if b.Rng.IntN(100) < 10*hits {
		defender.Flinch()
	}

	return ""
}

func (b *Battle) applyLockEffects(attacker *Pokemon, defender *Pokemon, move *Move) string {
	switch move.Effect {
	case EFFECT_DISABLE:
		defender.DisabledMove = defender.LastMove.Identifier
		defender.DisableTimer = NewExpiringEffect(TurnPtr(4))
		return fmt.Sprintf("%s's %s was disabled!\n", defender.Nickname, defender.LastMove.PrettyName)
	case EFFECT_TAUNT:
		defender.Taunt = NewExpiringEffect(TurnPtr(3))
		return fmt.Sprintf("%s fell for the taunt!\n", defender.Nickname)
	case EFFECT_ENCORE:
		defender.Encore = NewExpiringEffect(TurnPtr(3))
		defender.EncoreMove = defender.LastMove.Identifier
		return fmt.Sprintf("%s got an encore!\n", defender.Nickname)
	case EFFECT_TORMENT:
		defender.Torment = true
		return fmt.Sprintf("%s was subjected to torment!\n", defender.Nickname)
	case EFFECT_IMPRISON:
		attacker.Imprison = true
		return fmt.Sprintf("%s sealed the opponent's moves!\n", attacker.Nickname)
	case EFFECT_HEAL_BLOCK:
		defender.HealBlock = NewExpiringEffect(TurnPtr(5))
		return fmt.Sprintf("%s was prevented from healing!\n", defender.Nickname)
	case EFFECT_THROAT_CHOP:
		defender.Silenced = NewExpiringEffect(TurnPtr(2))
		return ""
	case EFFECT_EMBARGO:
		defender.Embargo = NewExpiringEffect(TurnPtr(5))
		return fmt.Sprintf("%s can't use items anymore!\n", defender.Nickname)
	case EFFECT_TELEKINESIS:
		defender.Telekinesis = NewExpiringEffect(TurnPtr(3))
		return fmt.Sprintf("%s was hurled into the air!\n", defender.Nickname)
	case EFFECT_MAGNET_RISE:
		attacker.MagnetRise = NewExpiringEffect(TurnPtr(5))
		return fmt.Sprintf("%s levitated with electromagnetism!\n", attacker.Nickname)
	default:
		return ""
	}
}

func (b *Battle) applyFieldEffects(attacker *Pokemon, move *Move) string {
	switch move.Effect {
	case EFFECT_RAIN_DANCE:
		return b.Weather.Set(WEATHER_RAIN, attacker)
	case EFFECT_SUNNY_DAY:
		return b.Weather.Set(WEATHER_SUN, attacker)
	case EFFECT_SANDSTORM:
		return b.Weather.Set(WEATHER_SANDSTORM, attacker)
	case EFFECT_HAIL:
		return b.Weather.Set(WEATHER_HAIL, attacker)
	case EFFECT_ELECTRIC_TERRAIN:
		return b.Terrain.Set(TERRAIN_ELECTRIC, attacker)
	case EFFECT_GRASSY_TERRAIN:
		return b.Terrain.Set(TERRAIN_GRASSY, attacker)
	case EFFECT_MISTY_TERRAIN:
		return b.Terrain.Set(TERRAIN_MISTY, attacker)
	case EFFECT_PSYCHIC_TERRAIN:
		return b.Terrain.Set(TERRAIN_PSYCHIC, attacker)
	case EFFECT_TRICK_ROOM:
		if b.TrickRoom.Active() {
			b.TrickRoom = ExpiringEffect{}
			return "The twisted dimensions returned to normal!\n"
		}
		b.TrickRoom = NewExpiringEffect(TurnPtr(5))
		return fmt.Sprintf("%s twisted the dimensions!\n", attacker.Nickname)
	case EFFECT_MAGIC_ROOM:
		if b.MagicRoom.Active() {
			b.MagicRoom = ExpiringEffect{}
			return "The area returned to normal!\n"
		}
		b.MagicRoom = NewExpiringEffect(TurnPtr(5))
		return "A bizarre area was created where held items lose their effects!\n"
	case EFFECT_WONDER_ROOM:
		if b.WonderRoom.Active() {
			b.WonderRoom = ExpiringEffect{}
			return "Wonder Room wore off!\n"
		}
		b.WonderRoom = NewExpiringEffect(TurnPtr(5))
		return "A bizarre area was created where Defense and Sp. Def stats are swapped!\n"
	case EFFECT_GRAVITY:
		b.Gravity = NewExpiringEffect(TurnPtr(5))
		return "Gravity intensified!\n"
	default:
		return ""
	}
}

func (b *Battle) applyProtectionEffects(attacker *Pokemon, move *Move) string {
	if !lo.Contains(protectVariantEffects, move.Effect) {
		return ""
	}

	attacker.Protect = true
	attacker.ProtectVariant = move.Effect
	attacker.ProtectChance *= 3

	if move.Effect == EFFECT_ENDURE {
		return fmt.Sprintf("%s braced itself!\n", attacker.Nickname)
	}

	return fmt.Sprintf("%s protected itself!\n", attacker.Nickname)
}

// forcedSwitch drags a random valid replacement in for the trainer. False
// when the bench has nobody left.
func (b *Battle) forcedSwitch(t *Trainer) (string, bool) {
	swaps := b.ValidSwaps(t)
	if len(swaps) == 0 {
		return "", false
	}

	return b.SwitchPoke(t, swaps[b.Rng.IntN(len(swaps))]), true
}

func (b *Battle) applySwitchEffects(attacker *Pokemon, defender *Pokemon, move *Move) string {
	if lo.Contains(forceSwitchEffects, move.Effect) {
		if !defender.Alive() {
			return ""
		}
		if defender.Ability(attacker, move) == "suction-cups" {
			return fmt.Sprintf("%s anchors itself with its suction cups!\n", defender.Nickname)
		}
		if defender.Ingrained {
			return fmt.Sprintf("%s anchored itself with its roots!\n", defender.Nickname)
		}
		trainer := b.TrainerOf(defender)
		if trainer == nil {
			return ""
		}
		log, ok := b.forcedSwitch(trainer)
		if !ok {
			return ""
		}
		return fmt.Sprintf("%s was dragged out!\n", defender.Nickname) + log
	}

	switch move.Effect {
	case EFFECT_U_TURN, EFFECT_PARTING_SHOT, EFFECT_CHILLY_RECEPTION:
		trainer := b.TrainerOf(attacker)
		if trainer == nil {
			return ""
		}
		log, ok := b.forcedSwitch(trainer)
		if !ok {
			return ""
		}
		return log
	case EFFECT_BATON_PASS, EFFECT_SHED_TAIL:
		trainer := b.TrainerOf(attacker)
		if trainer == nil {
			return ""
		}
		if move.Effect == EFFECT_SHED_TAIL {
			attacker.ReduceHp(attacker.MaxHp / 2)
			attacker.Substitute = attacker.MaxHp / 4
		}
		snapshot := NewBatonPass(attacker)
		log, ok := b.forcedSwitch(trainer)
		if !ok {
			return ""
		}
		snapshot.Apply(trainer.Active())
		return log
	case EFFECT_HEALING_WISH:
		trainer := b.TrainerOf(attacker)
		if trainer == nil {
			return ""
		}
		attacker.ReduceHp(attacker.Hp)
		log := attacker.Faint()
		switchLog, ok := b.forcedSwitch(trainer)
		if !ok {
			return log
		}
		incoming := trainer.Active()
		incoming.RestoreHp(incoming.MaxHp)
		log += switchLog
		log += incoming.Status.Cure()
		return log + fmt.Sprintf("%s became healthy!\n", incoming.Nickname)
	default:
		return ""
	}
}

func (b *Battle) applyBindingEffects(attacker *Pokemon, defender *Pokemon, move *Move) string {
	if !lo.Contains(bindingEffects, move.Effect) || !defender.Alive() {
		return ""
	}

	switch move.Effect {
	case EFFECT_BIND:
		if defender.BindingTimer.Active() {
			return ""
		}
		turns := b.Rng.IntN(2) + 4
		if attacker.HeldItem.Name() == "grip-claw" {
			turns = 7
		}
		defender.BindingMove = move.PrettyName
		defender.BindingTimer = NewExpiringEffect(TurnPtr(turns))
		defender.Trapped = true
		return fmt.Sprintf("%s was squeezed by %s!\n", defender.Nickname, move.PrettyName)
	default:
		// Trapping without residual damage.
		if defender.HasType(TYPENAME_GHOST) {
			return ""
		}
		defender.Trapped = true
		return fmt.Sprintf("%s can no longer escape!\n", defender.Nickname)
	}
}

func (b *Battle) applySingularEffects(attacker *Pokemon, defender *Pokemon, move *Move, totalDamage int) string {
	switch move.Effect {
	case EFFECT_PAIN_SPLIT:
		average := (attacker.Hp + defender.Hp) / 2
		attacker.Hp = average
		if attacker.Hp > attacker.MaxHp {
			attacker.Hp = attacker.MaxHp
		}
		defender.Hp = average
		if defender.Hp > defender.MaxHp {
			defender.Hp = defender.MaxHp
		}
		return "The battlers shared their pain!\n"
	case EFFECT_SPITE:
		defender.LastMove.PP -= 4
		if defender.LastMove.PP < 0 {
			defender.LastMove.PP = 0
		}
		return fmt.Sprintf("%s's %s lost 4 PP!\n", defender.Nickname, defender.LastMove.PrettyName)
	case EFFECT_EERIE_SPELL:
		if totalDamage == 0 || defender.LastMove == nil {
			return ""
		}
		defender.LastMove.PP -= 3
		if defender.LastMove.PP < 0 {
			defender.LastMove.PP = 0
		}
		return fmt.Sprintf("%s's %s lost 3 PP!\n", defender.Nickname, defender.LastMove.PrettyName)
	case EFFECT_HEAL_BELL:
		trainer := b.TrainerOf(attacker)
		log := "A bell chimed!\n"
		if trainer == nil {
			return log
		}
		for _, member := range trainer.Party {
			if member.Alive() {
				log += member.Status.Cure()
			}
		}
		return log
	case EFFECT_PSYCHO_SHIFT:
		if !attacker.Status.Active() {
			return "But it failed!\n"
		}
		shifted := attacker.Status.Current
		log := defender.Status.ApplyStatus(shifted, b, attacker)
		if defender.Status.Current == shifted {
			log += attacker.Status.Cure()
		}
		return log
	case EFFECT_DEFOG:
		side := b.SideOf(defender)
		side.ClearHazards()
		side.Reflect = ExpiringEffect{}
		side.LightScreen = ExpiringEffect{}
		side.AuroraVeil = ExpiringEffect{}
		b.SideOf(attacker).ClearHazards()
		log := defender.AppendEvasion(-1, attacker)
		return log + "The field was cleared!\n"
	case EFFECT_COURT_CHANGE:
		b.Trainer1.Side, b.Trainer2.Side = b.Trainer2.Side, b.Trainer1.Side
		return fmt.Sprintf("%s swapped the battle effects affecting each side of the field!\n", attacker.Nickname)
	case EFFECT_PERISH_SONG:
		log := "All Pokemon that heard the song will faint in three turns!\n"
		for _, p := range []*Pokemon{attacker, defender} {
			if !p.PerishCount.Active() {
				p.PerishCount = NewExpiringEffect(TurnPtr(3))
			}
		}
		return log
	case EFFECT_NIGHTMARE:
		defender.Nightmare = true
		return fmt.Sprintf("%s began having a nightmare!\n", defender.Nickname)
	case EFFECT_SPIKES:
		side := b.SideOf(defender)
		if side.Spikes >= 3 {
			return "But it failed!\n"
		}
		side.Spikes++
		return fmt.Sprintf("Spikes were scattered all around %s's team!\n", defender.Nickname)
	case EFFECT_TOXIC_SPIKES:
		side := b.SideOf(defender)
		if side.ToxicSpikes >= 2 {
			return "But it failed!\n"
		}
		side.ToxicSpikes++
		return fmt.Sprintf("Poison spikes were scattered all around %s's team!\n", defender.Nickname)
	case EFFECT_STEALTH_ROCK:
		side := b.SideOf(defender)
		if side.StealthRock {
			return "But it failed!\n"
		}
		side.StealthRock = true
		return fmt.Sprintf("Pointed stones float in the air around %s's team!\n", defender.Nickname)
	case EFFECT_STICKY_WEB:
		side := b.SideOf(defender)
		if side.StickyWeb {
			return "But it failed!\n"
		}
		side.StickyWeb = true
		return fmt.Sprintf("A sticky web spreads out beneath %s's team!\n", defender.Nickname)
	case EFFECT_RAPID_SPIN, EFFECT_MORTAL_SPIN:
		side := b.SideOf(attacker)
		side.ClearHazards()
		attacker.LeechSeeded = false
		attacker.BindingMove = ""
		attacker.BindingTimer = ExpiringEffect{}
		log := fmt.Sprintf("%s blew away the hazards on its side!\n", attacker.Nickname)
		if move.Effect == EFFECT_MORTAL_SPIN && defender.Alive() && totalDamage > 0 {
			log += defender.Status.ApplyStatus(STATUS_POISON, b, attacker)
		}
		return log
	case EFFECT_TIDY_UP:
		b.SideOf(attacker).ClearHazards()
		b.SideOf(defender).ClearHazards()
		attacker.Substitute = 0
		defender.Substitute = 0
		log := "Tidying up complete!\n"
		log += attacker.AppendAttack(1, attacker)
		return log + attacker.AppendSpeed(1, attacker)
	case EFFECT_PSYCH_UP:
		attacker.Attack.Stage = defender.Attack.Stage
		attacker.Defense.Stage = defender.Defense.Stage
		attacker.SpAttack.Stage = defender.SpAttack.Stage
		attacker.SpDefense.Stage = defender.SpDefense.Stage
		attacker.Speed.Stage = defender.Speed.Stage
		attacker.AccuracyStage = defender.AccuracyStage
		attacker.EvasionStage = defender.EvasionStage
		return fmt.Sprintf("%s copied %s's stat changes!\n", attacker.Nickname, defender.Nickname)
	case EFFECT_CONVERSION:
		if len(attacker.Moves) == 0 || attacker.Moves[0] == nil {
			return "But it failed!\n"
		}
		newType := attacker.Moves[0].Type
		attacker.Types = []string{newType}
		return fmt.Sprintf("%s became the %s type!\n", attacker.Nickname, capitalize(newType))
	case EFFECT_CONVERSION_2:
		if defender.LastMove == nil {
			return "But it failed!\n"
		}
		resisting := resistingType(defender.LastMove.Type)
		if resisting == "" {
			return "But it failed!\n"
		}
		attacker.Types = []string{resisting}
		return fmt.Sprintf("%s became the %s type!\n", attacker.Nickname, capitalize(resisting))
	case EFFECT_SOAK:
		defender.Types = []string{TYPENAME_WATER}
		return fmt.Sprintf("%s transformed into the Water type!\n", defender.Nickname)
	case EFFECT_MAGIC_POWDER:
		defender.Types = []string{TYPENAME_PSYCHIC}
		return fmt.Sprintf("%s transformed into the Psychic type!\n", defender.Nickname)
	case EFFECT_TRICK_OR_TREAT:
		if !defender.HasType(TYPENAME_GHOST) {
			defender.Types = append(defender.Types, TYPENAME_GHOST)
		}
		return fmt.Sprintf("The Ghost type was added to %s!\n", defender.Nickname)
	case EFFECT_FORESTS_CURSE:
		if !defender.HasType(TYPENAME_GRASS) {
			defender.Types = append(defender.Types, TYPENAME_GRASS)
		}
		return fmt.Sprintf("The Grass type was added to %s!\n", defender.Nickname)
	case EFFECT_REFLECT_TYPE:
		attacker.Types = append([]string{}, defender.Types...)
		return fmt.Sprintf("%s's type became the same as %s's!\n", attacker.Nickname, defender.Nickname)
	case EFFECT_BURN_UP:
		kept := []string{}
		for _, t := range attacker.Types {
			if t != move.Type {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			kept = []string{TYPENAME_TYPELESS}
		}
		attacker.Types = kept
		return fmt.Sprintf("%s burned itself out!\n", attacker.Nickname)
	case EFFECT_ROLE_PLAY:
		attacker.AbilityIdent = defender.Ability(nil, nil)
		return fmt.Sprintf("%s copied %s's ability!\n", attacker.Nickname, defender.Nickname)
	case EFFECT_SKILL_SWAP:
		attacker.AbilityIdent, defender.AbilityIdent = defender.AbilityIdent, attacker.AbilityIdent
		return fmt.Sprintf("%s swapped abilities with its target!\n", attacker.Nickname)
	case EFFECT_ENTRAINMENT:
		defender.AbilityIdent = attacker.AbilityIdent
		return fmt.Sprintf("%s acquired %s's ability!\n", defender.Nickname, attacker.Nickname)
	case EFFECT_GASTRO_ACID:
		defender.AbilitySuppressed = true
		return fmt.Sprintf("%s's ability was suppressed!\n", defender.Nickname)
	case EFFECT_SIMPLE_BEAM:
		defender.AbilityIdent = "simple"
		return fmt.Sprintf("%s acquired Simple!\n", defender.Nickname)
	case EFFECT_WORRY_SEED:
		defender.AbilityIdent = "insomnia"
		return fmt.Sprintf("%s acquired Insomnia!\n", defender.Nickname)
	case EFFECT_CORE_ENFORCER:
		if totalDamage > 0 && defender.HasMoved {
			defender.AbilitySuppressed = true
			return fmt.Sprintf("%s's ability was suppressed!\n", defender.Nickname)
		}
		return ""
	case EFFECT_REFLECT:
		side := b.SideOf(attacker)
		if side.Reflect.Active() {
			return "But it failed!\n"
		}
		side.Reflect = NewExpiringEffect(TurnPtr(b.screenTurns(attacker)))
		return fmt.Sprintf("Reflect raised %s's team's defense!\n", attacker.Nickname)
	case EFFECT_LIGHT_SCREEN:
		side := b.SideOf(attacker)
		if side.LightScreen.Active() {
			return "But it failed!\n"
		}
		side.LightScreen = NewExpiringEffect(TurnPtr(b.screenTurns(attacker)))
		return fmt.Sprintf("Light Screen raised %s's team's special defense!\n", attacker.Nickname)
	case EFFECT_AURORA_VEIL:
		side := b.SideOf(attacker)
		if side.AuroraVeil.Active() {
			return "But it failed!\n"
		}
		side.AuroraVeil = NewExpiringEffect(TurnPtr(b.screenTurns(attacker)))
		return fmt.Sprintf("Aurora Veil protected %s's team!\n", attacker.Nickname)
	case EFFECT_SAFEGUARD:
		side := b.SideOf(attacker)
		if side.Safeguard.Active() {
			return "But it failed!\n"
		}
		side.Safeguard = NewExpiringEffect(TurnPtr(5))
		return fmt.Sprintf("%s's team became cloaked in a mystical veil!\n", attacker.Nickname)
	case EFFECT_MIST:
		side := b.SideOf(attacker)
		if side.Mist.Active() {
			return "But it failed!\n"
		}
		side.Mist = NewExpiringEffect(TurnPtr(5))
		return fmt.Sprintf("%s's team became shrouded in mist!\n", attacker.Nickname)
	case EFFECT_TAILWIND:
		side := b.SideOf(attacker)
		if side.Tailwind.Active() {
			return "But it failed!\n"
		}
		side.Tailwind = NewExpiringEffect(TurnPtr(4))
		return fmt.Sprintf("A strong wind blew behind %s's team!\n", attacker.Nickname)
	case EFFECT_FORESIGHT, EFFECT_MIRACLE_EYE:
		defender.Identified = true
		return fmt.Sprintf("%s was identified!\n", defender.Nickname)
	case EFFECT_LOCK_ON:
		attacker.LockedOn = true
		return fmt.Sprintf("%s took aim at %s!\n", attacker.Nickname, defender.Nickname)
	case EFFECT_MIMIC, EFFECT_SKETCH:
		copied := defender.LastMove.Copy()
		if move.Effect == EFFECT_MIMIC {
			copied.PP = 5
			copied.StartingPP = 5
		}
		for i, known := range attacker.Moves {
			if known != nil && known.Identifier == move.Identifier {
				attacker.Moves[i] = copied
				break
			}
		}
		return fmt.Sprintf("%s learned %s!\n", attacker.Nickname, copied.PrettyName)
	case EFFECT_TRANSFORM:
		return attacker.Transform(defender)
	case EFFECT_SUBSTITUTE:
		cost := attacker.MaxHp / 4
		attacker.ReduceHp(cost)
		attacker.Substitute = cost
		return fmt.Sprintf("%s put in a substitute!\n", attacker.Nickname)
	case EFFECT_DESTINY_BOND:
		attacker.DestinyBond = true
		return fmt.Sprintf("%s is hoping to take its attacker down with it!\n", attacker.Nickname)
	case EFFECT_CURSE:
		if attacker.HasType(TYPENAME_GHOST) {
			attacker.ReduceHp(attacker.MaxHp / 2)
			defender.Cursed = true
			log := fmt.Sprintf("%s cut its own HP and laid a curse on %s!\n", attacker.Nickname, defender.Nickname)
			if !attacker.Alive() {
				log += attacker.Faint()
			}
			return log
		}
		log := attacker.AppendAttack(1, attacker)
		log += attacker.AppendDefense(1, attacker)
		return log + attacker.AppendSpeed(-1, attacker)
	case EFFECT_SNATCH:
		attacker.Snatching = true
		return fmt.Sprintf("%s waits for a target to make a move!\n", attacker.Nickname)
	case EFFECT_MAGIC_COAT:
		attacker.MagicCoat = true
		return fmt.Sprintf("%s shrouded itself with Magic Coat!\n", attacker.Nickname)
	case EFFECT_SMACK_DOWN, EFFECT_THOUSAND_ARROWS:
		if totalDamage > 0 && defender.Alive() && !defender.Grounded(b) {
			defender.SmackedDown = true
			defender.MagnetRise = ExpiringEffect{}
			defender.Telekinesis = ExpiringEffect{}
			return fmt.Sprintf("%s fell straight down!\n", defender.Nickname)
		}
		return ""
	case EFFECT_FINAL_GAMBIT:
		if totalDamage > 0 {
			attacker.ReduceHp(attacker.Hp)
			return attacker.Faint()
		}
		return ""
	case EFFECT_PAY_DAY:
		return "Coins were scattered everywhere!\n"
	default:
		return ""
	}
}

func (b *Battle) screenTurns(setter *Pokemon) int {
	if setter.HeldItem.Name() == "light-clay" {
		return 8
	}

	return 5
}

// resistingType returns the first type, in sorted order, that resists the
// given attack type.
func resistingType(attackType string) string {
	matchups, ok := typeChart[attackType]
	if !ok {
		return ""
	}

	names := make([]string, 0, len(matchups))
	for name, multiplier := range matchups {
		if multiplier < 1 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}

	sort.Strings(names)

	return names[0]
}

func (b *Battle) applyItemMoveEffects(attacker *Pokemon, defender *Pokemon, move *Move) string {
	switch move.Effect {
	case EFFECT_FLING:
		flung := attacker.HeldItem.Remove()
		return fmt.Sprintf("%s flung its %s!\n", attacker.Nickname, prettyName(flung.Name))
	case EFFECT_THIEF:
		if !defender.Alive() || defender.HeldItem.Held() == nil || !defender.HeldItem.CanRemove() {
			return ""
		}
		if attacker.HeldItem.Held() != nil {
			return ""
		}
		if defender.Ability(attacker, move) == "sticky-hold" {
			return fmt.Sprintf("%s's item is stuck fast!\n", defender.Nickname)
		}
		stolen := defender.HeldItem.Remove()
		attacker.HeldItem.Give(stolen)
		return fmt.Sprintf("%s stole %s's %s!\n", attacker.Nickname, defender.Nickname, prettyName(stolen.Name))
	case EFFECT_TRICK:
		if !attacker.HeldItem.CanRemove() || !defender.HeldItem.CanRemove() {
			return "But it failed!\n"
		}
		if defender.Ability(attacker, move) == "sticky-hold" {
			return fmt.Sprintf("%s's item is stuck fast!\n", defender.Nickname)
		}
		attacker.HeldItem.Swap(&defender.HeldItem)
		return fmt.Sprintf("%s switched items with its target!\n", attacker.Nickname)
	case EFFECT_KNOCK_OFF:
		if !defender.Alive() || defender.HeldItem.Held() == nil || !defender.HeldItem.CanRemove() {
			return ""
		}
		if defender.Ability(attacker, move) == "sticky-hold" {
			return fmt.Sprintf("%s's item is stuck fast!\n", defender.Nickname)
		}
		knocked := defender.HeldItem.Remove()
		return fmt.Sprintf("%s knocked off %s's %s!\n", attacker.Nickname, defender.Nickname, prettyName(knocked.Name))
	case EFFECT_TEATIME:
		log := "It's teatime!\n"
		for _, p := range []*Pokemon{attacker, defender} {
			if p.Alive() && p.HeldItem.IsBerry() {
				eaten := p.HeldItem.Use()
				log += fmt.Sprintf("%s ate its %s!\n", p.Nickname, prettyName(eaten.Name))
			}
		}
		return log
	case EFFECT_CORROSIVE_GAS:
		if defender.HeldItem.Held() == nil || defender.HeldItem.Suppressed {
			return ""
		}
		defender.HeldItem.Suppressed = true
		return fmt.Sprintf("%s's item became unusable!\n", defender.Nickname)
	case EFFECT_RECYCLE:
		if !attacker.HeldItem.Recover() {
			return "But it failed!\n"
		}
		return fmt.Sprintf("%s found one %s!\n", attacker.Nickname, prettyName(attacker.HeldItem.HeldName()))
	case EFFECT_BESTOW:
		if attacker.HeldItem.Held() == nil || defender.HeldItem.Held() != nil || !attacker.HeldItem.CanRemove() {
			return "But it failed!\n"
		}
		given := attacker.HeldItem.Remove()
		defender.HeldItem.Give(given)
		return fmt.Sprintf("%s received %s from %s!\n", defender.Nickname, prettyName(given.Name), attacker.Nickname)
	case EFFECT_NATURAL_GIFT:
		eaten := attacker.HeldItem.Use()
		return fmt.Sprintf("%s used its %s to attack!\n", attacker.Nickname, prettyName(eaten.Name))
	case EFFECT_STUFF_CHEEKS:
		eaten := attacker.HeldItem.Use()
		log := fmt.Sprintf("%s ate its %s!\n", attacker.Nickname, prettyName(eaten.Name))
		return log + attacker.AppendDefense(2, attacker)
	case EFFECT_PLUCK:
		if !defender.Alive() || !defender.HeldItem.IsBerry() || !defender.HeldItem.CanRemove() {
			return ""
		}
		plucked := defender.HeldItem.Remove()
		return fmt.Sprintf("%s plucked and ate %s's %s!\n", attacker.Nickname, defender.Nickname, prettyName(plucked.Name))
	default:
		return ""
	}
}

func (b *Battle) applyLifeOrb(attacker *Pokemon, move *Move, totalDamage int) string {
	if totalDamage == 0 || attacker.HeldItem.Name() != "life-orb" || !attacker.Alive() {
		return ""
	}
	if ability := attacker.Ability(nil, nil); ability == "magic-guard" || ability == "sheer-force" {
		return ""
	}

	attacker.ReduceHp(attacker.MaxHp / 10)
	log := fmt.Sprintf("%s lost some of its HP!\n", attacker.Nickname)
	if !attacker.Alive() {
		log += attacker.Faint()
	}

	return log
}
