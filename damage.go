package porygon

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// DamageCalc is the damage-number service the move engine delegates to.
// Hosts can substitute their own implementation; the engine only consumes
// the contract.
type DamageCalc interface {
	// Damage computes the raw damage one hit of the move should deal.
	Damage(attacker *Pokemon, defender *Pokemon, move *Move, crit bool, battle *Battle) int
	// ApplyDamage deals already-computed damage to a target, accounting for
	// substitutes and faints, and returns the log delta.
	ApplyDamage(target *Pokemon, amount int) string
	// Heal restores hp and returns the log delta. Respects heal blocking.
	Heal(target *Pokemon, amount int) string
}

// DefaultCalc is the built-in damage formula.
type DefaultCalc struct{}

func (DefaultCalc) Damage(attacker *Pokemon, defender *Pokemon, move *Move, crit bool, battle *Battle) int {
	if move.Power == nil || *move.Power == 0 {
		return 0
	}
	power := *move.Power

	var a, d int

	switch move.DamageClass {
	case DAMAGECLASS_PHYSICAL:
		a = attacker.Attack.CalcValue()
		d = defender.Defense.CalcValue()
		if crit {
			a = attacker.Attack.RawValue
			d = defender.Defense.RawValue
		}
	case DAMAGECLASS_SPECIAL:
		a = attacker.SpAttack.CalcValue()
		d = defender.SpDefense.CalcValue()
		if crit {
			a = attacker.SpAttack.RawValue
			d = defender.SpDefense.RawValue
		}
	default:
		return 0
	}

	attackerAbility := attacker.Ability(defender, move)
	defenderAbility := defender.Ability(attacker, move)

	switch attackerAbility {
	case "huge-power", "pure-power":
		if move.DamageClass == DAMAGECLASS_PHYSICAL {
			a *= 2
		}
	case "hustle":
		if move.DamageClass == DAMAGECLASS_PHYSICAL {
			a = int(math.Round(float64(a) * 1.5))
		}
	case "guts":
		if attacker.Status.Active() && move.DamageClass == DAMAGECLASS_PHYSICAL {
			a = int(math.Round(float64(a) * 1.5))
		}
	}

	if defenderAbility == "marvel-scale" && defender.Status.Active() && move.DamageClass == DAMAGECLASS_PHYSICAL {
		d = int(math.Round(float64(d) * 1.5))
	}

	if attacker.FlashFire && move.Type == TYPENAME_FIRE {
		a = int(float64(a) * 1.5)
	}

	if float64(attacker.Hp) <= float64(attacker.MaxHp)*0.33 {
		lowHealthTypes := map[string]string{
			"overgrow": TYPENAME_GRASS,
			"blaze":    TYPENAME_FIRE,
			"torrent":  TYPENAME_WATER,
			"swarm":    TYPENAME_BUG,
		}
		if boosted, ok := lowHealthTypes[attackerAbility]; ok && move.Type == boosted {
			a = int(math.Round(float64(a) * 1.5))
		}
	}

	if defenderAbility == "thick-fat" && (move.Type == TYPENAME_ICE || move.Type == TYPENAME_FIRE) {
		a = int(float64(a) * 0.5)
	}

	effectiveness := battle.Effectiveness(move.Type, defender)
	if effectiveness == 0 {
		return 0
	}

	var critBoost float64 = 1
	if crit {
		critBoost = 1.5
	}

	burn := 1.0
	if attacker.Status.Current == STATUS_BURN && move.DamageClass == DAMAGECLASS_PHYSICAL && attackerAbility != "guts" && move.Effect != EFFECT_FACADE {
		burn = 0.5
	}

	stab := 1.0
	if attacker.HasType(move.Type) {
		stab = 1.5
		if attackerAbility == "adaptability" {
			stab = 2
		}
	}

	weather := battle.Weather.Get()
	weatherBonus := 1.0
	if (weather == WEATHER_RAIN || weather == WEATHER_HEAVY_RAIN) && move.Type == TYPENAME_WATER {
		weatherBonus = 1.5
	}
	if (weather == WEATHER_SUN || weather == WEATHER_HEAVY_SUN) && move.Type == TYPENAME_FIRE {
		weatherBonus = 1.5
	}
	if weather == WEATHER_RAIN && move.Type == TYPENAME_FIRE {
		weatherBonus = 0.5
	}
	if weather == WEATHER_SUN && move.Type == TYPENAME_WATER {
		weatherBonus = 0.5
	}

	screen := 1.0
	if !crit && attackerAbility != "infiltrator" {
		if side := battle.SideOf(defender); side != nil {
			blocked := side.AuroraVeil.Active() ||
				(move.DamageClass == DAMAGECLASS_PHYSICAL && side.Reflect.Active()) ||
				(move.DamageClass == DAMAGECLASS_SPECIAL && side.LightScreen.Active())
			if blocked {
				screen = 0.5
			}
		}
	}

	metronomeBoost := 1.0
	if attacker.HeldItem.Name() == "metronome" {
		metronomeBoost = attacker.ItemMetronome.Boost()
	}

	damageInner := math.Floor(math.Floor(math.Floor((float64(2*attacker.Level)/5+2)*float64(power))*(float64(a)/float64(d)))/50 + 2)
	randomSpread := float64(battle.Rng.UintN(16)+85) / 100.0

	damage := damageInner
	damage = pokeRound(damage * weatherBonus)
	damage = math.Floor(damage * critBoost)
	damage = math.Floor(damage * randomSpread)
	damage = pokeRound(damage * stab)
	damage = math.Floor(damage * effectiveness)
	damage = pokeRound(damage * burn)
	damage = math.Floor(damage * screen)
	damage = pokeRound(damage * metronomeBoost)

	finalDamage := int(damage)
	if finalDamage < 1 {
		finalDamage = 1
	}

	damageLogger().V(1).Info("damage roll",
		"attacker", attacker.Nickname,
		"defender", defender.Nickname,
		"move", move.Identifier,
		"power", power,
		"attackValue", a,
		"defValue", d,
		"effectiveness", effectiveness,
		"stab", stab,
		"crit", critBoost,
		"weatherBonus", weatherBonus,
		"spread", randomSpread,
		"damage", finalDamage)

	return finalDamage
}

func (DefaultCalc) ApplyDamage(target *Pokemon, amount int) string {
	if amount <= 0 {
		return ""
	}

	if target.Substitute > 0 {
		if amount >= target.Substitute {
			target.Substitute = 0
			return fmt.Sprintf("%s's substitute faded!\n", target.Nickname)
		}
		target.Substitute -= amount
		return fmt.Sprintf("%s's substitute took the damage!\n", target.Nickname)
	}

	dealt := target.ReduceHp(amount)
	target.LastDamageTaken = dealt

	log := fmt.Sprintf("%s took %d damage!\n", target.Nickname, dealt)
	if !target.Alive() {
		log += target.Faint()
	}

	return log
}

func (DefaultCalc) Heal(target *Pokemon, amount int) string {
	if !target.Alive() {
		return ""
	}
	if target.HealBlock.Active() {
		return fmt.Sprintf("%s can't heal due to Heal Block!\n", target.Nickname)
	}

	healed := target.RestoreHp(amount)
	if healed == 0 {
		return fmt.Sprintf("%s's health is already full!\n", target.Nickname)
	}

	return fmt.Sprintf("%s healed %d health!\n", target.Nickname, healed)
}

// Rounds half down, matching the in-game damage rounding.
func pokeRound(x float64) float64 {
	intPart := math.Trunc(x)
	distance := math.Abs(x - intPart)

	if distance > 0.5 {
		return intPart + 1
	}

	return intPart
}
