package porygon

import (
	"fmt"

	"github.com/samber/lo"
)

// statusCureBerries maps a berry to the single status it cures when eaten.
// Lum is handled separately since it cures anything.
var statusCureBerries = map[string]string{
	"cheri-berry":  STATUS_PARA,
	"chesto-berry": STATUS_SLEEP,
	"pecha-berry":  STATUS_POISON,
	"rawst-berry":  STATUS_BURN,
	"aspear-berry": STATUS_FROZEN,
}

// NonVolatileEffect is the one slot for a combatant's major status. Only a
// single status can occupy it; volatile conditions (confusion, flinch, ...)
// live on the combatant itself.
type NonVolatileEffect struct {
	Current string
	// SleepTurns counts down while asleep. Nil means not sleeping.
	SleepTurns ExpiringEffect
	// BadlyPoisonedTurns scales toxic damage; increases each turn the
	// status holds.
	BadlyPoisonedTurns int

	owner *Pokemon
}

func (n NonVolatileEffect) Active() bool {
	return n.Current != STATUS_NONE
}

func (n *NonVolatileEffect) Clear() {
	n.Current = STATUS_NONE
	n.SleepTurns = NewExpiringEffect(TurnPtr(0))
	n.BadlyPoisonedTurns = 0
}

// ApplyStatus attempts to inflict a major status on the owner. The attacker
// is the combatant responsible, nil when the status comes from a field or
// self-inflicted source. Returns the battle log delta; an empty string or a
// failure line with Current left untouched means the status did not stick.
func (n *NonVolatileEffect) ApplyStatus(status string, battle *Battle, attacker *Pokemon) string {
	target := n.owner

	if n.Active() {
		return fmt.Sprintf("%s is already %s!\n", target.Nickname, statusAdjective(n.Current))
	}

	switch target.Ability(attacker, nil) {
	case "comatose":
		return fmt.Sprintf("%s is drowsing and can't be statused!\n", target.Nickname)
	case "purifying-salt":
		return fmt.Sprintf("%s is protected by its pure salt!\n", target.Nickname)
	case "leaf-guard":
		if battle != nil {
			if w := battle.Weather.Get(); w == WEATHER_SUN || w == WEATHER_HEAVY_SUN {
				return fmt.Sprintf("%s is protected by Leaf Guard!\n", target.Nickname)
			}
		}
	case "flower-veil":
		if target.HasType(TYPENAME_GRASS) {
			return fmt.Sprintf("%s is protected by a veil of flowers!\n", target.Nickname)
		}
	}

	if attacker != nil && attacker != target && target.Substitute > 0 {
		return "But it failed!\n"
	}

	if attacker != nil && attacker != target && battle != nil {
		if side := battle.SideOf(target); side != nil && side.Safeguard.Active() {
			return fmt.Sprintf("%s is protected by Safeguard!\n", target.Nickname)
		}
	}

	if battle != nil && battle.Terrain.Get() == TERRAIN_MISTY && target.Grounded(battle) {
		return fmt.Sprintf("%s is protected by the misty terrain!\n", target.Nickname)
	}

	log := ""

	switch status {
	case STATUS_BURN:
		if target.HasType(TYPENAME_FIRE) {
			return fmt.Sprintf("%s can't be burned!\n", target.Nickname)
		}
		if ability := target.Ability(attacker, nil); ability == "water-veil" || ability == "water-bubble" {
			return fmt.Sprintf("%s can't be burned!\n", target.Nickname)
		}
		n.Current = STATUS_BURN
		log = fmt.Sprintf("%s was burned!\n", target.Nickname)
	case STATUS_PARA:
		if target.HasType(TYPENAME_ELECTRIC) {
			return fmt.Sprintf("%s can't be paralyzed!\n", target.Nickname)
		}
		if target.Ability(attacker, nil) == "limber" {
			return fmt.Sprintf("%s can't be paralyzed!\n", target.Nickname)
		}
		n.Current = STATUS_PARA
		log = fmt.Sprintf("%s was paralyzed!\n", target.Nickname)
	case STATUS_POISON, STATUS_TOXIC:
		immuneType := target.HasType(TYPENAME_POISON) || target.HasType(TYPENAME_STEEL)
		corrosion := attacker != nil && attacker.Ability(target, nil) == "corrosion"
		if immuneType && !corrosion {
			return fmt.Sprintf("%s can't be poisoned!\n", target.Nickname)
		}
		if ability := target.Ability(attacker, nil); ability == "immunity" || ability == "pastel-veil" {
			return fmt.Sprintf("%s can't be poisoned!\n", target.Nickname)
		}
		n.Current = status
		if status == STATUS_TOXIC {
			n.BadlyPoisonedTurns = 0
			log = fmt.Sprintf("%s was badly poisoned!\n", target.Nickname)
		} else {
			log = fmt.Sprintf("%s was poisoned!\n", target.Nickname)
		}
	case STATUS_SLEEP:
		if ability := target.Ability(attacker, nil); ability == "insomnia" || ability == "vital-spirit" || ability == "sweet-veil" {
			return fmt.Sprintf("%s stayed awake!\n", target.Nickname)
		}
		if battle != nil && battle.Terrain.Get() == TERRAIN_ELECTRIC && target.Grounded(battle) {
			return fmt.Sprintf("%s was kept awake by the electric terrain!\n", target.Nickname)
		}
		n.Current = STATUS_SLEEP
		turns := 1
		if battle != nil {
			turns = battle.Rng.IntN(3) + 1
		}
		n.SleepTurns = NewExpiringEffect(TurnPtr(turns))
		log = fmt.Sprintf("%s fell asleep!\n", target.Nickname)
	case STATUS_FROZEN:
		if target.HasType(TYPENAME_ICE) {
			return fmt.Sprintf("%s can't be frozen!\n", target.Nickname)
		}
		if target.Ability(attacker, nil) == "magma-armor" {
			return fmt.Sprintf("%s can't be frozen!\n", target.Nickname)
		}
		if battle != nil {
			if w := battle.Weather.Get(); w == WEATHER_SUN || w == WEATHER_HEAVY_SUN {
				return fmt.Sprintf("%s can't be frozen in the harsh sunlight!\n", target.Nickname)
			}
		}
		n.Current = STATUS_FROZEN
		log = fmt.Sprintf("%s was frozen solid!\n", target.Nickname)
	default:
		panic(fmt.Sprintf("unknown status: %s", status))
	}

	if !n.Active() {
		return log
	}

	// Synchronize reflects contact-inflicted statuses back at whoever
	// caused them. Sleep and freeze don't reflect.
	if attacker != nil && attacker != target && target.Ability(attacker, nil) == "synchronize" {
		if lo.Contains([]string{STATUS_BURN, STATUS_PARA, STATUS_POISON, STATUS_TOXIC}, status) {
			log += attacker.Status.ApplyStatus(status, battle, nil)
		}
	}

	log += n.tryBerryCure(battle)

	return log
}

// tryBerryCure eats a held status berry when it matches the fresh status.
func (n *NonVolatileEffect) tryBerryCure(battle *Battle) string {
	target := n.owner
	berry := target.HeldItem.Name()
	if berry == "" {
		return ""
	}

	cures := statusCureBerries[berry]
	if berry != "lum-berry" && cures != n.Current {
		return ""
	}

	target.HeldItem.Use()
	cured := n.Current
	n.Clear()

	log := fmt.Sprintf("%s ate its %s!\n", target.Nickname, prettyName(berry))
	log += fmt.Sprintf("%s was cured of %s!\n", target.Nickname, statusNoun(cured))

	if target.Ability(nil, nil) == "cheek-pouch" {
		log += battle.Calc.Heal(target, target.MaxHp/3)
	}

	return log
}

// Cure clears the status and returns the log line for it. No-op when
// healthy.
func (n *NonVolatileEffect) Cure() string {
	if !n.Active() {
		return ""
	}

	cured := n.Current
	n.Clear()

	return fmt.Sprintf("%s was cured of %s!\n", n.owner.Nickname, statusNoun(cured))
}

func statusAdjective(status string) string {
	switch status {
	case STATUS_BURN:
		return "burned"
	case STATUS_PARA:
		return "paralyzed"
	case STATUS_POISON, STATUS_TOXIC:
		return "poisoned"
	case STATUS_SLEEP:
		return "asleep"
	case STATUS_FROZEN:
		return "frozen"
	}

	return status
}

func statusNoun(status string) string {
	switch status {
	case STATUS_BURN:
		return "its burn"
	case STATUS_PARA:
		return "paralysis"
	case STATUS_POISON, STATUS_TOXIC:
		return "poison"
	case STATUS_SLEEP:
		return "its sleep"
	case STATUS_FROZEN:
		return "its freeze"
	}

	return status
}
