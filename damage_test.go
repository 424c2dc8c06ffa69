package porygon

import (
	"strings"
	"testing"
)

func TestBurnHalvesPhysicalDamage(t *testing.T) {
	healthy := testBattle(testPokemon("machamp", TYPENAME_FIGHTING), testPokemon("snorlax"))
	burned := testBattle(testPokemon("machamp", TYPENAME_FIGHTING), testPokemon("snorlax"))
	burned.Trainer1.Active().Status.Current = STATUS_BURN

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)

	// Both battles share a seed, so the random spread matches and only the
	// burn penalty differs.
	full := healthy.Calc.Damage(healthy.Trainer1.Active(), healthy.Trainer2.Active(), tackle, false, healthy)
	halved := burned.Calc.Damage(burned.Trainer1.Active(), burned.Trainer2.Active(), tackle, false, burned)

	if halved >= full {
		t.Fatalf("expected burn to reduce damage, got %d vs %d", halved, full)
	}
	if halved < full/2-1 || halved > full/2+1 {
		t.Fatalf("expected roughly half damage, got %d vs %d", halved, full)
	}
}

func TestGutsIgnoresBurnPenalty(t *testing.T) {
	healthy := testBattle(testPokemon("machamp", TYPENAME_FIGHTING), testPokemon("snorlax"))
	burned := testBattle(testPokemon("machamp", TYPENAME_FIGHTING), testPokemon("snorlax"))
	burned.Trainer1.Active().Status.Current = STATUS_BURN
	burned.Trainer1.Active().AbilityIdent = "guts"

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)

	full := healthy.Calc.Damage(healthy.Trainer1.Active(), healthy.Trainer2.Active(), tackle, false, healthy)
	boosted := burned.Calc.Damage(burned.Trainer1.Active(), burned.Trainer2.Active(), tackle, false, burned)

	if boosted <= full {
		t.Fatalf("expected guts to boost a burned attacker, got %d vs %d", boosted, full)
	}
}

func TestImmunityDealsNoDamage(t *testing.T) {
	attacker := testPokemon("machamp", TYPENAME_FIGHTING)
	defender := testPokemon("gengar", TYPENAME_GHOST, TYPENAME_POISON)
	battle := testBattle(attacker, defender)

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)

	if damage := battle.Calc.Damage(attacker, defender, tackle, false, battle); damage != 0 {
		t.Fatalf("expected 0 damage against an immune type, got %d", damage)
	}
}

func TestStabBoostsDamage(t *testing.T) {
	plain := testBattle(testPokemon("machamp", TYPENAME_FIGHTING), testPokemon("snorlax"))
	stab := testBattle(testPokemon("machamp", TYPENAME_NORMAL), testPokemon("snorlax"))

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)

	base := plain.Calc.Damage(plain.Trainer1.Active(), plain.Trainer2.Active(), tackle, false, plain)
	boosted := stab.Calc.Damage(stab.Trainer1.Active(), stab.Trainer2.Active(), tackle, false, stab)

	if boosted <= base {
		t.Fatalf("expected same type attack bonus, got %d vs %d", boosted, base)
	}
}

func TestCritIgnoresLoweredAttackStage(t *testing.T) {
	weakened := testBattle(testPokemon("machamp", TYPENAME_FIGHTING), testPokemon("snorlax"))
	weakened.Trainer1.Active().Attack.Stage = -6

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)

	normal := weakened.Calc.Damage(weakened.Trainer1.Active(), weakened.Trainer2.Active(), tackle, false, weakened)

	unstaged := testBattle(testPokemon("machamp", TYPENAME_FIGHTING), testPokemon("snorlax"))
	unstaged.Trainer1.Active().Attack.Stage = -6
	crit := unstaged.Calc.Damage(unstaged.Trainer1.Active(), unstaged.Trainer2.Active(), tackle, true, unstaged)

	// A crit reads the raw stat, so the -6 stage stops mattering.
	if crit <= normal {
		t.Fatalf("expected a crit to ignore the lowered stage, got %d vs %d", crit, normal)
	}
}

func TestReflectHalvesPhysicalDamage(t *testing.T) {
	open := testBattle(testPokemon("machamp", TYPENAME_FIGHTING), testPokemon("snorlax"))
	screened := testBattle(testPokemon("machamp", TYPENAME_FIGHTING), testPokemon("snorlax"))
	screened.Trainer2.Side.Reflect = NewExpiringEffect(TurnPtr(5))

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)

	full := open.Calc.Damage(open.Trainer1.Active(), open.Trainer2.Active(), tackle, false, open)
	reduced := screened.Calc.Damage(screened.Trainer1.Active(), screened.Trainer2.Active(), tackle, false, screened)

	if reduced >= full {
		t.Fatalf("expected reflect to reduce damage, got %d vs %d", reduced, full)
	}
}

func TestApplyDamageSubstituteAbsorbs(t *testing.T) {
	target := testPokemon("eevee")
	testBattle(target, testPokemon("rattata"))
	target.Substitute = 50

	battle := target.battle
	log := battle.Calc.ApplyDamage(target, 30)

	if target.Hp != target.MaxHp {
		t.Fatal("the substitute should absorb the hit")
	}
	if target.Substitute != 20 {
		t.Fatalf("expected 20 substitute hp left, got %d", target.Substitute)
	}
	if !strings.Contains(log, "substitute took the damage") {
		t.Fatalf("unexpected log %q", log)
	}

	log = battle.Calc.ApplyDamage(target, 30)
	if target.Substitute != 0 || !strings.Contains(log, "substitute faded") {
		t.Fatalf("expected the substitute to fade, got %q", log)
	}
}

func TestHealBlockStopsHealing(t *testing.T) {
	target := testPokemon("eevee")
	battle := testBattle(target, testPokemon("rattata"))
	target.Hp = 100
	target.HealBlock = NewExpiringEffect(TurnPtr(5))

	log := battle.Calc.Heal(target, 50)

	if target.Hp != 100 {
		t.Fatal("heal block should stop the heal")
	}
	if !strings.Contains(log, "Heal Block") {
		t.Fatalf("unexpected log %q", log)
	}
}

func TestHealAtFullHp(t *testing.T) {
	target := testPokemon("eevee")
	battle := testBattle(target, testPokemon("rattata"))

	log := battle.Calc.Heal(target, 50)

	if !strings.Contains(log, "already full") {
		t.Fatalf("unexpected log %q", log)
	}
}
