package porygon

import (
	"strings"
	"testing"
)

func TestNullAccuracyAlwaysHits(t *testing.T) {
	attacker := testPokemon("eevee")
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)

	swift := testMove("swift", EFFECT_ALWAYS_HIT, DAMAGECLASS_SPECIAL, TYPENAME_NORMAL, 60, 0)
	defender.EvasionStage = 6

	for i := 0; i < 100; i++ {
		if !CheckHit(attacker, defender, battle, swift) {
			t.Fatal("a null accuracy move should never miss")
		}
	}
}

func TestOHKONeverHitsHigherLevel(t *testing.T) {
	attacker := testPokemon("diglett", TYPENAME_GROUND)
	attacker.Level = 1
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)

	fissure := testMove("fissure", EFFECT_OHKO, DAMAGECLASS_PHYSICAL, TYPENAME_GROUND, 0, 30)

	for i := 0; i < 100; i++ {
		if CheckHit(attacker, defender, battle, fissure) {
			t.Fatal("an underleveled attacker should never land a one-hit KO")
		}
	}
}

func TestOHKOLevelDifferenceThreshold(t *testing.T) {
	attacker := testPokemon("diglett", TYPENAME_GROUND)
	attacker.Level = 30
	defender := testPokemon("rattata")
	defender.Level = 25
	battle := testBattle(attacker, defender)

	fissure := testMove("fissure", EFFECT_OHKO, DAMAGECLASS_PHYSICAL, TYPENAME_GROUND, 0, 30)

	hitCount := 0
	trials := 10000
	for i := 0; i < trials; i++ {
		if CheckHit(attacker, defender, battle, fissure) {
			hitCount++
		}
	}

	// The threshold here is 30 + (30 - 25) = 35 percent.
	if hitCount < 3200 || hitCount > 3800 {
		t.Fatalf("expected roughly 35%% of %d rolls to hit, got %d", trials, hitCount)
	}
}

func TestSturdyBlocksOHKO(t *testing.T) {
	attacker := testPokemon("diglett", TYPENAME_GROUND)
	defender := testPokemon("geodude", TYPENAME_ROCK, TYPENAME_GROUND)
	defender.AbilityIdent = "sturdy"
	battle := testBattle(attacker, defender)

	fissure := testMove("fissure", EFFECT_OHKO, DAMAGECLASS_PHYSICAL, TYPENAME_GROUND, 0, 30)

	if CheckEffective(attacker, defender, battle, fissure) {
		t.Fatal("sturdy should block one-hit KO moves")
	}
}

func TestSoundproofBlocksSoundMoves(t *testing.T) {
	attacker := testPokemon("loudred")
	defender := testPokemon("voltorb", TYPENAME_ELECTRIC)
	defender.AbilityIdent = "soundproof"
	battle := testBattle(attacker, defender)

	hyperVoice := testMove("hyper-voice", EFFECT_PLAIN, DAMAGECLASS_SPECIAL, TYPENAME_NORMAL, 90, 100)

	if CheckEffective(attacker, defender, battle, hyperVoice) {
		t.Fatal("soundproof should block sound based moves")
	}
}

func TestGroundMoveVsAirborne(t *testing.T) {
	attacker := testPokemon("diglett", TYPENAME_GROUND)
	defender := testPokemon("pidgey", TYPENAME_NORMAL, TYPENAME_FLYING)
	battle := testBattle(attacker, defender)

	earthquake := testMove("earthquake", EFFECT_EARTHQUAKE, DAMAGECLASS_PHYSICAL, TYPENAME_GROUND, 100, 100)
	if CheckEffective(attacker, defender, battle, earthquake) {
		t.Fatal("ground moves should not affect airborne targets")
	}

	thousandArrows := testMove("thousand-arrows", EFFECT_THOUSAND_ARROWS, DAMAGECLASS_PHYSICAL, TYPENAME_GROUND, 90, 100)
	if !CheckEffective(attacker, defender, battle, thousandArrows) {
		t.Fatal("thousand arrows should reach airborne targets")
	}
}

func TestInverseBattleFlipsImmunity(t *testing.T) {
	attacker := testPokemon("gastly", TYPENAME_GHOST, TYPENAME_POISON)
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)
	battle.Inverse = true

	if battle.Effectiveness(TYPENAME_GHOST, defender) != 2 {
		t.Fatal("inverse battles should turn immunities into weaknesses")
	}
}

func TestSemiInvulnerableBypass(t *testing.T) {
	attacker := testPokemon("pikachu", TYPENAME_ELECTRIC)
	defender := testPokemon("pidgey", TYPENAME_NORMAL, TYPENAME_FLYING)
	battle := testBattle(attacker, defender)
	defender.SemiInvulnerable = "fly"

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)
	if CheckSemiInvulnerable(attacker, defender, battle, tackle) {
		t.Fatal("tackle should not reach a flying target")
	}

	thunder := testMove("thunder", EFFECT_THUNDER, DAMAGECLASS_SPECIAL, TYPENAME_ELECTRIC, 110, 70)
	if !CheckSemiInvulnerable(attacker, defender, battle, thunder) {
		t.Fatal("thunder should reach a flying target")
	}
}

func TestSpikyShieldPunishesContact(t *testing.T) {
	attacker := testPokemon("machamp")
	defender := testPokemon("chesnaught", TYPENAME_GRASS)
	battle := testBattle(attacker, defender)
	defender.Protect = true
	defender.ProtectVariant = EFFECT_SPIKY_SHIELD

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)

	ok, log := CheckProtect(attacker, defender, battle, tackle)
	if ok {
		t.Fatal("spiky shield should block the attack")
	}
	if !strings.Contains(log, "hurt by the spiky shield") {
		t.Fatalf("expected a spiky shield message, got %q", log)
	}
	if attacker.Hp != attacker.MaxHp-attacker.MaxHp/8 {
		t.Fatalf("expected an eighth of max hp in chip damage, attacker at %d/%d", attacker.Hp, attacker.MaxHp)
	}
}

func TestFeintIgnoresProtect(t *testing.T) {
	attacker := testPokemon("machamp")
	defender := testPokemon("chesnaught", TYPENAME_GRASS)
	battle := testBattle(attacker, defender)
	defender.Protect = true
	defender.ProtectVariant = EFFECT_PROTECT

	feint := testMove("feint", EFFECT_FEINT, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 30, 100)

	if ok, _ := CheckProtect(attacker, defender, battle, feint); !ok {
		t.Fatal("feint should go through protect")
	}
}

func TestCheckExecutableTaunt(t *testing.T) {
	attacker := testPokemon("sableye", TYPENAME_DARK, TYPENAME_GHOST)
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)
	attacker.Taunt = NewExpiringEffect(TurnPtr(3))

	willOWisp := testStatusMove("will-o-wisp", EFFECT_WILL_O_WISP)

	ok, msg := CheckExecutable(attacker, defender, battle, willOWisp)
	if ok {
		t.Fatal("a taunted attacker should not be able to use status moves")
	}
	if !strings.Contains(msg, "taunt") {
		t.Fatalf("expected a taunt message, got %q", msg)
	}
}

func TestCheckExecutableChoiceLock(t *testing.T) {
	attacker := testPokemon("smeargle")
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)
	attacker.ChoiceLockedMove = "tackle"

	other := testMove("swift", EFFECT_ALWAYS_HIT, DAMAGECLASS_SPECIAL, TYPENAME_NORMAL, 60, 0)

	if ok, _ := CheckExecutable(attacker, defender, battle, other); ok {
		t.Fatal("a choice locked attacker should be stuck on its first move")
	}
}

func TestCheckExecutableSubstituteThreshold(t *testing.T) {
	attacker := testPokemon("rattata")
	defender := testPokemon("eevee")
	battle := testBattle(attacker, defender)
	attacker.Hp = attacker.MaxHp / 4

	substitute := testSelfMove("substitute", EFFECT_SUBSTITUTE)

	if ok, _ := CheckExecutable(attacker, defender, battle, substitute); ok {
		t.Fatal("substitute needs more than a quarter of max hp")
	}
}
