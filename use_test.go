package porygon

import (
	"strings"
	"testing"
)

func TestUseAnnouncesAndSpendsPP(t *testing.T) {
	attacker := testPokemon("eevee")
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)
	attacker.Moves = []*Move{tackle}

	log := battle.Use(attacker, defender, tackle)

	if !strings.Contains(log, "Eevee used Tackle!") {
		t.Fatalf("expected an announcement, got %q", log)
	}
	if tackle.PP != 9 {
		t.Fatalf("expected 9 pp after one use, got %d", tackle.PP)
	}
	if defender.Hp == defender.MaxHp {
		t.Fatal("expected the tackle to do damage")
	}
}

func TestPressureDoublesPPCost(t *testing.T) {
	attacker := testPokemon("eevee")
	defender := testPokemon("dusclops", TYPENAME_GHOST)
	defender.AbilityIdent = "pressure"
	battle := testBattle(attacker, defender)

	swift := testMove("swift", EFFECT_ALWAYS_HIT, DAMAGECLASS_SPECIAL, TYPENAME_NORMAL, 60, 0)
	attacker.Moves = []*Move{swift}

	battle.Use(attacker, defender, swift)

	if swift.PP != 8 {
		t.Fatalf("expected pressure to take 2 pp, got %d left", swift.PP)
	}
}

func TestProtectBlocksFollowingAttack(t *testing.T) {
	protector := testPokemon("chesnaught", TYPENAME_GRASS)
	attacker := testPokemon("machamp")
	battle := testBattle(protector, attacker)

	protect := testSelfMove("protect", EFFECT_PROTECT)
	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)

	protectLog := battle.Use(protector, attacker, protect)
	if !strings.Contains(protectLog, "Chesnaught protected itself!") {
		t.Fatalf("expected a protect message, got %q", protectLog)
	}

	attackLog := battle.Use(attacker, protector, tackle)
	if !strings.Contains(attackLog, "Chesnaught was protected against the attack!") {
		t.Fatalf("expected the attack to be blocked, got %q", attackLog)
	}
	if protector.Hp != protector.MaxHp {
		t.Fatal("a protected target should take no damage")
	}
}

func TestDispatchDepthIsBounded(t *testing.T) {
	attacker := testPokemon("spinda")
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)

	log := battle.use(attacker, defender, tackle, moveContext{usePP: true, depth: maxDispatchDepth + 1})
	if log != "" {
		t.Fatalf("expected an over-deep dispatch to no-op, got %q", log)
	}
	if defender.Hp != defender.MaxHp {
		t.Fatal("an over-deep dispatch should not mutate state")
	}
}

func TestMagicCoatBouncesStatus(t *testing.T) {
	attacker := testPokemon("arbok", TYPENAME_POISON)
	defender := testPokemon("espeon", TYPENAME_PSYCHIC)
	battle := testBattle(attacker, defender)
	defender.MagicCoat = true

	glare := testStatusMove("glare", EFFECT_PARALYZE)
	attacker.Moves = []*Move{glare}

	log := battle.Use(attacker, defender, glare)

	if !strings.Contains(log, "bounced") {
		t.Fatalf("expected a bounce message, got %q", log)
	}
	if attacker.Status.Current != STATUS_PARA {
		t.Fatalf("the bounced glare should paralyze the attacker, got %q", attacker.Status.Current)
	}
	if defender.Status.Current != STATUS_NONE {
		t.Fatal("the original target should be untouched")
	}
}

func TestFlinchForfeitsTheTurn(t *testing.T) {
	attacker := testPokemon("eevee")
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)
	attacker.Flinched = true

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)

	log := battle.Use(attacker, defender, tackle)

	if !strings.Contains(log, "Eevee flinched!") {
		t.Fatalf("expected a flinch message, got %q", log)
	}
	if tackle.PP != 10 {
		t.Fatal("a flinched turn should not spend pp")
	}
	if defender.Hp != defender.MaxHp {
		t.Fatal("a flinched attacker should not deal damage")
	}
}

func TestSwordsDanceRaisesAttack(t *testing.T) {
	attacker := testPokemon("scyther", TYPENAME_BUG, TYPENAME_FLYING)
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)

	swordsDance := testSelfMove("swords-dance", EFFECT_ATTACK_UP_2)

	log := battle.Use(attacker, defender, swordsDance)

	if attacker.Attack.Stage != 2 {
		t.Fatalf("expected attack stage 2, got %d", attacker.Attack.Stage)
	}
	if !strings.Contains(log, "increased by 2 stages") {
		t.Fatalf("expected a stage message, got %q", log)
	}
}

func TestDancerReplaysDanceMoves(t *testing.T) {
	attacker := testPokemon("scyther", TYPENAME_BUG, TYPENAME_FLYING)
	defender := testPokemon("oricorio", TYPENAME_FIRE, TYPENAME_FLYING)
	defender.AbilityIdent = "dancer"
	battle := testBattle(attacker, defender)

	swordsDance := testSelfMove("swords-dance", EFFECT_ATTACK_UP_2)

	battle.Use(attacker, defender, swordsDance)

	if attacker.Attack.Stage != 2 {
		t.Fatalf("expected the original dance to land, attacker at %d", attacker.Attack.Stage)
	}
	if defender.Attack.Stage != 2 {
		t.Fatalf("expected dancer to replay the dance, defender at %d", defender.Attack.Stage)
	}
}

func TestRestHealsAndSleeps(t *testing.T) {
	attacker := testPokemon("snorlax")
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)
	attacker.Hp = 50

	rest := testSelfMove("rest", EFFECT_REST)

	battle.Use(attacker, defender, rest)

	if attacker.Hp != attacker.MaxHp {
		t.Fatalf("rest should fully heal, attacker at %d/%d", attacker.Hp, attacker.MaxHp)
	}
	if attacker.Status.Current != STATUS_SLEEP {
		t.Fatalf("rest should put the user to sleep, got %q", attacker.Status.Current)
	}
}

func TestBellyDrumMaximizesAttack(t *testing.T) {
	attacker := testPokemon("azumarill", TYPENAME_WATER)
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)

	bellyDrum := testSelfMove("belly-drum", EFFECT_BELLY_DRUM)

	battle.Use(attacker, defender, bellyDrum)

	if attacker.Attack.Stage != 6 {
		t.Fatalf("expected attack stage 6, got %d", attacker.Attack.Stage)
	}
	if attacker.Hp != attacker.MaxHp/2 {
		t.Fatalf("expected half hp payment, attacker at %d/%d", attacker.Hp, attacker.MaxHp)
	}
}

func TestTwoTurnMoveCharges(t *testing.T) {
	attacker := testPokemon("venusaur", TYPENAME_GRASS, TYPENAME_POISON)
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)

	solarBeam := testMove("solar-beam", EFFECT_SOLAR_BEAM, DAMAGECLASS_SPECIAL, TYPENAME_GRASS, 120, 100)
	attacker.Moves = []*Move{solarBeam}

	log := battle.Use(attacker, defender, solarBeam)

	if !strings.Contains(log, "charging") {
		t.Fatalf("expected a charge message, got %q", log)
	}
	if defender.Hp != defender.MaxHp {
		t.Fatal("the charge turn should not deal damage")
	}
	if attacker.LockedMove == nil {
		t.Fatal("the charge turn should lock the move in")
	}

	attacker.HasActed = false
	battle.Use(attacker, defender, solarBeam)

	if defender.Hp == defender.MaxHp {
		t.Fatal("the release turn should deal damage")
	}
	if attacker.LockedMove != nil {
		t.Fatal("the lock should clear on release")
	}
}

func TestSolarBeamSkipsChargeInSun(t *testing.T) {
	attacker := testPokemon("venusaur", TYPENAME_GRASS, TYPENAME_POISON)
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)
	battle.Weather.Set(WEATHER_SUN, nil)

	solarBeam := testMove("solar-beam", EFFECT_SOLAR_BEAM, DAMAGECLASS_SPECIAL, TYPENAME_GRASS, 120, 100)
	attacker.Moves = []*Move{solarBeam}

	battle.Use(attacker, defender, solarBeam)

	if defender.Hp == defender.MaxHp {
		t.Fatal("solar beam should fire immediately in the sun")
	}
}

func TestVoltAbsorbEatsElectricMoves(t *testing.T) {
	attacker := testPokemon("pikachu", TYPENAME_ELECTRIC)
	defender := testPokemon("lanturn", TYPENAME_WATER, TYPENAME_ELECTRIC)
	defender.AbilityIdent = "volt-absorb"
	defender.Hp = 100
	battle := testBattle(attacker, defender)

	thunderbolt := testMove("thunderbolt", EFFECT_PARALYZE_HIT, DAMAGECLASS_SPECIAL, TYPENAME_ELECTRIC, 90, 100)
	attacker.Moves = []*Move{thunderbolt}

	log := battle.Use(attacker, defender, thunderbolt)

	if !strings.Contains(log, "absorbed the attack") {
		t.Fatalf("expected an absorb message, got %q", log)
	}
	if defender.Hp != 100+defender.MaxHp/4 {
		t.Fatalf("expected a quarter max hp heal, defender at %d", defender.Hp)
	}
}

func TestHazardMoveSetsSpikes(t *testing.T) {
	attacker := testPokemon("skarmory", TYPENAME_STEEL, TYPENAME_FLYING)
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)

	spikes := testStatusMove("spikes", EFFECT_SPIKES)
	spikes.Target = TARGET_OPPONENTS_FIELD

	battle.Use(attacker, defender, spikes)

	if battle.SideOf(defender).Spikes != 1 {
		t.Fatalf("expected one layer of spikes, got %d", battle.SideOf(defender).Spikes)
	}
}

func TestReDispatchDoesNotSpendPP(t *testing.T) {
	attacker := testPokemon("smeargle")
	defender := testPokemon("rattata")
	battle := testBattle(attacker, defender)

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)
	defender.LastMove = tackle

	mirrorMove := testStatusMove("mirror-move", EFFECT_MIRROR_MOVE)
	attacker.Moves = []*Move{mirrorMove}

	battle.Use(attacker, defender, mirrorMove)

	if mirrorMove.PP != 9 {
		t.Fatalf("mirror move itself should spend 1 pp, got %d left", mirrorMove.PP)
	}
	if tackle.PP != 10 {
		t.Fatalf("the mirrored move should not spend pp, got %d left", tackle.PP)
	}
	if attacker.Hp != attacker.MaxHp {
		t.Fatal("the mirrored tackle should hit the original user, not the mirrorer")
	}
}
