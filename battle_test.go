package porygon

import (
	"strings"
	"testing"
)

func testBattleWithBench(p1 *Pokemon, bench1 *Pokemon, p2 *Pokemon) *Battle {
	battle := testBattle(p1, p2)
	battle.Trainer1.Party = append(battle.Trainer1.Party, bench1)
	bench1.Attach(battle)

	return battle
}

func TestStealthRockEntryDamage(t *testing.T) {
	lead := testPokemon("skarmory", TYPENAME_STEEL, TYPENAME_FLYING)
	incoming := testPokemon("charizard", TYPENAME_FIRE, TYPENAME_FLYING)
	battle := testBattleWithBench(lead, incoming, testPokemon("rattata"))

	battle.SideOf(lead).StealthRock = true
	battle.SwitchPoke(battle.Trainer1, 1)

	// Rock is 4x effective against a Fire/Flying target, so the eighth
	// becomes half of max hp.
	expected := incoming.MaxHp - incoming.MaxHp/2
	if incoming.Hp != expected {
		t.Fatalf("expected %d hp after rocks, got %d", expected, incoming.Hp)
	}
}

func TestSpikesIgnoreAirborneSwitchIns(t *testing.T) {
	lead := testPokemon("skarmory", TYPENAME_STEEL, TYPENAME_FLYING)
	incoming := testPokemon("pidgey", TYPENAME_NORMAL, TYPENAME_FLYING)
	battle := testBattleWithBench(lead, incoming, testPokemon("rattata"))

	battle.SideOf(lead).Spikes = 3
	battle.SwitchPoke(battle.Trainer1, 1)

	if incoming.Hp != incoming.MaxHp {
		t.Fatal("spikes should not touch an airborne switch in")
	}
}

func TestSandstormChipDamage(t *testing.T) {
	host := testPokemon("eevee")
	opponent := testPokemon("tyranitar", TYPENAME_ROCK, TYPENAME_DARK)
	battle := testBattle(host, opponent)

	battle.Weather.Set(WEATHER_SANDSTORM, nil)
	battle.NextTurn()

	if host.Hp != host.MaxHp-host.MaxHp/16 {
		t.Fatalf("expected sandstorm chip, host at %d/%d", host.Hp, host.MaxHp)
	}
	if opponent.Hp != opponent.MaxHp {
		t.Fatal("rock types should be immune to sandstorm")
	}
}

func TestBurnResidualDamage(t *testing.T) {
	host := testPokemon("eevee")
	battle := testBattle(host, testPokemon("rattata"))

	host.Status.ApplyStatus(STATUS_BURN, battle, host)
	battle.NextTurn()

	if host.Hp != host.MaxHp-host.MaxHp/16 {
		t.Fatalf("expected burn chip, host at %d/%d", host.Hp, host.MaxHp)
	}
}

func TestToxicDamageRamps(t *testing.T) {
	host := testPokemon("eevee")
	battle := testBattle(host, testPokemon("crobat", TYPENAME_POISON, TYPENAME_FLYING))

	host.Status.ApplyStatus(STATUS_TOXIC, battle, battle.Trainer2.Active())

	battle.NextTurn()
	afterFirst := host.MaxHp - host.MaxHp*1/16
	if host.Hp != afterFirst {
		t.Fatalf("expected one sixteenth on turn one, host at %d", host.Hp)
	}

	battle.NextTurn()
	if host.Hp != afterFirst-host.MaxHp*2/16 {
		t.Fatalf("expected two sixteenths on turn two, host at %d", host.Hp)
	}
}

func TestLeechSeedDrains(t *testing.T) {
	host := testPokemon("eevee")
	opponent := testPokemon("bulbasaur", TYPENAME_GRASS, TYPENAME_POISON)
	battle := testBattle(host, opponent)

	host.LeechSeeded = true
	opponent.Hp = 100
	battle.NextTurn()

	if host.Hp != host.MaxHp-host.MaxHp/8 {
		t.Fatalf("expected leech seed drain, host at %d", host.Hp)
	}
	if opponent.Hp != 100+host.MaxHp/8 {
		t.Fatalf("expected the drain to heal the opponent, at %d", opponent.Hp)
	}
}

func TestPerishCountFaintsAtZero(t *testing.T) {
	host := testPokemon("eevee")
	battle := testBattle(host, testPokemon("rattata"))

	host.PerishCount = NewExpiringEffect(TurnPtr(3))

	battle.NextTurn()
	battle.NextTurn()
	if !host.Alive() {
		t.Fatal("fainted two turns early")
	}

	log := battle.NextTurn()
	if host.Alive() {
		t.Fatal("expected the perish count to faint the host")
	}
	if !strings.Contains(log, "fainted") {
		t.Fatalf("expected a faint message, got %q", log)
	}
}

func TestProtectFlagClearsNextTurn(t *testing.T) {
	host := testPokemon("chesnaught", TYPENAME_GRASS)
	battle := testBattle(host, testPokemon("rattata"))

	host.Protect = true
	host.ProtectVariant = EFFECT_PROTECT
	host.ProtectChance = 3

	battle.NextTurn()

	if host.Protect {
		t.Fatal("protect should clear at end of turn")
	}
	if host.ProtectChance != 3 {
		t.Fatal("a protecting turn should keep the ratchet")
	}

	battle.NextTurn()
	if host.ProtectChance != 1 {
		t.Fatal("an idle turn should reset the ratchet")
	}
}

func TestSwitchClearsVolatiles(t *testing.T) {
	lead := testPokemon("eevee")
	incoming := testPokemon("snorlax")
	battle := testBattleWithBench(lead, incoming, testPokemon("rattata"))

	lead.Attack.Stage = 4
	lead.Confusion = NewExpiringEffect(TurnPtr(3))

	log := battle.SwitchPoke(battle.Trainer1, 1)

	if lead.Attack.Stage != 0 || lead.Confusion.Active() {
		t.Fatal("switching out should clear volatile state")
	}
	if !strings.Contains(log, "sent in Snorlax") {
		t.Fatalf("expected a send in message, got %q", log)
	}
	if battle.Trainer1.Active() != incoming {
		t.Fatal("the bench pokemon should now be active")
	}
}

func TestValidSwapsSkipsFainted(t *testing.T) {
	lead := testPokemon("eevee")
	fainted := testPokemon("magikarp", TYPENAME_WATER)
	battle := testBattleWithBench(lead, fainted, testPokemon("rattata"))
	fainted.Hp = 0

	if len(battle.ValidSwaps(battle.Trainer1)) != 0 {
		t.Fatal("a fainted bench should offer no swaps")
	}
}

func TestGrassyTerrainHealsGrounded(t *testing.T) {
	host := testPokemon("eevee")
	battle := testBattle(host, testPokemon("pidgey", TYPENAME_NORMAL, TYPENAME_FLYING))

	battle.Terrain.Set(TERRAIN_GRASSY, nil)
	host.Hp = 100
	battle.NextTurn()

	if host.Hp != 100+host.MaxHp/16 {
		t.Fatalf("expected a grassy terrain heal, host at %d", host.Hp)
	}
}
