package porygon

import (
	"strings"
	"testing"
)

func TestBurnFailsOnFireType(t *testing.T) {
	target := testPokemon("charmander", TYPENAME_FIRE)
	attacker := testPokemon("bulbasaur", TYPENAME_GRASS)
	battle := testBattle(attacker, target)

	log := target.Status.ApplyStatus(STATUS_BURN, battle, attacker)

	if log != "Charmander can't be burned!\n" {
		t.Fatalf("unexpected log: %q", log)
	}
	if target.Status.Current != STATUS_NONE {
		t.Fatalf("fire type should not be burned, got %q", target.Status.Current)
	}
}

func TestStatusDoesNotOverwrite(t *testing.T) {
	target := testPokemon("rattata")
	attacker := testPokemon("bulbasaur", TYPENAME_GRASS)
	battle := testBattle(attacker, target)

	target.Status.ApplyStatus(STATUS_BURN, battle, attacker)
	log := target.Status.ApplyStatus(STATUS_POISON, battle, attacker)

	if !strings.Contains(log, "already") {
		t.Fatalf("expected an already-statused message, got %q", log)
	}
	if target.Status.Current != STATUS_BURN {
		t.Fatalf("expected the burn to stick, got %q", target.Status.Current)
	}
}

func TestSafeguardBlocksStatus(t *testing.T) {
	target := testPokemon("rattata")
	attacker := testPokemon("bulbasaur", TYPENAME_GRASS)
	battle := testBattle(attacker, target)

	battle.SideOf(target).Safeguard = NewExpiringEffect(TurnPtr(5))
	target.Status.ApplyStatus(STATUS_PARA, battle, attacker)

	if target.Status.Current != STATUS_NONE {
		t.Fatal("safeguard should block externally applied status")
	}
}

func TestSafeguardAllowsSelfStatus(t *testing.T) {
	target := testPokemon("rattata")
	battle := testBattle(target, testPokemon("bulbasaur", TYPENAME_GRASS))

	battle.SideOf(target).Safeguard = NewExpiringEffect(TurnPtr(5))
	target.Status.ApplyStatus(STATUS_SLEEP, battle, target)

	if target.Status.Current != STATUS_SLEEP {
		t.Fatal("safeguard should not block a self inflicted status")
	}
}

func TestPoisonImmunityAndCorrosion(t *testing.T) {
	target := testPokemon("skarmory", TYPENAME_STEEL, TYPENAME_FLYING)
	attacker := testPokemon("salazzle", TYPENAME_POISON, TYPENAME_FIRE)
	battle := testBattle(attacker, target)

	target.Status.ApplyStatus(STATUS_POISON, battle, attacker)
	if target.Status.Current != STATUS_NONE {
		t.Fatal("steel types should shrug off poison")
	}

	attacker.AbilityIdent = "corrosion"
	target.Status.ApplyStatus(STATUS_POISON, battle, attacker)
	if target.Status.Current != STATUS_POISON {
		t.Fatal("corrosion should poison a steel type")
	}
}

func TestToxicSetsBadPoison(t *testing.T) {
	target := testPokemon("rattata")
	attacker := testPokemon("crobat", TYPENAME_POISON, TYPENAME_FLYING)
	battle := testBattle(attacker, target)

	log := target.Status.ApplyStatus(STATUS_TOXIC, battle, attacker)

	if target.Status.Current != STATUS_TOXIC {
		t.Fatalf("expected bad poison, got %q", target.Status.Current)
	}
	if !strings.Contains(log, "badly poisoned") {
		t.Fatalf("unexpected log: %q", log)
	}
}

func TestLumBerryCuresOnApplication(t *testing.T) {
	target := testPokemon("rattata")
	attacker := testPokemon("bulbasaur", TYPENAME_GRASS)
	battle := testBattle(attacker, target)
	target.HeldItem.Give(Item{Name: "lum-berry"})

	target.Status.ApplyStatus(STATUS_PARA, battle, attacker)

	if target.Status.Current != STATUS_NONE {
		t.Fatalf("lum berry should cure the fresh status, got %q", target.Status.Current)
	}
	if target.HeldItem.Held() != nil {
		t.Fatal("the berry should be consumed by the cure")
	}
}

func TestSynchronizeReflectsBurn(t *testing.T) {
	target := testPokemon("espeon", TYPENAME_PSYCHIC)
	target.AbilityIdent = "synchronize"
	attacker := testPokemon("rattata")
	battle := testBattle(attacker, target)

	target.Status.ApplyStatus(STATUS_BURN, battle, attacker)

	if attacker.Status.Current != STATUS_BURN {
		t.Fatalf("synchronize should reflect the burn, attacker has %q", attacker.Status.Current)
	}
}

func TestUnknownStatusPanics(t *testing.T) {
	target := testPokemon("rattata")
	attacker := testPokemon("bulbasaur", TYPENAME_GRASS)
	battle := testBattle(attacker, target)

	defer func() {
		if recover() == nil {
			t.Fatal("expected an unknown status identifier to panic")
		}
	}()

	target.Status.ApplyStatus("petrified", battle, attacker)
}
