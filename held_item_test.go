package porygon

import (
	"testing"
)

func TestHeldItemUseRecordsLastUsed(t *testing.T) {
	holder := testPokemon("snorlax")
	testBattle(holder, testPokemon("charmander"))
	holder.HeldItem.Give(Item{Name: "sitrus-berry"})

	used := holder.HeldItem.Use()

	if used.Name != "sitrus-berry" {
		t.Fatalf("expected to use the sitrus berry, got %q", used.Name)
	}
	if holder.HeldItem.Held() != nil {
		t.Fatal("expected the slot to be empty after use")
	}
	if holder.HeldItem.LastUsed == nil || holder.HeldItem.LastUsed.Name != "sitrus-berry" {
		t.Fatal("expected the used berry to be recorded for Recycle")
	}
}

func TestHeldItemRemovePanicsOnFormItem(t *testing.T) {
	holder := testPokemon("giratina", TYPENAME_GHOST, TYPENAME_DRAGON)
	testBattle(holder, testPokemon("charmander"))
	holder.HeldItem.Give(Item{Name: "griseous-orb"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected removing a form item to panic")
		}
	}()

	holder.HeldItem.Remove()
}

func TestHeldItemUsePanicsOnFormItem(t *testing.T) {
	holder := testPokemon("giratina", TYPENAME_GHOST, TYPENAME_DRAGON)
	testBattle(holder, testPokemon("charmander"))
	holder.HeldItem.Give(Item{Name: "griseous-orb"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected using a form item to panic")
		}
	}()

	holder.HeldItem.Use()
}

func TestHeldItemSwapPanicsOnFormItem(t *testing.T) {
	first := testPokemon("giratina", TYPENAME_GHOST, TYPENAME_DRAGON)
	second := testPokemon("machamp")
	testBattle(first, second)
	first.HeldItem.Give(Item{Name: "griseous-orb"})
	second.HeldItem.Give(Item{Name: "leftovers"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected swapping away a form item to panic")
		}
		if first.HeldItem.HeldName() != "griseous-orb" {
			t.Fatal("form item should stay put when the swap panics")
		}
	}()

	first.HeldItem.Swap(&second.HeldItem)
}

func TestHeldItemGetSuppressedByEmbargo(t *testing.T) {
	holder := testPokemon("snorlax")
	testBattle(holder, testPokemon("charmander"))
	holder.HeldItem.Give(Item{Name: "leftovers"})

	holder.Embargo = NewExpiringEffect(TurnPtr(5))

	if holder.HeldItem.Get() != nil {
		t.Fatal("embargo should hide the held item")
	}
	if holder.HeldItem.Held() == nil {
		t.Fatal("embargo should not destroy the underlying item")
	}
}

func TestHeldItemGetSuppressedByMagicRoom(t *testing.T) {
	holder := testPokemon("snorlax")
	battle := testBattle(holder, testPokemon("charmander"))
	holder.HeldItem.Give(Item{Name: "leftovers"})

	battle.MagicRoom = NewExpiringEffect(TurnPtr(5))

	if holder.HeldItem.Get() != nil {
		t.Fatal("magic room should hide the held item")
	}
}

func TestHeldItemRecover(t *testing.T) {
	holder := testPokemon("snorlax")
	testBattle(holder, testPokemon("charmander"))
	holder.HeldItem.Give(Item{Name: "sitrus-berry"})
	holder.HeldItem.Use()

	if !holder.HeldItem.Recover() {
		t.Fatal("expected recover to restore the used berry")
	}
	if holder.HeldItem.HeldName() != "sitrus-berry" {
		t.Fatalf("expected the berry back, got %q", holder.HeldItem.HeldName())
	}
	if holder.HeldItem.Recover() {
		t.Fatal("recover should fail when the slot is occupied")
	}
}

func TestHeldItemSwap(t *testing.T) {
	first := testPokemon("alakazam", TYPENAME_PSYCHIC)
	second := testPokemon("machamp")
	testBattle(first, second)
	first.HeldItem.Give(Item{Name: "choice-specs"})
	second.HeldItem.Give(Item{Name: "leftovers"})

	first.HeldItem.Swap(&second.HeldItem)

	if first.HeldItem.HeldName() != "leftovers" || second.HeldItem.HeldName() != "choice-specs" {
		t.Fatalf("swap mixed up items: %q and %q", first.HeldItem.HeldName(), second.HeldItem.HeldName())
	}
}
