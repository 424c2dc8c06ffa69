package porygon

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

var itemLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "held-item").Logger()
	return &logger
}

// HeldItem tracks what a pokemon is holding and whether the battle currently
// lets it work. An item can be physically held while its effect is shut off
// (Embargo, Magic Room, Klutz, Corrosive Gas), so readers that care about the
// effect go through Get while readers that care about possession go through
// Held.
type HeldItem struct {
	item *Item
	// LastUsed is the most recently consumed item, kept around for Recycle.
	LastUsed *Item
	// Suppressed is set by Corrosive Gas and sticks until the holder leaves
	// the field.
	Suppressed bool

	owner  *Pokemon
	battle *Battle
}

func NewHeldItem(item *Item) HeldItem {
	return HeldItem{item: item}
}

// Attach wires the holder and battle in so suppression checks can see field
// state. Called when the pokemon enters a battle.
func (h *HeldItem) Attach(owner *Pokemon, battle *Battle) {
	h.owner = owner
	h.battle = battle
}

// Held returns the physically held item, ignoring suppression.
func (h HeldItem) Held() *Item {
	return h.item
}

// Get returns the held item only when its effect currently applies,
// otherwise nil.
func (h HeldItem) Get() *Item {
	if h.item == nil {
		return nil
	}
	if h.Suppressed {
		return nil
	}
	if h.owner != nil {
		if h.owner.Embargo.Active() {
			return nil
		}
		if h.owner.AbilityName() == "klutz" {
			return nil
		}
	}
	if h.battle != nil && h.battle.MagicRoom.Active() {
		return nil
	}

	return h.item
}

// Name returns the effective item name, "" when nothing applies.
func (h HeldItem) Name() string {
	item := h.Get()
	if item == nil {
		return ""
	}

	return item.Name
}

// HeldName returns the physically held item name, "" when empty handed.
func (h HeldItem) HeldName() string {
	if h.item == nil {
		return ""
	}

	return h.item.Name
}

// CanRemove reports whether battle effects may take this item off its
// holder. Form-binding items never come off.
func (h HeldItem) CanRemove() bool {
	if h.item == nil {
		return false
	}
	if lo.Contains(nonRemovableItems, h.item.Name) {
		return false
	}
	for _, suffix := range nonRemovableSuffixes {
		if strings.HasSuffix(h.item.Name, suffix) {
			return false
		}
	}

	return true
}

// IsBerry reports whether the effective held item is a berry.
func (h HeldItem) IsBerry() bool {
	return strings.HasSuffix(h.Name(), "-berry")
}

// Use consumes the held item, recording it for Recycle. Panics when nothing
// is held or the item is non-removable; callers check first.
func (h *HeldItem) Use() Item {
	if h.item == nil {
		panic("use of an empty held item slot")
	}
	if !h.CanRemove() {
		panic(fmt.Sprintf("use of a non-removable item: %s", h.HeldName()))
	}

	used := *h.item
	h.LastUsed = h.item
	h.item = nil

	itemLogger().Debug().Str("item", used.Name).Msg("Item consumed")

	return used
}

// Remove takes the item off its holder without recording it for Recycle.
// Panics when removal is not allowed; callers gate on CanRemove.
func (h *HeldItem) Remove() Item {
	if !h.CanRemove() {
		panic(fmt.Sprintf("removal of a non-removable item: %s", h.HeldName()))
	}

	removed := *h.item
	h.item = nil

	itemLogger().Debug().Str("item", removed.Name).Msg("Item removed")

	return removed
}

// Give hands the holder a new item. Panics when a held item would be
// overwritten.
func (h *HeldItem) Give(item Item) {
	if h.item != nil {
		panic(fmt.Sprintf("giving %s to a holder of %s", item.Name, h.item.Name))
	}

	h.item = &item
}

// Transfer moves this item onto another holder, Thief style. Both sides must
// allow it; callers gate on CanRemove and the receiver being empty handed.
func (h *HeldItem) Transfer(to *HeldItem) {
	taken := h.Remove()
	to.Give(taken)
}

// Swap exchanges items with another holder, Trick style. Either side may be
// empty, but neither may hold a non-removable item.
func (h *HeldItem) Swap(other *HeldItem) {
	if h.item != nil && !h.CanRemove() {
		panic(fmt.Sprintf("swap of a non-removable item: %s", h.HeldName()))
	}
	if other.item != nil && !other.CanRemove() {
		panic(fmt.Sprintf("swap of a non-removable item: %s", other.HeldName()))
	}

	h.item, other.item = other.item, h.item

	itemLogger().Debug().
		Str("item", h.HeldName()).
		Str("other_item", other.HeldName()).
		Msg("Items swapped")
}

// Recover restores the last consumed item, Recycle style. Returns false when
// there is nothing to restore or the slot is occupied.
func (h *HeldItem) Recover() bool {
	if h.LastUsed == nil || h.item != nil {
		return false
	}

	h.item = h.LastUsed
	h.LastUsed = nil

	return true
}
