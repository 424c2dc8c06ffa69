package porygon

import (
	"testing"
)

func TestNewMoveNormalization(t *testing.T) {
	row := map[string]any{
		"id":            33,
		"identifier":    "tackle",
		"power":         "40",
		"pp":            35,
		"accuracy":      float64(100),
		"priority":      0,
		"type":          "normal",
		"damage_class":  "physical",
		"effect":        1,
		"effect_chance": nil,
		"target":        10,
		"crit_rate":     0,
	}

	move, err := NewMove(row)
	if err != nil {
		t.Fatalf("expected tackle row to parse: %s", err)
	}

	if move.PrettyName != "Tackle" {
		t.Fatalf("expected pretty name Tackle, got %q", move.PrettyName)
	}
	if move.Power == nil || *move.Power != 40 {
		t.Fatalf("expected power 40, got %v", move.Power)
	}
	if move.Accuracy == nil || *move.Accuracy != 100 {
		t.Fatalf("expected accuracy 100, got %v", move.Accuracy)
	}
	if move.PP != 35 || move.StartingPP != 35 {
		t.Fatalf("expected pp 35/35, got %d/%d", move.PP, move.StartingPP)
	}
}

func TestNewMoveFromRecordMatchesRow(t *testing.T) {
	record := MoveRecord{
		Id:           188,
		Identifier:   "sludge-bomb",
		Power:        intPtr(90),
		PP:           10,
		Accuracy:     intPtr(100),
		Type:         "poison",
		DamageClass:  "special",
		Effect:       EFFECT_POISON_HIT,
		EffectChance: intPtr(30),
		Target:       10,
	}

	fromRecord, err := NewMoveFromRecord(record)
	if err != nil {
		t.Fatalf("expected record to parse: %s", err)
	}

	if fromRecord.PrettyName != "Sludge Bomb" {
		t.Fatalf("expected pretty name Sludge Bomb, got %q", fromRecord.PrettyName)
	}
	if fromRecord.EffectChance == nil || *fromRecord.EffectChance != 30 {
		t.Fatalf("expected effect chance 30, got %v", fromRecord.EffectChance)
	}
}

func TestMoveCopyIsIndependent(t *testing.T) {
	original := testMove("ember", EFFECT_BURN_HIT, DAMAGECLASS_SPECIAL, TYPENAME_FIRE, 40, 100)
	original.Used = true

	clone := original.Copy()

	if clone.Used {
		t.Fatal("expected copy to reset the used flag")
	}

	*clone.Power = 999
	if *original.Power == 999 {
		t.Fatal("expected copy to have its own power pointer")
	}
}

func TestMoveMissingRequiredField(t *testing.T) {
	_, err := NewMove(map[string]any{"identifier": "tackle"})
	if err == nil {
		t.Fatal("expected an error for a row with no id")
	}
}

func TestSelectableByAssistRejectsProtectVariants(t *testing.T) {
	protect := testSelfMove("protect", EFFECT_PROTECT)
	if protect.SelectableByAssist() {
		t.Fatal("assist should not be able to pick protect")
	}

	tackle := testMove("tackle", EFFECT_PLAIN, DAMAGECLASS_PHYSICAL, TYPENAME_NORMAL, 40, 100)
	if !tackle.SelectableByAssist() {
		t.Fatal("assist should be able to pick tackle")
	}
}

func intPtr(v int) *int {
	return &v
}
