package porygon

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Move target patterns, matching the target ids of the move data.
const (
	TARGET_SPECIFIC_MOVE     = 1
	TARGET_SELECTED_ME_FIRST = 2
	TARGET_ALLY              = 3
	TARGET_USERS_FIELD       = 4
	TARGET_USER_OR_ALLY      = 5
	TARGET_OPPONENTS_FIELD   = 6
	TARGET_USER              = 7
	TARGET_RANDOM_OPPONENT   = 8
	TARGET_ALL_OTHER_POKEMON = 9
	TARGET_SELECTED_POKEMON  = 10
	TARGET_ALL_OPPONENTS     = 11
	TARGET_ENTIRE_FIELD      = 12
	TARGET_USER_AND_ALLIES   = 13
	TARGET_ALL_POKEMON       = 14
	TARGET_FAINTING_POKEMON  = 15
)

var opponentTargets = []int{
	TARGET_SPECIFIC_MOVE,
	TARGET_SELECTED_ME_FIRST,
	TARGET_OPPONENTS_FIELD,
	TARGET_RANDOM_OPPONENT,
	TARGET_ALL_OTHER_POKEMON,
	TARGET_SELECTED_POKEMON,
	TARGET_ALL_OPPONENTS,
}

// FormatError reports move data that could not be normalized into a Move.
type FormatError struct {
	Field  string
	Reason string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("bad move data: field %q %s", e.Field, e.Reason)
}

// Move is one battle move. The tabulated fields are fixed at construction;
// only PP, the used flag, and (through Protean style effects) the element
// type change during a battle.
type Move struct {
	Id           int
	Identifier   string
	PrettyName   string
	Power        *int
	PP           int
	StartingPP   int
	Accuracy     *int
	Priority     int
	Type         string
	DamageClass  string
	Effect       int
	EffectChance *int
	Target       int
	CritRate     int
	MinHits      *int
	MaxHits      *int
	Used         bool
}

// MoveRecord is the persisted shape of a move. It normalizes into the exact
// same Move a raw row does.
type MoveRecord struct {
	Id           int    `json:"id" bson:"id"`
	Identifier   string `json:"identifier" bson:"identifier"`
	Power        *int   `json:"power" bson:"power"`
	PP           int    `json:"pp" bson:"pp"`
	Accuracy     *int   `json:"accuracy" bson:"accuracy"`
	Priority     int    `json:"priority" bson:"priority"`
	Type         string `json:"type" bson:"type"`
	DamageClass  string `json:"damage_class" bson:"damage_class"`
	Effect       int    `json:"effect" bson:"effect"`
	EffectChance *int   `json:"effect_chance" bson:"effect_chance"`
	Target       int    `json:"target" bson:"target"`
	CritRate     int    `json:"crit_rate" bson:"crit_rate"`
	MinHits      *int   `json:"min_hits" bson:"min_hits"`
	MaxHits      *int   `json:"max_hits" bson:"max_hits"`
}

// NewMove builds a Move from a raw key/value row.
func NewMove(row map[string]any) (*Move, error) {
	id, err := intField(row, "id", true)
	if err != nil {
		return nil, err
	}

	identifier, ok := row["identifier"].(string)
	if !ok || identifier == "" {
		return nil, FormatError{Field: "identifier", Reason: "is missing or not a string"}
	}

	pp, err := intField(row, "pp", true)
	if err != nil {
		return nil, err
	}

	priority, err := intField(row, "priority", true)
	if err != nil {
		return nil, err
	}

	effect, err := intField(row, "effect", true)
	if err != nil {
		return nil, err
	}

	target, err := intField(row, "target", true)
	if err != nil {
		return nil, err
	}

	critRate, err := intField(row, "crit_rate", true)
	if err != nil {
		return nil, err
	}

	damageClass, ok := row["damage_class"].(string)
	if !ok {
		return nil, FormatError{Field: "damage_class", Reason: "is missing or not a string"}
	}

	moveType, ok := row["type"].(string)
	if !ok {
		return nil, FormatError{Field: "type", Reason: "is missing or not a string"}
	}

	power, err := optionalIntField(row, "power")
	if err != nil {
		return nil, err
	}
	accuracy, err := optionalIntField(row, "accuracy")
	if err != nil {
		return nil, err
	}
	effectChance, err := optionalIntField(row, "effect_chance")
	if err != nil {
		return nil, err
	}
	minHits, err := optionalIntField(row, "min_hits")
	if err != nil {
		return nil, err
	}
	maxHits, err := optionalIntField(row, "max_hits")
	if err != nil {
		return nil, err
	}

	return &Move{
		Id:           *id,
		Identifier:   identifier,
		PrettyName:   prettyName(identifier),
		Power:        power,
		PP:           *pp,
		StartingPP:   *pp,
		Accuracy:     accuracy,
		Priority:     *priority,
		Type:         moveType,
		DamageClass:  damageClass,
		Effect:       *effect,
		EffectChance: effectChance,
		Target:       *target,
		CritRate:     *critRate,
		MinHits:      minHits,
		MaxHits:      maxHits,
	}, nil
}

// NewMoveFromRecord builds a Move from the persisted record shape.
func NewMoveFromRecord(record MoveRecord) (*Move, error) {
	if record.Identifier == "" {
		return nil, FormatError{Field: "identifier", Reason: "is missing or not a string"}
	}

	return &Move{
		Id:           record.Id,
		Identifier:   record.Identifier,
		PrettyName:   prettyName(record.Identifier),
		Power:        record.Power,
		PP:           record.PP,
		StartingPP:   record.PP,
		Accuracy:     record.Accuracy,
		Priority:     record.Priority,
		Type:         record.Type,
		DamageClass:  record.DamageClass,
		Effect:       record.Effect,
		EffectChance: record.EffectChance,
		Target:       record.Target,
		CritRate:     record.CritRate,
		MinHits:      record.MinHits,
		MaxHits:      record.MaxHits,
	}, nil
}

// Copy returns a deep value copy of the move with a fresh used flag.
func (m Move) Copy() *Move {
	copied := m
	copied.Power = copyIntPtr(m.Power)
	copied.Accuracy = copyIntPtr(m.Accuracy)
	copied.EffectChance = copyIntPtr(m.EffectChance)
	copied.MinHits = copyIntPtr(m.MinHits)
	copied.MaxHits = copyIntPtr(m.MaxHits)
	copied.Used = false

	return &copied
}

func (m Move) TargetsOpponent() bool {
	return lo.Contains(opponentTargets, m.Target)
}

func (m Move) IsSoundBased() bool {
	return lo.Contains(SOUND_MOVES, m.Identifier)
}

func (m Move) IsPowder() bool {
	return lo.Contains(POWDER_MOVES, m.Identifier)
}

func (m Move) IsBallOrBomb() bool {
	return lo.Contains(BALL_BOMB_MOVES, m.Identifier)
}

func (m Move) IsDance() bool {
	return lo.Contains(DANCE_MOVES, m.Identifier)
}

func (m Move) MakesContact() bool {
	return lo.Contains(CONTACT_MOVES, m.Identifier)
}

// SelectableByMirrorMove reports whether Mirror Move can call this move.
func (m Move) SelectableByMirrorMove() bool {
	return m.TargetsOpponent() && !lo.Contains(copyMoveEffects, m.Effect)
}

// SelectableBySleepTalk reports whether Sleep Talk can call this move.
func (m Move) SelectableBySleepTalk() bool {
	return !lo.Contains(chargeOrLockedEffects, m.Effect) && !lo.Contains(copyMoveEffects, m.Effect)
}

// SelectableByAssist reports whether Assist can call this move.
func (m Move) SelectableByAssist() bool {
	if lo.Contains(copyMoveEffects, m.Effect) || lo.Contains(chargeOrLockedEffects, m.Effect) {
		return false
	}

	if lo.Contains(protectVariantEffects, m.Effect) {
		return false
	}

	switch m.Effect {
	case EFFECT_FAKE_OUT, EFFECT_MEAN_LOOK, EFFECT_THIEF, EFFECT_TRICK, EFFECT_FEINT, EFFECT_DESTINY_BOND:
		return false
	}

	return true
}

// SelectableByMimic reports whether Mimic can copy this move.
func (m Move) SelectableByMimic() bool {
	return !lo.Contains(mimicExclusions, m.Effect)
}

// SelectableByInstruct reports whether Instruct can force a reuse of this move.
func (m Move) SelectableByInstruct() bool {
	return !lo.Contains(chargeOrLockedEffects, m.Effect) && !lo.Contains(copyMoveEffects, m.Effect)
}

// SelectableBySnatch reports whether Snatch can steal this move.
func (m Move) SelectableBySnatch() bool {
	return lo.Contains(snatchableEffects, m.Effect)
}

// String is diagnostic only, nothing in the engine branches on it.
func (m Move) String() string {
	power := "-"
	if m.Power != nil {
		power = fmt.Sprintf("%d", *m.Power)
	}
	accuracy := "-"
	if m.Accuracy != nil {
		accuracy = fmt.Sprintf("%d", *m.Accuracy)
	}

	return fmt.Sprintf("%s (%s/%s type=%s power=%s acc=%s pp=%d/%d effect=%d)",
		m.PrettyName, m.DamageClass, damageClassShort(m.DamageClass), m.Type, power, accuracy, m.PP, m.StartingPP, m.Effect)
}

func damageClassShort(class string) string {
	if len(class) == 0 {
		return "?"
	}

	return strings.ToUpper(class[0:1])
}

func intField(row map[string]any, key string, required bool) (*int, error) {
	raw, ok := row[key]
	if !ok || raw == nil {
		if required {
			return nil, FormatError{Field: key, Reason: "is missing"}
		}
		return nil, nil
	}

	switch v := raw.(type) {
	case int:
		return &v, nil
	case int64:
		conv := int(v)
		return &conv, nil
	case float64:
		conv := int(v)
		return &conv, nil
	case string:
		var conv int
		if _, err := fmt.Sscanf(v, "%d", &conv); err != nil {
			return nil, FormatError{Field: key, Reason: "cannot be read as an integer"}
		}
		return &conv, nil
	default:
		return nil, FormatError{Field: key, Reason: "cannot be read as an integer"}
	}
}

func optionalIntField(row map[string]any, key string) (*int, error) {
	return intField(row, key, false)
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}

	copied := *v
	return &copied
}
