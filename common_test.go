package porygon

import (
	"math/rand/v2"
)

func testPokemon(species string, types ...string) *Pokemon {
	if len(types) == 0 {
		types = []string{TYPENAME_NORMAL}
	}

	p := NewPokemon(species, 50, types, "", RawStats{
		Hp:        200,
		Attack:    100,
		Defense:   100,
		SpAttack:  100,
		SpDefense: 100,
		Speed:     100,
	})

	return &p
}

func testBattle(p1 *Pokemon, p2 *Pokemon) *Battle {
	t1 := &Trainer{Name: "Host", Party: []*Pokemon{p1}}
	t2 := &Trainer{Name: "Opponent", Party: []*Pokemon{p2}}

	return NewBattle(t1, t2, *rand.NewPCG(105, 190))
}

func testMove(identifier string, effect int, damageClass string, typeName string, power int, accuracy int) *Move {
	m := &Move{
		Identifier:  identifier,
		PrettyName:  prettyName(identifier),
		PP:          10,
		StartingPP:  10,
		Type:        typeName,
		DamageClass: damageClass,
		Effect:      effect,
		Target:      TARGET_SELECTED_POKEMON,
	}

	if power > 0 {
		m.Power = &power
	}
	if accuracy > 0 {
		m.Accuracy = &accuracy
	}

	return m
}

func testStatusMove(identifier string, effect int) *Move {
	m := testMove(identifier, effect, DAMAGECLASS_STATUS, TYPENAME_NORMAL, 0, 0)
	return m
}

func testSelfMove(identifier string, effect int) *Move {
	m := testStatusMove(identifier, effect)
	m.Target = TARGET_USER
	return m
}
