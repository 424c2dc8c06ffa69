package porygon

import (
	"strings"
	"testing"
)

func TestExpiringEffectNilDurationNeverExpires(t *testing.T) {
	effect := NewExpiringEffect(nil)

	for i := 0; i < 10; i++ {
		if effect.NextTurn() {
			t.Fatal("a nil duration effect should never report expiry")
		}
	}
	if !effect.Active() {
		t.Fatal("a nil duration effect should stay active")
	}
}

func TestExpiringEffectZeroValueInactive(t *testing.T) {
	var effect ExpiringEffect

	if effect.Active() {
		t.Fatal("the zero value should be inactive")
	}
	if effect.NextTurn() {
		t.Fatal("the zero value should not report expiry")
	}
}

func TestFreshBattleHasNoActiveEffects(t *testing.T) {
	host := testPokemon("pidgeot", TYPENAME_NORMAL, TYPENAME_FLYING)
	opponent := testPokemon("machamp")
	battle := testBattle(host, opponent)
	host.HeldItem.Give(Item{Name: "leftovers"})

	for name, effect := range map[string]*ExpiringEffect{
		"gravity":      &battle.Gravity,
		"trick room":   &battle.TrickRoom,
		"magic room":   &battle.MagicRoom,
		"wonder room":  &battle.WonderRoom,
		"reflect":      &battle.Trainer1.Side.Reflect,
		"light screen": &battle.Trainer1.Side.LightScreen,
		"tailwind":     &battle.Trainer2.Side.Tailwind,
		"confusion":    &host.Confusion,
		"taunt":        &host.Taunt,
		"heal block":   &host.HealBlock,
		"embargo":      &host.Embargo,
	} {
		if effect.Active() {
			t.Fatalf("%s should start inactive", name)
		}
	}

	if host.HeldItem.Get() == nil {
		t.Fatal("a fresh battle should not suppress held items")
	}
	if host.Grounded(battle) {
		t.Fatal("a flying type should not start grounded")
	}
}

func TestClearedEffectStaysInactive(t *testing.T) {
	host := testPokemon("snorlax")
	testBattle(host, testPokemon("charmander"))
	host.Confusion = NewExpiringEffect(TurnPtr(3))

	host.ClearVolatiles()

	if host.Confusion.Active() {
		t.Fatal("clearing volatiles should end confusion")
	}
}

func TestExpiringEffectCountsDown(t *testing.T) {
	effect := NewExpiringEffect(TurnPtr(2))

	if effect.NextTurn() {
		t.Fatal("effect expired a turn early")
	}
	if !effect.NextTurn() {
		t.Fatal("effect should expire on its last turn")
	}
	if effect.Active() {
		t.Fatal("expired effect still reports active")
	}
}

func TestWeatherDuplicateSetIsSilent(t *testing.T) {
	battle := testBattle(testPokemon("bulbasaur"), testPokemon("charmander"))

	first := battle.Weather.Set(WEATHER_RAIN, nil)
	if first == "" {
		t.Fatal("expected a message when rain starts")
	}

	second := battle.Weather.Set(WEATHER_RAIN, nil)
	if second != "" {
		t.Fatalf("expected duplicate rain to be silent, got %q", second)
	}
}

func TestHeavyWeatherCannotBeOverwritten(t *testing.T) {
	battle := testBattle(testPokemon("kyogre"), testPokemon("groudon"))

	battle.Weather.Set(WEATHER_HEAVY_RAIN, nil)
	msg := battle.Weather.Set(WEATHER_SUN, nil)

	if msg != "" {
		t.Fatalf("expected regular sun to fail against heavy rain, got %q", msg)
	}
	if battle.Weather.Get() != WEATHER_HEAVY_RAIN {
		t.Fatalf("expected heavy rain to persist, got %q", battle.Weather.Get())
	}
}

func TestUnknownWeatherPanics(t *testing.T) {
	battle := testBattle(testPokemon("bulbasaur"), testPokemon("charmander"))

	defer func() {
		if recover() == nil {
			t.Fatal("expected an unknown weather identifier to panic")
		}
	}()

	battle.Weather.Set("meteor-shower", nil)
}

func TestIcyRockExtendsHail(t *testing.T) {
	setter := testPokemon("snover", TYPENAME_ICE)
	battle := testBattle(setter, testPokemon("charmander"))
	setter.HeldItem.Give(Item{Name: "icy-rock"})

	battle.Weather.Set(WEATHER_HAIL, setter)

	// Seven advances leave the extended hail with one turn to go.
	for i := 0; i < 7; i++ {
		battle.Weather.NextTurn()
	}
	if battle.Weather.Get() != WEATHER_HAIL {
		t.Fatal("extended hail ended before eight turns")
	}

	battle.Weather.NextTurn()
	if battle.Weather.Get() != WEATHER_NONE {
		t.Fatal("extended hail should end after eight turns")
	}
}

func TestForecastFollowsWeather(t *testing.T) {
	castform := testPokemon("castform")
	battle := testBattle(castform, testPokemon("charmander"))
	castform.AbilityIdent = "forecast"

	msg := battle.Weather.Set(WEATHER_RAIN, nil)
	if !strings.Contains(msg, "Castform transformed!") {
		t.Fatalf("expected a form change in the weather log, got %q", msg)
	}
	if !castform.HasType(TYPENAME_WATER) {
		t.Fatal("forecast should turn castform into a water type in rain")
	}

	for battle.Weather.Get() != WEATHER_NONE {
		msg = battle.Weather.NextTurn()
	}
	if !strings.Contains(msg, "Castform transformed!") {
		t.Fatalf("expected the form to revert when the rain ends, got %q", msg)
	}
	if !castform.HasType(TYPENAME_NORMAL) {
		t.Fatal("castform should return to its base type")
	}
}

func TestMimicryFollowsTerrain(t *testing.T) {
	stunfisk := testPokemon("stunfisk-galar", TYPENAME_GROUND, TYPENAME_STEEL)
	battle := testBattle(stunfisk, testPokemon("charmander"))
	stunfisk.AbilityIdent = "mimicry"

	msg := battle.Terrain.Set(TERRAIN_ELECTRIC, nil)
	if !strings.Contains(msg, "transformed!") {
		t.Fatalf("expected a form change in the terrain log, got %q", msg)
	}
	if !stunfisk.HasType(TYPENAME_ELECTRIC) {
		t.Fatal("mimicry should match the electric terrain")
	}
}

func TestTerrainDuplicateMessage(t *testing.T) {
	battle := testBattle(testPokemon("pikachu", TYPENAME_ELECTRIC), testPokemon("charmander"))

	battle.Terrain.Set(TERRAIN_ELECTRIC, nil)
	msg := battle.Terrain.Set(TERRAIN_ELECTRIC, nil)

	if msg != "There's already a electric terrain!\n" {
		t.Fatalf("unexpected duplicate terrain message: %q", msg)
	}
}

func TestTerrainFades(t *testing.T) {
	battle := testBattle(testPokemon("tapu-koko", TYPENAME_ELECTRIC), testPokemon("charmander"))

	battle.Terrain.Set(TERRAIN_GRASSY, nil)
	for i := 0; i < 4; i++ {
		if msg := battle.Terrain.NextTurn(); msg != "" {
			t.Fatalf("terrain faded early: %q", msg)
		}
	}

	if msg := battle.Terrain.NextTurn(); msg != "The grassy terrain faded!\n" {
		t.Fatalf("unexpected terrain fade message: %q", msg)
	}
}
