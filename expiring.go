package porygon

import (
	"fmt"

	"github.com/samber/lo"
)

// ExpiringEffect is a countdown over battle turns. Building one with a nil
// turn count makes it active forever; the zero value is inactive, so unset
// and cleared effects report themselves off.
type ExpiringEffect struct {
	remainingTurns *int
	indefinite     bool
}

func NewExpiringEffect(turns *int) ExpiringEffect {
	if turns == nil {
		return ExpiringEffect{indefinite: true}
	}

	return ExpiringEffect{remainingTurns: turns}
}

// TurnPtr is a convenience for building effects with a finite duration.
func TurnPtr(turns int) *int {
	return &turns
}

func (e *ExpiringEffect) Active() bool {
	if e.indefinite {
		return true
	}

	return e.remainingTurns != nil && *e.remainingTurns > 0
}

// NextTurn consumes one turn from the countdown and reports whether the
// effect expired on this exact turn.
func (e *ExpiringEffect) NextTurn() bool {
	if e.indefinite || e.remainingTurns == nil {
		return false
	}

	if *e.remainingTurns > 0 {
		*e.remainingTurns--
		return *e.remainingTurns == 0
	}

	return false
}

func (e *ExpiringEffect) SetTurns(turns *int) {
	e.remainingTurns = turns
	e.indefinite = turns == nil
}

func (e *ExpiringEffect) RemainingTurns() *int {
	return e.remainingTurns
}

// ExpiringItem is an ExpiringEffect carrying an item record that is dropped
// when the countdown runs out. Used for Embargo style suppression windows and
// for scheduled item returns.
type ExpiringItem struct {
	ExpiringEffect
	Item *Item
}

func NewExpiringItem(turns *int, item *Item) ExpiringItem {
	return ExpiringItem{ExpiringEffect: NewExpiringEffect(turns), Item: item}
}

func (e *ExpiringItem) NextTurn() bool {
	expired := e.ExpiringEffect.NextTurn()
	if expired {
		e.Item = nil
	}

	return expired
}

// LockedMove wraps the move a pokemon is forced to keep using over several
// turns (charge moves, thrash moves, uproar). TurnsUsed only advances while
// the lock is active.
type LockedMove struct {
	ExpiringEffect
	Move      *Move
	TurnsUsed int
}

func NewLockedMove(move *Move, turns *int) *LockedMove {
	return &LockedMove{
		ExpiringEffect: NewExpiringEffect(turns),
		Move:           move,
		TurnsUsed:      0,
	}
}

func (l *LockedMove) NextTurn() bool {
	if l.Active() {
		l.TurnsUsed++
	}

	return l.ExpiringEffect.NextTurn()
}

// ExpiringWish holds the delayed heal from Wish until it lands.
type ExpiringWish struct {
	ExpiringEffect
	Hp int
}

func NewExpiringWish(turns *int, hp int) ExpiringWish {
	return ExpiringWish{ExpiringEffect: NewExpiringEffect(turns), Hp: hp}
}

var weatherExtensionItems = map[string]string{
	WEATHER_RAIN:      "damp-rock",
	WEATHER_SUN:       "heat-rock",
	WEATHER_SANDSTORM: "smooth-rock",
	WEATHER_HAIL:      "icy-rock",
}

var validWeathers = []string{
	WEATHER_RAIN,
	WEATHER_HEAVY_RAIN,
	WEATHER_SUN,
	WEATHER_HEAVY_SUN,
	WEATHER_SANDSTORM,
	WEATHER_HAIL,
	WEATHER_STRONG_WINDS,
}

var heavyWeathers = []string{WEATHER_HEAVY_RAIN, WEATHER_HEAVY_SUN, WEATHER_STRONG_WINDS}

// Weather is the battle wide weather timer.
type Weather struct {
	ExpiringEffect
	WeatherType string

	battle *Battle
}

func NewWeather(battle *Battle) Weather {
	return Weather{ExpiringEffect: NewExpiringEffect(TurnPtr(0)), battle: battle}
}

// Get returns the current weather, hidden while a Cloud Nine or Air Lock
// pokemon is on the field.
func (w *Weather) Get() string {
	if w.battle != nil && (w.battle.AbilityInPlay("cloud-nine") || w.battle.AbilityInPlay("air-lock")) {
		return WEATHER_NONE
	}

	if !w.Active() {
		return WEATHER_NONE
	}

	return w.WeatherType
}

// Set changes the weather and returns the log delta. Setting the weather that
// is already up, or trying to replace an extreme weather with a regular one,
// is a silent no-op. Unknown identifiers are a programmer error.
func (w *Weather) Set(weatherType string, setter *Pokemon) string {
	if !lo.Contains(validWeathers, weatherType) {
		panic(fmt.Sprintf("unexpected weather identifier: %q", weatherType))
	}

	if w.WeatherType == weatherType && w.Active() {
		return ""
	}

	if lo.Contains(heavyWeathers, w.WeatherType) && w.Active() && !lo.Contains(heavyWeathers, weatherType) {
		return ""
	}

	turns := 5
	if rock, ok := weatherExtensionItems[weatherType]; ok && setter != nil && setter.HeldItem.Name() == rock {
		turns = 8
	}

	if lo.Contains(heavyWeathers, weatherType) {
		w.SetTurns(nil)
	} else {
		w.SetTurns(TurnPtr(turns))
	}

	w.WeatherType = weatherType

	internalLogger.WithName("weather").Info("weather set", "weather", weatherType, "turns", turns)

	msg := ""
	switch weatherType {
	case WEATHER_RAIN:
		msg = "It started to rain!\n"
	case WEATHER_HEAVY_RAIN:
		msg = "A heavy rain began to fall!\n"
	case WEATHER_SUN:
		msg = "The sunlight turned harsh!\n"
	case WEATHER_HEAVY_SUN:
		msg = "The sunlight turned extremely harsh!\n"
	case WEATHER_SANDSTORM:
		msg = "A sandstorm kicked up!\n"
	case WEATHER_HAIL:
		msg = "It started to hail!\n"
	case WEATHER_STRONG_WINDS:
		msg = "Mysterious strong winds are protecting Flying-type Pokemon!\n"
	}

	if w.battle != nil {
		msg += w.battle.RevertForecast()
	}

	return msg
}

// NextTurn advances the weather timer, reverting Castform style forms when
// the weather runs out.
func (w *Weather) NextTurn() string {
	if !w.ExpiringEffect.NextTurn() {
		return ""
	}

	old := w.WeatherType
	w.WeatherType = WEATHER_NONE

	msg := ""
	switch old {
	case WEATHER_RAIN, WEATHER_HEAVY_RAIN:
		msg = "The rain stopped.\n"
	case WEATHER_SUN, WEATHER_HEAVY_SUN:
		msg = "The sunlight faded.\n"
	case WEATHER_SANDSTORM:
		msg = "The sandstorm subsided.\n"
	case WEATHER_HAIL:
		msg = "The hail stopped.\n"
	case WEATHER_STRONG_WINDS:
		msg = "The mysterious strong winds have dissipated!\n"
	}

	if w.battle != nil {
		msg += w.battle.RevertForecast()
	}

	return msg
}

var validTerrains = []string{TERRAIN_ELECTRIC, TERRAIN_GRASSY, TERRAIN_MISTY, TERRAIN_PSYCHIC}

// Terrain is the battle wide terrain timer.
type Terrain struct {
	ExpiringEffect
	TerrainType string

	battle *Battle
}

func NewTerrain(battle *Battle) Terrain {
	return Terrain{ExpiringEffect: NewExpiringEffect(TurnPtr(0)), battle: battle}
}

func (t *Terrain) Get() string {
	if !t.Active() {
		return TERRAIN_NONE
	}

	return t.TerrainType
}

// Set changes the terrain and returns the log delta. Re-setting the active
// terrain reports the duplicate without resetting the timer.
//
// The duplicate message keeps the source's grammar ("a electric terrain").
func (t *Terrain) Set(terrainType string, setter *Pokemon) string {
	if !lo.Contains(validTerrains, terrainType) {
		panic(fmt.Sprintf("unexpected terrain identifier: %q", terrainType))
	}

	if t.TerrainType == terrainType && t.Active() {
		return fmt.Sprintf("There's already a %s terrain!\n", terrainType)
	}

	turns := 5
	if setter != nil && setter.HeldItem.Name() == "terrain-extender" {
		turns = 8
	}

	t.SetTurns(TurnPtr(turns))
	t.TerrainType = terrainType

	internalLogger.WithName("terrain").Info("terrain set", "terrain", terrainType, "turns", turns)

	msg := fmt.Sprintf("%s terrain spread across the battlefield!\n", capitalize(terrainType))

	if t.battle != nil {
		msg += t.battle.RevertMimicry()
	}

	return msg
}

// NextTurn advances the terrain timer, reverting Mimicry pokemon when the
// terrain runs out.
func (t *Terrain) NextTurn() string {
	if !t.ExpiringEffect.NextTurn() {
		return ""
	}

	old := t.TerrainType
	t.TerrainType = TERRAIN_NONE

	msg := fmt.Sprintf("The %s terrain faded!\n", old)

	if t.battle != nil {
		msg += t.battle.RevertMimicry()
	}

	return msg
}
