package porygon

const (
	DAMAGECLASS_PHYSICAL = "physical"
	DAMAGECLASS_SPECIAL  = "special"
	DAMAGECLASS_STATUS   = "status"
)

// Non volatile status identifiers. A pokemon can only have one at a time and
// an empty string means no status.
const (
	STATUS_NONE   = ""
	STATUS_BURN   = "burn"
	STATUS_SLEEP  = "sleep"
	STATUS_PARA   = "paralysis"
	STATUS_FROZEN = "freeze"
	STATUS_POISON = "poison"
	STATUS_TOXIC  = "b-poison"
)

// Weather identifiers. The "h-" variants are the extreme weathers set by
// primal abilities and cannot be overwritten by regular weather moves.
const (
	WEATHER_NONE         = ""
	WEATHER_RAIN         = "rain"
	WEATHER_HEAVY_RAIN   = "h-rain"
	WEATHER_SUN          = "sun"
	WEATHER_HEAVY_SUN    = "h-sun"
	WEATHER_SANDSTORM    = "sandstorm"
	WEATHER_HAIL         = "hail"
	WEATHER_STRONG_WINDS = "h-wind"
)

const (
	TERRAIN_NONE     = ""
	TERRAIN_ELECTRIC = "electric"
	TERRAIN_GRASSY   = "grassy"
	TERRAIN_MISTY    = "misty"
	TERRAIN_PSYCHIC  = "psychic"
)

const (
	STAT_ATTACK   = "attack"
	STAT_DEFENSE  = "defense"
	STAT_SPATTACK = "special-attack"
	STAT_SPDEF    = "special-defense"
	STAT_SPEED    = "speed"
	STAT_ACCURACY = "accuracy"
	STAT_EVASION  = "evasion"
)

const (
	TYPENAME_NORMAL   = "normal"
	TYPENAME_FIRE     = "fire"
	TYPENAME_WATER    = "water"
	TYPENAME_ELECTRIC = "electric"
	TYPENAME_GRASS    = "grass"
	TYPENAME_ICE      = "ice"
	TYPENAME_FIGHTING = "fighting"
	TYPENAME_POISON   = "poison"
	TYPENAME_GROUND   = "ground"
	TYPENAME_FLYING   = "flying"
	TYPENAME_PSYCHIC  = "psychic"
	TYPENAME_BUG      = "bug"
	TYPENAME_ROCK     = "rock"
	TYPENAME_GHOST    = "ghost"
	TYPENAME_DRAGON   = "dragon"
	TYPENAME_DARK     = "dark"
	TYPENAME_STEEL    = "steel"
	TYPENAME_FAIRY    = "fairy"
	TYPENAME_TYPELESS = "typeless"
)

// StageMultipliers maps a stat stage (-6..6) to the multiplier applied to the
// raw stat value.
var StageMultipliers = map[int]float64{
	-6: 2.0 / 8.0,
	-5: 2.0 / 7.0,
	-4: 2.0 / 6.0,
	-3: 2.0 / 5.0,
	-2: 2.0 / 4.0,
	-1: 2.0 / 3.0,
	0:  1,
	1:  3.0 / 2.0,
	2:  4.0 / 2.0,
	3:  5.0 / 2.0,
	4:  6.0 / 2.0,
	5:  7.0 / 2.0,
	6:  8.0 / 2.0,
}

// AccuracyStageMultipliers maps the combined accuracy stage (attacker accuracy
// minus defender evasion, clamped to -6..6) to the multiplier applied to a
// move's accuracy.
var AccuracyStageMultipliers = map[int]float64{
	-6: 3.0 / 9.0,
	-5: 3.0 / 8.0,
	-4: 3.0 / 7.0,
	-3: 3.0 / 6.0,
	-2: 3.0 / 5.0,
	-1: 3.0 / 4.0,
	0:  1,
	1:  4.0 / 3.0,
	2:  5.0 / 3.0,
	3:  6.0 / 3.0,
	4:  7.0 / 3.0,
	5:  8.0 / 3.0,
	6:  9.0 / 3.0,
}

var critStageChances = map[int]float64{
	0: 1.0 / 24.0,
	1: 1.0 / 8.0,
	2: 1.0 / 2.0,
	3: 1.0,
}

// typeChart[attackType][defenseType] gives the damage multiplier of an attack
// of attackType hitting a pokemon of defenseType. Missing entries are neutral.
var typeChart = map[string]map[string]float64{
	TYPENAME_NORMAL: {
		TYPENAME_ROCK:  0.5,
		TYPENAME_STEEL: 0.5,
		TYPENAME_GHOST: 0,
	},
	TYPENAME_FIRE: {
		TYPENAME_GRASS:  2,
		TYPENAME_ICE:    2,
		TYPENAME_BUG:    2,
		TYPENAME_STEEL:  2,
		TYPENAME_FIRE:   0.5,
		TYPENAME_WATER:  0.5,
		TYPENAME_ROCK:   0.5,
		TYPENAME_DRAGON: 0.5,
	},
	TYPENAME_WATER: {
		TYPENAME_FIRE:   2,
		TYPENAME_GROUND: 2,
		TYPENAME_ROCK:   2,
		TYPENAME_WATER:  0.5,
		TYPENAME_GRASS:  0.5,
		TYPENAME_DRAGON: 0.5,
	},
	TYPENAME_ELECTRIC: {
		TYPENAME_WATER:    2,
		TYPENAME_FLYING:   2,
		TYPENAME_ELECTRIC: 0.5,
		TYPENAME_GRASS:    0.5,
		TYPENAME_DRAGON:   0.5,
		TYPENAME_GROUND:   0,
	},
	TYPENAME_GRASS: {
		TYPENAME_WATER:  2,
		TYPENAME_GROUND: 2,
		TYPENAME_ROCK:   2,
		TYPENAME_FIRE:   0.5,
		TYPENAME_GRASS:  0.5,
		TYPENAME_POISON: 0.5,
		TYPENAME_FLYING: 0.5,
		TYPENAME_BUG:    0.5,
		TYPENAME_DRAGON: 0.5,
		TYPENAME_STEEL:  0.5,
	},
	TYPENAME_ICE: {
		TYPENAME_GRASS:  2,
		TYPENAME_GROUND: 2,
		TYPENAME_FLYING: 2,
		TYPENAME_DRAGON: 2,
		TYPENAME_FIRE:   0.5,
		TYPENAME_WATER:  0.5,
		TYPENAME_ICE:    0.5,
		TYPENAME_STEEL:  0.5,
	},
	TYPENAME_FIGHTING: {
		TYPENAME_NORMAL:  2,
		TYPENAME_ICE:     2,
		TYPENAME_ROCK:    2,
		TYPENAME_DARK:    2,
		TYPENAME_STEEL:   2,
		TYPENAME_POISON:  0.5,
		TYPENAME_FLYING:  0.5,
		TYPENAME_PSYCHIC: 0.5,
		TYPENAME_BUG:     0.5,
		TYPENAME_FAIRY:   0.5,
		TYPENAME_GHOST:   0,
	},
	TYPENAME_POISON: {
		TYPENAME_GRASS:  2,
		TYPENAME_FAIRY:  2,
		TYPENAME_POISON: 0.5,
		TYPENAME_GROUND: 0.5,
		TYPENAME_ROCK:   0.5,
		TYPENAME_GHOST:  0.5,
		TYPENAME_STEEL:  0,
	},
	TYPENAME_GROUND: {
		TYPENAME_FIRE:     2,
		TYPENAME_ELECTRIC: 2,
		TYPENAME_POISON:   2,
		TYPENAME_ROCK:     2,
		TYPENAME_STEEL:    2,
		TYPENAME_GRASS:    0.5,
		TYPENAME_BUG:      0.5,
		TYPENAME_FLYING:   0,
	},
	TYPENAME_FLYING: {
		TYPENAME_GRASS:    2,
		TYPENAME_FIGHTING: 2,
		TYPENAME_BUG:      2,
		TYPENAME_ELECTRIC: 0.5,
		TYPENAME_ROCK:     0.5,
		TYPENAME_STEEL:    0.5,
	},
	TYPENAME_PSYCHIC: {
		TYPENAME_FIGHTING: 2,
		TYPENAME_POISON:   2,
		TYPENAME_PSYCHIC:  0.5,
		TYPENAME_STEEL:    0.5,
		TYPENAME_DARK:     0,
	},
	TYPENAME_BUG: {
		TYPENAME_GRASS:    2,
		TYPENAME_PSYCHIC:  2,
		TYPENAME_DARK:     2,
		TYPENAME_FIRE:     0.5,
		TYPENAME_FIGHTING: 0.5,
		TYPENAME_POISON:   0.5,
		TYPENAME_FLYING:   0.5,
		TYPENAME_GHOST:    0.5,
		TYPENAME_STEEL:    0.5,
		TYPENAME_FAIRY:    0.5,
	},
	TYPENAME_ROCK: {
		TYPENAME_FIRE:     2,
		TYPENAME_ICE:      2,
		TYPENAME_FLYING:   2,
		TYPENAME_BUG:      2,
		TYPENAME_FIGHTING: 0.5,
		TYPENAME_GROUND:   0.5,
		TYPENAME_STEEL:    0.5,
	},
	TYPENAME_GHOST: {
		TYPENAME_PSYCHIC: 2,
		TYPENAME_GHOST:   2,
		TYPENAME_DARK:    0.5,
		TYPENAME_NORMAL:  0,
	},
	TYPENAME_DRAGON: {
		TYPENAME_DRAGON: 2,
		TYPENAME_STEEL:  0.5,
		TYPENAME_FAIRY:  0,
	},
	TYPENAME_DARK: {
		TYPENAME_PSYCHIC:  2,
		TYPENAME_GHOST:    2,
		TYPENAME_FIGHTING: 0.5,
		TYPENAME_DARK:     0.5,
		TYPENAME_FAIRY:    0.5,
	},
	TYPENAME_STEEL: {
		TYPENAME_ICE:      2,
		TYPENAME_ROCK:     2,
		TYPENAME_FAIRY:    2,
		TYPENAME_FIRE:     0.5,
		TYPENAME_WATER:    0.5,
		TYPENAME_ELECTRIC: 0.5,
		TYPENAME_STEEL:    0.5,
	},
	TYPENAME_FAIRY: {
		TYPENAME_FIGHTING: 2,
		TYPENAME_DRAGON:   2,
		TYPENAME_DARK:     2,
		TYPENAME_FIRE:     0.5,
		TYPENAME_POISON:   0.5,
		TYPENAME_STEEL:    0.5,
	},
}
