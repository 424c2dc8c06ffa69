package porygon

// Fixed data sets consulted by the guard chain and the dispatcher. These are
// tables, not logic: membership decides which rule fires, the rules themselves
// live in checks.go and use.go.

// SOUND_MOVES fail against Soundproof and are silenced by Throat Chop.
var SOUND_MOVES = []string{
	"growl",
	"roar",
	"sing",
	"supersonic",
	"screech",
	"snore",
	"perish-song",
	"heal-bell",
	"uproar",
	"hyper-voice",
	"metal-sound",
	"grass-whistle",
	"howl",
	"bug-buzz",
	"chatter",
	"round",
	"echoed-voice",
	"relic-song",
	"snarl",
	"noble-roar",
	"disarming-voice",
	"parting-shot",
	"boomburst",
	"confide",
	"sparkling-aria",
	"clanging-scales",
	"clangorous-soul",
	"overdrive",
	"eerie-spell",
	"torch-song",
	"alluring-voice",
	"psychic-noise",
}

// POWDER_MOVES have no effect on Grass types, Overcoat, or a holder of
// safety-goggles.
var POWDER_MOVES = []string{
	"poison-powder",
	"stun-spore",
	"sleep-powder",
	"spore",
	"cotton-spore",
	"rage-powder",
	"powder",
	"magic-powder",
}

// BALL_BOMB_MOVES fail against Bulletproof.
var BALL_BOMB_MOVES = []string{
	"acid-spray",
	"aura-sphere",
	"barrage",
	"beak-blast",
	"bullet-seed",
	"egg-bomb",
	"electro-ball",
	"energy-ball",
	"focus-blast",
	"gyro-ball",
	"ice-ball",
	"magnet-bomb",
	"mist-ball",
	"mud-bomb",
	"octazooka",
	"pollen-puff",
	"pyro-ball",
	"rock-blast",
	"rock-wrecker",
	"searing-shot",
	"seed-bomb",
	"shadow-ball",
	"sludge-bomb",
	"weather-ball",
	"zap-cannon",
}

// DANCE_MOVES trigger a Dancer replay from the opposing pokemon.
var DANCE_MOVES = []string{
	"quiver-dance",
	"dragon-dance",
	"feather-dance",
	"fiery-dance",
	"lunar-dance",
	"petal-dance",
	"revelation-dance",
	"swords-dance",
	"teeter-dance",
	"victory-dance",
	"aqua-step",
	"clangorous-soul",
}

// CONTACT_MOVES touch the defender and are punished by the spiky protection
// variants and contact abilities.
var CONTACT_MOVES = []string{
	"tackle", "scratch", "pound", "slam", "mega-punch", "mega-kick",
	"double-slap", "comet-punch", "fire-punch", "ice-punch", "thunder-punch",
	"vine-whip", "cut", "wing-attack", "fly", "bind", "stomp", "double-kick",
	"jump-kick", "rolling-kick", "headbutt", "horn-attack", "fury-attack",
	"horn-drill", "body-slam", "wrap", "take-down", "thrash", "double-edge",
	"bite", "peck", "drill-peck", "submission", "low-kick", "counter",
	"seismic-toss", "strength", "petal-dance", "dig", "quick-attack", "rage",
	"bide", "lick", "waterfall", "clamp", "skull-bash", "constrict",
	"hi-jump-kick", "leech-life", "dizzy-punch", "crabhammer", "fury-swipes",
	"hyper-fang", "super-fang", "slash", "struggle", "triple-kick", "thief",
	"flame-wheel", "flail", "reversal", "mach-punch", "feint-attack",
	"outrage", "rollout", "false-swipe", "spark", "fury-cutter", "steel-wing",
	"return", "frustration", "dynamic-punch", "megahorn", "pursuit",
	"rapid-spin", "iron-tail", "metal-claw", "vital-throw", "cross-chop",
	"crunch", "extreme-speed", "rock-smash", "beat-up", "fake-out",
	"facade", "focus-punch", "smelling-salts", "superpower", "revenge",
	"brick-break", "knock-off", "endeavor", "dive", "arm-thrust",
	"blaze-kick", "ice-ball", "needle-arm", "poison-fang", "crush-claw",
	"meteor-mash", "astonish", "shadow-punch", "sky-uppercut", "aerial-ace",
	"dragon-claw", "bounce", "poison-tail", "covet", "volt-tackle",
	"leaf-blade", "wake-up-slap", "hammer-arm", "gyro-ball", "pluck",
	"u-turn", "close-combat", "payback", "assurance", "trump-card",
	"wring-out", "punishment", "last-resort", "sucker-punch", "flare-blitz",
	"force-palm", "drain-punch", "brave-bird", "giga-impact", "avalanche",
	"shadow-claw", "thunder-fang", "ice-fang", "fire-fang", "psycho-cut",
	"zen-headbutt", "night-slash", "aqua-tail", "x-scissor", "dragon-rush",
	"power-whip", "cross-poison", "iron-head", "grass-knot", "bug-bite",
	"wood-hammer", "aqua-jet", "head-smash", "double-hit", "crush-grip",
	"shadow-force", "storm-throw", "heavy-slam", "flame-charge", "low-sweep",
	"foul-play", "chip-away", "sky-drop", "circle-throw", "acrobatics",
	"retaliate", "final-gambit", "wild-charge", "drill-run", "dual-chop",
	"heart-stamp", "horn-leech", "sacred-sword", "razor-shell", "heat-crash",
	"steamroller", "tail-slap", "head-charge", "gear-grind", "bolt-strike",
	"v-create", "flying-press", "fell-stinger", "play-rough", "nuzzle",
	"power-up-punch", "dragon-ascent", "first-impression", "darkest-lariat",
	"ice-hammer", "throat-chop", "anchor-shot", "liquidation", "spectral-thief",
	"plasma-fists", "jaw-lock", "bolt-beak", "fishious-rend", "drum-beating",
	"behemoth-blade", "behemoth-bash", "double-iron-bash", "grassy-glide",
	"triple-axel", "wicked-blow", "surging-strikes", "mortal-spin",
	"collision-course", "electro-drift", "rage-fist",
}

// effectIDs that bypass every form of protection.
var protectionIgnoreEffects = []int{
	EFFECT_FEINT,
	EFFECT_SHADOW_FORCE,
	EFFECT_HYPERSPACE_HOLE,
	EFFECT_FUTURE_SIGHT,
}

// effectIDs that bypass all protection variants except Crafty Shield.
var protectionBypassMinusCrafty = []int{
	EFFECT_LOCK_ON,
	EFFECT_MEAN_LOOK,
	EFFECT_PERISH_SONG,
}

// All protection setting effects. Repeated use ratchets the success chance.
var protectionChanceEffects = []int{
	EFFECT_PROTECT,
	EFFECT_ENDURE,
	EFFECT_QUICK_GUARD,
	EFFECT_WIDE_GUARD,
	EFFECT_CRAFTY_SHIELD,
	EFFECT_KINGS_SHIELD,
	EFFECT_SPIKY_SHIELD,
	EFFECT_BANEFUL_BUNKER,
	EFFECT_OBSTRUCT,
	EFFECT_SILK_TRAP,
	EFFECT_BURNING_BULWARK,
	EFFECT_MAT_BLOCK,
}

// Semi invulnerable turns and the effects that can still reach them.
var (
	semiInvulnerableEffects = []int{EFFECT_FLY, EFFECT_BOUNCE, EFFECT_DIG, EFFECT_DIVE, EFFECT_SHADOW_FORCE}

	flyBypassEffects  = []int{EFFECT_GUST, EFFECT_THUNDER, EFFECT_HURRICANE, EFFECT_SMACK_DOWN, EFFECT_THOUSAND_ARROWS}
	digBypassEffects  = []int{EFFECT_EARTHQUAKE, EFFECT_MAGNITUDE}
	diveBypassEffects = []int{EFFECT_SURF}
)

// Effects that never do anything no matter the target.
var alwaysIneffectiveEffects = []int{EFFECT_CELEBRATE, EFFECT_HOLD_HANDS}

// Accuracy halves in harsh sunlight for these.
var sunAccuracyHalvedEffects = []int{EFFECT_THUNDER, EFFECT_HURRICANE}

// Two turn charge moves. Solar moves skip the charge turn in sun.
var (
	twoTurnChargeEffects = []int{EFFECT_RAZOR_WIND, EFFECT_SKY_ATTACK, EFFECT_SKULL_BASH, EFFECT_SOLAR_BEAM, EFFECT_SOLAR_BLADE, EFFECT_METEOR_BEAM}
	solarChargeEffects   = []int{EFFECT_SOLAR_BEAM, EFFECT_SOLAR_BLADE}
)

// Status infliction that skips the effect chance roll, keyed to the
// condition each move inflicts.
var unconditionalStatusEffects = map[int]string{
	EFFECT_SLEEP:       STATUS_SLEEP,
	EFFECT_TOXIC:       STATUS_TOXIC,
	EFFECT_POISON:      STATUS_POISON,
	EFFECT_PARALYZE:    STATUS_PARA,
	EFFECT_WILL_O_WISP: STATUS_BURN,
	EFFECT_INFERNO:     STATUS_BURN,
}

// Entry hazard effects, doubled PP cost under Pressure like opponent
// targeting moves.
var fieldEffectIds = []int{
	EFFECT_SPIKES,
	EFFECT_TOXIC_SPIKES,
	EFFECT_STEALTH_ROCK,
	EFFECT_STICKY_WEB,
	EFFECT_SANDSTORM,
	EFFECT_RAIN_DANCE,
	EFFECT_SUNNY_DAY,
	EFFECT_HAIL,
	EFFECT_GRAVITY,
	EFFECT_TRICK_ROOM,
	EFFECT_WONDER_ROOM,
	EFFECT_MAGIC_ROOM,
	EFFECT_ELECTRIC_TERRAIN,
	EFFECT_GRASSY_TERRAIN,
	EFFECT_MISTY_TERRAIN,
	EFFECT_PSYCHIC_TERRAIN,
}

// Copy style effects. None of them may select another copy style move.
var copyMoveEffects = []int{
	EFFECT_MIRROR_MOVE,
	EFFECT_METRONOME,
	EFFECT_SLEEP_TALK,
	EFFECT_ASSIST,
	EFFECT_ME_FIRST,
	EFFECT_COPYCAT,
	EFFECT_MIMIC,
	EFFECT_SKETCH,
	EFFECT_SNATCH,
	EFFECT_INSTRUCT,
	EFFECT_NATURE_POWER,
}

// Moves a locked or charging turn would make unselectable for Sleep Talk and
// friends.
var chargeOrLockedEffects = []int{
	EFFECT_BIDE,
	EFFECT_THRASH,
	EFFECT_RAZOR_WIND,
	EFFECT_SKY_ATTACK,
	EFFECT_SKULL_BASH,
	EFFECT_SOLAR_BEAM,
	EFFECT_SOLAR_BLADE,
	EFFECT_METEOR_BEAM,
	EFFECT_FLY,
	EFFECT_BOUNCE,
	EFFECT_DIG,
	EFFECT_DIVE,
	EFFECT_SHADOW_FORCE,
	EFFECT_ROLLOUT,
	EFFECT_UPROAR,
	EFFECT_RECHARGE,
	EFFECT_FOCUS_PUNCH,
}

var protectVariantEffects = []int{
	EFFECT_PROTECT,
	EFFECT_ENDURE,
	EFFECT_QUICK_GUARD,
	EFFECT_WIDE_GUARD,
	EFFECT_CRAFTY_SHIELD,
	EFFECT_KINGS_SHIELD,
	EFFECT_SPIKY_SHIELD,
	EFFECT_BANEFUL_BUNKER,
	EFFECT_OBSTRUCT,
	EFFECT_SILK_TRAP,
	EFFECT_BURNING_BULWARK,
	EFFECT_MAT_BLOCK,
}

// Self targeted status effects Snatch can steal.
var snatchableEffects = []int{
	EFFECT_ATTACK_UP_1,
	EFFECT_DEFENSE_UP_1,
	EFFECT_SPATK_UP_1,
	EFFECT_EVASION_UP_1,
	EFFECT_HEAL_HALF,
	EFFECT_REST,
	EFFECT_FOCUS_ENERGY,
	EFFECT_ATTACK_UP_2,
	EFFECT_DEFENSE_UP_2,
	EFFECT_SPEED_UP_2,
	EFFECT_SPATK_UP_2,
	EFFECT_SPDEF_UP_2,
	EFFECT_SUBSTITUTE,
	EFFECT_HEAL_BELL,
	EFFECT_MINIMIZE,
	EFFECT_MORNING_SUN,
	EFFECT_SYNTHESIS,
	EFFECT_MOONLIGHT,
	EFFECT_BELLY_DRUM,
	EFFECT_DEFENSE_CURL,
	EFFECT_STOCKPILE,
	EFFECT_SWALLOW,
	EFFECT_CHARGE,
	EFFECT_INGRAIN,
	EFFECT_REFRESH,
	EFFECT_COSMIC_POWER,
	EFFECT_BULK_UP,
	EFFECT_CALM_MIND,
	EFFECT_DRAGON_DANCE,
	EFFECT_ROOST,
	EFFECT_AQUA_RING,
	EFFECT_AUTOTOMIZE,
	EFFECT_QUIVER_DANCE,
	EFFECT_SHELL_SMASH,
	EFFECT_SHIFT_GEAR,
	EFFECT_COIL,
	EFFECT_GROWTH,
	EFFECT_HONE_CLAWS,
	EFFECT_WORK_UP,
	EFFECT_LASER_FOCUS,
	EFFECT_STUFF_CHEEKS,
	EFFECT_CLANGOROUS_SOUL,
}

var mimicExclusions = []int{
	EFFECT_TRANSFORM,
	EFFECT_MIMIC,
	EFFECT_METRONOME,
	EFFECT_SKETCH,
	EFFECT_STRUGGLE,
}

// Self switch effects, all validated against trap abilities and empty
// benches before acting.
var selfSwitchEffects = []int{
	EFFECT_U_TURN,
	EFFECT_BATON_PASS,
	EFFECT_PARTING_SHOT,
	EFFECT_SHED_TAIL,
	EFFECT_CHILLY_RECEPTION,
	EFFECT_HEALING_WISH,
}

var forceSwitchEffects = []int{EFFECT_FORCE_SWITCH, EFFECT_CIRCLE_THROW}

var bindingEffects = []int{
	EFFECT_BIND,
	EFFECT_THOUSAND_WAVES,
	EFFECT_SPIRIT_SHACKLE,
	EFFECT_JAW_LOCK,
	EFFECT_OCTOLOCK,
	EFFECT_MEAN_LOOK,
}

var explosiveEffects = []int{EFFECT_FAINT_USER, EFFECT_MIND_BLOWN}

// Species that no OHKO move can take down.
var ohkoImmuneSpecies = []string{"arceus", "eternatus-eternamax"}

// Items that can never leave their holder.
var nonRemovableItems = []string{
	"griseous-orb",
	"adamant-orb",
	"lustrous-orb",
	"rusted-sword",
	"rusted-shield",
	"booster-energy",
}

var nonRemovableSuffixes = []string{"-plate", "-drive", "-memory", "-mask"}
