package porygon

// Move effect identifiers. Every move carries exactly one of these and the
// dispatcher keys all special behavior off of it. The numbering follows the
// effect-id space of the move data the engine ingests; the constants exist so
// that set membership below reads as behavior instead of bare integers.
const (
	EFFECT_PLAIN             = 1
	EFFECT_SLEEP             = 2
	EFFECT_POISON_HIT        = 3
	EFFECT_DRAIN             = 4
	EFFECT_BURN_HIT          = 5
	EFFECT_FREEZE_HIT        = 6
	EFFECT_PARALYZE_HIT      = 7
	EFFECT_FAINT_USER        = 8
	EFFECT_DREAM_EATER       = 9
	EFFECT_MIRROR_MOVE       = 10
	EFFECT_ATTACK_UP_1       = 11
	EFFECT_DEFENSE_UP_1      = 12
	EFFECT_SPATK_UP_1        = 14
	EFFECT_EVASION_UP_1      = 17
	EFFECT_ALWAYS_HIT        = 18
	EFFECT_ATTACK_DOWN_1     = 19
	EFFECT_DEFENSE_DOWN_1    = 20
	EFFECT_SPEED_DOWN_1      = 21
	EFFECT_ACCURACY_DOWN_1   = 24
	EFFECT_EVASION_DOWN_1    = 25
	EFFECT_HAZE              = 26
	EFFECT_BIDE              = 27
	EFFECT_THRASH            = 28
	EFFECT_FORCE_SWITCH      = 29
	EFFECT_MULTI_HIT         = 30
	EFFECT_CONVERSION        = 31
	EFFECT_FLINCH_HIT        = 32
	EFFECT_HEAL_HALF         = 33
	EFFECT_TOXIC             = 34
	EFFECT_PAY_DAY           = 35
	EFFECT_LIGHT_SCREEN      = 36
	EFFECT_TRI_ATTACK        = 37
	EFFECT_REST              = 38
	EFFECT_OHKO              = 39
	EFFECT_RAZOR_WIND        = 40
	EFFECT_HALF_HP           = 41
	EFFECT_FIXED_40          = 42
	EFFECT_BIND              = 43
	EFFECT_DOUBLE_HIT        = 45
	EFFECT_CRASH_ON_MISS     = 46
	EFFECT_MIST              = 47
	EFFECT_FOCUS_ENERGY      = 48
	EFFECT_RECOIL_QUARTER    = 49
	EFFECT_CONFUSE           = 50
	EFFECT_ATTACK_UP_2       = 51
	EFFECT_DEFENSE_UP_2      = 52
	EFFECT_SPEED_UP_2        = 53
	EFFECT_SPATK_UP_2        = 54
	EFFECT_SPDEF_UP_2        = 55
	EFFECT_TRANSFORM         = 58
	EFFECT_ATTACK_DOWN_2     = 59
	EFFECT_DEFENSE_DOWN_2    = 60
	EFFECT_SPEED_DOWN_2      = 61
	EFFECT_SPATK_DOWN_2      = 62
	EFFECT_SPDEF_DOWN_2      = 63
	EFFECT_FIXED_20          = 64
	EFFECT_REFLECT           = 66
	EFFECT_POISON            = 67
	EFFECT_PARALYZE          = 68
	EFFECT_ATTACK_DOWN_HIT   = 69
	EFFECT_DEFENSE_DOWN_HIT  = 70
	EFFECT_SPEED_DOWN_HIT    = 71
	EFFECT_SPATK_DOWN_HIT    = 72
	EFFECT_SPDEF_DOWN_HIT    = 73
	EFFECT_ACCURACY_DOWN_HIT = 74
	EFFECT_SKY_ATTACK        = 75
	EFFECT_CONFUSE_HIT       = 76
	EFFECT_TWINEEDLE         = 78
	EFFECT_SUBSTITUTE        = 80
	EFFECT_RECHARGE          = 81
	EFFECT_RAGE              = 82
	EFFECT_MIMIC             = 83
	EFFECT_METRONOME         = 84
	EFFECT_LEECH_SEED        = 85
	EFFECT_SPLASH            = 86
	EFFECT_DISABLE           = 87
	EFFECT_LEVEL_DAMAGE      = 88
	EFFECT_PSYWAVE           = 89
	EFFECT_COUNTER           = 90
	EFFECT_ENCORE            = 91
	EFFECT_PAIN_SPLIT        = 92
	EFFECT_SNORE             = 93
	EFFECT_CONVERSION_2      = 94
	EFFECT_LOCK_ON           = 95
	EFFECT_SKETCH            = 96
	EFFECT_SLEEP_TALK        = 98
	EFFECT_DESTINY_BOND      = 99
	EFFECT_FLAIL             = 100
	EFFECT_SPITE             = 101
	EFFECT_FALSE_SWIPE       = 102
	EFFECT_HEAL_BELL         = 103
	EFFECT_TRIPLE_KICK       = 105
	EFFECT_THIEF             = 106
	EFFECT_MEAN_LOOK         = 107
	EFFECT_NIGHTMARE         = 108
	EFFECT_MINIMIZE          = 109
	EFFECT_CURSE             = 110
	EFFECT_PROTECT           = 112
	EFFECT_SPIKES            = 113
	EFFECT_FORESIGHT         = 114
	EFFECT_PERISH_SONG       = 115
	EFFECT_SANDSTORM         = 116
	EFFECT_ENDURE            = 117
	EFFECT_ROLLOUT           = 118
	EFFECT_SWAGGER           = 119
	EFFECT_FURY_CUTTER       = 120
	EFFECT_ATTRACT           = 121
	EFFECT_RETURN            = 122
	EFFECT_PRESENT           = 123
	EFFECT_FRUSTRATION       = 124
	EFFECT_SAFEGUARD         = 125
	EFFECT_SACRED_FIRE       = 126
	EFFECT_MAGNITUDE         = 127
	EFFECT_BATON_PASS        = 128
	EFFECT_PURSUIT           = 129
	EFFECT_RAPID_SPIN        = 130
	EFFECT_MORNING_SUN       = 131
	EFFECT_SYNTHESIS         = 132
	EFFECT_MOONLIGHT         = 133
	EFFECT_HIDDEN_POWER      = 134
	EFFECT_RAIN_DANCE        = 137
	EFFECT_SUNNY_DAY         = 138
	EFFECT_DEFENSE_UP_HIT    = 139
	EFFECT_ATTACK_UP_HIT     = 140
	EFFECT_ALL_STATS_UP_HIT  = 141
	EFFECT_BELLY_DRUM        = 143
	EFFECT_PSYCH_UP          = 144
	EFFECT_MIRROR_COAT       = 145
	EFFECT_SKULL_BASH        = 146
	EFFECT_EARTHQUAKE        = 148
	EFFECT_FUTURE_SIGHT      = 149
	EFFECT_GUST              = 150
	EFFECT_SURF              = 151
	EFFECT_SOLAR_BEAM        = 152
	EFFECT_THUNDER           = 153
	EFFECT_BEAT_UP           = 155
	EFFECT_FLY               = 156
	EFFECT_DEFENSE_CURL      = 157
	EFFECT_FAKE_OUT          = 159
	EFFECT_UPROAR            = 160
	EFFECT_STOCKPILE         = 161
	EFFECT_SPIT_UP           = 162
	EFFECT_SWALLOW           = 163
	EFFECT_HAIL              = 165
	EFFECT_TORMENT           = 166
	EFFECT_FLATTER           = 167
	EFFECT_WILL_O_WISP       = 168
	EFFECT_MEMENTO           = 169
	EFFECT_FACADE            = 170
	EFFECT_FOCUS_PUNCH       = 171
	EFFECT_SMELLING_SALTS    = 172
	EFFECT_NATURE_POWER      = 174
	EFFECT_CHARGE            = 175
	EFFECT_TAUNT             = 176
	EFFECT_HELPING_HAND      = 177
	EFFECT_TRICK             = 178
	EFFECT_ROLE_PLAY         = 179
	EFFECT_WISH              = 180
	EFFECT_ASSIST            = 181
	EFFECT_INGRAIN           = 182
	EFFECT_MAGIC_COAT        = 184
	EFFECT_RECYCLE           = 185
	EFFECT_REVENGE           = 186
	EFFECT_BRICK_BREAK       = 187
	EFFECT_YAWN              = 188
	EFFECT_KNOCK_OFF         = 189
	EFFECT_ENDEAVOR          = 190
	EFFECT_ERUPTION          = 191
	EFFECT_SKILL_SWAP        = 192
	EFFECT_IMPRISON          = 193
	EFFECT_REFRESH           = 194
	EFFECT_GRUDGE            = 195
	EFFECT_SNATCH            = 196
	EFFECT_SECRET_POWER      = 198
	EFFECT_RECOIL_THIRD      = 199
	EFFECT_MUD_SPORT         = 202
	EFFECT_POISON_FANG       = 203
	EFFECT_WEATHER_BALL      = 204
	EFFECT_OVERHEAT          = 205
	EFFECT_TICKLE            = 206
	EFFECT_COSMIC_POWER      = 207
	EFFECT_BULK_UP           = 208
	EFFECT_CALM_MIND         = 209
	EFFECT_DRAGON_DANCE      = 210
	EFFECT_WATER_SPORT       = 211
	EFFECT_CAMOUFLAGE        = 213
	EFFECT_ROOST             = 214
	EFFECT_GRAVITY           = 215
	EFFECT_MIRACLE_EYE       = 216
	EFFECT_WAKE_UP_SLAP      = 217
	EFFECT_HAMMER_ARM        = 218
	EFFECT_HEALING_WISH      = 220
	EFFECT_BRINE             = 221
	EFFECT_NATURAL_GIFT      = 222
	EFFECT_FEINT             = 223
	EFFECT_PLUCK             = 224
	EFFECT_TAILWIND          = 225
	EFFECT_ACUPRESSURE       = 226
	EFFECT_METAL_BURST       = 227
	EFFECT_U_TURN            = 228
	EFFECT_CLOSE_COMBAT      = 229
	EFFECT_PAYBACK           = 230
	EFFECT_ASSURANCE         = 231
	EFFECT_EMBARGO           = 232
	EFFECT_FLING             = 233
	EFFECT_PSYCHO_SHIFT      = 234
	EFFECT_HEAL_BLOCK        = 236
	EFFECT_POWER_TRICK       = 238
	EFFECT_GASTRO_ACID       = 239
	EFFECT_LUCKY_CHANT       = 240
	EFFECT_ME_FIRST          = 241
	EFFECT_COPYCAT           = 242
	EFFECT_POWER_SWAP        = 243
	EFFECT_GUARD_SWAP        = 244
	EFFECT_LAST_RESORT       = 246
	EFFECT_WORRY_SEED        = 247
	EFFECT_SUCKER_PUNCH      = 248
	EFFECT_TOXIC_SPIKES      = 249
	EFFECT_HEART_SWAP        = 250
	EFFECT_AQUA_RING         = 251
	EFFECT_MAGNET_RISE       = 252
	EFFECT_FLARE_BLITZ       = 253
	EFFECT_STRUGGLE          = 254
	EFFECT_DIVE              = 255
	EFFECT_DIG               = 256
	EFFECT_DEFOG             = 257
	EFFECT_TRICK_ROOM        = 258
	EFFECT_BLIZZARD          = 259
	EFFECT_BOUNCE            = 264
	EFFECT_SHADOW_FORCE      = 265
	EFFECT_HEAD_SMASH        = 266
	EFFECT_STEALTH_ROCK      = 267
	EFFECT_CHARGE_BEAM       = 271
	EFFECT_GUARD_SPLIT       = 280
	EFFECT_POWER_SPLIT       = 281
	EFFECT_WONDER_ROOM       = 282
	EFFECT_AUTOTOMIZE        = 284
	EFFECT_TELEKINESIS       = 285
	EFFECT_MAGIC_ROOM        = 286
	EFFECT_SMACK_DOWN        = 287
	EFFECT_QUIVER_DANCE      = 290
	EFFECT_SOAK              = 294
	EFFECT_FLAME_CHARGE      = 295
	EFFECT_ACID_SPRAY        = 296
	EFFECT_FOUL_PLAY         = 297
	EFFECT_SIMPLE_BEAM       = 298
	EFFECT_ENTRAINMENT       = 299
	EFFECT_ECHOED_VOICE      = 302
	EFFECT_CLEAR_SMOG        = 304
	EFFECT_STORED_POWER      = 305
	EFFECT_QUICK_GUARD       = 306
	EFFECT_SCALD             = 308
	EFFECT_SHELL_SMASH       = 309
	EFFECT_HEAL_PULSE        = 310
	EFFECT_HEX               = 311
	EFFECT_SHIFT_GEAR        = 313
	EFFECT_CIRCLE_THROW      = 314
	EFFECT_INCINERATE        = 315
	EFFECT_ACROBATICS        = 317
	EFFECT_REFLECT_TYPE      = 318
	EFFECT_FINAL_GAMBIT      = 320
	EFFECT_BESTOW            = 321
	EFFECT_INFERNO           = 322
	EFFECT_COIL              = 330
	EFFECT_HURRICANE         = 332
	EFFECT_GROWTH            = 333
	EFFECT_WIDE_GUARD        = 334
	EFFECT_HONE_CLAWS        = 336
	EFFECT_WORK_UP           = 339
	EFFECT_STICKY_WEB        = 341
	EFFECT_FELL_STINGER      = 342
	EFFECT_TRICK_OR_TREAT    = 343
	EFFECT_NOBLE_ROAR        = 344
	EFFECT_FORESTS_CURSE     = 347
	EFFECT_FREEZE_DRY        = 349
	EFFECT_PARTING_SHOT      = 351
	EFFECT_TOPSY_TURVY       = 352
	EFFECT_STRONG_DRAIN      = 353
	EFFECT_CRAFTY_SHIELD     = 354
	EFFECT_GRASSY_TERRAIN    = 356
	EFFECT_MISTY_TERRAIN     = 357
	EFFECT_KINGS_SHIELD      = 361
	EFFECT_SPIKY_SHIELD      = 362
	EFFECT_POWDER            = 366
	EFFECT_ELECTRIC_TERRAIN  = 370
	EFFECT_CELEBRATE         = 372
	EFFECT_HOLD_HANDS        = 373
	EFFECT_THOUSAND_ARROWS   = 380
	EFFECT_THOUSAND_WAVES    = 381
	EFFECT_FIRST_IMPRESSION  = 400
	EFFECT_BANEFUL_BUNKER    = 401
	EFFECT_SPIRIT_SHACKLE    = 402
	EFFECT_SPARKLING_ARIA    = 404
	EFFECT_FLORAL_HEALING    = 405
	EFFECT_STRENGTH_SAP      = 407
	EFFECT_SOLAR_BLADE       = 408
	EFFECT_TOXIC_THREAD      = 411
	EFFECT_LASER_FOCUS       = 412
	EFFECT_THROAT_CHOP       = 414
	EFFECT_PSYCHIC_TERRAIN   = 417
	EFFECT_BURN_UP           = 421
	EFFECT_SPEED_SWAP        = 422
	EFFECT_CORE_ENFORCER     = 426
	EFFECT_INSTRUCT          = 428
	EFFECT_AURORA_VEIL       = 433
	EFFECT_STOMPING_TANTRUM  = 438
	EFFECT_SPECTRAL_THIEF    = 442
	EFFECT_MIND_BLOWN        = 450
	EFFECT_JAW_LOCK          = 462
	EFFECT_STUFF_CHEEKS      = 463
	EFFECT_NO_RETREAT        = 464
	EFFECT_TAR_SHOT          = 465
	EFFECT_MAGIC_POWDER      = 466
	EFFECT_TEATIME           = 468
	EFFECT_OCTOLOCK          = 469
	EFFECT_COURT_CHANGE      = 472
	EFFECT_CLANGOROUS_SOUL   = 473
	EFFECT_DECORATE          = 475
	EFFECT_OBSTRUCT          = 480
	EFFECT_HYPERSPACE_HOLE   = 482
	EFFECT_GRAV_APPLE        = 484
	EFFECT_LIFE_DEW          = 487
	EFFECT_STEEL_ROLLER      = 494
	EFFECT_SCALE_SHOT        = 495
	EFFECT_METEOR_BEAM       = 496
	EFFECT_BURNING_JEALOUSY  = 502
	EFFECT_LASH_OUT          = 503
	EFFECT_POLTERGEIST       = 504
	EFFECT_CORROSIVE_GAS     = 505
	EFFECT_SHED_TAIL         = 508
	EFFECT_SILK_TRAP         = 509
	EFFECT_BURNING_BULWARK   = 510
	EFFECT_MAT_BLOCK         = 511
	EFFECT_EERIE_SPELL       = 513
	EFFECT_SALT_CURE         = 518
	EFFECT_MORTAL_SPIN       = 520
	EFFECT_CHILLY_RECEPTION  = 524
	EFFECT_TIDY_UP           = 525
)
