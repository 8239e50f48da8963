package dex

// Ability identities the engine dispatches on, grouped by the trigger that
// consults them. Abilities missing here narrate nothing and change nothing.
const (
	// Send-out triggers
	AbilityIllusion      Ability = "illusion"
	AbilityDrizzle       Ability = "drizzle"
	AbilityDrought       Ability = "drought"
	AbilitySandStream    Ability = "sand-stream"
	AbilitySnowWarning   Ability = "snow-warning"
	AbilityElectricSurge Ability = "electric-surge"
	AbilityGrassySurge   Ability = "grassy-surge"
	AbilityMistySurge    Ability = "misty-surge"
	AbilityPsychicSurge  Ability = "psychic-surge"
	AbilityDarkAura      Ability = "dark-aura"
	AbilityFairyAura     Ability = "fairy-aura"
	AbilityAuraBreak     Ability = "aura-break"
	AbilityIntimidate    Ability = "intimidate"
	AbilityScreenCleaner Ability = "screen-cleaner"
	AbilityTrace         Ability = "trace"
	AbilityDownload      Ability = "download"
	AbilityForecast      Ability = "forecast"
	AbilityMultitype     Ability = "multitype"
	AbilityRKSSystem     Ability = "rks-system"
	AbilityPastelVeil    Ability = "pastel-veil"

	// Intimidate immunity sub-branch
	AbilityOblivious  Ability = "oblivious"
	AbilityOwnTempo   Ability = "own-tempo"
	AbilityInnerFocus Ability = "inner-focus"
	AbilityGuardDog   Ability = "guard-dog"

	// Stat chains
	AbilityGuts           Ability = "guts"
	AbilityHugePower      Ability = "huge-power"
	AbilityTabletsOfRuin  Ability = "tablets-of-ruin"
	AbilitySwordOfRuin    Ability = "sword-of-ruin"
	AbilityVesselOfRuin   Ability = "vessel-of-ruin"
	AbilityBeadsOfRuin    Ability = "beads-of-ruin"
	AbilityProtosynthesis Ability = "protosynthesis"
	AbilityQuarkDrive     Ability = "quark-drive"

	// Stat-stage pipeline
	AbilitySimple        Ability = "simple"
	AbilityContrary      Ability = "contrary"
	AbilityClearBody     Ability = "clear-body"
	AbilityWhiteSmoke    Ability = "white-smoke"
	AbilityFullMetalBody Ability = "full-metal-body"
	AbilityHyperCutter   Ability = "hyper-cutter"
	AbilityKeenEye       Ability = "keen-eye"
	AbilityBigPecks      Ability = "big-pecks"
	AbilityMirrorArmor   Ability = "mirror-armor"
	AbilityDefiant       Ability = "defiant"
	AbilityCompetitive   Ability = "competitive"
	AbilityOpportunist   Ability = "opportunist"

	// Damage pipeline
	AbilityMagicGuard    Ability = "magic-guard"
	AbilitySturdy        Ability = "sturdy"
	AbilityDisguise      Ability = "disguise"
	AbilityIceFace       Ability = "ice-face"
	AbilityColorChange   Ability = "color-change"
	AbilityAngerPoint    Ability = "anger-point"
	AbilityRattled       Ability = "rattled"
	AbilityJustified     Ability = "justified"
	AbilityBerserk       Ability = "berserk"
	AbilityEmergencyExit Ability = "emergency-exit"
	AbilityStatic        Ability = "static"
	AbilityFlameBody     Ability = "flame-body"
	AbilityPoisonPoint   Ability = "poison-point"
	AbilityEffectSpore   Ability = "effect-spore"
	AbilityCuteCharm     Ability = "cute-charm"
	AbilityPickpocket    Ability = "pickpocket"
	AbilityMummy         Ability = "mummy"
	AbilityAftermath     Ability = "aftermath"
	AbilityPerishBody    Ability = "perish-body"
	AbilityMoxie         Ability = "moxie"
	AbilityChillingNeigh Ability = "chilling-neigh"
	AbilityBeastBoost    Ability = "beast-boost"
	AbilityLiquidOoze    Ability = "liquid-ooze"
	AbilityDamp          Ability = "damp"

	// Turn-end triggers
	AbilitySpeedBoost Ability = "speed-boost"
	AbilityShedSkin   Ability = "shed-skin"
	AbilityHydration  Ability = "hydration"
	AbilityRainDish   Ability = "rain-dish"
	AbilityIceBody    Ability = "ice-body"
	AbilityDrySkin    Ability = "dry-skin"
	AbilitySolarPower Ability = "solar-power"
	AbilityBadDreams  Ability = "bad-dreams"
	AbilitySchooling  Ability = "schooling"
	AbilityZenMode    Ability = "zen-mode"

	// Switch-out triggers
	AbilityNaturalCure Ability = "natural-cure"
	AbilityRegenerator Ability = "regenerator"
	AbilityZeroToHero  Ability = "zero-to-hero"

	// Effectiveness and grounding
	AbilityLevitate  Ability = "levitate"
	AbilityTeraShell Ability = "tera-shell"
	AbilityScrappy   Ability = "scrappy"

	// Move gates and chip immunities
	AbilityPressure   Ability = "pressure"
	AbilitySoundproof Ability = "soundproof"
	AbilityWindRider  Ability = "wind-rider"
	AbilityOvercoat   Ability = "overcoat"
	AbilitySandForce  Ability = "sand-force"
	AbilitySandRush   Ability = "sand-rush"
	AbilitySandVeil   Ability = "sand-veil"
	AbilitySnowCloak  Ability = "snow-cloak"
)
