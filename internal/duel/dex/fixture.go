package dex

func intp(v int) *int { return &v }

func typep(t Type) *Type { return &t }

// Fixture returns the built-in catalog used by tests and the simulator.
// Hosting applications supply their own Catalog; this one covers every
// mechanic the engine dispatches, including the alternate-form records the
// lifecycle swaps to.
func Fixture() Catalog {
	return NewCatalog(fixtureSpecies, fixtureMoves, fixtureItems)
}

var fixtureSpecies = []Species{
	{Key: "bulbasaur", BaseStats: [6]int{45, 49, 49, 65, 65, 45}, Types: []Type{TypeGrass, TypePoison}, Abilities: []Ability{"overgrow"}, WeightKg: 6.9, Evolvable: true},
	{Key: "charizard", BaseStats: [6]int{78, 84, 78, 109, 85, 100}, Types: []Type{TypeFire, TypeFlying}, Abilities: []Ability{"blaze"}, WeightKg: 90.5},
	{Key: "blastoise", BaseStats: [6]int{79, 83, 100, 85, 105, 78}, Types: []Type{TypeWater}, Abilities: []Ability{"torrent"}, WeightKg: 85.5},
	{Key: "pikachu", BaseStats: [6]int{35, 55, 40, 50, 50, 90}, Types: []Type{TypeElectric}, Abilities: []Ability{AbilityStatic}, WeightKg: 6.0, Evolvable: true},
	{Key: "garchomp", BaseStats: [6]int{108, 130, 95, 80, 85, 102}, Types: []Type{TypeDragon, TypeGround}, Abilities: []Ability{AbilitySandVeil}, WeightKg: 95.0},
	{Key: "gengar", BaseStats: [6]int{60, 65, 60, 130, 75, 110}, Types: []Type{TypeGhost, TypePoison}, Abilities: []Ability{AbilityLevitate}, WeightKg: 40.5},
	{Key: "snorlax", BaseStats: [6]int{160, 110, 65, 65, 110, 30}, Types: []Type{TypeNormal}, Abilities: []Ability{"thick-fat"}, WeightKg: 460.0},
	{Key: "lucario", BaseStats: [6]int{70, 110, 70, 115, 70, 90}, Types: []Type{TypeFighting, TypeSteel}, Abilities: []Ability{AbilityInnerFocus, AbilityJustified}, WeightKg: 54.0},
	{Key: "corviknight", BaseStats: [6]int{98, 87, 105, 53, 85, 67}, Types: []Type{TypeFlying, TypeSteel}, Abilities: []Ability{AbilityMirrorArmor}, WeightKg: 75.0},
	{Key: "milotic", BaseStats: [6]int{95, 60, 79, 100, 125, 81}, Types: []Type{TypeWater}, Abilities: []Ability{AbilityCompetitive}, WeightKg: 162.0},
	{Key: "zoroark", BaseStats: [6]int{60, 105, 60, 120, 60, 105}, Types: []Type{TypeDark}, Abilities: []Ability{AbilityIllusion}, WeightKg: 81.1},
	{Key: "terapagos", BaseStats: [6]int{90, 65, 85, 65, 85, 60}, Types: []Type{TypeNormal}, Abilities: []Ability{AbilityTeraShell}, WeightKg: 6.5},

	// Form pairs. The lifecycle swaps the species key and re-resolves
	// base stats from these records.
	{Key: "mimikyu", BaseStats: [6]int{55, 90, 80, 50, 105, 96}, Types: []Type{TypeGhost, TypeFairy}, Abilities: []Ability{AbilityDisguise}, WeightKg: 0.7},
	{Key: "mimikyu-busted", BaseStats: [6]int{55, 90, 80, 50, 105, 96}, Types: []Type{TypeGhost, TypeFairy}, Abilities: []Ability{AbilityDisguise}, WeightKg: 0.7},
	{Key: "eiscue", BaseStats: [6]int{75, 80, 110, 65, 90, 50}, Types: []Type{TypeIce}, Abilities: []Ability{AbilityIceFace}, WeightKg: 89.0},
	{Key: "eiscue-noice", BaseStats: [6]int{75, 80, 70, 65, 50, 130}, Types: []Type{TypeIce}, Abilities: []Ability{AbilityIceFace}, WeightKg: 89.0},
	{Key: "palafin", BaseStats: [6]int{100, 70, 72, 53, 62, 100}, Types: []Type{TypeWater}, Abilities: []Ability{AbilityZeroToHero}, WeightKg: 60.2},
	{Key: "palafin-hero", BaseStats: [6]int{100, 160, 97, 106, 87, 100}, Types: []Type{TypeWater}, Abilities: []Ability{AbilityZeroToHero}, WeightKg: 97.4},
	{Key: "darmanitan", BaseStats: [6]int{105, 140, 55, 30, 55, 95}, Types: []Type{TypeFire}, Abilities: []Ability{AbilityZenMode}, WeightKg: 92.9},
	{Key: "darmanitan-zen", BaseStats: [6]int{105, 30, 105, 140, 105, 55}, Types: []Type{TypeFire, TypePsychic}, Abilities: []Ability{AbilityZenMode}, WeightKg: 92.9},
	{Key: "wishiwashi", BaseStats: [6]int{45, 20, 20, 25, 25, 40}, Types: []Type{TypeWater}, Abilities: []Ability{AbilitySchooling}, WeightKg: 0.3},
	{Key: "wishiwashi-school", BaseStats: [6]int{45, 140, 130, 140, 135, 30}, Types: []Type{TypeWater}, Abilities: []Ability{AbilitySchooling}, WeightKg: 78.6},
	{Key: "arceus", BaseStats: [6]int{120, 120, 120, 120, 120, 120}, Types: []Type{TypeNormal}, Abilities: []Ability{AbilityMultitype}, WeightKg: 320.0},
	{Key: "silvally", BaseStats: [6]int{95, 95, 95, 95, 95, 95}, Types: []Type{TypeNormal}, Abilities: []Ability{AbilityRKSSystem}, WeightKg: 100.5},
}

var fixtureMoves = []Move{
	{Key: "tackle", Type: TypeNormal, Class: ClassPhysical, Power: intp(40), Accuracy: intp(100), PP: 35, MakesContact: true, IsAffectedBySubstitute: true},
	{Key: "ember", Type: TypeFire, Class: ClassSpecial, Power: intp(40), Accuracy: intp(100), PP: 25, IsAffectedBySubstitute: true, SecondaryStatus: StatusBurn, SecondaryChance: 10},
	{Key: "water-gun", Type: TypeWater, Class: ClassSpecial, Power: intp(40), Accuracy: intp(100), PP: 25, IsAffectedBySubstitute: true},
	{Key: "thunderbolt", Type: TypeElectric, Class: ClassSpecial, Power: intp(90), Accuracy: intp(100), PP: 15, IsAffectedBySubstitute: true, SecondaryStatus: StatusParalysis, SecondaryChance: 10},
	{Key: "ice-beam", Type: TypeIce, Class: ClassSpecial, Power: intp(90), Accuracy: intp(100), PP: 10, IsAffectedBySubstitute: true, SecondaryStatus: StatusFreeze, SecondaryChance: 10},
	{Key: "earthquake", Type: TypeGround, Class: ClassPhysical, Power: intp(100), Accuracy: intp(100), PP: 10, IsAffectedBySubstitute: true},
	{Key: "shadow-sneak", Type: TypeGhost, Class: ClassPhysical, Power: intp(40), Accuracy: intp(100), PP: 30, Priority: 1, MakesContact: true, IsAffectedBySubstitute: true},
	{Key: "freeze-dry", Effect: EffectAlwaysSuperVsWater, Type: TypeIce, Class: ClassSpecial, Power: intp(70), Accuracy: intp(100), PP: 20, IsAffectedBySubstitute: true, SecondaryStatus: StatusFreeze, SecondaryChance: 10},
	{Key: "thousand-arrows", Effect: EffectHitsAirborne, Type: TypeGround, Class: ClassPhysical, Power: intp(90), Accuracy: intp(100), PP: 10, IsAffectedBySubstitute: true},
	{Key: "hyper-voice", Type: TypeNormal, Class: ClassSpecial, Power: intp(90), Accuracy: intp(100), PP: 10, IsSoundBased: true},
	{Key: "bleakwind-storm", Type: TypeFlying, Class: ClassSpecial, Power: intp(100), Accuracy: intp(80), PP: 10, IsWind: true, IsAffectedBySubstitute: true},
	{Key: "giga-drain", Type: TypeGrass, Class: ClassSpecial, Power: intp(75), Accuracy: intp(100), PP: 10, IsAffectedBySubstitute: true, DrainPercent: 50},
	{Key: "flare-blitz", Type: TypeFire, Class: ClassPhysical, Power: intp(120), Accuracy: intp(100), PP: 15, MakesContact: true, IsAffectedBySubstitute: true, DrainPercent: -33, SecondaryStatus: StatusBurn, SecondaryChance: 10},
	{Key: "wrap", Effect: EffectBind, Type: TypeNormal, Class: ClassPhysical, Power: intp(15), Accuracy: intp(90), PP: 20, MakesContact: true, IsAffectedBySubstitute: true},
	{Key: "night-slash", Type: TypeDark, Class: ClassPhysical, Power: intp(70), Accuracy: intp(100), PP: 15, MakesContact: true, IsAffectedBySubstitute: true, CritRateBonus: 1},

	{Key: "swords-dance", Type: TypeNormal, Class: ClassStatus, PP: 20, StatChanges: []StatChange{{Stat: StatAttack, Delta: 2, Target: ChangeTargetSelf}}},
	{Key: "charm", Type: TypeFairy, Class: ClassStatus, Accuracy: intp(100), PP: 20, IsAffectedBySubstitute: true, StatChanges: []StatChange{{Stat: StatAttack, Delta: -2, Target: ChangeTargetOpponent}}},
	{Key: "screech", Type: TypeNormal, Class: ClassStatus, Accuracy: intp(85), PP: 40, IsSoundBased: true, StatChanges: []StatChange{{Stat: StatDefense, Delta: -2, Target: ChangeTargetOpponent}}},
	{Key: "substitute", Effect: EffectSubstitute, Type: TypeNormal, Class: ClassStatus, PP: 10},
	{Key: "endure", Effect: EffectEndure, Type: TypeNormal, Class: ClassStatus, PP: 10},
	{Key: "baton-pass", Effect: EffectBatonPass, Type: TypeNormal, Class: ClassStatus, PP: 40},
	{Key: "shed-tail", Effect: EffectShedTail, Type: TypeNormal, Class: ClassStatus, PP: 10},
	{Key: "toxic", Effect: EffectToxic, Type: TypePoison, Class: ClassStatus, Accuracy: intp(90), PP: 10, IsAffectedBySubstitute: true},
	{Key: "will-o-wisp", Effect: EffectWillOWisp, Type: TypeFire, Class: ClassStatus, Accuracy: intp(85), PP: 15, IsAffectedBySubstitute: true},
	{Key: "thunder-wave", Effect: EffectThunderW, Type: TypeElectric, Class: ClassStatus, Accuracy: intp(90), PP: 20, IsAffectedBySubstitute: true},
	{Key: "hypnosis", Effect: EffectHypnosis, Type: TypePsychic, Class: ClassStatus, Accuracy: intp(60), PP: 20, IsAffectedBySubstitute: true},
	{Key: "confuse-ray", Effect: EffectConfuse, Type: TypeGhost, Class: ClassStatus, Accuracy: intp(100), PP: 10, IsAffectedBySubstitute: true},
	{Key: "taunt", Effect: EffectTaunt, Type: TypeDark, Class: ClassStatus, Accuracy: intp(100), PP: 20},
	{Key: "odor-sleuth", Effect: EffectIdentify, Type: TypeNormal, Class: ClassStatus, PP: 40},
	{Key: "attract", Effect: EffectInfatuate, Type: TypeNormal, Class: ClassStatus, Accuracy: intp(100), PP: 15, IsAffectedBySubstitute: true},
	{Key: "disable", Effect: EffectDisable, Type: TypeNormal, Class: ClassStatus, Accuracy: intp(100), PP: 20},
	{Key: "encore", Effect: EffectEncore, Type: TypeNormal, Class: ClassStatus, Accuracy: intp(100), PP: 5, IsSoundBased: true},
	{Key: "leech-seed", Effect: EffectLeechSeed, Type: TypeGrass, Class: ClassStatus, Accuracy: intp(90), PP: 10, IsAffectedBySubstitute: true},
	{Key: "curse", Effect: EffectCurse, Type: TypeGhost, Class: ClassStatus, PP: 10},
	{Key: "recover", Effect: EffectRecover, Type: TypeNormal, Class: ClassStatus, PP: 5},
	{Key: "ingrain", Effect: EffectIngrain, Type: TypeGrass, Class: ClassStatus, PP: 20},
	{Key: "aqua-ring", Effect: EffectAquaRing, Type: TypeWater, Class: ClassStatus, PP: 20},
	{Key: "destiny-bond", Effect: EffectDestinyB, Type: TypeGhost, Class: ClassStatus, PP: 5},
	{Key: "yawn", Effect: EffectYawn, Type: TypeNormal, Class: ClassStatus, PP: 10, IsAffectedBySubstitute: true},
}

var fixtureItems = []Item{
	{ID: ItemFocusSash, Removable: true, ConsumedOnUse: true},
	{ID: ItemFocusBand, Removable: true},
	{ID: ItemLeftovers, Removable: true},
	{ID: ItemBlackSludge, Removable: true},
	{ID: ItemToxicOrb, Removable: true},
	{ID: ItemFlameOrb, Removable: true},
	{ID: ItemLumBerry, Removable: true, IsBerry: true, ConsumedOnUse: true},
	{ID: ItemSitrusBerry, Removable: true, IsBerry: true, ConsumedOnUse: true},
	{ID: ItemLiechiBerry, Removable: true, IsBerry: true, ConsumedOnUse: true},
	{ID: ItemRockyHelmet, Removable: true},
	{ID: ItemProtectivePads, Removable: true},
	{ID: ItemSafetyGoggles, Removable: true},
	{ID: ItemHeavyDutyBoots, Removable: true},
	{ID: ItemAirBalloon, Removable: true, ConsumedOnUse: true},
	{ID: ItemEjectPack, Removable: true, ConsumedOnUse: true},
	{ID: ItemBigRoot, Removable: true},
	{ID: ItemBindingBand, Removable: true},
	{ID: ItemBoosterEnergy, ConsumedOnUse: true},
	{ID: ItemElectricSeed, Removable: true, ConsumedOnUse: true},
	{ID: ItemGrassySeed, Removable: true, ConsumedOnUse: true},
	{ID: ItemMistySeed, Removable: true, ConsumedOnUse: true},
	{ID: ItemPsychicSeed, Removable: true, ConsumedOnUse: true},
	{ID: ItemIronBall, Removable: true},
	{ID: ItemChoiceScarf, Removable: true},
	{ID: ItemChoiceBand, Removable: true},
	{ID: ItemChoiceSpecs, Removable: true},
	{ID: ItemFlamePlate, PlateType: typep(TypeFire)},
	{ID: ItemPixiePlate, PlateType: typep(TypeFairy)},
	{ID: ItemFireMemory, PlateType: typep(TypeFire)},
}
