package dex

// ItemID identifies a held item. The battle dispatcher switches over these
// identities per trigger event.
type ItemID string

// ItemNone marks an empty item slot.
const ItemNone ItemID = ""

// Item identities the engine dispatches on.
const (
	ItemFocusSash      ItemID = "focus-sash"
	ItemFocusBand      ItemID = "focus-band"
	ItemLeftovers      ItemID = "leftovers"
	ItemBlackSludge    ItemID = "black-sludge"
	ItemToxicOrb       ItemID = "toxic-orb"
	ItemFlameOrb       ItemID = "flame-orb"
	ItemLumBerry       ItemID = "lum-berry"
	ItemSitrusBerry    ItemID = "sitrus-berry"
	ItemLiechiBerry    ItemID = "liechi-berry"
	ItemRockyHelmet    ItemID = "rocky-helmet"
	ItemProtectivePads ItemID = "protective-pads"
	ItemSafetyGoggles  ItemID = "safety-goggles"
	ItemHeavyDutyBoots ItemID = "heavy-duty-boots"
	ItemAirBalloon     ItemID = "air-balloon"
	ItemEjectPack      ItemID = "eject-pack"
	ItemBigRoot        ItemID = "big-root"
	ItemBindingBand    ItemID = "binding-band"
	ItemBoosterEnergy  ItemID = "booster-energy"
	ItemElectricSeed   ItemID = "electric-seed"
	ItemGrassySeed     ItemID = "grassy-seed"
	ItemMistySeed      ItemID = "misty-seed"
	ItemPsychicSeed    ItemID = "psychic-seed"
	ItemIronBall       ItemID = "iron-ball"
	ItemChoiceScarf    ItemID = "choice-scarf"
	ItemChoiceBand     ItemID = "choice-band"
	ItemChoiceSpecs    ItemID = "choice-specs"
	ItemFlamePlate     ItemID = "flame-plate"
	ItemPixiePlate     ItemID = "pixie-plate"
	ItemFireMemory     ItemID = "fire-memory"
)

// Item carries the classification flags the dispatcher consults. The
// behavior itself lives in the battle package.
type Item struct {
	ID ItemID
	// Removable items can be knocked off, stolen, or ejected.
	Removable bool
	// IsBerry items can be eaten, recycled by harvest-class abilities,
	// and stolen by pluck-class moves.
	IsBerry bool
	// ConsumedOnUse items disappear after their one-time effect.
	ConsumedOnUse bool
	// PlateType is set for plates and memories that retype a held-item
	// driven form (multitype, RKS-system).
	PlateType *Type
}
