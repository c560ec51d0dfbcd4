package content

import (
	"strings"

	"github.com/cryptoconquerors/realm-api/internal/entities/realm"
)

// Item names referenced by game rules.
const (
	ItemHealthPotion   = "Health Potion"
	ItemStrengthPotion = "Strength Potion"
	ItemDefensePotion  = "Defense Potion"
)

// ShopItem is one entry in the fixed store catalog.
type ShopItem struct {
	Name        string
	Price       int
	Description string
}

// Shop returns the fixed 3-item store catalog.
func Shop() []ShopItem {
	return []ShopItem{
		{Name: ItemHealthPotion, Price: 50, Description: "Restores 50 HP when used with 'heal'"},
		{Name: ItemStrengthPotion, Price: 100, Description: "A tradeable brew prized by fighters"},
		{Name: ItemDefensePotion, Price: 100, Description: "A tradeable tonic that hardens the skin"},
	}
}

// ShopItemByName looks up a catalog entry case-insensitively.
func ShopItemByName(name string) (ShopItem, bool) {
	for _, it := range Shop() {
		if strings.EqualFold(it.Name, name) {
			return it, true
		}
	}
	return ShopItem{}, false
}

// Base stats before house bonuses are applied.
const (
	BaseAttack  = 1
	BaseMaxHP   = 100
	BaseDefense = 1
)

// New members start with this purse and kit.
const (
	StartingGold = 100
)

// StartingInventory is the kit granted at character creation.
func StartingInventory() []string {
	return []string{ItemHealthPotion, ItemHealthPotion}
}

// HouseBonus is the fixed starting-stat bonus a house confers.
type HouseBonus struct {
	Attack  int
	MaxHP   int
	Defense int
}

var houseBonuses = map[realm.House]HouseBonus{
	realm.HouseDragon:  {Attack: 5, MaxHP: 100, Defense: 3},
	realm.HousePhoenix: {Attack: 4, MaxHP: 120, Defense: 2},
	realm.HouseGriffin: {Attack: 3, MaxHP: 150, Defense: 2},
	realm.HouseSerpent: {Attack: 6, MaxHP: 80, Defense: 4},
}

// BonusForHouse returns the stat bonus for a house.
func BonusForHouse(h realm.House) HouseBonus {
	return houseBonuses[h]
}
