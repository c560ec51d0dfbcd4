// Package realm implements the game entities for the Crypto Conquerors realm.
// These are data-only structs; game rules live in the game orchestrator.
package realm

import "strings"

// House is the faction a player joins at character creation. It is set once
// and confers fixed starting-stat bonuses.
type House string

// The four houses.
const (
	HouseDragon  House = "Dragon"
	HousePhoenix House = "Phoenix"
	HouseGriffin House = "Griffin"
	HouseSerpent House = "Serpent"
)

// Houses lists every valid house in display order.
func Houses() []House {
	return []House{HouseDragon, HousePhoenix, HouseGriffin, HouseSerpent}
}

// ParseHouse matches a house name case-insensitively. The second return is
// false for unknown names.
func ParseHouse(s string) (House, bool) {
	for _, h := range Houses() {
		if strings.EqualFold(string(h), s) {
			return h, true
		}
	}
	return "", false
}

// PlayerProfile is the persistent save document for one wallet key. It is
// created on first login and mutated by every game command.
type PlayerProfile struct {
	Wallet             string   `json:"wallet"`
	Name               string   `json:"name"`
	House              House    `json:"house"`
	Level              int      `json:"level"`
	Gold               int      `json:"gold"`
	HP                 int      `json:"hp"`
	MaxHP              int      `json:"maxHp"`
	Attack             int      `json:"attack"`
	Defense            int      `json:"defense"`
	Inventory          []string `json:"inventory"`
	CurrentDistrict    string   `json:"currentDistrict,omitempty"`
	DistrictProgress   int      `json:"districtProgress"`
	CompletedDistricts []string `json:"completedDistricts"`
	CreatedAt          int64    `json:"createdAt"`
	UpdatedAt          int64    `json:"updatedAt"`
}

// HasCompleted reports whether the named district has been cleared.
func (p *PlayerProfile) HasCompleted(district string) bool {
	for _, d := range p.CompletedDistricts {
		if d == district {
			return true
		}
	}
	return false
}

// CompleteDistrict records a cleared district. Entries are add-only and
// never duplicated; the return is true the first time the district is added.
func (p *PlayerProfile) CompleteDistrict(district string) bool {
	if p.HasCompleted(district) {
		return false
	}
	p.CompletedDistricts = append(p.CompletedDistricts, district)
	return true
}

// RemoveItem removes the inventory item at the given 0-based index,
// preserving order. It reports whether the index was in bounds.
func (p *PlayerProfile) RemoveItem(index int) bool {
	if index < 0 || index >= len(p.Inventory) {
		return false
	}
	p.Inventory = append(p.Inventory[:index], p.Inventory[index+1:]...)
	return true
}

// CountItem counts inventory entries with the given name.
func (p *PlayerProfile) CountItem(name string) int {
	n := 0
	for _, it := range p.Inventory {
		if it == name {
			n++
		}
	}
	return n
}

// IndexOfItem returns the first 0-based inventory index of name, or -1.
func (p *PlayerProfile) IndexOfItem(name string) int {
	for i, it := range p.Inventory {
		if it == name {
			return i
		}
	}
	return -1
}

// Clamp enforces the profile invariants: hp in [0, maxHp], district
// progress in [0, 100], gold never negative.
func (p *PlayerProfile) Clamp() {
	if p.HP < 0 {
		p.HP = 0
	}
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	if p.DistrictProgress < 0 {
		p.DistrictProgress = 0
	}
	if p.DistrictProgress > 100 {
		p.DistrictProgress = 100
	}
	if p.Gold < 0 {
		p.Gold = 0
	}
}
