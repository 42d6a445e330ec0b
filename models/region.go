package models

// Region is one of the enumerated UK/Ireland areas used to scope feed
// content and driver profiles.
type Region string

const (
	RegionLondon          Region = "London"
	RegionSouthEast       Region = "South East"
	RegionSouthWest       Region = "South West"
	RegionMidlands        Region = "Midlands"
	RegionNorthWest       Region = "North West"
	RegionNorthEast       Region = "North East"
	RegionYorkshire       Region = "Yorkshire"
	RegionWales           Region = "Wales"
	RegionScotland        Region = "Scotland"
	RegionNorthernIreland Region = "Northern Ireland"
	RegionIreland         Region = "Ireland"
)

// Regions lists every valid region in display order.
var Regions = []Region{
	RegionLondon,
	RegionSouthEast,
	RegionSouthWest,
	RegionMidlands,
	RegionNorthWest,
	RegionNorthEast,
	RegionYorkshire,
	RegionWales,
	RegionScotland,
	RegionNorthernIreland,
	RegionIreland,
}

// IsValidRegion reports whether s names a known region.
func IsValidRegion(s string) bool {
	for _, r := range Regions {
		if string(r) == s {
			return true
		}
	}
	return false
}
