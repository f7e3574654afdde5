package models

// World identifies which of the two competition tracks an entity belongs to.
// The values are wire-level and must match what existing clients send.
type World string

const (
	WorldHawkins    World = "HAWKINS"
	WorldUpsideDown World = "UPSIDE_DOWN"
)

// Portal slugs as they appear in requests and JWT claims.
const (
	PortalHawkinsLab = "hawkins_lab"
	PortalUpsideDown = "upside_down"
)

// WorldForPortal maps a portal slug to its stored world value.
func WorldForPortal(portal string) (World, bool) {
	switch portal {
	case PortalHawkinsLab:
		return WorldHawkins, true
	case PortalUpsideDown:
		return WorldUpsideDown, true
	}
	return "", false
}

// PortalForWorld is the inverse of WorldForPortal.
func PortalForWorld(world World) (string, bool) {
	switch world {
	case WorldHawkins:
		return PortalHawkinsLab, true
	case WorldUpsideDown:
		return PortalUpsideDown, true
	}
	return "", false
}

// OtherWorld returns the counterpart track.
func OtherWorld(world World) World {
	if world == WorldHawkins {
		return WorldUpsideDown
	}
	return WorldHawkins
}
