// Package access decides which dashboard capabilities an admin account holds.
//
// Two gates exist and they are deliberately independent. Permissions are
// attached to the account and enforced by the API. The PIN gate is a shared
// code that the dashboard asks for before opening the promo code and template
// sections; it is not tied to any account and never authorises an API call.
package access

import (
	"crypto/subtle"
	"slices"
)

// Capabilities
const (
	Submissions  = "submissions"
	Participants = "participants"
	Campaigns    = "campaigns"
	PromoCodes   = "promocodes"
	Templates    = "templates"
)

// All grants every capability when present in a permission list
const All = "all"

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// Capabilities lists the dashboard sections in display order
var Capabilities = []string{Submissions, Participants, Campaigns, PromoCodes, Templates}

// pinProtected marks sections that also ask for the shared PIN
var pinProtected = map[string]bool{
	PromoCodes: true,
	Templates:  true,
}

// Principal is the subset of an admin account the predicates look at
type Principal struct {
	Role        string
	Permissions []string
}

// Section is a dashboard section visible to a principal
type Section struct {
	Name         string `json:"name"`
	PINProtected bool   `json:"pinProtected"`
}

// HasPermission reports whether p may use capability
func HasPermission(p Principal, capability string) bool {
	if p.Role == RoleSuperAdmin {
		return true
	}
	return slices.Contains(p.Permissions, capability) || slices.Contains(p.Permissions, All)
}

// HasAnyPermission reports whether p holds at least one of capabilities
func HasAnyPermission(p Principal, capabilities ...string) bool {
	for _, c := range capabilities {
		if HasPermission(p, c) {
			return true
		}
	}
	return false
}

// VisibleSections returns the dashboard sections p may open
func VisibleSections(p Principal) []Section {
	sections := make([]Section, 0, len(Capabilities))
	for _, c := range Capabilities {
		if HasPermission(p, c) {
			sections = append(sections, Section{Name: c, PINProtected: pinProtected[c]})
		}
	}
	return sections
}

// IsValidPermission reports whether perm may be granted to an admin
func IsValidPermission(perm string) bool {
	return perm == All || slices.Contains(Capabilities, perm)
}

// PINGate checks the shared dashboard PIN
type PINGate struct {
	pin string
}

func NewPINGate(pin string) PINGate {
	return PINGate{pin: pin}
}

// Protects reports whether section sits behind the PIN
func (g PINGate) Protects(section string) bool {
	return pinProtected[section]
}

// Check compares candidate with the configured PIN in constant time
func (g PINGate) Check(candidate string) bool {
	if g.pin == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.pin), []byte(candidate)) == 1
}
