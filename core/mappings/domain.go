package mappings

import (
	"errors"
	"fmt"
	"strings"
)

// Domain names one identifier registry.
type Domain string

const (
	DomainEnchantment   Domain = "enchantment"
	DomainPotion        Domain = "potion"
	DomainPotionEffect  Domain = "potion_effect"
	DomainAttribute     Domain = "attribute"
	DomainInstrument    Domain = "instrument"
	DomainBannerPattern Domain = "banner_pattern"
	DomainTrimMaterial  Domain = "trim_material"
	DomainTrimPattern   Domain = "trim_pattern"
	DomainMapDecoration Domain = "map_decoration"
	// DomainItem lists legacy item names indexed by legacy item id.
	DomainItem Domain = "item"
)

// ErrUnknownDomain is returned for domain names outside the known set.
var ErrUnknownDomain = errors.New("unknown mapping domain")

var domains = []Domain{
	DomainEnchantment,
	DomainPotion,
	DomainPotionEffect,
	DomainAttribute,
	DomainInstrument,
	DomainBannerPattern,
	DomainTrimMaterial,
	DomainTrimPattern,
	DomainMapDecoration,
	DomainItem,
}

// Domains returns every known domain.
func Domains() []Domain {
	return append([]Domain(nil), domains...)
}

// ParseDomain validates a domain name.
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range domains {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
}

const namespace = "minecraft:"

// normalizeKey strips the default namespace so lookups accept both forms.
func normalizeKey(key string) string {
	return strings.TrimPrefix(key, namespace)
}
