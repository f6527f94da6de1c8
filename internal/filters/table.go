package filters

// entry is the static table's value: explicitly unfiltered, one keyword,
// or several keywords that are all tried with the best result kept.
type entry struct {
	none     bool
	keywords []string
}

func one(keyword string) entry {
	return entry{keywords: []string{keyword}}
}

func many(keywords ...string) entry {
	return entry{keywords: keywords}
}

var noFilter = entry{none: true}

// categoryFilters maps capture folder names to corpus filters. Multi-value
// entries cover vendor variation: a "version" capture may match Cisco
// version templates, Palo Alto system_info, or ProCurve system templates.
var categoryFilters = map[string]entry{
	"arp":              one("arp"),
	"authentication":   one("authentication"),
	"authorization":    one("authorization"),
	"bgp-neighbor":     one("bgp_neighbor"),
	"bgp-summary":      one("bgp_summary"),
	"bgp-table":        one("bgp_table"),
	"bgp-table-detail": one("bgp_table"),
	"cdp":              one("cdp"),
	"cdp-detail":       one("cdp_neighbor_detail"),
	"cdp-detail-ios":   one("cdp_neighbor_detail"),
	"cdp-detail-nexus": one("cdp_neighbor_detail"),
	"cdp_neighbors":    one("cdp_neighbor"),
	"configs":          noFilter, // raw configs have no line templates
	"console":          one("line"),
	"eigrp-neighbor":   one("eigrp_neighbor"),
	"interfaces":       one("interface"),
	"int-status":       many("interface_status", "interface_brief"),
	"inventory":        one("inventory"),
	"ip_ssh":           one("ssh"),
	"license":          one("license"),
	"license_save":     one("license"),
	"lldp":             many("lldp_neighbor", "lldp_remote"),
	"lldp-detail":      many("lldp_neighbor_detail", "lldp_remote"),
	"lldp_neighbors":   many("lldp_neighbor", "lldp_remote"),
	"mac":              many("mac_address", "mac_table"),
	"mac-aruba":        many("mac_address", "mac_table"),
	"nat":              one("nat"),
	"ntp_status":       many("ntp_status", "ntp_association"),
	"ospf-neighbor":    one("ospf_neighbor"),
	"routes":           many("route", "ip_route"),
	"route-table":      many("route", "ip_route"),
	"snmp_server":      one("snmp"),
	"spanning-tree":    one("spanning_tree"),
	"syslog":           one("logging"),
	"tacacs":           one("tacacs"),
	"version":          many("version", "system_info", "system"),
	"vlans":            one("vlan"),
	"vrf":              one("vrf"),
}
