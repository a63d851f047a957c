package icon

// CommonIcons is the curated quick-access list. It is not derived from any
// catalog and its entries are not checked against one.
var CommonIcons = []string{
	"mdi:home", "mdi:google", "mdi:youtube", "mdi:github",
	"mdi:twitter", "mdi:instagram", "mdi:facebook", "mdi:linkedin",
	"mdi:twitch", "mdi:discord", "mdi:reddit", "mdi:spotify",
	"mdi:netflix", "mdi:amazon", "mdi:shopping", "mdi:cart",
	"mdi:email", "mdi:calendar", "mdi:clock", "mdi:map",
	"mdi:cloud", "mdi:folder", "mdi:file", "mdi:cog",
	"mdi:code-tags", "mdi:laptop", "mdi:controller", "mdi:school",
	"mdi:bank", "mdi:chart-line", "mdi:weather-sunny", "mdi:weather-night",
	"mdi:pencil", "mdi:delete", "mdi:plus", "mdi:minus",
}

// Common returns a copy of CommonIcons safe for callers to modify.
func Common() []string {
	return append([]string(nil), CommonIcons...)
}
