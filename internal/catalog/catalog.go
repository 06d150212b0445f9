// Package catalog holds the storefront's static, read-only product tables.
// Entries live in memory for the life of the process and are never persisted.
package catalog

// Entry is one sellable item shown in a listing.
type Entry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"img"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Catalog is a named, fixed list of entries.
type Catalog struct {
	// Slug is the URL segment the catalog is served under.
	Slug string
	// Title is shown above the listing.
	Title string
	// Noun names a single entry in user-facing messages.
	Noun    string
	entries []Entry
}

func New(slug, title, noun string, entries []Entry) *Catalog {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Catalog{Slug: slug, Title: title, Noun: noun, entries: cp}
}

// Entries returns a copy of the catalog's entries in display order.
func (c *Catalog) Entries() []Entry {
	cp := make([]Entry, len(c.entries))
	copy(cp, c.entries)
	return cp
}

// Lookup finds an entry by id.
func (c *Catalog) Lookup(id int) (Entry, bool) {
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Path is the listing URL.
func (c *Catalog) Path() string {
	return "/" + c.Slug
}

var products = New("products", "Gaming Gear", "Product", []Entry{
	{ID: 0, Name: "HyperX Cloud Stinger 2", Image: "/static/stinger2.jpg", Description: "Gaming Headset", Price: "139"},
	{ID: 1, Name: "Razer Kraken X", Image: "/static/razerkrakenxheadset.jpg", Description: "Gaming Headset", Price: "230"},
	{ID: 2, Name: "Razer DeathAdder", Image: "/static/razerdeathaddermouse.jpg", Description: "Gaming Mouse", Price: "40"},
})

var pcParts = New("pcparts", "PC Parts", "PC Part", []Entry{
	{ID: 0, Name: "Asus TUF GTX 1650 4GB", Image: "/static/gtx1650.jpg", Description: "Nvidia Graphics Card", Price: "699"},
	{ID: 1, Name: "Asus Dual RX6500XT OC", Image: "/static/rx6500xtoc.jpg", Description: "AMD Graphics Card", Price: "799"},
	{ID: 2, Name: "Gigabyte RTX 3050 EAGLE", Image: "/static/rtx3050.jpg", Description: "Nvidia Graphics Card", Price: "679"},
})

// Products is the peripherals catalog.
func Products() *Catalog { return products }

// PCParts is the components catalog.
func PCParts() *Catalog { return pcParts }

// All returns every catalog in menu order.
func All() []*Catalog {
	return []*Catalog{products, pcParts}
}
