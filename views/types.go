// Package views holds the stateless templ components the site is built from.
// Components take plain props and write markup; they read nothing else.
package views

// Site holds the site-wide values components print.
type Site struct {
	Name    string
	URL     string
	Owner   string
	Tagline string
	Year    int
}

// NavLink is an entry in the header navigation.
type NavLink struct {
	Label string
	Href  string
}

// Nav is the header navigation in display order.
var Nav = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Blog", Href: "/#posts"},
	{Label: "About", Href: "/about/"},
}
