package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/freshlyset/freshly/internal/site"
)

// Navbar is the shared header chrome placed at the top of every page.
func Navbar(siteName string) g.Node {
	return Nav(
		Class("site-nav flex items-center justify-between px-8 py-4 bg-green-800 text-white"),
		A(Href("/"), Class("text-2xl font-bold"), g.Text(siteName)),
		Ul(
			Class("flex gap-6"),
			Li(A(Href("/"), g.Text("Home"))),
			Li(A(Href("/about.html"), g.Text("About"))),
		),
	)
}

// HeroSection is the page banner.
func HeroSection(h site.Hero) g.Node {
	return Section(
		ID("hero"),
		Class("hero relative text-center py-24 bg-green-50"),
		Img(Src(h.Image), Alt(""), Class("hero-image absolute inset-0 w-full h-full object-cover opacity-20")),
		H1(Class("relative text-5xl font-extrabold text-green-900 mb-4"), g.Text(h.Title)),
		P(Class("relative text-xl text-green-800 max-w-2xl mx-auto"), g.Text(h.Subtitle)),
	)
}

// MissionVision lays out the mission and vision blocks side by side.
func MissionVision(mission, vision site.Block) g.Node {
	block := func(b site.Block) g.Node {
		return Div(
			Class("p-8 bg-white rounded-xl shadow"),
			H2(Class("text-2xl font-bold text-green-800 mb-4"), g.Text(b.Title)),
			P(Class("text-gray-700 leading-relaxed"), g.Text(b.Body)),
		)
	}
	return Section(
		ID("mission"),
		Class("grid md:grid-cols-2 gap-8 px-8 py-16"),
		block(mission),
		block(vision),
	)
}

// Team lays out the roster cards under a section heading, in input order.
func Team(members []site.TeamMember) g.Node {
	return Section(
		ID("team"),
		Class("px-8 py-16 bg-green-50"),
		H2(Class("text-3xl font-bold text-center text-green-900 mb-10"), g.Text("Meet the Team")),
		Div(
			Class("grid md:grid-cols-3 gap-8"),
			g.Map(members, MemberCard),
		),
	)
}

// FarmingSystems lays out the showcase cards under a section heading, in
// input order.
func FarmingSystems(systems []site.Card) g.Node {
	return Section(
		ID("systems"),
		Class("px-8 py-16"),
		H2(Class("text-3xl font-bold text-center text-green-900 mb-10"), g.Text("How We Grow")),
		Div(
			Class("grid md:grid-cols-3 gap-8"),
			g.Map(systems, SystemCard),
		),
	)
}

// JoinUs is the closing call-to-action section.
func JoinUs(b site.Block) g.Node {
	return Section(
		ID("join"),
		Class("text-center px-8 py-16 bg-green-800 text-white"),
		H2(Class("text-3xl font-bold mb-4"), g.Text(b.Title)),
		P(Class("max-w-xl mx-auto mb-8"), g.Text(b.Body)),
		A(
			Href("/signup.html"),
			Class("inline-block px-8 py-3 bg-white text-green-800 font-bold rounded-full"),
			g.Text("Get Started"),
		),
	)
}

// PageFooter is the shared footer chrome placed at the bottom of every page.
func PageFooter(siteName, tagline string) g.Node {
	return Footer(
		Class("site-footer px-8 py-10 bg-green-900 text-green-100"),
		P(Class("font-bold"), g.Text(siteName)),
		P(Class("text-sm"), g.Text(tagline)),
	)
}
