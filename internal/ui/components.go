// Package ui is the component tree: leaf cards, page sections and page
// compositions. Every component is a pure function from display records to
// markup; nothing here touches the filesystem or network.
package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/freshlyset/freshly/internal/site"
)

// SystemCard renders one farming-systems showcase card. A zero Number
// renders without the ordinal badge; an empty body renders as an empty
// paragraph.
func SystemCard(c site.Card) g.Node {
	return Div(
		Class("system-card bg-white rounded-xl shadow-lg overflow-hidden"),
		g.If(c.Number > 0,
			Span(Class("system-card-number badge"), g.Text(fmt.Sprintf("%02d", c.Number))),
		),
		Img(Src(c.Image), Alt(""), Class("w-full h-48 object-cover")),
		Div(
			Class("p-6"),
			H3(Class("text-xl font-bold text-green-800 mb-2"), g.Text(c.Title)),
			P(Class("text-gray-600 leading-relaxed"), g.Text(c.Body)),
		),
	)
}

// MemberCard renders one team roster card.
func MemberCard(m site.TeamMember) g.Node {
	return Div(
		Class("member-card bg-white rounded-xl shadow-lg p-6 text-center"),
		Img(Src(m.Image), Alt(""), Class("w-24 h-24 rounded-full mx-auto mb-4 object-cover")),
		H3(Class("text-lg font-bold text-green-800"), g.Text(m.Name)),
		P(Class("text-sm uppercase tracking-wide text-green-600 mb-2"), g.Text(m.Role)),
		P(Class("text-gray-600"), g.Text(m.Bio)),
	)
}
