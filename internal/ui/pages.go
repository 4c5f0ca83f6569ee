package ui

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/freshlyset/freshly/internal/site"
)

// Document wraps a page body in the shared HTML5 shell. analyticsID is the
// measurement ID injected at build time; empty means no analytics snippet.
func Document(title, analyticsID string, body g.Node) g.Node {
	head := []g.Node{
		Link(Rel("stylesheet"), Href("/static/css/site.css")),
	}
	if analyticsID != "" {
		head = append(head,
			Script(Async(), Src("https://www.googletagmanager.com/gtag/js?id="+analyticsID)),
			Script(g.Raw("window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config','"+analyticsID+"');")),
		)
	}
	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head:     head,
		Body:     []g.Node{body},
	})
}

// AboutPage sequences the About page: navbar, hero, mission/vision, team,
// farming systems, join-us, footer, in exactly that order.
func AboutPage(content site.Content) g.Node {
	return Div(
		Navbar(content.SiteName),
		Main(
			HeroSection(content.Hero),
			MissionVision(content.Mission, content.Vision),
			Team(content.Team),
			FarmingSystems(content.Systems),
			JoinUs(content.JoinUs),
		),
		PageFooter(content.SiteName, content.Tagline),
	)
}

// HomePage is the landing page: hero, the systems showcase and the closing
// call to action between the shared chrome.
func HomePage(content site.Content) g.Node {
	return Div(
		Navbar(content.SiteName),
		Main(
			HeroSection(site.Hero{
				Title:    content.SiteName,
				Subtitle: content.Tagline,
				Image:    content.Hero.Image,
			}),
			FarmingSystems(content.Systems),
			JoinUs(content.JoinUs),
		),
		PageFooter(content.SiteName, content.Tagline),
	)
}

// ErrorPage is the static not-found page the file server falls back to.
func ErrorPage(content site.Content) g.Node {
	return Div(
		Navbar(content.SiteName),
		Main(
			Section(
				ID("error"),
				Class("text-center py-24"),
				H1(Class("text-5xl font-extrabold text-green-900 mb-4"), g.Text("Page Not Found")),
				P(Class("text-gray-600"), g.Text("The page you are looking for has been composted.")),
				A(Href("/"), Class("text-green-700 underline"), g.Text("Back to the garden")),
			),
		),
		PageFooter(content.SiteName, content.Tagline),
	)
}
