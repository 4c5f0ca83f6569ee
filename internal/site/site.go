// Package site holds the display records the generator renders. Records are
// declared once, either as the built-in defaults or loaded from a TOML
// content file, and never mutated afterwards.
package site

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Card is one numbered showcase block: an ordinal badge, an image, a title
// and a body. Number 0 means the card renders without a badge.
type Card struct {
	Number int    `toml:"number"`
	Image  string `toml:"image"`
	Title  string `toml:"title"`
	Body   string `toml:"body"`
}

// TeamMember is one roster entry on the About page.
type TeamMember struct {
	Image string `toml:"image"`
	Name  string `toml:"name"`
	Role  string `toml:"role"`
	Bio   string `toml:"bio"`
}

// Block is a heading plus a paragraph, used for the mission, vision and
// join-us sections.
type Block struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Hero is the banner at the top of a page.
type Hero struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Image    string `toml:"image"`
}

// Content is the full ordered content of the site. Slices keep their
// declared order all the way into the rendered markup.
type Content struct {
	SiteName string       `toml:"site_name"`
	Tagline  string       `toml:"tagline"`
	Hero     Hero         `toml:"hero"`
	Mission  Block        `toml:"mission"`
	Vision   Block        `toml:"vision"`
	Team     []TeamMember `toml:"team"`
	Systems  []Card       `toml:"systems"`
	JoinUs   Block        `toml:"join_us"`
}

// Default returns the built-in site content.
func Default() Content {
	return Content{
		SiteName: "Freshly",
		Tagline:  "Fresh produce, grown by the community that eats it.",
		Hero: Hero{
			Title:    "About Us",
			Subtitle: "Freshly connects neighborhood growers with the people around them, so good food never has to travel far.",
			Image:    "/static/media/communityGarden.png",
		},
		Mission: Block{
			Title: "Our Mission",
			Body:  "Make locally grown food the easy choice. We give every garden, rooftop and backyard plot the tools to grow more and share the surplus with the neighbors next door.",
		},
		Vision: Block{
			Title: "Our Vision",
			Body:  "A city where every block has a working garden and nobody is more than a short walk from something picked the same day.",
		},
		Team: []TeamMember{
			{
				Image: "/static/media/team-amara.png",
				Name:  "Amara Okafor",
				Role:  "Founder",
				Bio:   "Started Freshly after turning a vacant lot into a forty-plot community garden.",
			},
			{
				Image: "/static/media/team-dele.png",
				Name:  "Dele Adeyemi",
				Role:  "Head of Growing",
				Bio:   "Agronomist. Keeps the showcase systems producing year round.",
			},
			{
				Image: "/static/media/team-ngozi.png",
				Name:  "Ngozi Eze",
				Role:  "Community Lead",
				Bio:   "Runs the volunteer program and the weekend harvest markets.",
			},
		},
		Systems: []Card{
			{
				Number: 1,
				Image:  "/static/media/veggieRack.png",
				Title:  "Hydroponics System",
				Body:   "Soil-free racks that grow leafy greens in recirculating nutrient water, using a fraction of the space and water of an open field.",
			},
			{
				Number: 2,
				Image:  "/static/media/aquaponics.png",
				Title:  "Aquaponics System",
				Body:   "Fish tanks feed the plant beds and the plant beds clean the water, one loop producing both greens and protein.",
			},
			{
				Number: 3,
				Image:  "/static/media/verticalFarm.png",
				Title:  "Vertical Farming",
				Body:   "Stacked growing towers that turn a single wall into a full garden, ideal for balconies and courtyards.",
			},
		},
		JoinUs: Block{
			Title: "Join Us",
			Body:  "Whether you have a whole yard or a single windowsill, there is a plot with your name on it. Sign up and start growing.",
		},
	}
}

// Load reads a TOML content file and overlays it on the defaults. Keys
// absent from the file keep their default values; lists present in the file
// replace the default list wholesale. Showcase cards without an explicit
// number are numbered sequentially after their last numbered predecessor.
func Load(path string) (Content, error) {
	content := Default()
	if _, err := toml.DecodeFile(path, &content); err != nil {
		return Content{}, fmt.Errorf("load content %s: %w", path, err)
	}
	next := 1
	for i := range content.Systems {
		if content.Systems[i].Number == 0 {
			content.Systems[i].Number = next
		}
		next = content.Systems[i].Number + 1
	}
	return content, nil
}
