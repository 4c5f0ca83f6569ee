package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshlyset/freshly/internal/site"
)

func TestSystemCardRendersEachFieldOnce(t *testing.T) {
	card := site.Card{
		Number: 1,
		Image:  "/static/media/veggieRack.png",
		Title:  "Hydroponics System",
		Body:   "Soil-free racks that grow leafy greens in recirculating nutrient water.",
	}

	var sb strings.Builder
	require.NoError(t, SystemCard(card).Render(&sb))
	html := sb.String()

	assert.Equal(t, 1, strings.Count(html, card.Title))
	assert.Equal(t, 1, strings.Count(html, card.Image))
	assert.Equal(t, 1, strings.Count(html, card.Body))
	assert.Contains(t, html, ">01<", "ordinal badge")
}

func TestMemberCardRendersEachFieldOnce(t *testing.T) {
	member := site.TeamMember{
		Image: "/static/media/team-amara.png",
		Name:  "Amara Okafor",
		Role:  "Founder",
		Bio:   "Started Freshly after turning a vacant lot into a forty-plot community garden.",
	}

	var sb strings.Builder
	require.NoError(t, MemberCard(member).Render(&sb))
	html := sb.String()

	assert.Equal(t, 1, strings.Count(html, member.Image))
	assert.Equal(t, 1, strings.Count(html, member.Name))
	assert.Equal(t, 1, strings.Count(html, member.Role))
	assert.Equal(t, 1, strings.Count(html, member.Bio))
}

func TestSystemCardWithoutNumberOmitsBadge(t *testing.T) {
	card := site.Card{Image: "/static/media/a.png", Title: "A", Body: "a"}

	var sb strings.Builder
	require.NoError(t, SystemCard(card).Render(&sb))

	assert.NotContains(t, sb.String(), "system-card-number")
}

func TestSystemCardEmptyBodyRendersEmpty(t *testing.T) {
	card := site.Card{Number: 2, Image: "/static/media/a.png", Title: "A"}

	var sb strings.Builder
	require.NoError(t, SystemCard(card).Render(&sb))

	assert.Contains(t, sb.String(), "<p class=\"text-gray-600 leading-relaxed\"></p>")
}

func TestRenderingIsDeterministic(t *testing.T) {
	content := site.Default()

	var first, second strings.Builder
	require.NoError(t, AboutPage(content).Render(&first))
	require.NoError(t, AboutPage(content).Render(&second))

	assert.Equal(t, first.String(), second.String())
}

func TestFarmingSystemsRendersAllCardsInOrder(t *testing.T) {
	systems := []site.Card{
		{Number: 1, Image: "/static/media/a.png", Title: "First System", Body: "a"},
		{Number: 2, Image: "/static/media/b.png", Title: "Second System", Body: "b"},
		{Number: 3, Image: "/static/media/c.png", Title: "Third System", Body: "c"},
	}

	var sb strings.Builder
	require.NoError(t, FarmingSystems(systems).Render(&sb))
	html := sb.String()

	assert.Equal(t, len(systems), strings.Count(html, "system-card "))
	first := strings.Index(html, "First System")
	second := strings.Index(html, "Second System")
	third := strings.Index(html, "Third System")
	require.NotEqual(t, -1, first)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestAboutPageSectionOrder(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, AboutPage(site.Default()).Render(&sb))
	html := sb.String()

	markers := []string{
		"<nav",
		`id="hero"`,
		`id="mission"`,
		`id="team"`,
		`id="systems"`,
		`id="join"`,
		"<footer",
	}
	last := -1
	for _, marker := range markers {
		idx := strings.Index(html, marker)
		require.NotEqual(t, -1, idx, "missing %s", marker)
		assert.Greater(t, idx, last, "%s out of order", marker)
		last = idx
	}
}

func TestHydroponicsExampleCard(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, AboutPage(site.Default()).Render(&sb))
	html := sb.String()

	assert.Contains(t, html, "Hydroponics System")
	assert.Contains(t, html, `src="/static/media/veggieRack.png"`)
}

func TestDocumentAnalytics(t *testing.T) {
	var with, without strings.Builder
	require.NoError(t, Document("About", "G-TEST123", AboutPage(site.Default())).Render(&with))
	require.NoError(t, Document("About", "", AboutPage(site.Default())).Render(&without))

	assert.Contains(t, with.String(), "googletagmanager.com/gtag/js?id=G-TEST123")
	assert.NotContains(t, without.String(), "googletagmanager")
	assert.Contains(t, without.String(), "<!doctype html>")
	assert.Contains(t, without.String(), "<title>About</title>")
}
