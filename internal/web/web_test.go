package web

import (
	"bytes"
	"testing"
	"time"

	"bowls-club-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"master.html", "home.html", "players.html", "competitions.html", "sponsors.html", "fixtures_results.html", "404.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestHomeWithoutClubProfile(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "home.html", Page{Title: "Home", Base: "/", ClubName: "Crosshands"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Club details coming soon.")
	assert.Contains(t, buf.String(), "<title>Home | Crosshands</title>")
}

func TestHomeWithClubProfile(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	email := "secretary@example.com"
	club := &models.OwnClub{Name: "Crosshands Bowls Club", ShortName: "Crosshands", Location: "Cross Hands", ContactEmail: &email}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "home.html", Page{Title: "Home", Base: "/bowls_club/", ClubName: club.ShortName, Club: club})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Crosshands Bowls Club plays at Cross Hands.")
	assert.Contains(t, buf.String(), "mailto:secretary@example.com")
	assert.Contains(t, buf.String(), `href="/bowls_club/players/"`)
}

func TestFuncMap(t *testing.T) {
	funcs := FuncMap()
	score := funcs["score"].(func(*int) string)
	formatDate := funcs["formatDate"].(func(time.Time) string)

	seven := 7
	assert.Equal(t, "7", score(&seven))
	assert.Equal(t, "-", score(nil))
	assert.Equal(t, "Sat 15 Jun 2024, 14:00", formatDate(time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)))
}
