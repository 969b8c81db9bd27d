package display_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cardgen/internal/display"
	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/pkg/idgen"
	"github.com/KirkDiggler/cardgen/internal/profiles"
)

type ProjectTestSuite struct {
	suite.Suite
	now      time.Time
	typology *profiles.Profile
	faction  *profiles.Profile
}

func TestProjectSuite(t *testing.T) {
	suite.Run(t, new(ProjectTestSuite))
}

func (s *ProjectTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC)
	s.typology, _ = profiles.Lookup(entities.CardTypeTypology)
	s.faction, _ = profiles.Lookup(entities.CardTypeFaction)
}

func (s *ProjectTestSuite) TestComposeSubtext() {
	testCases := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "trailing empties", parts: []string{"A", "B", "", "", ""}, expected: "A - B"},
		{name: "gaps", parts: []string{"", "A", "", "B", ""}, expected: "A - B"},
		{name: "all empty", parts: []string{"", "", "", "", ""}, expected: ""},
		{name: "all set", parts: []string{"A", "B", "C", "D", "E"}, expected: "A - B - C - D - E"},
		{name: "whitespace kept", parts: []string{" ", "B"}, expected: "  - B"},
		{name: "none", parts: nil, expected: ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, display.ComposeSubtext(tc.parts...))
		})
	}
}

func (s *ProjectTestSuite) TestDates() {
	s.Assert().Equal("05/03/2026", display.IssueDate(s.now))
	s.Assert().Equal("2030-03-05", display.ExpiryDate(s.now, 4))
	s.Assert().Equal("2076-03-05", display.ExpiryDate(s.now, 50))
}

func (s *ProjectTestSuite) TestExpiryUsesUTCDate() {
	jakarta := time.FixedZone("WIB", 7*60*60)
	lateEvening := time.Date(2026, 3, 5, 3, 0, 0, 0, jakarta)

	s.Assert().Equal("05/03/2026", display.IssueDate(lateEvening))
	s.Assert().Equal("2030-03-04", display.ExpiryDate(lateEvening, 4))
}

func (s *ProjectTestSuite) TestDisplayPhoto() {
	card := s.typology.NewCard("card_1", entities.OrientationLandscape, 0)
	theme := s.typology.Catalog.ResolveTheme(card.CategoryKey)

	s.Run("no photo shows symbol", func() {
		photo := display.DisplayPhoto(card, theme)
		s.Assert().True(photo.UsesSymbol())
		s.Assert().Equal("🛡️", photo.Symbol)
	})

	card.PhotoRef = "data:image/jpeg;base64,AAAA"

	s.Run("photo shown", func() {
		photo := display.DisplayPhoto(card, theme)
		s.Assert().False(photo.UsesSymbol())
		s.Assert().Equal("data:image/jpeg;base64,AAAA", photo.Ref)
	})

	s.Run("override hides photo", func() {
		card.UseDefaultPhoto = true
		s.Assert().True(display.DisplayPhoto(card, theme).UsesSymbol())
	})

	s.Run("toggling back restores photo", func() {
		card.UseDefaultPhoto = false
		s.Assert().Equal("data:image/jpeg;base64,AAAA", display.DisplayPhoto(card, theme).Ref)
	})

	s.Run("symbol carried alongside photo", func() {
		s.Assert().Equal("🛡️", display.DisplayPhoto(card, theme).Symbol)
	})

	for _, ref := range []string{"blob:http://localhost/abc", "file:///tmp/me.jpg", "javascript:alert(1)", "me.jpg"} {
		s.Run("unusable ref "+ref, func() {
			card.PhotoRef = ref
			photo := display.DisplayPhoto(card, theme)
			s.Assert().True(photo.UsesSymbol())
			s.Assert().Empty(photo.Ref)
			s.Assert().Equal("🛡️", photo.Symbol)
		})
	}
}

func (s *ProjectTestSuite) TestUsablePhotoRef() {
	s.Assert().True(display.UsablePhotoRef("data:image/png;base64,AAAA"))
	s.Assert().True(display.UsablePhotoRef("https://example.com/me.png"))
	s.Assert().True(display.UsablePhotoRef("http://example.com/me.png"))
	s.Assert().False(display.UsablePhotoRef(""))
	s.Assert().False(display.UsablePhotoRef("data:text/html,hi"))
	s.Assert().False(display.UsablePhotoRef("blob:http://localhost/abc"))
}

func (s *ProjectTestSuite) TestProjectTypology() {
	card := s.typology.NewCard("card_1", entities.OrientationPortrait, 0)
	card.Identifier = "412345"
	card.Fields["typology1"] = "A"
	card.Fields["typology2"] = "B"
	card.Fields["zodiac"] = "Leo"

	fields := display.Project(card, s.typology, s.typology.Catalog.ResolveTheme(card.CategoryKey), s.now)

	s.Assert().Equal(202, fields.Width)
	s.Assert().Equal(320, fields.Height)
	s.Assert().Equal("TYPOLOGY ID", fields.Title)
	s.Assert().Equal("ISFJ", fields.Headline)
	s.Assert().Equal("Defender", fields.CategoryLabel)
	s.Assert().Equal("A - B", fields.ComposedSubtext)
	s.Assert().Equal([]display.Line{{Label: "Zodiac", Value: "Leo"}}, fields.Details)
	s.Assert().Equal("Knowledge is Power, but character is more", fields.Quote)
	s.Assert().Equal("PUBLIC", fields.Visibility)
	s.Assert().Equal("2076-03-05", fields.ExpiryDate)
	s.Assert().Equal("YOUR NAME - 412345", fields.QRPayload)
	s.Assert().Equal("linear-gradient(to bottom right, #1e3a8a, #06b6d4, #93c5fd)", fields.Gradient)
}

func (s *ProjectTestSuite) TestProjectFaction() {
	card := s.faction.NewCard("card_2", entities.OrientationLandscape, 0)
	card.CategoryKey = "bc_freedom"
	card.Identifier = "BC10000"
	card.Fields["visibility"] = "private"

	fields := display.Project(card, s.faction, s.faction.Catalog.ResolveTheme(card.CategoryKey), s.now)

	s.Assert().Equal("Bc Freedom", fields.Headline)
	s.Assert().Equal("PRIVATE", fields.Visibility)
	s.Assert().Equal("2030-03-05", fields.ExpiryDate)
	s.Assert().Empty(fields.ComposedSubtext)
	s.Assert().Equal([]display.Line{{Label: "Tank", Value: "T34"}, {Label: "Role", Value: "Gunner"}}, fields.Details)
	s.Assert().NotEmpty(fields.Theme.LogoRef)
}

func (s *ProjectTestSuite) TestEmptyNameStillProjects() {
	card := s.faction.NewCard("card_3", entities.OrientationLandscape, 0)
	card.Fields[entities.FieldName] = ""
	card.CategoryKey = "zzz"
	card.Identifier = "XX55555"

	fields := display.Project(card, s.faction, s.faction.Catalog.ResolveTheme(card.CategoryKey), s.now)

	s.Assert().Equal(" - XX55555", fields.QRPayload)
	s.Assert().Equal("ZZZ", fields.Headline)
	s.Assert().Equal("🎖️", fields.Photo.Symbol)
}

func (s *ProjectTestSuite) TestDefenderEndToEnd() {
	gen, err := idgen.NewCardNumber(idgen.NewSeededRoller(99))
	s.Require().NoError(err)

	card := s.typology.NewCard("card_4", entities.OrientationLandscape, 0)
	card.CategoryKey = "defender"
	card.Fields[entities.FieldName] = "Test"

	theme := s.typology.Catalog.ResolveTheme(card.CategoryKey)
	card.Identifier, err = gen.Generate(s.typology.Prefix(theme))
	s.Require().NoError(err)

	fields := display.Project(card, s.typology, theme, s.now)

	s.Assert().Regexp(`^4\d{5}$`, fields.Identifier)
	s.Assert().Equal([]string{"#1e3a8a", "#06b6d4", "#93c5fd"}, fields.Theme.GradientStops)
	s.Assert().Equal("🛡️", fields.Photo.Symbol)
	s.Assert().Equal("Test - "+fields.Identifier, fields.QRPayload)
}

func (s *ProjectTestSuite) TestUnknownCategoryEndToEnd() {
	gen, err := idgen.NewCardNumber(idgen.NewSeededRoller(5))
	s.Require().NoError(err)

	card := s.typology.NewCard("card_5", entities.OrientationLandscape, 0)
	card.CategoryKey = "zzz"
	theme := s.typology.Catalog.ResolveTheme(card.CategoryKey)
	card.Identifier, err = gen.Generate(s.typology.Prefix(theme))
	s.Require().NoError(err)

	fields := display.Project(card, s.typology, theme, s.now)

	s.Assert().Regexp(`^0\d{5}$`, fields.Identifier)
	s.Assert().Equal("🪪", fields.Photo.Symbol)
	s.Assert().Equal([]string{"#9ca3af", "#e5e7eb", "#f3f4f6"}, fields.Theme.GradientStops)
}
