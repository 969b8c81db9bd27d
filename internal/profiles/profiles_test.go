package profiles_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/profiles"
	"github.com/KirkDiggler/cardgen/internal/themes"
)

type ProfilesTestSuite struct {
	suite.Suite
}

func TestProfilesSuite(t *testing.T) {
	suite.Run(t, new(ProfilesTestSuite))
}

func (s *ProfilesTestSuite) TestEveryTypeHasProfile() {
	all := profiles.All()
	s.Require().Len(all, len(entities.CardTypes))
	for i, p := range all {
		s.Assert().Equal(entities.CardTypes[i], p.Type)
		s.Assert().NotNil(p.Catalog)
		s.Assert().Equal(p.Type, p.Catalog.CardType())
		s.Assert().True(p.Supports(entities.OrientationLandscape))
		s.Assert().NotEqual(themes.Unknown, p.Catalog.Resolve(p.DefaultCategory))
	}

	_, ok := profiles.Lookup(entities.CardType("badge"))
	s.Assert().False(ok)
}

func (s *ProfilesTestSuite) TestExpiryOffsets() {
	testCases := []struct {
		cardType entities.CardType
		years    int
	}{
		{entities.CardTypeTypology, 50},
		{entities.CardTypeFaction, 4},
		{entities.CardTypeDeveloper, 4},
	}
	for _, tc := range testCases {
		s.Run(string(tc.cardType), func() {
			p, ok := profiles.Lookup(tc.cardType)
			s.Require().True(ok)
			s.Assert().Equal(tc.years, p.ExpiryYears)
		})
	}
}

func (s *ProfilesTestSuite) TestSizes() {
	typology, _ := profiles.Lookup(entities.CardTypeTypology)
	s.Assert().Equal(profiles.Dimensions{Width: 320, Height: 202}, typology.Size(entities.OrientationLandscape))
	s.Assert().Equal(profiles.Dimensions{Width: 202, Height: 320}, typology.Size(entities.OrientationPortrait))
	s.Assert().Equal([]entities.Orientation{entities.OrientationLandscape, entities.OrientationPortrait}, typology.Orientations())

	faction, _ := profiles.Lookup(entities.CardTypeFaction)
	s.Assert().False(faction.Supports(entities.OrientationPortrait))
	s.Assert().Equal(profiles.Dimensions{Width: 320, Height: 202}, faction.Size(entities.OrientationPortrait))
}

func (s *ProfilesTestSuite) TestPrefix() {
	typology, _ := profiles.Lookup(entities.CardTypeTypology)
	s.Assert().Equal("4", typology.Prefix(typology.Catalog.ResolveTheme("ISTJ")))
	s.Assert().Equal("0", typology.Prefix(typology.Catalog.ResolveTheme("zzz")))

	faction, _ := profiles.Lookup(entities.CardTypeFaction)
	s.Assert().Equal("XX", faction.Prefix(faction.Catalog.ResolveTheme("zzz")))
}

func (s *ProfilesTestSuite) TestNewCard() {
	developer, _ := profiles.Lookup(entities.CardTypeDeveloper)

	card := developer.NewCard("card_1", entities.OrientationPortrait, 1700000000)
	s.Assert().Equal(entities.OrientationLandscape, card.Orientation)
	s.Assert().Equal("html", card.CategoryKey)
	s.Assert().Equal("Programmer Name", card.Field(entities.FieldName))
	s.Assert().Equal(5, card.Quality)
	s.Assert().Empty(card.Identifier)

	card.Fields[entities.FieldName] = "changed"
	s.Assert().Equal("Programmer Name", developer.DefaultFields[entities.FieldName])
}
