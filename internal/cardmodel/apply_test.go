package cardmodel_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cardgen/internal/cardmodel"
	"github.com/KirkDiggler/cardgen/internal/entities"
	"github.com/KirkDiggler/cardgen/internal/profiles"
)

type ApplyFieldTestSuite struct {
	suite.Suite
	profile *profiles.Profile
	card    *entities.Card
}

func TestApplyFieldSuite(t *testing.T) {
	suite.Run(t, new(ApplyFieldTestSuite))
}

func (s *ApplyFieldTestSuite) SetupTest() {
	var ok bool
	s.profile, ok = profiles.Lookup(entities.CardTypeTypology)
	s.Require().True(ok)
	s.card = s.profile.NewCard("card_1", entities.OrientationLandscape, 0)
	s.card.Identifier = "412345"
}

func (s *ApplyFieldTestSuite) TestCategoryField() {
	change := cardmodel.ApplyField(s.card, s.profile, "mbti", "INTJ")

	s.Assert().Equal(cardmodel.ChangeCategory, change)
	s.Assert().Equal("INTJ", s.card.CategoryKey)
	s.Assert().Equal("YOUR NAME", s.card.Field(entities.FieldName))
	s.Assert().NotContains(s.card.Fields, "mbti")
	// identifier is the caller's job
	s.Assert().Equal("412345", s.card.Identifier)
}

func (s *ApplyFieldTestSuite) TestSameCategoryIsNoChange() {
	s.Assert().Equal(cardmodel.ChangeNone, cardmodel.ApplyField(s.card, s.profile, "mbti", "ISFJ"))
}

func (s *ApplyFieldTestSuite) TestUnknownCategoryIsStored() {
	s.Assert().Equal(cardmodel.ChangeCategory, cardmodel.ApplyField(s.card, s.profile, "mbti", "zzz"))
	s.Assert().Equal("zzz", s.card.CategoryKey)
}

func (s *ApplyFieldTestSuite) TestPhotoField() {
	s.card.UseDefaultPhoto = true

	change := cardmodel.ApplyField(s.card, s.profile, entities.FieldPhoto, "data:image/jpeg;base64,AAAA")

	s.Assert().Equal(cardmodel.ChangePhoto, change)
	s.Assert().Equal("data:image/jpeg;base64,AAAA", s.card.PhotoRef)
	s.Assert().False(s.card.UseDefaultPhoto)
}

func (s *ApplyFieldTestSuite) TestEmptyPhotoKeepsCard() {
	s.card.PhotoRef = "data:image/jpeg;base64,AAAA"
	s.card.UseDefaultPhoto = true

	s.Assert().Equal(cardmodel.ChangeNone, cardmodel.ApplyField(s.card, s.profile, entities.FieldPhoto, ""))
	s.Assert().Equal("data:image/jpeg;base64,AAAA", s.card.PhotoRef)
	s.Assert().True(s.card.UseDefaultPhoto)
}

func (s *ApplyFieldTestSuite) TestFreeTextVerbatim() {
	testCases := []struct {
		name  string
		field string
		value string
	}{
		{name: "empty name", field: entities.FieldName, value: ""},
		{name: "very long motto", field: "motto", value: string(make([]byte, 500))},
		{name: "unknown field", field: "nickname", value: "  spaced  "},
		{name: "markup", field: "zodiac", value: "<b>Leo</b>"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(cardmodel.ChangeField, cardmodel.ApplyField(s.card, s.profile, tc.field, tc.value))
			s.Assert().Equal(tc.value, s.card.Field(tc.field))
		})
	}
}

func (s *ApplyFieldTestSuite) TestNilFields() {
	card := &entities.Card{}
	s.Assert().Equal(cardmodel.ChangeField, cardmodel.ApplyField(card, s.profile, "zodiac", "Leo"))
	s.Assert().Equal("Leo", card.Field("zodiac"))
	s.Assert().Equal("category", cardmodel.ChangeCategory.String())
}
