package idgen_test

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/pkg/idgen"
)

type fixedRoller struct {
	value int
	err   error
	sizes []int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.sizes = append(r.sizes, size)
	return r.value, r.err
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type CardNumberTestSuite struct {
	suite.Suite
}

func TestCardNumberSuite(t *testing.T) {
	suite.Run(t, new(CardNumberTestSuite))
}

func (s *CardNumberTestSuite) TestBounds() {
	testCases := []struct {
		name     string
		roll     int
		expected string
	}{
		{name: "lowest roll", roll: 1, expected: "410000"},
		{name: "highest roll", roll: 90000, expected: "499999"},
		{name: "middle roll", roll: 2346, expected: "412345"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			roller := &fixedRoller{value: tc.roll}
			gen, err := idgen.NewCardNumber(roller)
			s.Require().NoError(err)

			id, err := gen.Generate("4")
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, id)
			s.Assert().Equal([]int{90000}, roller.sizes)
		})
	}
}

func (s *CardNumberTestSuite) TestOutOfRangeRoll() {
	gen, err := idgen.NewCardNumber(&fixedRoller{value: 90001})
	s.Require().NoError(err)

	_, err = gen.Generate("4")
	s.Assert().Error(err)
}

func (s *CardNumberTestSuite) TestRollerError() {
	gen, err := idgen.NewCardNumber(&fixedRoller{err: fmt.Errorf("no entropy")})
	s.Require().NoError(err)

	_, err = gen.Generate("OA")
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "no entropy")
}

func (s *CardNumberTestSuite) TestNilRoller() {
	_, err := idgen.NewCardNumber(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CardNumberTestSuite) TestAlwaysFiveDigits() {
	gen, err := idgen.NewCardNumber(idgen.NewSeededRoller(42))
	s.Require().NoError(err)

	for _, prefix := range []string{"4", "0", "OA", "XX", "R"} {
		pattern := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `\d{5}$`)
		for i := 0; i < 1000; i++ {
			id, err := gen.Generate(prefix)
			s.Require().NoError(err)
			s.Require().Regexp(pattern, id)
		}
	}
}

func (s *CardNumberTestSuite) TestSeededRollerDeterministic() {
	a, err := idgen.NewCardNumber(idgen.NewSeededRoller(7))
	s.Require().NoError(err)
	b, err := idgen.NewCardNumber(idgen.NewSeededRoller(7))
	s.Require().NoError(err)

	for i := 0; i < 20; i++ {
		idA, err := a.Generate("2")
		s.Require().NoError(err)
		idB, err := b.Generate("2")
		s.Require().NoError(err)
		s.Assert().Equal(idA, idB)
	}
}

func (s *CardNumberTestSuite) TestSeededRollerRejectsBadSize() {
	r := idgen.NewSeededRoller(1)

	_, err := r.Roll(0)
	s.Assert().Error(err)

	rolls, err := r.RollN(3, 6)
	s.Require().NoError(err)
	s.Assert().Len(rolls, 3)
	for _, v := range rolls {
		s.Assert().GreaterOrEqual(v, 1)
		s.Assert().LessOrEqual(v, 6)
	}
}
