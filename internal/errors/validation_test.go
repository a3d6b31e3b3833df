package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hearthforge/tavern-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("player_id", "is required")
	ve.AddFieldError("slot_type", "is invalid")
	ve.AddFieldErrorf("count", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "player_id: is required")
	s.Assert().Contains(ve.Error(), "slot_type: is invalid")
	s.Assert().Contains(ve.Error(), "count: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("target_card_id", "is required").
		Fieldf("position", "must be between %d and %d", 0, 8).
		RequiredField("SessionRepo").
		InvalidField("slot_type", "not a defined slot")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	s.Run("ValidateRequired flags blank values", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("player_id", "  ", vb)
		s.Assert().NotNil(vb.Build())
	})

	s.Run("ValidateRange flags out-of-range values", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRange("position", 9, 0, 8, vb)
		s.Assert().NotNil(vb.Build())

		vb = errors.NewValidationBuilder()
		errors.ValidateRange("position", 4, 0, 8, vb)
		s.Assert().Nil(vb.Build())
	})

	s.Run("ValidateEnum flags unknown values", func() {
		allowed := []string{"hp", "shield", "special", "passive", "normal"}

		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("slot_type", "weapon", allowed, vb)
		s.Assert().NotNil(vb.Build())

		vb = errors.NewValidationBuilder()
		errors.ValidateEnum("slot_type", "shield", allowed, vb)
		s.Assert().Nil(vb.Build())
	})
}
