package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
		{
			desc:       "ens name",
			address:    "vitalik.eth",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsValidOwner() {
	s.True(IsValidOwner("0x939ae6A4C8dfDBB1f7085189574F0A938013952A"))
	s.True(IsValidOwner("vitalik.eth"))
	s.True(IsValidOwner("Vitalik.ETH"))
	s.False(IsValidOwner(".eth"))
	s.False(IsValidOwner("vitalik"))
	s.False(IsValidOwner(""))
}

func (s *ValidatorTestSuite) TestCustomValidator() {
	type payload struct {
		Contract string `validate:"required,address"`
		Owner    string `validate:"omitempty,owner"`
	}

	v := NewCustomValidator(validator.New())
	s.NoError(v.Validate(payload{Contract: "0x939ae6A4C8dfDBB1f7085189574F0A938013952A"}))
	s.NoError(v.Validate(payload{Contract: "0x939ae6A4C8dfDBB1f7085189574F0A938013952A", Owner: "vitalik.eth"}))
	s.Error(v.Validate(payload{Contract: "0x000"}))
	s.Error(v.Validate(payload{Contract: "0x939ae6A4C8dfDBB1f7085189574F0A938013952A", Owner: "nobody"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
