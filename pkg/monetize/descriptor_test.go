package monetize_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/SscSPs/monetize/pkg/apperrors"
	"github.com/SscSPs/monetize/pkg/monetize"
	"github.com/SscSPs/monetize/pkg/money"
)

type DefineTestSuite struct {
	suite.Suite
}

func (suite *DefineTestSuite) SetupTest() {
	money.SetDefault(money.MustLookup("EUR"))
	money.SetActiveLocale(language.English)
}

func (suite *DefineTestSuite) assertConfigurationError(err error) *apperrors.ConfigurationError {
	suite.Require().Error(err)
	var cerr *apperrors.ConfigurationError
	suite.Require().ErrorAs(err, &cerr)
	return cerr
}

func (suite *DefineTestSuite) TestDefine_DerivesAccessorName() {
	type Quote struct {
		monetize.Record
		NetCents *int64
	}

	d, err := monetize.Define(Quote{}, "NetCents", monetize.Options{})

	suite.Require().NoError(err)
	suite.Equal("Net", d.Accessor())
	suite.Equal("NetCents", d.Column())
}

func (suite *DefineTestSuite) TestDefine_AsOverridesAccessorName() {
	type Quote struct {
		monetize.Record
		GrossCents *int64
	}

	d, err := monetize.Define(Quote{}, "GrossCents", monetize.Options{As: "Total"})

	suite.Require().NoError(err)
	suite.Equal("Total", d.Accessor())
}

func (suite *DefineTestSuite) TestDefine_MissingColumn() {
	type Quote struct {
		monetize.Record
	}

	_, err := monetize.Define(Quote{}, "NetCents", monetize.Options{})

	suite.assertConfigurationError(err)
}

func (suite *DefineTestSuite) TestDefine_NonIntegerColumn() {
	type Quote struct {
		monetize.Record
		NetCents string
	}

	_, err := monetize.Define(Quote{}, "NetCents", monetize.Options{})

	suite.assertConfigurationError(err)
}

func (suite *DefineTestSuite) TestDefine_MissingRecordEmbed() {
	type Quote struct {
		NetCents *int64
	}

	_, err := monetize.Define(Quote{}, "NetCents", monetize.Options{})

	suite.assertConfigurationError(err)
}

func (suite *DefineTestSuite) TestDefine_UnknownWithCurrency() {
	type Quote struct {
		monetize.Record
		NetCents *int64
	}

	_, err := monetize.Define(Quote{}, "NetCents", monetize.Options{WithCurrency: "ZZZ"})

	suite.assertConfigurationError(err)
}

func (suite *DefineTestSuite) TestDefine_MalformedWithCurrency() {
	type Quote struct {
		monetize.Record
		NetCents *int64
	}

	_, err := monetize.Define(Quote{}, "NetCents", monetize.Options{WithCurrency: "dollars"})

	suite.assertConfigurationError(err)
}

func (suite *DefineTestSuite) TestDefine_DuplicateColumn() {
	type Quote struct {
		monetize.Record
		NetCents *int64
	}

	_, err := monetize.Define(Quote{}, "NetCents", monetize.Options{})
	suite.Require().NoError(err)

	_, err = monetize.Define(Quote{}, "NetCents", monetize.Options{As: "Other"})
	suite.assertConfigurationError(err)
}

func (suite *DefineTestSuite) TestDefine_AccessorCollidesWithField() {
	type Quote struct {
		monetize.Record
		Net      string
		NetCents *int64
	}

	_, err := monetize.Define(Quote{}, "NetCents", monetize.Options{})

	suite.assertConfigurationError(err)
}

func (suite *DefineTestSuite) TestDefine_MissingCurrencyColumn() {
	type Quote struct {
		monetize.Record
		NetCents *int64
	}

	_, err := monetize.Define(Quote{}, "NetCents", monetize.Options{CurrencyColumn: "Code"})

	suite.assertConfigurationError(err)
}

func (suite *DefineTestSuite) TestDefine_AmbiguousCurrencyColumnRejected() {
	// the owner already has a conventional Currency field, so pointing the
	// attribute at a different column is rejected at declaration time
	type Quote struct {
		monetize.Record
		NetCents *int64
		Currency string
		AltCode  string
	}

	_, err := monetize.Define(Quote{}, "NetCents", monetize.Options{CurrencyColumn: "AltCode"})

	suite.assertConfigurationError(err)
}

func (suite *DefineTestSuite) TestDefine_ExplicitCurrencyColumn() {
	type Quote struct {
		monetize.Record
		NetCents *int64
		Code     string
	}
	_, err := monetize.Define(Quote{}, "NetCents", monetize.Options{CurrencyColumn: "Code"})
	suite.Require().NoError(err)

	q := &Quote{Code: "CAD"}
	suite.Require().NoError(monetize.Set(q, "Net", 1))

	m, err := monetize.Get(q, "Net")
	suite.Require().NoError(err)
	suite.Require().NotNil(m)
	suite.Equal("CAD", m.Currency().Code)
}

func TestDefineTestSuite(t *testing.T) {
	suite.Run(t, new(DefineTestSuite))
}

// --- Inheritance via embedding ---

type BaseDocument struct {
	monetize.Record
	AmountCents *int64
}

type SignedDocument struct {
	BaseDocument
	Signature string
}

type StampedDocument struct {
	BaseDocument
	Stamp string
}

var (
	_ = monetize.MustDefine(BaseDocument{}, "AmountCents", monetize.Options{})
	// StampedDocument shadows the inherited accessor with its own currency
	_ = monetize.MustDefine(StampedDocument{}, "AmountCents", monetize.Options{Override: true, WithCurrency: "CHF"})
)

type InheritanceTestSuite struct {
	suite.Suite
}

func (suite *InheritanceTestSuite) SetupTest() {
	money.SetDefault(money.MustLookup("EUR"))
	money.SetActiveLocale(language.English)
}

func (suite *InheritanceTestSuite) TestEmbeddedDescriptorApplies() {
	doc := &SignedDocument{Signature: "sig"}

	suite.Require().NoError(monetize.Set(doc, "Amount", "10"))

	m, err := monetize.Get(doc, "Amount")
	suite.Require().NoError(err)
	suite.Require().NotNil(m)
	suite.Equal(int64(1000), m.Subunits())
	suite.Equal("EUR", m.Currency().Code)
}

func (suite *InheritanceTestSuite) TestOwnDeclarationShadowsInherited() {
	doc := &StampedDocument{}

	suite.Require().NoError(monetize.Set(doc, "Amount", "10"))

	m, err := monetize.Get(doc, "Amount")
	suite.Require().NoError(err)
	suite.Require().NotNil(m)
	suite.Equal("CHF", m.Currency().Code)
}

func (suite *InheritanceTestSuite) TestModelCurrencyInherited() {
	type SealedDocument struct {
		BaseDocument
	}
	suite.Require().NoError(monetize.RegisterModelCurrency(BaseDocument{}, money.MustLookup("USD")))
	defer func() {
		// BaseDocument instances elsewhere expect no model currency
		suite.Require().NoError(monetize.RegisterModelCurrency(BaseDocument{}, money.Currency{}))
	}()

	doc := &SealedDocument{}
	suite.Require().NoError(monetize.Set(doc, "Amount", 1))

	m, err := monetize.Get(doc, "Amount")
	suite.Require().NoError(err)
	suite.Require().NotNil(m)
	suite.Equal("USD", m.Currency().Code)
}

func TestInheritanceTestSuite(t *testing.T) {
	suite.Run(t, new(InheritanceTestSuite))
}
