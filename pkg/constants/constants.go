// Package constants provides shared constants for the homeready application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Affordability policy defaults. All of these are overridable per profile;
// the solver never reads them directly.
const (
	// DefaultHousingPercentage is the share of take-home income allowed for housing
	DefaultHousingPercentage = 28.0

	// DefaultDownPaymentPercentage is the target down payment as a share of price
	DefaultDownPaymentPercentage = 20.0

	// DefaultInsuranceRatePct is the estimated annual homeowner's insurance
	// premium as a percentage of purchase price ($5 per $1000 of value)
	DefaultInsuranceRatePct = 0.5

	// DefaultPropertyTaxRatePct is the annual property tax rate used when a
	// property carries no rate and its location is unknown
	DefaultPropertyTaxRatePct = 1.1

	// DefaultDTIWarningThreshold is the debt-to-income ratio above which a
	// constraint is reported
	DefaultDTIWarningThreshold = 0.43
)

// Solver bounds
const (
	// PriceSearchTolerance is the convergence tolerance for the iterative
	// maximum price search, in dollars
	PriceSearchTolerance = 100.0

	// MaxPriceSearchIterations bounds the iterative maximum price search
	MaxPriceSearchIterations = 50

	// DownPaymentStatusTolerance is the band, in dollars, within which
	// available funds count as on-target for the required down payment
	DownPaymentStatusTolerance = 500.0

	// PaymentComparisonTolerance is the band, in dollars, within which a
	// monthly payment counts as fitting the housing budget
	PaymentComparisonTolerance = 1.0

	// MinInterestRate is the lowest annual interest rate accepted, in percent
	MinInterestRate = 0.0

	// MaxInterestRate is the highest annual interest rate accepted, in percent
	MaxInterestRate = 20.0

	// MaxLoanTermYears is the longest loan term accepted
	MaxLoanTermYears = 50
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default profile configuration file name
	DefaultConfigFile = "profile.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for
	// profile bodies (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
