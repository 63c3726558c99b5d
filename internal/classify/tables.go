package classify

import (
	"regexp"

	"taxdoc/internal/domain"
)

// candidate pairs a document type with its scoring signals. Keywords are
// case-insensitive substring matches worth 1 point each; structural patterns
// are stronger multi-token signals worth 2 points each; a filename hint
// containing hintToken adds 1 point.
type candidate struct {
	docType   domain.DocumentType
	hintToken string
	keywords  []string
	patterns  []*regexp.Regexp
}

// candidates is iterated in declared order; on a score tie the earlier entry
// wins. The order follows domain.AllDocumentTypes.
var candidates = []candidate{
	{
		docType:   domain.DocTypeT4,
		hintToken: "t4",
		keywords:  []string{"t4", "statement of remuneration", "employment income", "cpp contributions", "ei premiums", "employer"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)statement of remuneration paid`),
			regexp.MustCompile(`(?i)box 14\b`),
			regexp.MustCompile(`(?i)t4 slip`),
		},
	},
	{
		docType:   domain.DocTypeReleve1,
		hintToken: "releve1",
		keywords:  []string{"relevé 1", "releve 1", "rl-1", "revenus d'emploi", "revenu québec"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)relev[ée] 1`),
			regexp.MustCompile(`(?i)case a\b`),
		},
	},
	{
		docType:   domain.DocTypeT4A,
		hintToken: "t4a",
		keywords:  []string{"t4a", "statement of pension", "self-employed commissions", "fees for services", "payer"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)box 0?48\b`),
			regexp.MustCompile(`(?i)statement of pension, retirement, annuity`),
		},
	},
	{
		docType:   domain.DocTypeReleve2,
		hintToken: "releve2",
		keywords:  []string{"relevé 2", "releve 2", "rl-2", "autres revenus"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)relev[ée] 2`),
			regexp.MustCompile(`(?i)case c\b`),
		},
	},
	{
		docType:   domain.DocTypeUberSummary,
		hintToken: "uber",
		keywords:  []string{"uber", "rides fare", "uber eats", "online kilometers", "driver partner"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)gross (?:uber )?rides? fares?`),
			regexp.MustCompile(`(?i)online (?:mileage|kilomet(?:er|re)s)`),
			regexp.MustCompile(`(?i)uber (?:weekly|monthly|annual|tax) summary`),
		},
	},
	{
		docType:   domain.DocTypeLyftSummary,
		hintToken: "lyft",
		keywords:  []string{"lyft", "ride earnings", "express drive"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)lyft (?:weekly|monthly|annual|tax) summary`),
			regexp.MustCompile(`(?i)ride earnings`),
		},
	},
	{
		docType:   domain.DocTypeEvaSummary,
		hintToken: "eva",
		keywords:  []string{"eva", "coopérative", "revenus de courses", "pourboires"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)eva coop[ée]rative`),
			regexp.MustCompile(`(?i)revenus de courses`),
		},
	},
	{
		docType:   domain.DocTypeFuelReceipt,
		hintToken: "fuel",
		keywords:  []string{"fuel", "petro-canada", "esso", "shell", "litre", "self serve", "pump"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*litres?\b`),
			regexp.MustCompile(`(?i)(?:price per litre|prix au litre)`),
			regexp.MustCompile(`(?i)pump #?\d`),
		},
	},
	{
		docType:   domain.DocTypeMaintenanceReceipt,
		hintToken: "maintenance",
		keywords:  []string{"oil change", "garage", "repair", "odometer", "labour", "parts"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)odomet(?:er|re)[: ]\s*\d`),
			regexp.MustCompile(`(?i)parts and labou?r`),
		},
	},
	{
		docType:   domain.DocTypeInsuranceReceipt,
		hintToken: "insurance",
		keywords:  []string{"insurance", "assurance", "premium", "policy", "coverage"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)policy (?:no\.?|number)`),
			regexp.MustCompile(`(?i)insurance premium`),
		},
	},
	{
		docType:   domain.DocTypeParkingReceipt,
		hintToken: "parking",
		keywords:  []string{"parking", "stationnement", "impark", "lot", "entry", "exit"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)parking receipt`),
			regexp.MustCompile(`(?i)(?:entry|exit) time`),
		},
	},
	{
		docType:   domain.DocTypePhoneReceipt,
		hintToken: "phone",
		keywords:  []string{"wireless", "mobility", "bell", "rogers", "telus", "data plan"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)billing period`),
			regexp.MustCompile(`(?i)monthly plan`),
		},
	},
	{
		docType:   domain.DocTypeMealReceipt,
		hintToken: "meal",
		keywords:  []string{"restaurant", "server", "table", "tip", "subtotal", "gratuity"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)tip:?\s*(?:ca)?\$`),
			regexp.MustCompile(`(?i)guests?:?\s*\d`),
		},
	},
}

// fallbackEntry is one unambiguous structural marker per type. When scoring
// stays below the threshold the first matching entry in table order wins.
// Legitimate documents with too few keywords often still carry one of these
// markers (typically a government form number).
type fallbackEntry struct {
	docType domain.DocumentType
	pattern *regexp.Regexp
}

var fallbacks = []fallbackEntry{
	{domain.DocTypeT4, regexp.MustCompile(`(?i)\bt4\b`)},
	{domain.DocTypeReleve1, regexp.MustCompile(`(?i)\brl-?1\b`)},
	{domain.DocTypeT4A, regexp.MustCompile(`(?i)\bt4a\b`)},
	{domain.DocTypeReleve2, regexp.MustCompile(`(?i)\brl-?2\b`)},
	{domain.DocTypeUberSummary, regexp.MustCompile(`(?i)\buber\b`)},
	{domain.DocTypeLyftSummary, regexp.MustCompile(`(?i)\blyft\b`)},
	{domain.DocTypeEvaSummary, regexp.MustCompile(`(?i)\beva\b`)},
	{domain.DocTypeFuelReceipt, regexp.MustCompile(`(?i)\blitres?\b`)},
	{domain.DocTypeMaintenanceReceipt, regexp.MustCompile(`(?i)\bodomet(?:er|re)\b`)},
	{domain.DocTypeInsuranceReceipt, regexp.MustCompile(`(?i)\bpolicy\b`)},
	{domain.DocTypeParkingReceipt, regexp.MustCompile(`(?i)\bparking\b`)},
	{domain.DocTypePhoneReceipt, regexp.MustCompile(`(?i)\bbilling period\b`)},
	{domain.DocTypeMealReceipt, regexp.MustCompile(`(?i)\bgratuity\b`)},
}
