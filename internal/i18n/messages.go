package i18n

// Message ids shared by every language
const (
	MsgConclusionNormal    = "conclusion.normal"
	MsgConclusionNotNormal = "conclusion.not_normal"
	MsgJustifyCritical     = "justification.critical"
	MsgJustifyPValue       = "justification.p_value"
	MsgCodeNormal          = "code.NORMAL"
	MsgCodeNotNormal       = "code.NOT_NORMAL"
	MsgReportTitle         = "report.title"
	MsgLabelTest           = "label.test"
	MsgLabelN              = "label.n"
	MsgLabelStatistic      = "label.statistic"
	MsgLabelCritical       = "label.critical"
	MsgLabelPValue         = "label.p_value"
	MsgLabelAlpha          = "label.alpha"
	MsgLabelResult         = "label.result"
	MsgNotAvailable        = "label.not_available"
)

// RelationID returns the message id describing a comparison relation.
func RelationID(relation string) string { return "relation." + relation }

// TestNameID returns the message id of a test's display name.
func TestNameID(test string) string { return "test." + test }

var english = map[string]string{
	MsgConclusionNormal:    "{test}: the data follow a Normal distribution ({confidence}% confidence).",
	MsgConclusionNotNormal: "{test}: the data do not follow a Normal distribution ({confidence}% confidence).",
	MsgJustifyCritical:     "The test statistic ({observed}) is {relation} the critical value ({reference}).",
	MsgJustifyPValue:       "The p-value ({observed}) is {relation} the significance level ({reference}).",
	MsgCodeNormal:          "Normal",
	MsgCodeNotNormal:       "Not Normal",
	MsgReportTitle:         "Normality tests",
	MsgLabelTest:           "Test",
	MsgLabelN:              "n",
	MsgLabelStatistic:      "Statistic",
	MsgLabelCritical:       "Critical value",
	MsgLabelPValue:         "p-value",
	MsgLabelAlpha:          "Alpha",
	MsgLabelResult:         "Result",
	MsgNotAvailable:        "n/a",

	"relation.<=": "lower than or equal to",
	"relation.<":  "lower than",
	"relation.>=": "greater than or equal to",
	"relation.>":  "greater than",

	"test.shapiro_wilk":       "Shapiro-Wilk",
	"test.kolmogorov_smirnov": "Kolmogorov-Smirnov",
	"test.lilliefors":         "Lilliefors",
	"test.anderson_darling":   "Anderson-Darling",
	"test.abdi_molin":         "Abdi-Molin",
}

var portuguese = map[string]string{
	MsgConclusionNormal:    "{test}: os dados seguem a distribuição Normal ({confidence}% de confiança).",
	MsgConclusionNotNormal: "{test}: os dados não seguem a distribuição Normal ({confidence}% de confiança).",
	MsgJustifyCritical:     "A estatística do teste ({observed}) é {relation} o valor crítico ({reference}).",
	MsgJustifyPValue:       "O p-valor ({observed}) é {relation} o nível de significância ({reference}).",
	MsgCodeNormal:          "Normal",
	MsgCodeNotNormal:       "Não Normal",
	MsgReportTitle:         "Testes de normalidade",
	MsgLabelTest:           "Teste",
	MsgLabelStatistic:      "Estatística",
	MsgLabelCritical:       "Valor crítico",
	MsgLabelPValue:         "p-valor",
	MsgLabelResult:         "Resultado",
	MsgNotAvailable:        "n/d",

	"relation.<=": "menor ou igual a",
	"relation.<":  "menor que",
	"relation.>=": "maior ou igual a",
	"relation.>":  "maior que",
}
