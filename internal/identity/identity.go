// Package identity resolves participant name and email from a response
// table, defending against blank survey fields, plain Name/Email columns,
// and the two being swapped.
package identity

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/survey-profiler/internal/types"
)

// Header fragments for the survey-phrased identity fields.
const (
	surveyNameFragment  = "please type your name"
	surveyEmailFragment = "please type your email"
)

// AnonymousName is the final name fallback: name is never blank.
const AnonymousName = "Anonymous"

// emailPattern is deliberately permissive: anything shaped text@text.text.
var emailPattern = regexp.MustCompile(`^.+@.+\..+$`)

// swapSampleSize is how many non-blank values per column are examined for
// swap detection.
const swapSampleSize = 3

// Resolution holds table-level column resolution: which columns supply name
// and email for every row. An index of -1 means no column was found.
type Resolution struct {
	NameColumn  int
	EmailColumn int
	Swapped     bool
}

// Resolver detects identity columns and extracts per-row identities.
type Resolver struct {
	logger *zap.Logger
}

// New creates a Resolver. A nil logger disables logging.
func New(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger}
}

// LooksLikeEmail reports whether the value matches the permissive
// text@text.text shape.
func LooksLikeEmail(value string) bool {
	return emailPattern.MatchString(strings.TrimSpace(value))
}

// LooksLikeName reports whether the value is usable as a human name:
// non-blank, not a null placeholder, and not email-shaped.
func LooksLikeName(value string) bool {
	s := strings.TrimSpace(value)
	if s == "" {
		return false
	}
	switch strings.ToLower(s) {
	case "nan", "none", "n/a":
		return false
	}
	return !LooksLikeEmail(s)
}

// NameFromEmail derives a display name from an email's local part:
// separators become spaces and the result is title-cased.
func NameFromEmail(email string) string {
	s := strings.TrimSpace(email)
	at := strings.Index(s, "@")
	if at < 0 {
		return s
	}
	local := s[:at]
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)

	words := strings.Fields(local)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func columnEntirelyBlank(table *types.ResponseTable, col int) bool {
	for row := 0; row < table.NumRows(); row++ {
		if !table.CellBlank(row, col) {
			return false
		}
	}
	return true
}

// sampleValues returns up to max non-blank values from a column.
func sampleValues(table *types.ResponseTable, col, max int) []string {
	var out []string
	for row := 0; row < table.NumRows() && len(out) < max; row++ {
		if !table.CellBlank(row, col) {
			out = append(out, strings.TrimSpace(table.Cell(row, col)))
		}
	}
	return out
}

// Resolve determines, once per table, which columns supply name and email.
//
// Survey-phrased fields are preferred; a survey field whose column is
// entirely blank falls back to the literal Name/Email column. After
// resolution, up to three values per side are sampled: when the name column
// holds email-shaped values and the email column holds name-shaped values,
// the two are swapped for every row.
func (r *Resolver) Resolve(table *types.ResponseTable) Resolution {
	surveyName, surveyEmail, simpleName, simpleEmail := -1, -1, -1, -1
	for idx := 0; idx < table.NumCols(); idx++ {
		header := strings.ToLower(strings.TrimSpace(table.Header(idx)))
		switch {
		case strings.Contains(header, surveyNameFragment):
			surveyName = idx
		case strings.Contains(header, surveyEmailFragment):
			surveyEmail = idx
		case header == "name":
			simpleName = idx
		case header == "email":
			simpleEmail = idx
		}
	}

	nameCol, emailCol := surveyName, surveyEmail

	if nameCol >= 0 && columnEntirelyBlank(table, nameCol) {
		r.logger.Warn("survey name column is empty, falling back to simple column",
			zap.String("column", table.Header(nameCol)))
		nameCol = simpleName
	}
	if emailCol >= 0 && columnEntirelyBlank(table, emailCol) {
		r.logger.Warn("survey email column is empty, falling back to simple column",
			zap.String("column", table.Header(emailCol)))
		emailCol = simpleEmail
	}

	if nameCol < 0 {
		nameCol = simpleName
	}
	if emailCol < 0 {
		emailCol = simpleEmail
	}

	res := Resolution{NameColumn: nameCol, EmailColumn: emailCol}

	if nameCol >= 0 && emailCol >= 0 {
		nameSample := sampleValues(table, nameCol, swapSampleSize)
		emailSample := sampleValues(table, emailCol, swapSampleSize)

		nameHoldsEmails := anyMatch(nameSample, LooksLikeEmail)
		emailHoldsNames := anyMatch(emailSample, LooksLikeName)

		if nameHoldsEmails && emailHoldsNames {
			r.logger.Warn("name and email columns appear swapped, correcting",
				zap.String("name_column", table.Header(nameCol)),
				zap.String("email_column", table.Header(emailCol)))
			res.NameColumn, res.EmailColumn = emailCol, nameCol
			res.Swapped = true
		}
	}

	return res
}

func anyMatch(values []string, pred func(string) bool) bool {
	for _, v := range values {
		if pred(v) {
			return true
		}
	}
	return false
}

// Extract returns the (name, email) for one row using the table-level
// resolution. Name is never blank; email may be.
func (r *Resolver) Extract(table *types.ResponseTable, row int, res Resolution) (string, string) {
	var nameValue, emailValue string
	if res.NameColumn >= 0 && !table.CellBlank(row, res.NameColumn) {
		nameValue = strings.TrimSpace(table.Cell(row, res.NameColumn))
	}
	if res.EmailColumn >= 0 && !table.CellBlank(row, res.EmailColumn) {
		emailValue = strings.TrimSpace(table.Cell(row, res.EmailColumn))
	}

	name := AnonymousName
	switch {
	case nameValue != "" && LooksLikeName(nameValue):
		name = nameValue
	case emailValue != "" && LooksLikeName(emailValue):
		name = emailValue
		r.logger.Warn("using name from email column", zap.Int("row", row), zap.String("name", emailValue))
	case nameValue != "" && LooksLikeEmail(nameValue):
		name = NameFromEmail(nameValue)
		r.logger.Warn("derived name from email in name column", zap.Int("row", row), zap.String("name", name))
	case emailValue != "" && LooksLikeEmail(emailValue):
		name = NameFromEmail(emailValue)
		r.logger.Warn("no name found, derived from email", zap.Int("row", row), zap.String("name", name))
	}

	email := ""
	switch {
	case emailValue != "" && LooksLikeEmail(emailValue):
		email = emailValue
	case nameValue != "" && LooksLikeEmail(nameValue):
		email = nameValue
		r.logger.Warn("using email from name column", zap.Int("row", row), zap.String("email", nameValue))
	}

	return name, email
}
