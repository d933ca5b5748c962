package dataset

// Kind is the declared type of a schema column
type Kind int

const (
	// KindInteger columns coerce with the parse-or-default policy: any cell
	// that does not parse as a finite number becomes 0, then truncates.
	KindInteger Kind = iota
	// KindText columns hold the raw cell string; blanks stay empty strings.
	KindText
	// KindTimestamp columns parse flexibly; failures become an explicit
	// invalid marker, never an error.
	KindTimestamp
)

// Schema maps canonical column names to their declared kinds.
// Column names are matched after trimming surrounding whitespace.
type Schema map[string]Kind

// Canonical column names of the social-media export contract.
// These exact strings are part of the external data contract.
const (
	ColName          = "Name"
	ColHandle        = "Handle"
	ColMediaURL      = "Media URL"
	ColTweetURL      = "Tweet URL"
	ColProfileLink   = "Profile Link"
	ColPostBody      = "Post Body"
	ColVerified      = "Cuenta Verificada"
	ColPeriod        = "Periodo"
	ColRetweets      = "Retweets"
	ColLikes         = "Likes"
	ColComments      = "Comments"
	ColViews         = "Views"
	ColInstitutional = "Institucionales"
	ColMedia         = "Medios de Comunicación"
	ColGeneral       = "General"
	ColBots          = "Bots"
	ColInteractions  = "Interacciones"
	ColEngagement    = "Interacciones y Audiencia"
	ColDate          = "Date"
	ColTimestamp     = "Timestamp"
)

// DefaultSchema returns the fixed, hand-enumerated column schema:
// 10 integer columns, 8 text columns, 2 timestamp columns.
func DefaultSchema() Schema {
	return Schema{
		ColRetweets:      KindInteger,
		ColLikes:         KindInteger,
		ColComments:      KindInteger,
		ColViews:         KindInteger,
		ColInstitutional: KindInteger,
		ColMedia:         KindInteger,
		ColGeneral:       KindInteger,
		ColBots:          KindInteger,
		ColInteractions:  KindInteger,
		ColEngagement:    KindInteger,

		ColName:        KindText,
		ColHandle:      KindText,
		ColMediaURL:    KindText,
		ColTweetURL:    KindText,
		ColProfileLink: KindText,
		ColPostBody:    KindText,
		ColVerified:    KindText,
		ColPeriod:      KindText,

		ColDate:      KindTimestamp,
		ColTimestamp: KindTimestamp,
	}
}

// FlagColumns are the categorical account-type indicator columns whose empty
// cells are replaced with 0 before integer coercion.
func FlagColumns() []string {
	return []string{ColInstitutional, ColMedia, ColGeneral, ColBots}
}
